package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"lcars/internal/browser"
	"lcars/internal/config"
	"lcars/internal/constants"
	"lcars/internal/fileinfo"
	"lcars/internal/logging"
	"lcars/internal/navigation"
	"lcars/internal/netinfo"
	"lcars/internal/sysinfo"
	customtheme "lcars/internal/theme"
	"lcars/internal/ui"
)

func main() {
	var debugMode bool
	var startPath string
	var configPath string
	flag.BoolVar(&debugMode, "d", false, "Enable debug mode")
	flag.StringVar(&startPath, "path", "", "Starting location: a directory, or THIS_PC, GALLERY, RECENT")
	flag.StringVar(&configPath, "config", "", "Configuration file (default: per-user config directory)")
	flag.Parse()

	if startPath == "" && flag.NArg() > 0 {
		startPath = flag.Arg(0)
	}

	bootLogger := logging.NewOrNop(logging.ConfigFor("", debugMode))

	var configManager *config.Manager
	if configPath != "" {
		configManager = config.NewManagerWithPath(configPath, bootLogger)
	} else {
		configManager = config.NewManager(bootLogger)
	}
	cfg, err := configManager.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.ConfigFor(cfg.Logging.Level, debugMode || cfg.Logging.Debug))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("version", constants.ApplicationVersion),
		zap.String("config", configManager.Path()))

	initial, err := startLocation(startPath)
	if err != nil {
		logger.Fatal("invalid start location", zap.String("path", startPath), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	provider := navigation.NewProvider(&fileinfo.RealFileSystem{},
		navigation.WithRecentDir(cfg.Browser.RecentDir),
		navigation.WithLogger(logger.Named("navigation")),
	)
	controller := browser.NewController(provider, logger.Named("controller"))

	checker := netinfo.NewChecker(
		netinfo.WithProbeHost(cfg.Network.ProbeHost),
		netinfo.WithProbeURL(cfg.Network.ProbeURL),
		netinfo.WithTimeout(cfg.Network.Timeout()),
		netinfo.WithLogger(logger.Named("netinfo")),
	)
	collector := sysinfo.NewCollector(sysinfo.AppInfo{
		Name:      constants.ApplicationTitle,
		Version:   constants.ApplicationVersion,
		UIToolkit: "Fyne v2",
	})

	a := app.NewWithID(constants.ApplicationID)
	a.Settings().SetTheme(customtheme.NewCustomTheme(cfg))

	window := newWindow(a, cfg.Window.Frameless)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	mainWindow := ui.NewMainWindow(ctx, window, ui.Dependencies{
		Controller:    controller,
		Photos:        provider,
		Checker:       checker,
		CheckInterval: cfg.Network.Interval(),
		System:        collector,
		Logger:        logger,
		ShowHidden:    cfg.Browser.ShowHiddenFiles,
		CursorStyle:   cfg.Browser.CursorStyle,
		OnClose: func(size fyne.Size) {
			saveWindowSize(configManager, size, logger)
		},
	})

	go func() {
		<-ctx.Done()
		fyne.Do(mainWindow.Close)
	}()

	mainWindow.Start(initial)
	window.ShowAndRun()
}

// newWindow creates the overlay window. Frameless windows use the
// desktop driver's borderless splash window when it is available.
func newWindow(a fyne.App, frameless bool) fyne.Window {
	if frameless {
		if drv, ok := a.(desktop.App); ok {
			w := drv.CreateSplashWindow()
			w.SetTitle(constants.ApplicationTitle)
			return w
		}
	}
	return a.NewWindow(constants.ApplicationTitle)
}

// startLocation resolves the -path flag. Blank means the root view;
// legacy tokens name virtual folders; anything else must be a directory.
func startLocation(arg string) (fileinfo.Location, error) {
	if arg == "" {
		return fileinfo.Location{}, nil
	}
	loc := fileinfo.ParseLocation(arg)
	if loc.IsVirtual() {
		return loc, nil
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return fileinfo.Location{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fileinfo.Location{}, err
	}
	if !info.IsDir() {
		return fileinfo.Location{}, fmt.Errorf("%s is not a directory", abs)
	}
	return fileinfo.RealPath(abs), nil
}

// saveWindowSize records the final window size in the config file,
// leaving environment overrides out of what is written.
func saveWindowSize(manager *config.Manager, size fyne.Size, logger *zap.Logger) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	fileConfig, err := manager.LoadFile()
	if err != nil {
		logger.Warn("not saving window size", zap.Error(err))
		return
	}
	fileConfig.Window.Width = int(size.Width)
	fileConfig.Window.Height = int(size.Height)
	if err := manager.Save(fileConfig); err != nil {
		logger.Warn("saving window size failed", zap.Error(err))
	}
}
