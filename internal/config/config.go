package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"lcars/internal/constants"
	"lcars/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Window  WindowConfig  `json:"window"`
	Theme   ThemeConfig   `json:"theme"`
	Browser BrowserConfig `json:"browser"`
	Network NetworkConfig `json:"network"`
	Logging LoggingConfig `json:"logging"`
}

// WindowConfig represents window-related settings
type WindowConfig struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Frameless bool `json:"frameless"` // borderless overlay window
}

// ThemeConfig represents theme-related settings
type ThemeConfig struct {
	Dark     bool `json:"dark"`
	FontSize int  `json:"fontSize"`
}

// BrowserConfig represents browsing settings
type BrowserConfig struct {
	ShowHiddenFiles bool   `json:"showHiddenFiles"`
	RecentDir       string `json:"recentDir"`   // recent-items folder on platforms without one
	CursorStyle     string `json:"cursorStyle"` // "underline", "border", or "background"
}

// NetworkConfig represents connectivity probe settings
type NetworkConfig struct {
	ProbeHost       string `json:"probeHost"`
	ProbeURL        string `json:"probeURL"`
	TimeoutSeconds  int    `json:"timeoutSeconds"`
	IntervalSeconds int    `json:"intervalSeconds"`
}

// LoggingConfig represents logger settings
type LoggingConfig struct {
	Level string `json:"level"`
	Debug bool   `json:"debug"`
}

// Timeout returns the probe timeout as a duration
func (n NetworkConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// Interval returns the monitor interval as a duration
func (n NetworkConfig) Interval() time.Duration {
	return time.Duration(n.IntervalSeconds) * time.Second
}

// Overrides holds values read from LCARS_* environment variables.
// Unset variables leave the file configuration untouched.
type Overrides struct {
	Debug         *bool         `envconfig:"DEBUG"`
	LogLevel      string        `envconfig:"LOG_LEVEL"`
	ProbeHost     string        `envconfig:"PROBE_HOST"`
	ProbeURL      string        `envconfig:"PROBE_URL"`
	CheckInterval time.Duration `envconfig:"CHECK_INTERVAL"`
	RecentDir     string        `envconfig:"RECENT_DIR"`
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
	logger     *zap.Logger
}

// NewManager creates a new configuration manager
func NewManager(logger *zap.Logger) *Manager {
	return NewManagerWithPath(getConfigPath(), logger)
}

// NewManagerWithPath creates a manager bound to an explicit file
func NewManagerWithPath(path string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		configPath: path,
		logger:     logger,
	}
}

// Path returns the configuration file location
func (m *Manager) Path() string {
	return m.configPath
}

// Load loads configuration from file, merges it with defaults and
// applies environment overrides.
func (m *Manager) Load() (*Config, error) {
	config, err := m.LoadFile()
	if err != nil {
		return nil, err
	}

	overrides, err := LoadOverrides()
	if err != nil {
		return nil, err
	}
	applyOverrides(config, overrides)

	return config, nil
}

// LoadFile loads the file merged with defaults, without environment
// overrides. Use it to read-modify-write the file.
func (m *Manager) LoadFile() (*Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		m.logger.Debug("config file not found, using defaults",
			zap.String("path", m.configPath), zap.Error(err))
	} else {
		// Decode over defaults so booleans absent from the file keep them
		fileConfig := getDefaultConfig()
		if err := json.Unmarshal(data, fileConfig); err != nil {
			return nil, errors.NewConfigError("load_config", "error parsing config file", err)
		}
		mergeConfigs(config, fileConfig)
	}
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.NewConfigError("save_config", "error creating config directory", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.NewConfigError("save_config", "error marshaling config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return errors.NewConfigError("save_config", "error writing config file", err)
	}

	return nil
}

// LoadOverrides reads the LCARS_* environment variables
func LoadOverrides() (*Overrides, error) {
	var o Overrides
	if err := envconfig.Process(constants.EnvPrefix, &o); err != nil {
		return nil, errors.NewConfigError("load_overrides", "invalid environment override", err)
	}
	return &o, nil
}

func applyOverrides(config *Config, o *Overrides) {
	if o.Debug != nil {
		config.Logging.Debug = *o.Debug
	}
	if o.LogLevel != "" {
		config.Logging.Level = o.LogLevel
	}
	if o.ProbeHost != "" {
		config.Network.ProbeHost = o.ProbeHost
	}
	if o.ProbeURL != "" {
		config.Network.ProbeURL = o.ProbeURL
	}
	if o.CheckInterval >= time.Second {
		config.Network.IntervalSeconds = int(o.CheckInterval / time.Second)
	}
	if o.RecentDir != "" {
		config.Browser.RecentDir = o.RecentDir
	}
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     constants.DefaultWindowWidth,
			Height:    constants.DefaultWindowHeight,
			Frameless: constants.DefaultFrameless,
		},
		Theme: ThemeConfig{
			Dark:     constants.DarkThemeDefault,
			FontSize: constants.DefaultFontSize,
		},
		Browser: BrowserConfig{
			ShowHiddenFiles: constants.DefaultShowHiddenFiles,
			CursorStyle:     constants.DefaultCursorStyle,
		},
		Network: NetworkConfig{
			ProbeHost:       constants.DefaultProbeHost,
			ProbeURL:        constants.DefaultProbeURL,
			TimeoutSeconds:  int(constants.DefaultProbeTimeout / time.Second),
			IntervalSeconds: int(constants.DefaultCheckInterval / time.Second),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// %APPDATA%\lcars\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, constants.ApplicationName)

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return constants.ConfigFileName
		}
		configDir = filepath.Join(home, "Library", "Application Support", constants.ApplicationName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, constants.ApplicationName)
	}

	return filepath.Join(configDir, constants.ConfigFileName)
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	if fileConfig.Window.Width != 0 {
		defaultConfig.Window.Width = fileConfig.Window.Width
	}
	if fileConfig.Window.Height != 0 {
		defaultConfig.Window.Height = fileConfig.Window.Height
	}
	defaultConfig.Window.Frameless = fileConfig.Window.Frameless

	defaultConfig.Theme.Dark = fileConfig.Theme.Dark
	if fileConfig.Theme.FontSize != 0 {
		defaultConfig.Theme.FontSize = fileConfig.Theme.FontSize
	}

	defaultConfig.Browser.ShowHiddenFiles = fileConfig.Browser.ShowHiddenFiles
	if fileConfig.Browser.RecentDir != "" {
		defaultConfig.Browser.RecentDir = fileConfig.Browser.RecentDir
	}
	if fileConfig.Browser.CursorStyle != "" {
		defaultConfig.Browser.CursorStyle = fileConfig.Browser.CursorStyle
	}

	if fileConfig.Network.ProbeHost != "" {
		defaultConfig.Network.ProbeHost = fileConfig.Network.ProbeHost
	}
	if fileConfig.Network.ProbeURL != "" {
		defaultConfig.Network.ProbeURL = fileConfig.Network.ProbeURL
	}
	if fileConfig.Network.TimeoutSeconds > 0 {
		defaultConfig.Network.TimeoutSeconds = fileConfig.Network.TimeoutSeconds
	}
	if fileConfig.Network.IntervalSeconds > 0 {
		defaultConfig.Network.IntervalSeconds = fileConfig.Network.IntervalSeconds
	}

	if fileConfig.Logging.Level != "" {
		defaultConfig.Logging.Level = fileConfig.Logging.Level
	}
	defaultConfig.Logging.Debug = fileConfig.Logging.Debug
}
