package sysinfo

import (
	"context"
	"encoding/binary"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"lcars/internal/errors"
)

const bytesPerGB = 1 << 30

// SystemInfo describes the host machine
type SystemInfo struct {
	Hostname   string `json:"hostname"`
	Platform   string `json:"platform"`
	Arch       string `json:"arch"`
	Type       string `json:"type"`
	Endianness string `json:"endianness"`
}

// OSInfo describes the operating system release
type OSInfo struct {
	Platform string `json:"platform"`
	Edition  string `json:"edition"`
	Release  string `json:"release"`
	Version  string `json:"version"`
	Type     string `json:"type"`
}

// CPUInfo describes the processor
type CPUInfo struct {
	Model        string  `json:"model"`
	Cores        int     `json:"cores"`
	SpeedMHz     float64 `json:"speed"`
	Architecture string  `json:"architecture"`
}

// MemoryInfo describes physical memory usage
type MemoryInfo struct {
	Total        uint64 `json:"total"`
	Free         uint64 `json:"free"`
	Used         uint64 `json:"used"`
	TotalGB      string `json:"totalGB"`
	FreeGB       string `json:"freeGB"`
	UsedGB       string `json:"usedGB"`
	UsagePercent string `json:"usagePercent"`
}

// AppInfo describes this application build
type AppInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	UIToolkit string `json:"uiToolkit"`
}

// Uptime is the time since boot, split for display
type Uptime struct {
	Seconds   uint64 `json:"seconds"`
	Days      uint64 `json:"days"`
	Hours     uint64 `json:"hours"`
	Minutes   uint64 `json:"minutes"`
	Formatted string `json:"formatted"`
}

// Collector answers system queries. The gopsutil calls are held as
// fields so tests can substitute them.
type Collector struct {
	app AppInfo

	hostInfo  func(ctx context.Context) (*host.InfoStat, error)
	uptime    func(ctx context.Context) (uint64, error)
	cpuInfo   func(ctx context.Context) ([]cpu.InfoStat, error)
	cpuCounts func(ctx context.Context, logical bool) (int, error)
	memory    func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// NewCollector creates a collector backed by gopsutil
func NewCollector(app AppInfo) *Collector {
	if app.GoVersion == "" {
		app.GoVersion = runtime.Version()
	}
	return &Collector{
		app:       app,
		hostInfo:  host.InfoWithContext,
		uptime:    host.UptimeWithContext,
		cpuInfo:   cpu.InfoWithContext,
		cpuCounts: cpu.CountsWithContext,
		memory:    mem.VirtualMemoryWithContext,
	}
}

// SystemInfo returns hostname, platform and architecture
func (c *Collector) SystemInfo(ctx context.Context) (SystemInfo, error) {
	info, err := c.hostInfo(ctx)
	if err != nil {
		return SystemInfo{}, errors.NewSystemError("system_info", "cannot read host information", err)
	}
	return SystemInfo{
		Hostname:   info.Hostname,
		Platform:   runtime.GOOS,
		Arch:       runtime.GOARCH,
		Type:       osType(runtime.GOOS),
		Endianness: endianness(),
	}, nil
}

// OSInfo returns the operating system release and edition
func (c *Collector) OSInfo(ctx context.Context) (OSInfo, error) {
	info, err := c.hostInfo(ctx)
	if err != nil {
		return OSInfo{}, errors.NewSystemError("os_info", "cannot read host information", err)
	}
	release := info.KernelVersion
	version := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	return OSInfo{
		Platform: runtime.GOOS,
		Edition:  Edition(runtime.GOOS, release),
		Release:  release,
		Version:  version,
		Type:     osType(runtime.GOOS),
	}, nil
}

// CPUInfo returns the first processor's model and the logical core count
func (c *Collector) CPUInfo(ctx context.Context) (CPUInfo, error) {
	infos, err := c.cpuInfo(ctx)
	if err != nil {
		return CPUInfo{}, errors.NewSystemError("cpu_info", "cannot read processor information", err)
	}
	if len(infos) == 0 {
		return CPUInfo{Model: "Unknown", Architecture: runtime.GOARCH}, nil
	}

	cores, err := c.cpuCounts(ctx, true)
	if err != nil || cores == 0 {
		cores = runtime.NumCPU()
	}

	return CPUInfo{
		Model:        strings.TrimSpace(infos[0].ModelName),
		Cores:        cores,
		SpeedMHz:     infos[0].Mhz,
		Architecture: runtime.GOARCH,
	}, nil
}

// MemoryInfo returns total, free and used physical memory
func (c *Collector) MemoryInfo(ctx context.Context) (MemoryInfo, error) {
	vm, err := c.memory(ctx)
	if err != nil {
		return MemoryInfo{}, errors.NewSystemError("memory_info", "cannot read memory information", err)
	}
	return NewMemoryInfo(vm.Total, vm.Available), nil
}

// AppInfo returns the application build information
func (c *Collector) AppInfo() AppInfo {
	return c.app
}

// Uptime returns the time since boot
func (c *Collector) Uptime(ctx context.Context) (Uptime, error) {
	secs, err := c.uptime(ctx)
	if err != nil {
		return Uptime{}, errors.NewSystemError("uptime", "cannot read uptime", err)
	}
	return NewUptime(secs), nil
}

// NewMemoryInfo derives usage figures from total and free bytes
func NewMemoryInfo(total, free uint64) MemoryInfo {
	if free > total {
		free = total
	}
	used := total - free
	percent := 0.0
	if total > 0 {
		percent = float64(used) / float64(total) * 100
	}
	return MemoryInfo{
		Total:        total,
		Free:         free,
		Used:         used,
		TotalGB:      formatGB(total),
		FreeGB:       formatGB(free),
		UsedGB:       formatGB(used),
		UsagePercent: strconv.FormatFloat(percent, 'f', 1, 64),
	}
}

// NewUptime splits seconds into days, hours and minutes
func NewUptime(seconds uint64) Uptime {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	return Uptime{
		Seconds:   seconds,
		Days:      days,
		Hours:     hours,
		Minutes:   minutes,
		Formatted: fmt.Sprintf("%dd %dh %dm", days, hours, minutes),
	}
}

// Edition maps a platform and kernel release to a marketing name
func Edition(goos, release string) string {
	switch goos {
	case "windows":
		major, minor, ok := parseRelease(release)
		if !ok {
			return "Unknown"
		}
		switch {
		case major >= 10:
			return "Windows 10/11"
		case major == 6 && minor >= 3:
			return "Windows 8.1"
		case major == 6 && minor == 2:
			return "Windows 8"
		case major == 6 && minor == 1:
			return "Windows 7"
		}
		return "Unknown"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return "Unknown"
	}
}

func parseRelease(release string) (major, minor int, ok bool) {
	fields := strings.FieldsFunc(release, func(r rune) bool { return r == '.' || r == ' ' })
	if len(fields) == 0 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	if len(fields) > 1 {
		minor, _ = strconv.Atoi(fields[1])
	}
	return major, minor, true
}

func osType(goos string) string {
	switch goos {
	case "windows":
		return "Windows_NT"
	case "darwin":
		return "Darwin"
	case "linux":
		return "Linux"
	default:
		if goos == "" {
			return ""
		}
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}

func endianness() string {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return "LE"
	}
	return "BE"
}

func formatGB(b uint64) string {
	return strconv.FormatFloat(float64(b)/bytesPerGB, 'f', 2, 64)
}
