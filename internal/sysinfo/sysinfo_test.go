package sysinfo

import (
	"context"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcars/internal/errors"
)

func stubCollector() *Collector {
	c := NewCollector(AppInfo{Name: "lcars", Version: "1.2.3", UIToolkit: "Fyne"})
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{Hostname: "enterprise", KernelVersion: "10.0.22631", Platform: "Microsoft Windows 11 Pro", PlatformVersion: "23H2"}, nil
	}
	c.uptime = func(ctx context.Context) (uint64, error) { return 2*86400 + 3*3600 + 4*60 + 5, nil }
	c.cpuInfo = func(ctx context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{ModelName: "  Duotronic 9000 ", Mhz: 3200}}, nil
	}
	c.cpuCounts = func(ctx context.Context, logical bool) (int, error) { return 16, nil }
	c.memory = func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 16 << 30, Available: 4 << 30}, nil
	}
	return c
}

func TestEdition(t *testing.T) {
	testCases := []struct {
		goos     string
		release  string
		expected string
	}{
		{"windows", "10.0.22631", "Windows 10/11"},
		{"windows", "10.0.19045 Build 19045", "Windows 10/11"},
		{"windows", "6.3.9600", "Windows 8.1"},
		{"windows", "6.2.9200", "Windows 8"},
		{"windows", "6.1.7601", "Windows 7"},
		{"windows", "5.1", "Unknown"},
		{"windows", "", "Unknown"},
		{"darwin", "23.1.0", "macOS"},
		{"linux", "6.5.0-14-generic", "Linux"},
		{"freebsd", "14.0", "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Edition(tc.goos, tc.release), "%s %s", tc.goos, tc.release)
	}
}

func TestNewUptime(t *testing.T) {
	u := NewUptime(90061)
	assert.Equal(t, uint64(1), u.Days)
	assert.Equal(t, uint64(1), u.Hours)
	assert.Equal(t, uint64(1), u.Minutes)
	assert.Equal(t, "1d 1h 1m", u.Formatted)

	assert.Equal(t, "0d 0h 0m", NewUptime(59).Formatted)
}

func TestNewMemoryInfo(t *testing.T) {
	m := NewMemoryInfo(8<<30, 2<<30)
	assert.Equal(t, uint64(6<<30), m.Used)
	assert.Equal(t, "8.00", m.TotalGB)
	assert.Equal(t, "2.00", m.FreeGB)
	assert.Equal(t, "6.00", m.UsedGB)
	assert.Equal(t, "75.0", m.UsagePercent)

	empty := NewMemoryInfo(0, 0)
	assert.Equal(t, "0.0", empty.UsagePercent)
}

func TestCollectorQueries(t *testing.T) {
	c := stubCollector()
	ctx := context.Background()

	sys, err := c.SystemInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "enterprise", sys.Hostname)
	assert.Equal(t, runtime.GOOS, sys.Platform)
	assert.Equal(t, runtime.GOARCH, sys.Arch)
	assert.Contains(t, []string{"LE", "BE"}, sys.Endianness)

	osInfo, err := c.OSInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10.0.22631", osInfo.Release)
	assert.Equal(t, "Microsoft Windows 11 Pro 23H2", osInfo.Version)

	cpuInfo, err := c.CPUInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Duotronic 9000", cpuInfo.Model)
	assert.Equal(t, 16, cpuInfo.Cores)
	assert.Equal(t, 3200.0, cpuInfo.SpeedMHz)

	memInfo, err := c.MemoryInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "75.0", memInfo.UsagePercent)

	up, err := c.Uptime(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2d 3h 4m", up.Formatted)

	app := c.AppInfo()
	assert.Equal(t, "1.2.3", app.Version)
	assert.Equal(t, runtime.Version(), app.GoVersion)
}

func TestCPUInfoWithoutProcessors(t *testing.T) {
	c := stubCollector()
	c.cpuInfo = func(ctx context.Context) ([]cpu.InfoStat, error) { return nil, nil }

	info, err := c.CPUInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Unknown", info.Model)
	assert.Equal(t, 0, info.Cores)
}

func TestSnapshotIsolatesFailures(t *testing.T) {
	c := stubCollector()
	c.memory = func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return nil, fmt.Errorf("sysctl unavailable")
	}
	c.uptime = func(ctx context.Context) (uint64, error) {
		time.Sleep(20 * time.Millisecond)
		return 120, nil
	}

	s := c.Snapshot(context.Background())

	assert.True(t, errors.IsWholeCallFailure(s.Memory.Err))
	assert.NoError(t, s.System.Err)
	assert.NoError(t, s.OS.Err)
	assert.NoError(t, s.CPU.Err)
	assert.NoError(t, s.Uptime.Err)
	assert.Equal(t, "0d 0h 2m", s.Uptime.Value.Formatted)
	assert.Equal(t, "lcars", s.App.Value.Name)
}

func TestRealCollectorSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("touches the host")
	}
	s := NewCollector(AppInfo{Name: "lcars"}).Snapshot(context.Background())
	assert.Equal(t, "lcars", s.App.Value.Name)
	if s.Uptime.Err == nil {
		assert.NotEmpty(t, s.Uptime.Value.Formatted)
	}
}
