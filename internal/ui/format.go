package ui

import (
	"fmt"
	"strings"

	"lcars/internal/fileinfo"
	"lcars/internal/netinfo"
	"lcars/internal/sysinfo"
)

const (
	errorLoadingInfo = "Error loading information"
	unknownValue     = "Unknown"
	checkSeparator   = " • "
)

// ItemDetail is the secondary column of a browser row
func ItemDetail(item fileinfo.Item) string {
	switch item.Kind {
	case fileinfo.KindDirectory:
		return fileinfo.FormatTimestamp(item.ModifiedAt)
	case fileinfo.KindFile:
		parts := []string{fileinfo.FormatFileSize(item.Size)}
		if ts := fileinfo.FormatTimestamp(item.ModifiedAt); ts != "" {
			parts = append(parts, ts)
		}
		return strings.Join(parts, "  ")
	}
	return ""
}

// FirstLine returns the first line of a possibly multi-line status
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// PhotoInfo renders the details shown when a gallery photo is clicked
func PhotoInfo(photo fileinfo.Item) string {
	return strings.Join([]string{
		"Name: " + photo.Name,
		"Path: " + photo.Path,
		"Size: " + fileinfo.FormatFileSize(photo.Size),
		"Modified: " + fileinfo.FormatTimestamp(photo.ModifiedAt),
		"Type: " + photo.Extension,
	}, "\n")
}

// ConnectionSummary renders the connectivity headline and detail line
func ConnectionSummary(s netinfo.Snapshot) (title, details string) {
	checked := "Last checked: " + s.CheckedAt.Format("15:04:05")
	if !s.Connected {
		return "No Internet Connection", "Unable to reach internet" + checkSeparator + checked
	}

	var checks []string
	if s.DNSWorking {
		checks = append(checks, "DNS working")
	}
	if s.HTTPSWorking {
		checks = append(checks, "HTTPS working")
	}
	checks = append(checks, checked)
	return "Connected to Internet", strings.Join(checks, checkSeparator)
}

// InterfaceLines lists an interface's addresses, IPv4 first
func InterfaceLines(iface netinfo.Interface) []string {
	lines := make([]string, 0, len(iface.IPv4)+len(iface.IPv6))
	for _, a := range iface.IPv4 {
		lines = append(lines, addressLine("IPv4", a))
	}
	for _, a := range iface.IPv6 {
		lines = append(lines, addressLine("IPv6", a))
	}
	return lines
}

func addressLine(family string, a netinfo.Address) string {
	line := family + ": " + a.Address
	if a.Internal {
		line += " (Internal)"
	}
	return line
}

// InfoRow is one labelled value on the about page
type InfoRow struct {
	Section string
	Label   string
	Value   string
}

// AboutRows lays out a system snapshot. A failed query marks only the
// rows it feeds.
func AboutRows(s sysinfo.Snapshot) []InfoRow {
	const (
		device = "Device Specifications"
		osSpec = "OS Specifications"
		status = "System Status"
		app    = "Application"
	)

	sys, cpu, mem := s.System.Value, s.CPU.Value, s.Memory.Value
	osInfo, up, appInfo := s.OS.Value, s.Uptime.Value, s.App.Value

	rows := []InfoRow{
		{device, "Device name", pick(s.System.Err, orUnknown(sys.Hostname))},
		{device, "Processor", pick(s.CPU.Err, fmt.Sprintf("%s (%d cores @ %.0f MHz)", cpu.Model, cpu.Cores, cpu.SpeedMHz))},
		{device, "Installed RAM", pick(s.Memory.Err, mem.TotalGB+" GB")},
		{device, "System type", pick(s.System.Err, sys.Arch+"-based PC")},

		{osSpec, "Edition", pick(s.OS.Err, orUnknown(osInfo.Edition))},
		{osSpec, "Version", pick(s.OS.Err, firstNonEmpty(osInfo.Version, osInfo.Release))},
		{osSpec, "OS build", pick(s.OS.Err, orUnknown(osInfo.Release))},
		{osSpec, "Platform", pick(s.OS.Err, firstNonEmpty(osInfo.Type, osInfo.Platform))},

		{status, "System uptime", pick(s.Uptime.Err, up.Formatted)},
		{status, "Memory usage", pick(s.Memory.Err, fmt.Sprintf("%s GB (%s%%)", mem.UsedGB, mem.UsagePercent))},
		{status, "Free memory", pick(s.Memory.Err, mem.FreeGB+" GB")},

		{app, "App name", pick(s.App.Err, appInfo.Name)},
		{app, "App version", pick(s.App.Err, "v"+appInfo.Version)},
		{app, "Runtime", pick(s.App.Err, "Go "+strings.TrimPrefix(appInfo.GoVersion, "go")+checkSeparator+appInfo.UIToolkit)},
	}
	return rows
}

func pick(err error, value string) string {
	if err != nil {
		return errorLoadingInfo
	}
	return value
}

func orUnknown(s string) string {
	return firstNonEmpty(s, unknownValue)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
