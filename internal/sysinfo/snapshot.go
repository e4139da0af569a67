package sysinfo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result pairs a query value with the error that query produced
type Result[T any] struct {
	Value T
	Err   error
}

// Snapshot holds every system query, each with its own outcome
type Snapshot struct {
	System Result[SystemInfo]
	OS     Result[OSInfo]
	CPU    Result[CPUInfo]
	Memory Result[MemoryInfo]
	App    Result[AppInfo]
	Uptime Result[Uptime]
}

// Snapshot runs all queries concurrently. A failing query is recorded in
// its Result and never holds up the others.
func (c *Collector) Snapshot(ctx context.Context) Snapshot {
	var s Snapshot
	var g errgroup.Group

	g.Go(func() error {
		s.System.Value, s.System.Err = c.SystemInfo(ctx)
		return nil
	})
	g.Go(func() error {
		s.OS.Value, s.OS.Err = c.OSInfo(ctx)
		return nil
	})
	g.Go(func() error {
		s.CPU.Value, s.CPU.Err = c.CPUInfo(ctx)
		return nil
	})
	g.Go(func() error {
		s.Memory.Value, s.Memory.Err = c.MemoryInfo(ctx)
		return nil
	})
	g.Go(func() error {
		s.Uptime.Value, s.Uptime.Err = c.Uptime(ctx)
		return nil
	})
	s.App.Value = c.AppInfo()

	_ = g.Wait()
	return s
}
