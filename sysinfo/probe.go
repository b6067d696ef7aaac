package sysinfo

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// File locations read through the collector filesystem.
const (
	OSReleasePath = "/etc/os-release"
	PacmanPath    = "/var/lib/pacman/local"
	DpkgPath      = "/var/lib/dpkg/status"
)

// maxParents bounds the walk up the process tree.
const maxParents = 32

func (c *Collector) probeHost(ctx context.Context, info *Info) error {
	h, err := c.host(ctx)
	if err != nil {
		return fmt.Errorf("host: %w", err)
	}

	info.Hostname = orUnknown(h.Hostname)
	info.Distro.Kernel = orUnknown(h.KernelVersion)
	info.Distro.Arch = orUnknown(h.KernelArch)
	info.Uptime = seconds(h.Uptime)

	return nil
}

// probeRelease reads os-release(5). Quotes are removed from every value.
func (c *Collector) probeRelease(info *Info) error {
	data, err := afero.ReadFile(c.fs, OSReleasePath)
	if err != nil {
		return fmt.Errorf("os-release: %w", err)
	}

	for key, value := range parseOSRelease(data) {
		switch key {
		case "NAME":
			info.Distro.Name = orUnknown(value)
		case "PRETTY_NAME":
			info.Distro.PrettyName = orUnknown(value)
		case "ID":
			info.Distro.ID = orUnknown(value)
		case "BUILD_ID", "VERSION_ID":
			if info.Distro.Build == Unknown || key == "BUILD_ID" {
				info.Distro.Build = orUnknown(value)
			}
		}
	}

	return nil
}

func parseOSRelease(data []byte) map[string]string {
	out := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		out[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
	}

	return out
}

func (c *Collector) probeCPU(ctx context.Context, out *CPU) error {
	var errs []error

	stats, err := c.cpus(ctx)
	if err == nil && len(stats) > 0 {
		out.Model = orUnknown(strings.TrimSpace(stats[0].ModelName))
		out.Vendor = orUnknown(vendorName(stats[0].VendorID))
		out.MHz = stats[0].Mhz
	} else if err != nil {
		errs = append(errs, fmt.Errorf("cpu info: %w", err))
	}

	cores, err := c.counts(ctx, false)
	if err != nil {
		errs = append(errs, fmt.Errorf("cpu cores: %w", err))
	}

	threads, err := c.counts(ctx, true)
	if err != nil {
		errs = append(errs, fmt.Errorf("cpu threads: %w", err))
	}

	out.Cores, out.Threads = cores, threads

	return errors.Join(errs...)
}

func vendorName(id string) string {
	switch id = strings.TrimSpace(id); id {
	case "GenuineIntel":
		return "Intel"
	case "AuthenticAMD":
		return "AMD"
	default:
		return id
	}
}

func (c *Collector) probeLoad(ctx context.Context, out *CPU) error {
	avg, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	out.Load = min(avg.Load1*100, 100)

	return nil
}

func (c *Collector) probeMemory(ctx context.Context, out *Memory) error {
	vm, err := c.vmem(ctx)
	if err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	out.Total, out.Used, out.Free, out.Available = vm.Total, vm.Used, vm.Free, vm.Available
	out.HasMemory = true

	return nil
}

func (c *Collector) probeSwap(ctx context.Context, out *Memory) error {
	sw, err := c.swap(ctx)
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}

	out.SwapTotal, out.SwapUsed = sw.Total, sw.Used
	out.HasSwap = true

	return nil
}

// probePackages counts installed packages from the pacman and dpkg
// databases that exist.
func (c *Collector) probePackages(info *Info) error {
	var (
		total int
		found bool
	)

	entries, err := afero.ReadDir(c.fs, PacmanPath)
	if err == nil {
		total += len(entries)
		found = true
	}

	status, err := afero.ReadFile(c.fs, DpkgPath)
	if err == nil {
		total += bytes.Count(status, []byte("\nPackage: "))
		if bytes.HasPrefix(status, []byte("Package: ")) {
			total++
		}

		found = true
	}

	if !found {
		return errors.New("packages: no package database")
	}

	info.Packages = strconv.Itoa(total)

	return nil
}

// probeTerminal walks up from the parent process while the process name is
// part of the login shell path, so "zsh" under "/usr/bin/zsh" is skipped in
// favor of the terminal emulator that started it.
func (c *Collector) probeTerminal(ctx context.Context, info *Info) error {
	shell := c.getenv("SHELL")

	self, err := c.self(ctx)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	proc, err := self.ParentWithContext(ctx)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	for range maxParents {
		name, err := proc.NameWithContext(ctx)
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}

		if name == "" || !strings.Contains(shell, name) {
			info.Terminal = orUnknown(name)

			return nil
		}

		parent, err := proc.ParentWithContext(ctx)
		if err != nil {
			// The shell is the topmost process we can see.
			info.Terminal = name

			return nil
		}

		proc = parent
	}

	return errors.New("terminal: process tree too deep")
}
