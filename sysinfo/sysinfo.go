package sysinfo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/ardnew/lightfetch/log"
)

// Unknown is the value of every field a probe could not determine.
const Unknown = "UNKNOWN"

// Distro describes the operating system.
type Distro struct {
	Name       string
	PrettyName string
	Build      string
	ID         string
	Arch       string
	Kernel     string
}

// CPU describes the processor. Counts of zero are unknown.
type CPU struct {
	Model   string
	Vendor  string
	Cores   int
	Threads int
	MHz     float64
	// Load is the one minute load average as a percentage capped at 100, or
	// a negative number if unknown.
	Load float64
}

// Memory holds sizes in bytes. HasMemory and HasSwap report whether the
// corresponding fields were read.
type Memory struct {
	Total     uint64
	Used      uint64
	Free      uint64
	Available uint64
	SwapTotal uint64
	SwapUsed  uint64

	HasMemory bool
	HasSwap   bool
}

// Info is a snapshot of the system.
type Info struct {
	Username string
	Hostname string
	Shell    string
	Terminal string
	Packages string

	Distro Distro
	CPU    CPU
	Memory Memory

	// Uptime is negative if unknown.
	Uptime time.Duration
}

func newInfo() *Info {
	return &Info{
		Username: Unknown,
		Hostname: Unknown,
		Shell:    Unknown,
		Terminal: Unknown,
		Packages: Unknown,
		Distro: Distro{
			Name:       Unknown,
			PrettyName: Unknown,
			Build:      Unknown,
			ID:         Unknown,
			Arch:       Unknown,
			Kernel:     Unknown,
		},
		CPU:    CPU{Model: Unknown, Vendor: Unknown, Load: -1},
		Uptime: -1,
	}
}

// Process is the subset of a process used to find the terminal emulator.
type Process interface {
	NameWithContext(ctx context.Context) (string, error)
	ParentWithContext(ctx context.Context) (Process, error)
}

// Collector gathers an [Info]. Every data source can be replaced with an
// option, which is how tests run without touching the host.
type Collector struct {
	fs     afero.Fs
	getenv func(string) string
	self   func(ctx context.Context) (Process, error)

	host   func(ctx context.Context) (*host.InfoStat, error)
	cpus   func(ctx context.Context) ([]cpu.InfoStat, error)
	counts func(ctx context.Context, logical bool) (int, error)
	vmem   func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swap   func(ctx context.Context) (*mem.SwapMemoryStat, error)
	load   func(ctx context.Context) (*load.AvgStat, error)
}

// Option configures a [Collector].
type Option func(*Collector)

// WithFs sets the filesystem holding /etc and package databases.
func WithFs(fs afero.Fs) Option { return func(c *Collector) { c.fs = fs } }

// WithEnv sets the environment lookup.
func WithEnv(getenv func(string) string) Option {
	return func(c *Collector) { c.getenv = getenv }
}

// WithProcess sets the function returning the current process.
func WithProcess(self func(ctx context.Context) (Process, error)) Option {
	return func(c *Collector) { c.self = self }
}

// WithHost sets the host information probe.
func WithHost(fn func(ctx context.Context) (*host.InfoStat, error)) Option {
	return func(c *Collector) { c.host = fn }
}

// WithCPU sets the processor probes.
func WithCPU(
	info func(ctx context.Context) ([]cpu.InfoStat, error),
	counts func(ctx context.Context, logical bool) (int, error),
) Option {
	return func(c *Collector) { c.cpus, c.counts = info, counts }
}

// WithMemory sets the memory probes.
func WithMemory(
	vmem func(ctx context.Context) (*mem.VirtualMemoryStat, error),
	swap func(ctx context.Context) (*mem.SwapMemoryStat, error),
) Option {
	return func(c *Collector) { c.vmem, c.swap = vmem, swap }
}

// WithLoad sets the load average probe.
func WithLoad(fn func(ctx context.Context) (*load.AvgStat, error)) Option {
	return func(c *Collector) { c.load = fn }
}

// NewCollector returns a Collector reading the host system.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		fs:     afero.NewOsFs(),
		getenv: os.Getenv,
		self:   selfProcess,
		host:   host.InfoWithContext,
		cpus:   cpu.InfoWithContext,
		counts: cpu.CountsWithContext,
		vmem:   mem.VirtualMemoryWithContext,
		swap:   mem.SwapMemoryWithContext,
		load:   load.AvgWithContext,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Collect runs every probe concurrently and returns what they found. A
// failed probe leaves its fields [Unknown] and is logged at debug level, so
// the only error returned is the cancellation of ctx.
func (c *Collector) Collect(ctx context.Context) (*Info, error) {
	info := newInfo()

	info.Username = orUnknown(c.getenv("USER"))
	info.Shell = orUnknown(c.getenv("SHELL"))

	// Each probe writes a distinct set of fields.
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error { return c.probeHost(ctx, info) })
	p.Go(func(ctx context.Context) error { return c.probeRelease(info) })
	p.Go(func(ctx context.Context) error { return c.probeCPU(ctx, &info.CPU) })
	p.Go(func(ctx context.Context) error { return c.probeLoad(ctx, &info.CPU) })
	p.Go(func(ctx context.Context) error { return c.probeMemory(ctx, &info.Memory) })
	p.Go(func(ctx context.Context) error { return c.probeSwap(ctx, &info.Memory) })
	p.Go(func(ctx context.Context) error { return c.probePackages(info) })
	p.Go(func(ctx context.Context) error { return c.probeTerminal(ctx, info) })

	err := p.Wait()
	if err != nil {
		log.DebugContext(ctx, "system probe failed", slog.Any("error", err))
	}

	return info, ctx.Err()
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}

	return s
}

type gopsProcess struct{ *process.Process }

func (p gopsProcess) ParentWithContext(ctx context.Context) (Process, error) {
	parent, err := p.Process.ParentWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return gopsProcess{parent}, nil
}

func selfProcess(ctx context.Context) (Process, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return nil, err
	}

	return gopsProcess{p}, nil
}
