package sysinfo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProbe = errors.New("probe unavailable")

type fakeProcess struct {
	name   string
	parent *fakeProcess
}

func (p *fakeProcess) NameWithContext(context.Context) (string, error) { return p.name, nil }

func (p *fakeProcess) ParentWithContext(context.Context) (Process, error) {
	if p.parent == nil {
		return nil, errProbe
	}

	return p.parent, nil
}

// chain returns a process whose ancestors have the given names, nearest
// first.
func chain(names ...string) *fakeProcess {
	var top *fakeProcess
	for i := len(names) - 1; i >= 0; i-- {
		top = &fakeProcess{name: names[i], parent: top}
	}

	return &fakeProcess{name: "lightfetch", parent: top}
}

func fakeFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, OSReleasePath, []byte(
		"NAME=\"Arch Linux\"\nPRETTY_NAME=\"Arch Linux\"\nID=arch\nBUILD_ID=rolling\n# comment\n",
	), 0o644))

	for _, pkg := range []string{"bash-5.2", "go-1.25", "zsh-5.9", "ALPM_DB_VERSION"} {
		require.NoError(t, fs.MkdirAll(PacmanPath+"/"+pkg, 0o755))
	}

	return fs
}

func fakeCollector(t *testing.T, opts ...Option) *Collector {
	t.Helper()

	env := map[string]string{"USER": "ardnew", "SHELL": "/usr/bin/zsh"}

	base := []Option{
		WithFs(fakeFs(t)),
		WithEnv(func(k string) string { return env[k] }),
		WithProcess(func(context.Context) (Process, error) {
			return chain("zsh", "alacritty", "systemd"), nil
		}),
		WithHost(func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{
				Hostname:      "archbox",
				KernelVersion: "6.9.1-arch1-1",
				KernelArch:    "x86_64",
				Uptime:        90061,
			}, nil
		}),
		WithCPU(
			func(context.Context) ([]cpu.InfoStat, error) {
				return []cpu.InfoStat{{
					VendorID:  "AuthenticAMD",
					ModelName: "AMD Ryzen 7 5800X 8-Core Processor ",
					Mhz:       3800,
				}}, nil
			},
			func(_ context.Context, logical bool) (int, error) {
				if logical {
					return 16, nil
				}

				return 8, nil
			},
		),
		WithMemory(
			func(context.Context) (*mem.VirtualMemoryStat, error) {
				return &mem.VirtualMemoryStat{
					Total:     16384 * mib,
					Used:      4096 * mib,
					Free:      8192 * mib,
					Available: 12000 * mib,
				}, nil
			},
			func(context.Context) (*mem.SwapMemoryStat, error) {
				return &mem.SwapMemoryStat{Total: 2048 * mib, Used: 0}, nil
			},
		),
		WithLoad(func(context.Context) (*load.AvgStat, error) {
			return &load.AvgStat{Load1: 0.42}, nil
		}),
	}

	return NewCollector(append(base, opts...)...)
}

func TestCollector_Collect(t *testing.T) {
	info, err := fakeCollector(t).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ardnew", info.Username)
	assert.Equal(t, "/usr/bin/zsh", info.Shell)
	assert.Equal(t, "archbox", info.Hostname)
	assert.Equal(t, "alacritty", info.Terminal)
	assert.Equal(t, "4", info.Packages)
	assert.Equal(t, Distro{
		Name:       "Arch Linux",
		PrettyName: "Arch Linux",
		Build:      "rolling",
		ID:         "arch",
		Arch:       "x86_64",
		Kernel:     "6.9.1-arch1-1",
	}, info.Distro)
	assert.Equal(t, "AMD", info.CPU.Vendor)
	assert.Equal(t, "AMD Ryzen 7 5800X 8-Core Processor", info.CPU.Model)
	assert.Equal(t, 8, info.CPU.Cores)
	assert.Equal(t, 16, info.CPU.Threads)
	assert.InDelta(t, 42.0, info.CPU.Load, 1e-9)
	assert.Equal(t, 25*time.Hour+61*time.Second, info.Uptime)
	assert.True(t, info.Memory.HasMemory)
	assert.True(t, info.Memory.HasSwap)
}

func TestCollector_FailedProbesLeaveUnknown(t *testing.T) {
	c := fakeCollector(t,
		WithFs(afero.NewMemMapFs()),
		WithEnv(func(string) string { return "" }),
		WithProcess(func(context.Context) (Process, error) { return nil, errProbe }),
		WithHost(func(context.Context) (*host.InfoStat, error) { return nil, errProbe }),
		WithCPU(
			func(context.Context) ([]cpu.InfoStat, error) { return nil, errProbe },
			func(context.Context, bool) (int, error) { return 0, errProbe },
		),
		WithMemory(
			func(context.Context) (*mem.VirtualMemoryStat, error) { return nil, errProbe },
			func(context.Context) (*mem.SwapMemoryStat, error) { return nil, errProbe },
		),
		WithLoad(func(context.Context) (*load.AvgStat, error) { return nil, errProbe }),
	)

	info, err := c.Collect(context.Background())
	require.NoError(t, err)

	for name, value := range info.Symbols(DefaultFormat()) {
		assert.Equal(t, Unknown, value, name)
	}
}

func TestCollector_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	info, err := fakeCollector(t).Collect(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, info)
}

func TestProbeTerminal(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		proc  *fakeProcess
		want  string
	}{
		{"parent is terminal", "/bin/bash", chain("kitty", "systemd"), "kitty"},
		{"skip shell", "/bin/bash", chain("bash", "kitty"), "kitty"},
		{"skip nested shells", "/usr/bin/bash", chain("bash", "bash", "tmux"), "tmux"},
		{"shell at top", "/bin/bash", chain("bash"), "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(
				WithEnv(func(string) string { return tt.shell }),
				WithProcess(func(context.Context) (Process, error) { return tt.proc, nil }),
			)

			info := newInfo()
			require.NoError(t, c.probeTerminal(context.Background(), info))
			assert.Equal(t, tt.want, info.Terminal)
		})
	}
}

func TestProbePackages_Dpkg(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, DpkgPath, []byte(
		"Package: bash\nStatus: install ok installed\n\nPackage: coreutils\n\nPackage: zsh\n",
	), 0o644))

	info := newInfo()
	require.NoError(t, NewCollector(WithFs(fs)).probePackages(info))
	assert.Equal(t, "3", info.Packages)
}

func TestParseOSRelease(t *testing.T) {
	got := parseOSRelease([]byte("NAME='Debian GNU/Linux'\n  VERSION_ID=\"12\"\nbogus\n\n#X=1\n"))

	assert.Equal(t, map[string]string{"NAME": "Debian GNU/Linux", "VERSION_ID": "12"}, got)
}

func TestVendorName(t *testing.T) {
	assert.Equal(t, "Intel", vendorName("GenuineIntel"))
	assert.Equal(t, "AMD", vendorName(" AuthenticAMD "))
	assert.Equal(t, "ARM", vendorName("ARM"))
}
