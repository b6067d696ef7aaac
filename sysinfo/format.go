package sysinfo

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// MemoryFormat controls how sizes are printed.
type MemoryFormat struct {
	// Rounding is the number of significant digits kept after the first.
	Rounding int
	KB, MB, GB string
}

// UptimeFormat controls how [Info.Uptime] is printed.
type UptimeFormat struct {
	Suffix     bool
	Plurals    bool
	Character  string
	HideIfZero bool

	Day, Hour, Minute, Second string
}

// Format holds every formatting setting used by [Info.Symbols].
type Format struct {
	Memory MemoryFormat
	Uptime UptimeFormat
}

// DefaultFormat returns the formatting of the default configuration.
func DefaultFormat() Format {
	return Format{
		Memory: MemoryFormat{Rounding: 2, KB: " KB", MB: " MB", GB: " GB"},
		Uptime: UptimeFormat{
			Suffix:     true,
			Plurals:    true,
			Character:  "s",
			HideIfZero: true,
			Day:        " day",
			Hour:       " hour",
			Minute:     " minute",
			Second:     " second",
		},
	}
}

const mib = 1 << 20

// Size formats a byte count. Sizes are expressed in MiB first, then shown
// in GB above 1000, in MB above 1 and in KB otherwise.
func (f MemoryFormat) Size(bytes uint64) string {
	value := float64(bytes / mib)

	switch {
	case value > 1000:
		return significant(value/1000, 1+f.Rounding) + f.GB
	case value > 1:
		return significant(value, 1+f.Rounding) + f.MB
	default:
		return significant(value, 1+f.Rounding) + f.KB
	}
}

// significant formats v with at least digits significant digits, never
// dropping integer digits.
func significant(v float64, digits int) string {
	a := math.Abs(v)
	prec := 0

	switch {
	case a >= 1:
		if n := int(1 + math.Floor(math.Log10(a))); n <= digits {
			prec = digits - n
		}
	case a > 0:
		prec = digits - int(1+math.Floor(math.Log10(a)))
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Duration formats d as days, hours, minutes and seconds.
func (f UptimeFormat) Duration(d time.Duration) string {
	total := int64(d / time.Second)
	units := []struct {
		value  int64
		suffix string
	}{
		{total / 86400, f.Day},
		{total / 3600 % 24, f.Hour},
		{total / 60 % 60, f.Minute},
		{total % 60, f.Second},
	}

	parts := make([]string, 0, len(units))

	for _, u := range units {
		if f.HideIfZero && u.value == 0 {
			continue
		}

		parts = append(parts, f.unit(u.value, u.suffix))
	}

	if len(parts) == 0 {
		return f.unit(0, f.Second)
	}

	return strings.Join(parts, " ")
}

func (f UptimeFormat) unit(value int64, suffix string) string {
	s := strconv.FormatInt(value, 10)
	if !f.Suffix {
		return s
	}

	s += suffix
	if f.Plurals && value > 1 {
		s += f.Character
	}

	return s
}

func seconds(n uint64) time.Duration {
	if n > math.MaxInt64/uint64(time.Second) {
		return math.MaxInt64
	}

	return time.Duration(n) * time.Second
}

// Symbols returns the template symbols describing info.
func (info *Info) Symbols(f Format) map[string]string {
	s := map[string]string{
		"USERNAME":           info.Username,
		"HOSTNAME":           info.Hostname,
		"DISTRO_NAME":        info.Distro.Name,
		"DISTRO_PRETTY_NAME": info.Distro.PrettyName,
		"DISTRO_BUILD":       info.Distro.Build,
		"DISTRO_ID":          info.Distro.ID,
		"DISTRO_ARCH":        info.Distro.Arch,
		"KERNEL":             info.Distro.Kernel,
		"SHELL":              info.Shell,
		"TERMINAL":           info.Terminal,
		"PACKAGES":           info.Packages,
		"CPU_MODEL":          info.CPU.Model,
		"CPU_VENDOR":         info.CPU.Vendor,
		"CPU_CORES":          count(info.CPU.Cores),
		"CPU_THREADS":        count(info.CPU.Threads),
		"CPU_GHZ":            Unknown,
		"CPU_LOAD":           Unknown,
		"UPTIME":             Unknown,
		"UPTIME_PRETTY":      Unknown,
		"MEMORY_TOTAL":       Unknown,
		"MEMORY_USED":        Unknown,
		"MEMORY_FREE":        Unknown,
		"MEMORY_AVAILABLE":   Unknown,
		"SWAP_TOTAL":         Unknown,
		"SWAP_USED":          Unknown,
	}

	if info.CPU.MHz > 0 {
		s["CPU_GHZ"] = strconv.FormatFloat(info.CPU.MHz/1000, 'f', 2, 64)
	}

	if info.CPU.Load >= 0 {
		s["CPU_LOAD"] = strconv.FormatFloat(math.Round(info.CPU.Load*100)/100, 'f', -1, 64)
	}

	if info.Uptime >= 0 {
		s["UPTIME"] = strconv.FormatInt(int64(info.Uptime/time.Second), 10)
		s["UPTIME_PRETTY"] = f.Uptime.Duration(info.Uptime)
	}

	if m := info.Memory; m.HasMemory {
		s["MEMORY_TOTAL"] = f.Memory.Size(m.Total)
		s["MEMORY_USED"] = f.Memory.Size(m.Used)
		s["MEMORY_FREE"] = f.Memory.Size(m.Free)
		s["MEMORY_AVAILABLE"] = f.Memory.Size(m.Available)
	}

	if m := info.Memory; m.HasSwap {
		s["SWAP_TOTAL"] = f.Memory.Size(m.SwapTotal)
		s["SWAP_USED"] = f.Memory.Size(m.SwapUsed)
	}

	return s
}

func count(n int) string {
	if n <= 0 {
		return Unknown
	}

	return strconv.Itoa(n)
}
