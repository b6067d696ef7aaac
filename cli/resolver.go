package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lightfetch/confstore"
	"github.com/ardnew/lightfetch/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads the values of the
// flags in group from one section of a lightfetch configuration file. Flags
// outside group are never resolved.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("LOG", "log"), "/path/to/config.ini")
//
// A flag is looked up by its name without the group prefix, with hyphens
// replaced by spaces. Given the section
//
//	[ LOG ]
//	level = debug
//	time layout = rfc3339
//	pretty = false
//
// the flags --log-level=debug, --log-time-layout=rfc3339 and --no-log-pretty
// become the defaults. Command-line flags override config file values.
//
// A file that does not parse resolves nothing. The error is reported again
// by the command that loads the file.
func resolve(section, group string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		doc, err := confstore.Parse(string(data))
		if err != nil {
			log.Debug("configuration not resolved", slog.Any("error", err))

			return config{}, nil
		}

		sec, ok := doc.Section(section)
		if !ok {
			return config{}, nil
		}

		values := config{group: group, values: make(map[string]string, sec.Len())}

		for key, slot := range sec.All() {
			if slot.IsUnset() {
				continue
			}

			values.values[key] = strings.ReplaceAll(slot.Text(), `"`, "")
		}

		return values, nil
	}
}

// config implements [kong.Resolver] over the keys of one section.
type config struct {
	group  string
	values map[string]string
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if flag.Group == nil || flag.Group.Key != c.group {
		return nil, nil
	}

	name := strings.TrimPrefix(flag.Name, c.group+"-")

	value, ok := c.values[strings.ReplaceAll(name, "-", " ")]
	if !ok {
		// Not found - return nil to let Kong use defaults
		return nil, nil
	}

	return value, nil
}
