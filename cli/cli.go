package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lightfetch/cli/cmd"
	"github.com/ardnew/lightfetch/pkg"
)

// CLI is the top-level command-line interface for lightfetch.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Config  string      `default:"${config}" help:"Configuration file" placeholder:"PATH" short:"c" type:"path"`
	Version versionFlag `help:"Print version information and exit"`
	Welcome bool        `help:"Print the welcome message before running the command"`

	Fetch   cmd.Fetch   `cmd:"" default:"withargs" help:"Print system information beside art (default)"`
	Init    cmd.Init    `cmd:""                    help:"Write the default configuration file"`
	Dump    cmd.Dump    `cmd:""                    help:"Print the parsed configuration file"`
	Get     cmd.Get     `cmd:""                    help:"Print one configuration value"`
	Symbols cmd.Symbols `cmd:""                    help:"Print the template symbols of this system"`
}

// versionFlag prints the version banner as soon as it is parsed.
type versionFlag bool

// BeforeReset implements the kong hook run before flag values are reset,
// which lets --version work even if the rest of the command line is invalid.
func (versionFlag) BeforeReset(app *kong.Kong) error {
	err := cmd.PrintVersion(app.Stdout, uint64(time.Now().UnixMilli()))
	if err != nil {
		return err
	}

	app.Exit(0)

	return nil
}

// Run executes the lightfetch CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	defaultConfig := cmd.DefaultConfigPath()

	vars := kong.Vars{
		cmd.ConfigIdentifier: defaultConfig,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position, and for the configuration file whose [ LOG ] section
	// supplies the logger flag defaults.
	cli.Log.scan(args)
	configFile := scanConfig(args, defaultConfig)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve(cmd.SectionLog, cli.Log.group().Key), configFile),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// those resolved from the configuration file.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Commands receive ctx from the singleton provider bound above.
	ctx = cmd.WithEnv(ctx, cmd.Env{
		Stdout:     ktx.Stdout,
		ConfigPath: cli.Config,
	})

	if cli.Welcome {
		err = cmd.PrintWelcome(ktx.Stdout, cli.Config)
		if err != nil {
			return err
		}
	}

	// Execute the selected command
	return ktx.Run(&cli)
}

// Report writes err to w in the terminal error format.
func Report(w io.Writer, err error) {
	_, _ = io.WriteString(w, cmd.Box(err)+"\n")
}

// scanConfig returns the configuration file named by the last --config or -c
// flag in args, or def if there is none.
func scanConfig(args []string, def string) string {
	path := def

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if arg == "--config" || arg == "-c" {
			if i+1 < len(args) {
				path = args[i+1]
				i++
			}

			continue
		}

		for _, prefix := range []string{"--config=", "-c="} {
			if v, ok := strings.CutPrefix(arg, prefix); ok {
				path = v
			}
		}
	}

	return pkg.ExpandHome(path)
}
