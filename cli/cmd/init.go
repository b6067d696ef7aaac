package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/lightfetch/log"
)

// Init writes the default configuration file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := envFrom(ctx)

	err = env.store().Create(env.ConfigPath, i.Force)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", env.ConfigPath),
		slog.Bool("force", i.Force),
	)

	_, err = fmt.Fprintln(env.Stdout, env.ConfigPath)

	return err
}
