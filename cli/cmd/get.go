package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ardnew/lightfetch/confstore"
)

// Get prints one configuration value read as the given type.
type Get struct {
	Type string `default:"str" enum:"str,bool,int,filter" help:"Read the value as ${enum}" short:"t"`

	Section string `arg:"" help:"Section name, such as GENERAL"`
	Key     string `arg:"" help:"Key name, such as 'auto center'"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := envFrom(ctx)

	doc, err := env.load()
	if err != nil {
		return err
	}

	value, err := g.read(doc)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(env.Stdout, value)

	return err
}

// read returns the requested value in its canonical text form.
func (g *Get) read(doc *confstore.Document) (string, error) {
	switch g.Type {
	case "str":
		return doc.GetStr(g.Section, g.Key)

	case "bool":
		v, err := doc.GetBool(g.Section, g.Key)

		return strconv.FormatBool(v), err

	case "int":
		v, err := doc.GetInt(g.Section, g.Key)

		return strconv.FormatUint(uint64(v), 10), err

	case "filter":
		v, err := doc.GetFilter(g.Section, g.Key)

		return v.String(), err

	default:
		return "", ErrValueType.With(slog.String("type", g.Type))
	}
}
