package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// Symbols prints the template symbols available to the fetch text.
type Symbols struct {
	NoPalette bool `help:"Omit color and attribute symbols" name:"no-palette"`
}

// Run executes the symbols command.
func (y *Symbols) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := envFrom(ctx)

	doc, err := env.load()
	if err != nil {
		return err
	}

	r := reader{doc: doc}
	format := readFormat(&r)

	if r.err != nil {
		return r.err
	}

	info, err := env.Collector.Collect(ctx)
	if err != nil {
		return ErrCollect.Wrap(err)
	}

	table := symbols(info, format, !y.NoPalette)

	sorted := make(yaml.MapSlice, 0, len(table))
	for _, name := range slices.Sorted(maps.Keys(table)) {
		sorted = append(sorted, yaml.MapItem{Key: name, Value: table[name]})
	}

	data, err := yaml.MarshalContext(ctx, sorted)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = fmt.Fprint(env.Stdout, string(data))

	return err
}
