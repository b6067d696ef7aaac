package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/lightfetch/confstore"
)

// Dump prints the parsed configuration file.
type Dump struct {
	Format string `default:"yaml" enum:"yaml,json,ini" help:"Output format (${enum})"      short:"F"`
	Indent int    `default:"2"                         help:"Indent width for YAML output" short:"i"`

	Sections []string `arg:"" help:"Print only the named sections, in the given order" optional:""`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := envFrom(ctx)

	doc, err := env.load()
	if err != nil {
		return err
	}

	doc, err = selectSections(doc, d.Sections)
	if err != nil {
		return err
	}

	switch d.Format {
	case "ini":
		return doc.Format(env.Stdout, confstore.LineSeparator)

	case "json":
		data, err := yaml.MarshalContext(ctx, documentMap(doc), yaml.JSON())
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintln(env.Stdout, strings.TrimSpace(string(data)))

		return err

	case "yaml":
		opts := []yaml.EncodeOption{yaml.UseLiteralStyleIfMultiline(true)}
		if d.Indent > 0 {
			opts = append(opts, yaml.Indent(d.Indent))
		} else {
			opts = append(opts, yaml.Flow(true))
		}

		data, err := yaml.MarshalContext(ctx, documentMap(doc), opts...)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = fmt.Fprint(env.Stdout, string(data))

		return err

	default:
		return ErrFormat.With(slog.String("format", d.Format))
	}
}

// selectSections returns a document holding only the named sections of doc.
// With no names, doc is returned as is.
func selectSections(doc *confstore.Document, names []string) (*confstore.Document, error) {
	if len(names) == 0 {
		return doc, nil
	}

	out := confstore.NewDocument()

	for _, name := range names {
		sec, ok := doc.Section(name)
		if !ok {
			return nil, confstore.ErrSectionNotFound.
				Detail(name).
				Suggest(name, doc.SectionNames()).
				With(slog.String("section", name))
		}

		for key, slot := range sec.All() {
			out.Set(name, key, slot)
		}
	}

	return out, nil
}

// documentMap converts doc to ordered YAML mappings. A key without a value
// is null and multi-line values are joined with newlines.
func documentMap(doc *confstore.Document) yaml.MapSlice {
	sections := make(yaml.MapSlice, 0)

	for name := range doc.Sections() {
		keys := make(yaml.MapSlice, 0)

		for key, slot := range doc.Keys(name) {
			var value any

			if !slot.IsUnset() {
				value = strings.ReplaceAll(slot.Text(), confstore.LineSeparator, "\n")
			}

			keys = append(keys, yaml.MapItem{Key: key, Value: value})
		}

		sections = append(sections, yaml.MapItem{Key: name, Value: keys})
	}

	return sections
}
