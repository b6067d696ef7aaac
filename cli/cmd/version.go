package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/lightfetch/art"
	"github.com/ardnew/lightfetch/pkg"
	"github.com/ardnew/lightfetch/random"
)

//nolint:gochecknoglobals
var (
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintVersion writes the version banner and a cat picked by a generator
// seeded with seed.
func PrintVersion(w io.Writer, seed uint64) error {
	authors := make([]string, 0, len(pkg.Author))
	for _, a := range pkg.Author {
		authors = append(authors, a.Name)
	}

	cat := art.Cats[random.New(seed).Range(0, len(art.Cats)-1)]

	_, err := fmt.Fprintf(w, heredoc.Doc(`
		%s%s %s
		%s %s
		%s %s

		%s %s
		%s
	`),
		yellow.Render("⚡"), gray.Render(strings.ToUpper(pkg.Name)+" v"), yellow.Render(pkg.Version),
		gray.Render("Made by"), yellow.Render(strings.Join(authors, ", ")),
		gray.Render("Source:"), pkg.Repository,
		gray.Render("License:"), yellow.Render(pkg.License),
		yellow.Render(strings.TrimPrefix(cat, "\n")),
	)

	return err
}

// PrintWelcome writes the welcome message naming the configuration file.
func PrintWelcome(w io.Writer, configPath string) error {
	_, err := fmt.Fprintf(w, heredoc.Doc(`
		%s Welcome to %s!

		  %s
		  Your configuration lives in:
		      %s

		  Edit the [ FETCH ] text to choose what is printed, and the [ ART ]
		  section to draw an ASCII file or an image beside it. Run
		  '%s symbols' to list every {VARIABLE} you can use, or
		  '%s init --force' to start over from the defaults.

	`),
		yellow.Render("⚡"), yellow.Render(pkg.Name),
		gray.Render(pkg.Description+"."),
		yellow.Render(configPath),
		pkg.Name, pkg.Name,
	)

	return err
}
