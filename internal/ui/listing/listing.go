// Package listing renders recent files and menus for the terminal.
package listing

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/ui/output"
	"go.trai.ch/recent/internal/ui/style"
)

// Printer writes styled listings to a writer.
type Printer struct {
	w       io.Writer
	heading lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
}

// New creates a Printer for w. Colors follow the terminal profile and NO_COLOR.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(style.Iris),
		muted:   r.NewStyle().Foreground(style.Slate),
		success: r.NewStyle().Foreground(style.Green),
		warning: r.NewStyle().Foreground(style.Yellow),
	}
}

// Paths prints paths as a numbered list under title.
func (p *Printer) Paths(title string, paths []string) error {
	rows := make([]row, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, row{label: path})
	}
	return p.table(title, rows)
}

// Menu prints the entries of a submenu. The resource of an entry is shown
// next to its label when the label was shortened.
func (p *Printer) Menu(path domain.MenuPath, entries []domain.Descriptor) error {
	rows := make([]row, 0, len(entries))
	for i := range entries {
		r := row{label: entries[i].Label()}
		if resource, ok := entries[i].Resource(); ok && resource != r.label {
			r.detail = resource
		}
		rows = append(rows, r)
	}
	return p.table(path.String(), rows)
}

// Success prints msg behind a check mark.
func (p *Printer) Success(msg string) error {
	_, err := fmt.Fprintln(p.w, p.success.Render(style.Check+" "+msg))
	return err
}

// Warning prints msg behind a warning sign.
func (p *Printer) Warning(msg string) error {
	_, err := fmt.Fprintln(p.w, p.warning.Render(style.Warning+" "+msg))
	return err
}

type row struct {
	label  string
	detail string
}

func (p *Printer) table(title string, rows []row) error {
	var b strings.Builder
	b.WriteString(p.heading.Render(title))
	b.WriteByte('\n')

	if len(rows) == 0 {
		b.WriteString("  " + p.muted.Render("(empty)") + "\n")
	}

	width := len(strconv.Itoa(len(rows)))
	for i, r := range rows {
		b.WriteString("  " + p.muted.Render(fmt.Sprintf("%*d", width, i+1)) + "  " + r.label)
		if r.detail != "" {
			b.WriteString("  " + p.muted.Render(style.Arrow+" "+r.detail))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}
