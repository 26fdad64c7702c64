// Package output renders the human-facing trace of what stashdot did.
//
// Every relocation produces exactly one line of the form
//
//	moving <target-path> to <backup-folder-path>
//
// Styling is applied only when the destination is a color terminal, so
// redirected output stays byte-for-byte plain.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives one notification per relocated entry.
type Reporter interface {
	Moved(from, toDir string)
}

// Printer writes trace lines to a writer.
type Printer struct {
	w      io.Writer
	styled bool
	styles Styles
}

// NewPrinter creates a printer for w, enabling styles when w is a
// color-capable terminal.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{w: w}
	if IsStyled(w) {
		renderer := lipgloss.NewRenderer(w)
		if styles, err := DefaultStyles(renderer); err == nil {
			p.styled = true
			p.styles = styles
		}
	}
	return p
}

// NewPlainPrinter creates a printer that never styles its output
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Moved implements Reporter
func (p *Printer) Moved(from, toDir string) {
	if !p.styled {
		fmt.Fprintf(p.w, "moving %s to %s\n", from, toDir)
		return
	}

	fmt.Fprintf(p.w, "%s %s %s %s\n",
		p.styles.Get("Verb").Render("moving"),
		p.styles.Get("Source").Render(from),
		p.styles.Get("Connector").Render("to"),
		p.styles.Get("Destination").Render(toDir),
	)
}

// Warn writes a non-fatal problem line, used for link tool failures
func (p *Printer) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		msg = p.styles.Get("Error").Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}

// Discard is a Reporter that drops every notification
var Discard Reporter = discard{}

type discard struct{}

func (discard) Moved(string, string) {}
