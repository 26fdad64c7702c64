package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// EnvNoColor disables styling when set to any value
const EnvNoColor = "NO_COLOR"

// IsStyled reports whether output written to w should carry terminal
// styling. Anything that is not a color-capable terminal gets plain text.
func IsStyled(w io.Writer) bool {
	if os.Getenv(EnvNoColor) != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	// Piped or redirected
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}
