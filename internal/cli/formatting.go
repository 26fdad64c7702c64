package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// sprinter is satisfied by pterm colors and styles
type sprinter interface {
	Sprint(a ...interface{}) string
}

var placeholderStyle = pterm.NewStyle(pterm.FgCyan, pterm.Italic)

// styled applies style only when help goes to a terminal
func styled(style sprinter, s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return style.Sprint(s)
}

func formatBold(s string) string {
	return styled(pterm.Bold, s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// formatUseLine highlights the positional placeholders of a use line,
// "stashdot [package_name backup_folder]" showing package_name and
// backup_folder in the placeholder style. Brackets and flags stay plain.
func formatUseLine(line string) string {
	words := strings.Fields(line)
	for i, word := range words {
		if i == 0 || strings.HasPrefix(strings.TrimLeft(word, "["), "-") {
			continue
		}
		name := strings.Trim(word, "[]")
		if name == "" || name == "flags" || name == "command" {
			continue
		}
		words[i] = strings.Replace(word, name, styled(placeholderStyle, name), 1)
	}
	return strings.Join(words, " ")
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
		"useLine":   formatUseLine,
	})
}
