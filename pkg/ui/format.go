package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/outliner/pkg/errors"
)

// Format selects how scenes, run results and reports are written.
type Format int

const (
	FormatAuto     Format = iota // term on a color terminal, text elsewhere
	FormatTerminal               // lipgloss trees and pterm reports
	FormatText                   // indented tree, one report per line
	FormatJSON                   // display types encoded as JSON
)

var formatNames = []string{"auto", "term", "text", "json"}

// formatAliases are the extra spellings accepted by --format and
// output.format.
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat is case-insensitive. Unknown names carry the accepted ones
// in the "choices" detail.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[s]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s).
		WithDetail("choices", formatNames)
}

// DetectFormat resolves FormatAuto for output. Pipes, redirects, NO_COLOR
// and monochrome terminals all get FormatText.
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if !tty || termenv.EnvNoColor() || termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
