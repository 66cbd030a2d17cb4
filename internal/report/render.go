package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiBlue  = "\x1b[34m"
)

// Options controls how a report is rendered.
type Options struct {
	Format string
	Color  string
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r Report, opts Options) error {
	colorize := resolveColor(w, opts.Color)
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
		return writeString(w, Text(r, colorize))
	case FormatTable:
		return writeString(w, Table(r, colorize))
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("report format: unsupported value %q", opts.Format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func resolveColor(w io.Writer, mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return shouldColorize(w)
	}
}

func shouldColorize(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func header(title string, colorize bool) string {
	if !colorize {
		return title
	}
	return ansiBold + ansiBlue + title + ansiReset
}
