// Package output handles CLI reporting: informational lines, verbose detail
// and errors, optionally colored when writing to a terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Reporter is the sink rename and undo operations report through.
type Reporter interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// ColorMode selects when report lines are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a flag value into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorAuto, "":
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
	Color     ColorMode // Coloring policy (default: auto)
}

// Output handles formatted output with verbose and color support.
type Output struct {
	config Config
	color  bool
	mu     sync.Mutex

	errorStyle   lipgloss.Style
	verboseStyle lipgloss.Style
	accentStyle  lipgloss.Style
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	if config.Color == "" {
		config.Color = ColorAuto
	}

	o := &Output{
		config: config,
		color:  colorEnabled(config),
	}

	renderer := lipgloss.NewRenderer(config.Writer)
	if o.color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	o.errorStyle = renderer.NewStyle().Foreground(lipgloss.Color("197"))
	o.verboseStyle = renderer.NewStyle().Foreground(lipgloss.Color("245"))
	o.accentStyle = renderer.NewStyle().Foreground(lipgloss.Color("81"))

	return o
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return Config{
		Verbose:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     isTTY,
		Color:     ColorAuto,
	}
}

func colorEnabled(config Config) bool {
	switch config.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return config.IsTTY && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	o.write(o.config.Writer, &o.verboseStyle, format, args...)
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	o.write(o.config.Writer, nil, format, args...)
}

// Error prints an error message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	o.write(o.config.ErrWriter, &o.errorStyle, format, args...)
}

// Accent renders s in the accent color when coloring is enabled.
func (o *Output) Accent(s string) string {
	if !o.color {
		return s
	}
	return o.accentStyle.Render(s)
}

func (o *Output) write(w io.Writer, style *lipgloss.Style, format string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	if o.color && style != nil {
		msg = style.Render(msg)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprint(w, msg+"\n")
}

// IsVerbose returns whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}
