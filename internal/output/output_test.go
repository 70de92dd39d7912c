package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestVerboseOutputOnlyAppearsWhenEnabled(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		expectEmpty bool
	}{
		{"verbose disabled - no output", false, true},
		{"verbose enabled - has output", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			out := New(Config{
				Verbose:   tt.verbose,
				Writer:    &buf,
				ErrWriter: &buf,
				IsTTY:     false,
			})

			out.Verbose("test message")

			if tt.expectEmpty && buf.Len() > 0 {
				t.Errorf("expected no output when verbose disabled, got: %q", buf.String())
			}
			if !tt.expectEmpty && buf.Len() == 0 {
				t.Error("expected output when verbose enabled, got nothing")
			}
			if !tt.expectEmpty && !strings.Contains(buf.String(), "test message") {
				t.Errorf("expected output to contain 'test message', got: %q", buf.String())
			}
		})
	}
}

func TestInfoOutputAlwaysShown(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		var buf bytes.Buffer
		out := New(Config{Verbose: verbose, Writer: &buf, ErrWriter: &buf})

		out.Info("info message")

		if buf.String() != "info message\n" {
			t.Errorf("verbose=%v: expected Info output regardless of verbose mode, got: %q", verbose, buf.String())
		}
	}
}

func TestErrorOutputGoesToErrWriter(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := New(Config{Writer: &stdout, ErrWriter: &stderr, Color: ColorNever})

	out.Error("Error renaming '%s': %v", "a.txt", "boom")

	if stdout.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout.String())
	}
	if stderr.String() != "Error renaming 'a.txt': boom\n" {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestNewlineNotDoubled(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Verbose: true, Writer: &buf, ErrWriter: &buf})

	out.Info("one\n")
	out.Verbose("two")
	out.Error("three\n")

	if buf.String() != "one\ntwo\nthree\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestNewWithNilWriters(t *testing.T) {
	out := New(Config{})
	if out.config.Writer == nil || out.config.ErrWriter == nil {
		t.Error("expected nil writers to default to stdout/stderr")
	}
	if out.config.Color != ColorAuto {
		t.Errorf("expected default color mode auto, got %q", out.config.Color)
	}
}

func TestColorModes(t *testing.T) {
	tests := []struct {
		name  string
		mode  ColorMode
		isTTY bool
		want  bool
	}{
		{"never on tty", ColorNever, true, false},
		{"always off tty", ColorAlways, false, true},
		{"auto off tty", ColorAuto, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(Config{Writer: &bytes.Buffer{}, ErrWriter: &bytes.Buffer{}, IsTTY: tt.isTTY, Color: tt.mode})
			if out.color != tt.want {
				t.Errorf("color enabled = %v, want %v", out.color, tt.want)
			}
		})
	}
}

func TestAutoColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	out := New(Config{Writer: &bytes.Buffer{}, IsTTY: true, Color: ColorAuto})
	if out.color {
		t.Error("expected NO_COLOR to disable auto coloring")
	}
}

func TestAutoColorRespectsDumbTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	out := New(Config{Writer: &bytes.Buffer{}, IsTTY: true, Color: ColorAuto})
	if out.color {
		t.Error("expected TERM=dumb to disable auto coloring")
	}
}

func TestColoredErrorContainsEscapes(t *testing.T) {
	var stderr bytes.Buffer
	out := New(Config{Writer: &bytes.Buffer{}, ErrWriter: &stderr, Color: ColorAlways})

	out.Error("bad thing")

	if !strings.Contains(stderr.String(), "\x1b[") {
		t.Errorf("expected ANSI escape in colored output, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "bad thing") {
		t.Errorf("expected message in colored output, got %q", stderr.String())
	}
}

func TestAccentPlainWhenColorDisabled(t *testing.T) {
	out := New(Config{Writer: &bytes.Buffer{}, Color: ColorNever})
	if got := out.Accent("[Dry Run]"); got != "[Dry Run]" {
		t.Errorf("expected plain accent, got %q", got)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{" never ", ColorNever, false},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsVerbose(t *testing.T) {
	if !New(Config{Verbose: true, Writer: &bytes.Buffer{}}).IsVerbose() {
		t.Error("expected IsVerbose true")
	}
	if New(Config{Writer: &bytes.Buffer{}}).IsVerbose() {
		t.Error("expected IsVerbose false")
	}
}

// Feature: reporter, Property 1: Uncolored Lines Are Verbatim
func TestUncoloredLinesAreVerbatim(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Info writes the message followed by one newline", prop.ForAll(
		func(msg string) bool {
			var buf bytes.Buffer
			out := New(Config{Writer: &buf, ErrWriter: &buf, Color: ColorNever})

			out.Info("%s", msg)

			return buf.String() == strings.TrimSuffix(msg, "\n")+"\n"
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
