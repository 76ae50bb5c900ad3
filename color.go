package herald

import (
	"os"
	"regexp"

	"github.com/fatih/color"
)

// Scheme selects how colors are rendered. Dark terminals use the normal
// ANSI colors, light terminals use the bold variants so text stays
// readable. SchemeNone disables colorization entirely.
type Scheme string

const (
	SchemeNone  Scheme = "none"
	SchemeDark  Scheme = "dark"
	SchemeLight Scheme = "light"
)

// normalize maps the zero value to the default scheme.
func (s Scheme) normalize() Scheme {
	if s == "" {
		return SchemeDark
	}
	return s
}

// Color names one of the eight standard terminal colors. The empty string
// means "no color".
type Color string

const (
	ColorNone    Color = ""
	Black        Color = "black"
	Red          Color = "red"
	Green        Color = "green"
	Yellow       Color = "yellow"
	Blue         Color = "blue"
	Magenta      Color = "magenta"
	Cyan         Color = "cyan"
	White        Color = "white"
)

var colorAttrs = map[Color]color.Attribute{
	Black:   color.FgBlack,
	Red:     color.FgRed,
	Green:   color.FgGreen,
	Yellow:  color.FgYellow,
	Blue:    color.FgBlue,
	Magenta: color.FgMagenta,
	Cyan:    color.FgCyan,
	White:   color.FgWhite,
}

// render colorizes text according to the scheme. Text passes through
// unchanged when the color is empty, the scheme is none, or color output
// is globally disabled.
func (c Color) render(text string, scheme Scheme) string {
	scheme = scheme.normalize()
	if c == ColorNone || scheme == SchemeNone || noColor() {
		return text
	}
	attr, ok := colorAttrs[c]
	if !ok {
		return text
	}
	cl := color.New(attr)
	if scheme == SchemeLight {
		cl = cl.Add(color.Bold)
	}
	// fatih/color consults its own global switch; bypass it here since the
	// TTY decision was already made by the dispatcher.
	cl.EnableColor()
	return cl.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Check NO_COLOR environment variable (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

var colorCodeRegex = regexp.MustCompile("\x1b\\[[0-9;]*m")

// stripColors removes ANSI color codes, producing the text that belongs
// in a logfile.
func stripColors(text string) string {
	return colorCodeRegex.ReplaceAllString(text, "")
}
