package inspect

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/textview"
	"golang.org/x/term"
)

// Palette holds the colors used for rendering.
type Palette struct {
	Context *color.Color   // buffer text outside of a view
	Window  *color.Color   // text of a view
	Tokens  []*color.Color // cycled through when printing tokens
}

// DefaultPalette returns the palette used if clients do not provide one.
func DefaultPalette() *Palette {
	return &Palette{
		Context: color.New(color.FgHiBlack),
		Window:  color.New(color.FgRed, color.Bold),
		Tokens: []*color.Color{
			color.New(color.FgBlue),
			color.New(color.FgGreen),
		},
	}
}

// Config controls the layout of rendered views.
type Config struct {
	LineWidth   int    // maximum width of output, in bytes; 0 means unlimited
	Open, Close string // markers around a highlighted window
	Ellipsis    string // replaces elided context
}

// DefaultConfig returns a config without a line width limit.
func DefaultConfig() *Config {
	return &Config{Open: "[", Close: "]", Ellipsis: "…"}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w < 20 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 5
		}
	} else {
		config.LineWidth = 0
	}
	tracer().P("inspect", "console").Debugf("setting line length to %d", config.LineWidth)
	return config
}

// Print outputs v, embedded in its buffer, to stdout.
func Print(v textview.View) error {
	return Fprint(os.Stdout, v, ConfigFromTerminal(), nil)
}

// Fprint writes the buffer of v to w, with the window of v highlighted and
// enclosed in the config's markers. If config.LineWidth is set, the context
// on both sides of the window is elided to fit. A view without value is
// printed as "<no value>".
//
// If config or palette are nil, defaults are used.
func Fprint(w io.Writer, v textview.View, config *Config, palette *Palette) error {
	if config == nil {
		config = DefaultConfig()
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	buf, ok := v.Buffer()
	if !ok {
		_, err := palette.Context.Fprint(w, "<no value>")
		return err
	}
	left := buf[:v.Offset()]
	right := buf[v.Offset()+v.Len():]
	if config.LineWidth > 0 {
		budget := config.LineWidth - v.Len() - len(config.Open) - len(config.Close)
		if len(left)+len(right) > budget {
			budget -= 2 * len(config.Ellipsis)
		}
		if budget < 0 {
			budget = 0
		}
		left, right = elide(left, right, budget, config.Ellipsis)
	}
	if _, err := palette.Context.Fprint(w, left); err != nil {
		return err
	}
	if _, err := palette.Window.Fprint(w, config.Open, v.String(), config.Close); err != nil {
		return err
	}
	_, err := palette.Context.Fprint(w, right)
	return err
}

// FprintTokens writes the tokens of sp to w, each token enclosed in the
// config's markers and separated by a single space.
//
// If config or palette are nil, defaults are used.
func FprintTokens(w io.Writer, sp textview.Splitter, config *Config, palette *Palette) error {
	if config == nil {
		config = DefaultConfig()
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	i := 0
	for tok := range sp.All() {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		c := palette.Window
		if len(palette.Tokens) > 0 {
			c = palette.Tokens[i%len(palette.Tokens)]
		}
		if _, err := c.Fprint(w, config.Open, tok.String(), config.Close); err != nil {
			return err
		}
		i++
	}
	return nil
}

// elide shortens left (from its start) and right (from its end) so that
// together they occupy at most budget bytes, splitting the budget evenly.
// Cuts respect rune boundaries.
func elide(left, right string, budget int, ellipsis string) (string, string) {
	if len(left)+len(right) <= budget {
		return left, right
	}
	half := budget / 2
	l, r := half, budget-half
	if len(left) < l { // give unused budget to the other side
		r += l - len(left)
		l = len(left)
	} else if len(right) < r {
		l += r - len(right)
		r = len(right)
	}
	if l < len(left) {
		cut := len(left) - l
		for cut < len(left) && !utf8.RuneStart(left[cut]) {
			cut++
		}
		left = ellipsis + left[cut:]
	}
	if r < len(right) {
		cut := r
		for cut > 0 && cut < len(right) && !utf8.RuneStart(right[cut]) {
			cut--
		}
		right = right[:cut] + ellipsis
	}
	return left, right
}
