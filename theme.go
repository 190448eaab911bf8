package markup

import (
	"sort"
	"strings"

	"pkt.systems/markup/internal/palette"
)

// Style is a CSS declaration block, without braces.
type Style struct {
	Declarations string
}

// Styles groups the rules applied to the elements and classes the converter emits.
type Styles struct {
	Body           Style
	Heading        Style
	Emphasis       Style
	Strong         Style
	EmphasisStrong Style
	Underline      Style
	Strikethrough  Style
	Raw            Style
	Code           Style
	Keyword        Style
	String         Style
	Number         Style
	Link           Style
}

// Theme provides named styles for HTML documents.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(decls ...string) Style {
	var b strings.Builder
	for _, d := range decls {
		if d == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d)
		b.WriteByte(';')
	}
	return Style{Declarations: b.String()}
}

func color(v string) string {
	if v == "" {
		return ""
	}
	return "color: " + v
}

func background(v string) string {
	if v == "" {
		return ""
	}
	return "background-color: " + v
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Body:           style(color(p.Text), background(p.Background), "font-family: sans-serif", "line-height: 1.5"),
		Heading:        style(color(p.Heading)),
		Emphasis:       style(color(p.Emphasis), "font-style: italic"),
		Strong:         style(color(p.Strong), "font-weight: bold"),
		EmphasisStrong: style(color(p.EmphasisStrong), "font-weight: bold", "font-style: italic"),
		Underline:      style("text-decoration: underline"),
		Strikethrough:  style("text-decoration: line-through"),
		Raw:            style(color(p.Raw), background(p.RawBackground), "font-family: monospace", "padding: 0 0.2em"),
		Code:           style(color(p.CodeText), background(p.CodeBackground), "font-family: monospace", "white-space: pre", "display: block", "padding: 0.5em"),
		Keyword:        style(color(p.Keyword), "font-weight: bold"),
		String:         style(color(p.String)),
		Number:         style(color(p.Number)),
		Link:           style(color(p.Link)),
	}
}

// Stylesheet renders the CSS rules for t.
func Stylesheet(t Theme) string {
	s := t.Styles()
	rules := []struct {
		selector string
		style    Style
	}{
		{"body", s.Body},
		{"h1, h2, h3, h4, h5, h6", s.Heading},
		{"em.italic", s.Emphasis},
		{"b.bold", s.Strong},
		{"b.bold_italic", s.EmphasisStrong},
		{"u", s.Underline},
		{"s", s.Strikethrough},
		{"span.raw_text", s.Raw},
		{"code", s.Code},
		{"span." + TokenKeyword.ClassName(), s.Keyword},
		{"span." + TokenString.ClassName(), s.String},
		{"span." + TokenNumber.ClassName(), s.Number},
		{"a", s.Link},
	}
	var b strings.Builder
	for _, r := range rules {
		if r.style.Declarations == "" {
			continue
		}
		b.WriteString(r.selector)
		b.WriteString(" { ")
		b.WriteString(r.style.Declarations)
		b.WriteString(" }\n")
	}
	return b.String()
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"github-light":    theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"github-dark":     theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"solarized-dark":  theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"plain":           theme{name: "plain", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
