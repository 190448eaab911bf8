// Package palette holds the color sets behind the built-in HTML themes.
package palette

// Palette lists CSS color values for each highlighted element.
type Palette struct {
	Background     string
	Text           string
	Heading        string
	Emphasis       string
	Strong         string
	EmphasisStrong string
	Raw            string
	RawBackground  string
	CodeBackground string
	CodeText       string
	Keyword        string
	String         string
	Number         string
	Link           string
}

var PaletteDefault = Palette{
	Background:     "#ffffff",
	Text:           "#1f2328",
	Heading:        "#0b3d91",
	Emphasis:       "#1f2328",
	Strong:         "#000000",
	EmphasisStrong: "#000000",
	Raw:            "#953800",
	RawBackground:  "#f6f8fa",
	CodeBackground: "#f6f8fa",
	CodeText:       "#24292f",
	Keyword:        "#cf222e",
	String:         "#0a3069",
	Number:         "#0550ae",
	Link:           "#0969da",
}

var PaletteGithubLight = Palette{
	Background:     "#ffffff",
	Text:           "#24292f",
	Heading:        "#24292f",
	Emphasis:       "#24292f",
	Strong:         "#24292f",
	EmphasisStrong: "#24292f",
	Raw:            "#24292f",
	RawBackground:  "#eff1f3",
	CodeBackground: "#f6f8fa",
	CodeText:       "#24292f",
	Keyword:        "#cf222e",
	String:         "#0a3069",
	Number:         "#0550ae",
	Link:           "#0969da",
}

var PaletteGithubDark = Palette{
	Background:     "#0d1117",
	Text:           "#c9d1d9",
	Heading:        "#f0f6fc",
	Emphasis:       "#c9d1d9",
	Strong:         "#f0f6fc",
	EmphasisStrong: "#f0f6fc",
	Raw:            "#c9d1d9",
	RawBackground:  "#343942",
	CodeBackground: "#161b22",
	CodeText:       "#c9d1d9",
	Keyword:        "#ff7b72",
	String:         "#a5d6ff",
	Number:         "#79c0ff",
	Link:           "#58a6ff",
}

var PaletteSolarizedLight = Palette{
	Background:     "#fdf6e3",
	Text:           "#657b83",
	Heading:        "#cb4b16",
	Emphasis:       "#586e75",
	Strong:         "#586e75",
	EmphasisStrong: "#073642",
	Raw:            "#2aa198",
	RawBackground:  "#eee8d5",
	CodeBackground: "#eee8d5",
	CodeText:       "#586e75",
	Keyword:        "#859900",
	String:         "#2aa198",
	Number:         "#d33682",
	Link:           "#268bd2",
}

var PaletteSolarizedDark = Palette{
	Background:     "#002b36",
	Text:           "#839496",
	Heading:        "#cb4b16",
	Emphasis:       "#93a1a1",
	Strong:         "#93a1a1",
	EmphasisStrong: "#eee8d5",
	Raw:            "#2aa198",
	RawBackground:  "#073642",
	CodeBackground: "#073642",
	CodeText:       "#93a1a1",
	Keyword:        "#859900",
	String:         "#2aa198",
	Number:         "#d33682",
	Link:           "#268bd2",
}

var PaletteGruvbox = Palette{
	Background:     "#282828",
	Text:           "#ebdbb2",
	Heading:        "#fabd2f",
	Emphasis:       "#d3869b",
	Strong:         "#fe8019",
	EmphasisStrong: "#fb4934",
	Raw:            "#b8bb26",
	RawBackground:  "#3c3836",
	CodeBackground: "#32302f",
	CodeText:       "#ebdbb2",
	Keyword:        "#fb4934",
	String:         "#b8bb26",
	Number:         "#d3869b",
	Link:           "#83a598",
}

var PaletteDracula = Palette{
	Background:     "#282a36",
	Text:           "#f8f8f2",
	Heading:        "#bd93f9",
	Emphasis:       "#f1fa8c",
	Strong:         "#ffb86c",
	EmphasisStrong: "#ff79c6",
	Raw:            "#50fa7b",
	RawBackground:  "#44475a",
	CodeBackground: "#21222c",
	CodeText:       "#f8f8f2",
	Keyword:        "#ff79c6",
	String:         "#f1fa8c",
	Number:         "#bd93f9",
	Link:           "#8be9fd",
}

var PaletteNord = Palette{
	Background:     "#2e3440",
	Text:           "#d8dee9",
	Heading:        "#88c0d0",
	Emphasis:       "#e5e9f0",
	Strong:         "#eceff4",
	EmphasisStrong: "#eceff4",
	Raw:            "#a3be8c",
	RawBackground:  "#3b4252",
	CodeBackground: "#3b4252",
	CodeText:       "#d8dee9",
	Keyword:        "#81a1c1",
	String:         "#a3be8c",
	Number:         "#b48ead",
	Link:           "#88c0d0",
}
