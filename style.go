package markup

// Emphasis is the open emphasis level.
type Emphasis uint8

const (
	EmphasisNone Emphasis = iota
	EmphasisItalic
	EmphasisBold
	EmphasisBoldItalic
)

var emphasisOpenTags = [...]string{
	EmphasisItalic:     `<em class="italic">`,
	EmphasisBold:       `<b class="bold">`,
	EmphasisBoldItalic: `<b class="bold_italic">`,
}

func (e Emphasis) openTag() string {
	return emphasisOpenTags[e]
}

func (e Emphasis) closeTag() string {
	if e == EmphasisItalic {
		return "</em>"
	}
	return "</b>"
}

// MaxHeadingLevel is the deepest heading the dispatcher accepts.
const MaxHeadingLevel = 6

var headingOpenTags = [MaxHeadingLevel + 1]string{"", "<h1>", "<h2>", "<h3>", "<h4>", "<h5>", "<h6>"}
var headingCloseTags = [MaxHeadingLevel + 1]string{"", "</h1>", "</h2>", "</h3>", "</h4>", "</h5>", "</h6>"}

// StyleRegister tracks which styles are open during one conversion.
type StyleRegister struct {
	Emphasis      Emphasis
	Underline     bool
	Strikethrough bool
	Heading       int
}

// Open reports whether any style, headings included, is open.
func (r StyleRegister) Open() bool {
	return r.Emphasis != EmphasisNone || r.Underline || r.Strikethrough || r.Heading != 0
}

// InlineOpen reports whether a style that must be closed explicitly is open.
func (r StyleRegister) InlineOpen() bool {
	return r.Emphasis != EmphasisNone || r.Underline || r.Strikethrough
}
