package markup

// TokenKind classifies a lexeme inside a fenced code block.
type TokenKind uint8

const (
	// TokenText is whitespace, punctuation and anything else emitted as-is.
	TokenText TokenKind = iota
	// TokenIdentifier is a name that is not a keyword.
	TokenIdentifier
	// TokenKeyword is a name from the keyword set.
	TokenKeyword
	// TokenString is a double-quoted string literal including its quotes.
	TokenString
	// TokenNumber is a decimal, floating point or hexadecimal literal.
	TokenNumber
)

var tokenClassNames = [...]string{
	TokenText:       "",
	TokenIdentifier: "",
	TokenKeyword:    "code_keyword",
	TokenString:     "code_string_lit",
	TokenNumber:     "code_number",
}

var tokenOpenTags = [...]string{
	TokenKeyword: `<span class="code_keyword">`,
	TokenString:  `<span class="code_string_lit">`,
	TokenNumber:  `<span class="code_number">`,
}

// ClassName returns the CSS class wrapped around tokens of kind k, or "" when
// such tokens are emitted without a span.
func (k TokenKind) ClassName() string {
	if int(k) >= len(tokenClassNames) {
		return ""
	}
	return tokenClassNames[k]
}

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenIdentifier:
		return "identifier"
	case TokenKeyword:
		return "keyword"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	}
	return "unknown"
}

// codeKeywords is the fixed keyword set highlighted inside code blocks.
var codeKeywords = map[string]struct{}{
	"if":     {},
	"else":   {},
	"return": {},
	"true":   {},
	"false":  {},

	"s8":   {},
	"s16":  {},
	"s32":  {},
	"s64":  {},
	"u8":   {},
	"u16":  {},
	"u32":  {},
	"u64":  {},
	"smm":  {},
	"umm":  {},
	"sint": {},
	"uint": {},
	"bool": {},
}

// IsKeyword reports whether word is highlighted as a keyword in code blocks.
// Matching is case-sensitive. Code block words may contain digits and '_'
// after the first byte, which is how u16 or s64 reach this check.
func IsKeyword(word []byte) bool {
	_, ok := codeKeywords[string(word)]
	return ok
}
