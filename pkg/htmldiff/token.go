package htmldiff

import (
	"regexp"
	"strings"
)

// Kind classifies a token.
type Kind int

const (
	// KindWord is a run of text characters.
	KindWord Kind = iota

	// KindWhitespace is a run of whitespace and/or &nbsp; entities.
	KindWhitespace

	// KindPunctuation is a single separator character.
	KindPunctuation

	// KindTag is a complete markup tag, or a whole script element.
	KindTag
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindWhitespace:
		return "whitespace"
	case KindPunctuation:
		return "punctuation"
	case KindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Token is the unit of comparison. Text is the exact source text.
type Token struct {
	Kind Kind
	Text string
}

// IsTag reports whether the token is markup.
func (t Token) IsTag() bool {
	return t.Kind == KindTag
}

// IsWhitespace reports whether the token renders as whitespace only.
func (t Token) IsWhitespace() bool {
	return t.Kind == KindWhitespace
}

//nolint:gochecknoglobals // Compiled patterns are read-only.
var (
	commentRE    = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRE        = regexp.MustCompile(`(?s)<script.*?>.*?</script>|<.*?>`)
	headRE       = regexp.MustCompile(`(?is)<\s*head\s*>`)
	whitespaceRE = regexp.MustCompile(`^(?:[ \n\r\t]|&nbsp;)+$`)
	wordRE       = regexp.MustCompile(`[^ \n\r\t,.&;/#=<>()-]+|(?:[ \n\r\t]|&nbsp;)+|[,.&;/#=<>()-]`)
)

// punctuation lists the characters that always form a token of their own.
const punctuation = ",.&;/#=<>()-"

// StripComments removes every <!-- ... --> region from html.
func StripComments(html string) string {
	return commentRE.ReplaceAllString(html, "")
}

// Tokenize strips comments from html and splits the rest into tags, words,
// whitespace runs and punctuation. Concatenating the Text of the result
// reproduces StripComments(html) exactly.
func Tokenize(html string) []Token {
	html = StripComments(html)

	var tokens []Token
	pos := 0
	for _, loc := range tagRE.FindAllStringIndex(html, -1) {
		tokens = appendText(tokens, html[pos:loc[0]])
		tokens = append(tokens, Token{Kind: KindTag, Text: html[loc[0]:loc[1]]})
		pos = loc[1]
	}
	return appendText(tokens, html[pos:])
}

// appendText splits a tag-free text run into tokens.
func appendText(tokens []Token, text string) []Token {
	if text == "" {
		return tokens
	}
	for _, word := range wordRE.FindAllString(text, -1) {
		tokens = append(tokens, Token{Kind: classify(word), Text: word})
	}
	return tokens
}

func classify(text string) Kind {
	switch {
	case whitespaceRE.MatchString(text):
		return KindWhitespace
	case len(text) == 1 && strings.Contains(punctuation, text):
		return KindPunctuation
	default:
		return KindWord
	}
}

// IsWhitespace reports whether text consists only of whitespace and &nbsp;.
func IsWhitespace(text string) bool {
	return whitespaceRE.MatchString(text)
}

// Texts returns the source text of every token.
func Texts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

// Join concatenates the source text of tokens.
func Join(tokens []Token) string {
	var builder strings.Builder
	for _, tok := range tokens {
		builder.WriteString(tok.Text)
	}
	return builder.String()
}

// SplitLines splits text into lines for line-granularity diffs.
// Unlike Tokenize, the newline separators are not part of the tokens.
func SplitLines(text string) []Token {
	lines := strings.Split(text, "\n")
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		tokens[i] = Token{Kind: KindWord, Text: line}
	}
	return tokens
}
