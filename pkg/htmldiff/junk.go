package htmldiff

import "strings"

// JunkFunc reports whether a token should be avoided as an alignment anchor.
type JunkFunc func(token string) bool

// stopwords are common short words ignored as anchors in fast mode.
//
//nolint:gochecknoglobals // Read-only lookup table.
var stopwords = map[string]struct{}{
	"i": {}, "a": {}, "about": {}, "an": {}, "and": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "by": {}, "for": {}, "from": {}, "have": {}, "how": {},
	"in": {}, "is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "that": {},
	"the": {}, "this": {}, "to": {}, "was": {}, "what": {}, "when": {},
	"where": {}, "who": {}, "will": {}, "with": {},
}

// IsJunk is the fast-mode classifier: whitespace runs and stopwords are junk.
func IsJunk(token string) bool {
	if IsWhitespace(token) {
		return true
	}
	_, ok := stopwords[strings.ToLower(token)]
	return ok
}

// NoJunk is the accurate-mode classifier. Nothing is junk.
func NoJunk(string) bool {
	return false
}

// JunkFor returns the classifier for the given mode.
func JunkFor(accurate bool) JunkFunc {
	if accurate {
		return NoJunk
	}
	return IsJunk
}
