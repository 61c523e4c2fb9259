package document

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncodings are tried, in order, when the content is not valid UTF-8
// and declares no usable charset.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DefaultEncodings = []string{"windows-1252", "iso-8859-15", "shift_jis", "gbk"}

//nolint:gochecknoglobals // Read-only.
var replacementChar = []byte("\uFFFD")

// EncodingError reports content that no candidate encoding decoded cleanly.
type EncodingError struct {
	Path  string
	Tried []string
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return "decode " + e.Path + ": no encoding decoded cleanly (tried " + strings.Join(e.Tried, ", ") + ")"
}

// ValidEncoding reports whether name is a known WHATWG encoding label.
func ValidEncoding(name string) bool {
	_, err := htmlindex.Get(name)
	return err == nil
}

// Decode converts content to a UTF-8 string. A byte order mark wins when it
// decodes cleanly. Otherwise valid UTF-8 is taken as is. Failing that, a
// <meta charset> declaration is tried, and then each of candidates
// (DefaultEncodings when nil) in order. A decoding is clean when it
// introduces no replacement characters. The returned name is the canonical
// encoding name.
func Decode(content []byte, candidates []string) (string, string, error) {
	if candidates == nil {
		candidates = DefaultEncodings
	}

	enc, name, certain := charset.DetermineEncoding(content, "text/html")
	if certain {
		if text, ok := decodeWith(enc, content); ok {
			return strings.TrimPrefix(text, "\uFEFF"), name, nil
		}
	}

	if utf8.Valid(content) {
		return string(content), "utf-8", nil
	}

	tried := []string{"utf-8"}
	if name != "utf-8" && name != "windows-1252" {
		// A <meta> declaration: try it before the configured list.
		candidates = append([]string{name}, candidates...)
	}

	seen := map[string]bool{"utf-8": true}
	for _, label := range candidates {
		enc, err := htmlindex.Get(label)
		if err != nil {
			continue
		}
		canonical, err := htmlindex.Name(enc)
		if err != nil {
			canonical = strings.ToLower(label)
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		tried = append(tried, canonical)

		if text, ok := decodeWith(enc, content); ok {
			return text, canonical, nil
		}
	}
	return "", "", &EncodingError{Tried: tried}
}

func decodeWith(enc encoding.Encoding, content []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", false
	}
	// ContainsRune would match any invalid byte in content, so look for the
	// encoded replacement character itself.
	if bytes.Contains(out, replacementChar) && !bytes.Contains(content, replacementChar) {
		return "", false
	}
	return string(out), true
}
