// Package fontmetric approximates the rendered width of plain text using
// static per-character width tables. It is used to pad one column of a
// side-by-side diff where the other column shows text that was removed.
//
// The tables are heuristics, not font measurements. Characters missing from a
// table contribute nothing to the estimate.
package fontmetric

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// nbspGroup renders five columns of breakable whitespace.
const nbspGroup = "&nbsp;&nbsp;&nbsp;&nbsp; "

// nbspGroupWidth is the number of space columns covered by nbspGroup.
const nbspGroupWidth = 5

// UnsupportedFontError is returned when no width table is registered for a font.
type UnsupportedFontError struct {
	Font string
}

// Error implements the error interface.
func (e *UnsupportedFontError) Error() string {
	return fmt.Sprintf("unsupported font type %q", e.Font)
}

// Fonts returns the registered font names in sorted order.
func Fonts() []string {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether a width table exists for font.
func Supported(font string) bool {
	_, ok := fonts[normalize(font)]
	return ok
}

// UnitWidth returns the width of a single character in font units.
// The second result is false if the font or the character is unknown.
func UnitWidth(font, char string) (int, bool) {
	table, ok := fonts[normalize(font)]
	if !ok {
		return 0, false
	}
	width, ok := table[char]
	return width, ok
}

// Estimate returns the number of space characters that occupy roughly the
// same width as text when rendered in font.
func Estimate(text, font string) (int, error) {
	table, ok := fonts[normalize(font)]
	if !ok {
		return 0, &UnsupportedFontError{Font: font}
	}

	// Every character counts, including the base of a decomposed cluster.
	total := 0
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		for _, r := range graphemes.Runes() {
			total += table[string(r)]
		}
	}

	spaces := float64(total) / float64(table[" "])
	return int(math.Round(spaces)), nil
}

// Whitespace renders count columns of non-collapsing whitespace.
func Whitespace(count int) string {
	var builder strings.Builder
	builder.WriteString(`<span style="white-space: pre-wrap;">`)
	if count > 0 {
		builder.WriteString(strings.Repeat(nbspGroup, count/nbspGroupWidth))
		builder.WriteString(strings.Repeat("&nbsp;", count%nbspGroupWidth))
	}
	builder.WriteString("</span>")
	return builder.String()
}

// Pad returns whitespace markup as wide as text rendered in font.
func Pad(text, font string) (string, error) {
	count, err := Estimate(text, font)
	if err != nil {
		return "", err
	}
	return Whitespace(count), nil
}

func normalize(font string) string {
	return strings.ToLower(strings.TrimSpace(font))
}
