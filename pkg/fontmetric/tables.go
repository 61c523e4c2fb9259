package fontmetric

// TimesNewRoman is the reference font name.
const TimesNewRoman = "times new roman"

// timesNewRoman holds approximate glyph advance widths in arbitrary units.
//
//nolint:gochecknoglobals // Read-only lookup table.
var timesNewRoman = map[string]int{
	"a": 36, "b": 41, "c": 36, "d": 41, "e": 36, "f": 35, "g": 41,
	"h": 41, "i": 23, "j": 23, "k": 41, "l": 23, "m": 64, "n": 41,
	"o": 41, "p": 41, "q": 41, "r": 27, "s": 32, "t": 23, "u": 41,
	"v": 41, "w": 58, "x": 41, "y": 51, "z": 36,

	"A": 59, "B": 50, "C": 50, "D": 58, "E": 50, "F": 45, "G": 59,
	"H": 59, "I": 27, "J": 32, "K": 58, "L": 50, "M": 72, "N": 58,
	"O": 58, "P": 45, "Q": 58, "R": 55, "S": 45, "T": 50, "U": 58,
	"V": 58, "W": 76, "X": 58, "Y": 58, "Z": 50,

	"0": 41, "1": 41, "2": 41, "3": 41, "4": 41,
	"5": 41, "6": 41, "7": 41, "8": 41, "9": 41,

	" ": 20,
}

// fonts maps lowercase font names to their width tables.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fonts = map[string]map[string]int{
	TimesNewRoman: timesNewRoman,
}
