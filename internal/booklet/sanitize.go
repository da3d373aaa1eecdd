package booklet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The PDF info dictionary is written with the basic WinAnsi-ish text encoding,
// so metadata strings are transliterated to an ASCII-safe equivalent before
// stamping. Letters NFD decomposition cannot handle get an explicit mapping.
var translit = strings.NewReplacer(
	"ı", "i", "İ", "I",
	"ğ", "g", "Ğ", "G",
	"ş", "s", "Ş", "S",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"ø", "o", "Ø", "O",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "Th",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"œ", "oe", "Œ", "OE",
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeASCII transliterates s to ASCII: special-cased letters are mapped,
// combining accents are stripped, and whatever still is not ASCII is dropped.
func SanitizeASCII(s string) string {
	s = translit.Replace(s)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
