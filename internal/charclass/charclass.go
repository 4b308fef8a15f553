// Package charclass provides rune classification and case folding for
// Russian/Latin business text.
//
// Folding follows the dictionary convention used by the terminology
// matcher: text is NFC-composed, upper-cased, and Ё is folded to Е so that
// "ЛИЦЕВОЙ СЧЁТ" and "лицевой счет" compare equal.
//
// All functions are safe for concurrent use.
package charclass

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Table-control runes. Document converters use them to mark table cells and
// rows; the tokenizer keeps them as standalone tokens.
const (
	Bell      = '\u0007'
	RecordSep = '\u001E'
	UnitSep   = '\u001F'
)

// IsCyrillic reports whether r is a Cyrillic letter.
func IsCyrillic(r rune) bool {
	return unicode.Is(unicode.Cyrillic, r)
}

// IsLatin reports whether r is a Latin letter.
func IsLatin(r rune) bool {
	return unicode.Is(unicode.Latin, r)
}

// IsTableControl reports whether r is one of the table-control runes.
func IsTableControl(r rune) bool {
	return r == Bell || r == RecordSep || r == UnitSep
}

// IsHyphen reports whether r is a hyphen or dash of any width.
func IsHyphen(r rune) bool {
	switch r {
	case '-', '\u00AD', '\u2010', '\u2011', '\u2012', '\u2013', '\u2014', '\u2015', '\u2212':
		return true
	}
	return false
}

// IsNewline reports whether r ends a line.
func IsNewline(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029' || r == '\u0085'
}

// IsSpace reports whether r is whitespace. Table-control runes are not.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200B' || r == '\uFEFF'
}

// Upper returns the folded upper-case form of r.
func Upper(r rune) rune {
	switch r {
	case 'ё', 'Ё':
		return 'Е'
	default:
		return unicode.ToUpper(r)
	}
}

// Fold returns the dictionary form of s: NFC, upper case, Ё folded to Е.
func Fold(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Upper(r))
	}
	return b.String()
}
