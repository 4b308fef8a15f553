package tokenizer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/open-condo-software/condo-sub035/internal/charclass"
	"github.com/open-condo-software/condo-sub035/morph"
)

// Tokenize splits s into a token stream tagged by the built-in morph tagger.
// An empty s yields an empty stream.
func Tokenize(s string) *Stream {
	return TokenizeWith(s, morph.Default)
}

// TokenizeWith is Tokenize with a caller-supplied tagger. A nil tagger
// selects morph.Default.
//
// Rules, first match wins:
//   - whitespace is counted onto the neighbouring tokens
//   - a run of ASCII digits is a Number token
//   - a run of letters (and combining marks) is a Text token, or a Number
//     token when it is a Russian cardinal word
//   - any other rune is a single-rune Text token
func TokenizeWith(s string, tagger morph.Tagger) *Stream {
	st := &Stream{Source: s}
	if s == "" {
		return st
	}
	if tagger == nil {
		tagger = morph.Default
	}

	spaces, newline := 0, false
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError && charclass.IsSpace(r) {
			spaces++
			if charclass.IsNewline(r) {
				newline = true
			}
			i += size
			continue
		}

		var t *Token
		switch {
		case isDigitByte(s[i]):
			t = scanDigits(s, i)
		case unicode.IsLetter(r):
			t = scanLetters(s, i, tagger)
		default:
			t = &Token{Kind: Text, Text: s[i : i+size], Start: i, End: i + size}
			t.Term = charclass.Fold(t.Text)
			if charclass.IsTableControl(r) {
				t.Chars = TableControl
			}
		}

		t.WhitespacesBefore = spaces
		t.NewlineBefore = newline
		st.append(t)
		spaces, newline = 0, false
		i = t.End
	}
	if st.Last != nil {
		st.Last.WhitespacesAfter = spaces
		st.Last.NewlineAfter = newline
	}
	return st
}

// scanDigits reads a run of ASCII digits starting at pos.
func scanDigits(s string, pos int) *Token {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	text := s[pos:i]
	t := &Token{
		Kind:     Number,
		Text:     text,
		Term:     text,
		Start:    pos,
		End:      i,
		Chars:    Digit,
		Spelling: Digits,
		Value:    text,
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		t.Int, t.IntOK = v, true
	}
	return t
}

// scanLetters reads a run of letters starting at pos. Combining marks stay
// attached to the preceding letter.
func scanLetters(s string, pos int, tagger morph.Tagger) *Token {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) && !unicode.IsMark(r) {
			break
		}
		i += size
	}
	text := s[pos:i]
	t := &Token{
		Kind:  Text,
		Text:  text,
		Term:  charclass.Fold(text),
		Start: pos,
		End:   i,
		Chars: classifyLetters(text),
	}
	if t.Chars.Has(Cyrillic) && !t.Chars.Has(AllUpper) {
		if v, ok := numberWords[strings.ToLower(text)]; ok {
			t.Kind = Number
			t.Spelling = Words
			t.Int, t.IntOK = v, true
			t.Value = strconv.FormatInt(v, 10)
			return t
		}
	}
	t.Morph = tagger.Analyze(text)
	return t
}

// classifyLetters computes the flags of a letter run.
func classifyLetters(s string) CharInfo {
	c := Letter | Cyrillic | Latin
	var upper, lower, letters int
	capital := true
	for _, r := range s {
		if unicode.IsMark(r) {
			continue
		}
		if !charclass.IsCyrillic(r) {
			c &^= Cyrillic
		}
		if !charclass.IsLatin(r) {
			c &^= Latin
		}
		switch {
		case unicode.IsUpper(r):
			upper++
			if letters > 0 {
				capital = false
			}
		case unicode.IsLower(r):
			lower++
			if letters == 0 {
				capital = false
			}
		}
		letters++
	}
	if upper > 0 && lower == 0 {
		c |= AllUpper
	}
	if lower > 0 && upper == 0 {
		c |= AllLower
	}
	if capital && letters > 1 && upper == 1 {
		c |= Capitalized
	}
	return c
}

// isHyphenText reports whether s is a single hyphen or dash rune.
func isHyphenText(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && charclass.IsHyphen(r)
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
