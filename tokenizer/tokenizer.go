// Package tokenizer turns Russian/mixed-language business text into a linked
// stream of positioned tokens.
//
// The package provides two API layers:
//
//   - Structured: Tokenize returns a *Stream whose tokens carry byte
//     offsets, whitespace counts, newline flags, character-class flags,
//     number values, and morphological hints. The invariant
//     s[t.Start:t.End] == t.Text holds for every token.
//
//   - Surgery: Stream.Embed replaces a contiguous token range with one
//     composite token that owns a Referent; Stream.Widen grows an existing
//     composite over its neighbours.
//
// Whitespace never becomes a token. It is recorded on the neighbouring
// tokens as WhitespacesBefore/WhitespacesAfter and NewlineBefore/NewlineAfter.
//
// Tokenize is safe for concurrent use. A Stream is not: embedding mutates it
// in place.
//
// Known limitations:
//
//   - Letter runs are not split at script changes ("ABCабв" is one token).
//   - Only single-word Russian cardinals are read as spelled-out numbers.
package tokenizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/open-condo-software/condo-sub035/morph"
)

// Kind classifies a token.
type Kind int

const (
	Text      Kind = iota // Letter run, punctuation mark, or symbol
	Number                // Digit run or spelled-out cardinal
	Composite             // Embedded span owning a Referent
)

var kindNames = [...]string{
	Text:      "Text",
	Number:    "Number",
	Composite: "Composite",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as a JSON string (e.g. "Number").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Spelling tells how a number was written.
type Spelling int

const (
	Digits Spelling = iota // "12345"
	Words                  // "пять"
)

// String returns the name of the spelling.
func (s Spelling) String() string {
	switch s {
	case Digits:
		return "Digits"
	case Words:
		return "Words"
	default:
		return fmt.Sprintf("Spelling(%d)", int(s))
	}
}

// CharInfo is a set of character-class flags.
type CharInfo uint16

const (
	Letter       CharInfo = 1 << iota // every rune is a letter
	Digit                             // every rune is a decimal digit
	Cyrillic                          // every letter is Cyrillic
	Latin                             // every letter is Latin
	AllUpper                          // has letters, none lower case
	AllLower                          // has letters, none upper case
	Capitalized                       // first letter upper, the rest lower
	TableControl                      // a table-control rune
)

// Has reports whether all flags in f are set.
func (c CharInfo) Has(f CharInfo) bool { return c&f == f }

// Referent is the semantic object a composite token stands for.
type Referent interface {
	fmt.Stringer
}

// Token is one unit of the stream.
type Token struct {
	Kind  Kind
	Text  string // source text, s[Start:End]
	Term  string // folded form used for dictionary lookup
	Start int    // byte offset in the source (inclusive)
	End   int    // byte offset in the source (exclusive)

	WhitespacesBefore int
	WhitespacesAfter  int
	NewlineBefore     bool
	NewlineAfter      bool

	Chars CharInfo
	Morph morph.Info

	// Number tokens.
	Spelling Spelling
	Value    string // decimal digits, leading zeros kept for Digits
	Int      int64
	IntOK    bool // Int holds Value exactly

	// Composite tokens.
	Begin    *Token // first wrapped token
	Last     *Token // last wrapped token
	Referent Referent

	Parent *Token // composite wrapping this token, nil at top level
	Prev   *Token
	Next   *Token

	stream *Stream
}

// String returns a debug representation, e.g. Number("1234")[4:8].
func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind == Composite && t.Referent != nil {
		return fmt.Sprintf("%s(%s)[%d:%d]", t.Kind, t.Referent, t.Start, t.End)
	}
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Kind, t.Text, t.Start, t.End)
}

// IsChar reports whether t is the single-rune text token r.
func (t *Token) IsChar(r rune) bool {
	if t == nil || t.Kind != Text || len(t.Text) == 0 || len(t.Text) > 4 {
		return false
	}
	return t.Text == string(r)
}

// IsCharOf reports whether t is a single-rune text token found in chars.
func (t *Token) IsCharOf(chars string) bool {
	if t == nil || t.Kind != Text || t.Chars.Has(Letter) {
		return false
	}
	for _, r := range chars {
		if t.Text == string(r) {
			return true
		}
	}
	return false
}

// IsHyphen reports whether t is a hyphen or dash.
func (t *Token) IsHyphen() bool {
	return t != nil && t.Kind == Text && len(t.Text) > 0 && isHyphenText(t.Text)
}

// IsTableControl reports whether t is a table-control token.
func (t *Token) IsTableControl() bool {
	return t != nil && t.Chars.Has(TableControl)
}

// IsTerm reports whether t is a text token whose folded form equals term.
func (t *Token) IsTerm(term string) bool {
	return t != nil && t.Kind == Text && t.Term == term
}

// HasTermPrefix reports whether t is a letter token whose folded form starts
// with prefix.
func (t *Token) HasTermPrefix(prefix string) bool {
	return t != nil && t.Kind == Text && t.Chars.Has(Letter) && strings.HasPrefix(t.Term, prefix)
}

// IsLetters reports whether t is a text token made of letters only.
func (t *Token) IsLetters() bool {
	return t != nil && t.Kind == Text && t.Chars.Has(Letter)
}

// IsDigits reports whether t is a number token written with digits.
func (t *Token) IsDigits() bool {
	return t != nil && t.Kind == Number && t.Spelling == Digits
}

// Adjacent reports whether no whitespace separates t from t.Next.
func (t *Token) Adjacent() bool {
	return t != nil && t.Next != nil && t.WhitespacesAfter == 0
}
