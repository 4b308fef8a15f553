// Package termin matches dictionary keywords against a token stream.
//
// A Termin is a canonical keyword with its accepted surface variants and an
// opaque integer tag chosen by the caller. A Collection compiles the variants
// into a token-level trie and finds the longest variant that starts at a
// given token.
//
// Variants are tokenized with the same tokenizer as the text, so
// "E-MAIL" matches the three tokens "e", "-", "mail", and whitespace between
// tokens is ignored. A trailing "*" on a variant word turns it into a prefix
// pattern: "КАДАСТРОВ* НОМЕР*" matches "кадастровым номером".
//
// Matching is case-insensitive and Ё-insensitive (see tokenizer.Token.Term).
// It never crosses a newline or a composite token.
//
// A Collection is safe for concurrent TryMatch calls once all Add calls have
// returned.
package termin

import (
	"fmt"

	"github.com/open-condo-software/condo-sub035/internal/charclass"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Lang tags the language a keyword belongs to.
type Lang int

const (
	LangAny Lang = iota
	LangRu
	LangEn
)

// String returns the name of the language.
func (l Lang) String() string {
	switch l {
	case LangAny:
		return "any"
	case LangRu:
		return "ru"
	case LangEn:
		return "en"
	default:
		return fmt.Sprintf("Lang(%d)", int(l))
	}
}

// Termin is one dictionary entry.
type Termin struct {
	Canonical string
	Lang      Lang
	Variants  []string
	Tag       int
}

// New returns a termin whose variants are canonical plus the given extras.
func New(canonical string, lang Lang, tag int, variants ...string) *Termin {
	return &Termin{
		Canonical: canonical,
		Lang:      lang,
		Tag:       tag,
		Variants:  append([]string{canonical}, variants...),
	}
}

// String returns the canonical text.
func (t *Termin) String() string { return t.Canonical }

// Match is a successful lookup: the tokens [Begin, End] spell a variant of
// Termin.
type Match struct {
	Begin  *tokenizer.Token
	End    *tokenizer.Token
	Termin *Termin
}

// Len returns the number of tokens in the match.
func (m *Match) Len() int {
	n := 0
	for t := m.Begin; t != nil; t = t.Next {
		n++
		if t == m.End {
			break
		}
	}
	return n
}

type pattern struct {
	term   string
	prefix bool
}

// compile turns a variant into the folded token patterns it must match.
func compile(variant string) []pattern {
	var out []pattern
	for tok := tokenizer.Tokenize(variant).First; tok != nil; tok = tok.Next {
		if tok.IsChar('*') && len(out) > 0 && tok.WhitespacesBefore == 0 {
			out[len(out)-1].prefix = true
			continue
		}
		out = append(out, pattern{term: charclass.Fold(tok.Text)})
	}
	return out
}
