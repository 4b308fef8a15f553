package uri

import (
	"strings"

	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Cadastral number shape: district:area:block:lot.
const (
	cadastreGroups    = 4
	maxDistrictDigits = 2 // digits in each of the first two groups
	maxPrefixTokens   = 6 // tokens walked left for a "КН"/"кад." prefix
)

// cadastreScheme is the scheme of every cadastral number.
const cadastreScheme = "КАДАСТР"

// recognizeCadastre reads "77:01:0001001:1234" after a keyword or, without
// one, at its first digit group. Prefix words such as "КН" or "актуальный"
// to the left are absorbed into the span.
func recognizeCadastre(t *tokenizer.Token, kw *termin.Match) []Match {
	x := t
	if kw != nil {
		x = skipCodeFiller(kw.End.Next)
		if x == nil || x.NewlineBefore {
			return nil
		}
	}
	end, value := scanCadastral(x)
	if end == nil {
		return nil
	}
	return []Match{{Begin: cadastrePrefix(t), End: end, Referent: newReferent(cadastreScheme, value)}}
}

// isCadastreStart reports whether t opens a keyword-less cadastral number:
// a short digit group followed directly by ":" and another digit group.
func isCadastreStart(t *tokenizer.Token) bool {
	if !t.IsDigits() || len(t.Value) > maxDistrictDigits {
		return false
	}
	c := adjacentNext(t)
	return c.IsChar(':') && adjacentNext(c).IsDigits()
}

// scanCadastral reads exactly four digit groups joined by ":" with no
// whitespace around the colons.
func scanCadastral(t *tokenizer.Token) (*tokenizer.Token, string) {
	end, groups := scanDigitGroups(t, ":")
	if len(groups) != cadastreGroups {
		return nil, ""
	}
	for _, g := range groups[:2] {
		if len(g) > maxDistrictDigits {
			return nil, ""
		}
	}
	return end, strings.Join(groups, ":")
}

// cadastrePrefix walks left from b over "КН", "кад...", "актуал..." and the
// hyphens, colons, dots, "№" and "номер" words between them, and returns the
// leftmost prefix word found, or b.
func cadastrePrefix(b *tokenizer.Token) *tokenizer.Token {
	begin := b
	for p, n := b.Prev, 0; p != nil && n < maxPrefixTokens; p, n = p.Prev, n+1 {
		if p.NewlineAfter {
			break
		}
		switch {
		case p.IsTerm("КН") || p.HasTermPrefix("КАД") || p.HasTermPrefix("АКТУАЛ"):
			begin = p
		case p.IsCharOf(":№.") || p.IsHyphen() || p.HasTermPrefix("НОМЕР"):
		default:
			return begin
		}
	}
	return begin
}
