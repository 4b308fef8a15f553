package uri

import (
	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// minLotusParts is the fewest components of a mail-system address.
const minLotusParts = 3

// recognizeLotus reads mail-system addresses such as "IVANOV/SALES/ACME":
// upper-case Latin words joined by "/" with no whitespace.
func recognizeLotus(t *tokenizer.Token, _ *termin.Match) []Match {
	if !isLotusPart(t) {
		return nil
	}
	end := t
	parts := 1
	for parts < maxURITokens {
		slash := adjacentNext(end)
		if !slash.IsChar('/') || !isLotusPart(adjacentNext(slash)) {
			break
		}
		end = slash.Next
		parts++
	}
	if parts < minLotusParts {
		return nil
	}
	if nx := adjacentNext(end); nx.IsChar('/') || nx.IsChar('@') {
		return nil
	}
	return []Match{{Begin: t, End: end, Referent: newReferent("lotus", joinText(t, end))}}
}

func isLotusPart(t *tokenizer.Token) bool {
	return t.IsLetters() && t.Chars.Has(tokenizer.Latin|tokenizer.AllUpper)
}
