package uri

import (
	"strings"

	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// recognizeGeneric reads "scheme:value". The value follows the keyword
// directly after a slash, or after a ":", "|" or table delimiter with at most
// two whitespaces on either side. Leading slashes are skipped.
func recognizeGeneric(t *tokenizer.Token, kw *termin.Match) []Match {
	if kw == nil {
		return nil
	}
	sep := kw.End.Next
	if sep == nil || kw.End.WhitespacesAfter > maxSpaceJoin || sep.NewlineBefore {
		return nil
	}
	var x *tokenizer.Token
	switch {
	case sep.IsCharOf(":|") || sep.IsTableControl():
		if sep.WhitespacesAfter > maxSpaceJoin || sep.NewlineAfter {
			return nil
		}
		x = sep.Next
	case kw.End.Adjacent() && sep.IsCharOf("/\\"):
		x = sep
	default:
		return nil
	}
	for x.IsCharOf("/\\") {
		x = adjacentNext(x)
	}
	if x == nil {
		return nil
	}
	end, value := scanURIContent(x)
	if end == nil {
		return nil
	}
	scheme := strings.ToLower(kw.Termin.Canonical)
	return []Match{{Begin: t, End: end, Referent: newReferent(scheme, value)}}
}
