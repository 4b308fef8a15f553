package uri

import (
	"strings"

	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// ICQ number limits, in digits.
const (
	minICQDigits = 5
	maxICQDigits = 10
)

// recognizeMessenger reads Skype and Swift handles and ICQ numbers.
func recognizeMessenger(t *tokenizer.Token, kw *termin.Match) []Match {
	if kw == nil {
		return nil
	}
	canon := kw.Termin.Canonical
	x := kw.End.Next

	if canon == "ICQ" {
		if x.IsChar(':') || x.IsHyphen() {
			x = x.Next
		}
		if x == nil || x.NewlineBefore {
			return nil
		}
		end, groups := scanDigitGroups(x, "-")
		value := strings.Join(groups, "")
		if end == nil || len(value) < minICQDigits || len(value) > maxICQDigits {
			return nil
		}
		return []Match{{Begin: t, End: end, Referent: newReferent(canon, value)}}
	}

	for i := 0; x != nil && i < maxFillerTokens; i++ {
		if !x.IsCharOf(":|") && !x.IsTableControl() && !x.IsHyphen() {
			break
		}
		x = x.Next
	}
	if x == nil || x.NewlineBefore {
		return nil
	}
	end, value := scanHandle(x)
	if end == nil {
		return nil
	}
	scheme := canon
	if canon == "SKYPE" {
		scheme = "skype"
	}
	return []Match{{Begin: t, End: end, Referent: newReferent(scheme, value)}}
}
