package uri

import (
	"strings"

	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Identifier value limits.
const (
	minIdentifier = 5  // shortest accepted identifier value
	minIBAN       = 10 // shortest IBAN
	maxIBAN       = 34 // longest IBAN
	ibanGroup     = 4  // longest space-separated IBAN group
	maxPairGap    = 6  // tokens searched left for the first keyword of a pair
)

// digitRule is the accepted length of a digit identifier: one of exact, or
// at least min when exact is empty.
type digitRule struct {
	exact []int
	min   int
}

func (r digitRule) accepts(n int) bool {
	if len(r.exact) == 0 {
		return n >= r.min
	}
	for _, e := range r.exact {
		if n == e {
			return true
		}
	}
	return false
}

// least is the shortest accepted length.
func (r digitRule) least() int {
	if len(r.exact) == 0 {
		return r.min
	}
	return r.exact[0]
}

// most is the longest accepted length.
func (r digitRule) most() int {
	if len(r.exact) == 0 {
		return maxIBAN
	}
	return r.exact[len(r.exact)-1]
}

// digitRules maps identifier schemes to their value lengths.
var digitRules = map[string]digitRule{
	"ИНН":    {exact: []int{10, 12}},
	"КПП":    {exact: []int{9}},
	"БИК":    {exact: []int{9}},
	"ОГРН":   {min: 11},
	"ОГРНИП": {min: 11},
	"СНИЛС":  {min: 11},
	"Р/С":    {exact: []int{20}},
	"К/С":    {exact: []int{20}},
	"Л/С":    {min: 15},
	"КБК":    {min: 15},
	"ОКПО":   {min: 1},
	"ОКТМО":  {min: 1},
	"ОКАТО":  {min: 1},
}

// identifiers recognizes tax, registration and bank identifiers. It needs
// the dispatch dictionary to find the first keyword of a paired notation
// such as "ИНН/КПП 7701234567/770101001".
type identifiers struct {
	keywords *termin.Collection
}

// Recognize implements Recognizer.
func (r identifiers) Recognize(t *tokenizer.Token, kw *termin.Match) []Match {
	if kw == nil {
		return nil
	}
	scheme := kw.Termin.Canonical
	f := skipIdentifierFiller(kw.End.Next, scheme == "IBAN")
	x := f.value
	if x == nil {
		return nil
	}

	var out []Match
	rule, digital := digitRules[scheme]
	switch {
	case digital && x.IsDigits():
		end, value := scanIdentifierDigits(x, rule)
		if rule.accepts(len(value)) && len(value) >= minIdentifier {
			out = append(out, Match{Begin: t, End: end, Referent: newReferent(scheme, value)})
		}
	case f.iban && x.IsLetters() && x.Chars.Has(tokenizer.Latin):
		if end, value := scanIBAN(x); end != nil {
			out = append(out, Match{Begin: t, End: end, Referent: newReferent("IBAN", value)})
		}
	}
	if len(out) == 0 {
		return r.paired(kw, x)
	}

	if f.table != nil {
		out[0].Begin = f.table
	} else {
		out[0].Begin = qualifierBefore(t)
	}

	if !digital {
		return out
	}
	width := len(out[0].Referent.Value)
	for {
		sep := out[len(out)-1].End.Next
		if !sep.IsChar(',') {
			break
		}
		y := sep.Next
		if y == nil || y.NewlineBefore || y.Kind != tokenizer.Number || y.Spelling != x.Spelling {
			break
		}
		ye, yv := scanIdentifierDigits(y, rule)
		if ye == nil || len(yv) != width {
			break
		}
		out = append(out, Match{Begin: y, End: ye, Referent: newReferent(scheme, yv)})
	}
	return out
}

// filler is what skipIdentifierFiller found between a keyword and its value.
type filler struct {
	value *tokenizer.Token // first token of the value, nil if none
	table *tokenizer.Token // token after the last table delimiter, nil if none
	iban  bool             // an IBAN marker was seen
}

// skipIdentifierFiller skips separators, "№", table delimiters, IBAN
// markers, "банк"/"руб" words, prepositions and a few lower-case genitive
// words ("ИНН организации"). It crosses a line break only inside a table.
func skipIdentifierFiller(x *tokenizer.Token, iban bool) filler {
	f := filler{iban: iban}
	genitives := 0
	for i := 0; x != nil && i < maxFillerTokens; i++ {
		if x.NewlineBefore && f.table == nil && !x.IsTableControl() {
			return f
		}
		switch {
		case x.IsTableControl():
			f.table = x.Next
		case x.IsCharOf(":|№#.") || x.IsHyphen():
		case x.IsChar('/') && x.Adjacent() && x.Next.IsTerm("IBAN"):
			f.iban = true
			x = x.Next
		case x.IsTerm("IBAN"):
			f.iban = true
		case x.HasTermPrefix("БАНК") || x.IsTerm("РУБ"):
		case x.IsLetters() && x.Morph.IsPreposition():
		case x.IsLetters() && x.Chars.Has(tokenizer.AllLower) && x.Morph.IsGenitive() && genitives < maxGenitiveWords:
			genitives++
		default:
			f.value = x
			return f
		}
		x = x.Next
	}
	return f
}

// scanIdentifierDigits reads a digit identifier starting at x. Groups
// joined by a hyphen or dot with no whitespace around it are concatenated.
// A group after whitespace is added only while the value is shorter than
// rule allows and the sum still fits.
func scanIdentifierDigits(x *tokenizer.Token, rule digitRule) (*tokenizer.Token, string) {
	if !x.IsDigits() {
		return nil, ""
	}
	end := x
	value := x.Value
	for len(value) <= maxIBAN {
		nx := end.Next
		if nx == nil {
			break
		}
		if end.Adjacent() {
			if !nx.IsHyphen() && !nx.IsChar('.') {
				break
			}
			d := adjacentNext(nx)
			if !d.IsDigits() {
				break
			}
			value += d.Value
			end = d
			continue
		}
		if end.NewlineAfter || end.WhitespacesAfter > maxSpaceJoin || !nx.IsDigits() ||
			len(value) >= rule.least() || len(value)+len(nx.Value) > rule.most() {
			break
		}
		value += nx.Value
		end = nx
	}
	return end, value
}

// scanIBAN reads an IBAN starting with a Latin country code. Hyphens are
// skipped; groups of up to four characters may be separated by whitespace.
func scanIBAN(t *tokenizer.Token) (*tokenizer.Token, string) {
	if runeLen(t.Text) < 2 {
		return nil, ""
	}
	var b strings.Builder
	b.WriteString(strings.ToUpper(t.Text))
	end := t
	for {
		nx := end.Next
		if nx == nil || nx.NewlineBefore {
			break
		}
		switch {
		case end.Adjacent() && nx.IsHyphen() && isIBANToken(adjacentNext(nx)):
			nx = nx.Next
		case end.Adjacent() && isIBANToken(nx):
		case !end.Adjacent() && end.WhitespacesAfter <= maxSpaceJoin && isIBANToken(nx) && runeLen(nx.Text) <= ibanGroup:
		default:
			nx = nil
		}
		if nx == nil || b.Len()+len(nx.Text) > maxIBAN {
			break
		}
		b.WriteString(strings.ToUpper(nx.Text))
		end = nx
	}
	value := b.String()
	if len(value) < minIBAN {
		return nil, ""
	}
	return end, value
}

func isIBANToken(t *tokenizer.Token) bool {
	return t.IsDigits() || (t.IsLetters() && t.Chars.Has(tokenizer.Latin))
}

// paired reads "KW1/KW2 number1/number2": kw is KW2 and x the first value
// token. Each number is checked by its own keyword's rule.
func (r identifiers) paired(kw *termin.Match, x *tokenizer.Token) []Match {
	slash := kw.Begin.Prev
	if !slash.IsCharOf("/\\") || !x.IsDigits() {
		return nil
	}
	first := r.keywordEndingAt(slash.Prev)
	if first == nil {
		return nil
	}
	rule1, ok1 := digitRules[first.Termin.Canonical]
	rule2, ok2 := digitRules[kw.Termin.Canonical]
	if !ok1 || !ok2 {
		return nil
	}
	e1, v1 := scanIdentifierDigits(x, rule1)
	if !rule1.accepts(len(v1)) || len(v1) < minIdentifier {
		return nil
	}
	sep := e1.Next
	if !sep.IsCharOf("/\\,") || e1.NewlineAfter || e1.WhitespacesAfter > maxSpaceJoin {
		return nil
	}
	y := sep.Next
	if y == nil || sep.NewlineAfter || sep.WhitespacesAfter > maxSpaceJoin {
		return nil
	}
	e2, v2 := scanIdentifierDigits(y, rule2)
	if e2 == nil || !rule2.accepts(len(v2)) || len(v2) < minIdentifier {
		return nil
	}
	return []Match{
		{Begin: qualifierBefore(first.Begin), End: e1, Referent: newReferent(first.Termin.Canonical, v1)},
		{Begin: y, End: e2, Referent: newReferent(kw.Termin.Canonical, v2)},
	}
}

// keywordEndingAt returns the longest Identifier keyword that ends at e.
func (r identifiers) keywordEndingAt(e *tokenizer.Token) *termin.Match {
	if r.keywords == nil {
		return nil
	}
	var best *termin.Match
	for p, n := e, 0; p != nil && n < maxPairGap; p, n = p.Prev, n+1 {
		if p.NewlineAfter && p != e {
			break
		}
		m := r.keywords.TryMatch(p)
		if m != nil && m.End == e && Family(m.Termin.Tag) == Identifier {
			best = m
		}
	}
	return best
}

// qualifierBefore returns the "номер"/"код" word at most two tokens before
// b (skipping "№" and ":"), or b itself.
func qualifierBefore(b *tokenizer.Token) *tokenizer.Token {
	p := b.Prev
	for i := 0; p != nil && i < 2; i++ {
		if p.NewlineAfter {
			break
		}
		if p.HasTermPrefix("НОМЕР") || p.IsTerm("КОД") {
			return p
		}
		if !p.IsCharOf("№:") {
			break
		}
		p = p.Prev
	}
	return b
}
