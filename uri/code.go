package uri

import (
	"strings"

	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Code value limits.
const (
	minTUValue     = 10 // value length after an all-upper "ТУ"
	maxTNVEDDigits = 10 // digits in a ТН ВЭД code
	maxCodePrefix  = 2  // letter words before the digits, e.g. "ГОСТ Р ИСО 9001"
	maxPrefixRunes = 3  // runes in one such word
)

// recognizeCode reads classification and registration codes. Schemes
// starting with "ОК" take an optional "(detail)" and a comma-separated list
// of further codes, each its own match.
func recognizeCode(t *tokenizer.Token, kw *termin.Match) []Match {
	if kw == nil {
		return nil
	}
	scheme := kw.Termin.Canonical
	x := skipCodeFiller(kw.End.Next)
	if x == nil || x.NewlineBefore {
		return nil
	}

	var end *tokenizer.Token
	var value string
	switch scheme {
	case "ISBN":
		end, value = scanISBN(x)
		if end == nil {
			return isbnBefore(kw)
		}
	case "ТНВЭД":
		end, value = scanTNVED(x)
	default:
		end, value = scanCodeValue(x)
		if end != nil && scheme == "ТУ" && kw.Begin.Chars.Has(tokenizer.AllUpper) && runeLen(value) < minTUValue {
			return nil
		}
	}
	if end == nil {
		return nil
	}

	first := Match{Begin: t, End: end, Referent: newReferent(scheme, value)}
	if !strings.HasPrefix(scheme, "ОК") {
		return []Match{first}
	}
	out := []Match{first}
	withDetail(&out[0])
	for {
		sep := out[len(out)-1].End.Next
		if sep == nil || !sep.IsCharOf(",;") {
			break
		}
		y := sep.Next
		if y == nil || y.NewlineBefore {
			break
		}
		ye, yv := scanCodeValue(y)
		if ye == nil {
			break
		}
		out = append(out, Match{Begin: y, End: ye, Referent: newReferent(scheme, yv)})
		withDetail(&out[len(out)-1])
	}
	return out
}

// withDetail extends m over a "(detail)" that follows it.
func withDetail(m *Match) {
	if end, text := readParenthetical(m.End.Next); end != nil {
		m.End = end
		m.Referent.Detail = text
	}
}

// skipCodeFiller skips ":", hyphens and "№" between a keyword and its value.
func skipCodeFiller(x *tokenizer.Token) *tokenizer.Token {
	for i := 0; x != nil && i < maxFillerTokens; i++ {
		if !x.IsCharOf(":№") && !x.IsHyphen() {
			break
		}
		x = x.Next
	}
	return x
}

// scanCodeValue reads up to two short upper-case words or "/WORD" parts,
// then digit groups joined by ".", "-", ":" or "/".
// Examples: "Р 52872-2019", "/IEC 27001", "004.8:621".
func scanCodeValue(t *tokenizer.Token) (*tokenizer.Token, string) {
	var words []string
	x := t
	for len(words) < maxCodePrefix && x != nil && !x.NewlineBefore {
		if x.IsChar('/') && x.Adjacent() && isCodeWord(x.Next) {
			words = append(words, x.Next.Text)
			x = x.Next.Next
			continue
		}
		if isCodeWord(x) && x.Next != nil {
			words = append(words, x.Text)
			x = x.Next
			continue
		}
		break
	}
	if x == nil || x.NewlineBefore {
		return nil, ""
	}
	end, _ := scanDigitGroups(x, ".-:/")
	if end == nil {
		return nil, ""
	}
	value := joinText(x, end)
	if len(words) > 0 {
		value = strings.Join(words, " ") + " " + value
	}
	return end, value
}

func isCodeWord(t *tokenizer.Token) bool {
	return t.IsLetters() && t.Chars.Has(tokenizer.AllUpper) && runeLen(t.Text) <= maxPrefixRunes
}

// scanISBN reads a 10 or 13 digit ISBN, hyphens allowed between groups, a
// final check digit "X" allowed on ISBN-10.
func scanISBN(t *tokenizer.Token) (*tokenizer.Token, string) {
	if !t.IsDigits() {
		return nil, ""
	}
	end := t
	digits := len(t.Value)
	for digits <= 13 {
		nx := adjacentNext(end)
		if nx.IsHyphen() {
			nx = adjacentNext(nx)
		}
		if nx.IsDigits() {
			digits += len(nx.Value)
			end = nx
			continue
		}
		if nx.IsTerm("X") && digits == 9 {
			digits++
			end = nx
		}
		break
	}
	if digits != 10 && digits != 13 {
		return nil, ""
	}
	return end, strings.ToUpper(joinText(t, end))
}

// isbnBefore handles "978-5-17-118366-9 (ISBN)": the keyword alone in
// brackets right after the number.
func isbnBefore(kw *termin.Match) []Match {
	open, closing := kw.Begin.Prev, kw.End.Next
	if !open.IsChar('(') || !closing.IsChar(')') {
		return nil
	}
	last := open.Prev
	if last == nil || last.NewlineAfter {
		return nil
	}
	start := last
	for p := start.Prev; p != nil && p.WhitespacesAfter == 0 && (p.IsDigits() || p.IsHyphen()); p = p.Prev {
		start = p
	}
	for start != last && !start.IsDigits() {
		start = start.Next
	}
	end, value := scanISBN(start)
	if end != last {
		return nil
	}
	return []Match{{Begin: start, End: closing, Referent: newReferent("ISBN", value)}}
}

// scanTNVED reads a ТН ВЭД code: digit groups separated by whitespace,
// dots or hyphens, concatenated up to ten digits.
func scanTNVED(t *tokenizer.Token) (*tokenizer.Token, string) {
	if !t.IsDigits() || len(t.Value) > maxTNVEDDigits {
		return nil, ""
	}
	end := t
	value := t.Value
	for {
		nx := end.Next
		if nx == nil || nx.NewlineBefore || end.WhitespacesAfter > maxSpaceJoin {
			break
		}
		if end.Adjacent() && nx.IsCharOf(".-") {
			nx = adjacentNext(nx)
		}
		if !nx.IsDigits() || len(value)+len(nx.Value) > maxTNVEDDigits {
			break
		}
		value += nx.Value
		end = nx
	}
	return end, value
}
