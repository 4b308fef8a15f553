package uri

import (
	"strings"
	"unicode/utf8"

	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Lookahead limits of the content scanners.
const (
	maxURITokens     = 64 // tokens in one URI content run
	maxDomainTokens  = 32 // tokens in one domain name
	maxLocalTokens   = 16 // tokens in one e-mail local part
	maxHandleTokens  = 16 // tokens in one messenger handle
	maxDetailTokens  = 30 // tokens inside a detail parenthetical
	maxFillerTokens  = 8  // tokens skipped between a keyword and its value
	maxGenitiveWords = 3  // genitive filler words between a keyword and its value
	maxIntroTokens   = 10 // tokens walked left looking for an e-mail intro
	maxSpaceJoin     = 2  // whitespaces allowed inside a spaced value
	maxDigitGroups   = 16 // groups in one separated digit run
)

// uriPunct are the non-alphanumeric runes allowed inside URI content.
const uriPunct = "/\\.:-_~?#@!$&*+=%"

// trailingPunct are left out when they end a URI content run.
const trailingPunct = ".:?!-"

// isLabel reports whether t can be part of a domain label.
func isLabel(t *tokenizer.Token) bool {
	return t.IsLetters() || t.IsDigits()
}

// adjacentNext returns t.Next when no whitespace separates them.
func adjacentNext(t *tokenizer.Token) *tokenizer.Token {
	if !t.Adjacent() {
		return nil
	}
	return t.Next
}

// joinText returns the text of [b, e], with one space wherever the source
// has whitespace.
func joinText(b, e *tokenizer.Token) string {
	var sb strings.Builder
	for t := b; t != nil; t = t.Next {
		sb.WriteString(t.Text)
		if t == e {
			break
		}
		if t.WhitespacesAfter > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// runeLen returns the number of runes in s.
func runeLen(s string) int { return utf8.RuneCountInString(s) }

// scanURIContent reads a whitespace-free run of URI characters starting at
// t. Trailing sentence punctuation is left out. It returns nil when the run
// holds no letter or digit.
func scanURIContent(t *tokenizer.Token) (*tokenizer.Token, string) {
	var end *tokenizer.Token
	n := 0
	for cur := t; cur != nil && n < maxURITokens; cur = adjacentNext(cur) {
		if cur.Kind == tokenizer.Composite || (!isLabel(cur) && !cur.IsCharOf(uriPunct)) {
			break
		}
		end = cur
		n++
	}
	for end != nil && end != t && end.IsCharOf(trailingPunct) {
		end = end.Prev
	}
	if end == nil {
		return nil, ""
	}
	for cur := t; ; cur = cur.Next {
		if isLabel(cur) {
			return end, joinText(t, end)
		}
		if cur == end {
			return nil, ""
		}
	}
}

// scanDomain reads a domain name starting at t: labels of letters and
// digits joined by "." or "-", at least two labels, the last one made of two
// or more letters. The value is lower-cased. tail is the last label.
func scanDomain(t *tokenizer.Token) (end *tokenizer.Token, value string, tail string) {
	if !isLabel(t) {
		return nil, "", ""
	}
	end = t
	last := t
	dots := 0
	for n := 1; n < maxDomainTokens; n++ {
		nx := adjacentNext(end)
		if nx == nil {
			break
		}
		if isLabel(nx) {
			end = nx
			continue
		}
		if (nx.IsChar('.') || nx.IsChar('-')) && isLabel(adjacentNext(nx)) {
			if nx.IsChar('.') {
				dots++
				last = nx.Next
			}
			end = nx.Next
			n++
			continue
		}
		break
	}
	if dots == 0 || last != end || !last.IsLetters() || runeLen(last.Text) < 2 {
		return nil, "", ""
	}
	return end, strings.ToLower(joinText(t, end)), strings.ToLower(last.Text)
}

// isLocalToken reports whether t can be part of an e-mail local part.
func isLocalToken(t *tokenizer.Token) bool {
	if t == nil {
		return false
	}
	if t.IsLetters() {
		return t.Chars.Has(tokenizer.Latin)
	}
	return t.IsDigits() || t.IsCharOf("._-+")
}

// scanLocalBackward reads an e-mail local part that ends at t, walking left
// over adjacent tokens. The part must start and end with a letter or digit.
func scanLocalBackward(t *tokenizer.Token) (*tokenizer.Token, string) {
	if !isLocalToken(t) || !isLabel(t) {
		return nil, ""
	}
	begin := t
	for n := 1; n < maxLocalTokens; n++ {
		p := begin.Prev
		if p == nil || p.WhitespacesAfter > 0 || !isLocalToken(p) {
			break
		}
		begin = p
	}
	for begin != t && !isLabel(begin) {
		begin = begin.Next
	}
	return begin, strings.ToLower(joinText(begin, t))
}

// scanHandle reads a messenger handle starting at t: Latin letters, digits
// and "._-", optionally prefixed with "live:". It must start with a letter
// and be at least three runes long.
func scanHandle(t *tokenizer.Token) (*tokenizer.Token, string) {
	if !t.IsLetters() || !t.Chars.Has(tokenizer.Latin) {
		return nil, ""
	}
	end := t
	if t.IsTerm("LIVE") {
		if c := adjacentNext(t); c.IsChar(':') && isHandleToken(adjacentNext(c)) {
			end = c.Next
		}
	}
	for n := 1; n < maxHandleTokens; n++ {
		nx := adjacentNext(end)
		if !isHandleToken(nx) {
			break
		}
		end = nx
	}
	for end != t && end.IsCharOf("._-") {
		end = end.Prev
	}
	value := strings.ToLower(joinText(t, end))
	if runeLen(value) < 3 {
		return nil, ""
	}
	return end, value
}

func isHandleToken(t *tokenizer.Token) bool {
	if t == nil {
		return false
	}
	if t.IsLetters() {
		return t.Chars.Has(tokenizer.Latin)
	}
	return t.IsDigits() || t.IsCharOf("._-")
}

// scanDigitGroups reads digit tokens joined by any of the adjacent
// separators in seps. It returns the groups in order, at most
// maxDigitGroups of them.
func scanDigitGroups(t *tokenizer.Token, seps string) (*tokenizer.Token, []string) {
	if !t.IsDigits() {
		return nil, nil
	}
	end := t
	groups := []string{t.Value}
	for len(groups) < maxDigitGroups {
		sep := adjacentNext(end)
		if sep == nil || !sep.IsCharOf(seps) {
			break
		}
		nx := adjacentNext(sep)
		if !nx.IsDigits() {
			break
		}
		groups = append(groups, nx.Value)
		end = nx
	}
	return end, groups
}

// readParenthetical reads "( ... )" starting at t on one line and returns
// the closing bracket and the text between the brackets.
func readParenthetical(t *tokenizer.Token) (*tokenizer.Token, string) {
	if !t.IsChar('(') || t.NewlineBefore {
		return nil, ""
	}
	depth := 0
	for cur, n := t.Next, 0; cur != nil && n < maxDetailTokens; cur, n = cur.Next, n+1 {
		if cur.NewlineBefore {
			return nil, ""
		}
		switch {
		case cur.IsChar('('):
			depth++
		case cur.IsChar(')'):
			if depth == 0 {
				if cur == t.Next {
					return nil, ""
				}
				return cur, joinText(t.Next, cur.Prev)
			}
			depth--
		}
	}
	return nil, ""
}

// matchingOpen returns the "(" that balances the ")" at t, looking left at
// most limit tokens on the same line.
func matchingOpen(t *tokenizer.Token, limit int) *tokenizer.Token {
	depth := 0
	for cur, n := t.Prev, 0; cur != nil && n < limit; cur, n = cur.Prev, n+1 {
		if cur.NewlineAfter || cur.Kind == tokenizer.Composite {
			return nil
		}
		switch {
		case cur.IsChar(')'):
			depth++
		case cur.IsChar('('):
			if depth == 0 {
				return cur
			}
			depth--
		}
	}
	return nil
}
