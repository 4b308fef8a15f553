package uri

import (
	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// mailScheme is the scheme of every e-mail address.
const mailScheme = "mailto"

// maxLocalParts bounds "a, b, c@domain" lists.
const maxLocalParts = 8

// recognizeEmail reads the e-mail address around the "@" at t. Several
// comma-separated local parts before one "@" give one match each, all
// sharing the domain; the extra parts must hold a Latin letter. The first
// match absorbs an introductory phrase such as "E-mail:" or
// "адрес эл. почты:".
func recognizeEmail(t *tokenizer.Token, _ *termin.Match) []Match {
	if !t.IsChar('@') || t.Prev == nil || t.NewlineBefore || t.WhitespacesBefore > 1 {
		return nil
	}
	dEnd, domain, _ := scanDomain(adjacentNext(t))
	if dEnd == nil {
		return nil
	}

	type part struct {
		begin, end *tokenizer.Token
		local      string
	}
	lb, local := scanLocalBackward(t.Prev)
	if lb == nil {
		return nil
	}
	parts := []part{{lb, t.Prev, local}}
	for len(parts) < maxLocalParts {
		comma := parts[0].begin.Prev
		if !comma.IsChar(',') || parts[0].begin.NewlineBefore || comma.NewlineBefore {
			break
		}
		e := comma.Prev
		b, l := scanLocalBackward(e)
		if b == nil || !hasLatin(b, e) {
			break
		}
		parts = append([]part{{b, e, l}}, parts...)
	}

	out := make([]Match, len(parts))
	for i, p := range parts {
		out[i] = Match{Begin: p.begin, End: p.end, Referent: newReferent(mailScheme, p.local+"@"+domain)}
	}
	out[len(out)-1].End = dEnd
	out[0].Begin = mailIntro(out[0].Begin)
	return out
}

// hasLatin reports whether a Latin letter token lies in [b, e].
func hasLatin(b, e *tokenizer.Token) bool {
	for t := b; t != nil; t = t.Next {
		if t.IsLetters() && t.Chars.Has(tokenizer.Latin) {
			return true
		}
		if t == e {
			break
		}
	}
	return false
}

// mailIntro walks left from b over one ":" or hyphen, lower-case words,
// dots, hyphens and balanced brackets, and returns the leftmost token that
// starts an e-mail phrase ending before b, or b if there is none.
func mailIntro(b *tokenizer.Token) *tokenizer.Token {
	start := b
	if b.NewlineBefore {
		return start
	}
	p := b.Prev
	if p.IsChar(':') || p.IsHyphen() {
		p = p.Prev
	}
	for n := 0; p != nil && n < maxIntroTokens; n++ {
		if p.Kind == tokenizer.Composite || p.NewlineAfter {
			break
		}
		if m := mailWords.TryMatch(p); m != nil && m.End.End <= b.Start {
			start = p
			p = p.Prev
			continue
		}
		switch {
		case p.IsChar(')'):
			open := matchingOpen(p, maxIntroTokens-n)
			if open == nil {
				return start
			}
			p = open.Prev
		case p.IsLetters() && p.Chars.Has(tokenizer.AllLower), p.IsChar('.'), p.IsHyphen():
			p = p.Prev
		default:
			return start
		}
	}
	return start
}
