package uri

import (
	"strings"

	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// minWebContent is the shortest content accepted after "scheme://".
const minWebContent = 4

// webTLDs are the top-level domains a bare domain name must end with.
var webTLDs = map[string]bool{
	"ru": true, "рф": true, "su": true, "com": true, "net": true, "org": true,
	"info": true, "biz": true, "pro": true, "edu": true, "gov": true, "int": true,
	"io": true, "me": true, "tv": true, "cc": true, "co": true, "app": true,
	"dev": true, "online": true, "site": true, "shop": true, "store": true,
	"tech": true, "рус": true, "москва": true, "moscow": true, "msk": true,
	"spb": true, "ua": true, "by": true, "kz": true, "uz": true, "am": true,
	"ge": true, "az": true, "kg": true, "tj": true, "lv": true, "lt": true,
	"ee": true, "de": true, "uk": true, "fr": true, "it": true, "es": true,
	"nl": true, "pl": true, "cz": true, "fi": true, "se": true, "no": true,
	"ch": true, "at": true, "eu": true, "us": true, "ca": true, "cn": true,
	"jp": true, "in": true,
}

// recognizeWeb reads web addresses.
//
// With a keyword: "http://content" (scheme from the keyword), or
// "www.content" (scheme http, the "www." kept in the value). Without a
// keyword: a bare domain name with a known top-level domain and an optional
// path.
func recognizeWeb(t *tokenizer.Token, kw *termin.Match) []Match {
	if kw == nil {
		return recognizeBareURL(t)
	}
	canon := kw.Termin.Canonical
	sep := adjacentNext(kw.End)
	if sep == nil {
		return nil
	}

	if sep.IsChar(':') {
		x := adjacentNext(sep)
		if !x.IsCharOf("/\\") {
			return nil
		}
		for x.IsCharOf("/\\") {
			x = adjacentNext(x)
		}
		if x == nil {
			return nil
		}
		end, value := scanURIContent(x)
		if end == nil || runeLen(value) < minWebContent {
			return nil
		}
		scheme := strings.ToLower(canon)
		if canon == "WWW" {
			scheme = "http"
		}
		return []Match{{Begin: t, End: end, Referent: newReferent(scheme, value)}}
	}

	if sep.IsChar('.') {
		if sep.NewlineAfter || (sep.WhitespacesAfter > 0 && canon != "WWW") {
			return nil
		}
		end, value := scanURIContent(sep.Next)
		if end == nil || !strings.Contains(value, ".") {
			return nil
		}
		value = strings.ToLower(kw.End.Text) + "." + value
		return []Match{{Begin: t, End: end, Referent: newReferent("http", value)}}
	}
	return nil
}

// recognizeBareURL reads a domain name that follows a comma, a bracket,
// whitespace or the start of the text.
func recognizeBareURL(t *tokenizer.Token) []Match {
	if !t.IsDigits() && !(t.IsLetters() && t.Chars.Has(tokenizer.Latin)) {
		return nil
	}
	if p := t.Prev; p != nil && t.WhitespacesBefore == 0 && !p.IsCharOf(",(") {
		return nil
	}
	end, value, tld := scanDomain(t)
	if end == nil || !webTLDs[tld] {
		return nil
	}
	if nx := adjacentNext(end); nx.IsChar('@') {
		return nil
	}
	if nx := adjacentNext(end); nx.IsCharOf("/:") {
		if pe, path := scanURIContent(nx); pe != nil {
			end, value = pe, value+path
		}
	}
	return []Match{{Begin: t, End: end, Referent: newReferent("http", value)}}
}
