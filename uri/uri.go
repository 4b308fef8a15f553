// Package uri recognizes structured identifiers in Russian/mixed-language
// business text and rewrites them into composite tokens.
//
// Recognized families: generic URI schemes ("mailto:", "tel:"), web
// addresses (http, www, bare domain names), classification codes (ISBN,
// ГОСТ, УДК, ОКВЭД...), messenger handles (Skype, Swift, ICQ), tax and bank
// identifiers (ИНН, КПП, ОГРН, БИК, accounts, IBAN), cadastral numbers and
// e-mail addresses. Each result is a Referent with a scheme ("http", "ИНН",
// "КАДАСТР", "mailto"...) and a normalized value.
//
// Two API layers are provided:
//
//   - Structured: Analyzer.Process scans a tokenizer.Stream, embeds every
//     recognized span as a composite token, and canonicalizes referents
//     through a per-document Registry.
//   - Convenience: Extract returns []Entity with byte offsets satisfying
//     s[e.Start:e.End] == e.Text; Values returns the values of one scheme.
//
// Recognition is driven by a keyword dictionary. Each keyword belongs to a
// Family, and the family's Recognizer reads the value that follows it.
// Without a keyword, an "@" starts an e-mail, "NN:NN:..." a cadastral
// number, "ABC/DEF/GHI" a mail-system address, and a Latin word or number
// a bare domain name.
//
// The Registry treats referents with equal values (ignoring case) as one,
// whatever their schemes.
//
// An Analyzer is safe for concurrent use; a Registry and a Stream are not.
// Extract and Values are safe for concurrent use.
//
// Known limitations:
//
//   - Check digits (ИНН, СНИЛС, ISBN, IBAN) are not verified here; package
//     validate checks them on the extracted entities.
//   - Bare domain names are recognized only for a fixed list of top-level
//     domains.
package uri

import (
	"fmt"
	"strings"

	"github.com/golang/glog"

	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Entity is a recognized identifier with its position in the source text.
type Entity struct {
	Scheme string `json:"scheme" yaml:"scheme"`                     // e.g. "http", "ИНН", "mailto"
	Value  string `json:"value" yaml:"value"`                       // normalized value
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"` // text of a trailing parenthetical
	ID     string `json:"id" yaml:"id"`                             // canonical referent ID, shared by duplicates
	Text   string `json:"text" yaml:"text"`                         // the matched text
	Start  int    `json:"start" yaml:"start"`                       // byte offset in the original string (inclusive)
	End    int    `json:"end" yaml:"end"`                           // byte offset in the original string (exclusive)
}

// String returns a debug representation, e.g. ИНН("7701234567")[4:14].
func (e Entity) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", e.Scheme, e.Value, e.Start, e.End)
}

// maxInputBytes is the default maximum input length Extract will process.
// Inputs exceeding it are returned with no results.
const maxInputBytes = 1 << 20 // 1 MiB

// defaultAnalyzer serves Extract and Values; built once at init.
var defaultAnalyzer *Analyzer

func init() {
	a, err := NewAnalyzer()
	if err != nil {
		glog.Errorf("uri: default analyzer: %v", err)
		return
	}
	defaultAnalyzer = a
}

// Default returns the analyzer built from the embedded keyword lists, or
// nil if it could not be built.
func Default() *Analyzer { return defaultAnalyzer }

// Extract returns every identifier recognized in s, in text order.
func Extract(s string) []Entity {
	if defaultAnalyzer == nil {
		return nil
	}
	return defaultAnalyzer.Extract(s)
}

// Extract returns every identifier a recognizes in s, in text order.
// Inputs larger than the analyzer's limit (1 MiB by default) yield nil.
func (a *Analyzer) Extract(s string) []Entity {
	if s == "" || len(s) > a.maxInput {
		return nil
	}
	st := tokenizer.Tokenize(s)
	spans := a.Process(st, NewRegistry())
	if len(spans) == 0 {
		return nil
	}
	out := make([]Entity, 0, len(spans))
	for _, ct := range spans {
		r, ok := ct.Referent.(*Referent)
		if !ok {
			continue
		}
		out = append(out, Entity{
			Scheme: r.Scheme,
			Value:  r.Value,
			Detail: r.Detail,
			ID:     r.ID.String(),
			Text:   s[ct.Start:ct.End],
			Start:  ct.Start,
			End:    ct.End,
		})
	}
	return out
}

// Values returns the values of the entities of the given scheme found in
// s. The scheme is compared ignoring case; duplicates are kept.
func Values(s, scheme string) []string {
	var out []string
	for _, e := range Extract(s) {
		if strings.EqualFold(e.Scheme, scheme) {
			out = append(out, e.Value)
		}
	}
	return out
}
