package uri

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Family groups the scheme keywords that share one recognition grammar.
type Family int

const (
	Generic    Family = iota // registered URI schemes: "mailto:", "tel:", "urn:"
	Web                      // http, https, ftp, www; bare domain names
	Code                     // ISBN, ISO, RFC, ГОСТ, ТУ, УДК, ББК, ТНВЭД, ОКВЭД...
	Messenger                // Skype, Swift, ICQ
	Identifier               // ИНН, КПП, ОГРН, БИК, СНИЛС, accounts, IBAN
	Cadastre                 // cadastral numbers
	Email                    // local@domain around a bare "@"
	Lotus                    // NAME/UNIT/ORG mail-system addresses
)

// numFamilies is the number of defined families.
const numFamilies = int(Lotus) + 1

var familyNames = [...]string{
	Generic:    "generic",
	Web:        "web",
	Code:       "code",
	Messenger:  "messenger",
	Identifier: "identifier",
	Cadastre:   "cadastre",
	Email:      "email",
	Lotus:      "lotus",
}

// String returns the name of the family.
func (f Family) String() string {
	if int(f) >= 0 && int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// MarshalJSON encodes the family as a JSON string (e.g. "web").
func (f Family) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "web") into a Family.
func (f *Family) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFamily returns the family with the given name, ignoring case.
func ParseFamily(name string) (Family, error) {
	for i, n := range familyNames {
		if strings.EqualFold(n, name) {
			return Family(i), nil
		}
	}
	const maxErrLen = 50
	if len(name) > maxErrLen {
		name = name[:maxErrLen] + "..."
	}
	return 0, fmt.Errorf("uri: unknown family %q", name)
}

// Families returns every family in declaration order.
func Families() []Family {
	out := make([]Family, numFamilies)
	for i := range out {
		out[i] = Family(i)
	}
	return out
}

// Match is one recognized referent and the tokens it spans.
type Match struct {
	Begin    *tokenizer.Token
	End      *tokenizer.Token
	Referent *Referent
}

// Recognizer reads the entities of one family.
//
// kw is the keyword match that selected the family. It is nil when the
// recognizer runs as a keyword-less heuristic at token t; otherwise t is
// kw.Begin. Recognize returns the matches in text order, or nil when
// nothing was recognized. It must not modify the stream.
type Recognizer interface {
	Recognize(t *tokenizer.Token, kw *termin.Match) []Match
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(t *tokenizer.Token, kw *termin.Match) []Match

// Recognize calls f(t, kw).
func (f RecognizerFunc) Recognize(t *tokenizer.Token, kw *termin.Match) []Match {
	return f(t, kw)
}
