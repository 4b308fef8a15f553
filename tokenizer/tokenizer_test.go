package tokenizer

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// verifyInvariants checks the byte offset invariant s[t.Start:t.End] == t.Text
// and the link consistency of the stream.
func verifyInvariants(t *testing.T, st *Stream) {
	t.Helper()
	var prev *Token
	for tok := st.First; tok != nil; tok = tok.Next {
		if got := st.Source[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("offset invariant broken: s[%d:%d]=%q, Text=%q", tok.Start, tok.End, got, tok.Text)
		}
		if tok.Prev != prev {
			t.Errorf("%s: Prev = %s, want %s", tok, tok.Prev, prev)
		}
		prev = tok
	}
	if st.Last != prev {
		t.Errorf("Last = %s, want %s", st.Last, prev)
	}
}

func texts(st *Stream) []string {
	var out []string
	for tok := st.First; tok != nil; tok = tok.Next {
		out = append(out, tok.Text)
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only spaces", "   \n\t", nil},
		{"words", "ИНН организации", []string{"ИНН", "организации"}},
		{"digits split from letters", "ABC123def", []string{"ABC", "123", "def"}},
		{"punctuation is one rune each", "http://", []string{"http", ":", "/", "/"}},
		{"cadastral groups", "77:01:0001001:1234", []string{"77", ":", "01", ":", "0001001", ":", "1234"}},
		{"email", "ivan@example.com", []string{"ivan", "@", "example", ".", "com"}},
		{"hyphenated", "e-mail", []string{"e", "-", "mail"}},
		{"table control", "ИНН\u0007123", []string{"ИНН", "\u0007", "123"}},
		{"invalid utf8", "a\xffb", []string{"a", "\xff", "b"}},
		{"number sign", "№5", []string{"№", "5"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st := Tokenize(tt.input)
			verifyInvariants(t, st)
			got := texts(st)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWhitespaceCounts(t *testing.T) {
	t.Parallel()

	st := Tokenize("  ИНН:  123\n\nКПП")
	toks := st.Tokens()
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4", len(toks))
	}
	inn, colon, num, kpp := toks[0], toks[1], toks[2], toks[3]

	if inn.WhitespacesBefore != 2 || inn.NewlineBefore {
		t.Errorf("ИНН before = %d/%v", inn.WhitespacesBefore, inn.NewlineBefore)
	}
	if inn.WhitespacesAfter != 0 || !inn.Adjacent() {
		t.Errorf("ИНН after = %d", inn.WhitespacesAfter)
	}
	if colon.WhitespacesAfter != 2 || num.WhitespacesBefore != 2 {
		t.Errorf("colon after = %d, num before = %d", colon.WhitespacesAfter, num.WhitespacesBefore)
	}
	if !num.NewlineAfter || !kpp.NewlineBefore || kpp.WhitespacesBefore != 2 {
		t.Errorf("newline flags: num.after=%v kpp.before=%v kpp.ws=%d", num.NewlineAfter, kpp.NewlineBefore, kpp.WhitespacesBefore)
	}
	if kpp.WhitespacesAfter != 0 || kpp.NewlineAfter {
		t.Errorf("last token after = %d/%v", kpp.WhitespacesAfter, kpp.NewlineAfter)
	}
}

func TestNumberTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantKind  Kind
		wantSpell Spelling
		wantValue string
		wantInt   int64
		wantIntOK bool
	}{
		{"digits", "12345", Number, Digits, "12345", 12345, true},
		{"leading zeros kept", "0001001", Number, Digits, "0001001", 1001, true},
		{"too long for int64", "40702810100000001234", Number, Digits, "40702810100000001234", 0, false},
		{"spelled out", "пять", Number, Words, "5", 5, true},
		{"spelled out capitalized", "Двадцать", Number, Words, "20", 20, true},
		{"upper abbreviation stays text", "СТО", Text, Digits, "", 0, false},
		{"plain word", "номер", Text, Digits, "", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tok := Tokenize(tt.input).First
			if tok == nil {
				t.Fatal("no token")
			}
			if tok.Kind != tt.wantKind || tok.Spelling != tt.wantSpell || tok.Value != tt.wantValue {
				t.Errorf("got %s %s %q, want %s %s %q", tok.Kind, tok.Spelling, tok.Value, tt.wantKind, tt.wantSpell, tt.wantValue)
			}
			if tok.Int != tt.wantInt || tok.IntOK != tt.wantIntOK {
				t.Errorf("Int = %d/%v, want %d/%v", tok.Int, tok.IntOK, tt.wantInt, tt.wantIntOK)
			}
			if tok.Kind == Number && tok.Spelling == Digits && !tok.IsDigits() {
				t.Error("IsDigits() = false")
			}
		})
	}
}

func TestCharInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		has   CharInfo
		not   CharInfo
	}{
		{"ИНН", Letter | Cyrillic | AllUpper, Latin | AllLower | Capitalized},
		{"организации", Letter | Cyrillic | AllLower, Latin | AllUpper},
		{"Skype", Letter | Latin | Capitalized, Cyrillic | AllUpper | AllLower},
		{"WWW", Letter | Latin | AllUpper, Cyrillic},
		{"ABCабв", Letter, Cyrillic | Latin | AllUpper | AllLower},
		{"123", Digit, Letter},
		{":", 0, Letter | Digit},
		{"\u001e", TableControl, Letter},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			tok := Tokenize(tt.input).First
			if !tok.Chars.Has(tt.has) {
				t.Errorf("%q flags %b missing %b", tt.input, tok.Chars, tt.has)
			}
			if tok.Chars&tt.not != 0 {
				t.Errorf("%q flags %b unexpectedly have %b", tt.input, tok.Chars, tok.Chars&tt.not)
			}
		})
	}
}

func TestTermFolding(t *testing.T) {
	t.Parallel()

	tok := Tokenize("счёт").First
	if tok.Term != "СЧЕТ" {
		t.Errorf("Term = %q, want %q", tok.Term, "СЧЕТ")
	}
	if !tok.IsTerm("СЧЕТ") || !tok.HasTermPrefix("СЧ") {
		t.Error("IsTerm/HasTermPrefix mismatch")
	}
	if !tok.Morph.IsGenitive() && tok.Morph.POS == 0 {
		t.Errorf("morph not assigned: %s", tok.Morph)
	}
}

func TestTokenPredicates(t *testing.T) {
	t.Parallel()

	toks := Tokenize("a - b : \u0007").Tokens()
	if !toks[1].IsHyphen() || toks[0].IsHyphen() {
		t.Error("IsHyphen mismatch")
	}
	if !toks[3].IsChar(':') || !toks[3].IsCharOf(":|") || toks[2].IsCharOf("b") {
		t.Error("IsChar/IsCharOf mismatch")
	}
	if !toks[4].IsTableControl() {
		t.Error("IsTableControl = false")
	}
	var nilTok *Token
	if nilTok.IsChar(':') || nilTok.IsHyphen() || nilTok.Adjacent() || nilTok.String() != "<nil>" {
		t.Error("nil token predicates must be false")
	}
}

type stubRef string

func (r stubRef) String() string { return string(r) }

func TestEmbed(t *testing.T) {
	t.Parallel()

	st := Tokenize("ИНН 1234567890 КПП")
	toks := st.Tokens()
	ct, err := st.Embed(toks[0], toks[1], stubRef("ИНН:1234567890"))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if ct.Kind != Composite || ct.Text != "ИНН 1234567890" || ct.Start != 0 {
		t.Errorf("composite = %s", ct)
	}
	if st.First != ct || ct.Next != toks[2] || toks[2].Prev != ct {
		t.Error("composite not spliced")
	}
	if ct.Begin != toks[0] || ct.Last != toks[1] || toks[0].Prev != nil || toks[1].Next != nil {
		t.Error("wrapped range not detached")
	}
	if ct.WhitespacesAfter != 1 {
		t.Errorf("WhitespacesAfter = %d", ct.WhitespacesAfter)
	}
	if st.Len() != 2 || len(st.Composites()) != 1 {
		t.Errorf("Len = %d, composites = %d", st.Len(), len(st.Composites()))
	}
	if !st.Contains(ct) || st.Contains(toks[0]) || toks[1].Parent != ct {
		t.Error("wrapped tokens still reported as top level")
	}
	if _, err := st.Embed(toks[0], toks[1], stubRef("again")); errors.Cause(err) != ErrBadRange {
		t.Errorf("embedding wrapped tokens: err = %v", err)
	}
	verifyInvariants(t, st)
}

func TestEmbedBadRange(t *testing.T) {
	t.Parallel()

	st := Tokenize("a b c")
	toks := st.Tokens()
	other := Tokenize("x").First

	tests := []struct {
		name       string
		begin, end *Token
	}{
		{"nil begin", nil, toks[0]},
		{"reversed", toks[2], toks[0]},
		{"foreign token", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Embed(tt.begin, tt.end, stubRef("x"))
			if errors.Cause(err) != ErrBadRange {
				t.Errorf("err = %v, want ErrBadRange", err)
			}
		})
	}
	if st.Len() != 3 {
		t.Errorf("stream mutated on error: %q", texts(st))
	}
}

func TestWiden(t *testing.T) {
	t.Parallel()

	st := Tokenize("код ( ОКПО 12345 ) далее")
	toks := st.Tokens()
	ct, err := st.Embed(toks[2], toks[3], stubRef("ОКПО:12345"))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if err := st.Widen(ct, toks[0], toks[4]); err != nil {
		t.Fatalf("Widen: %v", err)
	}
	if ct.Text != "код ( ОКПО 12345 )" {
		t.Errorf("Text = %q", ct.Text)
	}
	if st.First != ct || ct.Next != toks[5] || toks[5].Prev != ct {
		t.Error("widened composite not spliced")
	}
	var inner []string
	for x := ct.Begin; x != nil; x = x.Next {
		inner = append(inner, x.Text)
	}
	if strings.Join(inner, " ") != "код ( ОКПО 12345 )" {
		t.Errorf("inner chain = %q", inner)
	}
	if toks[0].Parent != ct || toks[4].Parent != ct || st.Contains(toks[4]) {
		t.Error("absorbed tokens not marked as wrapped")
	}
	verifyInvariants(t, st)

	if err := st.Widen(ct, toks[5], nil); errors.Cause(err) != ErrBadRange {
		t.Errorf("widening left to a following token: err = %v", err)
	}
	if err := st.Widen(toks[5], nil, nil); errors.Cause(err) != ErrBadRange {
		t.Errorf("widening a plain token: err = %v", err)
	}
}
