package termin

import (
	"testing"

	"github.com/open-condo-software/condo-sub035/tokenizer"
)

func testCollection() *Collection {
	c := NewCollection()
	c.Add(New("ИНН", LangRu, 4))
	c.Add(New("ИНН/КПП", LangRu, 9))
	c.Add(New("КАДАСТР", LangRu, 5, "КАДАСТРОВ* НОМЕР*", "КАД. №"))
	c.Add(New("E-MAIL", LangEn, 7, "EMAIL", "ЭЛ. ПОЧТА"))
	c.Add(New("ИНН", LangRu, 1))
	return c
}

func TestTryMatch(t *testing.T) {
	t.Parallel()

	c := testCollection()
	tests := []struct {
		name      string
		input     string
		wantCanon string
		wantTag   int
		wantText  string
	}{
		{"single word", "ИНН 7707083893", "ИНН", 4, "ИНН"},
		{"case insensitive", "инн: 7707083893", "ИНН", 4, "инн"},
		{"longest wins", "ИНН/КПП 1/2", "ИНН/КПП", 9, "ИНН/КПП"},
		{"prefix pattern", "кадастровым номером 77", "КАДАСТР", 5, "кадастровым номером"},
		{"dotted abbreviation", "Кад. № 77", "КАДАСТР", 5, "Кад. №"},
		{"hyphenated", "e-mail: a@b.ru", "E-MAIL", 7, "e-mail"},
		{"spaced hyphen", "E - MAIL", "E-MAIL", 7, "E - MAIL"},
		{"multiword", "эл. почта", "E-MAIL", 7, "эл. почта"},
		{"no match", "почта", "", 0, ""},
		{"prefix needs both words", "кадастровый", "", 0, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st := tokenizer.Tokenize(tt.input)
			m := c.TryMatch(st.First)
			if tt.wantCanon == "" {
				if m != nil {
					t.Fatalf("TryMatch(%q) = %v, want nil", tt.input, m.Termin)
				}
				return
			}
			if m == nil {
				t.Fatalf("TryMatch(%q) = nil, want %s", tt.input, tt.wantCanon)
			}
			if m.Termin.Canonical != tt.wantCanon || m.Termin.Tag != tt.wantTag {
				t.Errorf("termin = %s/%d, want %s/%d", m.Termin.Canonical, m.Termin.Tag, tt.wantCanon, tt.wantTag)
			}
			if got := st.Source[m.Begin.Start:m.End.End]; got != tt.wantText {
				t.Errorf("span = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestTryMatchStopsAtNewline(t *testing.T) {
	t.Parallel()

	c := testCollection()
	if m := c.TryMatch(tokenizer.Tokenize("кадастровый\nномер").First); m != nil {
		t.Errorf("matched across newline: %v", m.Termin)
	}
}

func TestTryMatchSkipsComposite(t *testing.T) {
	t.Parallel()

	c := testCollection()
	st := tokenizer.Tokenize("ИНН")
	ct, err := st.Embed(st.First, st.First, stub("x"))
	if err != nil {
		t.Fatal(err)
	}
	if m := c.TryMatch(ct); m != nil {
		t.Errorf("matched a composite token: %v", m.Termin)
	}
	if m := c.TryMatch(nil); m != nil {
		t.Error("matched nil")
	}
}

func TestMatchLen(t *testing.T) {
	t.Parallel()

	c := testCollection()
	m := c.TryMatch(tokenizer.Tokenize("кадастровый номер").First)
	if m == nil || m.Len() != 2 {
		t.Fatalf("Len = %v", m)
	}
}

func TestCollectionLookup(t *testing.T) {
	t.Parallel()

	c := testCollection()
	if c.Len() != 5 || len(c.Termins()) != 5 {
		t.Errorf("Len = %d", c.Len())
	}
	if got := c.Find("ИНН"); got == nil || got.Tag != 4 {
		t.Errorf("Find(ИНН) = %v, want the first entry", got)
	}
	if c.Find("ОГРН") != nil {
		t.Error("Find(ОГРН) != nil")
	}
	if LangRu.String() != "ru" || Lang(9).String() != "Lang(9)" {
		t.Error("Lang.String mismatch")
	}
}

type stub string

func (s stub) String() string { return string(s) }
