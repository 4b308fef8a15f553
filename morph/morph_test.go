package morph

import "testing"

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		word         string
		wantPrep     bool
		wantConj     bool
		wantGenitive bool
	}{
		{"preposition lower", "в", true, false, false},
		{"preposition upper", "ДЛЯ", true, false, false},
		{"conjunction", "или", false, true, false},
		{"feminine genitive", "организации", false, false, true},
		{"agent noun genitive", "получателя", false, false, true},
		{"masculine genitive", "банка", false, false, true},
		{"adjective genitive", "юридического", false, false, true},
		{"plural genitive", "платежей", false, false, true},
		{"yo folded", "счёта", false, false, true},
		{"nominative noun", "номер", false, false, false},
		{"instrumental", "счетом", false, false, false},
		{"latin word", "bank", false, false, false},
		{"short word", "она", false, false, false},
		{"empty", "", false, false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Analyze(tt.word)
			if got.IsPreposition() != tt.wantPrep {
				t.Errorf("Analyze(%q).IsPreposition() = %v, want %v", tt.word, got.IsPreposition(), tt.wantPrep)
			}
			if got.IsConjunction() != tt.wantConj {
				t.Errorf("Analyze(%q).IsConjunction() = %v, want %v", tt.word, got.IsConjunction(), tt.wantConj)
			}
			if got.IsGenitive() != tt.wantGenitive {
				t.Errorf("Analyze(%q).IsGenitive() = %v (%s), want %v", tt.word, got.IsGenitive(), got, tt.wantGenitive)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	got := Info{POS: Noun | Adjective, Case: Genitive | Accusative}.String()
	if got != "{noun|adj gen|acc}" {
		t.Errorf("String() = %q", got)
	}
	if got := (Info{}).String(); got != "{ }" {
		t.Errorf("zero String() = %q", got)
	}
}

type stubTagger struct{ info Info }

func (s stubTagger) Analyze(string) Info { return s.info }

func TestTaggerInterface(t *testing.T) {
	var tg Tagger = stubTagger{Info{POS: Preposition}}
	if !tg.Analyze("anything").IsPreposition() {
		t.Error("stub tagger not used")
	}
}
