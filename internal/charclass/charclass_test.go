package charclass

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"лицевой счёт", "ЛИЦЕВОЙ СЧЕТ"},
		{"ЛИЦЕВОЙ СЧЁТ", "ЛИЦЕВОЙ СЧЕТ"},
		{"E-mail", "E-MAIL"},
		{"", ""},
		// "е" followed by a combining diaeresis composes to "ё" first.
		{"сче\u0308т", "СЧЕТ"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(rune) bool
		yes  string
		no   string
	}{
		{"IsCyrillic", IsCyrillic, "аЯёЁ", "aZ1-"},
		{"IsLatin", IsLatin, "aZéß", "яЯ1_"},
		{"IsHyphen", IsHyphen, "-\u2013\u2014\u2212\u00AD", "_~=a"},
		{"IsNewline", IsNewline, "\n\r\u2028\u0085", " \t\u0007a"},
		{"IsSpace", IsSpace, " \t\n\u00A0\u200B\uFEFF", "\u0007\u001E\u001Fa"},
		{"IsTableControl", IsTableControl, "\u0007\u001E\u001F", " \t|a"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, r := range tt.yes {
				if !tt.fn(r) {
					t.Errorf("%s(%U) = false", tt.name, r)
				}
			}
			for _, r := range tt.no {
				if tt.fn(r) {
					t.Errorf("%s(%U) = true", tt.name, r)
				}
			}
		})
	}
}

func TestUpper(t *testing.T) {
	t.Parallel()

	for r, want := range map[rune]rune{'ё': 'Е', 'Ё': 'Е', 'ж': 'Ж', 'q': 'Q', '7': '7'} {
		if got := Upper(r); got != want {
			t.Errorf("Upper(%q) = %q, want %q", r, got, want)
		}
	}
}
