package uri

import (
	"testing"

	"github.com/google/uuid"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	a := reg.Register(newReferent("mailto", "Ivan@Mail.ru"))
	if a.ID == uuid.Nil {
		t.Fatal("registered referent has no ID")
	}

	// Equal values ignoring case resolve to the first referent; the
	// candidate's scheme and detail are discarded.
	cand := &Referent{Scheme: "http", Value: "ivan@mail.ru", Detail: "lost"}
	if got := reg.Register(cand); got != a {
		t.Errorf("Register(dup) = %v, want %v", got, a)
	}
	if a.Scheme != "mailto" || a.Detail != "" {
		t.Errorf("canonical referent changed: %+v", a)
	}

	b := reg.Register(newReferent("ИНН", "7701234567"))
	if b == a || b.ID == a.ID {
		t.Error("distinct values share a referent")
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if got := reg.Referents(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Referents() = %v", got)
	}
	if reg.Lookup("IVAN@MAIL.RU") != a || reg.Lookup("nobody") != nil {
		t.Error("Lookup mismatch")
	}
}

func TestRegisterStableIDs(t *testing.T) {
	t.Parallel()

	// IDs depend on the value only, so two documents agree on them.
	x := NewRegistry().Register(newReferent("ИНН", "7701234567"))
	y := NewRegistry().Register(newReferent("ОКПО", "7701234567"))
	if x.ID != y.ID {
		t.Errorf("IDs differ across registries: %s vs %s", x.ID, y.ID)
	}
	want := uuid.NewSHA1(uuid.NameSpaceURL, []byte("7701234567"))
	if x.ID != want {
		t.Errorf("ID = %s, want %s", x.ID, want)
	}
}

func TestReferentString(t *testing.T) {
	t.Parallel()

	if got := newReferent("КАДАСТР", "77:01:0001001:1234").String(); got != "КАДАСТР:77:01:0001001:1234" {
		t.Errorf("String() = %q", got)
	}
	var r *Referent
	if got := r.String(); got != "<nil>" {
		t.Errorf("nil String() = %q", got)
	}
}
