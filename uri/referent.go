package uri

import (
	"github.com/google/uuid"
)

// Referent is a recognized identifier: a scheme and a normalized value.
// Detail holds free text taken from a trailing parenthetical, if any.
//
// ID is assigned by Registry.Register and is stable for a given value.
type Referent struct {
	ID     uuid.UUID `json:"id" yaml:"id"`
	Scheme string    `json:"scheme" yaml:"scheme"`
	Value  string    `json:"value" yaml:"value"`
	Detail string    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// String returns "scheme:value".
func (r *Referent) String() string {
	if r == nil {
		return "<nil>"
	}
	return r.Scheme + ":" + r.Value
}

func newReferent(scheme, value string) *Referent {
	return &Referent{Scheme: scheme, Value: value}
}
