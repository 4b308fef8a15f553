package uri

import (
	"strings"

	"github.com/google/uuid"
)

// Registry keeps the canonical referents of one document.
//
// Two referents are the same iff their values are equal ignoring case. The
// scheme takes no part in the comparison, so a later candidate with a
// colliding value resolves to the earlier referent even when its scheme or
// detail differ.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	byValue map[string]*Referent
	order   []*Referent
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byValue: make(map[string]*Referent)}
}

// Register returns the canonical referent for r. If a referent with an equal
// value exists it is returned and r is discarded; otherwise r gets its ID,
// is stored and returned.
func (g *Registry) Register(r *Referent) *Referent {
	key := strings.ToLower(r.Value)
	if have, ok := g.byValue[key]; ok {
		return have
	}
	r.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(key))
	g.byValue[key] = r
	g.order = append(g.order, r)
	return r
}

// Lookup returns the canonical referent with the given value, or nil.
func (g *Registry) Lookup(value string) *Referent {
	return g.byValue[strings.ToLower(value)]
}

// Referents returns the canonical referents in registration order.
func (g *Registry) Referents() []*Referent {
	return g.order
}

// Len returns the number of canonical referents.
func (g *Registry) Len() int {
	return len(g.order)
}
