package termin

import (
	"strings"

	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Collection is a token-level trie of termin variants.
type Collection struct {
	root    *node
	termins []*Termin
	byName  map[string]*Termin
}

type node struct {
	exact   map[string]*node
	prefix  []prefixEdge
	termins []*Termin
}

type prefixEdge struct {
	term string
	next *node
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{root: &node{}, byName: make(map[string]*Termin)}
}

// Add compiles t's variants into the collection. When two entries share a
// variant, the one added first wins.
func (c *Collection) Add(t *Termin) {
	c.termins = append(c.termins, t)
	if _, ok := c.byName[t.Canonical]; !ok {
		c.byName[t.Canonical] = t
	}
	for _, v := range t.Variants {
		pats := compile(v)
		if len(pats) == 0 {
			continue
		}
		n := c.root
		for _, p := range pats {
			n = n.child(p)
		}
		n.termins = append(n.termins, t)
	}
}

func (n *node) child(p pattern) *node {
	if p.prefix {
		for _, e := range n.prefix {
			if e.term == p.term {
				return e.next
			}
		}
		next := &node{}
		n.prefix = append(n.prefix, prefixEdge{term: p.term, next: next})
		return next
	}
	if n.exact == nil {
		n.exact = make(map[string]*node)
	}
	next, ok := n.exact[p.term]
	if !ok {
		next = &node{}
		n.exact[p.term] = next
	}
	return next
}

// Len returns the number of termins.
func (c *Collection) Len() int { return len(c.termins) }

// Termins returns the termins in insertion order.
func (c *Collection) Termins() []*Termin { return c.termins }

// Find returns the first termin with the given canonical text, or nil.
func (c *Collection) Find(canonical string) *Termin { return c.byName[canonical] }

// TryMatch returns the longest match starting at t, or nil.
func (c *Collection) TryMatch(t *tokenizer.Token) *Match {
	if t == nil || c == nil {
		return nil
	}
	var best *Match
	bestLen := 0
	var walk func(n *node, tok *tokenizer.Token, depth int)
	walk = func(n *node, tok *tokenizer.Token, depth int) {
		if tok == nil || tok.Kind == tokenizer.Composite {
			return
		}
		if depth > 0 && tok.NewlineBefore {
			return
		}
		var nexts []*node
		if next, ok := n.exact[tok.Term]; ok {
			nexts = append(nexts, next)
		}
		if tok.IsLetters() {
			for _, e := range n.prefix {
				if strings.HasPrefix(tok.Term, e.term) {
					nexts = append(nexts, e.next)
				}
			}
		}
		for _, next := range nexts {
			if len(next.termins) > 0 && depth+1 > bestLen {
				best = &Match{Begin: t, End: tok, Termin: next.termins[0]}
				bestLen = depth + 1
			}
			walk(next, tok.Next, depth+1)
		}
	}
	walk(c.root, t, 0)
	return best
}
