package rdf

import "sort"

// Graph is an immutable set of triples with subject and predicate indexes.
// All query methods are safe for unlimited concurrent use.
type Graph struct {
	triples     []Triple
	bySubject   map[string][]int
	byPredicate map[string][]int
}

// Builder accumulates triples and produces an immutable Graph.
// Duplicate triples are collapsed; insertion order is otherwise preserved.
type Builder struct {
	triples []Triple
	seen    map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// Add appends a triple unless an identical one is already present.
func (b *Builder) Add(t Triple) {
	k := t.key()
	if _, ok := b.seen[k]; ok {
		return
	}
	b.seen[k] = struct{}{}
	b.triples = append(b.triples, t)
}

// AddAll appends every triple in order.
func (b *Builder) AddAll(ts []Triple) {
	for _, t := range ts {
		b.Add(t)
	}
}

// Len returns the number of distinct triples accumulated so far.
func (b *Builder) Len() int { return len(b.triples) }

// Graph builds the immutable graph. The builder may be reused afterwards;
// the returned graph holds its own copy of the triples.
func (b *Builder) Graph() *Graph {
	g := &Graph{
		triples:     make([]Triple, len(b.triples)),
		bySubject:   make(map[string][]int),
		byPredicate: make(map[string][]int),
	}
	copy(g.triples, b.triples)
	for i, t := range g.triples {
		sk := t.Subject.key()
		g.bySubject[sk] = append(g.bySubject[sk], i)
		g.byPredicate[t.Predicate] = append(g.byPredicate[t.Predicate], i)
	}
	return g
}

// NewGraph builds a graph directly from a triple slice.
func NewGraph(ts []Triple) *Graph {
	b := NewBuilder()
	b.AddAll(ts)
	return b.Graph()
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns a copy of all triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// SubjectTriples returns all triples with the given subject, in insertion
// order. It returns ErrNotFound when the term never appears as a subject.
func (g *Graph) SubjectTriples(s Term) ([]Triple, error) {
	idx, ok := g.bySubject[s.key()]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]Triple, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.triples[i])
	}
	return out, nil
}

// HasSubject reports whether the term appears in subject position.
func (g *Graph) HasSubject(s Term) bool {
	_, ok := g.bySubject[s.key()]
	return ok
}

// Has reports whether the exact triple is present.
func (g *Graph) Has(t Triple) bool {
	for _, i := range g.bySubject[t.Subject.key()] {
		if g.triples[i].key() == t.key() {
			return true
		}
	}
	return false
}

// Objects returns every object of triples matching (s, p), in insertion
// order. The result is empty when no triple matches.
func (g *Graph) Objects(s Term, p string) []Term {
	var out []Term
	for _, i := range g.bySubject[s.key()] {
		if g.triples[i].Predicate == p {
			out = append(out, g.triples[i].Object)
		}
	}
	return out
}

// Object returns the first object of (s, p), if any.
func (g *Graph) Object(s Term, p string) (Term, bool) {
	for _, i := range g.bySubject[s.key()] {
		if g.triples[i].Predicate == p {
			return g.triples[i].Object, true
		}
	}
	return Term{}, false
}

// Subjects returns the distinct subjects of triples with predicate p and,
// when o is non-nil, object equal to *o. Results are sorted by term key so
// repeated queries return identical slices.
func (g *Graph) Subjects(p string, o *Term) []Term {
	seen := make(map[string]Term)
	for _, i := range g.byPredicate[p] {
		t := g.triples[i]
		if o != nil && t.Object.key() != o.key() {
			continue
		}
		seen[t.Subject.key()] = t.Subject
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Term, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}

// PredicateTriples returns all triples with the given predicate.
func (g *Graph) PredicateTriples(p string) []Triple {
	idx := g.byPredicate[p]
	out := make([]Triple, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.triples[i])
	}
	return out
}
