package enrich

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/ncit"
	"github.com/uthealth/hpvco/vocabulary/obo"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

// Migrate rewrites legacy seeAlso/comment annotations into definition and
// synonym axioms with NCIT cross-references. It returns the migrated graph
// and the number of classes rewritten. Classes without both a synonym and
// a definition comment are left untouched.
func Migrate(g *rdf.Graph) (*rdf.Graph, int) {
	m := &migration{
		g:       g,
		removed: make(map[rdf.Triple]bool),
	}

	migrated := 0
	for _, cls := range g.Subjects(w3c.RDFSSeeAlso, nil) {
		if m.migrateClass(cls) {
			migrated++
		}
	}

	b := rdf.NewBuilder()
	for _, t := range g.Triples() {
		if !m.removed[t] {
			b.Add(t)
		}
	}
	b.AddAll(m.added)
	return b.Graph(), migrated
}

type migration struct {
	g       *rdf.Graph
	removed map[rdf.Triple]bool
	added   []rdf.Triple
	axiomN  int
}

// migrateClass rewrites a single class; reports whether it changed.
func (m *migration) migrateClass(cls rdf.Term) bool {
	xref, seeAlsoObj, ok := m.ncitXref(cls)
	if !ok {
		return false
	}

	var comments []rdf.Term
	for _, obj := range m.g.Objects(cls, w3c.RDFSComment) {
		if obj.IsLiteral() {
			comments = append(comments, obj)
		}
	}
	// Both the synonym and the definition comment must be present.
	if len(comments) < 2 {
		return false
	}

	// The definition is reliably the longer of the two texts.
	sort.SliceStable(comments, func(i, j int) bool {
		if len(comments[i].Value) != len(comments[j].Value) {
			return len(comments[i].Value) < len(comments[j].Value)
		}
		return comments[i].Value < comments[j].Value
	})
	synonym := comments[0]
	definition := comments[len(comments)-1]

	m.graft(cls, obo.IAODefinition, definition, xref)
	m.graft(cls, obo.HasSynonym, synonym, xref)

	m.removed[rdf.Triple{Subject: cls, Predicate: w3c.RDFSComment, Object: synonym}] = true
	m.removed[rdf.Triple{Subject: cls, Predicate: w3c.RDFSComment, Object: definition}] = true
	m.removed[rdf.Triple{Subject: cls, Predicate: w3c.RDFSSeeAlso, Object: seeAlsoObj}] = true
	return true
}

// ncitXref extracts the NCIT code from the first rdfs:seeAlso literal.
func (m *migration) ncitXref(cls rdf.Term) (code string, seeAlsoObj rdf.Term, ok bool) {
	for _, obj := range m.g.Objects(cls, w3c.RDFSSeeAlso) {
		if !obj.IsLiteral() {
			continue
		}
		if c := ncit.Normalize(obj.Value); c != "" {
			return c, obj, true
		}
		// Legacy releases carried bare identifiers; keep them prefixed
		// rather than dropping the reference.
		raw := strings.TrimSpace(obj.Value)
		if raw == "" {
			continue
		}
		if !strings.HasPrefix(raw, ncit.Prefix) {
			raw = ncit.Prefix + raw
		}
		return raw, obj, true
	}
	return "", rdf.Term{}, false
}

// graft asserts (cls, prop, target) and the reified owl:Axiom annotating it
// with the NCIT cross-reference.
func (m *migration) graft(cls rdf.Term, prop string, target rdf.Term, xref string) {
	ax := m.freshAxiomNode()
	m.added = append(m.added,
		rdf.Triple{Subject: cls, Predicate: prop, Object: target},
		rdf.Triple{Subject: ax, Predicate: w3c.RDFType, Object: rdf.IRI(w3c.OWLAxiom)},
		rdf.Triple{Subject: ax, Predicate: w3c.OWLAnnotatedSource, Object: cls},
		rdf.Triple{Subject: ax, Predicate: w3c.OWLAnnotatedProperty, Object: rdf.IRI(prop)},
		rdf.Triple{Subject: ax, Predicate: w3c.OWLAnnotatedTarget, Object: target},
		rdf.Triple{Subject: ax, Predicate: obo.HasDbXref, Object: rdf.Literal(xref)},
	)
}

// freshAxiomNode returns a blank node label unused in the source graph.
func (m *migration) freshAxiomNode() rdf.Term {
	for {
		m.axiomN++
		t := rdf.Blank(fmt.Sprintf("axiom%d", m.axiomN))
		if !m.g.HasSubject(t) {
			return t
		}
	}
}
