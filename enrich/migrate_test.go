package enrich

import (
	"testing"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/obo"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

const ns = "https://purl.org/uth/ontology/hpvco#"

// legacyClass builds a class carrying the legacy annotation convention:
// the NCIT code in rdfs:seeAlso and synonym plus definition packed into
// two rdfs:comment literals.
func legacyClass(b *rdf.Builder, iri, code, synonym, definition string) rdf.Term {
	cls := rdf.IRI(iri)
	b.Add(rdf.Triple{Subject: cls, Predicate: w3c.RDFType, Object: rdf.IRI(w3c.OWLClass)})
	b.Add(rdf.Triple{Subject: cls, Predicate: w3c.RDFSSeeAlso, Object: rdf.Literal(code)})
	b.Add(rdf.Triple{Subject: cls, Predicate: w3c.RDFSComment, Object: rdf.Literal(synonym)})
	b.Add(rdf.Triple{Subject: cls, Predicate: w3c.RDFSComment, Object: rdf.Literal(definition)})
	return cls
}

func TestMigrateLegacyClass(t *testing.T) {
	b := rdf.NewBuilder()
	cls := legacyClass(b, ns+"CervicalCancer", "C4910",
		"cervix cancer",
		"A carcinoma arising in the uterine cervix, most often HPV-associated.")
	g := b.Graph()

	migrated, n := Migrate(g)
	if n != 1 {
		t.Fatalf("expected 1 class migrated, got %d", n)
	}

	// Synonym is the shorter comment, definition the longer.
	if obj, ok := migrated.Object(cls, obo.HasSynonym); !ok || obj.Value != "cervix cancer" {
		t.Errorf("expected shorter comment as synonym, got %v %v", obj, ok)
	}
	if obj, ok := migrated.Object(cls, obo.IAODefinition); !ok ||
		obj.Value != "A carcinoma arising in the uterine cervix, most often HPV-associated." {
		t.Errorf("expected longer comment as definition, got %v %v", obj, ok)
	}

	// Legacy annotations are gone.
	if _, ok := migrated.Object(cls, w3c.RDFSSeeAlso); ok {
		t.Error("expected rdfs:seeAlso removed")
	}
	if _, ok := migrated.Object(cls, w3c.RDFSComment); ok {
		t.Error("expected rdfs:comment literals removed")
	}
}

func TestMigrateAddsReifiedAxioms(t *testing.T) {
	b := rdf.NewBuilder()
	cls := legacyClass(b, ns+"CervicalCancer", "NCIT:C4910",
		"cervix cancer",
		"A carcinoma arising in the uterine cervix.")

	migrated, _ := Migrate(b.Graph())

	axioms := migrated.Subjects(w3c.OWLAnnotatedSource, &cls)
	if len(axioms) != 2 {
		t.Fatalf("expected one axiom per grafted assertion, got %d", len(axioms))
	}
	for _, ax := range axioms {
		if !ax.IsBlank() {
			t.Errorf("axiom node must be blank, got %v", ax)
		}
		if obj, ok := migrated.Object(ax, w3c.RDFType); !ok || obj.Value != w3c.OWLAxiom {
			t.Errorf("expected owl:Axiom type, got %v %v", obj, ok)
		}
		if obj, ok := migrated.Object(ax, obo.HasDbXref); !ok || obj.Value != "NCIT:C4910" {
			t.Errorf("expected normalized NCIT xref on axiom, got %v %v", obj, ok)
		}
		if _, ok := migrated.Object(ax, w3c.OWLAnnotatedTarget); !ok {
			t.Error("expected annotatedTarget on axiom")
		}
	}
}

func TestMigrateNormalizesBareCode(t *testing.T) {
	b := rdf.NewBuilder()
	cls := legacyClass(b, ns+"HPV16", "C14227",
		"human papillomavirus 16",
		"A high-risk HPV genotype responsible for the majority of cervical cancers.")

	migrated, _ := Migrate(b.Graph())

	for _, ax := range migrated.Subjects(w3c.OWLAnnotatedSource, &cls) {
		if obj, ok := migrated.Object(ax, obo.HasDbXref); !ok || obj.Value != "NCIT:C14227" {
			t.Errorf("expected bare code normalized to NCIT:C14227, got %v %v", obj, ok)
		}
	}
}

func TestMigrateSkipsIncompleteClasses(t *testing.T) {
	b := rdf.NewBuilder()

	// seeAlso but only one comment: cannot split synonym from definition.
	oneComment := rdf.IRI(ns + "OneComment")
	b.Add(rdf.Triple{Subject: oneComment, Predicate: w3c.RDFSSeeAlso, Object: rdf.Literal("C1234")})
	b.Add(rdf.Triple{Subject: oneComment, Predicate: w3c.RDFSComment, Object: rdf.Literal("only text")})

	// Comments but no seeAlso: nothing to cross-reference.
	noXref := rdf.IRI(ns + "NoXref")
	b.Add(rdf.Triple{Subject: noXref, Predicate: w3c.RDFSComment, Object: rdf.Literal("short")})
	b.Add(rdf.Triple{Subject: noXref, Predicate: w3c.RDFSComment, Object: rdf.Literal("a much longer definition text")})

	// seeAlso pointing at a resource, not a literal code.
	iriRef := rdf.IRI(ns + "IRIRef")
	b.Add(rdf.Triple{Subject: iriRef, Predicate: w3c.RDFSSeeAlso, Object: rdf.IRI("https://example.org/elsewhere")})
	b.Add(rdf.Triple{Subject: iriRef, Predicate: w3c.RDFSComment, Object: rdf.Literal("short")})
	b.Add(rdf.Triple{Subject: iriRef, Predicate: w3c.RDFSComment, Object: rdf.Literal("a much longer definition text")})

	g := b.Graph()
	migrated, n := Migrate(g)
	if n != 0 {
		t.Fatalf("expected no classes migrated, got %d", n)
	}
	if migrated.Len() != g.Len() {
		t.Errorf("untouched graph must keep its triples: %d -> %d", g.Len(), migrated.Len())
	}
}

func TestMigrateLeavesInputUntouched(t *testing.T) {
	b := rdf.NewBuilder()
	cls := legacyClass(b, ns+"CervicalCancer", "C4910",
		"cervix cancer",
		"A carcinoma arising in the uterine cervix.")
	g := b.Graph()
	before := g.Len()

	_, _ = Migrate(g)

	if g.Len() != before {
		t.Errorf("input graph mutated: %d -> %d triples", before, g.Len())
	}
	if _, ok := g.Object(cls, w3c.RDFSSeeAlso); !ok {
		t.Error("input graph lost its seeAlso triple")
	}
}

func TestMigrateFreshAxiomNodesAvoidCollisions(t *testing.T) {
	b := rdf.NewBuilder()
	legacyClass(b, ns+"CervicalCancer", "C4910",
		"cervix cancer",
		"A carcinoma arising in the uterine cervix.")

	// A blank node already named like a generated axiom node.
	taken := rdf.Blank("axiom1")
	b.Add(rdf.Triple{Subject: taken, Predicate: w3c.RDFType, Object: rdf.IRI(w3c.OWLAxiom)})

	migrated, n := Migrate(b.Graph())
	if n != 1 {
		t.Fatalf("expected 1 class migrated, got %d", n)
	}

	// The pre-existing node must keep exactly its one triple.
	ts, err := migrated.SubjectTriples(taken)
	if err != nil {
		t.Fatalf("SubjectTriples() error = %v", err)
	}
	if len(ts) != 1 {
		t.Errorf("generated axiom nodes must not reuse existing labels, node axiom1 has %d triples", len(ts))
	}
}
