package ontology

import (
	"errors"
	"testing"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/obo"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

const ns = "https://purl.org/uth/ontology/hpvco#"

// buildTestOntology assembles a small graph in the shape of the published
// document: a header, a class hierarchy with annotations, a reified NCIT
// axiom, and one property of each kind.
func buildTestOntology() *Ontology {
	b := rdf.NewBuilder()

	add := func(s rdf.Term, p string, o rdf.Term) {
		b.Add(rdf.Triple{Subject: s, Predicate: p, Object: o})
	}
	iri := rdf.IRI

	// Header.
	header := iri("https://purl.org/uth/ontology/hpvco")
	add(header, w3c.RDFType, iri(w3c.OWLOntology))
	add(header, w3c.OWLVersionInfo, rdf.Literal("2.1.0"))

	// Classes.
	cancer := iri(ns + "Cancer")
	add(cancer, w3c.RDFType, iri(w3c.OWLClass))
	add(cancer, w3c.RDFSLabel, rdf.LangLiteral("cancer", "en"))

	cervical := iri(ns + "CervicalCancer")
	add(cervical, w3c.RDFType, iri(w3c.OWLClass))
	add(cervical, w3c.RDFSLabel, rdf.LangLiteral("cervical cancer", "en"))
	add(cervical, obo.IAODefinition, rdf.Literal("A carcinoma arising in the uterine cervix."))
	add(cervical, obo.HasSynonym, rdf.Literal("cervix cancer"))
	add(cervical, w3c.RDFSSubClassOf, cancer)
	add(cervical, obo.HasDbXref, rdf.Literal("NCIT:C4910"))

	// Reified axiom carrying an NCIT cross-reference in OBO style.
	ax := rdf.Blank("ax0")
	add(ax, w3c.RDFType, iri(w3c.OWLAxiom))
	add(ax, w3c.OWLAnnotatedSource, cervical)
	add(ax, w3c.OWLAnnotatedProperty, iri(obo.HasSynonym))
	add(ax, w3c.OWLAnnotatedTarget, rdf.Literal("cervix cancer"))
	add(ax, obo.HasDbXref, rdf.Literal("http://purl.obolibrary.org/obo/NCIT_C9039"))

	// Properties.
	causes := iri(ns + "causesDisease")
	add(causes, w3c.RDFType, iri(w3c.OWLObjectProperty))
	add(causes, w3c.RDFSLabel, rdf.Literal("causes disease"))
	add(causes, w3c.RDFSDomain, iri(ns+"HPVType"))
	add(causes, w3c.RDFSRange, cancer)

	riskLevel := iri(ns + "riskLevel")
	add(riskLevel, w3c.RDFType, iri(w3c.OWLDatatypeProperty))
	add(riskLevel, w3c.RDFSLabel, rdf.Literal("risk level"))

	return FromGraph(b.Graph(), Document{}, nil)
}

func TestFromGraphHeader(t *testing.T) {
	o := buildTestOntology()

	doc := o.Document()
	if doc.IRI != "https://purl.org/uth/ontology/hpvco" {
		t.Errorf("expected header IRI from owl:Ontology subject, got %q", doc.IRI)
	}
	if doc.Version != "2.1.0" {
		t.Errorf("expected version from owl:versionInfo, got %q", doc.Version)
	}
	if doc.Retrieved.IsZero() {
		t.Error("expected Retrieved to be stamped")
	}
}

func TestClassLookup(t *testing.T) {
	o := buildTestOntology()

	c, err := o.Class(ns + "CervicalCancer")
	if err != nil {
		t.Fatalf("Class() error = %v", err)
	}
	if c.Label != "cervical cancer" {
		t.Errorf("expected label, got %q", c.Label)
	}
	if c.Definition != "A carcinoma arising in the uterine cervix." {
		t.Errorf("expected IAO definition, got %q", c.Definition)
	}
	if len(c.Synonyms) != 1 || c.Synonyms[0] != "cervix cancer" {
		t.Errorf("expected one synonym, got %v", c.Synonyms)
	}
	if len(c.Parents) != 1 || c.Parents[0] != ns+"Cancer" {
		t.Errorf("expected one parent, got %v", c.Parents)
	}
}

func TestClassNCITRefs(t *testing.T) {
	o := buildTestOntology()

	c, err := o.Class(ns + "CervicalCancer")
	if err != nil {
		t.Fatalf("Class() error = %v", err)
	}

	// One direct xref and one from the reified axiom, normalized and sorted.
	want := []string{"NCIT:C4910", "NCIT:C9039"}
	if len(c.NCITRefs) != len(want) {
		t.Fatalf("expected refs %v, got %v", want, c.NCITRefs)
	}
	for i := range want {
		if c.NCITRefs[i] != want[i] {
			t.Errorf("expected refs %v, got %v", want, c.NCITRefs)
			break
		}
	}
}

func TestClassNotFound(t *testing.T) {
	o := buildTestOntology()

	_, err := o.Class(ns + "Nonexistent")
	if !errors.Is(err, rdf.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	_, err = o.Property(ns + "Nonexistent")
	if !errors.Is(err, rdf.ErrNotFound) {
		t.Errorf("expected ErrNotFound for absent property, got %v", err)
	}
}

func TestPropertyLookup(t *testing.T) {
	o := buildTestOntology()

	p, err := o.Property(ns + "causesDisease")
	if err != nil {
		t.Fatalf("Property() error = %v", err)
	}
	if p.Kind != PropertyObject {
		t.Errorf("expected object property, got %s", p.Kind)
	}
	if p.Domain != ns+"HPVType" || p.Range != ns+"Cancer" {
		t.Errorf("expected domain/range, got %q / %q", p.Domain, p.Range)
	}

	dp, err := o.Property(ns + "riskLevel")
	if err != nil {
		t.Fatalf("Property() error = %v", err)
	}
	if dp.Kind != PropertyDatatype {
		t.Errorf("expected datatype property, got %s", dp.Kind)
	}
}

func TestByLabel(t *testing.T) {
	o := buildTestOntology()

	// Case-insensitive match on the label.
	iris, err := o.ByLabel("Cervical Cancer")
	if err != nil {
		t.Fatalf("ByLabel() error = %v", err)
	}
	if len(iris) != 1 || iris[0] != ns+"CervicalCancer" {
		t.Errorf("expected class by label, got %v", iris)
	}

	// Synonyms are indexed too.
	iris, err = o.ByLabel("CERVIX CANCER")
	if err != nil {
		t.Fatalf("ByLabel() synonym error = %v", err)
	}
	if len(iris) != 1 || iris[0] != ns+"CervicalCancer" {
		t.Errorf("expected class by synonym, got %v", iris)
	}

	// Properties resolve by label as well.
	iris, err = o.ByLabel("causes disease")
	if err != nil {
		t.Fatalf("ByLabel() property error = %v", err)
	}
	if len(iris) != 1 || iris[0] != ns+"causesDisease" {
		t.Errorf("expected property by label, got %v", iris)
	}
}

func TestByLabelNotFoundAndIdempotent(t *testing.T) {
	o := buildTestOntology()

	_, err := o.ByLabel("no such thing")
	if !errors.Is(err, rdf.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Repeating the failed lookup must not change subsequent results.
	_, err = o.ByLabel("no such thing")
	if !errors.Is(err, rdf.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat, got %v", err)
	}

	first, err := o.ByLabel("cancer")
	if err != nil {
		t.Fatalf("ByLabel() error = %v", err)
	}
	second, err := o.ByLabel("cancer")
	if err != nil {
		t.Fatalf("ByLabel() repeat error = %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated lookups differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated lookups differ: %v vs %v", first, second)
		}
	}
}

func TestAxioms(t *testing.T) {
	o := buildTestOntology()

	axioms := o.Axioms()
	if len(axioms) != 1 {
		t.Fatalf("expected 1 named-class axiom, got %d: %v", len(axioms), axioms)
	}
	ax := axioms[0]
	if ax.Kind != AxiomSubClass || ax.Subject != ns+"CervicalCancer" || ax.Object != ns+"Cancer" {
		t.Errorf("unexpected axiom %+v", ax)
	}
}

func TestStats(t *testing.T) {
	o := buildTestOntology()

	stats := o.Stats()
	if stats.Classes != 2 {
		t.Errorf("expected 2 classes, got %d", stats.Classes)
	}
	if stats.Properties != 2 {
		t.Errorf("expected 2 properties, got %d", stats.Properties)
	}
	if stats.Axioms != 1 {
		t.Errorf("expected 1 axiom, got %d", stats.Axioms)
	}
	if stats.NCITXrefs != 2 {
		t.Errorf("expected 2 NCIT xrefs, got %d", stats.NCITXrefs)
	}
	if stats.Triples != o.Graph().Len() {
		t.Errorf("stats triple count %d does not match graph %d", stats.Triples, o.Graph().Len())
	}
}

func TestLoadBytesEmptyDocument(t *testing.T) {
	doc := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"/>`

	l := NewLoader()
	o, err := l.LoadBytes([]byte(doc), "test.rdf")
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if o.Graph().Len() != 0 {
		t.Errorf("empty document must yield 0 triples, got %d", o.Graph().Len())
	}
	if len(o.Violations()) != 0 {
		t.Errorf("empty document must yield 0 violations, got %v", o.Violations())
	}
	if o.Document().SourceURL != "test.rdf" {
		t.Errorf("expected source recorded, got %q", o.Document().SourceURL)
	}
}

func TestLoadBytesMalformedDocument(t *testing.T) {
	l := NewLoader()
	_, err := l.LoadBytes([]byte("<rdf:RDF"), "bad.rdf")
	if err == nil {
		t.Fatal("expected parse error")
	}
}
