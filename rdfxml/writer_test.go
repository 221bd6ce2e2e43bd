package rdfxml

import (
	"strings"
	"testing"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

func TestWriteRoundTrip(t *testing.T) {
	g, err := ParseBytes([]byte(classDoc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	var sb strings.Builder
	if err := Write(&sb, g); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	back, err := ParseBytes([]byte(sb.String()))
	if err != nil {
		t.Fatalf("reparse error = %v\noutput:\n%s", err, sb.String())
	}

	if back.Len() != g.Len() {
		t.Errorf("round trip changed triple count: %d -> %d", g.Len(), back.Len())
	}
	for _, tr := range g.Triples() {
		if !back.Has(tr) {
			t.Errorf("round trip lost triple %v", tr)
		}
	}
}

func TestWriteDeterministic(t *testing.T) {
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: rdf.IRI("https://example.org/b"), Predicate: w3c.RDFSLabel, Object: rdf.Literal("beta")},
		{Subject: rdf.IRI("https://example.org/a"), Predicate: w3c.RDFSLabel, Object: rdf.Literal("alpha")},
	})

	var first, second strings.Builder
	if err := Write(&first, g); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := Write(&second, g); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("repeated writes of the same graph must be identical")
	}
}

func TestWriteEscapesLiterals(t *testing.T) {
	g := rdf.NewGraph([]rdf.Triple{
		{
			Subject:   rdf.IRI("https://example.org/a"),
			Predicate: w3c.RDFSComment,
			Object:    rdf.Literal(`grade <2> & "high risk"`),
		},
	})

	var sb strings.Builder
	if err := Write(&sb, g); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := sb.String()

	if strings.Contains(out, "<2>") {
		t.Error("literal angle brackets must be escaped")
	}
	if !strings.Contains(out, "&lt;2&gt; &amp;") {
		t.Errorf("expected escaped entities in output:\n%s", out)
	}

	back, err := ParseBytes([]byte(out))
	if err != nil {
		t.Fatalf("reparse error = %v", err)
	}
	obj, ok := back.Object(rdf.IRI("https://example.org/a"), w3c.RDFSComment)
	if !ok || obj.Value != `grade <2> & "high risk"` {
		t.Errorf("escaping not reversible, got %q", obj.Value)
	}
}

func TestWriteBlankNodesAndDatatypes(t *testing.T) {
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: rdf.Blank("ax0"), Predicate: w3c.RDFType, Object: rdf.IRI(w3c.OWLAxiom)},
		{Subject: rdf.Blank("ax0"), Predicate: w3c.OWLAnnotatedSource, Object: rdf.IRI("https://example.org/a")},
		{Subject: rdf.IRI("https://example.org/a"), Predicate: "https://example.org/ns#count", Object: rdf.TypedLiteral("7", w3c.XSDInteger)},
		{Subject: rdf.IRI("https://example.org/a"), Predicate: w3c.RDFSLabel, Object: rdf.LangLiteral("alpha", "en")},
	})

	var sb strings.Builder
	if err := Write(&sb, g); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	back, err := ParseBytes([]byte(sb.String()))
	if err != nil {
		t.Fatalf("reparse error = %v\noutput:\n%s", err, sb.String())
	}
	if back.Len() != g.Len() {
		t.Fatalf("round trip changed triple count: %d -> %d\noutput:\n%s", g.Len(), back.Len(), sb.String())
	}
	for _, tr := range g.Triples() {
		if !back.Has(tr) {
			t.Errorf("round trip lost triple %v", tr)
		}
	}
}

func TestWriteRejectsUnsplittablePredicate(t *testing.T) {
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: rdf.IRI("https://example.org/a"), Predicate: "urn:uuid:not-splittable", Object: rdf.Literal("x")},
	})

	var sb strings.Builder
	if err := Write(&sb, g); err == nil {
		t.Error("expected error for predicate without a QName-safe local part")
	}
}

func TestSplitIRI(t *testing.T) {
	tests := []struct {
		iri     string
		ns      string
		local   string
		wantErr bool
	}{
		{"http://www.w3.org/2000/01/rdf-schema#label", "http://www.w3.org/2000/01/rdf-schema#", "label", false},
		{"http://purl.org/dc/terms/title", "http://purl.org/dc/terms/", "title", false},
		{"https://example.org/ns#", "", "", true},
		{"no-separator", "", "", true},
	}
	for _, tt := range tests {
		ns, local, err := splitIRI(tt.iri)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitIRI(%q) error = %v, wantErr %v", tt.iri, err, tt.wantErr)
			continue
		}
		if ns != tt.ns || local != tt.local {
			t.Errorf("splitIRI(%q) = %q, %q; want %q, %q", tt.iri, ns, local, tt.ns, tt.local)
		}
	}
}
