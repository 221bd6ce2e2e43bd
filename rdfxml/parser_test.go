package rdfxml

import (
	"errors"
	"testing"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

const classDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
    xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="https://purl.org/uth/ontology/hpvco#CervicalCancer">
    <rdfs:label xml:lang="en">cervical cancer</rdfs:label>
    <rdfs:subClassOf rdf:resource="https://purl.org/uth/ontology/hpvco#Cancer"/>
  </owl:Class>
</rdf:RDF>`

func TestParseTypedNodeElement(t *testing.T) {
	g, err := ParseBytes([]byte(classDoc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if g.Len() != 3 {
		t.Fatalf("expected 3 triples (type, label, subClassOf), got %d", g.Len())
	}

	subject := rdf.IRI("https://purl.org/uth/ontology/hpvco#CervicalCancer")
	if obj, ok := g.Object(subject, w3c.RDFType); !ok || obj.Value != w3c.OWLClass {
		t.Errorf("expected rdf:type owl:Class from the element name, got %v %v", obj, ok)
	}
	if obj, ok := g.Object(subject, w3c.RDFSLabel); !ok || obj.Value != "cervical cancer" || obj.Lang != "en" {
		t.Errorf("expected lang-tagged label, got %v %v", obj, ok)
	}
	if obj, ok := g.Object(subject, w3c.RDFSSubClassOf); !ok || !obj.IsIRI() {
		t.Errorf("expected subClassOf IRI object, got %v %v", obj, ok)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"/>`

	g, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("expected 0 triples from an empty envelope, got %d", g.Len())
	}
}

func TestParseMalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"truncated", `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><rdf:Description`},
		{"not XML at all", `{"triples": []}`},
		{"unclosed element", `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><rdf:Description rdf:about="x"></rdf:RDF>`},
		{"text between node elements", `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">stray</rdf:RDF>`},
		{"unqualified node element", `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><Thing/></rdf:RDF>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected parse error")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseXMLBase(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
    xml:base="https://purl.org/uth/ontology/hpvco">
  <rdf:Description rdf:about="#HPV16">
    <rdfs:seeAlso rdf:resource="#HPV"/>
  </rdf:Description>
</rdf:RDF>`

	g, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	subject := rdf.IRI("https://purl.org/uth/ontology/hpvco#HPV16")
	obj, ok := g.Object(subject, w3c.RDFSSeeAlso)
	if !ok {
		t.Fatal("expected resolved subject with base-relative reference")
	}
	if obj.Value != "https://purl.org/uth/ontology/hpvco#HPV" {
		t.Errorf("expected object resolved against xml:base, got %q", obj.Value)
	}
}

func TestParseXMLLang(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
    xml:lang="en">
  <rdf:Description rdf:about="https://example.org/a">
    <rdfs:label>hello</rdfs:label>
    <rdfs:comment xml:lang="de">hallo</rdfs:comment>
  </rdf:Description>
</rdf:RDF>`

	g, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	subject := rdf.IRI("https://example.org/a")
	if obj, ok := g.Object(subject, w3c.RDFSLabel); !ok || obj.Lang != "en" {
		t.Errorf("expected label to inherit xml:lang from the envelope, got %v %v", obj, ok)
	}
	if obj, ok := g.Object(subject, w3c.RDFSComment); !ok || obj.Lang != "de" {
		t.Errorf("expected property-level xml:lang to override, got %v %v", obj, ok)
	}
}

func TestParseBlankNodes(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Axiom>
    <owl:annotatedSource rdf:resource="https://example.org/a"/>
  </owl:Axiom>
  <rdf:Description rdf:nodeID="shared">
    <owl:annotatedTarget rdf:nodeID="shared"/>
  </rdf:Description>
</rdf:RDF>`

	g, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	axioms := g.Subjects(w3c.RDFType, nil)
	if len(axioms) != 1 || !axioms[0].IsBlank() {
		t.Errorf("expected one blank axiom subject, got %v", axioms)
	}

	shared := rdf.Blank("shared")
	if obj, ok := g.Object(shared, w3c.OWLAnnotatedTarget); !ok || obj != shared {
		t.Errorf("expected rdf:nodeID to name the same blank node, got %v %v", obj, ok)
	}
}

func TestParseParseTypeResource(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
    xmlns:owl="http://www.w3.org/2002/07/owl#">
  <rdf:Description rdf:about="https://example.org/a">
    <rdfs:subClassOf rdf:parseType="Resource">
      <owl:onProperty rdf:resource="https://example.org/p"/>
    </rdfs:subClassOf>
  </rdf:Description>
</rdf:RDF>`

	g, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	obj, ok := g.Object(rdf.IRI("https://example.org/a"), w3c.RDFSSubClassOf)
	if !ok || !obj.IsBlank() {
		t.Fatalf("expected implicit blank node object, got %v %v", obj, ok)
	}
	if inner, ok := g.Object(obj, w3c.OWLOnProperty); !ok || inner.Value != "https://example.org/p" {
		t.Errorf("expected nested property on implicit blank node, got %v %v", inner, ok)
	}
}

func TestParseDatatypeLiteral(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:ex="https://example.org/ns#">
  <rdf:Description rdf:about="https://example.org/a">
    <ex:count rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">42</ex:count>
  </rdf:Description>
</rdf:RDF>`

	g, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	obj, ok := g.Object(rdf.IRI("https://example.org/a"), "https://example.org/ns#count")
	if !ok {
		t.Fatal("expected triple for typed literal")
	}
	if obj.Value != "42" || obj.Datatype != w3c.XSDInteger {
		t.Errorf("expected typed literal 42^^xsd:integer, got %v", obj)
	}
}

func TestParsePropertyAttributes(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#">
  <rdf:Description rdf:about="https://example.org/a" rdfs:label="alpha"/>
</rdf:RDF>`

	g, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	obj, ok := g.Object(rdf.IRI("https://example.org/a"), w3c.RDFSLabel)
	if !ok || obj.Value != "alpha" || !obj.IsLiteral() {
		t.Errorf("expected property attribute as literal statement, got %v %v", obj, ok)
	}
}
