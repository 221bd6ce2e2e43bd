package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/rdfxml"
	"github.com/uthealth/hpvco/vocabulary/hpvco"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

func exportGraph() *rdf.Graph {
	cls := rdf.IRI(hpvco.Namespace + "CervicalCancer")
	return rdf.NewGraph([]rdf.Triple{
		{Subject: cls, Predicate: w3c.RDFType, Object: rdf.IRI(w3c.OWLClass)},
		{Subject: cls, Predicate: w3c.RDFSLabel, Object: rdf.LangLiteral("cervical cancer", "en")},
		{Subject: cls, Predicate: w3c.RDFSSubClassOf, Object: rdf.IRI(hpvco.Namespace + "Cancer")},
	})
}

func TestSerializeTurtle(t *testing.T) {
	out, err := Serialize(exportGraph(), FormatTurtle)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	if !strings.Contains(out, "@prefix owl: <"+w3c.OWLNamespace+"> .") {
		t.Error("expected owl prefix declaration")
	}
	if !strings.Contains(out, "@prefix hpvco: <"+hpvco.Namespace+"> .") {
		t.Error("expected hpvco prefix declaration")
	}
	if !strings.Contains(out, "hpvco:CervicalCancer") {
		t.Error("expected compacted subject IRI")
	}
	if !strings.Contains(out, "a owl:Class") {
		t.Error("expected rdf:type rendered as a")
	}
	if !strings.Contains(out, `"cervical cancer"@en`) {
		t.Error("expected lang-tagged literal")
	}
	if !strings.Contains(out, "rdfs:subClassOf hpvco:Cancer") {
		t.Error("expected compacted subClassOf statement")
	}
}

func TestSerializeNTriples(t *testing.T) {
	g := exportGraph()
	out, err := Serialize(g, FormatNTriples)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != g.Len() {
		t.Errorf("expected one line per triple (%d), got %d", g.Len(), len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " .") {
			t.Errorf("N-Triples statement must end with ' .': %q", line)
		}
	}
	if !strings.Contains(out, "<"+hpvco.Namespace+"CervicalCancer>") {
		t.Error("N-Triples must use absolute IRIs")
	}
}

func TestSerializeJSONLD(t *testing.T) {
	out, err := Serialize(exportGraph(), FormatJSONLD)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var doc struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Context["owl"] != w3c.OWLNamespace {
		t.Errorf("expected owl in context, got %v", doc.Context)
	}
	if len(doc.Graph) != 1 {
		t.Fatalf("expected one node, got %d", len(doc.Graph))
	}

	node := doc.Graph[0]
	if node["@id"] != hpvco.Namespace+"CervicalCancer" {
		t.Errorf("unexpected node id %v", node["@id"])
	}
	types, ok := node["@type"].([]any)
	if !ok || len(types) != 1 || types[0] != w3c.OWLClass {
		t.Errorf("expected @type owl:Class, got %v", node["@type"])
	}
}

func TestSerializeRDFXMLRoundTrip(t *testing.T) {
	g := exportGraph()
	out, err := Serialize(g, FormatRDFXML)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	back, err := rdfxml.ParseBytes([]byte(out))
	if err != nil {
		t.Fatalf("reparse error = %v\noutput:\n%s", err, out)
	}
	if back.Len() != g.Len() {
		t.Errorf("round trip changed triple count: %d -> %d", g.Len(), back.Len())
	}
}

func TestSerializeUnknownFormat(t *testing.T) {
	_, err := Serialize(exportGraph(), Format("pretty"))
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCompactIRIFallsBackToAbsolute(t *testing.T) {
	prefixes := defaultPrefixes()

	if got := compactIRI("https://unrelated.example.org/x", prefixes); got != "<https://unrelated.example.org/x>" {
		t.Errorf("expected absolute IRI fallback, got %q", got)
	}
	// Local parts that are not valid prefixed names stay absolute.
	if got := compactIRI(w3c.OWLNamespace+"has.dots", prefixes); got != "<"+w3c.OWLNamespace+"has.dots>" {
		t.Errorf("expected absolute IRI for invalid local part, got %q", got)
	}
}
