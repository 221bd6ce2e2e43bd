package graph

import (
	"context"
	"testing"

	"github.com/uthealth/hpvco/ontology"
	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/hpvco"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

func rdfGraphFixture() *rdf.Graph {
	return rdf.NewGraph([]rdf.Triple{
		{Subject: rdf.IRI(hpvco.ClassCervicalCancer), Predicate: w3c.RDFType, Object: rdf.IRI(w3c.OWLClass)},
	})
}

func TestClassEntityID(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{hpvco.ClassCervicalCancer, "hpvco.ontology.class.cervicalcancer"},
		{"https://example.org/path/Thing", "hpvco.ontology.class.thing"},
		{"nofragment", "hpvco.ontology.class.nofragment"},
		{"https://example.org/trailing/", "hpvco.ontology.class.https://example.org/trailing/"},
	}
	for _, tt := range tests {
		if got := ClassEntityID(tt.iri); got != tt.want {
			t.Errorf("ClassEntityID(%q) = %q, want %q", tt.iri, got, tt.want)
		}
	}
}

func TestDocumentEntityID(t *testing.T) {
	got := DocumentEntityID(hpvco.OntologyIRI)
	want := "hpvco.ontology.document.hpvco"
	if got != want {
		t.Errorf("DocumentEntityID(%q) = %q, want %q", hpvco.OntologyIRI, got, want)
	}
}

func TestEntityIDStableAcrossCalls(t *testing.T) {
	a := ClassEntityID(hpvco.ClassVaccination)
	b := ClassEntityID(hpvco.ClassVaccination)
	if a != b {
		t.Errorf("entity IDs must be deterministic: %q vs %q", a, b)
	}
}

func TestPublishWithoutClientIsNoOp(t *testing.T) {
	ctx := context.Background()

	if err := PublishClass(ctx, nil, &ontology.Class{IRI: hpvco.ClassCervicalCancer}); err != nil {
		t.Errorf("PublishClass without client must be a no-op, got %v", err)
	}

	o := ontology.FromGraph(rdfGraphFixture(), ontology.Document{IRI: hpvco.OntologyIRI}, nil)
	if err := PublishDocument(ctx, nil, o); err != nil {
		t.Errorf("PublishDocument without client must be a no-op, got %v", err)
	}
	if err := PublishOntology(ctx, nil, o); err != nil {
		t.Errorf("PublishOntology without client must be a no-op, got %v", err)
	}
}
