package ontology

import "time"

// FormatRDFXML is the serialization format of the published document.
const FormatRDFXML = "rdfxml"

// Document identifies one immutable, versioned release of the ontology.
// Releases are published once and never mutated in place; a new version
// gets a new identifier.
type Document struct {
	// IRI is the ontology IRI from the owl:Ontology header.
	IRI string `json:"iri"`

	// Version is the owl:versionInfo string, empty if the header omits it.
	Version string `json:"version,omitempty"`

	// Format is the serialization the document was loaded from.
	Format string `json:"format"`

	// SourceURL is the URL or file path the document was retrieved from.
	SourceURL string `json:"source_url,omitempty"`

	// Retrieved is when the document was loaded.
	Retrieved time.Time `json:"retrieved,omitzero"`
}

// Stats summarizes the loaded ontology.
type Stats struct {
	Triples    int `json:"triples"`
	Classes    int `json:"classes"`
	Properties int `json:"properties"`
	Axioms     int `json:"axioms"`
	NCITXrefs  int `json:"ncit_xrefs"`
	Violations int `json:"violations"`
}
