package hpvco

// Class predicates describe an ontology class published to the knowledge
// graph. Values are flat predicate names consumed by graph ingestion.
const (
	// ClassIRI is the class IRI within the ontology.
	ClassIRI = "hpvco.class.iri"

	// ClassLabel is the human-readable rdfs:label.
	ClassLabel = "hpvco.class.label"

	// ClassDefinition is the textual definition (IAO_0000115).
	ClassDefinition = "hpvco.class.definition"

	// ClassSynonym is a synonym annotation.
	ClassSynonym = "hpvco.class.synonym"

	// ClassNCITXref is an NCIT concept code cross-reference.
	ClassNCITXref = "hpvco.class.ncit_xref"
)

// Relationship predicates linking published class entities.
const (
	// SubClassOf links a class entity to its superclass entity.
	// Domain: class entity, Range: class entity
	SubClassOf = "hpvco.rel.subclass_of"
)

// Document predicates describe the loaded ontology document itself.
const (
	// DocumentIRI is the ontology IRI.
	DocumentIRI = "hpvco.meta.iri"

	// DocumentVersion is the owl:versionInfo string.
	DocumentVersion = "hpvco.meta.version"

	// DocumentSourceURL is the URL the document was retrieved from.
	DocumentSourceURL = "hpvco.meta.source_url"

	// DocumentTripleCount is the loaded triple count.
	DocumentTripleCount = "hpvco.meta.triple_count"
)
