package obo

// Namespace is the OBO Foundry PURL namespace.
const Namespace = "http://purl.obolibrary.org/obo/"

// OboInOwlNamespace is the oboInOwl annotation vocabulary namespace.
const OboInOwlNamespace = "http://www.geneontology.org/formats/oboInOwl#"

// IAO terms.
const (
	// IAODefinition is IAO_0000115, the textual definition property.
	IAODefinition = Namespace + "IAO_0000115"
)

// oboInOwl annotation properties.
const (
	// HasSynonym is a synonym annotation.
	HasSynonym = OboInOwlNamespace + "hasSynonym"

	// HasExactSynonym is an exact synonym annotation.
	HasExactSynonym = OboInOwlNamespace + "hasExactSynonym"

	// HasDbXref is a database cross-reference annotation.
	HasDbXref = OboInOwlNamespace + "hasDbXref"
)
