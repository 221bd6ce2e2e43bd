package w3c

// Namespace prefixes for the core W3C vocabularies.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// DCNamespace is the Dublin Core terms namespace.
	DCNamespace = "http://purl.org/dc/terms/"

	// SKOSNamespace is the SKOS core namespace.
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"
)

// RDF vocabulary terms.
const (
	// RDFType is the rdf:type predicate.
	RDFType = RDFNamespace + "type"

	// RDFXMLLiteral is the datatype IRI for embedded XML content.
	RDFXMLLiteral = RDFNamespace + "XMLLiteral"
)

// RDFS vocabulary terms.
const (
	// RDFSClass is the rdfs:Class type.
	RDFSClass = RDFSNamespace + "Class"

	// RDFSDatatype is the rdfs:Datatype type.
	RDFSDatatype = RDFSNamespace + "Datatype"

	// RDFSLabel is the human-readable label predicate.
	RDFSLabel = RDFSNamespace + "label"

	// RDFSComment is the free-text comment predicate.
	RDFSComment = RDFSNamespace + "comment"

	// RDFSSeeAlso is the cross-reference predicate.
	RDFSSeeAlso = RDFSNamespace + "seeAlso"

	// RDFSIsDefinedBy links a term to its defining resource.
	RDFSIsDefinedBy = RDFSNamespace + "isDefinedBy"

	// RDFSSubClassOf is the subclass axiom predicate.
	RDFSSubClassOf = RDFSNamespace + "subClassOf"

	// RDFSSubPropertyOf is the subproperty axiom predicate.
	RDFSSubPropertyOf = RDFSNamespace + "subPropertyOf"

	// RDFSDomain is the property domain predicate.
	RDFSDomain = RDFSNamespace + "domain"

	// RDFSRange is the property range predicate.
	RDFSRange = RDFSNamespace + "range"
)

// OWL vocabulary terms.
const (
	// OWLOntology is the ontology header type.
	OWLOntology = OWLNamespace + "Ontology"

	// OWLClass is the owl:Class type.
	OWLClass = OWLNamespace + "Class"

	// OWLObjectProperty is the object property type.
	OWLObjectProperty = OWLNamespace + "ObjectProperty"

	// OWLDatatypeProperty is the datatype property type.
	OWLDatatypeProperty = OWLNamespace + "DatatypeProperty"

	// OWLAnnotationProperty is the annotation property type.
	OWLAnnotationProperty = OWLNamespace + "AnnotationProperty"

	// OWLNamedIndividual is the named individual type.
	OWLNamedIndividual = OWLNamespace + "NamedIndividual"

	// OWLThing is the universal class.
	OWLThing = OWLNamespace + "Thing"

	// OWLAxiom is the reified axiom type used for annotated assertions.
	OWLAxiom = OWLNamespace + "Axiom"

	// OWLRestriction is the property restriction type.
	OWLRestriction = OWLNamespace + "Restriction"

	// OWLAnnotatedSource is the subject of a reified axiom.
	OWLAnnotatedSource = OWLNamespace + "annotatedSource"

	// OWLAnnotatedProperty is the predicate of a reified axiom.
	OWLAnnotatedProperty = OWLNamespace + "annotatedProperty"

	// OWLAnnotatedTarget is the object of a reified axiom.
	OWLAnnotatedTarget = OWLNamespace + "annotatedTarget"

	// OWLEquivalentClass is the class equivalence axiom predicate.
	OWLEquivalentClass = OWLNamespace + "equivalentClass"

	// OWLDisjointWith is the class disjointness axiom predicate.
	OWLDisjointWith = OWLNamespace + "disjointWith"

	// OWLOnProperty names the property a restriction constrains.
	OWLOnProperty = OWLNamespace + "onProperty"

	// OWLSomeValuesFrom is the existential restriction predicate.
	OWLSomeValuesFrom = OWLNamespace + "someValuesFrom"

	// OWLAllValuesFrom is the universal restriction predicate.
	OWLAllValuesFrom = OWLNamespace + "allValuesFrom"

	// OWLVersionInfo carries the ontology version string.
	OWLVersionInfo = OWLNamespace + "versionInfo"

	// OWLVersionIRI names the version-specific ontology IRI.
	OWLVersionIRI = OWLNamespace + "versionIRI"

	// OWLImports declares an ontology import.
	OWLImports = OWLNamespace + "imports"
)

// XSD datatype IRIs.
const (
	// XSDString is the string datatype.
	XSDString = XSDNamespace + "string"

	// XSDBoolean is the boolean datatype.
	XSDBoolean = XSDNamespace + "boolean"

	// XSDInteger is the integer datatype.
	XSDInteger = XSDNamespace + "integer"

	// XSDDecimal is the decimal datatype.
	XSDDecimal = XSDNamespace + "decimal"

	// XSDDateTime is the dateTime datatype.
	XSDDateTime = XSDNamespace + "dateTime"
)

// Dublin Core terms.
const (
	// DCTitle is the document title.
	DCTitle = DCNamespace + "title"

	// DCCreator is the document creator.
	DCCreator = DCNamespace + "creator"

	// DCDescription is the document description.
	DCDescription = DCNamespace + "description"

	// DCLicense is the document license.
	DCLicense = DCNamespace + "license"

	// DCCreated is the creation date.
	DCCreated = DCNamespace + "created"

	// DCModified is the last modification date.
	DCModified = DCNamespace + "modified"
)

// SKOS terms.
const (
	// SKOSPrefLabel is the preferred label.
	SKOSPrefLabel = SKOSNamespace + "prefLabel"

	// SKOSAltLabel is an alternative label.
	SKOSAltLabel = SKOSNamespace + "altLabel"

	// SKOSDefinition is a textual definition.
	SKOSDefinition = SKOSNamespace + "definition"

	// SKOSExactMatch links to an equivalent external concept.
	SKOSExactMatch = SKOSNamespace + "exactMatch"
)
