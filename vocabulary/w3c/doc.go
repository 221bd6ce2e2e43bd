// Package w3c provides IRI constants for the W3C core vocabularies used by
// the HPVCO document: RDF, RDFS, OWL, XSD, Dublin Core terms, and SKOS.
//
// These namespaces are always treated as recognized external vocabularies by
// the schema validator; references into them never need local declarations.
package w3c
