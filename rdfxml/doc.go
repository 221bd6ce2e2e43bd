// Package rdfxml parses and serializes RDF/XML, the serialization the
// HPVCO document is published in.
//
// The parser covers the subset the document actually uses: the rdf:RDF
// envelope, rdf:Description and typed node elements, rdf:about, rdf:ID and
// rdf:nodeID subjects, property elements with rdf:resource, rdf:nodeID,
// nested node elements or literal content, xml:lang, xml:base, rdf:datatype,
// and rdf:parseType="Resource". Other parse types (Literal, Collection) are
// rejected with a ParseError rather than silently mis-read.
package rdfxml
