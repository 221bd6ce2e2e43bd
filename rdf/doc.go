// Package rdf provides the in-memory triple store for loaded ontology
// documents.
//
// A Graph is immutable once built: any number of concurrent readers may
// query it without synchronization, reflecting the fact that a published
// ontology document is a static artifact. Construction goes through a
// Builder; a new document version means a new Graph, never mutation in
// place.
package rdf
