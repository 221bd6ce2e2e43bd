// Package ontology is the read-only facade over a loaded HPVCO document.
//
// Load follows the single lifecycle the artifact has: fetch (or read a
// file), parse, validate, query. The resulting Ontology wraps the immutable
// triple graph with derived views (classes, properties, axioms,
// annotations, NCIT cross-references) and lookup by IRI or label. A new
// document version produces a new Ontology; nothing is ever mutated after
// load, so concurrent readers need no synchronization.
package ontology
