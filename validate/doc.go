// Package validate checks the structural well-formedness of a loaded
// ontology graph.
//
// Validation is deliberately shallow: it confirms that every class and
// property reference resolves to a declared entity or a recognized external
// namespace and that axioms stay within the supported OWL constructs.
// Description-logic consistency checking is delegated to external reasoners.
// Findings are reported as a non-fatal violation list; the caller decides
// whether to proceed.
package validate
