// Package enrich migrates legacy HPVCO annotation conventions to their
// OWL-native form.
//
// Earlier ontology releases stored the NCIT cross-reference in rdfs:seeAlso
// and packed both a synonym and a definition into rdfs:comment literals.
// Migrate rewrites those classes: the shorter comment becomes an
// oboInOwl:hasSynonym, the longer an IAO_0000115 definition, each wrapped
// in a reified owl:Axiom carrying oboInOwl:hasDbXref with the NCIT code,
// and the migrated source triples are dropped. Graphs are immutable, so the
// result is a new graph; the input is untouched.
package enrich
