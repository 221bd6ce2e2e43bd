// Package obo provides IRI constants for the OBO Foundry vocabularies the
// HPVCO document draws on: the obo PURL namespace, the IAO definition
// property, and the oboInOwl annotation vocabulary used for synonyms and
// database cross-references.
package obo
