// Package hpvco provides vocabulary constants for the HPV Cancer Ontology.
//
// The ontology describes HPV-related cancers, their risk factors, prevention,
// symptoms, diagnosis, treatment, and psychosocial impact, for patient-centric
// education and decision support. The published document is the authoritative
// schema; the class and property IRIs here cover the stable top-level terms
// that downstream code addresses directly.
package hpvco
