package validate

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/obo"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

// Violation codes.
const (
	// CodeUndeclaredReference marks an IRI used as a class or property that
	// is neither declared in the graph nor in a recognized external namespace.
	CodeUndeclaredReference = "undeclared-reference"

	// CodeMalformedIRI marks a relative or unparseable IRI.
	CodeMalformedIRI = "malformed-iri"

	// CodeUnsupportedConstruct marks an OWL vocabulary term outside the
	// supported profile subset.
	CodeUnsupportedConstruct = "unsupported-construct"

	// CodeLiteralSubject marks a literal in subject position of an axiom.
	CodeLiteralSubject = "literal-subject"
)

// Violation is a single structural finding. Violations never abort a load;
// they are surfaced for the caller to weigh.
type Violation struct {
	Code    string `json:"code"`
	IRI     string `json:"iri,omitempty"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.IRI != "" {
		return fmt.Sprintf("%s: %s (%s)", v.Code, v.Message, v.IRI)
	}
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// Option configures a Validator.
type Option func(*Validator)

// WithExternalNamespaces adds namespace prefixes whose terms never require
// local declarations, on top of the standard set.
func WithExternalNamespaces(prefixes ...string) Option {
	return func(v *Validator) {
		v.external = append(v.external, prefixes...)
	}
}

// Validator checks a graph against the structural rules of the declared
// profile. A zero-option validator recognizes the W3C core vocabularies,
// Dublin Core, SKOS, and the OBO namespaces (which cover NCIT PURLs).
type Validator struct {
	external []string
}

// New returns a Validator with the standard external namespaces plus any
// configured extras.
func New(opts ...Option) *Validator {
	v := &Validator{
		external: []string{
			w3c.RDFNamespace,
			w3c.RDFSNamespace,
			w3c.OWLNamespace,
			w3c.XSDNamespace,
			w3c.DCNamespace,
			w3c.SKOSNamespace,
			obo.Namespace,
			obo.OboInOwlNamespace,
		},
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// declarationTypes are the rdf:type objects that declare an entity.
var declarationTypes = []string{
	w3c.OWLOntology,
	w3c.OWLClass,
	w3c.OWLObjectProperty,
	w3c.OWLDatatypeProperty,
	w3c.OWLAnnotationProperty,
	w3c.OWLNamedIndividual,
	w3c.OWLAxiom,
	w3c.OWLRestriction,
	w3c.RDFSClass,
	w3c.RDFSDatatype,
}

// classAxiomPredicates reference classes in object position.
var classAxiomPredicates = []string{
	w3c.RDFSSubClassOf,
	w3c.OWLEquivalentClass,
	w3c.OWLDisjointWith,
	w3c.RDFSDomain,
	w3c.RDFSRange,
	w3c.OWLSomeValuesFrom,
	w3c.OWLAllValuesFrom,
}

// supportedOWLTerms is the OWL vocabulary subset the declared profile uses.
// Any other owl: term appearing as a predicate or type is flagged.
var supportedOWLTerms = map[string]bool{
	w3c.OWLOntology:           true,
	w3c.OWLClass:              true,
	w3c.OWLObjectProperty:     true,
	w3c.OWLDatatypeProperty:   true,
	w3c.OWLAnnotationProperty: true,
	w3c.OWLNamedIndividual:    true,
	w3c.OWLThing:              true,
	w3c.OWLAxiom:              true,
	w3c.OWLRestriction:        true,
	w3c.OWLAnnotatedSource:    true,
	w3c.OWLAnnotatedProperty:  true,
	w3c.OWLAnnotatedTarget:    true,
	w3c.OWLEquivalentClass:    true,
	w3c.OWLDisjointWith:       true,
	w3c.OWLOnProperty:         true,
	w3c.OWLSomeValuesFrom:     true,
	w3c.OWLAllValuesFrom:      true,
	w3c.OWLVersionInfo:        true,
	w3c.OWLVersionIRI:         true,
	w3c.OWLImports:            true,
}

// Validate checks the graph and returns all findings. An empty result means
// the graph is structurally valid. Results are deterministic: one violation
// per offending IRI, sorted by code then IRI.
func (v *Validator) Validate(g *rdf.Graph) []Violation {
	declared := v.declaredEntities(g)

	type finding struct{ code, iri, msg string }
	byKey := make(map[string]finding)
	record := func(code, iri, msg string) {
		key := code + "\x00" + iri
		if _, ok := byKey[key]; !ok {
			byKey[key] = finding{code, iri, msg}
		}
	}

	for _, t := range g.Triples() {
		// IRI well-formedness for every named node in the triple.
		for _, term := range []rdf.Term{t.Subject, rdf.IRI(t.Predicate), t.Object} {
			if term.IsIRI() && !wellFormedIRI(term.Value) {
				record(CodeMalformedIRI, term.Value, "IRI is not absolute and well-formed")
			}
		}

		// Predicates must be declared properties or external terms.
		if !v.isExternal(t.Predicate) && !declared[t.Predicate] {
			record(CodeUndeclaredReference, t.Predicate,
				"property is not declared and not in a recognized external namespace")
		}

		// Profile check: owl: terms outside the supported subset.
		if strings.HasPrefix(t.Predicate, w3c.OWLNamespace) && !supportedOWLTerms[t.Predicate] {
			record(CodeUnsupportedConstruct, t.Predicate,
				"OWL construct is outside the declared profile")
		}
		if t.Predicate == w3c.RDFType && t.Object.IsIRI() &&
			strings.HasPrefix(t.Object.Value, w3c.OWLNamespace) && !supportedOWLTerms[t.Object.Value] {
			record(CodeUnsupportedConstruct, t.Object.Value,
				"OWL construct is outside the declared profile")
		}

		// Class axioms: both ends must resolve, subject must not be a literal.
		if isClassAxiomPredicate(t.Predicate) {
			if t.Subject.IsLiteral() {
				record(CodeLiteralSubject, "",
					fmt.Sprintf("literal subject in %s axiom", t.Predicate))
			}
			if t.Subject.IsIRI() && !v.isExternal(t.Subject.Value) && !declared[t.Subject.Value] {
				record(CodeUndeclaredReference, t.Subject.Value,
					"class is not declared and not in a recognized external namespace")
			}
			if t.Object.IsIRI() && !v.isExternal(t.Object.Value) && !declared[t.Object.Value] {
				record(CodeUndeclaredReference, t.Object.Value,
					"class is not declared and not in a recognized external namespace")
			}
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Violation, 0, len(keys))
	for _, k := range keys {
		f := byKey[k]
		out = append(out, Violation{Code: f.code, IRI: f.iri, Message: f.msg})
	}
	return out
}

// declaredEntities collects every IRI declared via rdf:type in the graph.
func (v *Validator) declaredEntities(g *rdf.Graph) map[string]bool {
	declared := make(map[string]bool)
	for _, t := range g.PredicateTriples(w3c.RDFType) {
		if !t.Subject.IsIRI() {
			continue
		}
		for _, dt := range declarationTypes {
			if t.Object.IsIRI() && t.Object.Value == dt {
				declared[t.Subject.Value] = true
				break
			}
		}
	}
	return declared
}

// isExternal reports whether the IRI falls under a recognized external
// namespace.
func (v *Validator) isExternal(iri string) bool {
	for _, ns := range v.external {
		if strings.HasPrefix(iri, ns) {
			return true
		}
	}
	return false
}

func isClassAxiomPredicate(p string) bool {
	for _, cp := range classAxiomPredicates {
		if p == cp {
			return true
		}
	}
	return false
}

// wellFormedIRI reports whether the IRI is absolute and free of spaces.
func wellFormedIRI(iri string) bool {
	if strings.ContainsAny(iri, " \t\n\r") {
		return false
	}
	u, err := url.Parse(iri)
	if err != nil {
		return false
	}
	return u.IsAbs()
}
