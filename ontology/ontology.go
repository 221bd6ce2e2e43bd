package ontology

import (
	"sort"
	"strings"
	"time"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/validate"
	"github.com/uthealth/hpvco/vocabulary/ncit"
	"github.com/uthealth/hpvco/vocabulary/obo"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

// Class is the derived view of one ontology class.
type Class struct {
	IRI        string   `json:"iri"`
	Label      string   `json:"label,omitempty"`
	Definition string   `json:"definition,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Comments   []string `json:"comments,omitempty"`
	NCITRefs   []string `json:"ncit_refs,omitempty"`
	Parents    []string `json:"parents,omitempty"`
}

// PropertyKind distinguishes the three OWL property declarations.
type PropertyKind string

const (
	PropertyObject     PropertyKind = "object"
	PropertyDatatype   PropertyKind = "datatype"
	PropertyAnnotation PropertyKind = "annotation"
)

// Property is the derived view of one declared property.
type Property struct {
	IRI    string       `json:"iri"`
	Kind   PropertyKind `json:"kind"`
	Label  string       `json:"label,omitempty"`
	Domain string       `json:"domain,omitempty"`
	Range  string       `json:"range,omitempty"`
}

// AxiomKind classifies the logical axioms the facade exposes.
type AxiomKind string

const (
	AxiomSubClass    AxiomKind = "subclass"
	AxiomEquivalence AxiomKind = "equivalence"
	AxiomDisjoint    AxiomKind = "disjointness"
)

// Axiom is a logical statement relating two named classes. Axioms involving
// anonymous class expressions stay in the graph and are reachable through
// Graph(); the facade view covers the named-to-named statements.
type Axiom struct {
	Kind    AxiomKind `json:"kind"`
	Subject string    `json:"subject"`
	Object  string    `json:"object"`
}

// Ontology is the immutable, queryable view over one loaded document.
type Ontology struct {
	doc        Document
	graph      *rdf.Graph
	classes    map[string]*Class
	properties map[string]*Property
	byLabel    map[string][]string
	axioms     []Axiom
	violations []validate.Violation
}

// FromGraph derives the facade views from a loaded graph. The violations
// list is whatever the validator reported for this graph; it may be nil.
func FromGraph(g *rdf.Graph, doc Document, violations []validate.Violation) *Ontology {
	o := &Ontology{
		doc:        doc,
		graph:      g,
		classes:    make(map[string]*Class),
		properties: make(map[string]*Property),
		byLabel:    make(map[string][]string),
		violations: violations,
	}
	o.deriveHeader()
	o.deriveClasses()
	o.deriveProperties()
	o.deriveAxioms()
	return o
}

// deriveHeader fills in the document IRI and version from the owl:Ontology
// header when the caller left them empty.
func (o *Ontology) deriveHeader() {
	obj := rdf.IRI(w3c.OWLOntology)
	for _, s := range o.graph.Subjects(w3c.RDFType, &obj) {
		if !s.IsIRI() {
			continue
		}
		if o.doc.IRI == "" {
			o.doc.IRI = s.Value
		}
		if o.doc.Version == "" {
			if v, ok := o.graph.Object(s, w3c.OWLVersionInfo); ok && v.IsLiteral() {
				o.doc.Version = v.Value
			}
		}
		break
	}
	if o.doc.Retrieved.IsZero() {
		o.doc.Retrieved = time.Now()
	}
}

func (o *Ontology) deriveClasses() {
	obj := rdf.IRI(w3c.OWLClass)
	for _, s := range o.graph.Subjects(w3c.RDFType, &obj) {
		if !s.IsIRI() {
			continue
		}
		c := &Class{IRI: s.Value}
		c.Label = o.firstLiteral(s, w3c.RDFSLabel, w3c.SKOSPrefLabel)
		c.Definition = o.firstLiteral(s, obo.IAODefinition, w3c.SKOSDefinition)
		c.Synonyms = o.allLiterals(s, obo.HasSynonym, obo.HasExactSynonym, w3c.SKOSAltLabel)
		c.Comments = o.allLiterals(s, w3c.RDFSComment)
		c.Parents = o.iriObjects(s, w3c.RDFSSubClassOf)
		c.NCITRefs = o.ncitRefs(s)

		o.classes[c.IRI] = c
		o.indexLabel(c.Label, c.IRI)
		for _, syn := range c.Synonyms {
			o.indexLabel(syn, c.IRI)
		}
	}
}

func (o *Ontology) deriveProperties() {
	kinds := []struct {
		typeIRI string
		kind    PropertyKind
	}{
		{w3c.OWLObjectProperty, PropertyObject},
		{w3c.OWLDatatypeProperty, PropertyDatatype},
		{w3c.OWLAnnotationProperty, PropertyAnnotation},
	}
	for _, k := range kinds {
		obj := rdf.IRI(k.typeIRI)
		for _, s := range o.graph.Subjects(w3c.RDFType, &obj) {
			if !s.IsIRI() {
				continue
			}
			p := &Property{IRI: s.Value, Kind: k.kind}
			p.Label = o.firstLiteral(s, w3c.RDFSLabel)
			if d, ok := o.graph.Object(s, w3c.RDFSDomain); ok && d.IsIRI() {
				p.Domain = d.Value
			}
			if r, ok := o.graph.Object(s, w3c.RDFSRange); ok && r.IsIRI() {
				p.Range = r.Value
			}
			o.properties[p.IRI] = p
			o.indexLabel(p.Label, p.IRI)
		}
	}
}

func (o *Ontology) deriveAxioms() {
	preds := []struct {
		iri  string
		kind AxiomKind
	}{
		{w3c.RDFSSubClassOf, AxiomSubClass},
		{w3c.OWLEquivalentClass, AxiomEquivalence},
		{w3c.OWLDisjointWith, AxiomDisjoint},
	}
	for _, p := range preds {
		for _, t := range o.graph.PredicateTriples(p.iri) {
			if t.Subject.IsIRI() && t.Object.IsIRI() {
				o.axioms = append(o.axioms, Axiom{Kind: p.kind, Subject: t.Subject.Value, Object: t.Object.Value})
			}
		}
	}
}

// ncitRefs gathers NCIT codes from direct cross-references and from reified
// axiom annotations whose annotatedSource is the class.
func (o *Ontology) ncitRefs(s rdf.Term) []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(raw string) {
		code := ncit.Normalize(raw)
		if code != "" && !seen[code] {
			seen[code] = true
			refs = append(refs, code)
		}
	}

	for _, obj := range o.graph.Objects(s, obo.HasDbXref) {
		if obj.IsLiteral() {
			add(obj.Value)
		}
	}
	for _, obj := range o.graph.Objects(s, w3c.RDFSSeeAlso) {
		if obj.IsLiteral() {
			add(obj.Value)
		}
	}
	for _, ax := range o.graph.Subjects(w3c.OWLAnnotatedSource, &s) {
		for _, obj := range o.graph.Objects(ax, obo.HasDbXref) {
			if obj.IsLiteral() {
				add(obj.Value)
			}
		}
	}
	sort.Strings(refs)
	return refs
}

func (o *Ontology) firstLiteral(s rdf.Term, preds ...string) string {
	for _, p := range preds {
		for _, obj := range o.graph.Objects(s, p) {
			if obj.IsLiteral() {
				return obj.Value
			}
		}
	}
	return ""
}

func (o *Ontology) allLiterals(s rdf.Term, preds ...string) []string {
	var out []string
	for _, p := range preds {
		for _, obj := range o.graph.Objects(s, p) {
			if obj.IsLiteral() {
				out = append(out, obj.Value)
			}
		}
	}
	return out
}

func (o *Ontology) iriObjects(s rdf.Term, pred string) []string {
	var out []string
	for _, obj := range o.graph.Objects(s, pred) {
		if obj.IsIRI() {
			out = append(out, obj.Value)
		}
	}
	return out
}

func (o *Ontology) indexLabel(label, iri string) {
	if label == "" {
		return
	}
	key := strings.ToLower(label)
	for _, existing := range o.byLabel[key] {
		if existing == iri {
			return
		}
	}
	o.byLabel[key] = append(o.byLabel[key], iri)
}

// Document returns the document identity.
func (o *Ontology) Document() Document { return o.doc }

// Graph returns the underlying triple graph.
func (o *Ontology) Graph() *rdf.Graph { return o.graph }

// Violations returns the validator findings recorded at load time.
func (o *Ontology) Violations() []validate.Violation {
	out := make([]validate.Violation, len(o.violations))
	copy(out, o.violations)
	return out
}

// Class looks up a class by IRI. Returns rdf.ErrNotFound when absent.
func (o *Ontology) Class(iri string) (*Class, error) {
	c, ok := o.classes[iri]
	if !ok {
		return nil, rdf.ErrNotFound
	}
	return c, nil
}

// Property looks up a declared property by IRI. Returns rdf.ErrNotFound
// when absent.
func (o *Ontology) Property(iri string) (*Property, error) {
	p, ok := o.properties[iri]
	if !ok {
		return nil, rdf.ErrNotFound
	}
	return p, nil
}

// ByLabel looks up entities by label or synonym, case-insensitively.
// The result lists class matches first, then properties, each sorted by
// IRI, so repeated queries return identical results. Returns
// rdf.ErrNotFound when nothing matches.
func (o *Ontology) ByLabel(label string) ([]string, error) {
	iris, ok := o.byLabel[strings.ToLower(label)]
	if !ok || len(iris) == 0 {
		return nil, rdf.ErrNotFound
	}
	var cls, props []string
	for _, iri := range iris {
		if _, isClass := o.classes[iri]; isClass {
			cls = append(cls, iri)
		} else {
			props = append(props, iri)
		}
	}
	sort.Strings(cls)
	sort.Strings(props)
	return append(cls, props...), nil
}

// Classes returns every class sorted by IRI.
func (o *Ontology) Classes() []*Class {
	out := make([]*Class, 0, len(o.classes))
	for _, c := range o.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IRI < out[j].IRI })
	return out
}

// Properties returns every declared property sorted by IRI.
func (o *Ontology) Properties() []*Property {
	out := make([]*Property, 0, len(o.properties))
	for _, p := range o.properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IRI < out[j].IRI })
	return out
}

// Axioms returns the named-class axioms in graph order.
func (o *Ontology) Axioms() []Axiom {
	out := make([]Axiom, len(o.axioms))
	copy(out, o.axioms)
	return out
}

// Stats summarizes the loaded ontology.
func (o *Ontology) Stats() Stats {
	xrefs := 0
	for _, c := range o.classes {
		xrefs += len(c.NCITRefs)
	}
	return Stats{
		Triples:    o.graph.Len(),
		Classes:    len(o.classes),
		Properties: len(o.properties),
		Axioms:     len(o.axioms),
		NCITXrefs:  xrefs,
		Violations: len(o.violations),
	}
}
