// Package export serializes a loaded ontology graph to the common RDF
// interchange formats.
package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/rdfxml"
	"github.com/uthealth/hpvco/vocabulary/hpvco"
	"github.com/uthealth/hpvco/vocabulary/ncit"
	"github.com/uthealth/hpvco/vocabulary/obo"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"

	// FormatRDFXML produces RDF/XML (.rdf) output.
	FormatRDFXML Format = "rdfxml"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatTurtle, FormatNTriples, FormatJSONLD, FormatRDFXML}
}

// defaultPrefixes returns the standard namespace prefixes for export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":      w3c.RDFNamespace,
		"rdfs":     w3c.RDFSNamespace,
		"owl":      w3c.OWLNamespace,
		"xsd":      w3c.XSDNamespace,
		"dc":       w3c.DCNamespace,
		"skos":     w3c.SKOSNamespace,
		"obo":      obo.Namespace,
		"oboInOwl": obo.OboInOwlNamespace,
		"ncit":     ncit.Namespace,
		"hpvco":    hpvco.Namespace,
	}
}

// Serialize renders the graph in the requested format.
func Serialize(g *rdf.Graph, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return toTurtle(g), nil
	case FormatNTriples:
		return toNTriples(g), nil
	case FormatJSONLD:
		return toJSONLD(g)
	case FormatRDFXML:
		var sb strings.Builder
		if err := rdfxml.Write(&sb, g); err != nil {
			return "", err
		}
		return sb.String(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// subjectGroups returns subjects in first-appearance order with their
// triples, so every serializer walks the graph the same way.
func subjectGroups(g *rdf.Graph) ([]rdf.Term, map[string][]rdf.Triple) {
	var order []rdf.Term
	grouped := make(map[string][]rdf.Triple)
	for _, t := range g.Triples() {
		k := t.Subject.String()
		if _, ok := grouped[k]; !ok {
			order = append(order, t.Subject)
		}
		grouped[k] = append(grouped[k], t)
	}
	return order, grouped
}

// toTurtle serializes to Turtle format.
func toTurtle(g *rdf.Graph) string {
	prefixes := defaultPrefixes()
	var sb strings.Builder

	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", name, prefixes[name]))
	}
	sb.WriteString("\n")

	order, grouped := subjectGroups(g)
	for _, subj := range order {
		triples := grouped[subj.String()]
		sb.WriteString(turtleTerm(subj, prefixes) + "\n")
		for i, t := range triples {
			sb.WriteString("    " + compactIRI(t.Predicate, prefixes) + " " + turtleTerm(t.Object, prefixes))
			if i < len(triples)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// toNTriples serializes to N-Triples format, one statement per line.
func toNTriples(g *rdf.Graph) string {
	var sb strings.Builder
	for _, t := range g.Triples() {
		sb.WriteString(t.String() + "\n")
	}
	return sb.String()
}

// toJSONLD serializes to JSON-LD with the standard context.
func toJSONLD(g *rdf.Graph) (string, error) {
	order, grouped := subjectGroups(g)

	nodes := make([]map[string]any, 0, len(order))
	for _, subj := range order {
		node := map[string]any{"@id": jsonldID(subj)}
		var types []string
		values := make(map[string][]any)
		for _, t := range grouped[subj.String()] {
			if t.Predicate == w3c.RDFType && t.Object.IsIRI() {
				types = append(types, t.Object.Value)
				continue
			}
			values[t.Predicate] = append(values[t.Predicate], jsonldValue(t.Object))
		}
		if len(types) > 0 {
			node["@type"] = types
		}
		for p, vs := range values {
			node[p] = vs
		}
		nodes = append(nodes, node)
	}

	doc := map[string]any{
		"@context": defaultPrefixes(),
		"@graph":   nodes,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON-LD: %w", err)
	}
	return string(out) + "\n", nil
}

func jsonldID(t rdf.Term) string {
	if t.IsBlank() {
		return "_:" + t.Value
	}
	return t.Value
}

func jsonldValue(t rdf.Term) any {
	switch {
	case t.IsIRI(), t.IsBlank():
		return map[string]any{"@id": jsonldID(t)}
	case t.Lang != "":
		return map[string]any{"@value": t.Value, "@language": t.Lang}
	case t.Datatype != "":
		return map[string]any{"@value": t.Value, "@type": t.Datatype}
	default:
		return t.Value
	}
}

// localPattern matches an IRI suffix usable as a Turtle prefixed-name local
// part.
var localPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// compactIRI renders an IRI as a prefixed name when a known prefix covers
// it, or as an absolute IRI otherwise.
func compactIRI(iri string, prefixes map[string]string) string {
	if iri == w3c.RDFType {
		return "a"
	}
	best, bestNS := "", ""
	for name, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			best, bestNS = name, ns
		}
	}
	if best != "" {
		local := iri[len(bestNS):]
		if localPattern.MatchString(local) {
			return best + ":" + local
		}
	}
	return "<" + iri + ">"
}

// turtleTerm renders any term in Turtle syntax with prefix compaction.
func turtleTerm(t rdf.Term, prefixes map[string]string) string {
	switch {
	case t.IsIRI():
		return compactIRI(t.Value, prefixes)
	case t.IsBlank():
		return "_:" + t.Value
	default:
		s := `"` + rdf.EscapeLiteral(t.Value) + `"`
		if t.Lang != "" {
			return s + "@" + t.Lang
		}
		if t.Datatype != "" {
			return s + "^^" + compactIRI(t.Datatype, prefixes)
		}
		return s
	}
}
