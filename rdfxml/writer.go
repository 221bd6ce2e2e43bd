package rdfxml

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/obo"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

// localPattern matches an IRI suffix usable as an XML element local name.
var localPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// wellKnownPrefixes maps standard namespaces to their customary prefixes.
func wellKnownPrefixes() map[string]string {
	return map[string]string{
		w3c.RDFNamespace:      "rdf",
		w3c.RDFSNamespace:     "rdfs",
		w3c.OWLNamespace:      "owl",
		w3c.XSDNamespace:      "xsd",
		w3c.DCNamespace:       "dc",
		w3c.SKOSNamespace:     "skos",
		obo.Namespace:         "obo",
		obo.OboInOwlNamespace: "oboInOwl",
	}
}

// Write serializes the graph as RDF/XML. Triples are grouped by subject in
// first-appearance order, so output is deterministic for a given graph.
func Write(w io.Writer, g *rdf.Graph) error {
	triples := g.Triples()

	// Group triples by subject, preserving first-appearance order.
	var order []rdf.Term
	grouped := make(map[string][]rdf.Triple)
	for _, t := range triples {
		k := t.Subject.String()
		if _, ok := grouped[k]; !ok {
			order = append(order, t.Subject)
		}
		grouped[k] = append(grouped[k], t)
	}

	prefixes, err := collectPrefixes(triples)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString("<rdf:RDF")

	nss := make([]string, 0, len(prefixes))
	for ns := range prefixes {
		nss = append(nss, ns)
	}
	sort.Slice(nss, func(i, j int) bool { return prefixes[nss[i]] < prefixes[nss[j]] })
	for _, ns := range nss {
		sb.WriteString("\n    xmlns:" + prefixes[ns] + `="` + escapeAttr(ns) + `"`)
	}
	sb.WriteString(">\n")

	for _, subj := range order {
		if err := writeSubject(&sb, subj, grouped[subj.String()], prefixes); err != nil {
			return err
		}
	}

	sb.WriteString("</rdf:RDF>\n")
	_, err = io.WriteString(w, sb.String())
	return err
}

// collectPrefixes assigns a prefix to every namespace used in predicate
// position, starting from the well-known table.
func collectPrefixes(triples []rdf.Triple) (map[string]string, error) {
	prefixes := wellKnownPrefixes()
	next := 1
	for _, t := range triples {
		ns, _, err := splitIRI(t.Predicate)
		if err != nil {
			return nil, err
		}
		if _, ok := prefixes[ns]; !ok {
			prefixes[ns] = fmt.Sprintf("ns%d", next)
			next++
		}
	}
	return prefixes, nil
}

func writeSubject(sb *strings.Builder, subj rdf.Term, triples []rdf.Triple, prefixes map[string]string) error {
	if subj.IsBlank() {
		sb.WriteString(`  <rdf:Description rdf:nodeID="` + escapeAttr(subj.Value) + "\">\n")
	} else {
		sb.WriteString(`  <rdf:Description rdf:about="` + escapeAttr(subj.Value) + "\">\n")
	}

	for _, t := range triples {
		ns, local, err := splitIRI(t.Predicate)
		if err != nil {
			return err
		}
		qname := prefixes[ns] + ":" + local

		o := t.Object
		switch {
		case o.IsIRI():
			sb.WriteString("    <" + qname + ` rdf:resource="` + escapeAttr(o.Value) + "\"/>\n")
		case o.IsBlank():
			sb.WriteString("    <" + qname + ` rdf:nodeID="` + escapeAttr(o.Value) + "\"/>\n")
		default:
			sb.WriteString("    <" + qname)
			if o.Lang != "" {
				sb.WriteString(` xml:lang="` + escapeAttr(o.Lang) + `"`)
			}
			if o.Datatype != "" {
				sb.WriteString(` rdf:datatype="` + escapeAttr(o.Datatype) + `"`)
			}
			sb.WriteString(">" + escapeText(o.Value) + "</" + qname + ">\n")
		}
	}

	sb.WriteString("  </rdf:Description>\n")
	return nil
}

// splitIRI splits an IRI into namespace and XML-safe local name at the last
// '#' or '/'. IRIs whose suffix cannot form an element name are rejected.
func splitIRI(iri string) (ns, local string, err error) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 || idx == len(iri)-1 {
		return "", "", fmt.Errorf("rdfxml: cannot derive QName from predicate %q", iri)
	}
	ns, local = iri[:idx+1], iri[idx+1:]
	if !localPattern.MatchString(local) {
		return "", "", fmt.Errorf("rdfxml: cannot derive QName from predicate %q", iri)
	}
	return ns, local, nil
}

// escapeText escapes literal element content.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeAttr escapes double-quoted attribute values.
func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
