package rdf

import (
	"fmt"
	"strings"
)

// TermKind distinguishes the three RDF term kinds.
type TermKind int

const (
	// KindIRI is a named node identified by an absolute IRI.
	KindIRI TermKind = iota

	// KindBlank is an anonymous node with a document-scoped label.
	KindBlank

	// KindLiteral is a literal value with optional language tag or datatype.
	KindLiteral
)

// Term is an RDF term: IRI, blank node, or literal.
// The zero value is the IRI term with an empty IRI, which is never valid;
// construct terms through IRI, Blank, Literal, LangLiteral, or TypedLiteral.
type Term struct {
	Kind     TermKind
	Value    string // IRI, blank node label, or literal lexical form
	Lang     string // language tag, literals only
	Datatype string // datatype IRI, literals only
}

// IRI returns a named node term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Blank returns a blank node term with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// Literal returns a plain literal term.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Lang: lang}
}

// TypedLiteral returns a datatyped literal term.
func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether the term is a named node.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether the term is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// String renders the term in N-Triples form.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		s := `"` + EscapeLiteral(t.Value) + `"`
		if t.Lang != "" {
			return s + "@" + t.Lang
		}
		if t.Datatype != "" {
			return s + "^^<" + t.Datatype + ">"
		}
		return s
	}
}

// key returns a unique map key for the term.
func (t Term) key() string {
	switch t.Kind {
	case KindIRI:
		return "i:" + t.Value
	case KindBlank:
		return "b:" + t.Value
	default:
		return "l:" + t.Value + "\x00" + t.Lang + "\x00" + t.Datatype
	}
}

// EscapeLiteral escapes special characters for N-Triples and Turtle output.
func EscapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// Triple is a single (subject, predicate, object) statement.
// The predicate is always an IRI.
type Triple struct {
	Subject   Term
	Predicate string
	Object    Term
}

// String renders the triple in N-Triples form.
func (t Triple) String() string {
	return fmt.Sprintf("%s <%s> %s .", t.Subject, t.Predicate, t.Object)
}

// key returns a unique map key for the triple.
func (t Triple) key() string {
	return t.Subject.key() + "\x01" + t.Predicate + "\x01" + t.Object.key()
}
