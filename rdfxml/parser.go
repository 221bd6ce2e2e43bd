package rdfxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/vocabulary/w3c"
)

// rdfNS is the XML namespace of the RDF syntax vocabulary.
const rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// xmlNS is the predeclared xml: namespace.
const xmlNS = "http://www.w3.org/XML/1998/namespace"

// ParseError reports a document that is not valid RDF/XML. Offset is the
// byte offset of the offending token where the decoder could provide one.
type ParseError struct {
	Offset int64
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rdfxml: parse error at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("rdfxml: parse error at offset %d: %s", e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads an RDF/XML document and returns the triple graph.
// The returned graph is immutable and safe for concurrent readers.
func Parse(r io.Reader) (*rdf.Graph, error) {
	p := &parser{
		dec:     xml.NewDecoder(r),
		builder: rdf.NewBuilder(),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.builder.Graph(), nil
}

// ParseBytes parses an in-memory RDF/XML document.
func ParseBytes(data []byte) (*rdf.Graph, error) {
	return Parse(strings.NewReader(string(data)))
}

type parser struct {
	dec     *xml.Decoder
	builder *rdf.Builder
	blankN  int
}

// run locates the document root and parses every node element beneath it.
func (p *parser) run() error {
	root, err := p.nextStart()
	if err != nil {
		return err
	}
	if root == nil {
		return p.errf("document has no root element")
	}

	base, lang, err := p.scope(*root, nil, "")
	if err != nil {
		return err
	}

	if root.Name.Space == rdfNS && root.Name.Local == "RDF" {
		return p.parseNodeElements(root.Name, base, lang)
	}
	// A document may consist of a single node element without the envelope.
	_, err = p.parseNodeElement(*root, base, lang)
	return err
}

// nextStart skips prolog tokens and returns the first start element,
// or nil at EOF.
func (p *parser) nextStart() (*xml.StartElement, error) {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, p.wrap(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return &t, nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, p.errf("unexpected text outside root element")
			}
		}
	}
}

// parseNodeElements consumes node element children until the enclosing
// element (named by parent) closes.
func (p *parser) parseNodeElements(parent xml.Name, base *url.URL, lang string) error {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return p.wrap(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if _, err := p.parseNodeElement(t, base, lang); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name == parent {
				return nil
			}
			return p.errf("unexpected end element %s", t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.errf("unexpected text between node elements")
			}
		}
	}
}

// parseNodeElement parses one node element and returns its subject term.
func (p *parser) parseNodeElement(se xml.StartElement, base *url.URL, lang string) (rdf.Term, error) {
	base, lang, err := p.scope(se, base, lang)
	if err != nil {
		return rdf.Term{}, err
	}

	var about, id, nodeID string
	var propAttrs []xml.Attr
	for _, a := range se.Attr {
		switch {
		case a.Name.Space == rdfNS && a.Name.Local == "about":
			about = a.Value
		case a.Name.Space == rdfNS && a.Name.Local == "ID":
			id = a.Value
		case a.Name.Space == rdfNS && a.Name.Local == "nodeID":
			nodeID = a.Value
		case isReservedAttr(a.Name):
			// xmlns declarations, xml:lang, xml:base handled elsewhere
		case a.Name.Space == "":
			return rdf.Term{}, p.errf("unqualified attribute %q on node element", a.Name.Local)
		default:
			propAttrs = append(propAttrs, a)
		}
	}

	var subject rdf.Term
	switch {
	case about != "":
		subject = rdf.IRI(resolve(base, about))
	case id != "":
		subject = rdf.IRI(resolve(base, "#"+id))
	case nodeID != "":
		subject = rdf.Blank(nodeID)
	default:
		subject = p.freshBlank()
	}

	// A typed node element asserts rdf:type from its own name.
	if !(se.Name.Space == rdfNS && se.Name.Local == "Description") {
		if se.Name.Space == "" {
			return rdf.Term{}, p.errf("unqualified node element %q", se.Name.Local)
		}
		p.builder.Add(rdf.Triple{
			Subject:   subject,
			Predicate: w3c.RDFType,
			Object:    rdf.IRI(se.Name.Space + se.Name.Local),
		})
	}

	// Property attributes abbreviate literal-valued statements.
	for _, a := range propAttrs {
		p.builder.Add(rdf.Triple{
			Subject:   subject,
			Predicate: a.Name.Space + a.Name.Local,
			Object:    literal(a.Value, lang, ""),
		})
	}

	if err := p.parsePropertyElements(subject, se.Name, base, lang); err != nil {
		return rdf.Term{}, err
	}
	return subject, nil
}

// parsePropertyElements consumes property element children of subject until
// the node element (named by parent) closes.
func (p *parser) parsePropertyElements(subject rdf.Term, parent xml.Name, base *url.URL, lang string) error {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return p.wrap(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.parsePropertyElement(subject, t, base, lang); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name == parent {
				return nil
			}
			return p.errf("unexpected end element %s", t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.errf("unexpected text inside node element")
			}
		}
	}
}

// parsePropertyElement parses one property element of subject.
func (p *parser) parsePropertyElement(subject rdf.Term, se xml.StartElement, base *url.URL, lang string) error {
	if se.Name.Space == "" {
		return p.errf("unqualified property element %q", se.Name.Local)
	}
	predicate := se.Name.Space + se.Name.Local

	base, lang, err := p.scope(se, base, lang)
	if err != nil {
		return err
	}

	var resource, nodeID, datatype, parseType string
	for _, a := range se.Attr {
		switch {
		case a.Name.Space == rdfNS && a.Name.Local == "resource":
			resource = a.Value
		case a.Name.Space == rdfNS && a.Name.Local == "nodeID":
			nodeID = a.Value
		case a.Name.Space == rdfNS && a.Name.Local == "datatype":
			datatype = a.Value
		case a.Name.Space == rdfNS && a.Name.Local == "parseType":
			parseType = a.Value
		case isReservedAttr(a.Name):
		default:
			return p.errf("unsupported attribute %q on property element %q", a.Name.Local, se.Name.Local)
		}
	}

	switch {
	case parseType == "Resource":
		// Implicit blank node whose property elements follow inline.
		inner := p.freshBlank()
		p.builder.Add(rdf.Triple{Subject: subject, Predicate: predicate, Object: inner})
		return p.parsePropertyElements(inner, se.Name, base, lang)

	case parseType != "":
		return p.errf("unsupported rdf:parseType %q", parseType)

	case resource != "":
		if err := p.consumeEmpty(se.Name); err != nil {
			return err
		}
		p.builder.Add(rdf.Triple{Subject: subject, Predicate: predicate, Object: rdf.IRI(resolve(base, resource))})
		return nil

	case nodeID != "":
		if err := p.consumeEmpty(se.Name); err != nil {
			return err
		}
		p.builder.Add(rdf.Triple{Subject: subject, Predicate: predicate, Object: rdf.Blank(nodeID)})
		return nil
	}

	// Literal content or a single nested node element.
	var text strings.Builder
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return p.wrap(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			if strings.TrimSpace(text.String()) != "" {
				return p.errf("mixed literal and element content in property %q", se.Name.Local)
			}
			object, err := p.parseNodeElement(t, base, lang)
			if err != nil {
				return err
			}
			p.builder.Add(rdf.Triple{Subject: subject, Predicate: predicate, Object: object})
			return p.consumeEmpty(se.Name)
		case xml.EndElement:
			if t.Name != se.Name {
				return p.errf("unexpected end element %s", t.Name.Local)
			}
			p.builder.Add(rdf.Triple{
				Subject:   subject,
				Predicate: predicate,
				Object:    literal(text.String(), lang, datatype),
			})
			return nil
		}
	}
}

// consumeEmpty reads to the end of an element that must contain nothing
// but whitespace or comments.
func (p *parser) consumeEmpty(name xml.Name) error {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return p.wrap(err)
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name == name {
				return nil
			}
			return p.errf("unexpected end element %s", t.Name.Local)
		case xml.StartElement:
			return p.errf("unexpected element %s inside empty property", t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.errf("unexpected text inside empty property")
			}
		}
	}
}

// scope applies xml:base and xml:lang attributes of an element to the
// inherited values. The decoder reports the xml prefix either literally or
// as the resolved namespace URL, so both spellings are accepted.
func (p *parser) scope(se xml.StartElement, base *url.URL, lang string) (*url.URL, string, error) {
	for _, a := range se.Attr {
		if a.Name.Space != "xml" && a.Name.Space != xmlNS {
			continue
		}
		switch a.Name.Local {
		case "base":
			u, err := url.Parse(a.Value)
			if err != nil {
				return nil, "", p.errf("invalid xml:base %q", a.Value)
			}
			base = u
		case "lang":
			lang = a.Value
		}
	}
	return base, lang, nil
}

func (p *parser) freshBlank() rdf.Term {
	p.blankN++
	return rdf.Blank(fmt.Sprintf("genid%d", p.blankN))
}

func (p *parser) errf(format string, args ...any) error {
	return &ParseError{Offset: p.dec.InputOffset(), Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) wrap(err error) error {
	if err == io.EOF {
		return &ParseError{Offset: p.dec.InputOffset(), Msg: "unexpected end of document"}
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &ParseError{Offset: p.dec.InputOffset(), Err: err}
}

// literal builds a literal term honoring rdf:datatype over xml:lang, per
// the RDF/XML grammar.
func literal(value, lang, datatype string) rdf.Term {
	if datatype != "" {
		return rdf.TypedLiteral(value, datatype)
	}
	if lang != "" {
		return rdf.LangLiteral(value, lang)
	}
	return rdf.Literal(value)
}

// resolve resolves a possibly relative IRI reference against the in-scope
// base. Without a base the reference is returned unchanged.
func resolve(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// isReservedAttr reports whether the attribute is an XML namespace
// declaration or xml:* attribute rather than a property attribute.
func isReservedAttr(n xml.Name) bool {
	return n.Space == "xmlns" || n.Local == "xmlns" || n.Space == "xml" || n.Space == xmlNS
}
