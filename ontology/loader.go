package ontology

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/uthealth/hpvco/fetch"
	"github.com/uthealth/hpvco/rdfxml"
	"github.com/uthealth/hpvco/validate"
)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFetcher sets the document fetcher.
func WithFetcher(f *fetch.Fetcher) LoaderOption {
	return func(l *Loader) { l.fetcher = f }
}

// WithValidator sets the schema validator.
func WithValidator(v *validate.Validator) LoaderOption {
	return func(l *Loader) { l.validator = v }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// Loader runs the load lifecycle: retrieve, parse, validate, wrap.
// Loading is one blocking pass with no internal parallelism; the document
// is small enough that concurrency would buy nothing.
type Loader struct {
	fetcher   *fetch.Fetcher
	validator *validate.Validator
	logger    *slog.Logger
}

// NewLoader returns a Loader with default fetcher and validator.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher:   fetch.New(),
		validator: validate.New(),
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// LoadURL fetches the document from its permanent URL and loads it.
// Retrieval failures are *fetch.Error; malformed documents are
// *rdfxml.ParseError. Validator findings never fail the load.
func (l *Loader) LoadURL(ctx context.Context, url string) (*Ontology, error) {
	start := time.Now()
	data, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	o, err := l.LoadBytes(data, url)
	if err != nil {
		return nil, err
	}
	l.logger.Info("Loaded ontology",
		"url", url,
		"triples", o.Graph().Len(),
		"violations", len(o.Violations()),
		"elapsed", time.Since(start))
	return o, nil
}

// LoadFile loads the document from a local file.
func (l *Loader) LoadFile(path string) (*Ontology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ontology file: %w", err)
	}
	return l.LoadBytes(data, path)
}

// LoadBytes parses, validates, and wraps an in-memory document. The source
// string is recorded on the Document for provenance only.
func (l *Loader) LoadBytes(data []byte, source string) (*Ontology, error) {
	g, err := rdfxml.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	violations := l.validator.Validate(g)
	for _, v := range violations {
		l.logger.Warn("Schema violation", "code", v.Code, "iri", v.IRI, "detail", v.Message)
	}

	doc := Document{
		Format:    FormatRDFXML,
		SourceURL: source,
		Retrieved: time.Now(),
	}
	return FromGraph(g, doc, violations), nil
}
