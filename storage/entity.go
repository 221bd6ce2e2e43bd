// Package storage provides ontology snapshot storage using NATS KV.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/uthealth/hpvco/ontology"
	"github.com/uthealth/hpvco/validate"
)

// EntityType represents the type of entity stored in KV.
type EntityType string

const (
	EntityTypeDocument EntityType = "document"
	EntityTypeReport   EntityType = "report"
)

// Bucket names for each entity type.
const (
	BucketDocuments = "HPVCO_DOCUMENTS"
	BucketReports   = "HPVCO_REPORTS"
)

// EntityID represents a typed entity identifier.
type EntityID struct {
	Type EntityType
	ID   string
}

// String returns the string representation of the entity ID.
func (e EntityID) String() string {
	return fmt.Sprintf("%s:%s", e.Type, e.ID)
}

// ParseEntityID parses an entity ID string into its components.
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return EntityID{}, fmt.Errorf("invalid entity ID format: %s", s)
	}
	entityType := EntityType(parts[0])
	switch entityType {
	case EntityTypeDocument, EntityTypeReport:
		return EntityID{Type: entityType, ID: parts[1]}, nil
	default:
		return EntityID{}, fmt.Errorf("unknown entity type: %s", parts[0])
	}
}

// NewEntityID generates a new unique entity ID for the given type.
func NewEntityID(t EntityType) EntityID {
	return EntityID{
		Type: t,
		ID:   uuid.New().String(),
	}
}

// Document records one retrieved ontology document snapshot.
type Document struct {
	ID          string    `json:"id"`
	OntologyIRI string    `json:"ontology_iri"`
	Version     string    `json:"version"`
	SourceURL   string    `json:"source_url"`
	Bytes       int       `json:"bytes"`
	Retrieved   time.Time `json:"retrieved"`
	CreatedAt   time.Time `json:"created_at"`
}

// Report records the outcome of loading and validating one document.
type Report struct {
	ID         string               `json:"id"`
	DocumentID string               `json:"document_id"`
	Stats      ontology.Stats       `json:"stats"`
	Violations []validate.Violation `json:"violations,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// Clean reports whether the validator found nothing.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}

// Store provides entity storage operations backed by NATS KV.
type Store struct {
	documents jetstream.KeyValue
	reports   jetstream.KeyValue
}

// NewStore creates a new Store with the given JetStream context.
// It creates the necessary KV buckets if they don't exist.
func NewStore(ctx context.Context, js jetstream.JetStream) (*Store, error) {
	documents, err := getOrCreateBucket(ctx, js, BucketDocuments)
	if err != nil {
		return nil, fmt.Errorf("create documents bucket: %w", err)
	}

	reports, err := getOrCreateBucket(ctx, js, BucketReports)
	if err != nil {
		return nil, fmt.Errorf("create reports bucket: %w", err)
	}

	return &Store{
		documents: documents,
		reports:   reports,
	}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("HPVCO %s storage", strings.ToLower(name)),
		History:     5, // Keep last 5 revisions
	})
}

// CreateDocument records a new document snapshot and returns its ID.
func (s *Store) CreateDocument(ctx context.Context, d *Document) (EntityID, error) {
	id := NewEntityID(EntityTypeDocument)
	d.ID = id.String()
	d.CreatedAt = time.Now()

	data, err := json.Marshal(d)
	if err != nil {
		return EntityID{}, fmt.Errorf("marshal document: %w", err)
	}

	if _, err := s.documents.Create(ctx, id.ID, data); err != nil {
		return EntityID{}, fmt.Errorf("store document: %w", err)
	}

	return id, nil
}

// GetDocument retrieves a document snapshot by ID.
func (s *Store) GetDocument(ctx context.Context, id EntityID) (*Document, error) {
	if id.Type != EntityTypeDocument {
		return nil, fmt.Errorf("invalid entity type: expected document, got %s", id.Type)
	}

	entry, err := s.documents.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	var d Document
	if err := json.Unmarshal(entry.Value(), &d); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	return &d, nil
}

// ListDocuments returns all recorded document snapshots.
func (s *Store) ListDocuments(ctx context.Context) ([]*Document, error) {
	keys, err := s.documents.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list document keys: %w", err)
	}

	documents := make([]*Document, 0, len(keys))
	for _, key := range keys {
		entry, err := s.documents.Get(ctx, key)
		if err != nil {
			continue // Skip entries that fail to load
		}
		var d Document
		if err := json.Unmarshal(entry.Value(), &d); err != nil {
			continue
		}
		documents = append(documents, &d)
	}

	return documents, nil
}

// LatestDocument returns the most recently retrieved snapshot for an
// ontology IRI.
func (s *Store) LatestDocument(ctx context.Context, ontologyIRI string) (*Document, error) {
	documents, err := s.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	var latest *Document
	for _, d := range documents {
		if d.OntologyIRI != ontologyIRI {
			continue
		}
		if latest == nil || d.Retrieved.After(latest.Retrieved) {
			latest = d
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

// CreateReport records a new load report and returns its ID.
func (s *Store) CreateReport(ctx context.Context, r *Report) (EntityID, error) {
	id := NewEntityID(EntityTypeReport)
	r.ID = id.String()
	r.CreatedAt = time.Now()

	data, err := json.Marshal(r)
	if err != nil {
		return EntityID{}, fmt.Errorf("marshal report: %w", err)
	}

	if _, err := s.reports.Create(ctx, id.ID, data); err != nil {
		return EntityID{}, fmt.Errorf("store report: %w", err)
	}

	return id, nil
}

// GetReport retrieves a report by ID.
func (s *Store) GetReport(ctx context.Context, id EntityID) (*Report, error) {
	if id.Type != EntityTypeReport {
		return nil, fmt.Errorf("invalid entity type: expected report, got %s", id.Type)
	}

	entry, err := s.reports.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}

	var r Report
	if err := json.Unmarshal(entry.Value(), &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	return &r, nil
}

// GetReportByDocument retrieves the report for a given document snapshot.
func (s *Store) GetReportByDocument(ctx context.Context, docID EntityID) (*Report, error) {
	keys, err := s.reports.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("list report keys: %w", err)
	}

	for _, key := range keys {
		entry, err := s.reports.Get(ctx, key)
		if err != nil {
			continue
		}
		var r Report
		if err := json.Unmarshal(entry.Value(), &r); err != nil {
			continue
		}
		if r.DocumentID == docID.String() {
			return &r, nil
		}
	}

	return nil, ErrNotFound
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key not found")
}
