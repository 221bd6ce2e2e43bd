// Package graph provides utilities for publishing ontology entities to the
// knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/uthealth/hpvco/ontology"
	"github.com/uthealth/hpvco/vocabulary/hpvco"
)

// Subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// PublishSource identifies the loader as the triple source.
const PublishSource = "hpvco.loader"

// EntityIngestMessage is the message format for graph ingestion.
// Matches the format used by other semstreams components.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PublishClass publishes one ontology class to the knowledge graph.
func PublishClass(ctx context.Context, nc *natsclient.Client, c *ontology.Class) error {
	if nc == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	entityID := ClassEntityID(c.IRI)
	now := time.Now()

	triples := []message.Triple{
		{
			Subject:    entityID,
			Predicate:  hpvco.ClassIRI,
			Object:     c.IRI,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
	}
	if c.Label != "" {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  hpvco.ClassLabel,
			Object:     c.Label,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	if c.Definition != "" {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  hpvco.ClassDefinition,
			Object:     c.Definition,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	for _, syn := range c.Synonyms {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  hpvco.ClassSynonym,
			Object:     syn,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	for _, ref := range c.NCITRefs {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  hpvco.ClassNCITXref,
			Object:     ref,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	for _, parent := range c.Parents {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  hpvco.SubClassOf,
			Object:     ClassEntityID(parent),
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	return publishEntity(ctx, nc, EntityIngestMessage{
		ID:        entityID,
		Triples:   triples,
		UpdatedAt: now,
	})
}

// PublishDocument publishes the loaded document's identity and stats.
func PublishDocument(ctx context.Context, nc *natsclient.Client, o *ontology.Ontology) error {
	if nc == nil {
		return nil
	}

	doc := o.Document()
	entityID := DocumentEntityID(doc.IRI)
	now := time.Now()

	triples := []message.Triple{
		{
			Subject:    entityID,
			Predicate:  hpvco.DocumentIRI,
			Object:     doc.IRI,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  hpvco.DocumentVersion,
			Object:     doc.Version,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  hpvco.DocumentSourceURL,
			Object:     doc.SourceURL,
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  hpvco.DocumentTripleCount,
			Object:     strconv.Itoa(o.Graph().Len()),
			Source:     PublishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
	}

	return publishEntity(ctx, nc, EntityIngestMessage{
		ID:        entityID,
		Triples:   triples,
		UpdatedAt: now,
	})
}

// PublishOntology publishes the document entity followed by every class.
func PublishOntology(ctx context.Context, nc *natsclient.Client, o *ontology.Ontology) error {
	if nc == nil {
		return nil
	}
	if err := PublishDocument(ctx, nc, o); err != nil {
		return err
	}
	for _, c := range o.Classes() {
		if err := PublishClass(ctx, nc, c); err != nil {
			return fmt.Errorf("publish class %s: %w", c.IRI, err)
		}
	}
	return nil
}

func publishEntity(ctx context.Context, nc *natsclient.Client, msg EntityIngestMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity: %w", err)
	}
	if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
		return fmt.Errorf("publish entity: %w", err)
	}
	return nil
}

// ClassEntityID generates a consistent entity ID for a class.
// Format: hpvco.ontology.class.<local-name>
func ClassEntityID(iri string) string {
	return "hpvco.ontology.class." + localName(iri)
}

// DocumentEntityID generates a consistent entity ID for the ontology
// document itself.
// Format: hpvco.ontology.document.<local-name>
func DocumentEntityID(iri string) string {
	return "hpvco.ontology.document." + localName(iri)
}

// localName returns the IRI fragment or final path segment, lowercased.
func localName(iri string) string {
	s := iri
	if i := strings.LastIndexAny(s, "#/"); i >= 0 && i < len(s)-1 {
		s = s[i+1:]
	}
	return strings.ToLower(s)
}
