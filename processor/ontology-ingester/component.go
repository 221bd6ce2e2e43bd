// Package ontologyingester provides a component for ingesting local
// ontology documents into the knowledge graph. It scans a directory on
// startup and optionally watches it for changes, loading each document
// and publishing its classes as graph entities.
package ontologyingester

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/uthealth/hpvco/graph"
	"github.com/uthealth/hpvco/ontology"
)

// Component implements the ontology-ingester processor.
type Component struct {
	name       string
	config     Config
	natsClient *natsclient.Client
	logger     *slog.Logger
	loader     *ontology.Loader
	watcher    *OntologyWatcher

	// Lifecycle management
	running   bool
	startTime time.Time
	mu        sync.RWMutex
	cancel    context.CancelFunc

	// Metrics
	documentsIngested atomic.Int64
	classesPublished  atomic.Int64
	errors            atomic.Int64
}

// NewComponent creates a new ontology-ingester processor component.
func NewComponent(rawConfig json.RawMessage, deps component.Dependencies) (component.Discoverable, error) {
	config := DefaultConfig()
	if err := json.Unmarshal(rawConfig, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := deps.GetLogger()

	c := &Component{
		name:       "ontology-ingester",
		config:     config,
		natsClient: deps.NATSClient,
		logger:     logger,
		loader:     ontology.NewLoader(ontology.WithLogger(logger)),
	}

	return c, nil
}

// Initialize prepares the component.
func (c *Component) Initialize() error {
	return nil
}

// Start scans the ontology directory and begins watching for changes.
func (c *Component) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("component already running")
	}
	if c.natsClient == nil {
		c.mu.Unlock()
		return fmt.Errorf("NATS client required")
	}
	// Mark as starting immediately to prevent concurrent starts
	c.running = true
	c.startTime = time.Now()
	c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	// Ingest existing documents before watching for changes.
	if err := c.scanAndIngest(runCtx); err != nil {
		c.logger.Error("Initial ontology scan failed", "error", err)
	}

	// Start file watcher if enabled
	if c.config.WatchConfig.Enabled {
		watcher, err := NewOntologyWatcher(c.config.WatchConfig, c.config.OntologyDir, c.logger)
		if err != nil {
			c.logger.Error("Failed to create ontology watcher", "error", err)
		} else {
			c.watcher = watcher
			if err := watcher.Start(runCtx); err != nil {
				c.logger.Error("Failed to start ontology watcher", "error", err)
			} else {
				// Process watcher events in background
				go c.processWatchEvents(runCtx)
			}
		}
	}

	c.logger.Info("Ontology ingester started",
		"ontology_dir", c.config.OntologyDir,
		"globs", c.config.Globs,
		"watching", c.config.WatchConfig.Enabled)

	return nil
}

// scanAndIngest loads every document matching the configured globs.
func (c *Component) scanAndIngest(ctx context.Context) error {
	root := c.config.OntologyDir

	seen := make(map[string]bool)
	for _, pattern := range c.config.Globs {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			c.logger.Warn("Bad glob pattern", "pattern", pattern, "error", err)
			continue
		}
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			c.ingestFile(ctx, path)
		}
	}

	c.logger.Info("Initial ontology scan complete",
		"documents", c.documentsIngested.Load(),
		"classes", c.classesPublished.Load(),
		"errors", c.errors.Load())
	return nil
}

// ingestFile loads one document and publishes its classes.
func (c *Component) ingestFile(ctx context.Context, path string) {
	o, err := c.loader.LoadFile(path)
	if err != nil {
		c.errors.Add(1)
		c.logger.Error("Failed to load ontology document", "path", path, "error", err)
		return
	}

	if err := graph.PublishOntology(ctx, c.natsClient, o); err != nil {
		c.errors.Add(1)
		c.logger.Error("Failed to publish ontology", "path", path, "error", err)
		return
	}

	c.documentsIngested.Add(1)
	c.classesPublished.Add(int64(o.Stats().Classes))

	if c.watcher != nil {
		// Seed the hash cache so the watcher skips unchanged content.
		if rel, relErr := filepath.Rel(c.config.OntologyDir, path); relErr == nil {
			if content, readErr := os.ReadFile(path); readErr == nil {
				c.watcher.SetHash(rel, ContentHash(content))
			}
		}
	}

	c.logger.Info("Ingested ontology document",
		"path", path,
		"classes", o.Stats().Classes,
		"triples", o.Stats().Triples,
		"violations", o.Stats().Violations)
}

// processWatchEvents re-ingests documents as the watcher reports changes.
func (c *Component) processWatchEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-c.watcher.Events():
			if !ok {
				return
			}
			switch event.Operation {
			case WatchOpCreate, WatchOpModify:
				c.ingestFile(ctx, event.AbsPath)
			case WatchOpDelete:
				// Entities stay in the graph; deletion is an upstream concern.
				c.logger.Info("Ontology document removed", "path", event.Path)
			}
		}
	}
}

// Stop gracefully stops the component.
func (c *Component) Stop(_ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil
	}

	if c.watcher != nil {
		if err := c.watcher.Stop(); err != nil {
			c.logger.Warn("Failed to stop ontology watcher", "error", err)
		}
		c.watcher = nil
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.running = false
	c.logger.Info("Ontology ingester stopped")
	return nil
}

// Meta returns component metadata.
func (c *Component) Meta() component.Metadata {
	return component.Metadata{
		Name:        "ontology-ingester",
		Type:        "processor",
		Description: "Ingests local ontology documents into the knowledge graph",
		Version:     "0.1.0",
	}
}

// InputPorts returns an empty port list; input arrives from the filesystem.
func (c *Component) InputPorts() []component.Port {
	return []component.Port{}
}

// OutputPorts declares the graph entity output.
func (c *Component) OutputPorts() []component.Port {
	return []component.Port{
		{
			Name:        "entities",
			Direction:   component.DirectionOutput,
			Description: "Ontology classes published as graph entities",
		},
	}
}

// ConfigSchema returns the configuration schema.
func (c *Component) ConfigSchema() component.ConfigSchema {
	return ontologyIngesterSchema
}

// Health returns the current health status.
func (c *Component) Health() component.HealthStatus {
	c.mu.RLock()
	running := c.running
	startTime := c.startTime
	c.mu.RUnlock()

	status := "stopped"
	if running {
		status = "running"
	}

	return component.HealthStatus{
		Healthy:   running,
		LastCheck: time.Now(),
		Uptime:    time.Since(startTime),
		Status:    status,
	}
}

// DataFlow returns current data flow metrics.
func (c *Component) DataFlow() component.FlowMetrics {
	return component.FlowMetrics{}
}
