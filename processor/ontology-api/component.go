// Package ontologyapi provides HTTP endpoints for querying the loaded
// ontology. It exposes class listing, IRI and label lookup, statistics,
// and validation findings, and can reload the document on demand.
package ontologyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360studio/semstreams/component"

	"github.com/uthealth/hpvco/fetch"
	"github.com/uthealth/hpvco/ontology"
	"github.com/uthealth/hpvco/vocabulary/hpvco"
)

// Component implements the ontology-api component.
// It loads the ontology document once at startup and serves lookups from
// the immutable in-memory view; reload swaps the view atomically.
type Component struct {
	name   string
	config Config
	loader *ontology.Loader
	logger *slog.Logger

	// current is the loaded ontology view; readers never block.
	current atomic.Pointer[ontology.Ontology]

	// Lifecycle state machine
	// States: 0=stopped, 1=starting, 2=running, 3=stopping
	state     atomic.Int32
	startTime time.Time
	mu        sync.RWMutex
	cancel    context.CancelFunc
}

const (
	stateStopped  = 0
	stateStarting = 1
	stateRunning  = 2
	stateStopping = 3
)

// NewComponent constructs an ontology-api Component from raw JSON config and deps.
func NewComponent(rawConfig json.RawMessage, deps component.Dependencies) (component.Discoverable, error) {
	var config Config
	if err := json.Unmarshal(rawConfig, &config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := deps.GetLogger()

	var fetchOpts []fetch.Option
	if config.AllowLocalURLs {
		fetchOpts = append(fetchOpts, fetch.WithAllowLocal(true))
	}
	loader := ontology.NewLoader(
		ontology.WithFetcher(fetch.New(fetchOpts...)),
		ontology.WithLogger(logger),
	)

	return &Component{
		name:   "ontology-api",
		config: config,
		loader: loader,
		logger: logger,
	}, nil
}

// resolveDocumentURL determines the effective document URL.
// Priority: explicit config value → HPVCO_DOCUMENT_URL env var → default.
func resolveDocumentURL(configured string) string {
	if configured != "" {
		return configured
	}
	if env := os.Getenv("HPVCO_DOCUMENT_URL"); env != "" {
		return env
	}
	return hpvco.DefaultDocumentURL
}

// Initialize prepares the component for startup.
func (c *Component) Initialize() error {
	c.logger.Debug("Initialized ontology-api",
		"document_url", resolveDocumentURL(c.config.DocumentURL),
		"local_path", c.config.LocalPath)
	return nil
}

// Start loads the ontology document and begins serving.
func (c *Component) Start(ctx context.Context) error {
	if !c.state.CompareAndSwap(stateStopped, stateStarting) {
		current := c.state.Load()
		if current == stateRunning || current == stateStarting {
			return fmt.Errorf("component already running or starting")
		}
		return fmt.Errorf("component in invalid state: %d", current)
	}

	defer func() {
		if c.state.Load() == stateStarting {
			c.state.Store(stateStopped)
		}
	}()

	loadCtx, cancel := context.WithCancel(ctx)

	if err := c.load(loadCtx); err != nil {
		cancel()
		return fmt.Errorf("initial ontology load: %w", err)
	}

	c.mu.Lock()
	c.cancel = cancel
	c.startTime = time.Now()
	c.mu.Unlock()

	c.state.Store(stateRunning)
	c.logger.Info("ontology-api started",
		"classes", c.current.Load().Stats().Classes,
		"triples", c.current.Load().Stats().Triples)
	return nil
}

// load fetches and parses the document, then swaps it in.
func (c *Component) load(ctx context.Context) error {
	start := time.Now()

	var o *ontology.Ontology
	var err error
	if c.config.LocalPath != "" {
		o, err = c.loader.LoadFile(c.config.LocalPath)
	} else {
		o, err = c.loader.LoadURL(ctx, resolveDocumentURL(c.config.DocumentURL))
	}
	if err != nil {
		loadErrors.Inc()
		return err
	}

	c.current.Store(o)
	loadDuration.Observe(time.Since(start).Seconds())
	return nil
}

// Ontology returns the currently loaded view, or nil before the first
// successful load.
func (c *Component) Ontology() *ontology.Ontology {
	return c.current.Load()
}

// Stop gracefully stops the component.
func (c *Component) Stop(_ time.Duration) error {
	if !c.state.CompareAndSwap(stateRunning, stateStopping) {
		current := c.state.Load()
		if current == stateStopped || current == stateStopping {
			return nil
		}
		return fmt.Errorf("component in unexpected state: %d", current)
	}

	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	c.state.Store(stateStopped)
	c.logger.Info("ontology-api stopped")
	return nil
}

// Meta returns component metadata.
func (c *Component) Meta() component.Metadata {
	return component.Metadata{
		Name:        "ontology-api",
		Type:        "processor",
		Description: "HTTP endpoints for ontology class and property lookup",
		Version:     "0.1.0",
	}
}

// InputPorts returns an empty port list; this component has no NATS inputs.
func (c *Component) InputPorts() []component.Port {
	return []component.Port{}
}

// OutputPorts returns an empty port list; this component has no NATS outputs.
func (c *Component) OutputPorts() []component.Port {
	return []component.Port{}
}

// ConfigSchema returns the configuration schema.
func (c *Component) ConfigSchema() component.ConfigSchema {
	return ontologyAPISchema
}

// Health returns the current health status.
func (c *Component) Health() component.HealthStatus {
	state := c.state.Load()
	running := state == stateRunning

	c.mu.RLock()
	startTime := c.startTime
	c.mu.RUnlock()

	status := "stopped"
	switch state {
	case stateStarting:
		status = "starting"
	case stateRunning:
		status = "running"
	case stateStopping:
		status = "stopping"
	}

	return component.HealthStatus{
		Healthy:   running && c.current.Load() != nil,
		LastCheck: time.Now(),
		Uptime:    time.Since(startTime),
		Status:    status,
	}
}

// DataFlow returns current data flow metrics.
func (c *Component) DataFlow() component.FlowMetrics {
	return component.FlowMetrics{}
}
