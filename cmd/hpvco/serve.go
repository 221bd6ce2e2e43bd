package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/uthealth/hpvco/config"
	ontologyapi "github.com/uthealth/hpvco/processor/ontology-api"
	ontologyingester "github.com/uthealth/hpvco/processor/ontology-ingester"
	"github.com/uthealth/hpvco/storage"
)

func serveCmd(opts *cliOptions) *cobra.Command {
	var (
		withIngester bool
		ontologyDir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the ontology lookup API",
		Long: `Serve loads the ontology document and exposes it over HTTP:

	GET  /api/ontology/classes
	GET  /api/ontology/class?iri=...
	GET  /api/ontology/property?iri=...
	GET  /api/ontology/search?label=...
	GET  /api/ontology/stats
	GET  /api/ontology/violations
	POST /api/ontology/reload
	GET  /metrics

When nats.url is configured, loaded classes are also published to the
knowledge graph and load reports are recorded in NATS KV.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolkitConfig(opts)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, withIngester, ontologyDir)
		},
	}

	cmd.Flags().BoolVar(&withIngester, "ingest", false, "Also ingest and watch local ontology files")
	cmd.Flags().StringVar(&ontologyDir, "ontology-dir", "ontologies", "Directory of local ontology files for --ingest")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, withIngester bool, ontologyDir string) error {
	logger := slog.Default()

	signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	// NATS is optional for serving; lookups work without it.
	var natsClient *natsclient.Client
	if cfg.NATS.URL != "" {
		var err error
		natsClient, err = connectToNATS(signalCtx, cfg.NATS.URL, logger)
		if err != nil {
			return err
		}
		defer natsClient.Close(signalCtx)
	}

	deps := component.Dependencies{
		Logger:     logger,
		NATSClient: natsClient,
	}

	// Ontology API component.
	apiConfig, _ := json.Marshal(ontologyapi.Config{
		DocumentURL:    cfg.Ontology.URL,
		LocalPath:      firstLocalFile(cfg),
		AllowLocalURLs: cfg.Fetch.AllowLocal,
	})
	apiDiscoverable, err := ontologyapi.NewComponent(apiConfig, deps)
	if err != nil {
		return fmt.Errorf("create ontology-api: %w", err)
	}
	api := apiDiscoverable.(*ontologyapi.Component)

	if err := api.Initialize(); err != nil {
		return fmt.Errorf("initialize ontology-api: %w", err)
	}
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start ontology-api: %w", err)
	}
	defer func() {
		if err := api.Stop(5 * time.Second); err != nil {
			logger.Warn("Failed to stop ontology-api", "error", err)
		}
	}()

	// Optional local file ingester; requires NATS for publishing.
	if withIngester {
		if natsClient == nil {
			return fmt.Errorf("--ingest requires nats.url to be configured")
		}
		ingesterConfig, _ := json.Marshal(ontologyingester.Config{
			OntologyDir: ontologyDir,
			Globs:       []string{"**/*.rdf", "**/*.owl"},
			WatchConfig: ontologyingester.WatchConfig{
				Enabled:        true,
				DebounceDelay:  "500ms",
				FileExtensions: []string{".rdf", ".owl", ".xml"},
			},
		})
		ingDiscoverable, err := ontologyingester.NewComponent(ingesterConfig, deps)
		if err != nil {
			return fmt.Errorf("create ontology-ingester: %w", err)
		}
		ingester := ingDiscoverable.(*ontologyingester.Component)
		if err := ingester.Initialize(); err != nil {
			return fmt.Errorf("initialize ontology-ingester: %w", err)
		}
		if err := ingester.Start(signalCtx); err != nil {
			return fmt.Errorf("start ontology-ingester: %w", err)
		}
		defer func() {
			if err := ingester.Stop(5 * time.Second); err != nil {
				logger.Warn("Failed to stop ontology-ingester", "error", err)
			}
		}()
	}

	// Record the load in NATS KV when available.
	if natsClient != nil {
		if err := recordLoadReport(signalCtx, natsClient, api, logger); err != nil {
			logger.Warn("Failed to record load report", "error", err)
		}
	}

	mux := http.NewServeMux()
	api.RegisterHTTPHandlers("api/ontology", mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		health := api.Health()
		status := http.StatusOK
		if !health.Healthy {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(health)
	})

	server := &http.Server{
		Addr:         cfg.Serve.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Serve.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-signalCtx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}

	logger.Info("Shutdown complete")
	return nil
}

// firstLocalFile returns the first local glob match, or empty when the
// document should be fetched from its URL.
func firstLocalFile(cfg *config.Config) string {
	path, remote, err := resolveSource(cfg, "")
	if err != nil || remote {
		return ""
	}
	return path
}

// recordLoadReport stores a document snapshot and validation report in KV.
func recordLoadReport(ctx context.Context, nc *natsclient.Client, api *ontologyapi.Component, logger *slog.Logger) error {
	js, err := nc.JetStream()
	if err != nil {
		return fmt.Errorf("jetstream: %w", err)
	}

	store, err := storage.NewStore(ctx, js)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	o := api.Ontology()
	if o == nil {
		return fmt.Errorf("ontology not loaded")
	}

	doc := o.Document()
	docID, err := store.CreateDocument(ctx, &storage.Document{
		OntologyIRI: doc.IRI,
		Version:     doc.Version,
		SourceURL:   doc.SourceURL,
		Retrieved:   doc.Retrieved,
	})
	if err != nil {
		return fmt.Errorf("record document: %w", err)
	}

	reportID, err := store.CreateReport(ctx, &storage.Report{
		DocumentID: docID.String(),
		Stats:      o.Stats(),
		Violations: o.Violations(),
	})
	if err != nil {
		return fmt.Errorf("record report: %w", err)
	}

	logger.Info("Recorded load report", "document", docID, "report", reportID)
	return nil
}

// connectToNATS establishes the NATS connection with reconnect settings.
func connectToNATS(ctx context.Context, url string, logger *slog.Logger) (*natsclient.Client, error) {
	// Environment variable override takes precedence.
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		url = envURL
	} else if envURL := os.Getenv("HPVCO_NATS_URL"); envURL != "" {
		url = envURL
	}

	logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	logger.Info("Connected to NATS", "url", url)
	return client, nil
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	// Check for common connection errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

To start NATS:
  docker compose up -d nats

Or set NATS_URL environment variable to point to your NATS server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
