package ontologyapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/uthealth/hpvco/ontology"
	"github.com/uthealth/hpvco/rdf"
)

// RegisterHTTPHandlers registers all ontology-api HTTP handlers under the
// given prefix. The prefix should be the path segment without a trailing
// slash (e.g. "api/ontology"). Handlers are registered as:
//
//	GET  <prefix>/classes
//	GET  <prefix>/class
//	GET  <prefix>/property
//	GET  <prefix>/search
//	GET  <prefix>/stats
//	GET  <prefix>/violations
//	POST <prefix>/reload
func (c *Component) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	// Normalise: ensure leading slash and trailing slash.
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	mux.HandleFunc(prefix+"classes", c.handleClasses)
	mux.HandleFunc(prefix+"class", c.handleClass)
	mux.HandleFunc(prefix+"property", c.handleProperty)
	mux.HandleFunc(prefix+"search", c.handleSearch)
	mux.HandleFunc(prefix+"stats", c.handleStats)
	mux.HandleFunc(prefix+"violations", c.handleViolations)
	mux.HandleFunc(prefix+"reload", c.handleReload)
}

// view returns the current ontology, or nil before the first load completes.
func (c *Component) view() *ontology.Ontology {
	return c.current.Load()
}

// handleClasses returns every class sorted by IRI.
func (c *Component) handleClasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	o := c.view()
	if o == nil {
		http.Error(w, "Ontology not loaded", http.StatusServiceUnavailable)
		return
	}
	lookupTotal.WithLabelValues("classes", "ok").Inc()
	writeJSON(w, http.StatusOK, o.Classes())
}

// handleClass looks up a single class by the iri query parameter.
func (c *Component) handleClass(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	o := c.view()
	if o == nil {
		http.Error(w, "Ontology not loaded", http.StatusServiceUnavailable)
		return
	}

	iri := r.URL.Query().Get("iri")
	if iri == "" {
		http.Error(w, "iri query parameter is required", http.StatusBadRequest)
		return
	}

	cls, err := o.Class(iri)
	if err != nil {
		if errors.Is(err, rdf.ErrNotFound) {
			lookupTotal.WithLabelValues("class", "not_found").Inc()
			http.Error(w, "class not found: "+iri, http.StatusNotFound)
			return
		}
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}

	lookupTotal.WithLabelValues("class", "ok").Inc()
	writeJSON(w, http.StatusOK, cls)
}

// handleProperty looks up a declared property by the iri query parameter.
func (c *Component) handleProperty(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	o := c.view()
	if o == nil {
		http.Error(w, "Ontology not loaded", http.StatusServiceUnavailable)
		return
	}

	iri := r.URL.Query().Get("iri")
	if iri == "" {
		http.Error(w, "iri query parameter is required", http.StatusBadRequest)
		return
	}

	prop, err := o.Property(iri)
	if err != nil {
		if errors.Is(err, rdf.ErrNotFound) {
			lookupTotal.WithLabelValues("property", "not_found").Inc()
			http.Error(w, "property not found: "+iri, http.StatusNotFound)
			return
		}
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}

	lookupTotal.WithLabelValues("property", "ok").Inc()
	writeJSON(w, http.StatusOK, prop)
}

// SearchResponse is the response body for GET /search.
type SearchResponse struct {
	Label string   `json:"label"`
	IRIs  []string `json:"iris"`
}

// handleSearch looks up entities by label or synonym, case-insensitively.
func (c *Component) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	o := c.view()
	if o == nil {
		http.Error(w, "Ontology not loaded", http.StatusServiceUnavailable)
		return
	}

	label := r.URL.Query().Get("label")
	if label == "" {
		http.Error(w, "label query parameter is required", http.StatusBadRequest)
		return
	}

	iris, err := o.ByLabel(label)
	if err != nil {
		if errors.Is(err, rdf.ErrNotFound) {
			lookupTotal.WithLabelValues("search", "not_found").Inc()
			http.Error(w, "no entity matches label: "+label, http.StatusNotFound)
			return
		}
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}

	lookupTotal.WithLabelValues("search", "ok").Inc()
	writeJSON(w, http.StatusOK, SearchResponse{Label: label, IRIs: iris})
}

// StatsResponse is the response body for GET /stats.
type StatsResponse struct {
	Document ontology.Document `json:"document"`
	Stats    ontology.Stats    `json:"stats"`
}

// handleStats returns the document identity and summary statistics.
func (c *Component) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	o := c.view()
	if o == nil {
		http.Error(w, "Ontology not loaded", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		Document: o.Document(),
		Stats:    o.Stats(),
	})
}

// handleViolations returns the validator findings from the last load.
func (c *Component) handleViolations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	o := c.view()
	if o == nil {
		http.Error(w, "Ontology not loaded", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, o.Violations())
}

// ReloadResponse is the response body for POST /reload.
type ReloadResponse struct {
	Stats ontology.Stats `json:"stats"`
}

// handleReload re-fetches the document and swaps the view atomically.
// In-flight lookups keep reading the previous view.
func (c *Component) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := c.load(r.Context()); err != nil {
		c.logger.Error("Reload failed", "error", err)
		http.Error(w, "reload failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	o := c.view()
	c.logger.Info("Ontology reloaded",
		"triples", o.Stats().Triples,
		"violations", o.Stats().Violations)
	writeJSON(w, http.StatusOK, ReloadResponse{Stats: o.Stats()})
}

// writeJSON marshals v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response is already partially written; nothing useful to do.
		_ = err
	}
}
