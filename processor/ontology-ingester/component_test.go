package ontologyingester

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() component.Dependencies {
	return component.Dependencies{Logger: slog.Default()}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "ontologies", cfg.OntologyDir)
	assert.Equal(t, []string{"**/*.rdf", "**/*.owl"}, cfg.Globs)
	assert.False(t, cfg.WatchConfig.Enabled)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.OntologyDir = ""
	assert.Error(t, cfg.Validate())
}

func TestNewComponentAppliesDefaults(t *testing.T) {
	disc, err := NewComponent(json.RawMessage(`{}`), testDeps())
	require.NoError(t, err)

	c, ok := disc.(*Component)
	require.True(t, ok)
	assert.Equal(t, "ontologies", c.config.OntologyDir)
	assert.Equal(t, "ontology-ingester", c.Meta().Name)

	ports := c.OutputPorts()
	require.Len(t, ports, 1)
	assert.Equal(t, "entities", ports[0].Name)
}

func TestNewComponentOverridesDefaults(t *testing.T) {
	raw := json.RawMessage(`{"ontology_dir": "data/ontologies", "globs": ["*.rdf"]}`)
	disc, err := NewComponent(raw, testDeps())
	require.NoError(t, err)

	c := disc.(*Component)
	assert.Equal(t, "data/ontologies", c.config.OntologyDir)
	assert.Equal(t, []string{"*.rdf"}, c.config.Globs)
}

func TestStartRequiresNATS(t *testing.T) {
	disc, err := NewComponent(json.RawMessage(`{}`), testDeps())
	require.NoError(t, err)

	c := disc.(*Component)
	assert.Error(t, c.Start(context.Background()))
}

func TestWatchConfigDebounceDelay(t *testing.T) {
	cfg := WatchConfig{DebounceDelay: "250ms"}
	assert.Equal(t, 250*time.Millisecond, cfg.GetDebounceDelay())

	cfg.DebounceDelay = ""
	assert.Equal(t, 500*time.Millisecond, cfg.GetDebounceDelay())

	cfg.DebounceDelay = "not a duration"
	assert.Equal(t, 500*time.Millisecond, cfg.GetDebounceDelay())
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("content"))
	b := ContentHash([]byte("content"))
	c := ContentHash([]byte("different"))

	assert.Equal(t, a, b, "same content must hash identically")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64, "expected hex-encoded SHA256")
}
