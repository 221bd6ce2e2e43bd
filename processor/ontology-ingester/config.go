package ontologyingester

import (
	"fmt"
	"reflect"

	"github.com/c360studio/semstreams/component"
)

// ontologyIngesterSchema defines the configuration schema.
var ontologyIngesterSchema = component.GenerateConfigSchema(reflect.TypeOf(Config{}))

// Config holds configuration for the ontology-ingester component.
type Config struct {
	// OntologyDir is the directory holding local ontology documents.
	OntologyDir string `json:"ontology_dir" schema:"type:string,description:Directory holding ontology documents,category:basic,default:ontologies"`

	// Globs lists patterns (relative to OntologyDir) selecting documents to
	// ingest on startup. Doublestar syntax, e.g. "**/*.rdf".
	Globs []string `json:"globs" schema:"type:array,description:Glob patterns selecting documents to ingest,category:basic,default:[**/*.rdf,**/*.owl]"`

	// WatchConfig configures file watching for automatic re-ingestion.
	WatchConfig WatchConfig `json:"watch" schema:"type:object,description:File watching configuration,category:advanced"`

	// Ports declares optional port configuration.
	Ports *component.PortConfig `json:"ports,omitempty" schema:"type:ports,description:Port configuration,category:basic"`
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		OntologyDir: "ontologies",
		Globs:       []string{"**/*.rdf", "**/*.owl"},
		WatchConfig: DefaultWatchConfig(),
	}
}

// Validate verifies the configuration is consistent.
func (c *Config) Validate() error {
	if c.OntologyDir == "" {
		return fmt.Errorf("ontology_dir is required")
	}
	return nil
}
