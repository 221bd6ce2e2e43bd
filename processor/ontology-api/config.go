package ontologyapi

import (
	"fmt"
	"reflect"

	"github.com/c360studio/semstreams/component"
)

// ontologyAPISchema holds the configuration schema generated from Config.
var ontologyAPISchema = component.GenerateConfigSchema(reflect.TypeOf(Config{}))

// Config holds configuration for the ontology-api component.
type Config struct {
	// DocumentURL is the permanent URL of the ontology document.
	// When empty the component falls back to the HPVCO_DOCUMENT_URL
	// environment variable, then to the published default.
	DocumentURL string `json:"document_url" schema:"type:string,description:Ontology document URL,category:basic,default:"`

	// LocalPath points at a local RDF/XML file; when set it takes
	// precedence over DocumentURL.
	LocalPath string `json:"local_path" schema:"type:string,description:Local ontology file path,category:basic,default:"`

	// AllowLocalURLs permits localhost and private-IP document URLs.
	AllowLocalURLs bool `json:"allow_local_urls" schema:"type:bool,description:Allow localhost and private-IP URLs,category:advanced,default:false"`

	// Ports declares optional HTTP port configuration.
	Ports *component.PortConfig `json:"ports,omitempty" schema:"type:ports,description:Port configuration,category:basic"`
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{}
}

// Validate verifies the configuration is consistent.
// Both source fields are optional; the component resolves them at runtime.
func (c *Config) Validate() error {
	if c.DocumentURL != "" && c.LocalPath != "" {
		return fmt.Errorf("document_url and local_path are mutually exclusive")
	}
	return nil
}
