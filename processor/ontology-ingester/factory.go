package ontologyingester

import (
	"fmt"

	"github.com/c360studio/semstreams/component"
)

// RegistryInterface defines the minimal interface required for registration.
type RegistryInterface interface {
	RegisterWithConfig(component.RegistrationConfig) error
}

// Register registers the ontology-ingester component with the given registry.
func Register(registry RegistryInterface) error {
	if registry == nil {
		return fmt.Errorf("registry cannot be nil")
	}
	return registry.RegisterWithConfig(component.RegistrationConfig{
		Name:        "ontology-ingester",
		Factory:     NewComponent,
		Schema:      ontologyIngesterSchema,
		Type:        "processor",
		Protocol:    "jetstream",
		Domain:      "hpvco",
		Description: "Ingests local ontology documents into the knowledge graph",
		Version:     "0.1.0",
	})
}
