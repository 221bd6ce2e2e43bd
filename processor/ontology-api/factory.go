package ontologyapi

import (
	"fmt"

	"github.com/c360studio/semstreams/component"
)

// RegistryInterface defines the minimal interface required for registration.
type RegistryInterface interface {
	RegisterWithConfig(component.RegistrationConfig) error
}

// Register registers the ontology-api component with the given registry.
func Register(registry RegistryInterface) error {
	if registry == nil {
		return fmt.Errorf("registry cannot be nil")
	}
	return registry.RegisterWithConfig(component.RegistrationConfig{
		Name:        "ontology-api",
		Factory:     NewComponent,
		Schema:      ontologyAPISchema,
		Type:        "processor",
		Protocol:    "http",
		Domain:      "hpvco",
		Description: "HTTP endpoints for ontology class and property lookup",
		Version:     "0.1.0",
	})
}
