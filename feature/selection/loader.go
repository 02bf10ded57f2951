package selection

import (
	"sports-catalog/core/server"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new selection feature.
func NewFeature(service *Service, srv server.Config) *Feature {
	return &Feature{service: service, handler: NewHandler(service, srv)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "selection"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
