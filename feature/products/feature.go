package products

import (
	"dbapi-compare/core/api"
	"dbapi-compare/core/config"
	"dbapi-compare/core/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new products feature.
func NewFeature(db *gorm.DB, client *api.Client, profiles *config.Profiles, exportCfg export.Config, maxRows int, logger *zap.Logger) *Feature {
	svc := NewService(db, client, profiles, exportCfg, maxRows, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "products"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return len(f.service.ProfileNames()) > 0
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
