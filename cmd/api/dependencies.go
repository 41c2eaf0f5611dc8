package main

import (
	"log/slog"

	"github.com/ecosort/ecosort-api/internal/domain/geocode"
	"github.com/ecosort/ecosort-api/internal/domain/places"
	"github.com/ecosort/ecosort-api/internal/domain/recycling"
	"github.com/ecosort/ecosort-api/internal/domain/stats"
	"github.com/ecosort/ecosort-api/pkg/config"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	// Repositories
	PlacesRepo places.Repository
	MockRepo   places.Repository
	StatsRepo  stats.Repository

	// Services
	GeocodeSvc   geocode.Service
	PlacesSvc    places.Service
	RecyclingSvc recycling.Service
	StatsSvc     stats.Service

	// Handlers
	RecyclingHandler *recycling.Handler
	StatsHandler     *stats.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.initRepositories()
	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initRepositories initializes all repository layer dependencies
func (d *Dependencies) initRepositories() {
	d.PlacesRepo = places.NewHTTPRepository(d.Config.Directory.APIKey, d.Config.Directory.BaseURL, d.Logger)
	d.MockRepo = places.NewMockRepository()
	d.StatsRepo = stats.NewMemoryRepository()

	if d.Config.Directory.APIKey == "" {
		d.Logger.Warn("no directory API key configured; location search will serve mock results")
	}
	d.Logger.Info("repositories initialized")
}

// initServices initializes all service layer dependencies
func (d *Dependencies) initServices() {
	var provider geocode.Provider
	if d.Config.Geocode.Disabled {
		provider = geocode.NewStaticProvider(geocode.FallbackCoordinates)
	} else {
		provider = geocode.NewHTTPProvider(d.Config.Geocode.Endpoint)
	}
	d.GeocodeSvc = geocode.NewServiceImpl(provider, d.Logger)

	d.PlacesSvc = places.NewServiceImpl(d.PlacesRepo, d.MockRepo, d.Logger)
	d.RecyclingSvc = recycling.NewServiceImpl(d.PlacesSvc, d.GeocodeSvc, d.Logger)
	d.StatsSvc = stats.NewService(d.StatsRepo, d.Logger)

	d.Logger.Info("services initialized")
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() {
	d.RecyclingHandler = recycling.NewHandler(d.RecyclingSvc, d.Logger)
	d.StatsHandler = stats.NewHandler(d.StatsSvc, d.Logger)
	d.Logger.Info("handlers initialized")
}
