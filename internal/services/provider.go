package services

import (
	"github.com/KirkDiggler/dnd-dm-state/internal/repositories/gamestates"
	stateService "github.com/KirkDiggler/dnd-dm-state/internal/services/state"
)

// Provider holds all service instances
type Provider struct {
	StateService stateService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	StateRepository gamestates.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	var stateRepo gamestates.Repository
	if cfg != nil {
		stateRepo = cfg.StateRepository
	}
	if stateRepo == nil {
		stateRepo = gamestates.NewInMemoryRepository()
	}

	return &Provider{
		StateService: stateService.NewService(&stateService.ServiceConfig{
			Repository: stateRepo,
		}),
	}
}
