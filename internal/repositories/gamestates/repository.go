package gamestates

//go:generate mockgen -destination=mock/mock_repository.go -package=mockgamestates -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
)

// Repository defines the interface for game state storage operations
type Repository interface {
	// Load returns the stored state, or a fresh default when nothing usable
	// is stored. Only unexpected storage failures are returned as errors.
	Load(ctx context.Context) (*gamestate.GameState, error)

	// Save overwrites the stored state with the full record
	Save(ctx context.Context, state *gamestate.GameState) error

	// Exists reports whether a state record has been written
	Exists(ctx context.Context) (bool, error)
}
