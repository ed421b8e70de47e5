package gamestates

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
)

// inMemoryRepository keeps the encoded document so callers never share
// pointers with the stored state
type inMemoryRepository struct {
	mu   sync.RWMutex
	data []byte
}

// NewInMemoryRepository creates a new in-memory game state repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{}
}

// NewInMemoryRepositoryWithData creates an in-memory repository seeded with a
// raw document, which may be malformed
func NewInMemoryRepositoryWithData(data []byte) Repository {
	repo := &inMemoryRepository{}
	if data != nil {
		repo.data = make([]byte, len(data))
		copy(repo.data, data)
	}
	return repo
}

// Load decodes the stored document
func (r *inMemoryRepository) Load(ctx context.Context) (*gamestate.GameState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data == nil {
		return gamestate.NewDefault(), nil
	}

	return decodeOrDefault("memory", r.data)
}

// Save replaces the stored document
func (r *inMemoryRepository) Save(ctx context.Context, state *gamestate.GameState) error {
	data, err := gamestate.Encode(state)
	if err != nil {
		return stateerr.WrapWithCode(err, stateerr.CodeInvalidArgument, "failed to encode game state")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = data
	return nil
}

// Exists reports whether anything has been saved
func (r *inMemoryRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data != nil, nil
}
