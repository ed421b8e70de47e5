package gamestates

import (
	"errors"
	"log"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
)

// decodeOrDefault applies the shared fallback: an empty, unparseable or
// player-less document is replaced by the default state. A document with a
// player but a wrongly typed field is an error, never a reset.
func decodeOrDefault(source string, data []byte) (*gamestate.GameState, error) {
	state, err := gamestate.DecodeOrDefault(data)
	if err == nil {
		return state, nil
	}
	if errors.Is(err, gamestate.ErrUnusableDocument) {
		log.Printf("Stored game state in %s is unusable, starting from defaults: %v", source, err)
		return state, nil
	}
	return nil, stateerr.Internalf(err, "stored game state in %s is malformed", source)
}
