package gamestate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnusableDocument marks a stored document that is replaced by the
	// default: empty, not valid JSON, or without a player record
	ErrUnusableDocument = errors.New("unusable game state document")

	// ErrMissingPlayer is returned by Decode when the document has no player record
	ErrMissingPlayer = fmt.Errorf("%w: no player record", ErrUnusableDocument)
)

// Encode serializes the full record as two-space indented JSON
func Encode(state *GameState) ([]byte, error) {
	if state == nil {
		return nil, errors.New("game state cannot be nil")
	}
	return json.MarshalIndent(state, "", "  ")
}

// Decode parses a stored document. Empty documents, invalid JSON and
// documents without a player record fail with ErrUnusableDocument. A document
// that passes those checks but has a field of the wrong type fails with a
// plain error, since resetting it would lose a real character sheet.
func Decode(data []byte) (*GameState, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrUnusableDocument)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrUnusableDocument)
	}

	// Anything other than an object has no player key
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, ErrMissingPlayer
	}
	if raw, ok := top["player"]; !ok || isNull(raw) {
		return nil, ErrMissingPlayer
	}

	var state GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("malformed game state: %w", err)
	}

	state.normalize()
	return &state, nil
}

// DecodeOrDefault is Decode with the store's fallback applied. An unusable
// document yields NewDefault and the reason; a malformed one yields nil and
// the error.
func DecodeOrDefault(data []byte) (*GameState, error) {
	state, err := Decode(data)
	if errors.Is(err, ErrUnusableDocument) {
		return NewDefault(), err
	}
	return state, err
}
