package gamestates

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
)

// DefaultFilePath is the file name used when no path is configured
const DefaultFilePath = "gamestate.json"

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	Path string
}

type fileRepository struct {
	path string
}

// NewFileRepository creates a repository backed by a single JSON file
func NewFileRepository(cfg *FileRepoConfig) Repository {
	path := DefaultFilePath
	if cfg != nil && cfg.Path != "" {
		path = cfg.Path
	}

	return &fileRepository{
		path: path,
	}
}

// Load reads the state file
func (r *fileRepository) Load(ctx context.Context) (*gamestate.GameState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gamestate.NewDefault(), nil
		}
		return nil, stateerr.Internalf(err, "failed to read game state file %s", r.path)
	}

	return decodeOrDefault(r.path, data)
}

// Save writes the state to a temp file next to the target and renames it
// into place, so an interrupted write leaves the previous file intact.
func (r *fileRepository) Save(ctx context.Context, state *gamestate.GameState) error {
	data, err := gamestate.Encode(state)
	if err != nil {
		return stateerr.WrapWithCode(err, stateerr.CodeInvalidArgument, "failed to encode game state")
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return stateerr.Internalf(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename has happened
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return stateerr.Internalf(err, "failed to write game state file %s", r.path)
	}
	if err := tmp.Close(); err != nil {
		return stateerr.Internalf(err, "failed to write game state file %s", r.path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return stateerr.Internalf(err, "failed to set permissions on %s", tmpName)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return stateerr.Internalf(err, "failed to replace game state file %s", r.path)
	}

	return nil
}

// Exists reports whether the state file is present
func (r *fileRepository) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, stateerr.Internalf(err, "failed to stat game state file %s", r.path)
}
