package gamestates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath is the database file used when no path is configured
const DefaultSQLitePath = "gamestate.db"

const createGameStateTable = `CREATE TABLE IF NOT EXISTS game_state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const upsertGameState = `INSERT INTO game_state (id, data, updated_at) VALUES (1, ?, ?)
ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

// SQLiteRepoConfig holds configuration for the SQLite repository
type SQLiteRepoConfig struct {
	Path         string
	TimeProvider TimeProvider
}

// SQLiteRepository stores the state document as the single row of a table
type SQLiteRepository struct {
	db           *sql.DB
	timeProvider TimeProvider
}

// NewSQLiteRepository opens the database and creates the table if needed
func NewSQLiteRepository(ctx context.Context, cfg *SQLiteRepoConfig) (*SQLiteRepository, error) {
	path := DefaultSQLitePath
	if cfg != nil && strings.TrimSpace(cfg.Path) != "" {
		path = cfg.Path
	}
	if path != ":memory:" {
		path = filepath.Clean(path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// The schema lives per connection for :memory: databases
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, createGameStateTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create game_state table: %w", err)
	}

	repo := &SQLiteRepository{
		db:           db,
		timeProvider: realTimeProvider{},
	}
	if cfg != nil && cfg.TimeProvider != nil {
		repo.timeProvider = cfg.TimeProvider
	}

	return repo, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Load reads the state row
func (r *SQLiteRepository) Load(ctx context.Context) (*gamestate.GameState, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM game_state WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gamestate.NewDefault(), nil
		}
		return nil, stateerr.Internalf(err, "failed to read game state row")
	}

	return decodeOrDefault("sqlite", []byte(data))
}

// Save upserts the state row
func (r *SQLiteRepository) Save(ctx context.Context, state *gamestate.GameState) error {
	data, err := gamestate.Encode(state)
	if err != nil {
		return stateerr.WrapWithCode(err, stateerr.CodeInvalidArgument, "failed to encode game state")
	}

	updatedAt := r.timeProvider.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.ExecContext(ctx, upsertGameState, string(data), updatedAt); err != nil {
		return stateerr.Internalf(err, "failed to write game state row")
	}

	return nil
}

// Exists reports whether the state row has been written
func (r *SQLiteRepository) Exists(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_state WHERE id = 1`).Scan(&count); err != nil {
		return false, stateerr.Internalf(err, "failed to check game state row")
	}
	return count > 0, nil
}

// UpdatedAt returns when the state row was last saved
func (r *SQLiteRepository) UpdatedAt(ctx context.Context) (time.Time, error) {
	var raw string
	if err := r.db.QueryRowContext(ctx, `SELECT updated_at FROM game_state WHERE id = 1`).Scan(&raw); err != nil {
		return time.Time{}, stateerr.Internalf(err, "failed to read game state timestamp")
	}
	return time.Parse(time.RFC3339Nano, raw)
}
