package state

//go:generate mockgen -destination=mock/mock_service.go -package=mockstate -source=service.go

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
	"github.com/KirkDiggler/dnd-dm-state/internal/repositories/gamestates"
	"golang.org/x/text/cases"
)

// Service defines the game state operations the dungeon master can call
type Service interface {
	// Bootstrap persists the default state if nothing has been stored yet
	Bootstrap(ctx context.Context) error

	// InitializePlayer sets the permanent character details after creation
	InitializePlayer(ctx context.Context, input *InitializePlayerInput) (*Result, error)

	// AddToInventory appends items to the player's inventory
	AddToInventory(ctx context.Context, items []string) (*Result, error)

	// ReadGameState returns the full current state
	ReadGameState(ctx context.Context) (*gamestate.GameState, error)

	// StartCombat begins an encounter against the named enemies
	StartCombat(ctx context.Context, enemies map[string]int) (*Result, error)

	// ApplyDamage damages the player or an enemy, handling death automatically
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*DamageResult, error)

	// EndCombat forcibly ends the encounter
	EndCombat(ctx context.Context) (*Result, error)
}

// InitializePlayerInput contains the finished character sheet
type InitializePlayerInput struct {
	Name       string
	Race       string
	Class      string
	Background string
	MaxHP      int
	AC         int
}

// ApplyDamageInput names the target and the damage dealt
type ApplyDamageInput struct {
	// Target is "player" (any case) or the exact name of an enemy
	Target string
	Damage int
}

// Result is the outcome of a successful mutation
type Result struct {
	Message string
	State   *gamestate.GameState
}

// DamageResult is the outcome of a successful ApplyDamage
type DamageResult struct {
	Message     string
	Target      string
	Damage      int
	OldHP       int
	NewHP       int
	Killed      bool
	CombatEnded bool
	State       *gamestate.GameState
}

type service struct {
	// mu serializes load, mutate and save within the process
	mu         sync.Mutex
	repository gamestates.Repository
	folder     cases.Caser
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository gamestates.Repository
}

// NewService creates a new game state service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		repository: cfg.Repository,
		folder:     cases.Fold(),
	}
}

// Bootstrap persists the default state if nothing has been stored yet
func (s *service) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.repository.Exists(ctx)
	if err != nil {
		return stateerr.Wrap(err, "failed to check for stored game state")
	}
	if exists {
		return nil
	}

	log.Println("No stored game state found, writing defaults")
	if err := s.repository.Save(ctx, gamestate.NewDefault()); err != nil {
		return stateerr.Wrap(err, "failed to write default game state")
	}

	return nil
}

// InitializePlayer sets the permanent character details after creation
func (s *service) InitializePlayer(ctx context.Context, input *InitializePlayerInput) (*Result, error) {
	if input == nil {
		return nil, stateerr.InvalidArgument("input is required")
	}

	return s.mutate(ctx, func(state *gamestate.GameState) string {
		state.Player.Initialize(input.Name, input.Race, input.Class, input.Background, input.MaxHP, input.AC)
		return fmt.Sprintf("Player %s (Race: %s, Class: %s) initialized with %d HP and %d AC.",
			input.Name, input.Race, input.Class, input.MaxHP, input.AC)
	})
}

// AddToInventory appends items to the player's inventory
func (s *service) AddToInventory(ctx context.Context, items []string) (*Result, error) {
	return s.mutate(ctx, func(state *gamestate.GameState) string {
		state.AddItems(items...)
		return "Added to inventory: " + strings.Join(items, ", ")
	})
}

// ReadGameState returns the full current state
func (s *service) ReadGameState(ctx context.Context) (*gamestate.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// StartCombat begins an encounter against the named enemies
func (s *service) StartCombat(ctx context.Context, enemies map[string]int) (*Result, error) {
	return s.mutate(ctx, func(state *gamestate.GameState) string {
		state.Combat.Start(enemies)
		log.Printf("Combat started against %d enemies", len(enemies))
		return fmt.Sprintf("Combat started with: %s.", strings.Join(gamestate.EnemyNames(enemies), ", "))
	})
}

// ApplyDamage damages the player or an enemy, handling death automatically
func (s *service) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*DamageResult, error) {
	if input == nil {
		return nil, stateerr.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if s.isPlayerTarget(input.Target) {
		if !state.Player.HasHP() {
			return nil, stateerr.PlayerNotInitialized()
		}

		oldHP, newHP := state.Player.TakeDamage(input.Damage)
		if err := s.save(ctx, state); err != nil {
			return nil, err
		}

		return &DamageResult{
			Message: fmt.Sprintf("Player took %d damage. HP: %d -> %d.", input.Damage, oldHP, newHP),
			Target:  input.Target,
			Damage:  input.Damage,
			OldHP:   oldHP,
			NewHP:   newHP,
			State:   state,
		}, nil
	}

	hit, ok := state.Combat.DamageEnemy(input.Target, input.Damage)
	if !ok {
		return nil, stateerr.TargetNotFound(input.Target)
	}

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	if hit.CombatEnded {
		log.Printf("%s was the last enemy standing, combat is over", hit.Name)
	}

	return &DamageResult{
		Message:     enemyHitMessage(hit),
		Target:      hit.Name,
		Damage:      hit.Damage,
		OldHP:       hit.OldHP,
		NewHP:       hit.NewHP,
		Killed:      hit.Killed,
		CombatEnded: hit.CombatEnded,
		State:       state,
	}, nil
}

// EndCombat forcibly ends the encounter
func (s *service) EndCombat(ctx context.Context) (*Result, error) {
	return s.mutate(ctx, func(state *gamestate.GameState) string {
		state.Combat.End()
		return "Combat ended manually."
	})
}

func (s *service) isPlayerTarget(target string) bool {
	return s.folder.String(target) == gamestate.PlayerTarget
}

// mutate runs one load, change, save cycle under the service lock
func (s *service) mutate(ctx context.Context, change func(state *gamestate.GameState) string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	message := change(state)

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	return &Result{
		Message: message,
		State:   state,
	}, nil
}

func (s *service) load(ctx context.Context) (*gamestate.GameState, error) {
	state, err := s.repository.Load(ctx)
	if err != nil {
		return nil, stateerr.Wrap(err, "failed to load game state")
	}
	return state, nil
}

func (s *service) save(ctx context.Context, state *gamestate.GameState) error {
	if err := s.repository.Save(ctx, state); err != nil {
		return stateerr.Wrap(err, "failed to save game state")
	}
	return nil
}

func enemyHitMessage(hit *gamestate.EnemyHit) string {
	if !hit.Killed {
		return fmt.Sprintf("%s took %d damage. HP: %d -> %d.", hit.Name, hit.Damage, hit.OldHP, hit.NewHP)
	}

	msg := fmt.Sprintf("%s took %d damage and has died!", hit.Name, hit.Damage)
	if hit.CombatEnded {
		msg += " Combat has ended."
	}
	return msg
}
