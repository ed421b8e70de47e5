package gamestates_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	"github.com/KirkDiggler/dnd-dm-state/internal/repositories/gamestates"
	"github.com/KirkDiggler/dnd-dm-state/internal/testutils"
	"github.com/stretchr/testify/suite"
)

// RepositoryContractSuite checks the load/save contract shared by every backend
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func(t *testing.T) gamestates.Repository
	repo    gamestates.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(s.T())
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T) gamestates.Repository {
			return gamestates.NewInMemoryRepository()
		},
	})
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T) gamestates.Repository {
			return gamestates.NewFileRepository(&gamestates.FileRepoConfig{
				Path: filepath.Join(t.TempDir(), "gamestate.json"),
			})
		},
	})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T) gamestates.Repository {
			repo, err := gamestates.NewSQLiteRepository(context.Background(), &gamestates.SQLiteRepoConfig{
				Path: filepath.Join(t.TempDir(), "gamestate.db"),
			})
			if err != nil {
				t.Fatalf("open sqlite repository: %v", err)
			}
			t.Cleanup(func() { _ = repo.Close() })
			return repo
		},
	})
}

func (s *RepositoryContractSuite) TestLoad_MissingReturnsDefaultWithoutWriting() {
	state, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(gamestate.NewDefault(), state)

	exists, err := s.repo.Exists(s.ctx)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositoryContractSuite) TestSave_RoundTrip() {
	states := map[string]*gamestate.GameState{
		"default":         gamestate.NewDefault(),
		"initialized":     testutils.CreateTestGameState("Sildar"),
		"goblin ambush":   testutils.CreateGoblinAmbush(),
		"negative player": negativePlayerState(),
	}

	for name, state := range states {
		s.Run(name, func() {
			s.Require().NoError(s.repo.Save(s.ctx, state))

			loaded, err := s.repo.Load(s.ctx)
			s.Require().NoError(err)
			s.Equal(state, loaded)
		})
	}
}

func (s *RepositoryContractSuite) TestSave_MarksExists() {
	s.Require().NoError(s.repo.Save(s.ctx, gamestate.NewDefault()))

	exists, err := s.repo.Exists(s.ctx)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *RepositoryContractSuite) TestSave_LastWriteWins() {
	first := testutils.CreateTestGameState("Sildar")
	second := testutils.CreateTestGameState("Gundren")

	s.Require().NoError(s.repo.Save(s.ctx, first))
	s.Require().NoError(s.repo.Save(s.ctx, second))

	loaded, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("Gundren", loaded.Player.Name)
}

func (s *RepositoryContractSuite) TestLoad_DoesNotAliasStoredState() {
	state := testutils.CreateGoblinAmbush()
	s.Require().NoError(s.repo.Save(s.ctx, state))

	loaded, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	loaded.Combat.End()
	loaded.AddItems("Stolen goods")

	reloaded, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.True(reloaded.Combat.Active)
	s.Len(reloaded.Combat.Enemies, 2)
	s.Equal(state.Inventory, reloaded.Inventory)
}

func (s *RepositoryContractSuite) TestSave_NilState() {
	s.Error(s.repo.Save(s.ctx, nil))
}

func negativePlayerState() *gamestate.GameState {
	state := testutils.CreateTestGameState("Sildar")
	state.Player.TakeDamage(20)
	return state
}
