package testutils

import (
	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
)

// CreateTestPlayer creates an initialized level 1 fighter
func CreateTestPlayer(name string) *gamestate.Player {
	player := gamestate.NewDefault().Player
	player.Initialize(name, "Human", "Fighter", "Soldier", 12, 16)
	return player
}

// CreateTestGameState creates a state with an initialized player, a few
// inventory items and no encounter
func CreateTestGameState(playerName string) *gamestate.GameState {
	state := gamestate.NewDefault()
	state.Player = CreateTestPlayer(playerName)
	state.AddItems("Chain mail", "Longsword", "Explorer's pack")
	return state
}

// CreateTestCombatState creates a state with an active encounter against the given enemies
func CreateTestCombatState(playerName string, enemies map[string]int) *gamestate.GameState {
	state := CreateTestGameState(playerName)
	state.Combat.Start(enemies)
	return state
}

// CreateGoblinAmbush is the Triboar Trail ambush used throughout the tests
func CreateGoblinAmbush() *gamestate.GameState {
	return CreateTestCombatState("Sildar", map[string]int{
		"Goblin 1": 7,
		"Goblin 2": 7,
	})
}
