package gamestate_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	state := gamestate.NewDefault()

	require.NotNil(t, state.Player)
	assert.Equal(t, "Unknown", state.Player.Name)
	assert.Equal(t, "Unknown", state.Player.Class)
	assert.Nil(t, state.Player.Race)
	assert.Nil(t, state.Player.Background)
	require.NotNil(t, state.Player.HP)
	assert.Equal(t, 0, *state.Player.HP)
	assert.Equal(t, "Triboar Trail", state.Player.Location)

	require.NotNil(t, state.Combat)
	assert.False(t, state.Combat.Active)
	assert.Equal(t, 0, state.Combat.Round)
	assert.NotNil(t, state.Combat.InitiativeOrder)
	assert.NotNil(t, state.Combat.Enemies)
	assert.Empty(t, state.Combat.Enemies)
	assert.NotNil(t, state.Inventory)

	// Each call builds an independent record
	state.AddItems("Shortbow")
	assert.Empty(t, gamestate.NewDefault().Inventory)
}

func TestAddItems_AppendsInOrderWithDuplicates(t *testing.T) {
	state := gamestate.NewDefault()

	state.AddItems("8 copper pieces", "Shortbow")
	state.AddItems("Shortbow")

	assert.Equal(t, []string{"8 copper pieces", "Shortbow", "Shortbow"}, state.Inventory)
}

func TestPlayer_Initialize(t *testing.T) {
	player := gamestate.NewDefault().Player

	player.Initialize("Sildar", "Human", "Fighter", "Soldier", 12, 16)

	assert.Equal(t, "Sildar", player.Name)
	require.NotNil(t, player.Race)
	assert.Equal(t, "Human", *player.Race)
	assert.Equal(t, "Fighter", player.Class)
	require.NotNil(t, player.Background)
	assert.Equal(t, "Soldier", *player.Background)
	require.True(t, player.HasHP())
	assert.Equal(t, 12, *player.HP)
	assert.Equal(t, 12, player.MaxHP)
	assert.Equal(t, 16, player.AC)
	assert.Equal(t, "Triboar Trail", player.Location)
}

func TestPlayer_TakeDamageHasNoFloor(t *testing.T) {
	player := &gamestate.Player{HP: gamestate.IntPtr(3)}

	oldHP, newHP := player.TakeDamage(5)

	assert.Equal(t, 3, oldHP)
	assert.Equal(t, -2, newHP)
	assert.Equal(t, -2, *player.HP)
}

func TestPlayer_HasHP(t *testing.T) {
	var missing *gamestate.Player
	assert.False(t, missing.HasHP())
	assert.False(t, (&gamestate.Player{Name: "Nameless"}).HasHP())
	assert.True(t, (&gamestate.Player{HP: gamestate.IntPtr(0)}).HasHP())
}
