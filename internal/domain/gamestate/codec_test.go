package gamestate_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrDefault_FallsBackToDefault(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "empty document", data: ""},
		{name: "whitespace", data: "  \n"},
		{name: "invalid syntax", data: `{"player": {"name": "Sildar"`},
		{name: "empty object", data: `{}`},
		{name: "no player key", data: `{"foo": 1}`},
		{name: "null", data: `null`},
		{name: "null player", data: `{"player": null, "inventory": ["rope"]}`},
		{name: "wrong shape", data: `["player"]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state, err := gamestate.DecodeOrDefault([]byte(tc.data))

			assert.Error(t, err)
			assert.Equal(t, gamestate.NewDefault(), state)
		})
	}
}

func TestDecode_ReturnsRecordVerbatim(t *testing.T) {
	data := []byte(`{
  "player": {"name": "Nameless", "class": "Rogue"},
  "inventory": ["Thieves' tools", "Thieves' tools"]
}`)

	state, err := gamestate.Decode(data)

	require.NoError(t, err)
	assert.Equal(t, "Nameless", state.Player.Name)
	assert.Nil(t, state.Player.HP)
	assert.Empty(t, state.Player.Location)
	assert.Equal(t, []string{"Thieves' tools", "Thieves' tools"}, state.Inventory)

	// Missing collections are repaired, nothing else is filled in
	require.NotNil(t, state.Combat)
	assert.False(t, state.Combat.Active)
	assert.NotNil(t, state.Combat.Enemies)
	assert.NotNil(t, state.Combat.InitiativeOrder)
}

func TestEncode_RoundTrip(t *testing.T) {
	state := gamestate.NewDefault()
	state.Player.Initialize("Sildar", "Human", "Fighter", "Soldier", 12, 16)
	state.Player.TakeDamage(15)
	state.Combat.Start(map[string]int{"Goblin 1": 7, "Wolf Leader": 15})
	state.AddItems("Chain mail", "Chain mail")

	data, err := gamestate.Encode(state)
	require.NoError(t, err)

	decoded, err := gamestate.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestEncode_WireFormat(t *testing.T) {
	data, err := gamestate.Encode(gamestate.NewDefault())
	require.NoError(t, err)

	assert.JSONEq(t, `{
  "player": {"name": "Unknown", "class": "Unknown", "hp": 0, "max_hp": 0, "ac": 0, "location": "Triboar Trail"},
  "combat": {"active": false, "round": 0, "initiative_order": [], "enemies": {}},
  "inventory": []
}`, string(data))
	assert.Contains(t, string(data), "\n  \"player\"")
}

func TestEncode_Nil(t *testing.T) {
	_, err := gamestate.Encode(nil)
	assert.Error(t, err)
}

func TestEncode_KeepsUnknownKeys(t *testing.T) {
	data := []byte(`{
  "player": {"name": "Sildar", "class": "Fighter", "hp": 12, "max_hp": 12, "ac": 16, "location": "Phandalin", "level": 3, "xp": {"total": 300}},
  "combat": {"active": true, "round": 2, "initiative_order": ["Sildar"], "enemies": {"Goblin 1": 7}, "surprised": true},
  "inventory": ["Longsword"],
  "quest": "Find Gundren"
}`)

	state, err := gamestate.Decode(data)
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(state.Player.Extra["level"]))
	assert.JSONEq(t, `"Find Gundren"`, string(state.Extra["quest"]))

	state.AddItems("Rope")
	state.Player.TakeDamage(5)

	encoded, err := gamestate.Encode(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{
  "player": {"name": "Sildar", "class": "Fighter", "hp": 7, "max_hp": 12, "ac": 16, "location": "Phandalin", "level": 3, "xp": {"total": 300}},
  "combat": {"active": true, "round": 2, "initiative_order": ["Sildar"], "enemies": {"Goblin 1": 7}, "surprised": true},
  "inventory": ["Longsword", "Rope"],
  "quest": "Find Gundren"
}`, string(encoded))

	decoded, err := gamestate.Decode(encoded)
	require.NoError(t, err)
	reencoded, err := gamestate.Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(encoded), string(reencoded))
}

func TestEncode_ModeledFieldsWinOverExtra(t *testing.T) {
	state := gamestate.NewDefault()
	state.Extra = gamestate.Extra{"inventory": []byte(`["ghost"]`), "notes": []byte(`"kept"`)}

	encoded, err := gamestate.Encode(state)
	require.NoError(t, err)

	decoded, err := gamestate.Decode(encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded.Inventory)
	assert.Equal(t, gamestate.Extra{"notes": []byte(`"kept"`)}, decoded.Extra)
}

func TestDecode_AcceptsWholeNumbers(t *testing.T) {
	data := []byte(`{
  "player": {"name": "Sildar", "class": "Fighter", "hp": 12.0, "max_hp": 1.2e1, "ac": 16},
  "combat": {"active": true, "round": 0.0, "enemies": {"Goblin 1": 7.0}},
  "inventory": ["Longsword"]
}`)

	state, err := gamestate.Decode(data)

	require.NoError(t, err)
	assert.Equal(t, 12, *state.Player.HP)
	assert.Equal(t, 12, state.Player.MaxHP)
	assert.Equal(t, map[string]int{"Goblin 1": 7}, state.Combat.Enemies)
	assert.Equal(t, []string{"Longsword"}, state.Inventory)
}

func TestDecode_MalformedPlayerIsNotUnusable(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "fractional hp", data: `{"player": {"name": "Sildar", "hp": 12.5}}`},
		{name: "text hp", data: `{"player": {"name": "Sildar", "hp": "twelve"}}`},
		{name: "player is a list", data: `{"player": ["Sildar"]}`},
		{name: "inventory is text", data: `{"player": {"name": "Sildar"}, "inventory": "Longsword"}`},
		{name: "enemy hp is text", data: `{"player": {"name": "Sildar"}, "combat": {"enemies": {"Goblin": "seven"}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state, err := gamestate.DecodeOrDefault([]byte(tc.data))

			require.Error(t, err)
			assert.False(t, errors.Is(err, gamestate.ErrUnusableDocument))
			assert.Nil(t, state)
		})
	}
}

func TestEncode_InitializedSheetHasEveryKey(t *testing.T) {
	state := gamestate.NewDefault()
	state.Player.Initialize("Nameless", "", "Rogue", "", 8, 14)

	encoded, err := gamestate.Encode(state)
	require.NoError(t, err)

	var doc struct {
		Player map[string]any `json:"player"`
	}
	require.NoError(t, json.Unmarshal(encoded, &doc))
	for _, key := range []string{"name", "race", "class", "background", "hp", "max_hp", "ac"} {
		assert.Contains(t, doc.Player, key)
	}
}
