package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
	dmmcp "github.com/KirkDiggler/dnd-dm-state/internal/handlers/mcp"
	stateService "github.com/KirkDiggler/dnd-dm-state/internal/services/state"
	mockstate "github.com/KirkDiggler/dnd-dm-state/internal/services/state/mock"
	"github.com/KirkDiggler/dnd-dm-state/internal/testutils"
	"github.com/KirkDiggler/dnd-dm-state/internal/uuid/mocks"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*dmmcp.Handler, *mockstate.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mockstate.NewMockService(ctrl)
	mockUUID := mocks.NewMockGenerator(ctrl)
	mockUUID.EXPECT().New().Return("call-42").AnyTimes()

	return dmmcp.NewHandler(&dmmcp.HandlerConfig{
		StateService:  mockService,
		UUIDGenerator: mockUUID,
	}), mockService
}

func TestNewHandler_PanicsWithoutService(t *testing.T) {
	assert.Panics(t, func() {
		dmmcp.NewHandler(&dmmcp.HandlerConfig{})
	})
	assert.Panics(t, func() {
		dmmcp.NewServer(&dmmcp.ServerConfig{Name: "dm"})
	})
}

func TestHandler_InitializePlayerMapsInput(t *testing.T) {
	handler, mockService := newTestHandler(t)
	mockService.EXPECT().
		InitializePlayer(gomock.Any(), &stateService.InitializePlayerInput{
			Name:       "Sildar",
			Race:       "Human",
			Class:      "Fighter",
			Background: "Soldier",
			MaxHP:      12,
			AC:         16,
		}).
		Return(&stateService.Result{Message: "initialized"}, nil)

	result, output, err := handler.InitializePlayer(context.Background(), &mcpsdk.CallToolRequest{}, dmmcp.InitializePlayerInput{
		Name:       "Sildar",
		Race:       "Human",
		CharClass:  "Fighter",
		Background: "Soldier",
		MaxHP:      12,
		AC:         16,
	})

	require.NoError(t, err)
	assert.Equal(t, "initialized", output.Message)
	assert.Equal(t, "call-42", result.Meta[dmmcp.InvocationIDKey])
}

func TestHandler_HardErrorsFailTheTool(t *testing.T) {
	storeErr := stateerr.Internalf(errors.New("disk full"), "failed to write game state")

	t.Run("apply damage", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().ApplyDamage(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		result, output, err := handler.ApplyDamage(context.Background(), &mcpsdk.CallToolRequest{}, dmmcp.ApplyDamageInput{
			Target: "Goblin 1",
			Damage: 3,
		})

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, result)
		assert.Empty(t, output.ErrorCode)
	})

	t.Run("add to inventory", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().AddToInventory(gomock.Any(), []string{"Rope"}).Return(nil, storeErr)

		result, _, err := handler.AddToInventory(context.Background(), &mcpsdk.CallToolRequest{}, dmmcp.AddToInventoryInput{
			Items: []string{"Rope"},
		})

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, result)
	})

	t.Run("read game state", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().ReadGameState(gomock.Any()).Return(nil, storeErr).Times(2)

		_, _, err := handler.ReadGameState(context.Background(), &mcpsdk.CallToolRequest{}, dmmcp.EmptyInput{})
		assert.ErrorIs(t, err, storeErr)

		_, err = handler.ReadGameStateResource(context.Background(), &mcpsdk.ReadResourceRequest{})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestHandler_InvalidArgumentFailsTheTool(t *testing.T) {
	handler, mockService := newTestHandler(t)
	mockService.EXPECT().
		StartCombat(gomock.Any(), gomock.Any()).
		Return(nil, stateerr.InvalidArgument("enemies are required"))

	result, _, err := handler.StartCombat(context.Background(), &mcpsdk.CallToolRequest{}, dmmcp.StartCombatInput{})

	assert.True(t, stateerr.IsInvalidArgument(err))
	assert.Nil(t, result)
}

func TestHandler_SoftErrorFromEndCombat(t *testing.T) {
	handler, mockService := newTestHandler(t)
	mockService.EXPECT().EndCombat(gomock.Any()).Return(nil, stateerr.PlayerNotInitialized())

	result, output, err := handler.EndCombat(context.Background(), &mcpsdk.CallToolRequest{}, dmmcp.EmptyInput{})

	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "Error: Player HP not initialized. Ask player for their max HP first.",
		result.Content[0].(*mcpsdk.TextContent).Text)
	assert.Equal(t, output.Message, result.Content[0].(*mcpsdk.TextContent).Text)
	assert.Equal(t, "player_not_initialized", output.ErrorCode)
}

func TestHandler_ReadGameStateReturnsStructuredState(t *testing.T) {
	handler, mockService := newTestHandler(t)
	ambush := testutils.CreateGoblinAmbush()
	ambush.Extra = gamestate.Extra{"quest": json.RawMessage(`"Find Gundren"`)}
	mockService.EXPECT().ReadGameState(gomock.Any()).Return(ambush, nil)

	result, output, err := handler.ReadGameState(context.Background(), &mcpsdk.CallToolRequest{}, dmmcp.EmptyInput{})

	require.NoError(t, err)
	assert.Equal(t, "call-42", result.Meta[dmmcp.InvocationIDKey])
	assert.Equal(t, "Find Gundren", output["quest"])

	data, err := json.Marshal(output)
	require.NoError(t, err)
	decoded, err := gamestate.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, ambush.Player, decoded.Player)
	assert.Equal(t, ambush.Combat, decoded.Combat)
	assert.Equal(t, ambush.Inventory, decoded.Inventory)
}
