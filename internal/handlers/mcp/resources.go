package mcp

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GameStateURI addresses the current record as a resource
const GameStateURI = "gamestate://current"

// stateRules tells the agent when to call each tool
const stateRules = `You are the Dungeon Master. Keep the game state current with these tools:
1. READ FIRST: always call read_gamestate before narrating any action in combat to check current HP.
2. CHARACTER CREATION: call initialize_player immediately after the player confirms their character details.
3. STARTING COMBAT: call start_combat immediately when a fight begins. Give every enemy a unique name.
4. COMBAT ACTIONS:
   * Player damage: when the player hits, ask for damage, then call apply_damage with the enemy's exact name.
   * Enemy turn: for each enemy, roll to hit against the player's AC from read_gamestate, and on a hit call apply_damage with target "player".
5. LOOTING: when the player loots enemies or finds treasure, call add_to_inventory to record it permanently.
6. Call end_combat if enemies flee or the player escapes.`

// GameStateResource defines the MCP resource for the current record.
func GameStateResource() *mcpsdk.Resource {
	return &mcpsdk.Resource{
		Name:        "gamestate",
		Title:       "Game State",
		Description: "Read-only view of the player, combat and inventory",
		MIMEType:    "application/json",
		URI:         GameStateURI,
	}
}

// StateRulesPrompt defines the MCP prompt with the state management rules.
func StateRulesPrompt() *mcpsdk.Prompt {
	return &mcpsdk.Prompt{
		Name:        "state_rules",
		Description: "When the dungeon master should call each game state tool",
	}
}

// ReadGameStateResource returns the record as indented JSON
func (h *Handler) ReadGameStateResource(ctx context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
	uri := GameStateURI
	if req != nil && req.Params != nil && req.Params.URI != "" {
		uri = req.Params.URI
	}

	current, err := h.stateService.ReadGameState(ctx)
	if err != nil {
		return nil, fmt.Errorf("read game state: %w", err)
	}

	data, err := gamestate.Encode(current)
	if err != nil {
		return nil, fmt.Errorf("encode game state: %w", err)
	}

	return &mcpsdk.ReadResourceResult{
		Contents: []*mcpsdk.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// StateRules returns the state management rules as a user message
func (h *Handler) StateRules(_ context.Context, _ *mcpsdk.GetPromptRequest) (*mcpsdk.GetPromptResult, error) {
	return &mcpsdk.GetPromptResult{
		Description: StateRulesPrompt().Description,
		Messages: []*mcpsdk.PromptMessage{
			{
				Role: "user",
				Content: &mcpsdk.TextContent{
					Text: stateRules,
				},
			},
		},
	}, nil
}
