package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateService "github.com/KirkDiggler/dnd-dm-state/internal/services/state"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names as seen by the orchestrating agent
const (
	ReadGameStateToolName    = "read_gamestate"
	InitializePlayerToolName = "initialize_player"
	AddToInventoryToolName   = "add_to_inventory"
	StartCombatToolName      = "start_combat"
	ApplyDamageToolName      = "apply_damage"
	EndCombatToolName        = "end_combat"
)

// EmptyInput is the input of tools that take no arguments
type EmptyInput struct{}

// InitializePlayerInput represents the MCP tool input for character setup.
type InitializePlayerInput struct {
	Name       string `json:"name" jsonschema:"character's chosen name"`
	Race       string `json:"race" jsonschema:"character's race"`
	CharClass  string `json:"char_class" jsonschema:"character's class"`
	Background string `json:"background" jsonschema:"character's background"`
	MaxHP      int    `json:"max_hp" jsonschema:"standard level 1 max HP, e.g. Fighter = 10 + CON mod"`
	AC         int    `json:"ac" jsonschema:"starting armor class from starting equipment, e.g. Chain Mail = 16"`
}

// AddToInventoryInput represents the MCP tool input for recording loot.
type AddToInventoryInput struct {
	Items []string `json:"items" jsonschema:"item names, e.g. [\"8 copper pieces\", \"Shortbow\"]"`
}

// StartCombatInput represents the MCP tool input for a new encounter.
type StartCombatInput struct {
	Enemies map[string]int `json:"enemies" jsonschema:"unique enemy names mapped to starting HP, e.g. {\"Goblin 1\": 7, \"Wolf Leader\": 15}"`
}

// ApplyDamageInput represents the MCP tool input for dealing damage.
type ApplyDamageInput struct {
	Target string `json:"target" jsonschema:"exact name of the target, e.g. \"player\" or \"Goblin 1\""`
	Damage int    `json:"damage" jsonschema:"amount of damage to deal"`
}

// MessageOutput is the result of the simple mutation tools.
type MessageOutput struct {
	Message   string `json:"message" jsonschema:"human readable outcome"`
	ErrorCode string `json:"error_code,omitempty" jsonschema:"set when the request was rejected"`
}

// ApplyDamageOutput is the result of apply_damage.
type ApplyDamageOutput struct {
	Message     string `json:"message" jsonschema:"human readable outcome"`
	OldHP       int    `json:"old_hp" jsonschema:"target HP before the damage"`
	NewHP       int    `json:"new_hp" jsonschema:"target HP after the damage"`
	Killed      bool   `json:"killed" jsonschema:"an enemy died and was removed"`
	CombatEnded bool   `json:"combat_ended" jsonschema:"the last enemy died"`
	ErrorCode   string `json:"error_code,omitempty" jsonschema:"set when the request was rejected"`
}

// ReadGameStateTool defines the MCP tool schema for reading the state.
func ReadGameStateTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name: ReadGameStateToolName,
		Description: "Returns the full current game state. Use this at the start of every turn " +
			"to check HP, active combatants, and inventory.",
	}
}

// InitializePlayerTool defines the MCP tool schema for character setup.
func InitializePlayerTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        InitializePlayerToolName,
		Description: "Sets the permanent character details after creation is complete. HP starts at max_hp.",
	}
}

// AddToInventoryTool defines the MCP tool schema for recording loot.
func AddToInventoryTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        AddToInventoryToolName,
		Description: "Adds a list of items to the player's inventory. Duplicates are kept.",
	}
}

// StartCombatTool defines the MCP tool schema for starting an encounter.
func StartCombatTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name: StartCombatToolName,
		Description: "Initializes a combat encounter. Enemy names must be unique; " +
			"number duplicates such as \"Goblin 1\" and \"Goblin 2\".",
	}
}

// ApplyDamageTool defines the MCP tool schema for dealing damage.
func ApplyDamageTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name: ApplyDamageToolName,
		Description: "Applies damage to the player or an enemy. Handles death automatically. " +
			"Use target \"player\" for the character and the exact enemy name otherwise.",
	}
}

// EndCombatTool defines the MCP tool schema for ending an encounter.
func EndCombatTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        EndCombatToolName,
		Description: "Forcibly ends combat, e.g. if enemies flee or the player escapes.",
	}
}

// ReadGameState returns the whole record, including keys the store does not
// model, as structured content
func (h *Handler) ReadGameState(ctx context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, map[string]any, error) {
	invocationID := h.uuidGenerator.New()

	current, err := h.stateService.ReadGameState(ctx)
	if err != nil {
		return nil, nil, toolFailure(invocationID, ReadGameStateToolName, err)
	}

	document, err := stateDocument(current)
	if err != nil {
		return nil, nil, toolFailure(invocationID, ReadGameStateToolName, err)
	}

	return &mcpsdk.CallToolResult{Meta: map[string]any{InvocationIDKey: invocationID}}, document, nil
}

// InitializePlayer records the finished character sheet
func (h *Handler) InitializePlayer(ctx context.Context, _ *mcpsdk.CallToolRequest, input InitializePlayerInput) (*mcpsdk.CallToolResult, MessageOutput, error) {
	invocationID := h.uuidGenerator.New()
	log.Printf("[%s] %s name=%s class=%s max_hp=%d ac=%d", invocationID, InitializePlayerToolName,
		input.Name, input.CharClass, input.MaxHP, input.AC)

	result, err := h.stateService.InitializePlayer(ctx, &stateService.InitializePlayerInput{
		Name:       input.Name,
		Race:       input.Race,
		Class:      input.CharClass,
		Background: input.Background,
		MaxHP:      input.MaxHP,
		AC:         input.AC,
	})

	return h.messageResult(invocationID, InitializePlayerToolName, result, err)
}

// AddToInventory appends loot to the inventory
func (h *Handler) AddToInventory(ctx context.Context, _ *mcpsdk.CallToolRequest, input AddToInventoryInput) (*mcpsdk.CallToolResult, MessageOutput, error) {
	invocationID := h.uuidGenerator.New()
	log.Printf("[%s] %s items=%s", invocationID, AddToInventoryToolName, strings.Join(input.Items, ","))

	result, err := h.stateService.AddToInventory(ctx, input.Items)
	return h.messageResult(invocationID, AddToInventoryToolName, result, err)
}

// StartCombat opens an encounter
func (h *Handler) StartCombat(ctx context.Context, _ *mcpsdk.CallToolRequest, input StartCombatInput) (*mcpsdk.CallToolResult, MessageOutput, error) {
	invocationID := h.uuidGenerator.New()
	log.Printf("[%s] %s enemies=%s", invocationID, StartCombatToolName,
		strings.Join(gamestate.EnemyNames(input.Enemies), ","))

	result, err := h.stateService.StartCombat(ctx, input.Enemies)
	return h.messageResult(invocationID, StartCombatToolName, result, err)
}

// ApplyDamage damages the player or an enemy
func (h *Handler) ApplyDamage(ctx context.Context, _ *mcpsdk.CallToolRequest, input ApplyDamageInput) (*mcpsdk.CallToolResult, ApplyDamageOutput, error) {
	invocationID := h.uuidGenerator.New()
	log.Printf("[%s] %s target=%s damage=%d", invocationID, ApplyDamageToolName, input.Target, input.Damage)

	result, err := h.stateService.ApplyDamage(ctx, &stateService.ApplyDamageInput{
		Target: input.Target,
		Damage: input.Damage,
	})
	if err != nil {
		if message, code, ok := softError(invocationID, ApplyDamageToolName, err); ok {
			return textResult(invocationID, message), ApplyDamageOutput{Message: message, ErrorCode: code}, nil
		}
		return nil, ApplyDamageOutput{}, toolFailure(invocationID, ApplyDamageToolName, err)
	}

	return textResult(invocationID, result.Message), ApplyDamageOutput{
		Message:     result.Message,
		OldHP:       result.OldHP,
		NewHP:       result.NewHP,
		Killed:      result.Killed,
		CombatEnded: result.CombatEnded,
	}, nil
}

// EndCombat clears the encounter
func (h *Handler) EndCombat(ctx context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, MessageOutput, error) {
	invocationID := h.uuidGenerator.New()
	log.Printf("[%s] %s", invocationID, EndCombatToolName)

	result, err := h.stateService.EndCombat(ctx)
	return h.messageResult(invocationID, EndCombatToolName, result, err)
}

// stateDocument converts the record to a generic JSON object
func stateDocument(current *gamestate.GameState) (map[string]any, error) {
	data, err := gamestate.Encode(current)
	if err != nil {
		return nil, fmt.Errorf("encode game state: %w", err)
	}

	var document map[string]any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	return document, nil
}

func (h *Handler) messageResult(invocationID, tool string, result *stateService.Result, err error) (*mcpsdk.CallToolResult, MessageOutput, error) {
	if err != nil {
		if message, code, ok := softError(invocationID, tool, err); ok {
			return textResult(invocationID, message), MessageOutput{Message: message, ErrorCode: code}, nil
		}
		return nil, MessageOutput{}, toolFailure(invocationID, tool, err)
	}

	return textResult(invocationID, result.Message), MessageOutput{Message: result.Message}, nil
}
