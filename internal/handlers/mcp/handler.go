package mcp

import (
	"log"

	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
	stateService "github.com/KirkDiggler/dnd-dm-state/internal/services/state"
	"github.com/KirkDiggler/dnd-dm-state/internal/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// InvocationIDKey is the result metadata key carrying the per-call ID
const InvocationIDKey = "invocation_id"

// Handler exposes the game state service as MCP tools
type Handler struct {
	stateService  stateService.Service
	uuidGenerator uuid.Generator
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	StateService  stateService.Service
	UUIDGenerator uuid.Generator
}

// NewHandler creates a new MCP handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.StateService == nil {
		panic("state service is required")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &Handler{
		stateService:  cfg.StateService,
		uuidGenerator: gen,
	}
}

// Register adds every tool, resource and prompt to the server
func (h *Handler) Register(server *mcpsdk.Server) {
	mcpsdk.AddTool(server, ReadGameStateTool(), h.ReadGameState)
	mcpsdk.AddTool(server, InitializePlayerTool(), h.InitializePlayer)
	mcpsdk.AddTool(server, AddToInventoryTool(), h.AddToInventory)
	mcpsdk.AddTool(server, StartCombatTool(), h.StartCombat)
	mcpsdk.AddTool(server, ApplyDamageTool(), h.ApplyDamage)
	mcpsdk.AddTool(server, EndCombatTool(), h.EndCombat)

	server.AddResource(GameStateResource(), h.ReadGameStateResource)
	server.AddPrompt(StateRulesPrompt(), h.StateRules)
}

// textResult builds a plain text tool result tagged with the invocation ID
func textResult(invocationID, text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
		Meta: map[string]any{
			InvocationIDKey: invocationID,
		},
	}
}

// softError reports the message and code of a recoverable state error. It
// reports false for anything that should surface as a tool failure.
func softError(invocationID, tool string, err error) (string, string, bool) {
	if !stateerr.IsSoft(err) {
		return "", "", false
	}

	code := stateerr.GetCode(err)
	log.Printf("[%s] %s rejected (%s): %s", invocationID, tool, code, stateerr.GetMessage(err))
	return "Error: " + stateerr.GetMessage(err), string(code), true
}

// toolFailure logs an unrecoverable error before it is returned to the SDK
func toolFailure(invocationID, tool string, err error) error {
	log.Printf("[%s] %s failed: %v", invocationID, tool, err)
	return err
}
