package location

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/urlargs/internal/nav"
	"github.com/GriffinCanCode/urlargs/internal/shared/types"
)

// Recorder receives session and link-open events, typically for metrics.
type Recorder interface {
	SetActiveSessions(n int)
	RecordLinkOpenFailure(kind string)
}

type nopRecorder struct{}

func (nopRecorder) SetActiveSessions(int)        {}
func (nopRecorder) RecordLinkOpenFailure(string) {}

// Config configures the location provider.
type Config struct {
	MaxSessions int
	Logger      *zap.Logger
	Recorder    Recorder
}

// Provider implements the location service
type Provider struct {
	sessions *SessionManager
	logger   *zap.Logger
	recorder Recorder
}

// NewProvider creates a location provider
func NewProvider(cfg Config) *Provider {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}

	p := &Provider{
		logger:   logger,
		recorder: recorder,
	}
	p.sessions = NewSessionManager(cfg.MaxSessions,
		nav.WithLogger(logger),
		nav.WithFailureHook(func(string, error) {
			p.recorder.RecordLinkOpenFailure("memory")
		}),
	)
	return p
}

// Sessions exposes the session manager.
func (p *Provider) Sessions() *SessionManager {
	return p.sessions
}

// Definition returns service definition
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:           "location",
		Name:         "Location",
		Description:  "Query string to argument vector translation over in-memory locations",
		Category:     types.CategoryNavigation,
		Capabilities: []string{"sessions", "parameters", "tokens", "hash", "links"},
		Tools:        p.getTools(),
	}
}

func (p *Provider) getTools() []types.Tool {
	session := types.Parameter{Name: "session_id", Type: "string", Description: "Location session ID", Required: true}

	return []types.Tool{
		{
			ID:          "location.create",
			Name:        "Create Session",
			Description: "Open a session positioned at a URL",
			Parameters: []types.Parameter{
				{Name: "url", Type: "string", Description: "Starting location (default http://localhost/)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "location.close",
			Name:        "Close Session",
			Description: "Discard a session",
			Parameters:  []types.Parameter{session},
			Returns:     "boolean",
		},
		{
			ID:          "location.params",
			Name:        "List Parameters",
			Description: "Path followed by one argument token per query parameter",
			Parameters: []types.Parameter{
				session,
				{Name: "name", Type: "string", Description: "Also report the last parameter with this name", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "location.parse",
			Name:        "Parse Token",
			Description: "Split an argument token into name and optional value",
			Parameters: []types.Parameter{
				{Name: "token", Type: "string", Description: "Argument token", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "location.set",
			Name:        "Set Parameter",
			Description: "Create or overwrite a query parameter",
			Parameters: []types.Parameter{
				session,
				{Name: "key", Type: "string", Description: "Parameter name", Required: true},
				{Name: "value", Type: "string", Description: "Parameter value, empty for a bare flag", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "location.delete",
			Name:        "Delete Parameter",
			Description: "Remove every occurrence of a query parameter",
			Parameters: []types.Parameter{
				session,
				{Name: "key", Type: "string", Description: "Parameter name", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "location.path",
			Name:        "Get Path",
			Description: "Location without query and hash, or the full location",
			Parameters: []types.Parameter{
				session,
				{Name: "full", Type: "boolean", Description: "Include query and hash", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "location.hash",
			Name:        "Get Hash",
			Description: "Text after '#'",
			Parameters:  []types.Parameter{session},
			Returns:     "string",
		},
		{
			ID:          "location.setHash",
			Name:        "Set Hash",
			Description: "Replace the hash fragment",
			Parameters: []types.Parameter{
				session,
				{Name: "hash", Type: "string", Description: "New fragment", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "location.open",
			Name:        "Open Link",
			Description: "Navigate to a URL, or open it in a new context",
			Parameters: []types.Parameter{
				session,
				{Name: "url", Type: "string", Description: "Target URL, absolute or relative", Required: true},
				{Name: "new_tab", Type: "boolean", Description: "Open in a new context", Required: false},
			},
			Returns: "object",
		},
	}
}

// Execute routes tool calls
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "location.create":
		return p.Create(ctx, params, appCtx)
	case "location.close":
		return p.Close(ctx, params, appCtx)
	case "location.params":
		return p.Params(ctx, params, appCtx)
	case "location.parse":
		return p.Parse(ctx, params, appCtx)
	case "location.set":
		return p.Set(ctx, params, appCtx)
	case "location.delete":
		return p.Delete(ctx, params, appCtx)
	case "location.path":
		return p.Path(ctx, params, appCtx)
	case "location.hash":
		return p.Hash(ctx, params, appCtx)
	case "location.setHash":
		return p.SetHash(ctx, params, appCtx)
	case "location.open":
		return p.Open(ctx, params, appCtx)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
