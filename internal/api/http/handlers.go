package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/urlargs/internal/host"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/urlargs/internal/params"
	"github.com/GriffinCanCode/urlargs/internal/providers/location"
	"github.com/GriffinCanCode/urlargs/internal/service"
	"github.com/GriffinCanCode/urlargs/internal/shared/id"
	"github.com/GriffinCanCode/urlargs/internal/shared/types"
	"github.com/GriffinCanCode/urlargs/internal/shared/utils"
	"github.com/GriffinCanCode/urlargs/internal/version"
)

// Handlers contains HTTP request handlers
type Handlers struct {
	registry *service.Registry
	sessions *location.SessionManager
	metrics  *HandlerMetrics
	tracer   *tracing.Tracer
	logger   *zap.Logger
}

// NewHandlers creates a new handlers instance. sessions, metrics, tracer and
// logger may be nil.
func NewHandlers(registry *service.Registry, sessions *location.SessionManager, metrics *HandlerMetrics, tracer *tracing.Tracer, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		registry: registry,
		sessions: sessions,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
	}
}

// Root handles the root endpoint
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "urlargs",
		"version": version.String(),
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	resp := gin.H{
		"status":           "healthy",
		"version":          version.String(),
		"version_packed":   version.Packed(),
		"service_registry": h.registry.Stats(),
	}
	if h.sessions != nil {
		resp["sessions"] = h.sessions.Count()
	}
	if snap := h.metrics.Snapshot(); snap != nil {
		resp["metrics"] = snap
	}
	c.JSON(http.StatusOK, resp)
}

// Echo treats the request's own URL as the location and returns its
// argument vector.
func (h *Handlers) Echo(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	loc := &url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawPath:  c.Request.URL.RawPath,
		RawQuery: c.Request.URL.RawQuery,
	}

	mem := host.FromURL(loc)
	args := params.Capture(mem)

	flags := args.Flags()
	parsed := make([]types.ParseResponse, 0, len(flags))
	for _, token := range flags {
		parsed = append(parsed, parseResponse(token))
	}

	c.JSON(http.StatusOK, gin.H{
		"path":      mem.Path(false),
		"full_path": mem.Path(true),
		"tokens":    args.Tokens(),
		"parsed":    parsed,
	})
}

// Parse classifies the token query parameter
func (h *Handlers) Parse(c *gin.Context) {
	token, ok := c.GetQuery("token")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token query parameter required"})
		return
	}
	if err := utils.ValidateToken(token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, parseResponse(token))
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")
	if err := utils.ValidateCategory(categoryStr, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SessionID != nil {
		if err := utils.ValidateID(*req.SessionID, "session_id", false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if err := utils.ValidateParams(req.Params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := id.NewRequestID().String()
	appCtx := &types.Context{
		SessionID: req.SessionID,
		RequestID: &requestID,
	}

	ctx := c.Request.Context()
	var span *tracing.Span
	if h.tracer != nil {
		span, ctx = h.tracer.StartSpan(ctx, req.ToolID)
		span.SetTag("request_id", requestID)
	}
	stop := h.metrics.TrackTool(req.ToolID)

	result, err := h.registry.Execute(ctx, req.ToolID, req.Params, appCtx)
	if err == nil && result == nil {
		result = types.Failure("tool returned no result")
	}

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case !result.Success:
		status = "failure"
	}
	stop(status)
	if span != nil {
		if err != nil {
			span.SetError(err)
		}
		span.SetTag("status", status)
		span.Finish()
		h.tracer.Submit(span)
	}

	if err != nil {
		h.logger.Warn("Tool execution failed",
			zap.String("tool_id", req.ToolID),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseResponse(token string) types.ParseResponse {
	resp := types.ParseResponse{Token: token}
	if p, ok := params.Parse(token); ok {
		resp.IsParameter = true
		resp.Name = p.Name
		resp.Value = p.Value
		resp.HasValue = p.HasValue
	}
	return resp
}
