package http

import (
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/monitoring"
)

// HandlerMetrics wraps handlers with metrics tracking. A nil metrics value
// disables tracking.
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// TrackTool starts timing a tool call. The returned func records it with
// the given status.
func (hm *HandlerMetrics) TrackTool(toolID string) func(status string) {
	if hm == nil || hm.metrics == nil {
		return func(string) {}
	}
	timer := monitoring.NewTimer(hm.metrics, toolID)
	return timer.Stop
}

// Snapshot returns the current metric values, or nil when tracking is off.
func (hm *HandlerMetrics) Snapshot() *monitoring.Snapshot {
	if hm == nil || hm.metrics == nil {
		return nil
	}
	s := hm.metrics.Snapshot()
	return &s
}
