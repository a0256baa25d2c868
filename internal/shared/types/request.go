package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID    string                 `json:"tool_id" binding:"required"`
	Params    map[string]interface{} `json:"params"`
	SessionID *string                `json:"session_id,omitempty"`
}

// ParseResponse describes one classified argument token.
type ParseResponse struct {
	Token       string `json:"token"`
	IsParameter bool   `json:"is_parameter"`
	Name        string `json:"name,omitempty"`
	Value       string `json:"value,omitempty"`
	HasValue    bool   `json:"has_value"`
}
