package types

// Category represents service categories
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategorySystem     Category = "system"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Context carries caller information into a tool execution.
type Context struct {
	SessionID *string `json:"session_id,omitempty"`
	RequestID *string `json:"request_id,omitempty"`
}

// Result represents a service execution result
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// Success builds a successful result.
func Success(data map[string]interface{}) *Result {
	return &Result{Success: true, Data: data}
}

// Failure builds a failed result carrying msg.
func Failure(msg string) *Result {
	return &Result{Success: false, Error: &msg}
}
