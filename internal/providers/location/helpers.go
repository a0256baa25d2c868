package location

import (
	"fmt"

	"github.com/GriffinCanCode/urlargs/internal/shared/types"
)

func success(data map[string]interface{}) (*types.Result, error) {
	return types.Success(data), nil
}

func failure(message string) (*types.Result, error) {
	return types.Failure(message), nil
}

// getString extracts a string parameter. Present-but-empty strings are valid.
func getString(params map[string]interface{}, key string, required bool) (string, error) {
	val, exists := params[key]
	if !exists || val == nil {
		if required {
			return "", fmt.Errorf("%s parameter required", key)
		}
		return "", nil
	}
	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return str, nil
}

// getBool extracts a boolean parameter
func getBool(params map[string]interface{}, key string, defaultVal bool) bool {
	if val, ok := params[key].(bool); ok {
		return val
	}
	return defaultVal
}

// sessionID resolves the target session from params, then from appCtx.
func sessionID(params map[string]interface{}, appCtx *types.Context) (string, error) {
	sid, err := getString(params, "session_id", false)
	if err != nil {
		return "", err
	}
	if sid == "" && appCtx != nil && appCtx.SessionID != nil {
		sid = *appCtx.SessionID
	}
	if sid == "" {
		return "", fmt.Errorf("session_id parameter required")
	}
	return sid, nil
}
