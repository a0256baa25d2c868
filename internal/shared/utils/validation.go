package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

// Size limits
const (
	MaxParamsSize     = 64 * 1024 // tool parameters, serialized
	MaxTokenLength    = 8 * 1024
	MaxIDLength       = 128
	MaxCategoryLength = 64
)

var (
	// SafeIDPattern allows alphanumeric, hyphens, underscores
	SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// ToolIDPattern also allows dots, for the service.tool format
	ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	// CategoryPattern allows lowercase letters, numbers and hyphens
	CategoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateID validates an ID field
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}
	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName)
	}
	return nil
}

// ValidateToolID validates a tool ID field
func ValidateToolID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}
	if id != "" && !ToolIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)", fieldName)
	}
	return nil
}

// ValidateCategory validates a category field
func ValidateCategory(category string, required bool) error {
	if err := ValidateString(category, "category", 0, MaxCategoryLength, required); err != nil {
		return err
	}
	if category != "" && !CategoryPattern.MatchString(category) {
		return fmt.Errorf("category must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// ValidateToken validates an argument token. Any content is legal; only
// the length is bounded.
func ValidateToken(token string) error {
	if len(token) > MaxTokenLength {
		return fmt.Errorf("token must not exceed %d bytes", MaxTokenLength)
	}
	return nil
}

// ValidateParams checks the serialized size of tool parameters.
func ValidateParams(params map[string]interface{}) error {
	data, err := sonic.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	if len(data) > MaxParamsSize {
		return fmt.Errorf("params size %d bytes exceeds maximum %d bytes", len(data), MaxParamsSize)
	}
	return nil
}
