package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) add(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate validates a config file
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := read(path)
	if err != nil {
		result.add("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	if _, err := pair.ParseSide(cfg.Side); err != nil {
		result.add("side", fmt.Sprintf("Side must be left or right, got %q", cfg.Side))
	}

	if cfg.MinQueryLength < 0 {
		result.add("min_query_length", "Minimum query length cannot be negative")
	}

	sep := cfg.Separator
	if sep == "" {
		sep = pair.DefaultSeparator
	}

	if strings.TrimSpace(cfg.Value) != "" {
		if _, ok := pair.Parse(cfg.Value, sep); !ok {
			result.add("value", fmt.Sprintf("Value %q has no two non-empty parts around %q", cfg.Value, sep))
		}
	}

	if cfg.LabelFormat != "" {
		if _, err := template.New("label").Funcs(sprig.TxtFuncMap()).Parse(cfg.LabelFormat); err != nil {
			result.add("label_format", fmt.Sprintf("Invalid label template: %v", err))
		}
	}

	if cfg.ShowLabel && strings.TrimSpace(cfg.LabelText) == "" {
		result.add("label_text", "Label is shown but label_text is empty")
	}

	if cfg.API.BaseURL != "" {
		u, err := url.Parse(cfg.API.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			result.add("api/base_url", fmt.Sprintf("Base URL must be an absolute http(s) URL, got %q", cfg.API.BaseURL))
		}
	}

	if cfg.API.Timeout < 0 {
		result.add("api/timeout", "Timeout cannot be negative")
	}

	return result, nil
}
