package status

import "time"

// Data contains all the information to display for a field
type Data struct {
	// Header
	ConfigPath string
	Version    string

	// Configuration
	Separator      string
	Side           string
	Editable       bool
	MinQueryLength int
	Label          string
	ShowLabel      bool

	// API
	BaseURL  string
	TokenSet bool
	Timeout  time.Duration

	// Value
	Value    string
	HasValue bool
	Left     string
	Right    string
	Input    string

	// Field state after an optional query
	State       string
	Query       string
	Suggestions []string
	Message     string
}
