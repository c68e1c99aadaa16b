package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("15"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n")

	b.WriteString(renderField(data))
	b.WriteString("\n")

	b.WriteString(renderValue(data))
	b.WriteString("\n")

	if data.Query != "" {
		b.WriteString(renderSuggestions(data))
		b.WriteString("\n")
	}

	b.WriteString(renderAPI(data))

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	configPath := data.ConfigPath
	if configPath == "" {
		configPath = "(defaults)"
	}
	b.WriteString(titleStyle.Render("📝 Config: ") + valueStyle.Render(configPath) + "\n")
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	return b.String()
}

func renderField(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Field:") + "\n")

	b.WriteString("   " + keyStyle.Render("Side: ") + valueStyle.Render(data.Side) + "\n")
	b.WriteString("   " + keyStyle.Render("Separator: ") + valueStyle.Render(fmt.Sprintf("%q", data.Separator)) + "\n")
	b.WriteString("   " + keyStyle.Render("Min query length: ") + valueStyle.Render(fmt.Sprintf("%d", data.MinQueryLength)) + "\n")

	if data.Editable {
		b.WriteString("   " + keyStyle.Render("Editable: ") + successStyle.Render("✓ yes") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Editable: ") + warningStyle.Render("✗ read-only") + "\n")
	}

	if data.ShowLabel {
		b.WriteString("   " + keyStyle.Render("Label: ") + valueStyle.Render(data.Label))
	} else {
		b.WriteString("   " + keyStyle.Render("Label: ") + subtleStyle.Render("hidden"))
	}

	return b.String()
}

func renderValue(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🔗 Value:") + "\n")

	if !data.HasValue {
		if data.Value == "" {
			b.WriteString("   " + subtleStyle.Render("No value"))
		} else {
			b.WriteString("   " + valueStyle.Render(data.Value) + " " + subtleStyle.Render("(not a pair, treated as empty)"))
		}
		return b.String()
	}

	left := valueStyle.Render(data.Left)
	right := valueStyle.Render(data.Right)
	if data.Side == "right" {
		right = activeStyle.Render(data.Right)
	} else {
		left = activeStyle.Render(data.Left)
	}

	b.WriteString("   " + keyStyle.Render("Stored: ") + valueStyle.Render(data.Value) + "\n")
	b.WriteString("   " + keyStyle.Render("Left: ") + left + "\n")
	b.WriteString("   " + keyStyle.Render("Right: ") + right + "\n")
	b.WriteString("   " + keyStyle.Render("Input: ") + valueStyle.Render(data.Input))

	return b.String()
}

func renderSuggestions(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("🔍 Suggestions for %q:", data.Query)) + "\n")
	b.WriteString("   " + keyStyle.Render("State: ") + valueStyle.Render(data.State) + "\n")

	if data.Message != "" {
		b.WriteString("   " + errorStyle.Render("✗ "+data.Message) + "\n")
	}

	if len(data.Suggestions) == 0 {
		b.WriteString("   " + subtleStyle.Render("No suggestions"))
		return b.String()
	}

	for i, s := range data.Suggestions {
		b.WriteString(fmt.Sprintf("   %d. %s\n", i+1, valueStyle.Render(s)))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderAPI(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🌍 API:") + "\n")

	if data.BaseURL == "" {
		b.WriteString("   " + warningStyle.Render("No base URL configured, suggestions are disabled"))
		return b.String()
	}

	b.WriteString("   " + keyStyle.Render("Base URL: ") + valueStyle.Render(data.BaseURL) + "\n")
	if data.TokenSet {
		b.WriteString("   " + keyStyle.Render("Token: ") + successStyle.Render("✓ set") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Token: ") + subtleStyle.Render("none") + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Timeout: ") + valueStyle.Render(data.Timeout.String()))

	return b.String()
}
