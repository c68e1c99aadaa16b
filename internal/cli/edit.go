package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/NikitaCOEUR/lookupsep/internal/field"
	"github.com/NikitaCOEUR/lookupsep/internal/tui"
)

// EditParams contains parameters for the edit command
type EditParams struct {
	Common
	// Value overrides the stored value of the config
	Value string
	// OutputPath receives the final value as JSON when set
	OutputPath string
	// LogPath receives the logs; the terminal is owned by the field
	LogPath string
}

// Edit runs the interactive field and prints the final value
func Edit(params EditParams) error {
	return edit(params, isTerminal)
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func edit(params EditParams, terminal func() bool) error {
	logOut := io.Discard
	if params.LogPath != "" {
		f, err := os.OpenFile(params.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}

	comps, err := initializeComponents(params.Common, logOut)
	if err != nil {
		return err
	}
	cfg := comps.config
	if params.Value != "" {
		cfg.Value = params.Value
	}

	if !terminal() {
		return fmt.Errorf("edit needs an interactive terminal, use 'lookupsep suggest' in scripts")
	}

	result, err := tui.Run(cfg.FieldOptions(), comps.searcher(), comps.log)
	if err != nil {
		return err
	}

	comps.log.Info().Bool("changed", result.Changed).Str("value", result.Outputs.Value).Msg("Field closed")

	fmt.Println(result.Outputs.Value)
	return writeOutputs(params.OutputPath, result.Outputs)
}

// writeOutputs stores outputs as JSON at path; an empty path is a no-op
func writeOutputs(path string, outputs field.Outputs) error {
	if path == "" {
		return nil
	}
	data, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outputs: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write outputs: %w", err)
	}
	return nil
}
