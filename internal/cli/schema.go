package cli

import (
	"fmt"
	"os"

	"github.com/NikitaCOEUR/lookupsep/internal/config"
)

// Schema prints the JSON Schema of lookupsep config files, or writes it to outputPath
func Schema(outputPath string) error {
	schemaJSON := config.GetSchemaJSON()

	if outputPath == "" {
		fmt.Println(schemaJSON)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(schemaJSON), 0644); err != nil {
		return fmt.Errorf("failed to write schema to %s: %w", outputPath, err)
	}
	fmt.Printf("JSON Schema written to: %s\n", outputPath)
	return nil
}
