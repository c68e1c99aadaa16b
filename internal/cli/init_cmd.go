package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/lookupsep/internal/config"
	"github.com/NikitaCOEUR/lookupsep/internal/derrors"
)

// Init creates a sample .lookupsep.yml in the current directory
func Init() error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	if existing := config.FindConfigFile(currentDir); existing != "" {
		return derrors.NewConfigurationError(existing, fmt.Sprintf("config file already exists: %s", existing), nil)
	}

	configPath := filepath.Join(currentDir, config.SupportedConfigNames[0])
	if err := os.WriteFile(configPath, []byte(config.SampleConfig()), 0644); err != nil {
		return derrors.NewConfigurationError(configPath, "failed to create config file", err)
	}

	fmt.Printf("Created sample config: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Set api.base_url to your records endpoint")
	fmt.Println("  2. Run 'lookupsep validate' to check the file")
	fmt.Println("  3. Run 'lookupsep edit' to open the field")

	return nil
}
