package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/lookupsep/internal/config"
	"github.com/NikitaCOEUR/lookupsep/internal/field"
	"github.com/NikitaCOEUR/lookupsep/internal/logger"
	"github.com/NikitaCOEUR/lookupsep/internal/suggest"
)

// Common holds the flags shared by the commands that build a field
type Common struct {
	ConfigPath string
	LogLevel   string
	// BaseURL and Token override the api section of the config when set
	BaseURL string
	Token   string
}

// components holds initialized lookupsep components
type components struct {
	config   *config.Config
	log      *logger.Logger
	provider *suggest.Provider
}

// loadConfig loads the config at path, or the one found in the current
// directory when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	currentDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return config.LoadDir(currentDir)
}

// initializeComponents loads the configuration and builds the logger and,
// when a base URL is configured, the suggestion provider. Logs go to w.
func initializeComponents(c Common, w io.Writer) (*components, error) {
	cfg, err := loadConfig(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	if c.BaseURL != "" {
		cfg.API.BaseURL = c.BaseURL
	}
	if c.Token != "" {
		cfg.API.Token = c.Token
	}

	log := logger.New(c.LogLevel, w)
	comps := &components{config: cfg, log: log}

	if cfg.API.BaseURL == "" {
		log.Debug().Msg("No base URL configured, suggestions disabled")
		return comps, nil
	}

	provider, err := suggest.New(cfg.API.BaseURL,
		suggest.WithToken(cfg.API.Token),
		suggest.WithSeparator(cfg.Separator),
		suggest.WithLogger(log),
		suggest.WithFetcher(suggest.NewHTTPFetcher(suggest.WithTimeout(cfg.API.Timeout))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize suggestions: %w", err)
	}
	comps.provider = provider
	return comps, nil
}

// requireProvider fails when no base URL is configured
func (c *components) requireProvider() (*suggest.Provider, error) {
	if c.provider == nil {
		path := c.config.Path
		if path == "" {
			path = "(defaults)"
		}
		return nil, fmt.Errorf("no API base URL configured in %s, set api.base_url or --base-url", path)
	}
	return c.provider, nil
}

// searcher returns the provider as a field.Searcher, nil when suggestions are
// disabled
func (c *components) searcher() field.Searcher {
	if c.provider == nil {
		return nil
	}
	return c.provider
}

// separatorFor returns flag when set, otherwise the separator of the config
func separatorFor(flag, configPath string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", err
	}
	return cfg.Separator, nil
}
