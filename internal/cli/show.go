package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/NikitaCOEUR/lookupsep/internal/field"
	"github.com/NikitaCOEUR/lookupsep/internal/status"
)

// ShowParams contains parameters for the show command
type ShowParams struct {
	Common
	// Value overrides the stored value of the config
	Value string
	// Query runs one search through the field before rendering
	Query string
}

// Show renders the state of a field built from the configuration
func Show(ctx context.Context, params ShowParams) error {
	comps, err := initializeComponents(params.Common, os.Stderr)
	if err != nil {
		return err
	}
	cfg := comps.config
	if params.Value != "" {
		cfg.Value = params.Value
	}

	var data *status.Data
	if params.Query != "" {
		provider, err := comps.requireProvider()
		if err != nil {
			return err
		}
		data, err = status.CollectWithQuery(ctx, cfg, provider, params.Query)
		if err != nil {
			return err
		}
	} else {
		ctrl := field.New(cfg.FieldOptions(), nil, nil)
		data = status.Collect(cfg, ctrl.Snapshot())
		ctrl.Destroy()
	}

	fmt.Println(status.Render(data))
	return nil
}
