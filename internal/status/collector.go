// Package status collects and displays the state of a lookupsep field.
package status

import (
	"context"
	"fmt"

	"github.com/NikitaCOEUR/lookupsep/internal/config"
	"github.com/NikitaCOEUR/lookupsep/internal/field"
	"github.com/NikitaCOEUR/lookupsep/internal/pair"
	"github.com/NikitaCOEUR/lookupsep/pkg/version"
)

// Collect gathers the display data from a configuration and a field snapshot
func Collect(cfg *config.Config, snap field.Snapshot) *Data {
	data := &Data{
		ConfigPath:     cfg.Path,
		Version:        version.Version,
		Separator:      cfg.Separator,
		Side:           cfg.Side,
		Editable:       snap.Editable,
		MinQueryLength: cfg.MinQueryLength,
		Label:          snap.Label,
		ShowLabel:      snap.ShowLabel,
		BaseURL:        cfg.API.BaseURL,
		TokenSet:       cfg.API.Token != "",
		Timeout:        cfg.API.Timeout,
		Value:          snap.Value,
		Input:          snap.Input,
		State:          snap.State.String(),
		Suggestions:    snap.Suggestions,
		Message:        snap.Message,
	}

	if p, ok := pair.Parse(snap.Value, cfg.Separator); ok {
		data.HasValue = true
		data.Left = p.Left
		data.Right = p.Right
	}

	return data
}

// CollectWithQuery runs query through a field built from cfg and collects the
// resulting state. The search runs on the field's own goroutine; the result
// is brought back here before being applied.
func CollectWithQuery(ctx context.Context, cfg *config.Config, searcher field.Searcher, query string) (*Data, error) {
	events := make(chan field.Event, 1)
	ctrl := field.New(cfg.FieldOptions(), searcher, nil, field.WithPost(func(ev field.Event) {
		events <- ev
	}))
	defer ctrl.Destroy()

	ctrl.Dispatch(field.QueryChanged{Text: query})

	if ctrl.Snapshot().State == field.Querying {
		select {
		case ev := <-events:
			ctrl.Dispatch(ev)
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for suggestions: %w", ctx.Err())
		}
	}

	data := Collect(cfg, ctrl.Snapshot())
	data.Query = query
	return data, nil
}
