package tui

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"github.com/NikitaCOEUR/lookupsep/internal/field"
	"github.com/NikitaCOEUR/lookupsep/internal/logger"
)

// Result is what the interactive session produced
type Result struct {
	Outputs field.Outputs
	// Changed is true when the user stored at least one new value
	Changed bool
}

// Run opens the terminal, runs the field until the user quits and returns the
// final value
func Run(opts field.Options, searcher field.Searcher, log *logger.Logger) (*Result, error) {
	app, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	result := &Result{}
	ctrl := field.New(opts, searcher,
		func() { result.Changed = true },
		field.WithPost(func(ev field.Event) {
			app.PostEvent(SearchDone{Event: ev})
		}),
		field.WithControllerLogger(log),
	)
	defer ctrl.Destroy()

	if err := app.Run(New(ctrl)); err != nil {
		return nil, fmt.Errorf("terminal session failed: %w", err)
	}

	result.Outputs = ctrl.Outputs()
	return result, nil
}
