// Package field holds the behavior of the composite lookup field: display
// mapping and filtering of suggestions, the pure state machine, and the
// controller that runs it for a host.
package field

import (
	"context"
	"errors"
	"sync"

	"github.com/NikitaCOEUR/lookupsep/internal/derrors"
	"github.com/NikitaCOEUR/lookupsep/internal/logger"
	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// Searcher is the suggestion source used by the controller
type Searcher interface {
	Search(ctx context.Context, query string, minLength int) ([]pair.Pair, error)
}

// Options is the configuration of one field instance, read once
type Options struct {
	Side           pair.Side
	Separator      string
	MinQueryLength int
	Editable       bool
	Label          string
	ShowLabel      bool
	// Value is the composite value stored by the host
	Value string
}

// Outputs is what the host reads back
type Outputs struct {
	Value string `json:"value"`
}

// Snapshot is a read-only view of the field for rendering
type Snapshot struct {
	State       State
	Label       string
	ShowLabel   bool
	Editable    bool
	Input       string
	Suggestions []string
	Message     string
	Value       string
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithPost sets the function used to deliver search results back to the
// controller. Hosts with their own event loop use it to marshal results onto
// that loop; they must eventually call Dispatch with the event.
func WithPost(post func(Event)) ControllerOption {
	return func(c *Controller) {
		if post != nil {
			c.post = post
		}
	}
}

// WithControllerLogger injects a logger
func WithControllerLogger(log *logger.Logger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// Controller runs the state machine for a host
type Controller struct {
	mu        sync.Mutex
	machine   Machine
	model     Model
	label     string
	showLabel bool

	searcher Searcher
	notify   func()
	post     func(Event)
	log      *logger.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	inflight  map[uint64]context.CancelFunc
	destroyed bool
}

// New creates a controller. notify is called once per value chosen by the
// user; it may be nil.
func New(opts Options, searcher Searcher, notify func(), copts ...ControllerOption) *Controller {
	sep := opts.Separator
	if sep == "" {
		sep = pair.DefaultSeparator
	}
	minLen := opts.MinQueryLength
	if minLen < 0 {
		minLen = 0
	}
	machine := Machine{
		Side:           opts.Side,
		Separator:      sep,
		MinQueryLength: minLen,
		Editable:       opts.Editable,
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		machine:   machine,
		model:     machine.Init(opts.Value),
		label:     opts.Label,
		showLabel: opts.ShowLabel,
		searcher:  searcher,
		notify:    notify,
		log:       logger.Discard(),
		ctx:       ctx,
		cancel:    cancel,
		inflight:  make(map[uint64]context.CancelFunc),
	}
	c.post = c.Dispatch
	for _, opt := range copts {
		opt(c)
	}
	c.log = c.log.With("field")
	return c
}

// Dispatch applies ev and runs the resulting effects
func (c *Controller) Dispatch(ev Event) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}

	c.release(ev)
	before := c.model.Generation
	model, effects := c.machine.Step(c.model, ev)
	c.model = model

	if len(effects) == 0 {
		switch ev := ev.(type) {
		case ResultsArrived:
			c.log.Debug().
				Uint64("token", ev.Token).
				Uint64("generation", before).
				Msg("Discarding stale suggestions")
		case SearchFailed:
			c.log.Debug().
				Uint64("token", ev.Token).
				Uint64("generation", before).
				Msg("Discarding stale search failure")
		}
	}

	notifications := 0
	for _, effect := range effects {
		switch effect := effect.(type) {
		case StartSearch:
			if c.searcher == nil {
				// Suggestions are disabled: the search completes empty at once
				c.model, _ = c.machine.Step(c.model, ResultsArrived{Token: effect.Token})
				continue
			}
			c.start(effect)
		case CancelSearch:
			if cancel, ok := c.inflight[effect.Token]; ok {
				cancel()
				delete(c.inflight, effect.Token)
			}
		case ShowMessage:
			if effect.Text != "" {
				c.log.Info().Str("message", effect.Text).Msg("Field message")
			}
		case NotifyChange:
			c.log.Debug().Str("value", effect.Value).Msg("Value changed")
			notifications++
		}
	}
	notify := c.notify
	c.mu.Unlock()

	// The host may read Outputs from notify, so it runs unlocked
	if notify != nil {
		for i := 0; i < notifications; i++ {
			notify()
		}
	}
}

// release drops the cancel func of a request that just reported back
func (c *Controller) release(ev Event) {
	var token uint64
	switch ev := ev.(type) {
	case ResultsArrived:
		token = ev.Token
	case SearchFailed:
		token = ev.Token
	default:
		return
	}
	if cancel, ok := c.inflight[token]; ok {
		cancel()
		delete(c.inflight, token)
	}
}

func (c *Controller) start(s StartSearch) {
	ctx, cancel := context.WithCancel(c.ctx)
	c.inflight[s.Token] = cancel
	minLen := c.machine.MinQueryLength
	searcher := c.searcher
	post := c.post

	c.log.Debug().Uint64("token", s.Token).Str("query", s.Query).Msg("Search issued")

	go func() {
		pairs, err := searcher.Search(ctx, s.Query, minLen)
		if ctx.Err() != nil {
			// Superseded or destroyed; nobody is waiting for this one
			return
		}
		if err != nil {
			c.log.Warn().Str("query", s.Query).Err(err).Msg("Search failed")
			post(SearchFailed{Token: s.Token, Err: err})
			return
		}
		post(ResultsArrived{Token: s.Token, Pairs: pairs})
	}()
}

// Outputs returns the current composite value
func (c *Controller) Outputs() Outputs {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Outputs{Value: c.model.Value}
}

// UpdateView accepts a value pushed by the host. Configuration is not
// re-read.
func (c *Controller) UpdateView(value string) {
	c.mu.Lock()
	same := c.model.Value == value
	c.mu.Unlock()
	if same {
		return
	}
	c.Dispatch(Loaded{Value: value})
}

// Snapshot returns the state needed to render the field
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:       c.model.State,
		Label:       c.label,
		ShowLabel:   c.showLabel,
		Editable:    c.machine.Editable,
		Input:       c.model.Input,
		Suggestions: append([]string(nil), c.model.Shown...),
		Message:     c.model.Message,
		Value:       c.model.Value,
	}
}

// Destroy cancels pending requests. Later events are ignored.
func (c *Controller) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.cancel()
	c.inflight = make(map[uint64]context.CancelFunc)
}

// IsFetchFailure reports whether err came from the suggestion request
func IsFetchFailure(err error) bool {
	var fe *derrors.FetchError
	return errors.As(err, &fe)
}
