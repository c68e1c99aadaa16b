package field

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// State is the lifecycle state of the field
type State int

const (
	// Idle means no request is pending and no suggestions are shown
	Idle State = iota
	// Querying means a request for the latest input is in flight
	Querying
	// ShowingSuggestions means suggestions for the latest input are shown
	ShowingSuggestions
	// Selected means the last user action stored a new value
	Selected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Querying:
		return "querying"
	case ShowingSuggestions:
		return "showing-suggestions"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event is an input to the state machine
type Event interface {
	isEvent()
}

// QueryChanged is sent on every edit of the input text
type QueryChanged struct {
	Text string
}

// ResultsArrived carries the pairs returned for the request tagged Token
type ResultsArrived struct {
	Token uint64
	Pairs []pair.Pair
}

// SearchFailed reports a failed request tagged Token
type SearchFailed struct {
	Token uint64
	Err   error
}

// Chosen is sent when the user picks one of the shown suggestions
type Chosen struct {
	Display string
}

// Submitted is sent when the user confirms the typed text
type Submitted struct {
	Text string
}

// Dismissed closes the suggestion list
type Dismissed struct{}

// Loaded replaces the value from the host side. It never notifies the host.
type Loaded struct {
	Value string
}

func (QueryChanged) isEvent()   {}
func (ResultsArrived) isEvent() {}
func (SearchFailed) isEvent()   {}
func (Chosen) isEvent()         {}
func (Submitted) isEvent()      {}
func (Dismissed) isEvent()      {}
func (Loaded) isEvent()         {}

// Effect is a side effect requested by the state machine
type Effect interface {
	isEffect()
}

// StartSearch asks for a request for Query, tagged Token
type StartSearch struct {
	Token uint64
	Query string
}

// CancelSearch abandons the request tagged Token
type CancelSearch struct {
	Token uint64
}

// ShowSuggestions replaces the shown suggestions. Nil hides the list.
type ShowSuggestions struct {
	Values []string
}

// NotifyChange tells the host a new value is ready
type NotifyChange struct {
	Value string
}

// ShowMessage sets the inline message. An empty Text clears it.
type ShowMessage struct {
	Text string
}

func (StartSearch) isEffect()     {}
func (CancelSearch) isEffect()    {}
func (ShowSuggestions) isEffect() {}
func (NotifyChange) isEffect()    {}
func (ShowMessage) isEffect()     {}

// Model is the complete state of one field instance
type Model struct {
	State State
	// Input is the text shown in the input box
	Input string
	// Generation is the token of the latest issued request. Responses
	// carrying any other token are stale.
	Generation uint64
	// Pairs are the unfiltered results of the latest request
	Pairs []pair.Pair
	// Shown are the display values currently offered
	Shown []string
	// Value is the composite output
	Value   string
	Message string
}

// Machine holds the fixed configuration of a field instance. Step is pure.
type Machine struct {
	Side           pair.Side
	Separator      string
	MinQueryLength int
	Editable       bool
}

// Init returns the starting model for a stored composite value
func (m Machine) Init(value string) Model {
	return Model{
		State: Idle,
		Input: m.inputFor(value),
		Value: value,
	}
}

func (m Machine) inputFor(value string) string {
	p, ok := pair.Parse(value, m.Separator)
	if !ok {
		return ""
	}
	return p.Get(m.Side)
}

// Step applies ev to s and returns the new model and the effects to run
func (m Machine) Step(s Model, ev Event) (Model, []Effect) {
	switch ev := ev.(type) {
	case QueryChanged:
		return m.queryChanged(s, ev)
	case ResultsArrived:
		return m.resultsArrived(s, ev)
	case SearchFailed:
		return m.searchFailed(s, ev)
	case Chosen:
		return m.chosen(s, ev)
	case Submitted:
		return m.submitted(s, ev)
	case Dismissed:
		return m.dismissed(s)
	case Loaded:
		return m.loaded(s, ev)
	}
	return s, nil
}

// abandon invalidates any in-flight request
func (m Machine) abandon(s Model) (Model, []Effect) {
	var effects []Effect
	if s.State == Querying {
		effects = append(effects, CancelSearch{Token: s.Generation})
	}
	s.Generation++
	return s, effects
}

func (m Machine) clearMessage(s Model, effects []Effect) (Model, []Effect) {
	if s.Message != "" {
		s.Message = ""
		effects = append(effects, ShowMessage{})
	}
	return s, effects
}

func (m Machine) queryChanged(s Model, ev QueryChanged) (Model, []Effect) {
	if !m.Editable {
		return s, nil
	}
	s, effects := m.abandon(s)
	s, effects = m.clearMessage(s, effects)
	s.Input = ev.Text
	s.Pairs = nil
	s.Shown = nil

	if utf8.RuneCountInString(ev.Text) < m.MinQueryLength {
		s.State = Idle
		return s, append(effects, ShowSuggestions{})
	}

	s.State = Querying
	return s, append(effects, StartSearch{Token: s.Generation, Query: ev.Text})
}

func (m Machine) resultsArrived(s Model, ev ResultsArrived) (Model, []Effect) {
	if s.State != Querying || ev.Token != s.Generation {
		return s, nil
	}
	s.Pairs = ev.Pairs
	s.Shown = Suggestions(ev.Pairs, m.Side, s.Input)
	if len(s.Shown) == 0 {
		s.State = Idle
	} else {
		s.State = ShowingSuggestions
	}
	return s, []Effect{ShowSuggestions{Values: s.Shown}}
}

func (m Machine) searchFailed(s Model, ev SearchFailed) (Model, []Effect) {
	if s.State != Querying || ev.Token != s.Generation {
		return s, nil
	}
	s.State = Idle
	s.Pairs = nil
	s.Shown = nil
	s.Message = "Suggestions unavailable, you can keep typing"
	return s, []Effect{ShowSuggestions{}, ShowMessage{Text: s.Message}}
}

func (m Machine) chosen(s Model, ev Chosen) (Model, []Effect) {
	if !m.Editable {
		return s, nil
	}
	p, ok := Resolve(ev.Display, s.Pairs, m.Side)
	if !ok {
		return s, nil
	}
	return m.accept(s, p)
}

func (m Machine) submitted(s Model, ev Submitted) (Model, []Effect) {
	if !m.Editable {
		return s, nil
	}
	if slices.Contains(s.Shown, ev.Text) {
		return m.chosen(s, Chosen{Display: ev.Text})
	}

	text := strings.TrimSpace(ev.Text)
	var effects []Effect
	switch {
	case text == "":
		s.Message = "Value cannot be empty"
	case strings.Contains(text, m.Separator):
		s.Message = fmt.Sprintf("Value cannot contain %q", m.Separator)
	default:
		current, ok := pair.Parse(s.Value, m.Separator)
		if !ok {
			s.Message = "Pick a suggestion to fill both parts"
			break
		}
		return m.accept(s, current.With(m.Side, text))
	}
	return s, append(effects, ShowMessage{Text: s.Message})
}

// accept stores p as the new value and notifies the host
func (m Machine) accept(s Model, p pair.Pair) (Model, []Effect) {
	s, effects := m.abandon(s)
	s, effects = m.clearMessage(s, effects)
	s.State = Selected
	s.Input = p.Get(m.Side)
	s.Value = pair.Join(p, m.Separator)
	s.Shown = nil
	return s, append(effects, ShowSuggestions{}, NotifyChange{Value: s.Value})
}

func (m Machine) dismissed(s Model) (Model, []Effect) {
	if s.State != Querying && s.State != ShowingSuggestions {
		return s, nil
	}
	s, effects := m.abandon(s)
	s.State = Idle
	s.Shown = nil
	return s, append(effects, ShowSuggestions{})
}

func (m Machine) loaded(s Model, ev Loaded) (Model, []Effect) {
	s, effects := m.abandon(s)
	s.State = Idle
	s.Value = ev.Value
	s.Input = m.inputFor(ev.Value)
	s.Pairs = nil
	s.Shown = nil
	return s, append(effects, ShowSuggestions{})
}
