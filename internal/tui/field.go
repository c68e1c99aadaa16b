// Package tui is the interactive terminal host of the lookup field. It draws
// the label, the input, the suggestion list and the inline message with the
// vaxis widget framework and feeds key presses to a field.Controller.
package tui

import (
	"slices"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/list"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"
	"git.sr.ht/~rockorager/vaxis/vxfw/textfield"

	"github.com/NikitaCOEUR/lookupsep/internal/field"
)

// maxVisible is the number of suggestion rows drawn at once
const maxVisible = 8

const prompt = "› "

// SearchDone carries a controller event back onto the UI loop
type SearchDone struct {
	Event field.Event
}

var (
	labelStyle   = vaxis.Style{Foreground: vaxis.IndexColor(12), Attribute: vaxis.AttrBold}
	promptStyle  = vaxis.Style{Foreground: vaxis.IndexColor(14)}
	messageStyle = vaxis.Style{Foreground: vaxis.IndexColor(9)}
	subtleStyle  = vaxis.Style{Foreground: vaxis.IndexColor(8)}
	cursorStyle  = vaxis.Style{Attribute: vaxis.AttrReverse}
	readOnlyText = vaxis.Style{Foreground: vaxis.IndexColor(8), Attribute: vaxis.AttrItalic}
)

// Field is the root widget
type Field struct {
	ctrl  *field.Controller
	input *textfield.TextField
	list  *list.Dynamic

	shown  []string
	cursor int
	// escArmed is set after an Esc with nothing left to dismiss
	escArmed bool
}

// New creates the widget for ctrl
func New(ctrl *field.Controller) *Field {
	f := &Field{
		ctrl:   ctrl,
		input:  textfield.New(),
		cursor: -1,
	}
	f.list = &list.Dynamic{
		Builder:              f.buildSuggestion,
		DisableEventHandlers: true,
	}
	f.input.OnChange = f.onChange
	f.sync()
	return f
}

// Input returns the text currently in the input box
func (f *Field) Input() string {
	return f.input.Value
}

// Cursor returns the highlighted suggestion, -1 when none is
func (f *Field) Cursor() int {
	return f.cursor
}

func (f *Field) onChange(line string) (vxfw.Command, error) {
	f.escArmed = false
	f.ctrl.Dispatch(field.QueryChanged{Text: line})
	f.sync()
	return vxfw.RedrawCmd{}, nil
}

// sync copies the controller state into the child widgets
func (f *Field) sync() {
	snap := f.ctrl.Snapshot()

	if f.input.Value != snap.Input {
		f.input.Reset()
		f.input.InsertStringAtCursor(snap.Input)
	}

	if !slices.Equal(f.shown, snap.Suggestions) {
		f.shown = snap.Suggestions
		f.cursor = -1
		f.list.SetCursor(0)
	}
}

func (f *Field) moveCursor(delta int) vxfw.Command {
	if len(f.shown) == 0 {
		return nil
	}
	next := f.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(f.shown) {
		next = len(f.shown) - 1
	}
	f.cursor = next
	f.list.SetCursor(uint(next))
	return vxfw.ConsumeAndRedraw()
}

// CaptureEvent handles the keys that act on the whole field before the input
// sees them
func (f *Field) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case SearchDone:
		f.ctrl.Dispatch(ev.Event)
		f.sync()
		return vxfw.ConsumeAndRedraw(), nil
	case vaxis.Key:
		if ev.EventType == vaxis.EventRelease {
			return nil, nil
		}
		switch {
		case ev.Matches('c', vaxis.ModCtrl):
			return vxfw.QuitCmd{}, nil
		case ev.Matches(vaxis.KeyDown):
			return f.moveCursor(1), nil
		case ev.Matches(vaxis.KeyUp):
			return f.moveCursor(-1), nil
		case ev.Matches(vaxis.KeyEnter):
			return f.enter(), nil
		case ev.Matches(vaxis.KeyEsc):
			return f.escape(), nil
		}
	}
	return nil, nil
}

func (f *Field) enter() vxfw.Command {
	f.escArmed = false
	if f.cursor >= 0 && f.cursor < len(f.shown) {
		f.ctrl.Dispatch(field.Chosen{Display: f.shown[f.cursor]})
	} else {
		f.ctrl.Dispatch(field.Submitted{Text: f.input.Value})
	}
	f.sync()
	return vxfw.ConsumeAndRedraw()
}

func (f *Field) escape() vxfw.Command {
	state := f.ctrl.Snapshot().State
	if state == field.Querying || state == field.ShowingSuggestions {
		f.ctrl.Dispatch(field.Dismissed{})
		f.sync()
		f.escArmed = false
		return vxfw.ConsumeAndRedraw()
	}
	if f.escArmed {
		return vxfw.QuitCmd{}
	}
	f.escArmed = true
	return vxfw.ConsumeAndRedraw()
}

// HandleEvent focuses the input on start
func (f *Field) HandleEvent(ev vaxis.Event, _ vxfw.EventPhase) (vxfw.Command, error) {
	switch ev.(type) {
	case vxfw.Init:
		return vxfw.FocusWidgetCmd(f.input), nil
	}
	return nil, nil
}

func (f *Field) buildSuggestion(i uint, _ uint) vxfw.Widget {
	if int(i) >= len(f.shown) {
		return nil
	}
	t := text.New(f.shown[i])
	t.Softwrap = false
	if int(i) == f.cursor {
		t.Style = cursorStyle
	}
	return t
}

// Draw lays the rows out top to bottom: label, input, message, suggestions
// and the stored value
func (f *Field) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	snap := f.ctrl.Snapshot()

	width := ctx.Max.Width
	if ctx.Max.HasUnboundedWidth() {
		width = 80
	}
	promptWidth := uint16(len([]rune(prompt)))
	if width <= promptWidth {
		return vxfw.NewSurface(width, 0, f), nil
	}

	var children []vxfw.SubSurface
	row := 0
	add := func(col int, s vxfw.Surface) {
		children = append(children, vxfw.NewSubSurface(col, row, s))
		row += int(s.Size.Height)
	}
	line := func(content string, style vaxis.Style) (vxfw.Surface, error) {
		t := text.New(content)
		t.Style = style
		t.Softwrap = false
		return t.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: width, Height: 1}))
	}

	if snap.ShowLabel && snap.Label != "" {
		s, err := line(snap.Label, labelStyle)
		if err != nil {
			return vxfw.Surface{}, err
		}
		add(0, s)
	}

	p, err := line(prompt, promptStyle)
	if err != nil {
		return vxfw.Surface{}, err
	}
	children = append(children, vxfw.NewSubSurface(0, row, p))
	if !snap.Editable {
		f.input.Style = readOnlyText
	}
	in, err := f.input.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: width - promptWidth, Height: 1}))
	if err != nil {
		return vxfw.Surface{}, err
	}
	add(int(promptWidth), in)

	if snap.Message != "" {
		s, err := line(snap.Message, messageStyle)
		if err != nil {
			return vxfw.Surface{}, err
		}
		add(0, s)
	}

	if n := len(f.shown); n > 0 {
		height := uint16(min(n, maxVisible))
		s, err := f.list.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: width - promptWidth, Height: height}))
		if err != nil {
			return vxfw.Surface{}, err
		}
		add(int(promptWidth), s)
	}

	status := "value: " + snap.Value
	if snap.Value == "" {
		status = "value: (none)"
	}
	if f.escArmed {
		status += "  esc again to quit"
	}
	s, err := line(status, subtleStyle)
	if err != nil {
		return vxfw.Surface{}, err
	}
	add(0, s)

	root := vxfw.NewSurface(width, uint16(row), f)
	root.Children = children
	return root, nil
}
