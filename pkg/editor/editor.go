package editor

import (
	"strings"

	"github.com/goliatone/go-tagfield/pkg/taglist"
)

// NoSelection is the SelectionCursor value meaning "nothing selected".
const NoSelection = -1

// Sink receives the serialized tag list after every mutation. It stands in
// for the host element's value.
type Sink interface {
	SetValue(value string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(value string)

// SetValue implements Sink.
func (f SinkFunc) SetValue(value string) {
	if f != nil {
		f(value)
	}
}

// Observer is notified with a fresh Snapshot whenever the view must be
// rebuilt (mutations, selection changes, typing).
type Observer func(Snapshot)

// Option configures an Editor.
type Option func(*Editor)

// WithSink wires the backing field.
func WithSink(sink Sink) Option {
	return func(e *Editor) {
		e.sink = sink
	}
}

// WithObserver registers the render callback.
func WithObserver(fn Observer) Option {
	return func(e *Editor) {
		e.observer = fn
	}
}

// WithNormalizer transforms raw input before trimming and validation, e.g.
// taglist.StripMarkup.
func WithNormalizer(fn func(string) string) Option {
	return func(e *Editor) {
		e.normalize = fn
	}
}

// WithMessages overrides the placeholder and warning strings.
func WithMessages(messages Messages) Option {
	return func(e *Editor) {
		e.messages = messages.WithDefaults()
	}
}

// Editor owns one TagList, its Config and the SelectionCursor. Every method
// runs to completion synchronously: the sink and observer have been called
// by the time a mutating method returns. An Editor is not safe for
// concurrent use; it belongs to a single event loop.
type Editor struct {
	cfg       Config
	messages  Messages
	tags      taglist.List
	cursor    int
	entry     string
	sink      Sink
	observer  Observer
	normalize func(string) string
}

// New creates an editor seeded from the serialized initial value. Neither
// the sink nor the observer is called; use Sync once the host is ready.
func New(cfg Config, initial string, options ...Option) *Editor {
	e := &Editor{
		cfg:      normalizeFallback(cfg),
		messages: DefaultMessages(),
		tags:     taglist.Parse(initial),
		cursor:   NoSelection,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Config returns the immutable configuration.
func (e *Editor) Config() Config {
	return e.cfg
}

// Tags returns a copy of the current tags.
func (e *Editor) Tags() []string {
	return e.tags.Items()
}

// Len reports the number of tags.
func (e *Editor) Len() int {
	return e.tags.Len()
}

// Value is the serialized backing-field value.
func (e *Editor) Value() string {
	return e.tags.Join()
}

// Entry returns the entry box text.
func (e *Editor) Entry() string {
	return e.entry
}

// Selection returns the SelectionCursor.
func (e *Editor) Selection() (int, bool) {
	if e.cursor == NoSelection {
		return NoSelection, false
	}
	return e.cursor, true
}

// IsAtCapacity reports len >= MaxItems.
func (e *Editor) IsAtCapacity() bool {
	return e.tags.Len() >= e.cfg.MaxItems
}

// IsBelowMinimum reports len < MinItems.
func (e *Editor) IsBelowMinimum() bool {
	return e.tags.Len() < e.cfg.MinItems
}

// State derives the widget state. Disabled is absorbing since Config never
// changes.
func (e *Editor) State() State {
	switch {
	case e.cfg.Disabled:
		return StateDisabled
	case e.IsAtCapacity():
		return StateAtCapacity
	case e.IsBelowMinimum():
		return StateBelowMin
	case e.tags.Len() == 0:
		return StateEmpty
	default:
		return StateNormal
	}
}

// AddTag appends raw after normalization and trimming.
func (e *Editor) AddTag(raw string) error {
	if e.cfg.Disabled {
		return &RejectError{Op: opAdd, Reason: ReasonDisabled, Value: raw}
	}
	value := raw
	if e.normalize != nil {
		value = e.normalize(value)
	}
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return &RejectError{Op: opAdd, Reason: ReasonEmpty, Value: raw}
	case strings.Contains(value, taglist.Separator):
		return &RejectError{Op: opAdd, Reason: ReasonSeparator, Value: value}
	case e.tags.Contains(value):
		return &RejectError{Op: opAdd, Reason: ReasonDuplicate, Value: value}
	case e.IsAtCapacity():
		return &RejectError{Op: opAdd, Reason: ReasonCapacity, Value: value}
	}

	e.tags.Append(value)
	e.entry = ""
	e.cursor = NoSelection
	e.commit()
	return nil
}

// RemoveTag deletes the tag at index.
func (e *Editor) RemoveTag(index int) error {
	if e.cfg.Disabled {
		return &RejectError{Op: opRemove, Reason: ReasonDisabled, Index: index}
	}
	if _, ok := e.tags.RemoveAt(index); !ok {
		return &RejectError{Op: opRemove, Reason: ReasonOutOfRange, Index: index}
	}
	e.cursor = NoSelection
	e.commit()
	return nil
}

// RemoveLast deletes the final tag. It reports false when there was nothing
// to remove or the editor is disabled.
func (e *Editor) RemoveLast() bool {
	if e.cfg.Disabled {
		return false
	}
	if _, ok := e.tags.Pop(); !ok {
		return false
	}
	e.cursor = NoSelection
	e.commit()
	return true
}

// SelectIndex moves the SelectionCursor. NoSelection (or any index outside
// the list) clears it. The tag list is never touched.
func (e *Editor) SelectIndex(index int) {
	if e.cfg.Disabled {
		return
	}
	if index < 0 || index >= e.tags.Len() {
		index = NoSelection
	}
	if index == e.cursor {
		return
	}
	e.cursor = index
	e.notify()
}

// ClearSelection resets the SelectionCursor.
func (e *Editor) ClearSelection() {
	e.SelectIndex(NoSelection)
}

// SetEntry records the entry box text. Typing cancels selection-for-deletion.
func (e *Editor) SetEntry(text string) {
	if e.cfg.Disabled {
		return
	}
	e.entry = text
	e.cursor = NoSelection
	e.notify()
}

// HandleKey runs the entry box state machine for one keydown. The entry box
// text is the value before the key takes effect.
func (e *Editor) HandleKey(key Key) Outcome {
	if e.cfg.Disabled {
		return Outcome{Action: ActionNone, Index: NoSelection}
	}

	switch key {
	case KeyEnter:
		candidate := e.entry
		if err := e.AddTag(candidate); err != nil {
			return Outcome{Action: ActionRejected, Tag: strings.TrimSpace(candidate), Index: NoSelection, Err: err}
		}
		return Outcome{Action: ActionAdded, Tag: e.lastTag(), Index: e.tags.Len() - 1}

	case KeyBackspace, KeyDelete:
		if e.entry != "" {
			break
		}
		if index, ok := e.Selection(); ok {
			tag, _ := e.tags.At(index)
			if err := e.RemoveTag(index); err != nil {
				return Outcome{Action: ActionRejected, Index: index, Err: err}
			}
			return Outcome{Action: ActionRemoved, Tag: tag, Index: index}
		}
		index := e.tags.Len() - 1
		tag := e.lastTag()
		if e.RemoveLast() {
			return Outcome{Action: ActionRemoved, Tag: tag, Index: index}
		}
		return Outcome{Action: ActionNone, Index: NoSelection}
	}

	hadSelection := e.cursor != NoSelection
	e.cursor = NoSelection
	e.notify()
	if hadSelection {
		return Outcome{Action: ActionSelectionCleared, Index: NoSelection}
	}
	return Outcome{Action: ActionNone, Index: NoSelection}
}

// Sync writes the backing field and notifies the observer without changing
// anything. Hosts call it once after mounting.
func (e *Editor) Sync() {
	e.commit()
}

// Resync replaces the tag list with a re-parse of raw, e.g. after the host
// reset its form out of band. The entry text is kept.
func (e *Editor) Resync(raw string) {
	e.tags = taglist.Parse(raw)
	e.cursor = NoSelection
	e.commit()
}

// Snapshot builds the view model.
func (e *Editor) Snapshot() Snapshot {
	items := e.tags.Items()
	chips := make([]Chip, len(items))
	for idx, label := range items {
		chips[idx] = Chip{Label: label, Index: idx, Selected: idx == e.cursor}
	}

	snap := Snapshot{
		Tags:          items,
		Chips:         chips,
		Selected:      e.cursor,
		Entry:         e.entry,
		Disabled:      e.cfg.Disabled,
		EntryDisabled: e.cfg.Disabled || e.IsAtCapacity(),
		MinItems:      e.cfg.MinItems,
		MaxItems:      e.cfg.MaxItems,
		BelowMinimum:  e.IsBelowMinimum(),
		State:         e.State(),
		Value:         e.tags.Join(),
	}

	switch {
	case e.cfg.Disabled:
		snap.Placeholder = ""
	case e.IsAtCapacity():
		snap.Placeholder = formatCount(e.messages.MaxReached, e.cfg.MaxItems)
	default:
		snap.Placeholder = e.cfg.Placeholder
	}
	if snap.BelowMinimum {
		snap.Warning = formatCount(e.messages.BelowMinimum, e.cfg.MinItems)
	}
	return snap
}

func (e *Editor) lastTag() string {
	tag, _ := e.tags.At(e.tags.Len() - 1)
	return tag
}

func (e *Editor) commit() {
	if e.sink != nil {
		e.sink.SetValue(e.tags.Join())
	}
	e.notify()
}

func (e *Editor) notify() {
	if e.observer != nil {
		e.observer(e.Snapshot())
	}
}
