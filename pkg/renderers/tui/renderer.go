package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/render"
	"github.com/goliatone/go-tagfield/pkg/taglist"
)

// Renderer implements render.Renderer for terminal sessions. It drives the
// same editor the HTML widget uses: entering text and confirming is the Enter
// key, and the action menu maps to Backspace and chip-selection deletion.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	out          io.Writer
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, text output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatText,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	switch r.outputFormat {
	case OutputFormatText, OutputFormatJSON, OutputFormatFormURLEncoded:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

type action int

const (
	actionDone action = iota
	actionRemoveLast
	actionRemoveOne
)

// Render runs an interactive session for field and returns the final list in
// the configured output format. Ctrl+C ends the session with ErrAborted.
func (r *Renderer) Render(ctx context.Context, field model.Field, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	// Config errors were already reported through OnConfigError.
	ed, _ := render.BuildEditor(field, opts)

	for _, message := range render.MergeMessages(opts.Errors) {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return nil, err
		}
	}

	if ed.Config().Disabled {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+summary(fieldLabel(field), ed.Snapshot())+" (read-only)"); err != nil {
			return nil, err
		}
		return r.serialize(field, ed.Tags())
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap := ed.Snapshot()
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+summary(fieldLabel(field), snap)); err != nil {
			return nil, err
		}

		if !snap.EntryDisabled {
			text, err := r.driver.Input(ctx, InputConfig{
				Message:     r.theme.PromptPrefix + "Add a tag",
				Help:        "Submit an empty line for more actions",
				Placeholder: snap.Placeholder,
			})
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(text) != "" {
				ed.SetEntry(text)
				outcome := ed.HandleKey(editor.KeyEnter)
				if outcome.Err != nil {
					if err := r.driver.Info(ctx, r.theme.ErrorPrefix+rejectMessage(outcome.Err, snap)); err != nil {
						return nil, err
					}
				}
				continue
			}
		}

		done, err := r.promptAction(ctx, ed)
		if err != nil {
			return nil, err
		}
		if done {
			return r.serialize(field, ed.Tags())
		}
	}
}

func (r *Renderer) promptAction(ctx context.Context, ed *editor.Editor) (bool, error) {
	snap := ed.Snapshot()
	labels := []string{"Done"}
	actions := []action{actionDone}
	if len(snap.Tags) > 0 {
		labels = append(labels, fmt.Sprintf("Remove last tag (%s)", snap.Tags[len(snap.Tags)-1]), "Remove a tag...")
		actions = append(actions, actionRemoveLast, actionRemoveOne)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: r.theme.PromptPrefix + "What next?",
		Options: labels,
	})
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(actions) {
		return false, fmt.Errorf("%w: %d", ErrUnknownAction, idx)
	}

	switch actions[idx] {
	case actionDone:
		if !snap.BelowMinimum {
			return true, nil
		}
		return r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.theme.PromptPrefix + snap.Warning + ". Finish anyway?",
		})
	case actionRemoveLast:
		ed.SetEntry("")
		ed.HandleKey(editor.KeyBackspace)
	case actionRemoveOne:
		pick, err := r.driver.Select(ctx, SelectConfig{
			Message: r.theme.PromptPrefix + "Remove which tag?",
			Options: snap.Tags,
		})
		if err != nil {
			return false, err
		}
		if pick < 0 || pick >= len(snap.Tags) {
			return false, fmt.Errorf("%w: tag %d", ErrUnknownAction, pick)
		}
		ed.SetEntry("")
		ed.SelectIndex(pick)
		ed.HandleKey(editor.KeyDelete)
	}
	return false, nil
}

func (r *Renderer) serialize(field model.Field, tags []string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatJSON:
		if tags == nil {
			tags = []string{}
		}
		payload, err := json.Marshal(tags)
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return payload, nil
	case OutputFormatFormURLEncoded:
		name := strings.TrimSpace(field.Name)
		if name == "" {
			name = "tags"
		}
		values := url.Values{}
		values.Set(name, strings.Join(tags, ","))
		return []byte(values.Encode()), nil
	default:
		return []byte(strings.Join(tags, ",")), nil
	}
}

func fieldLabel(field model.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	if name := strings.TrimSpace(field.Name); name != "" {
		return name
	}
	return "Tags"
}

func summary(label string, snap editor.Snapshot) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(": ")
	if len(snap.Tags) == 0 {
		b.WriteString("(empty)")
	} else {
		b.WriteString("[")
		b.WriteString(strings.Join(snap.Tags, "] ["))
		b.WriteString("]")
	}
	if snap.Warning != "" {
		b.WriteString(" - ")
		b.WriteString(snap.Warning)
	}
	return b.String()
}

func rejectMessage(err error, snap editor.Snapshot) string {
	var reject *editor.RejectError
	if !errors.As(err, &reject) {
		return err.Error()
	}
	switch reject.Reason {
	case editor.ReasonEmpty:
		return "Nothing to add"
	case editor.ReasonDuplicate:
		return fmt.Sprintf("%q is already in the list", reject.Value)
	case editor.ReasonCapacity:
		return fmt.Sprintf("Maximum %d items reached", snap.MaxItems)
	case editor.ReasonSeparator:
		return fmt.Sprintf("%q contains %q; add one item at a time", reject.Value, taglist.Separator)
	default:
		return err.Error()
	}
}
