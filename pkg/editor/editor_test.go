package editor_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/taglist"
)

type recorder struct {
	values    []string
	snapshots []editor.Snapshot
}

func (r *recorder) SetValue(value string) {
	r.values = append(r.values, value)
}

func (r *recorder) observe(snap editor.Snapshot) {
	r.snapshots = append(r.snapshots, snap)
}

func (r *recorder) last() string {
	if len(r.values) == 0 {
		return ""
	}
	return r.values[len(r.values)-1]
}

func newEditor(t *testing.T, cfg editor.Config, initial string) (*editor.Editor, *recorder) {
	t.Helper()
	rec := &recorder{}
	ed := editor.New(cfg, initial, editor.WithSink(rec), editor.WithObserver(rec.observe))
	return ed, rec
}

func TestEditor_RoundTrip(t *testing.T) {
	sequence := []string{"alpha", "beta", "gamma delta", "Epsilon"}
	ed, rec := newEditor(t, editor.DefaultConfig(), "")

	for _, value := range sequence {
		if err := ed.AddTag(value); err != nil {
			t.Fatalf("add %q: %v", value, err)
		}
	}

	want := strings.Join(sequence, ",")
	if got := rec.last(); got != want {
		t.Fatalf("backing value: got %q want %q", got, want)
	}
	if diff := cmp.Diff(sequence, taglist.Parse(rec.last()).Items()); diff != "" {
		t.Fatalf("reparse mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_AddTagRejections(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.MaxItems = 2
	ed, _ := newEditor(t, cfg, "a")

	cases := []struct {
		name   string
		raw    string
		reason editor.Reason
		target error
	}{
		{name: "empty", raw: "", reason: editor.ReasonEmpty, target: editor.ErrEmpty},
		{name: "whitespace", raw: "   ", reason: editor.ReasonEmpty, target: editor.ErrEmpty},
		{name: "duplicate", raw: " a ", reason: editor.ReasonDuplicate, target: editor.ErrDuplicate},
		{name: "separator", raw: "b,c", reason: editor.ReasonSeparator, target: editor.ErrSeparator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ed.AddTag(tc.raw)
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
			if reason, ok := editor.ReasonOf(err); !ok || reason != tc.reason {
				t.Fatalf("expected reason %q, got %q (ok=%v)", tc.reason, reason, ok)
			}
		})
	}

	if err := ed.AddTag("A"); err != nil {
		t.Fatalf("case-sensitive add should succeed: %v", err)
	}
	if err := ed.AddTag("b"); !errors.Is(err, editor.ErrCapacity) {
		t.Fatalf("expected capacity rejection, got %v", err)
	}
	if diff := cmp.Diff([]string{"a", "A"}, ed.Tags()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_SeparatorKeepsBackingValueParseable(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.MaxItems = 3
	ed, rec := newEditor(t, cfg, "fr, en")

	ed.SetEntry("de,it")
	outcome := ed.HandleKey(editor.KeyEnter)
	if outcome.Action != editor.ActionRejected || !errors.Is(outcome.Err, editor.ErrSeparator) {
		t.Fatalf("expected separator rejection, got %+v", outcome)
	}
	if ed.Entry() != "de,it" {
		t.Fatalf("rejected text should stay in the entry box, got %q", ed.Entry())
	}

	ed.SetEntry("de")
	if outcome := ed.HandleKey(editor.KeyEnter); outcome.Action != editor.ActionAdded {
		t.Fatalf("expected de to be added, got %+v", outcome)
	}

	want := []string{"fr", "en", "de"}
	if diff := cmp.Diff(want, ed.Tags()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if got := rec.last(); got != "fr,en,de" {
		t.Fatalf("backing value: got %q", got)
	}
	if diff := cmp.Diff(ed.Tags(), taglist.Parse(rec.last()).Items()); diff != "" {
		t.Fatalf("reparse mismatch (-want +got):\n%s", diff)
	}
	if err := ed.AddTag("x,y"); !errors.Is(err, editor.ErrSeparator) {
		t.Fatalf("expected separator rejection at capacity, got %v", err)
	}
	if n := taglist.Parse(rec.last()).Len(); n > cfg.MaxItems {
		t.Fatalf("backing value holds %d pieces, maximum is %d", n, cfg.MaxItems)
	}
}

func TestEditor_DuplicateRejectionIsIdempotent(t *testing.T) {
	ed, _ := newEditor(t, editor.DefaultConfig(), "")
	if err := ed.AddTag("x"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	before := ed.Tags()
	if err := ed.AddTag("x"); !errors.Is(err, editor.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	if diff := cmp.Diff(before, ed.Tags()); diff != "" {
		t.Fatalf("tags changed after duplicate (-want +got):\n%s", diff)
	}
}

func TestEditor_CapacityInvariant(t *testing.T) {
	const maxItems = 3
	cfg := editor.DefaultConfig()
	cfg.MaxItems = maxItems
	ed, _ := newEditor(t, cfg, "")

	for i := 0; i < maxItems; i++ {
		if err := ed.AddTag(string(rune('a' + i))); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if !ed.IsAtCapacity() {
		t.Fatalf("expected editor at capacity")
	}
	if err := ed.AddTag("overflow"); !errors.Is(err, editor.ErrCapacity) {
		t.Fatalf("expected capacity rejection, got %v", err)
	}
	if ed.Len() != maxItems {
		t.Fatalf("expected %d tags, got %d", maxItems, ed.Len())
	}

	snap := ed.Snapshot()
	if !snap.EntryDisabled {
		t.Fatalf("expected entry disabled at capacity")
	}
	if snap.Placeholder != "Maximum 3 items reached" {
		t.Fatalf("unexpected capacity placeholder %q", snap.Placeholder)
	}
	if snap.State != editor.StateAtCapacity {
		t.Fatalf("expected at-capacity state, got %s", snap.State)
	}
}

func TestEditor_MinimumAdvisory(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.MinItems = 2
	ed, _ := newEditor(t, cfg, "a")

	if !ed.Snapshot().BelowMinimum || ed.Snapshot().Warning == "" {
		t.Fatalf("expected warning with one tag and minItems=2")
	}
	if err := ed.AddTag("b"); err != nil {
		t.Fatalf("add b: %v", err)
	}
	if snap := ed.Snapshot(); snap.BelowMinimum || snap.Warning != "" {
		t.Fatalf("expected warning cleared, got %+v", snap)
	}
	if err := ed.RemoveTag(0); err != nil {
		t.Fatalf("remove 0: %v", err)
	}
	snap := ed.Snapshot()
	if snap.Warning != "Minimum of 2 items not reached" {
		t.Fatalf("expected warning again, got %q", snap.Warning)
	}
	if snap.State != editor.StateBelowMin {
		t.Fatalf("expected below-min state, got %s", snap.State)
	}
}

func TestEditor_SelectionDeletion(t *testing.T) {
	ed, rec := newEditor(t, editor.DefaultConfig(), "a,b,c")
	ed.SelectIndex(1)

	out := ed.HandleKey(editor.KeyBackspace)
	if out.Action != editor.ActionRemoved || out.Tag != "b" || out.Index != 1 {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if diff := cmp.Diff([]string{"a", "c"}, ed.Tags()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if _, ok := ed.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if rec.last() != "a,c" {
		t.Fatalf("backing value: got %q", rec.last())
	}
}

func TestEditor_PlainBackspace(t *testing.T) {
	for _, key := range []editor.Key{editor.KeyBackspace, editor.KeyDelete} {
		ed, _ := newEditor(t, editor.DefaultConfig(), "a,b,c")
		out := ed.HandleKey(key)
		if out.Action != editor.ActionRemoved || out.Tag != "c" {
			t.Fatalf("%s: unexpected outcome %+v", key, out)
		}
		if diff := cmp.Diff([]string{"a", "b"}, ed.Tags()); diff != "" {
			t.Fatalf("%s: tags mismatch (-want +got):\n%s", key, diff)
		}
	}

	ed, _ := newEditor(t, editor.DefaultConfig(), "")
	if out := ed.HandleKey(editor.KeyBackspace); out.Action != editor.ActionNone {
		t.Fatalf("expected no-op on empty list, got %+v", out)
	}
}

func TestEditor_BackspaceWithTextOnlyClearsSelection(t *testing.T) {
	ed, _ := newEditor(t, editor.DefaultConfig(), "a,b")
	ed.SetEntry("draft")
	ed.SelectIndex(0)

	out := ed.HandleKey(editor.KeyBackspace)
	if out.Action != editor.ActionSelectionCleared {
		t.Fatalf("expected selection cleared, got %+v", out)
	}
	if ed.Len() != 2 {
		t.Fatalf("expected no removal while the entry box has text")
	}
}

func TestEditor_EnterAddsEntry(t *testing.T) {
	ed, rec := newEditor(t, editor.DefaultConfig(), "a")
	ed.SetEntry("  b  ")

	out := ed.HandleKey(editor.KeyEnter)
	if out.Action != editor.ActionAdded || out.Tag != "b" || out.Index != 1 {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if ed.Entry() != "" {
		t.Fatalf("expected entry cleared, got %q", ed.Entry())
	}
	if rec.last() != "a,b" {
		t.Fatalf("backing value: got %q", rec.last())
	}

	ed.SetEntry("a")
	out = ed.HandleKey(editor.KeyEnter)
	if out.Action != editor.ActionRejected || !errors.Is(out.Err, editor.ErrDuplicate) {
		t.Fatalf("expected duplicate rejection, got %+v", out)
	}
	if ed.Entry() != "a" {
		t.Fatalf("rejected entry should stay in the box, got %q", ed.Entry())
	}
}

func TestEditor_TypingResetsSelection(t *testing.T) {
	ed, rec := newEditor(t, editor.DefaultConfig(), "a,b")
	ed.SelectIndex(1)
	renders := len(rec.snapshots)

	out := ed.HandleKey(editor.KeyOther)
	if out.Action != editor.ActionSelectionCleared {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if len(rec.snapshots) != renders+1 {
		t.Fatalf("expected a re-render after typing")
	}
	if rec.snapshots[len(rec.snapshots)-1].Selected != editor.NoSelection {
		t.Fatalf("expected rendered selection cleared")
	}

	ed.SelectIndex(0)
	ed.SetEntry("x")
	if _, ok := ed.Selection(); ok {
		t.Fatalf("expected SetEntry to clear selection")
	}
}

func TestEditor_SelectIndex(t *testing.T) {
	ed, rec := newEditor(t, editor.DefaultConfig(), "a,b,c")
	ed.SelectIndex(2)
	if index, ok := ed.Selection(); !ok || index != 2 {
		t.Fatalf("expected selection 2, got %d ok=%v", index, ok)
	}
	chips := ed.Snapshot().Chips
	if !chips[2].Selected || chips[0].Selected {
		t.Fatalf("unexpected chip selection %+v", chips)
	}
	if len(rec.values) != 0 {
		t.Fatalf("selection must not touch the backing field")
	}

	ed.SelectIndex(9)
	if _, ok := ed.Selection(); ok {
		t.Fatalf("out of range selection should clear the cursor")
	}
}

func TestEditor_RemoveTagOutOfRange(t *testing.T) {
	ed, _ := newEditor(t, editor.DefaultConfig(), "a")
	for _, index := range []int{-1, 1, 10} {
		err := ed.RemoveTag(index)
		if !errors.Is(err, editor.ErrOutOfRange) {
			t.Fatalf("index %d: expected out of range, got %v", index, err)
		}
	}
	if ed.Len() != 1 {
		t.Fatalf("expected list untouched")
	}
}

func TestEditor_DisabledIsReadOnly(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.Disabled = true
	cfg.MinItems = 3
	ed, rec := newEditor(t, cfg, "a,b")

	if err := ed.AddTag("c"); !errors.Is(err, editor.ErrDisabled) {
		t.Fatalf("expected disabled rejection, got %v", err)
	}
	if err := ed.RemoveTag(0); !errors.Is(err, editor.ErrDisabled) {
		t.Fatalf("expected disabled rejection, got %v", err)
	}
	if ed.RemoveLast() {
		t.Fatalf("RemoveLast must be inert when disabled")
	}
	ed.SelectIndex(0)
	ed.SetEntry("typed")
	for _, key := range []editor.Key{editor.KeyEnter, editor.KeyBackspace, editor.KeyDelete, editor.KeyOther} {
		if out := ed.HandleKey(key); out.Action != editor.ActionNone {
			t.Fatalf("%s: expected inert key, got %+v", key, out)
		}
	}

	if diff := cmp.Diff([]string{"a", "b"}, ed.Tags()); diff != "" {
		t.Fatalf("tags changed (-want +got):\n%s", diff)
	}
	if len(rec.values) != 0 || len(rec.snapshots) != 0 {
		t.Fatalf("disabled editor must not write or render")
	}

	snap := ed.Snapshot()
	if snap.State != editor.StateDisabled || !snap.EntryDisabled || snap.Placeholder != "" {
		t.Fatalf("unexpected disabled snapshot %+v", snap)
	}
	if !snap.BelowMinimum {
		t.Fatalf("minimum warning still computes when disabled")
	}
}

func TestEditor_States(t *testing.T) {
	cases := []struct {
		name    string
		cfg     editor.Config
		initial string
		want    editor.State
	}{
		{name: "empty", cfg: editor.Config{MaxItems: 3}, initial: "", want: editor.StateEmpty},
		{name: "normal", cfg: editor.Config{MaxItems: 3}, initial: "a", want: editor.StateNormal},
		{name: "below min", cfg: editor.Config{MinItems: 2, MaxItems: 3}, initial: "a", want: editor.StateBelowMin},
		{name: "empty below min", cfg: editor.Config{MinItems: 1, MaxItems: 3}, initial: "", want: editor.StateBelowMin},
		{name: "at capacity", cfg: editor.Config{MaxItems: 2}, initial: "a,b", want: editor.StateAtCapacity},
		{name: "disabled", cfg: editor.Config{MaxItems: 2, Disabled: true}, initial: "a,b", want: editor.StateDisabled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ed := editor.New(tc.cfg, tc.initial)
			if got := ed.State(); got != tc.want {
				t.Fatalf("state: got %s want %s", got, tc.want)
			}
		})
	}
}

func TestEditor_NormalizerAndMessages(t *testing.T) {
	ed := editor.New(editor.Config{MaxItems: 1}, "",
		editor.WithNormalizer(taglist.StripMarkup),
		editor.WithMessages(editor.Messages{MaxReached: "full (%d)"}),
	)
	if err := ed.AddTag("<b>go</b>"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if diff := cmp.Diff([]string{"go"}, ed.Tags()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if got := ed.Snapshot().Placeholder; got != "full (1)" {
		t.Fatalf("placeholder: got %q", got)
	}
	if err := ed.AddTag("<i></i>"); !errors.Is(err, editor.ErrEmpty) {
		t.Fatalf("markup-only input should be empty, got %v", err)
	}
}

func TestEditor_SyncAndResync(t *testing.T) {
	ed, rec := newEditor(t, editor.DefaultConfig(), " a ,, b,a")
	ed.Sync()
	if rec.last() != "a,b" {
		t.Fatalf("sync: got %q", rec.last())
	}
	ed.SelectIndex(0)
	ed.Resync("x,y")
	if rec.last() != "x,y" {
		t.Fatalf("resync: got %q", rec.last())
	}
	if _, ok := ed.Selection(); ok {
		t.Fatalf("resync should clear selection")
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]editor.Key{
		"Enter":     editor.KeyEnter,
		"Backspace": editor.KeyBackspace,
		"Delete":    editor.KeyDelete,
		"a":         editor.KeyOther,
		"":          editor.KeyOther,
	}
	for name, want := range cases {
		if got := editor.ParseKey(name); got != want {
			t.Fatalf("ParseKey(%q) = %s, want %s", name, got, want)
		}
	}
}
