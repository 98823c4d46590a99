package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tagfield/pkg/config"
)

func TestLintHTML(t *testing.T) {
	page := `<form>
  <input type="text" name="plain" value="a,,a">
  <input class="comma-input-field" id="langs" name="langs" value="en, fr">
  <input class="comma-input-field" name="colors" value="red,red,blue" data-max-items="1">
  <input class="comma-input-field" data-min-items="x">
  <input class="comma-input-field" id="sizes" name="sizes" data-min-items="4" data-max-items="2">
</form>`

	violations, err := lintHTML(config.Default(), "page.html", strings.NewReader(page))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	sortViolations(violations)

	got := make([]string, 0, len(violations))
	for _, v := range violations {
		got = append(got, v.file+": "+v.location+" -> "+v.message)
	}
	want := []string{
		`page.html: #sizes -> editor: attribute data-min-items="4": editor: minimum exceeds maximum (maxItems 2), clamped`,
		`page.html: input #4 -> editor: attribute data-min-items="x": editor: invalid item count`,
		`page.html: input #4 -> host has no name attribute; its value is never submitted`,
		`page.html: input[name="colors"] -> initial value "red,red,blue" contains empty or duplicate items`,
		`page.html: input[name="colors"] -> initial value has 2 items, maximum is 1`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestLintHTML_CustomHostClass(t *testing.T) {
	defaults := config.Default()
	defaults.HostClass = "langs-input"

	page := `<input class="comma-input-field" value="a,a"><input class="langs-input" name="l" value="a,a">`
	violations, err := lintHTML(defaults, "page.html", strings.NewReader(page))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(violations) != 1 || violations[0].location != `input[name="l"]` {
		t.Fatalf("unexpected violations %+v", violations)
	}
}
