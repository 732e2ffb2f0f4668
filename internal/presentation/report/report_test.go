package report

import (
	"errors"
	"strings"
	"testing"
)

func TestHealthy(t *testing.T) {
	tests := []struct {
		name string
		rep  Report
		want bool
	}{
		{"empty", Report{}, true},
		{"load error", Report{LoadErr: errors.New("boom")}, false},
		{"field error", Report{Fields: []Field{{Name: "x", Status: StatusError}}}, false},
		{"fallbacks are healthy", Report{Fields: []Field{{Name: "x", Status: StatusFallback}}}, true},
	}

	for _, tt := range tests {
		if got := tt.rep.Healthy(); got != tt.want {
			t.Errorf("%s: Healthy() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	rep := Report{
		Document: "model/config.json",
		Patches:  []string{"splint.predicate_guard"},
		Skipped:  []string{"splint.deserialize_fallback"},
		Deferred: []string{"checkpoint.load"},
		Fields: []Field{
			{Name: "model_name", Declared: "string", Status: StatusOK},
			{Name: "length_scale", Declared: "float | [float]", Status: StatusFallback, Detail: "non_type_declaration"},
		},
	}

	md := rep.Markdown()

	for _, want := range []string{
		"# Compatibility report",
		"`model/config.json`",
		"`splint.predicate_guard` applied",
		"`splint.deserialize_fallback` already in place",
		"`checkpoint.load` deferred",
		"| `length_scale` | `float \\| [float]` | fallback | non_type_declaration |",
		"Document loads cleanly",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q\n%s", want, md)
		}
	}
}

func TestMarkdownLoadFailure(t *testing.T) {
	rep := Report{Document: "config.json", LoadErr: errors.New("no such document")}

	md := rep.Markdown()
	if !strings.Contains(md, "Config load **failed**") {
		t.Errorf("Markdown() missing failure section\n%s", md)
	}
	if !strings.Contains(md, "No patches were applied.") {
		t.Errorf("Markdown() missing empty-patches note\n%s", md)
	}
}
