// Package report builds the markdown compatibility report printed by the
// doctor command. It only assembles text; rendering is left to the caller.
package report

import (
	"fmt"
	"strings"
)

// FieldStatus classifies the outcome of deserializing one config field.
type FieldStatus string

const (
	StatusOK       FieldStatus = "ok"
	StatusFallback FieldStatus = "fallback"
	StatusError    FieldStatus = "error"
)

// Field is one row of the per-field section.
type Field struct {
	Name     string
	Declared string
	Status   FieldStatus
	Detail   string // fallback reason or error message
}

// Report collects everything the doctor run observed.
type Report struct {
	Document string
	Patches  []string // applied patch IDs, in application order
	Skipped  []string // patch IDs that were already in place
	Deferred []string // targets waiting for their module to load
	Fields   []Field
	LoadErr  error // non-nil when the config load itself failed
}

// Healthy reports whether the document loaded and no field errored out.
func (r *Report) Healthy() bool {
	if r.LoadErr != nil {
		return false
	}
	for _, f := range r.Fields {
		if f.Status == StatusError {
			return false
		}
	}
	return true
}

// Markdown renders the report as a markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder

	b.WriteString("# Compatibility report\n\n")
	fmt.Fprintf(&b, "Document: `%s`\n\n", r.Document)

	b.WriteString("## Patches\n\n")
	if len(r.Patches) == 0 && len(r.Skipped) == 0 && len(r.Deferred) == 0 {
		b.WriteString("No patches were applied.\n\n")
	}
	for _, id := range r.Patches {
		fmt.Fprintf(&b, "- `%s` applied\n", id)
	}
	for _, id := range r.Skipped {
		fmt.Fprintf(&b, "- `%s` already in place\n", id)
	}
	for _, t := range r.Deferred {
		fmt.Fprintf(&b, "- `%s` deferred until the module loads\n", t)
	}
	if len(r.Patches)+len(r.Skipped)+len(r.Deferred) > 0 {
		b.WriteString("\n")
	}

	if len(r.Fields) > 0 {
		b.WriteString("## Fields\n\n")
		b.WriteString("| Field | Declared | Status | Detail |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, f := range r.Fields {
			detail := f.Detail
			if detail == "" {
				detail = "-"
			}
			// Declared names like "float | [float]" would break the table.
			fmt.Fprintf(&b, "| `%s` | `%s` | %s | %s |\n",
				cell(f.Name), cell(f.Declared), f.Status, cell(detail))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Result\n\n")
	switch {
	case r.LoadErr != nil:
		fmt.Fprintf(&b, "Config load **failed**: %v\n", r.LoadErr)
	case r.Healthy():
		b.WriteString("Document loads cleanly under the installed patches.\n")
	default:
		b.WriteString("Document loads, but some fields needed attention.\n")
	}

	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
