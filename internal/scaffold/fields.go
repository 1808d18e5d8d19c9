package scaffold

import (
	"encoding/json"
	"fmt"
	"strings"
)

// columnStub renders one index-table column.
const columnStub = "partials/pages/dt-column"

// ListColumns renders a column for every in-list field, in order.
func ListColumns(r *Renderer, fields []Field) (string, error) {
	var b strings.Builder
	for _, f := range fields {
		if !f.InList {
			continue
		}
		col, err := r.Render(columnStub, NewReplacements(
			"FIELD_NAME", f.Name,
			"FIELD_TITLE", f.Title,
			"SORTABLE", "true",
		))
		if err != nil {
			return "", fmt.Errorf("failed to render column %s: %w", f.Name, err)
		}
		b.WriteString(col)
	}
	return b.String(), nil
}

// SearchableColumns returns the in-list field names as a JSON array.
func SearchableColumns(fields []Field) string {
	names := []string{}
	for _, f := range fields {
		if f.InList {
			names = append(names, f.Name)
		}
	}
	data, _ := json.Marshal(names)
	return string(data)
}

// FormFields renders the form widget of every form field, in order.
func FormFields(r *Renderer, fields []Field) (string, error) {
	var b strings.Builder
	for _, f := range fields {
		if !f.IsVue {
			continue
		}
		markup, err := NewFieldMaker(r, f).Render()
		if err != nil {
			return "", fmt.Errorf("failed to render field %s: %w", f.Name, err)
		}
		b.WriteString(markup)
	}
	return b.String(), nil
}

// ComponentImports returns the import statements the form fields need.
// Each distinct statement appears once, at its first occurrence.
func ComponentImports(r *Renderer, fields []Field) string {
	var b strings.Builder
	seen := make(map[string]bool)
	for _, f := range fields {
		if !f.IsVue {
			continue
		}
		imp := NewFieldMaker(r, f).ComponentImport()
		if seen[imp] {
			continue
		}
		seen[imp] = true
		b.WriteString(imp)
	}
	return b.String()
}

// FormObject returns the default form state as a JSON object keyed by field
// name: false for switch and checkbox widgets, null otherwise. A repeated name
// keeps its first position and takes the last value.
func FormObject(fields []Field) string {
	var keys []string
	values := make(map[string]string)
	for _, f := range fields {
		if !f.IsVue {
			continue
		}
		if _, exists := values[f.Name]; !exists {
			keys = append(keys, f.Name)
		}
		if f.HTMLType.IsBoolean() {
			values[f.Name] = "false"
		} else {
			values[f.Name] = "null"
		}
	}

	if len(keys) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		name, _ := json.Marshal(k)
		b.Write(name)
		b.WriteByte(':')
		b.WriteString(values[k])
	}
	b.WriteByte('}')
	return b.String()
}
