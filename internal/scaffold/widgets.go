package scaffold

import (
	"fmt"
	"sort"
)

// FieldMaker renders the form markup for one field and names the
// component import that markup needs.
type FieldMaker interface {
	Render() (string, error)
	ComponentImport() string
}

// widget describes how one HTMLType is rendered.
type widget struct {
	component string // Vue component tag
	module    string // import path of the component
	stub      string // field stub rendering the markup
	props     string // extra attributes on the component tag
}

var widgets = map[HTMLType]widget{
	HTMLText:     {component: "InputText", module: "primevue/inputtext", stub: "fields/input"},
	HTMLEmail:    {component: "InputText", module: "primevue/inputtext", stub: "fields/input", props: `type="email"`},
	HTMLPassword: {component: "Password", module: "primevue/password", stub: "fields/input", props: `:feedback="false" toggle-mask`},
	HTMLTextarea: {component: "Textarea", module: "primevue/textarea", stub: "fields/input", props: `rows="5" auto-resize`},
	HTMLNumber:   {component: "InputNumber", module: "primevue/inputnumber", stub: "fields/input", props: `:use-grouping="false"`},
	HTMLDate:     {component: "Calendar", module: "primevue/calendar", stub: "fields/input", props: `date-format="yy-mm-dd" show-icon`},
	HTMLDateTime: {component: "Calendar", module: "primevue/calendar", stub: "fields/input", props: `date-format="yy-mm-dd" show-time show-icon`},
	HTMLSelect:   {component: "Dropdown", module: "primevue/dropdown", stub: "fields/input", props: `:options="[]" show-clear`},
	HTMLEditor:   {component: "Editor", module: "primevue/editor", stub: "fields/input", props: `editor-style="height: 240px"`},
	HTMLSwitch:   {component: "InputSwitch", module: "primevue/inputswitch", stub: "fields/toggle"},
	HTMLCheckbox: {component: "Checkbox", module: "primevue/checkbox", stub: "fields/toggle", props: `:binary="true"`},
}

// widgetField is the FieldMaker for every registered widget.
type widgetField struct {
	renderer *Renderer
	field    Field
	widget   widget
}

// NewFieldMaker selects the widget renderer for f.HTMLType.
// Unknown widget kinds render as text inputs.
func NewFieldMaker(r *Renderer, f Field) FieldMaker {
	w, ok := widgets[f.HTMLType]
	if !ok {
		w = widgets[HTMLText]
	}
	return &widgetField{renderer: r, field: f, widget: w}
}

func (w *widgetField) Render() (string, error) {
	title := w.field.Title
	if title == "" {
		title = Headline(w.field.Name)
	}
	return w.renderer.Render(w.widget.stub, NewReplacements(
		"FIELD_NAME", w.field.Name,
		"FIELD_TITLE", title,
		"COMPONENT", w.widget.component,
		"PROPS", w.widget.props,
	))
}

func (w *widgetField) ComponentImport() string {
	return fmt.Sprintf("import %s from \"%s\";\n", w.widget.component, w.widget.module)
}

// PartialStubs returns the stubs rendered for fields and list columns.
func PartialStubs() []string {
	seen := map[string]bool{columnStub: true}
	ids := []string{columnStub}
	for _, w := range widgets {
		if !seen[w.stub] {
			seen[w.stub] = true
			ids = append(ids, w.stub)
		}
	}
	sort.Strings(ids)
	return ids
}
