// Package scaffold renders module source files from stubs and schematics.
package scaffold

// HTMLType is the widget kind a field is edited with.
type HTMLType string

// Widget kinds understood by the form generator.
const (
	HTMLText     HTMLType = "text"
	HTMLTextarea HTMLType = "textarea"
	HTMLNumber   HTMLType = "number"
	HTMLEmail    HTMLType = "email"
	HTMLPassword HTMLType = "password"
	HTMLDate     HTMLType = "date"
	HTMLDateTime HTMLType = "datetime"
	HTMLSwitch   HTMLType = "switch"
	HTMLCheckbox HTMLType = "checkbox"
	HTMLSelect   HTMLType = "select"
	HTMLEditor   HTMLType = "editor"
)

// IsBoolean reports whether the widget edits a true/false value.
func (t HTMLType) IsBoolean() bool {
	return t == HTMLSwitch || t == HTMLCheckbox
}

// Schematic is the declarative definition of one generated entity.
type Schematic struct {
	ModelClass      string  `yaml:"model_class" json:"model_class"`
	ControllerClass string  `yaml:"controller_class,omitempty" json:"controller_class,omitempty"`
	Fields          []Field `yaml:"fields" json:"fields"`
}

// Field is one attribute of a schematic.
type Field struct {
	Name     string   `yaml:"name" json:"name"`
	Title    string   `yaml:"title" json:"title"`
	HTMLType HTMLType `yaml:"html_type" json:"html_type"`
	InList   bool     `yaml:"in_list" json:"in_list"`
	IsVue    bool     `yaml:"is_vue" json:"is_vue"`
}

// ListFields returns the fields shown in the index table, in declaration order.
func (s *Schematic) ListFields() []Field {
	return s.filter(func(f Field) bool { return f.InList })
}

// FormFields returns the fields rendered in create/edit forms, in declaration order.
func (s *Schematic) FormFields() []Field {
	return s.filter(func(f Field) bool { return f.IsVue })
}

func (s *Schematic) filter(keep func(Field) bool) []Field {
	if s == nil {
		return nil
	}
	var out []Field
	for _, f := range s.Fields {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// GeneratedFile represents a file produced by a dry run.
type GeneratedFile struct {
	Path    string // File path relative to the module root
	StubID  string // Stub the content was rendered from
	Content string // File content
}
