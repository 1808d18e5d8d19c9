package scaffold

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var fieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var knownHTMLTypes = map[HTMLType]bool{
	HTMLText: true, HTMLTextarea: true, HTMLNumber: true, HTMLEmail: true,
	HTMLPassword: true, HTMLDate: true, HTMLDateTime: true, HTMLSwitch: true,
	HTMLCheckbox: true, HTMLSelect: true, HTMLEditor: true,
}

// ParseFields parses the --fields DSL into a slice of Field.
// Format: "number:text,paid:switch:form,notes:textarea:list+form"
// The optional third part selects where the field appears (list, form);
// it defaults to both.
func ParseFields(fieldsStr string) ([]Field, error) {
	if strings.TrimSpace(fieldsStr) == "" {
		return nil, nil
	}

	var fields []Field
	for _, part := range strings.Split(fieldsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, err := parseField(part)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

// parseField parses a single field specification.
func parseField(spec string) (Field, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Field{}, fmt.Errorf("invalid field spec %q: expected 'name:type[:list+form]'", spec)
	}

	name := strings.TrimSpace(parts[0])
	if !fieldNamePattern.MatchString(name) {
		return Field{}, fmt.Errorf("invalid field spec %q: name must be lowercase alphanumeric with underscores", spec)
	}

	htmlType := HTMLType(strings.ToLower(strings.TrimSpace(parts[1])))
	if !knownHTMLTypes[htmlType] {
		return Field{}, fmt.Errorf("invalid field spec %q: unknown widget %q", spec, htmlType)
	}

	field := Field{
		Name:     name,
		Title:    Headline(name),
		HTMLType: htmlType,
		InList:   true,
		IsVue:    true,
	}

	if len(parts) == 3 {
		field.InList, field.IsVue = false, false
		for _, where := range strings.Split(parts[2], "+") {
			switch strings.TrimSpace(where) {
			case "list":
				field.InList = true
			case "form":
				field.IsVue = true
			case "":
			default:
				return Field{}, fmt.Errorf("invalid field spec %q: unknown placement %q (valid: list, form)", spec, where)
			}
		}
	}

	return field, nil
}

// BuildSchematic builds a Schematic from a model name and the --fields DSL.
func BuildSchematic(modelClass, fieldsStr string) (*Schematic, error) {
	if strings.TrimSpace(modelClass) == "" {
		return nil, fmt.Errorf("model name is required")
	}

	fields, err := ParseFields(fieldsStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}

	s := &Schematic{ModelClass: Studly(modelClass), Fields: fields}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSchematicFile reads a schematic from a YAML document.
func LoadSchematicFile(path string) (*Schematic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schematic: %w", err)
	}

	var s Schematic
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schematic %s: %w", path, err)
	}

	for i := range s.Fields {
		if s.Fields[i].Title == "" {
			s.Fields[i].Title = Headline(s.Fields[i].Name)
		}
		if s.Fields[i].HTMLType == "" {
			s.Fields[i].HTMLType = HTMLText
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schematic %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the schematic has a model class and named fields.
func (s *Schematic) Validate() error {
	if strings.TrimSpace(s.ModelClass) == "" {
		return fmt.Errorf("schematic model class cannot be empty")
	}
	for i, f := range s.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("field %d has no name", i+1)
		}
	}
	return nil
}
