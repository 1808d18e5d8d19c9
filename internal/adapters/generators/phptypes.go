package generators

import (
	"strings"

	"github.com/example/acacia/internal/scaffold"
)

// phpType describes how a widget kind maps onto the PHP side of a module.
type phpType struct {
	cast  string   // Eloquent cast, empty for none
	faker string   // faker call producing a sample value
	rules []string // validation rules
}

var phpTypes = map[scaffold.HTMLType]phpType{
	scaffold.HTMLText:     {faker: "word()", rules: []string{"nullable", "string", "max:255"}},
	scaffold.HTMLTextarea: {faker: "paragraph()", rules: []string{"nullable", "string"}},
	scaffold.HTMLEditor:   {faker: "paragraph()", rules: []string{"nullable", "string"}},
	scaffold.HTMLNumber:   {faker: "randomNumber()", rules: []string{"nullable", "numeric"}},
	scaffold.HTMLEmail:    {faker: "safeEmail()", rules: []string{"nullable", "email"}},
	scaffold.HTMLPassword: {cast: "hashed", faker: "password()", rules: []string{"nullable", "string", "min:8"}},
	scaffold.HTMLDate:     {cast: "date", faker: "date()", rules: []string{"nullable", "date"}},
	scaffold.HTMLDateTime: {cast: "datetime", faker: "dateTime()", rules: []string{"nullable", "date"}},
	scaffold.HTMLSwitch:   {cast: "boolean", faker: "boolean()", rules: []string{"boolean"}},
	scaffold.HTMLCheckbox: {cast: "boolean", faker: "boolean()", rules: []string{"boolean"}},
	scaffold.HTMLSelect:   {faker: "word()", rules: []string{"nullable"}},
}

func phpTypeOf(t scaffold.HTMLType) phpType {
	if p, ok := phpTypes[t]; ok {
		return p
	}
	return phpTypes[scaffold.HTMLText]
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = quote(s)
	}
	return strings.Join(quoted, ", ")
}
