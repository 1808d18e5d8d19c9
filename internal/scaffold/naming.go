package scaffold

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name transformation helpers

// Studly converts a name to StudlyCase: "invoice_item" -> "InvoiceItem".
func Studly(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return inflect.Camelize(s)
}

// Plural returns the plural form of a StudlyCase word: "Invoice" -> "Invoices".
func Plural(s string) string {
	if s == "" {
		return s
	}
	return inflect.Pluralize(s)
}

// Singular returns the singular form of a word.
func Singular(s string) string {
	if s == "" {
		return s
	}
	return inflect.Singularize(s)
}

// Snake converts a name to snake_case: "InvoiceItem" -> "invoice_item".
func Snake(s string) string {
	return inflect.Underscore(s)
}

// Headline turns a StudlyCase name into space separated title words:
// "InvoiceItems" -> "Invoice Items".
func Headline(s string) string {
	words := strings.ReplaceAll(inflect.Dasherize(s), "-", " ")
	return cases.Title(language.English).String(words)
}

// MethodName returns the conventional computation name for a placeholder:
// "LOWER_NAME" -> "getLowerNameReplacement". Used in diagnostics only.
func MethodName(placeholder string) string {
	return "get" + Studly(strings.ToLower(placeholder)) + "Replacement"
}

// EscapeNamespace doubles namespace separators for embedding in JSON strings.
func EscapeNamespace(ns string) string {
	return strings.ReplaceAll(ns, "\\", "\\\\")
}
