package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	fields, err := ParseFields("number:text, paid:switch:form ,notes:textarea:list+form,code:text:list")
	require.NoError(t, err)
	require.Len(t, fields, 4)

	assert.Equal(t, Field{Name: "number", Title: "Number", HTMLType: HTMLText, InList: true, IsVue: true}, fields[0])
	assert.Equal(t, Field{Name: "paid", Title: "Paid", HTMLType: HTMLSwitch, InList: false, IsVue: true}, fields[1])
	assert.True(t, fields[2].InList)
	assert.True(t, fields[2].IsVue)
	assert.True(t, fields[3].InList)
	assert.False(t, fields[3].IsVue)
}

func TestParseFields_Empty(t *testing.T) {
	fields, err := ParseFields("  ")
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestParseFields_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing type", "number"},
		{"too many parts", "a:text:list:form"},
		{"bad name", "Number:text"},
		{"unknown widget", "number:slider"},
		{"unknown placement", "number:text:grid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFields(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestParseFields_TitleFromSnakeName(t *testing.T) {
	fields, err := ParseFields("due_date:date")
	require.NoError(t, err)
	assert.Equal(t, "Due Date", fields[0].Title)
}

func TestBuildSchematic(t *testing.T) {
	s, err := BuildSchematic("invoice", "number:text,paid:switch:form")
	require.NoError(t, err)
	assert.Equal(t, "Invoice", s.ModelClass)
	assert.Len(t, s.ListFields(), 1)
	assert.Len(t, s.FormFields(), 2)

	_, err = BuildSchematic("", "number:text")
	assert.Error(t, err)
}

func TestLoadSchematicFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.yaml")
	doc := `model_class: Invoice
fields:
  - name: number
    in_list: true
    is_vue: true
  - name: paid
    title: Paid?
    html_type: switch
    is_vue: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := LoadSchematicFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Invoice", s.ModelClass)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "Number", s.Fields[0].Title)
	assert.Equal(t, HTMLText, s.Fields[0].HTMLType)
	assert.Equal(t, "Paid?", s.Fields[1].Title)
	assert.False(t, s.Fields[1].InList)
}

func TestLoadSchematicFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields:\n  - name: x\n"), 0644))

	_, err := LoadSchematicFile(path)
	assert.Error(t, err)

	_, err = LoadSchematicFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "InvoiceItem", Studly("invoice_item"))
	assert.Equal(t, "Invoice", Studly(" invoice "))
	assert.Equal(t, "", Studly(""))
	assert.Equal(t, "Invoices", Plural("Invoice"))
	assert.Equal(t, "Invoice", Singular("Invoices"))
	assert.Equal(t, "invoice_item", Snake("InvoiceItem"))
	assert.Equal(t, "Invoice Items", Headline("InvoiceItems"))
	assert.Equal(t, "getLowerNameReplacement", MethodName("LOWER_NAME"))
	assert.Equal(t, `Acacia\\Modules`, EscapeNamespace(`Acacia\Modules`))
}
