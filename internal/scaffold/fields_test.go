package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListColumns_OrderAndFilter(t *testing.T) {
	fields := []Field{
		{Name: "b", Title: "B", InList: true},
		{Name: "hidden", Title: "Hidden", InList: false},
		{Name: "a", Title: "A", InList: true},
	}

	out, err := ListColumns(testRenderer(), fields)
	require.NoError(t, err)

	assert.Equal(t,
		"<Column field=\"b\" header=\"B\" :sortable=\"true\"/>\n"+
			"<Column field=\"a\" header=\"A\" :sortable=\"true\"/>\n",
		out)
	assert.NotContains(t, out, "hidden")
}

func TestListColumns_Empty(t *testing.T) {
	out, err := ListColumns(testRenderer(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListColumns_MissingStub(t *testing.T) {
	_, err := ListColumns(NewRenderer(mapSource{}), []Field{{Name: "a", InList: true}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStubNotFound)
}

func TestSearchableColumns(t *testing.T) {
	fields := []Field{
		{Name: "number", InList: true},
		{Name: "paid", InList: false},
		{Name: "customer", InList: true},
	}
	assert.Equal(t, `["number","customer"]`, SearchableColumns(fields))
	assert.Equal(t, `[]`, SearchableColumns(nil))
	assert.Equal(t, `[]`, SearchableColumns([]Field{{Name: "x"}}))
}

func TestFormFields_UsesWidgetPerType(t *testing.T) {
	out, err := FormFields(testRenderer(), invoiceSchematic().Fields)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `<InputText id="number" label="Number" />`, lines[0])
	assert.Equal(t, `<InputSwitch id="paid" /><label>Paid</label>`, lines[1])
}

func TestFormFields_SkipsNonFormFields(t *testing.T) {
	out, err := FormFields(testRenderer(), []Field{{Name: "x", HTMLType: HTMLText, InList: true}})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormFields_UnknownTypeFallsBackToText(t *testing.T) {
	out, err := FormFields(testRenderer(), []Field{{Name: "code", Title: "Code", HTMLType: "color", IsVue: true}})
	require.NoError(t, err)
	assert.Contains(t, out, "<InputText id=\"code\"")
}

func TestComponentImports_Dedup(t *testing.T) {
	fields := []Field{
		{Name: "a", HTMLType: HTMLText, IsVue: true},
		{Name: "b", HTMLType: HTMLSwitch, IsVue: true},
		{Name: "c", HTMLType: HTMLText, IsVue: true},
		{Name: "d", HTMLType: HTMLEmail, IsVue: true},
		{Name: "e", HTMLType: HTMLNumber, IsVue: false},
	}

	out := ComponentImports(testRenderer(), fields)

	assert.Equal(t,
		"import InputText from \"primevue/inputtext\";\n"+
			"import InputSwitch from \"primevue/inputswitch\";\n",
		out)
}

func TestComponentImports_Empty(t *testing.T) {
	assert.Empty(t, ComponentImports(testRenderer(), nil))
}

func TestFormObject(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{
			name:   "invoice",
			fields: invoiceSchematic().Fields,
			want:   `{"number":null,"paid":false}`,
		},
		{
			name:   "empty",
			fields: nil,
			want:   `[]`,
		},
		{
			name:   "non form fields only",
			fields: []Field{{Name: "x", HTMLType: HTMLText, InList: true}},
			want:   `[]`,
		},
		{
			name: "checkbox is boolean",
			fields: []Field{
				{Name: "agree", HTMLType: HTMLCheckbox, IsVue: true},
				{Name: "notes", HTMLType: HTMLTextarea, IsVue: true},
			},
			want: `{"agree":false,"notes":null}`,
		},
		{
			name: "duplicate keeps first position and last value",
			fields: []Field{
				{Name: "flag", HTMLType: HTMLText, IsVue: true},
				{Name: "other", HTMLType: HTMLText, IsVue: true},
				{Name: "flag", HTMLType: HTMLSwitch, IsVue: true},
			},
			want: `{"flag":false,"other":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormObject(tt.fields))
		})
	}
}

func TestPartialStubs(t *testing.T) {
	assert.Equal(t, []string{"fields/input", "fields/toggle", "partials/pages/dt-column"}, PartialStubs())
}
