package scaffold

import "fmt"

// mapSource is an in-memory StubSource for tests.
type mapSource map[string]string

func (m mapSource) Load(stubID string) (string, error) {
	s, ok := m[stubID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrStubNotFound, stubID)
	}
	return s, nil
}

func testRenderer() *Renderer {
	return NewRenderer(mapSource{
		"partials/pages/dt-column": "<Column field=\"$FIELD_NAME$\" header=\"$FIELD_TITLE$\" :sortable=\"$SORTABLE$\"/>\n",
		"fields/input":             "<$COMPONENT$ id=\"$FIELD_NAME$\" label=\"$FIELD_TITLE$\" $PROPS$/>\n",
		"fields/toggle":            "<$COMPONENT$ id=\"$FIELD_NAME$\" $PROPS$/><label>$FIELD_TITLE$</label>\n",
		"json":                     `{"name":"$STUDLY_NAME$","provider":"$MODULE_NAMESPACE$\\$STUDLY_NAME$\\$PROVIDER_NAMESPACE$"}`,
		"composer":                 `{"name":"$VENDOR$/$LOWER_NAME$","author":"$AUTHOR_NAME$ <$AUTHOR_EMAIL$>"}`,
		"js/index":                 "$JS_INDEX_TITLE$|$JS_INDEX_SEARCHABLE_COLS$|$JS_INDEX_COLUMNS$",
		"js/create":                "$JS_CREATE_TITLE$|$CREATE_COMPONENT_IMPORTS$|$CREATE_FORM_OBJECT$|$CREATE_FORM_FIELDS$",
	})
}

func invoiceSchematic() *Schematic {
	return &Schematic{
		ModelClass: "Invoice",
		Fields: []Field{
			{Name: "number", Title: "Number", HTMLType: HTMLText, InList: true, IsVue: true},
			{Name: "paid", Title: "Paid", HTMLType: HTMLSwitch, InList: false, IsVue: true},
		},
	}
}
