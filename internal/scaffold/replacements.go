package scaffold

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnresolvedPlaceholder is returned in strict mode when a stub declares a
// placeholder nothing can compute.
var ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

// Placeholder names a $TOKEN$ inside a stub.
type Placeholder string

// Built-in placeholders.
const (
	LowerName              Placeholder = "LOWER_NAME"
	StudlyName             Placeholder = "STUDLY_NAME"
	StudlySingularName     Placeholder = "STUDLY_SINGULAR_NAME"
	Vendor                 Placeholder = "VENDOR"
	ModuleNamespace        Placeholder = "MODULE_NAMESPACE"
	AuthorName             Placeholder = "AUTHOR_NAME"
	AuthorEmail            Placeholder = "AUTHOR_EMAIL"
	ProviderNamespace      Placeholder = "PROVIDER_NAMESPACE"
	JSIndexColumns         Placeholder = "JS_INDEX_COLUMNS"
	JSIndexSearchableCols  Placeholder = "JS_INDEX_SEARCHABLE_COLS"
	JSIndexTitle           Placeholder = "JS_INDEX_TITLE"
	JSEditTitle            Placeholder = "JS_EDIT_TITLE"
	JSCreateTitle          Placeholder = "JS_CREATE_TITLE"
	CreateFormFields       Placeholder = "CREATE_FORM_FIELDS"
	CreateComponentImports Placeholder = "CREATE_COMPONENT_IMPORTS"
	CreateFormObject       Placeholder = "CREATE_FORM_OBJECT"
)

// Stubs whose content always needs the provider namespace.
const (
	ManifestStub = "json"
	ComposerStub = "composer"
)

// Context is the data placeholder computations read from.
type Context struct {
	Name              string     // requested module name
	Schematic         *Schematic // optional; drives the field placeholders
	Vendor            string
	Namespace         string // root namespace, unescaped
	AuthorName        string
	AuthorEmail       string
	ProviderNamespace string // namespace of the providers folder, unescaped
	Renderer          *Renderer
}

// SingularName is the studly entity name, taken from the schematic model
// class when there is one.
func (c *Context) SingularName() string {
	if c.Schematic != nil && c.Schematic.ModelClass != "" {
		return Studly(c.Schematic.ModelClass)
	}
	return Studly(c.Name)
}

// PluralName is the module name: the plural of SingularName.
func (c *Context) PluralName() string {
	return Plural(c.SingularName())
}

func (c *Context) fields() []Field {
	if c.Schematic == nil {
		return nil
	}
	return c.Schematic.Fields
}

// Computation produces the value of one placeholder.
type Computation func(c *Context) (string, error)

// DefaultComputations returns the built-in placeholder computations.
func DefaultComputations() map[Placeholder]Computation {
	return map[Placeholder]Computation{
		LowerName:          func(c *Context) (string, error) { return strings.ToLower(c.PluralName()), nil },
		StudlyName:         func(c *Context) (string, error) { return c.PluralName(), nil },
		StudlySingularName: func(c *Context) (string, error) { return c.SingularName(), nil },
		Vendor:             func(c *Context) (string, error) { return c.Vendor, nil },
		ModuleNamespace:    func(c *Context) (string, error) { return EscapeNamespace(c.Namespace), nil },
		AuthorName:         func(c *Context) (string, error) { return c.AuthorName, nil },
		AuthorEmail:        func(c *Context) (string, error) { return c.AuthorEmail, nil },
		ProviderNamespace:  func(c *Context) (string, error) { return EscapeNamespace(c.ProviderNamespace), nil },
		JSIndexTitle:       func(c *Context) (string, error) { return Headline(c.PluralName()), nil },
		JSEditTitle:        func(c *Context) (string, error) { return "Edit " + Headline(c.SingularName()), nil },
		JSCreateTitle:      func(c *Context) (string, error) { return "New " + Headline(c.SingularName()), nil },
		JSIndexColumns: func(c *Context) (string, error) {
			return ListColumns(c.Renderer, c.fields())
		},
		JSIndexSearchableCols: func(c *Context) (string, error) {
			return SearchableColumns(c.fields()), nil
		},
		CreateFormFields: func(c *Context) (string, error) {
			return FormFields(c.Renderer, c.fields())
		},
		CreateComponentImports: func(c *Context) (string, error) {
			return ComponentImports(c.Renderer, c.fields()), nil
		},
		CreateFormObject: func(c *Context) (string, error) {
			return FormObject(c.fields()), nil
		},
	}
}

// Resolver maps a stub to its placeholder values.
type Resolver struct {
	ctx          *Context
	table        map[string][]string
	computations map[Placeholder]Computation
	strict       bool
}

// NewResolver creates a Resolver over the per-stub placeholder table.
func NewResolver(ctx *Context, table map[string][]string) *Resolver {
	return &Resolver{
		ctx:          ctx,
		table:        table,
		computations: DefaultComputations(),
	}
}

// Register adds or replaces the computation for a placeholder.
func (r *Resolver) Register(name Placeholder, fn Computation) {
	r.computations[Placeholder(strings.ToUpper(string(name)))] = fn
}

// computation looks up a placeholder regardless of the case used in the
// replacement table.
func (r *Resolver) computation(key string) (Computation, bool) {
	fn, ok := r.computations[Placeholder(strings.ToUpper(key))]
	return fn, ok
}

// SetStrict makes Resolve fail on placeholders with no computation.
func (r *Resolver) SetStrict(strict bool) {
	r.strict = strict
}

// Context returns the data the resolver computes from.
func (r *Resolver) Context() *Context {
	return r.ctx
}

// Keys returns the ordered placeholder names configured for stubID.
func (r *Resolver) Keys(stubID string) []string {
	keys, ok := r.table[stubID]
	if !ok {
		return nil
	}
	keys = append([]string(nil), keys...)

	if stubID == ManifestStub || stubID == ComposerStub {
		if !slices.ContainsFunc(keys, func(k string) bool { return strings.EqualFold(k, string(ProviderNamespace)) }) {
			keys = append(keys, string(ProviderNamespace))
		}
	}
	return keys
}

// Resolve computes every placeholder configured for stubID. Names without a
// computation resolve to an absent Value.
func (r *Resolver) Resolve(stubID string) (Replacements, error) {
	var out Replacements
	for _, key := range r.Keys(stubID) {
		fn, ok := r.computation(key)
		if !ok {
			if r.strict {
				return Replacements{}, fmt.Errorf("%w %s in stub %s (no %s)", ErrUnresolvedPlaceholder, key, stubID, MethodName(key))
			}
			out.Set(key, Value{})
			continue
		}
		v, err := fn(r.ctx)
		if err != nil {
			return Replacements{}, fmt.Errorf("failed to compute %s: %w", key, err)
		}
		out.Set(key, Text(v))
	}
	return out, nil
}

// Unresolved lists the placeholders of stubID that have no computation.
func (r *Resolver) Unresolved(stubID string) []string {
	var out []string
	for _, key := range r.Keys(stubID) {
		if _, ok := r.computation(key); !ok {
			out = append(out, key)
		}
	}
	return out
}

// RenderStub resolves and renders stubID in one step.
func (r *Resolver) RenderStub(stubID string) (string, error) {
	repl, err := r.Resolve(stubID)
	if err != nil {
		return "", err
	}
	return r.ctx.Renderer.Render(stubID, repl)
}

