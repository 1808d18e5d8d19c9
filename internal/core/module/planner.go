package module

import (
	"fmt"
	"strings"
)

// ResourceKind names a sub-generator.
type ResourceKind string

const (
	ResourceSeeder        ResourceKind = "seeder"
	ResourceProvider      ResourceKind = "provider"
	ResourceRouteProvider ResourceKind = "route-provider"
	ResourceFactory       ResourceKind = "factory"
	ResourceModel         ResourceKind = "model"
	ResourceController    ResourceKind = "controller"
)

// ResourceToggles holds the folder plan toggles gating resource generation.
type ResourceToggles struct {
	Seeder        bool
	Provider      bool
	Model         bool // gates both factory and model
	Controller    bool
	APIController bool
}

// ResourceInput contains pre-fetched data for resource planning.
type ResourceInput struct {
	Singular        string // studly singular name, e.g. "Invoice"
	Plural          string // module name, e.g. "Invoices"
	ModelClass      string // schematic model class, if any
	ControllerClass string // schematic controller override, if any
	Type            Type
	Toggles         ResourceToggles
}

// ResourceOp is one planned sub-generator call.
type ResourceOp struct {
	Kind          ResourceKind
	Name          string
	Module        string
	Master        bool
	API           bool
	WithSchematic bool
}

func (op ResourceOp) String() string {
	return fmt.Sprintf("%s %s (module %s)", op.Kind, op.Name, op.Module)
}

// PlanResources returns the sub-generator calls for a run, in order:
// seeder, provider and route provider, factory, model, controller, api
// controller. Plain runs produce none.
func PlanResources(in ResourceInput) []ResourceOp {
	if in.Type.IsPlain() {
		return nil
	}

	var ops []ResourceOp

	if in.Toggles.Seeder {
		ops = append(ops, ResourceOp{Kind: ResourceSeeder, Name: in.Plural, Module: in.Plural, Master: true})
	}

	if in.Toggles.Provider {
		ops = append(ops,
			ResourceOp{Kind: ResourceProvider, Name: in.Plural + "ServiceProvider", Module: in.Plural, Master: true},
			ResourceOp{Kind: ResourceRouteProvider, Name: "RouteServiceProvider", Module: in.Plural},
		)
	}

	model := in.ModelClass
	if model == "" {
		model = in.Singular
	}
	if in.Toggles.Model {
		ops = append(ops,
			ResourceOp{Kind: ResourceFactory, Name: model, Module: in.Plural, WithSchematic: true},
			ResourceOp{Kind: ResourceModel, Name: model, Module: in.Plural, WithSchematic: true},
		)
	}

	if in.Toggles.Controller {
		name := in.ControllerClass
		if name == "" {
			name = in.Singular + "Controller"
		}
		ops = append(ops, ResourceOp{
			Kind:          ResourceController,
			Name:          name,
			Module:        in.Plural,
			API:           in.Type == TypeAPI,
			WithSchematic: true,
		})
	}

	if in.Toggles.APIController {
		ops = append(ops, ResourceOp{
			Kind:          ResourceController,
			Name:          "Api/" + in.Singular + "Controller",
			Module:        in.Plural,
			API:           true,
			WithSchematic: true,
		})
	}

	return ops
}

// MenuEntry is the admin menu record registered for a module.
type MenuEntry struct {
	Title         string
	Icon          string
	Route         string
	ActivePattern string
	Position      int
	ParentID      int64
}

const (
	menuRoutePrefix = "acacia.backend."
	menuIcon        = "pi pi-box"
	menuParentID    = 1
)

// MenuRoute returns the index route of a module from its lower-case plural name.
func MenuRoute(lowerName string) string {
	return menuRoutePrefix + lowerName + ".index"
}

// PlanMenuEntry builds the menu entry for a module.
func PlanMenuEntry(lowerName, title string) MenuEntry {
	base := menuRoutePrefix + lowerName
	return MenuEntry{
		Title:         title,
		Icon:          menuIcon,
		Route:         base + ".index",
		ActivePattern: base + ".*",
		Position:      0,
		ParentID:      menuParentID,
	}
}

// ProviderReference returns the quoted provider class reference a manifest
// declares, with namespace separators escaped as they appear in JSON.
func ProviderReference(escapedNamespace, studlyName, escapedProviderNamespace string) string {
	return `"` + escapedNamespace + `\\` + studlyName + `\\` + escapedProviderNamespace + `\\` + studlyName + `ServiceProvider"`
}

// StripProviderReference removes the module's service provider from manifest
// content.
func StripProviderReference(content, escapedNamespace, studlyName, escapedProviderNamespace string) string {
	return strings.ReplaceAll(content, ProviderReference(escapedNamespace, studlyName, escapedProviderNamespace), "")
}
