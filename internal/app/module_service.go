// Package app contains the application services that orchestrate business logic.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/example/acacia/internal/config"
	coremodule "github.com/example/acacia/internal/core/module"
	"github.com/example/acacia/internal/logging"
	"github.com/example/acacia/internal/plan"
	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

const (
	folderMode = 0755
	fileMode   = 0775
	gitkeep    = ".gitkeep"
	manifest   = "module.json"
)

// ModuleGenerators groups the resource sub-generators a run delegates to.
type ModuleGenerators struct {
	Seeder     secondary.SeederGenerator
	Provider   secondary.ProviderGenerator
	Factory    secondary.FactoryGenerator
	Model      secondary.ModelGenerator
	Controller secondary.ControllerGenerator
}

// ModuleServiceImpl implements the ModuleService interface.
type ModuleServiceImpl struct {
	scaffolding
	fs         secondary.FileSystem
	generators ModuleGenerators
	menus      secondary.MenuRepository
	activation secondary.ActivationStore
	post       secondary.PostProcessor
	history    secondary.ModuleLogRepository
	logWriter  secondary.LogWriter
	logger     *zap.Logger
}

// NewModuleService creates a new ModuleService with injected dependencies.
func NewModuleService(
	cfg config.Provider,
	reader *plan.Reader,
	renderer *scaffold.Renderer,
	fs secondary.FileSystem,
	generators ModuleGenerators,
	menus secondary.MenuRepository,
	activation secondary.ActivationStore,
	post secondary.PostProcessor,
	history secondary.ModuleLogRepository,
	logWriter secondary.LogWriter,
	logger *zap.Logger,
) *ModuleServiceImpl {
	return &ModuleServiceImpl{
		scaffolding: scaffolding{config: cfg, plan: reader, renderer: renderer},
		fs:          fs,
		generators:  generators,
		menus:       menus,
		activation:  activation,
		post:        post,
		history:     history,
		logWriter:   logWriter,
		logger:      logging.OrNop(logger),
	}
}

// run carries the per-invocation state of a generation.
type run struct {
	cfg      *config.Config
	req      primary.GenerateModuleRequest
	typ      coremodule.Type
	resolver *scaffold.Resolver
	name     string // plural studly module name
	singular string
	lower    string
	root     string
	state    coremodule.State
	resp     *primary.GenerateModuleResponse
}

func (r *run) advance() {
	r.state = r.state.Next(r.typ)
	r.resp.State = r.state.String()
}

func (r *run) created(path string) {
	r.resp.Created = append(r.resp.Created, path)
}

// GenerateModule scaffolds a module: folders, manifest, file plan, resources,
// menu entry and activation, then a best-effort formatter pass.
func (s *ModuleServiceImpl) GenerateModule(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	cfg := s.snapshot()

	typ, err := coremodule.ParseType(req.Type)
	if err != nil {
		return nil, err
	}

	resolver := s.resolver(cfg, req.Name, req.Schematic)
	sctx := resolver.Context()
	name := sctx.PluralName()

	exists := false
	if name != "" {
		exists, err = s.fs.ModuleExists(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check module: %w", err)
		}
	}

	guardCtx := coremodule.GenerateContext{
		Name:   name,
		Type:   typ,
		Exists: exists,
		Force:  req.Force,
	}
	if result := coremodule.CanGenerate(guardCtx); !result.Allowed {
		if exists && !req.Force {
			s.logger.Warn("module already exists", zap.String("module", name))
			return &primary.GenerateModuleResponse{
				Module:   name,
				Path:     s.fs.ModulePath(name),
				ExitCode: coremodule.ExitAlreadyExists,
				State:    coremodule.StateNotStarted.String(),
			}, fmt.Errorf("%w: %s", primary.ErrModuleExists, result.Reason)
		}
		return nil, result.Error()
	}

	r := &run{
		cfg:      cfg,
		req:      req,
		typ:      typ,
		resolver: resolver,
		name:     name,
		singular: sctx.SingularName(),
		lower:    strings.ToLower(name),
		root:     s.fs.ModulePath(name),
		state:    coremodule.StateNotStarted,
	}
	r.resp = &primary.GenerateModuleResponse{
		Module: name,
		Path:   r.root,
		State:  r.state.String(),
	}

	if req.DryRun {
		return s.dryRun(r)
	}

	log := s.logger.With(zap.String("module", name), zap.String("type", string(typ)))

	if coremodule.MustReplace(guardCtx) {
		if err := s.replace(ctx, r); err != nil {
			return nil, err
		}
		log.Info("replaced existing module")
		if err := s.logWriter.LogDelete(ctx, name); err != nil {
			log.Warn("failed to record module history", zap.Error(err))
		}
	}

	if err := s.createFolders(ctx, r); err != nil {
		return nil, err
	}
	r.advance()

	if err := s.writeManifest(ctx, r); err != nil {
		return nil, err
	}
	r.advance()

	if !typ.IsPlain() {
		if err := s.writeFiles(ctx, r); err != nil {
			return nil, err
		}
		r.advance()

		if err := s.generateResources(ctx, r); err != nil {
			return nil, err
		}
		r.advance()

		if err := s.registerMenu(ctx, r); err != nil {
			return nil, err
		}
		r.advance()
	}

	active := cfg.Active
	if req.Active != nil {
		active = *req.Active
	}
	if err := s.activation.SetActiveByName(ctx, name, active); err != nil {
		return nil, fmt.Errorf("failed to set module status: %w", err)
	}
	r.advance()

	if req.NoFormat {
		log.Debug("post-processing skipped")
	} else if err := s.post.PostProcess(ctx, r.root); err != nil {
		log.Warn("post-processing failed", zap.Error(err))
		r.resp.Warnings = append(r.resp.Warnings, fmt.Sprintf("post-processing failed: %v", err))
	}
	r.advance()

	if err := s.logWriter.LogCreate(ctx, name); err != nil {
		log.Warn("failed to record module history", zap.Error(err))
	}

	r.resp.ExitCode = coremodule.ExitSuccess
	log.Info("module generated",
		zap.Int("files", len(r.resp.Created)),
		zap.Bool("active", active),
		zap.Int64("menu_id", r.resp.MenuID),
	)
	return r.resp, nil
}

// replace deletes the module tree, then its menu entries.
func (s *ModuleServiceImpl) replace(ctx context.Context, r *run) error {
	if err := s.fs.DeleteModule(ctx, r.name); err != nil {
		return fmt.Errorf("failed to delete existing module: %w", err)
	}
	if _, err := s.menus.DeleteWhereRoute(ctx, coremodule.MenuRoute(r.lower)); err != nil {
		return fmt.Errorf("failed to delete menu entries: %w", err)
	}
	r.resp.Replaced = true
	return nil
}

func (s *ModuleServiceImpl) createFolders(ctx context.Context, r *run) error {
	for _, folder := range s.plan.ListFolders() {
		path := filepath.Join(r.root, filepath.FromSlash(folder.Path))
		if err := s.fs.MakeDirectory(ctx, path, folderMode, true); err != nil {
			return fmt.Errorf("failed to create folder %s: %w", folder.Key, err)
		}
		if r.cfg.Stubs.Gitkeep {
			if err := s.fs.Put(ctx, filepath.Join(path, gitkeep), ""); err != nil {
				return fmt.Errorf("failed to write %s in %s: %w", gitkeep, folder.Key, err)
			}
		}
	}
	return nil
}

func (s *ModuleServiceImpl) manifestContent(r *run) (string, error) {
	content, err := r.resolver.RenderStub(scaffold.ManifestStub)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", manifest, err)
	}
	if r.typ.IsPlain() {
		sctx := r.resolver.Context()
		content = coremodule.StripProviderReference(content,
			scaffold.EscapeNamespace(sctx.Namespace),
			r.name,
			scaffold.EscapeNamespace(sctx.ProviderNamespace),
		)
	}
	return content, nil
}

func (s *ModuleServiceImpl) writeManifest(ctx context.Context, r *run) error {
	content, err := s.manifestContent(r)
	if err != nil {
		return err
	}
	path := filepath.Join(r.root, manifest)
	if err := s.fs.Put(ctx, path, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifest, err)
	}
	r.created(path)
	return nil
}

func (s *ModuleServiceImpl) writeFiles(ctx context.Context, r *run) error {
	for _, file := range s.plan.ListFiles() {
		content, err := r.resolver.RenderStub(file.StubID)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", file.StubID, err)
		}

		path := filepath.Join(r.root, filepath.FromSlash(file.Target))
		if dir := filepath.Dir(path); !s.fs.IsDirectory(ctx, dir) {
			if err := s.fs.MakeDirectory(ctx, dir, fileMode, true); err != nil {
				return fmt.Errorf("failed to create folder for %s: %w", file.Target, err)
			}
		}
		if err := s.fs.Put(ctx, path, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Target, err)
		}
		r.created(path)
	}
	return nil
}

func (s *ModuleServiceImpl) planResources(r *run) []coremodule.ResourceOp {
	in := coremodule.ResourceInput{
		Singular: r.singular,
		Plural:   r.name,
		Type:     r.typ,
		Toggles: coremodule.ResourceToggles{
			Seeder:        s.plan.Enabled("seeder"),
			Provider:      s.plan.Enabled("provider"),
			Model:         s.plan.Enabled("model"),
			Controller:    s.plan.Enabled("controller"),
			APIController: s.plan.Enabled("api-controller"),
		},
	}
	if r.req.Schematic != nil {
		in.ModelClass = r.req.Schematic.ModelClass
		in.ControllerClass = r.req.Schematic.ControllerClass
	}
	return coremodule.PlanResources(in)
}

func (s *ModuleServiceImpl) generateResources(ctx context.Context, r *run) error {
	for _, op := range s.planResources(r) {
		path, err := s.runResource(ctx, op, r.req.Schematic)
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", op, err)
		}
		s.logger.Debug("resource generated", zap.String("kind", string(op.Kind)), zap.String("path", path))
		r.created(path)
	}
	return nil
}

func (s *ModuleServiceImpl) runResource(ctx context.Context, op coremodule.ResourceOp, schematic *scaffold.Schematic) (string, error) {
	if !op.WithSchematic {
		schematic = nil
	}

	switch op.Kind {
	case coremodule.ResourceSeeder:
		return s.generators.Seeder.MakeSeeder(ctx, secondary.SeederArgs{Name: op.Name, Module: op.Module, Master: op.Master})
	case coremodule.ResourceProvider:
		return s.generators.Provider.MakeProvider(ctx, secondary.ProviderArgs{Name: op.Name, Module: op.Module, Master: op.Master})
	case coremodule.ResourceRouteProvider:
		return s.generators.Provider.MakeRouteProvider(ctx, secondary.RouteProviderArgs{Module: op.Module})
	case coremodule.ResourceFactory:
		return s.generators.Factory.MakeFactory(ctx, secondary.FactoryArgs{Name: op.Name, Module: op.Module, Schematic: schematic})
	case coremodule.ResourceModel:
		return s.generators.Model.MakeModel(ctx, secondary.ModelArgs{Name: op.Name, Module: op.Module, Schematic: schematic})
	case coremodule.ResourceController:
		return s.generators.Controller.MakeController(ctx, secondary.ControllerArgs{Name: op.Name, Module: op.Module, API: op.API, Schematic: schematic})
	default:
		return "", fmt.Errorf("unknown resource kind %q", op.Kind)
	}
}

// registerMenu replaces any entry left on the module route, so a module
// removed outside acacia never ends up with two entries.
func (s *ModuleServiceImpl) registerMenu(ctx context.Context, r *run) error {
	entry := coremodule.PlanMenuEntry(r.lower, scaffold.Headline(r.name))
	stale, err := s.menus.DeleteWhereRoute(ctx, entry.Route)
	if err != nil {
		return fmt.Errorf("failed to clear menu entries: %w", err)
	}
	if stale > 0 {
		s.logger.Warn("removed stale menu entries", zap.String("route", entry.Route), zap.Int64("count", stale))
	}

	record := &secondary.MenuRecord{
		Title:         entry.Title,
		Icon:          entry.Icon,
		Route:         entry.Route,
		ActivePattern: entry.ActivePattern,
		Position:      entry.Position,
		ParentID:      entry.ParentID,
	}
	if err := s.menus.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to register menu: %w", err)
	}
	r.resp.MenuID = record.ID
	return nil
}

// dryRun renders everything a run would write without touching any
// collaborator.
func (s *ModuleServiceImpl) dryRun(r *run) (*primary.GenerateModuleResponse, error) {
	for _, folder := range s.plan.ListFolders() {
		r.resp.Planned = append(r.resp.Planned, "folder "+folder.Path)
	}

	content, err := s.manifestContent(r)
	if err != nil {
		return nil, err
	}
	r.resp.Files = append(r.resp.Files, scaffold.GeneratedFile{Path: manifest, StubID: scaffold.ManifestStub, Content: content})

	if !r.typ.IsPlain() {
		for _, file := range s.plan.ListFiles() {
			content, err := r.resolver.RenderStub(file.StubID)
			if err != nil {
				return nil, fmt.Errorf("failed to render %s: %w", file.StubID, err)
			}
			r.resp.Files = append(r.resp.Files, scaffold.GeneratedFile{Path: file.Target, StubID: file.StubID, Content: content})
		}
		for _, op := range s.planResources(r) {
			r.resp.Planned = append(r.resp.Planned, op.String())
		}
		r.resp.Planned = append(r.resp.Planned, "menu "+coremodule.MenuRoute(r.lower))
	}

	r.resp.Planned = append(r.resp.Planned, "activate "+r.name)
	r.resp.ExitCode = coremodule.ExitSuccess
	return r.resp, nil
}

// ListModules retrieves the modules on disk merged with stored statuses.
func (s *ModuleServiceImpl) ListModules(ctx context.Context) ([]*primary.Module, error) {
	names, err := s.fs.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	statuses, err := s.activation.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list module statuses: %w", err)
	}

	byName := make(map[string]*primary.Module)
	for _, name := range names {
		byName[name] = &primary.Module{Name: name, Path: s.fs.ModulePath(name), OnDisk: true}
	}
	for _, st := range statuses {
		m, ok := byName[st.Name]
		if !ok {
			m = &primary.Module{Name: st.Name, Path: s.fs.ModulePath(st.Name)}
			byName[st.Name] = m
		}
		m.Active = st.Active
	}

	modules := make([]*primary.Module, 0, len(byName))
	for _, m := range byName {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	return modules, nil
}

// SetModuleActive enables or disables an existing module. The name may be
// given in any form; it is normalized to the plural module name.
func (s *ModuleServiceImpl) SetModuleActive(ctx context.Context, name string, active bool) error {
	name = scaffold.Plural(scaffold.Studly(name))

	exists := false
	if name != "" {
		var err error
		exists, err = s.fs.ModuleExists(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check module: %w", err)
		}
	}

	if result := coremodule.CanSetActive(coremodule.SetActiveContext{Name: name, Exists: exists}); !result.Allowed {
		return result.Error()
	}

	wasActive, err := s.activation.IsActive(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read module status: %w", err)
	}

	if err := s.activation.SetActiveByName(ctx, name, active); err != nil {
		return fmt.Errorf("failed to set module status: %w", err)
	}
	s.logger.Info("module status changed", zap.String("module", name), zap.Bool("active", active))

	if wasActive != active {
		if err := s.logWriter.LogUpdate(ctx, name, "active", strconv.FormatBool(wasActive), strconv.FormatBool(active)); err != nil {
			s.logger.Warn("failed to record module history", zap.String("module", name), zap.Error(err))
		}
	}
	return nil
}

// ListModuleLogs retrieves the change history, newest first.
func (s *ModuleServiceImpl) ListModuleLogs(ctx context.Context, module string, limit int) ([]*primary.ModuleLog, error) {
	if module != "" {
		module = scaffold.Plural(scaffold.Studly(module))
	}

	records, err := s.history.List(ctx, module, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list module history: %w", err)
	}

	logs := make([]*primary.ModuleLog, len(records))
	for i, r := range records {
		logs[i] = &primary.ModuleLog{
			ID:        r.ID,
			Module:    r.Module,
			Action:    r.Action,
			FieldName: r.FieldName,
			OldValue:  r.OldValue,
			NewValue:  r.NewValue,
			CreatedAt: r.CreatedAt,
		}
	}
	return logs, nil
}

// Ensure ModuleServiceImpl implements the interface
var _ primary.ModuleService = (*ModuleServiceImpl)(nil)
