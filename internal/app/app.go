// Package app implements the application layer for forge.
package app

import (
	"context"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/forge/internal/adapters/catalog" //nolint:depguard // Catalog lifetime is per-declaration
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/composer"
	"go.trai.ch/forge/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	planner      *planner.Planner
	composer     *composer.Composer
	executor     ports.BuildExecutor
	patcher      ports.Patcher
	receipts     ports.ReceiptStore
	logger       ports.Logger

	// openCatalog is swapped out in tests.
	openCatalog func(path string) ports.DependencyCatalog
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	plans *planner.Planner,
	envs *composer.Composer,
	executor ports.BuildExecutor,
	patcher ports.Patcher,
	receipts ports.ReceiptStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		planner:      plans,
		composer:     envs,
		executor:     executor,
		patcher:      patcher,
		receipts:     receipts,
		logger:       logger,
		openCatalog: func(path string) ports.DependencyCatalog {
			return catalog.NewSnapshot(path)
		},
	}
}

// PlatformResult holds one platform's evaluation outcome. Exactly one of
// Plan and Err is set.
type PlatformResult struct {
	Plan *domain.BuildPlan
	Err  error
}

// Evaluate builds plans for every supported platform the declaration names.
// Platforms are evaluated in parallel and independently: one platform's
// failure never suppresses another's plan.
func (a *App) Evaluate(ctx context.Context, cwd string) (map[domain.Platform]PlatformResult, error) {
	decl, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	platforms := domain.FilterLinux(decl.Platforms)
	if len(platforms) == 0 {
		return nil, zerr.With(domain.ErrUnsupportedPlatform, "declared", len(decl.Platforms))
	}

	cat := a.openCatalog(decl.CatalogPath)

	var mu sync.Mutex
	results := make(map[domain.Platform]PlatformResult, len(platforms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, platform := range platforms {
		g.Go(func() error {
			plan, err := a.planner.Build(gctx, cat, planRequest(decl, platform))

			mu.Lock()
			results[platform] = PlatformResult{Plan: plan, Err: err}
			mu.Unlock()

			// Failures are reported per platform, never propagated through
			// the group.
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Package evaluates the current platform's plan, runs the build command,
// and patches runtime-only library paths into the produced binary.
func (a *App) Package(ctx context.Context, cwd string) (*domain.BuildPlan, error) {
	decl, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	plan, err := a.planCurrent(ctx, decl)
	if err != nil {
		return nil, err
	}

	a.logger.Info("building " + plan.Name + " for " + plan.Platform.String())

	if err := a.executor.Execute(ctx, plan, buildEnv(plan)); err != nil {
		return nil, zerr.Wrap(err, "build execution failed")
	}

	if err := a.patcher.Patch(ctx, plan.OutputPath, plan.PatchPaths); err != nil {
		return nil, zerr.Wrap(err, "post-build patch failed")
	}

	if err := a.receipts.Record(domain.NewReceipt(plan, time.Now().UTC())); err != nil {
		return nil, zerr.Wrap(err, "failed to record build receipt")
	}

	return plan, nil
}

// Check packages the declaration and then verifies the result: the artifact
// must exist at its addressed path, and re-applying the patch must be a
// no-op. A second patch that fails indicates non-idempotent metadata.
func (a *App) Check(ctx context.Context, cwd string) error {
	plan, err := a.Package(ctx, cwd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(plan.OutputPath); err != nil {
		missing := zerr.Wrap(err, "packaged artifact missing")
		return zerr.With(missing, "path", plan.OutputPath)
	}

	if err := a.patcher.Patch(ctx, plan.OutputPath, plan.PatchPaths); err != nil {
		return zerr.Wrap(err, "patch is not idempotent")
	}

	receipt, err := a.receipts.Lookup(plan.OutputPath)
	if err != nil {
		return zerr.Wrap(err, "failed to read build receipt")
	}
	if receipt == nil || !receipt.Matches(plan) {
		return zerr.With(zerr.New("receipt does not match plan inputs"), "path", plan.OutputPath)
	}

	a.logger.Info("check passed: " + plan.OutputPath)
	return nil
}

// Shell composes the named dev environment for the current platform.
func (a *App) Shell(ctx context.Context, cwd, name string) (*domain.DevEnvironment, error) {
	decl, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	shell := decl.Shell(name)
	if shell == nil {
		return nil, zerr.With(zerr.New("shell not declared"), "name", name)
	}

	platform, err := currentDeclaredPlatform(decl)
	if err != nil {
		return nil, err
	}

	cat := a.openCatalog(decl.CatalogPath)

	var plan *domain.BuildPlan
	if shell.InheritPlan {
		plan, err = a.planner.Build(ctx, cat, planRequest(decl, platform))
		if err != nil {
			return nil, err
		}

		if decl.Packaged {
			// The evaluated artifact shadows the catalog under the
			// package's own name, so shells can depend on it.
			cat = catalog.NewOverlay(cat).With(decl.Name, platform, domain.Artifact{
				Name:    domain.NewInternedString(decl.Name),
				Version: domain.NewInternedString(decl.Version),
				Path:    plan.OutputPath,
			})
		}
	}

	return a.composer.Compose(ctx, cat, composer.Request{
		Name:         shell.Name,
		InputsFrom:   plan,
		ExtraBuild:   shell.ExtraBuild,
		ExtraRuntime: shell.ExtraRuntime,
		Platform:     platform,
	})
}

// planCurrent resolves the current platform against the declaration and
// evaluates its plan.
func (a *App) planCurrent(ctx context.Context, decl *domain.PackageDecl) (*domain.BuildPlan, error) {
	platform, err := currentDeclaredPlatform(decl)
	if err != nil {
		return nil, err
	}

	return a.planner.Build(ctx, a.openCatalog(decl.CatalogPath), planRequest(decl, platform))
}

func currentDeclaredPlatform(decl *domain.PackageDecl) (domain.Platform, error) {
	platform, err := domain.CurrentPlatform()
	if err != nil {
		return "", err
	}

	for _, declared := range domain.FilterLinux(decl.Platforms) {
		if declared == platform {
			return platform, nil
		}
	}

	return "", zerr.With(domain.ErrUnsupportedPlatform, "platform", platform.String())
}

// buildEnv composes the environment handed to the external build command:
// the build-time dependencies' executable dirs on PATH, in declaration
// order. Runtime-only dependencies stay out of the compile environment.
func buildEnv(plan *domain.BuildPlan) []string {
	bins := plan.BuildTimeBinPaths()
	if len(bins) == 0 {
		return nil
	}
	return []string{"PATH=" + strings.Join(bins, string(os.PathListSeparator))}
}

func planRequest(decl *domain.PackageDecl, platform domain.Platform) planner.Request {
	return planner.Request{
		Name:        decl.Name,
		Version:     decl.Version,
		Source:      decl.Source,
		LockPath:    decl.LockPath,
		BuildDeps:   decl.BuildDeps,
		RuntimeDeps: decl.RuntimeDeps,
		Command:     decl.BuildCommand,
		Platform:    platform,
		StoreDir:    decl.StoreDir,
	}
}
