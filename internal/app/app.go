// Package app implements the application layer for conspect.
package app

import (
	"context"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/conspect/conspect/internal/core/domain"
	"github.com/conspect/conspect/internal/core/ports"
)

// App orchestrates manifest operations over the injected adapters.
type App struct {
	loader  ports.RecipeLoader
	probe   ports.Probe
	watcher ports.Watcher
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.RecipeLoader,
	probe ports.Probe,
	watcher ports.Watcher,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:  loader,
		probe:   probe,
		watcher: watcher,
		logger:  logger,
		tracer:  tracer,
	}
}

// Resolve turns the --file flag into a concrete recipe path. An empty flag
// triggers upward discovery from the working directory.
func (a *App) Resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}

	return a.loader.Discover(cwd)
}

// Inspect loads and validates the recipe at path.
func (a *App) Inspect(ctx context.Context, path string) (*domain.Recipe, error) {
	_, span := a.tracer.Start(ctx, "inspect")
	defer span.End()
	span.SetAttribute("path", path)

	rec, err := a.loader.Load(path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return rec, nil
}

// Lint validates the recipe at path. A nil return means the recipe is
// well-formed; any error is a finding.
func (a *App) Lint(ctx context.Context, path string) error {
	_, span := a.tracer.Start(ctx, "lint")
	defer span.End()
	span.SetAttribute("path", path)

	if _, err := a.loader.Load(path); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Diff loads two recipe revisions and computes their structural difference.
// Both loads run concurrently; each file is an independent snapshot.
func (a *App) Diff(ctx context.Context, fromPath, toPath string) (*domain.Diff, error) {
	ctx, span := a.tracer.Start(ctx, "diff")
	defer span.End()
	span.SetAttribute("from", fromPath)
	span.SetAttribute("to", toPath)

	var from, to *domain.Recipe

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = a.loader.Load(fromPath)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = a.loader.Load(toPath)
		return err
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return domain.Compare(from, to), nil
}

// ID computes the package fingerprint for the recipe at path. Host axis
// values come from the probe; overrides win over detection. Override keys
// must name recognized axes.
func (a *App) ID(ctx context.Context, path string, overrides map[string]string) (string, domain.AxisValues, error) {
	ctx, span := a.tracer.Start(ctx, "id")
	defer span.End()
	span.SetAttribute("path", path)

	rec, err := a.loader.Load(path)
	if err != nil {
		span.RecordError(err)
		return "", nil, err
	}

	values, err := a.probe.Detect(ctx)
	if err != nil {
		span.RecordError(err)
		return "", nil, err
	}

	for axis, value := range overrides {
		s := domain.Setting(axis)
		if !domain.ValidSetting(s) {
			err := domain.Tag(domain.ErrUnknownSetting, "axis", axis)
			span.RecordError(err)
			return "", nil, err
		}
		values[s] = value
	}

	id := domain.GeneratePackageID(rec, values)
	span.SetAttribute("package_id", id)

	return id, values, nil
}

// Watch lints the recipe at path on every content change until ctx is
// canceled. onCheck is invoked after each pass with the triggering event
// and the lint outcome.
func (a *App) Watch(ctx context.Context, path string, onCheck func(ports.WatchEvent, error)) error {
	if err := a.watcher.Start(ctx, path); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn("failed to stop watcher: " + err.Error())
		}
	}()

	a.logger.Info("watching " + path)

	for event := range a.watcher.Events() {
		if event.Path != path {
			continue
		}
		if event.Operation == ports.OpRemove {
			a.logger.Warn("recipe file removed")
		}

		onCheck(event, a.Lint(ctx, path))
	}

	return ctx.Err()
}
