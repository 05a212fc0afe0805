// Package main is the entry point for the conspect recipe tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/conspect/conspect/cmd/conspect/commands"
	"github.com/conspect/conspect/internal/app"
	"github.com/conspect/conspect/internal/core/domain"
	_ "github.com/conspect/conspect/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer func() {
		_ = components.Tracer.Shutdown(context.Background())
	}()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrLintFailed) {
			// The finding was already rendered by the lint command.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
