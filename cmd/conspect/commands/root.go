// Package commands implements the CLI commands for the conspect recipe tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conspect/conspect/internal/build"
	"github.com/conspect/conspect/internal/core/domain"
	"github.com/conspect/conspect/internal/core/ports"
	"github.com/conspect/conspect/internal/ui/render"
)

// CLI represents the command line interface for conspect.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(path string) (string, error)
	Inspect(ctx context.Context, path string) (*domain.Recipe, error)
	Lint(ctx context.Context, path string) error
	Diff(ctx context.Context, fromPath, toPath string) (*domain.Diff, error)
	ID(ctx context.Context, path string, overrides map[string]string) (string, domain.AxisValues, error)
	Watch(ctx context.Context, path string, onCheck func(ports.WatchEvent, error)) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "conspect",
		Short:         "Inspect and validate recipe manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the recipe file (default: discover upward from the working directory)")
	rootCmd.PersistentFlags().StringP("format", "o", "text", "Output format: text or json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newLintCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newIDCmd())
	rootCmd.AddCommand(c.newLayoutCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// renderer builds the output renderer from the --format flag.
func renderer(cmd *cobra.Command) *render.Renderer {
	format, _ := cmd.Flags().GetString("format")
	return render.New(render.Format(format))
}

// recipePath resolves the --file flag into a concrete path.
func (c *CLI) recipePath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	return c.app.Resolve(path)
}
