// Package commands implements the CLI commands for weave.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
	"go.trai.ch/weave/internal/build"
	"go.trai.ch/weave/internal/core/domain"
)

// CLI represents the command line interface for weave.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options)
	Update(ctx context.Context, project string, target *domain.ProjectTarget) error
	UpdateAll(ctx context.Context) error
	Init(ctx context.Context, project string, opts app.InitOptions) error
	Clean(ctx context.Context, project string) error
	CleanAll(ctx context.Context) error
	Delete(ctx context.Context, project string) error
	ListProjects() ([]app.ProjectEntry, error)
	ListPackages(project string) ([]string, error)
	ListTargets(project string) ([]domain.ProjectTarget, error)
	AddPackage(project, name string, tier domain.Tier) error
	DependencyTree(project string, target *domain.ProjectTarget) ([]string, error)
	SolutionFolders(project string, target *domain.ProjectTarget) ([]domain.SolutionFolder, error)
	Status(project string, target *domain.ProjectTarget) ([]app.TargetStatus, error)
	Build(ctx context.Context, project string, target *domain.ProjectTarget, configuration string) error
	BuildPrebuilt(ctx context.Context, project string, target *domain.ProjectTarget, configuration string) error
	Watch(ctx context.Context, project string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "weave",
		Short:         "Link shared packages into editor projects",
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

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON")
	rootCmd.PersistentFlags().String("projects-dir", "", "Directory holding every project (overrides WEAVE_PROJECTS_DIR)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonMode, _ := cmd.Flags().GetBool("json")
		projectsDir, _ := cmd.Flags().GetString("projects-dir")
		c.app.Configure(app.Options{
			Verbose:     verbose,
			JSON:        jsonMode,
			ProjectsDir: projectsDir,
		})
	}

	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newDeleteCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
