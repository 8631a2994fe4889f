// Package commands implements the CLI commands for nbuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nbuild/internal/app"
	"go.trai.ch/nbuild/internal/build"
	"go.trai.ch/nbuild/internal/core/domain"
)

// CLI represents the command line interface for nbuild.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command

	configPath    string
	toolVersion   string
	configuration string
	jsonOutput    bool
	verbose       bool
}

// Application represents the application logic interface.
type Application interface {
	Args(ctx context.Context, opts app.Options) ([]string, error)
	Build(ctx context.Context, opts app.BuildOptions) (*domain.Invocation, error)
	PrepareCache(ctx context.Context, opts app.Options) error
	Status(ctx context.Context, opts app.Options) (*domain.CacheStatus, error)
	Clean(ctx context.Context, opts app.Options) error
}

// LogSettings is implemented by loggers whose format can be switched at runtime.
type LogSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nbuild",
		Short:         "Prepare and run native-build tool invocations",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to nbuild.yaml, nbuild.toml or their directory")
	flags.StringVar(&c.toolVersion, "tool-version", "", "Override the tool version recorded in the cache")
	flags.StringVar(&c.configuration, "configuration", "", "Override the compiler configuration (Debug, Release, Master)")
	flags.BoolVar(&c.jsonOutput, "json", false, "Emit logs and status as JSON")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.logs != nil {
			c.logs.SetJSON(c.jsonOutput)
			c.logs.SetVerbose(c.verbose)
		}
	}

	rootCmd.AddCommand(c.newArgsCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetLogSettings lets the --json and --verbose flags reconfigure the logger.
func (c *CLI) SetLogSettings(s LogSettings) {
	c.logs = s
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

func (c *CLI) options() app.Options {
	return app.Options{
		ConfigPath:    c.configPath,
		ToolVersion:   c.toolVersion,
		Configuration: c.configuration,
	}
}
