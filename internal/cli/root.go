// Package cli provides the command-line interface for themegen.
package cli

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/themegen/internal/config"
	"github.com/jmylchreest/themegen/internal/site"
	"github.com/jmylchreest/themegen/internal/templates"
	"github.com/jmylchreest/themegen/internal/vcs"
	"github.com/jmylchreest/themegen/internal/version"
)

// errUsage is returned when the destination argument is missing or repeated.
var errUsage = errors.New("missing destination folder as argument")

// options holds the flags shared by all commands.
type options struct {
	configPath string
	source     string
	templates  string
	exclude    []string
	git        string
	dryRun     bool
	verbose    bool
	quiet      bool
	logJSON    bool

	// runner replaces the git process runner in tests.
	runner vcs.ProcessRunner
}

// NewRootCmd creates the themegen command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "themegen DESTINATION",
		Short: "Generate theme gallery pages for a static site",
		Long: `themegen scans a directory of theme checkouts and writes one content page per
theme, plus its screenshot, into DESTINATION for the site generator to render.

Every subdirectory of the source directory is a theme candidate. A theme needs
a theme.toml, a README.md and a screenshot.png (file names are matched
regardless of case). Themes failing a check are skipped and listed in the
summary printed at the end of the run.

DESTINATION is deleted and recreated on every run. A destination spelled like
a subcommand (list, slug, templates, version) must be written as a path, for
example ./list, or passed after --.

Examples:
  # Generate from the current directory
  themegen ../site/content/themes

  # Generate from a checkout of all themes
  themegen --source ./themes-repo ./content/themes

  # Check what would be generated
  themegen --dry-run ./content/themes`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w (got %d arguments)", errUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVarP(&opts.source, "source", "s", ".", "directory containing the theme checkouts")
	flags.StringVar(&opts.templates, "templates", "", "directory with page.md.tmpl/index.md.tmpl overrides")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "directory names to skip (default env,venv,themes)")
	flags.StringVar(&opts.git, "git", vcs.DefaultBinary, "git executable")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	flags.BoolVar(&opts.logJSON, "log-json", false, "log in JSON format")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "render pages without writing DESTINATION")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newSlugCmd())
	rootCmd.AddCommand(newTemplatesCmd(opts))

	return rootCmd
}

// loadConfig merges the config file and environment with the flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	applyFlags(&cfg, cmd.Flags(), opts)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag given on the command line.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts *options) {
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}

	if changed("source") {
		cfg.Source = opts.source
	}
	if changed("templates") {
		cfg.Templates = opts.templates
	}
	if changed("exclude") {
		cfg.Exclude = opts.exclude
	}
	if changed("git") {
		cfg.Git = opts.git
	}
	if changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}
	if changed("log-json") {
		cfg.Log.JSON = opts.logJSON
	}
	switch {
	case opts.verbose:
		cfg.Log.Level = "debug"
	case opts.quiet:
		cfg.Log.Level = "error"
	}
}

// newGenerator wires the generator for cfg.
func newGenerator(cfg config.Config, opts *options, logger hclog.Logger) *site.Generator {
	git := vcs.NewGit(cfg.Git, opts.runner).WithLogger(logger.Named("git"))
	loader := templates.New(cfg.Templates).WithLogger(logger.Named("templates"))

	return site.New(site.Options{
		Source:  cfg.Source,
		Exclude: cfg.Exclude,
		DryRun:  cfg.DryRun,
	}, git, loader, logger)
}

// runGenerate executes the root command.
func runGenerate(cmd *cobra.Command, opts *options, dest string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, cmd.ErrOrStderr())

	summary, err := newGenerator(cfg, opts, logger).Build(cmd.Context(), dest)
	if err != nil {
		return err
	}
	return summary.Write(cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
