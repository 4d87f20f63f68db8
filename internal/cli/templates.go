package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themegen/internal/templates"
)

func newTemplatesCmd(opts *options) *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage page templates",
		Long: `Inspect and customise the templates pages are rendered with.

Templates found in the --templates directory replace the built-in ones:
  page.md.tmpl   one theme page (index.md)
  index.md.tmpl  the section index (_index.md)`,
	}

	templatesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			loader := templates.New(cfg.Templates)
			names, err := loader.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				status := "embedded"
				if loader.CustomDir() != "" {
					if _, fromCustom, err := loader.Load(name); err == nil && fromCustom {
						status = "custom: " + loader.CustomPath(name)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, status)
			}
			return nil
		},
	})

	var force bool
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the built-in templates to the --templates directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cfg.Templates == "" {
				return fmt.Errorf("--templates is required")
			}
			dumped, err := templates.New(cfg.Templates).DumpAll(force)
			for _, path := range dumped {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return err
		},
	}
	dumpCmd.Flags().BoolVar(&force, "force", false, "overwrite existing templates")
	templatesCmd.AddCommand(dumpCmd)

	return templatesCmd
}
