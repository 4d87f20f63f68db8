package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themegen/internal/report"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the themes that would be generated",
		Long: `List every valid theme found in the source directory, followed by the
summary of themes that would be skipped. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())

			themes, collector, err := newGenerator(cfg, opts, logger).Discover(cmd.Context())
			if err != nil {
				return err
			}

			table := NewTable("NAME", "TITLE", "LICENSE", "UPDATED", "REPOSITORY")
			table.SetColumnMaxWidth(1, 30)
			for _, t := range themes {
				table.AddRow(t.Name, t.Metadata.Name, t.Metadata.License, t.LastCommitDate, t.Repository)
			}
			if len(themes) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
			}

			summary := report.Summary{Processed: len(themes), Errors: collector.Errors()}
			return summary.Write(cmd.OutOrStdout())
		},
	}
}
