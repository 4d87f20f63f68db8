package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themegen/internal/util"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug TEXT...",
		Short: "Print the URL slug of a string",
		Example: `  themegen slug "[Some] _ Article's Title--"
  some-articles-title`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), util.Slugify(strings.Join(args, " ")))
		},
	}
}
