package cli

import (
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of loxo",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.streams.Printf("loxo version %s (commit: %s, built: %s)\n", a.info.Version, a.info.Commit, a.info.Date)
			return nil
		},
	}
}
