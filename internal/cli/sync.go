package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peteraglen/loxo-go-client/internal/output"
)

func newSyncCmd(a *app) *cobra.Command {
	var syncType string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch one lookup list and report what was received",
		Long: `Fetch one lookup list (activity types, address types, ...) and print the
number of records together with the connection details.

Types: ` + strings.Join(lookupNames(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fetch, ok := lookups[syncType]
			if !ok {
				return fmt.Errorf("unknown type %q; must be one of: %s", syncType, strings.Join(lookupNames(), ", "))
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}

			a.streams.Printf("Syncing %s from Loxo API...\n", syncType)

			result, err := fetch(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to sync %s: %w", syncType, err)
			}

			count := output.RecordCount(result, syncType)
			if count < 0 {
				count = len(result)
			}

			a.logger.Info().Str("type", syncType).Int("records", count).Msg("Sync complete")

			a.streams.Printf("%s\n", a.streams.Success(fmt.Sprintf("Successfully synced %d records", count)))

			output.PrintKeyValues(a.streams.Out, []output.KeyValue{
				{Key: "Records", Value: strconv.Itoa(count)},
				{Key: "Domain", Value: client.Domain()},
				{Key: "Agency", Value: client.AgencySlug()},
				{Key: "Base URL", Value: client.BaseURL()},
			}, a.streams.IsTerminal())

			return nil
		},
	}

	cmd.Flags().StringVarP(&syncType, "type", "t", "activity_types", "lookup list to fetch")

	return cmd
}
