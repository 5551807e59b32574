package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	loxo "github.com/peteraglen/loxo-go-client"
	"github.com/peteraglen/loxo-go-client/internal/output"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the resolved client configuration",
		Long:  "Show the settings the client would use. The API key is masked.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}

			cfg := client.Config()

			output.PrintKeyValues(a.streams.Out, []output.KeyValue{
				{Key: "Domain", Value: cfg.Domain()},
				{Key: "Agency", Value: cfg.AgencySlug()},
				{Key: "Base URL", Value: cfg.BaseURL()},
				{Key: "API Key", Value: loxo.MaskSecret(strings.TrimSpace(a.v.GetString(loxo.KeyAPIKey)))},
				{Key: "Timeout", Value: cfg.Timeout().String()},
				{Key: "Retry Attempts", Value: strconv.Itoa(cfg.RetryAttempts())},
				{Key: "Retry Delay", Value: cfg.RetryDelay().String()},
			}, a.streams.IsTerminal())

			return nil
		},
	}
}
