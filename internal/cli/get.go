package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	loxo "github.com/peteraglen/loxo-go-client"
	"github.com/peteraglen/loxo-go-client/internal/output"
)

func newGetCmd(a *app) *cobra.Command {
	var (
		rawParams []string
		jqExpr    string
	)

	cmd := &cobra.Command{
		Use:   "get <endpoint>",
		Short: "Send a GET request to an endpoint and print the JSON response",
		Example: `  loxo get jobs -P per_page=5 -P published=true
  loxo get jobs -P 'job_status_ids[]=1' -P 'job_status_ids[]=2' --jq '.jobs[].title'
  loxo get people/42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}

			result, err := client.Get(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			data := map[string]any(result)

			if jqExpr != "" {
				return output.ApplyJQ(a.streams.Out, data, jqExpr)
			}

			return output.PrintJSON(a.streams.Out, data)
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "P", nil, "query parameter as key=value; repeat key[]=value for lists")
	cmd.Flags().StringVar(&jqExpr, "jq", "", "filter the response with a jq expression")

	return cmd
}

// parseParams turns key=value pairs into query params. A key ending in []
// collects its values into a list; "true" and "false" become booleans.
func parseParams(pairs []string) (loxo.Params, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := loxo.Params{}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", pair)
		}

		var v any = value
		switch value {
		case "true":
			v = true
		case "false":
			v = false
		}

		if list, isList := strings.CutSuffix(key, "[]"); isList {
			existing, _ := params[list].([]any)
			params.SetList(list, append(existing, v)...)
			continue
		}

		params.Set(key, v)
	}

	return params, nil
}
