package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	loxo "github.com/peteraglen/loxo-go-client"
	"github.com/peteraglen/loxo-go-client/internal/output"
)

const (
	defaultSmokeConcurrency = 4
	maxSmokeConcurrency     = 16
)

type checkResult struct {
	endpoint string
	records  int
	duration time.Duration
	err      error
}

func newSmokeCmd(a *app) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Check that every lookup endpoint answers",
		Long: `Call every lookup endpoint once and report the outcome of each. Exits with
an error if any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}

			results := runChecks(cmd.Context(), client, lookupNames(), concurrency)

			failed := 0
			rows := make([][]string, 0, len(results))

			for _, r := range results {
				status := a.streams.Success("✓")
				detail := strconv.Itoa(r.records) + " records"

				if r.err != nil {
					failed++
					status = a.streams.Failure("✗")
					detail = r.err.Error()
					a.logger.Warn().Err(r.err).Str("endpoint", r.endpoint).Msg("Check failed")
				}

				rows = append(rows, []string{status, r.endpoint, r.duration.Round(time.Millisecond).String(), detail})
			}

			output.PrintTable(a.streams.Out, []string{"", "Endpoint", "Duration", "Detail"}, rows, a.streams.IsTerminal())

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}

			a.streams.Printf("%s\n", a.streams.Muted(fmt.Sprintf("All %d checks passed against %s", len(results), client.BaseURL())))

			return nil
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", defaultSmokeConcurrency, "number of checks run at once")

	return cmd
}

// runChecks calls each endpoint with at most concurrency requests in flight.
// Results keep the order of endpoints. A failed check does not stop the others.
func runChecks(ctx context.Context, client loxo.API, endpoints []string, concurrency int) []checkResult {
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > maxSmokeConcurrency {
		concurrency = maxSmokeConcurrency
	}

	results := make([]checkResult, len(endpoints))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, endpoint := range endpoints {
		i, endpoint := i, endpoint
		g.Go(func() error {
			start := time.Now()
			res := checkResult{endpoint: endpoint}

			fetch, ok := lookups[endpoint]
			if !ok {
				res.err = fmt.Errorf("unknown endpoint %q", endpoint)
				results[i] = res
				return nil
			}

			result, err := fetch(ctx, client)
			res.duration = time.Since(start)
			res.err = err
			if err == nil {
				res.records = output.RecordCount(result, endpoint)
				if res.records < 0 {
					res.records = len(result)
				}
			}

			results[i] = res
			return nil
		})
	}

	_ = g.Wait()

	return results
}
