package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/nomics"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the API key and list the endpoints it can use",
	Long: `Test the connection to the Nomics API with a cheap free endpoint and, with
--paid, probe a paid endpoint to confirm the key's plan.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Testing connection to %s...\n", cfg.Nomics.BaseURL)

	// Failing silently would hide exactly what this command checks
	probe, err := nomics.NewClient(cfg.Nomics.APIKey, logger,
		nomics.WithBaseURL(cfg.Nomics.BaseURL),
		nomics.WithPaidPlans(cfg.Nomics.PaidPlans),
		nomics.WithTimeout(cfg.Nomics.Timeout),
	)
	if err != nil {
		return err
	}

	if _, err := probe.GetGlobalTicker(ctx, nomics.GlobalTickerParams{}); err != nil {
		var apiErr *nomics.UpstreamRequestError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			return fmt.Errorf("API key rejected: %w", err)
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	if probe.PaidPlans() {
		_, err := probe.GetCurrencyHighlights(ctx, nomics.CurrencyHighlightsParams{Currency: "BTC"})
		var apiErr *nomics.UpstreamRequestError
		switch {
		case err == nil:
			fmt.Fprintln(out, "✓ Paid plan endpoints available")
		case errors.As(err, &apiErr) && apiErr.IsUnauthorized():
			fmt.Fprintln(out, "✗ Paid plan endpoints rejected, the key is on the free plan")
		default:
			return fmt.Errorf("paid plan check failed: %w", err)
		}
	}

	fmt.Fprintf(out, "\nEndpoints (paid plans: %s):\n", boolToStatus(probe.PaidPlans()))
	for _, e := range nomics.Endpoints() {
		marker := "  "
		if e.RequiresPaidPlan() {
			marker = "$ "
			if !probe.PaidPlans() {
				marker = "✗ "
			}
		}
		fmt.Fprintf(out, "  %s%s\n", marker, e)
	}

	return nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
