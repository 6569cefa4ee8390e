package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/market"
	"github.com/s0up4200/nomics/nomics"
)

var (
	ratesHistory  bool
	ratesCurrency string
	ratesStart    string
	ratesEnd      string
	globalConvert string
)

// ratesCmd represents the rates command
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show USD exchange rates",
	Long: `Show the current USD exchange rate of every currency, or with --history the
rate history of a single currency.`,
	PreRunE: initializeApp,
	RunE:    runRates,
}

// globalCmd represents the global command
var globalCmd = &cobra.Command{
	Use:     "global",
	Short:   "Show the global market cap and currency counts",
	PreRunE: initializeApp,
	RunE:    runGlobal,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(globalCmd)

	ratesCmd.Flags().BoolVar(&ratesHistory, "history", false, "show the rate history instead of current rates")
	ratesCmd.Flags().StringVar(&ratesCurrency, "currency", "", "currency for --history, e.g. EUR")
	ratesCmd.Flags().StringVar(&ratesStart, "start", "", "history start (RFC3339 or YYYY-MM-DD)")
	ratesCmd.Flags().StringVar(&ratesEnd, "end", "", "history end (RFC3339 or YYYY-MM-DD)")

	globalCmd.Flags().StringVar(&globalConvert, "convert", "", "quote currency (default from output.convert)")
}

func runRates(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if !ratesHistory {
		raw, err := client.GetExchangeRates(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), raw)
		}

		rates, err := nomics.Decode[[]nomics.ExchangeRate](raw, nil)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), market.NewConsoleFormatter().FormatRates(rates))
		return nil
	}

	if ratesCurrency == "" {
		return fmt.Errorf("--currency is required with --history")
	}
	start, end, err := parseRange(ratesStart, ratesEnd)
	if err != nil {
		return err
	}

	raw, err := client.GetExchangeRatesHistory(ctx, nomics.ExchangeRatesHistoryParams{
		Currency: ratesCurrency,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), raw)
	}

	rates, err := nomics.Decode[[]nomics.ExchangeRate](raw, nil)
	if err != nil {
		return err
	}
	for i := range rates {
		if rates[i].Currency == "" {
			rates[i].Currency = ratesCurrency
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), market.NewConsoleFormatter().FormatRates(rates))
	return nil
}

func runGlobal(cmd *cobra.Command, args []string) error {
	convert := globalConvert
	if convert == "" {
		convert = cfg.Output.Convert
	}

	raw, err := client.GetGlobalTicker(cmd.Context(), nomics.GlobalTickerParams{Convert: convert})
	if err != nil {
		return err
	}
	if jsonOutput || len(raw) == 0 {
		return printJSON(cmd.OutOrStdout(), raw)
	}

	global, err := nomics.Decode[nomics.GlobalTicker](raw, nil)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), market.NewConsoleFormatter().FormatGlobal(global, convert))
	return nil
}
