package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/market"
	"github.com/s0up4200/nomics/nomics"
)

var (
	candleInterval string
	candleCurrency string
	candleExchange string
	candleMarket   string
	candleBase     string
	candleQuote    string
	candleStart    string
	candleEnd      string
)

// candlesCmd represents the candles command
var candlesCmd = &cobra.Command{
	Use:   "candles",
	Short: "Show OHLCV candles (paid plans)",
	Long: `Show OHLCV candles for one of:
  --currency BTC                        aggregated across all markets
  --exchange binance --market BTCUSDT   a single exchange market
  --base BTC --quote EUR                an aggregated pair

Candle endpoints require a paid plan key and --paid (or nomics.paid_plans).`,
	PreRunE: initializeApp,
	RunE:    runCandles,
}

func init() {
	rootCmd.AddCommand(candlesCmd)

	candlesCmd.Flags().StringVar(&candleInterval, "interval", nomics.CandleInterval1d, "candle interval (1m,5m,30m,1h,4h,1d)")
	candlesCmd.Flags().StringVar(&candleCurrency, "currency", "", "currency for aggregated candles")
	candlesCmd.Flags().StringVar(&candleExchange, "exchange", "", "exchange for exchange candles")
	candlesCmd.Flags().StringVar(&candleMarket, "market", "", "exchange market for exchange candles")
	candlesCmd.Flags().StringVar(&candleBase, "base", "", "base currency for pair candles")
	candlesCmd.Flags().StringVar(&candleQuote, "quote", "", "quote currency for pair candles")
	candlesCmd.Flags().StringVar(&candleStart, "start", "", "start (RFC3339 or YYYY-MM-DD)")
	candlesCmd.Flags().StringVar(&candleEnd, "end", "", "end (RFC3339 or YYYY-MM-DD)")

	candlesCmd.MarkFlagsRequiredTogether("exchange", "market")
	candlesCmd.MarkFlagsRequiredTogether("base", "quote")
	candlesCmd.MarkFlagsMutuallyExclusive("currency", "exchange", "base")
	candlesCmd.MarkFlagsOneRequired("currency", "exchange", "base")
}

func runCandles(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	start, end, err := parseRange(candleStart, candleEnd)
	if err != nil {
		return err
	}

	var raw json.RawMessage
	switch {
	case candleCurrency != "":
		raw, err = client.GetAggregatedOHLCVCandles(ctx, nomics.AggregatedOHLCVCandlesParams{
			Interval: candleInterval,
			Currency: candleCurrency,
			Start:    start,
			End:      end,
		})
	case candleExchange != "":
		raw, err = client.GetExchangeOHLCVCandles(ctx, nomics.ExchangeOHLCVCandlesParams{
			Interval: candleInterval,
			Exchange: candleExchange,
			Market:   candleMarket,
			Start:    start,
			End:      end,
		})
	default:
		raw, err = client.GetAggregatedPairOHLCVCandles(ctx, nomics.AggregatedPairOHLCVCandlesParams{
			Interval: candleInterval,
			Base:     candleBase,
			Quote:    candleQuote,
			Start:    start,
			End:      end,
		})
	}
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), raw)
	}

	candles, err := nomics.Decode[[]nomics.Candle](raw, nil)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), market.NewConsoleFormatter().FormatCandles(candles))
	return nil
}
