package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/market"
	"github.com/s0up4200/nomics/nomics"
)

var (
	sparklineIDs     []string
	sparklineStart   string
	sparklineEnd     string
	sparklineConvert string
)

// sparklineCmd represents the sparkline command
var sparklineCmd = &cobra.Command{
	Use:   "sparkline",
	Short: "Show price sparklines for currencies",
	Long: `Show the price history of currencies between --start and --end. Without
--start the last 7 days are shown.`,
	PreRunE: initializeApp,
	RunE:    runSparkline,
}

func init() {
	rootCmd.AddCommand(sparklineCmd)

	sparklineCmd.Flags().StringSliceVar(&sparklineIDs, "ids", nil, "currency ids, e.g. BTC,ETH")
	sparklineCmd.Flags().StringVar(&sparklineStart, "start", "", "start (RFC3339 or YYYY-MM-DD)")
	sparklineCmd.Flags().StringVar(&sparklineEnd, "end", "", "end (RFC3339 or YYYY-MM-DD)")
	sparklineCmd.Flags().StringVar(&sparklineConvert, "convert", "", "quote currency (default from output.convert)")
}

func runSparkline(cmd *cobra.Command, args []string) error {
	start, end, err := parseRange(sparklineStart, sparklineEnd)
	if err != nil {
		return err
	}
	if start.IsZero() {
		start = time.Now().UTC().AddDate(0, 0, -7).Truncate(time.Hour)
	}

	convert := sparklineConvert
	if convert == "" {
		convert = cfg.Output.Convert
	}

	raw, err := client.GetCurrenciesSparkline(cmd.Context(), nomics.CurrenciesSparklineParams{
		IDs:     sparklineIDs,
		Start:   start,
		End:     end,
		Convert: convert,
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), raw)
	}

	sparklines, err := nomics.Decode[[]nomics.Sparkline](raw, nil)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), market.NewConsoleFormatter().FormatSparklines(sparklines))
	return nil
}
