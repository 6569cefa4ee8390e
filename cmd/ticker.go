package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/filter"
	"github.com/s0up4200/nomics/market"
	"github.com/s0up4200/nomics/nomics"
)

var (
	tickerIDs       []string
	tickerIntervals []string
	tickerConvert   string
	tickerStatus    string
	tickerPerPage   int
	tickerPage      int
	filterExpr      string
	preset          string
)

// tickerCmd represents the ticker command
var tickerCmd = &cobra.Command{
	Use:   "ticker",
	Short: "Show prices, market caps and interval changes for currencies",
	Long: `Show the currencies ticker ranked by market cap.

Rows can be narrowed locally with an expression, for example:
  nomics ticker --interval 1d --filter 'change("1d") > 0.05 and Rank <= 50'
  nomics ticker --filter 'containsFold(Name, "coin")'`,
	PreRunE: initializeApp,
	RunE:    runTicker,
}

func init() {
	rootCmd.AddCommand(tickerCmd)

	tickerCmd.Flags().StringSliceVar(&tickerIDs, "ids", nil, "currency ids, e.g. BTC,ETH")
	tickerCmd.Flags().StringSliceVar(&tickerIntervals, "interval", []string{nomics.Interval1d}, "intervals to include (1h,1d,7d,30d,365d,ytd)")
	tickerCmd.Flags().StringVar(&tickerConvert, "convert", "", "quote currency (default from output.convert)")
	tickerCmd.Flags().StringVar(&tickerStatus, "status", "", "active, inactive or dead")
	tickerCmd.Flags().IntVar(&tickerPerPage, "per-page", 0, "rows per page (default from output.per_page)")
	tickerCmd.Flags().IntVar(&tickerPage, "page", 1, "page number")
	tickerCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	tickerCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runTicker(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rowFilter, err := resolveFilter(filters, filterExpr, preset)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	convert := tickerConvert
	if convert == "" {
		convert = cfg.Output.Convert
	}
	perPage := tickerPerPage
	if perPage == 0 {
		perPage = cfg.Output.PerPage
	}

	raw, err := client.GetCurrenciesTicker(ctx, nomics.CurrenciesTickerParams{
		IDs:      tickerIDs,
		Interval: tickerIntervals,
		Convert:  convert,
		Status:   tickerStatus,
		PerPage:  perPage,
		Page:     tickerPage,
	})
	if err != nil {
		return err
	}

	if jsonOutput && rowFilter == nil {
		return printJSON(cmd.OutOrStdout(), raw)
	}

	tickers, err := nomics.Decode[[]nomics.Ticker](raw, nil)
	if err != nil {
		return err
	}

	tickers, err = filter.Apply(ctx, rowFilter, tickers)
	if err != nil {
		return err
	}

	if jsonOutput {
		return encodeJSON(cmd.OutOrStdout(), tickers)
	}

	fmt.Fprint(cmd.OutOrStdout(), market.NewConsoleFormatter().FormatTickers(tickers, market.FormatOptions{
		Convert:   convert,
		Intervals: tickerIntervals,
	}))
	return nil
}
