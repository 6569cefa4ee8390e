package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/market"
)

var (
	snapshotTop       int
	snapshotConvert   string
	snapshotIntervals []string
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show a market overview collected from several endpoints at once",
	Long: `Fetch the global ticker, exchange rates and the top currencies concurrently
and print them together. Parts that fail are listed at the end; the command only
fails when nothing could be collected.`,
	PreRunE: initializeApp,
	RunE:    runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().IntVar(&snapshotTop, "top", market.DefaultTop, "number of currencies to include")
	snapshotCmd.Flags().StringVar(&snapshotConvert, "convert", "", "quote currency (default from output.convert)")
	snapshotCmd.Flags().StringSliceVar(&snapshotIntervals, "interval", []string{"1d", "7d"}, "intervals to include")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	convert := snapshotConvert
	if convert == "" {
		convert = cfg.Output.Convert
	}

	snap, err := market.NewCollector(client, logger).Snapshot(cmd.Context(), market.SnapshotOptions{
		Convert:   convert,
		Top:       snapshotTop,
		Intervals: snapshotIntervals,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return encodeJSON(cmd.OutOrStdout(), snap)
	}

	fmt.Fprint(cmd.OutOrStdout(), market.NewConsoleFormatter().FormatSnapshot(snap, snapshotIntervals))
	return nil
}
