package cmd

import (
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <path> [key=value...]",
	Short: "Call any endpoint and print the raw JSON response",
	Long: `Call an API path relative to the base URL with optional query parameters and
print the response. The API key is added automatically and plan restrictions are
not checked, so this also reaches endpoints the CLI has no command for.

  nomics get currencies/ticker ids=BTC,ETH interval=1d convert=EUR`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	params, err := parseQuery(args[1:])
	if err != nil {
		return err
	}

	raw, err := client.Get(cmd.Context(), args[0], params)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), raw)
}
