package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/config"
	"github.com/s0up4200/nomics/filter"
	"github.com/s0up4200/nomics/nomics"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *nomics.Client
	filters *filter.Manager

	// Global flags
	paidPlans    bool
	failSilently bool
	jsonOutput   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nomics",
	Short: "Query the Nomics cryptocurrency market data API",
	Long: `nomics is a CLI for the Nomics market data API. It prints currency tickers,
exchange rates, sparklines, candles and market snapshots, and gives raw access to
every API endpoint.

The API key is read from the config file (nomics.api_key) or the NOMICS_API_KEY
environment variable.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&paidPlans, "paid", false, "allow paid plan endpoints (overrides nomics.paid_plans)")
	rootCmd.PersistentFlags().BoolVar(&failSilently, "fail-silently", false, "log API errors instead of failing (overrides nomics.fail_silently)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the raw JSON response")
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Command line overrides
	if cmd.Flags().Changed("paid") {
		cfg.Nomics.PaidPlans = paidPlans
	}
	if cmd.Flags().Changed("fail-silently") {
		cfg.Nomics.FailSilently = failSilently
	}

	client, err = nomics.NewClient(cfg.Nomics.APIKey, logger,
		nomics.WithBaseURL(cfg.Nomics.BaseURL),
		nomics.WithPaidPlans(cfg.Nomics.PaidPlans),
		nomics.WithFailSilently(cfg.Nomics.FailSilently),
		nomics.WithTimeout(cfg.Nomics.Timeout),
		nomics.WithUserAgent("nomics-cli/"+appVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to create Nomics client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterPresets(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter presets: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when stderr is a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
