package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/nomics/nomics"
)

// Snapshot parts
const (
	PartGlobal  = "global"
	PartRates   = "rates"
	PartTickers = "tickers"
)

var snapshotParts = []string{PartGlobal, PartRates, PartTickers}

const (
	DefaultTop         = 10
	DefaultConcurrency = 3
)

// ErrSnapshotFailed is returned when no part of a snapshot could be collected
var ErrSnapshotFailed = errors.New("snapshot failed")

// SnapshotOptions configures a snapshot
type SnapshotOptions struct {
	// Convert quotes prices in this currency, USD when empty
	Convert string
	// Top is the number of currencies fetched from the ticker, ranked by market cap
	Top int
	// Intervals requested for the ticker rows
	Intervals []string
	// Concurrency caps the number of in-flight requests
	Concurrency int
}

// Snapshot is a point in time view of the market
type Snapshot struct {
	TakenAt time.Time
	Convert string
	Global  *nomics.GlobalTicker
	Rates   []nomics.ExchangeRate
	Tickers []nomics.Ticker
	Errors  []PartError
}

// PartError records a snapshot part that could not be collected
type PartError struct {
	Part string
	Err  error
}

// Error implements the error interface
func (e PartError) Error() string {
	return fmt.Sprintf("%s: %v", e.Part, e.Err)
}

func (e PartError) Unwrap() error {
	return e.Err
}

// MarshalJSON renders the error as text, error values have no JSON form
func (e PartError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Part  string `json:"part"`
		Error string `json:"error"`
	}{e.Part, e.Err.Error()})
}

// Complete reports whether every part was collected
func (s *Snapshot) Complete() bool {
	return len(s.Errors) == 0
}

// Rate returns the USD exchange rate of a currency
func (s *Snapshot) Rate(currency string) (nomics.ExchangeRate, bool) {
	for _, rate := range s.Rates {
		if strings.EqualFold(rate.Currency, currency) {
			return rate, true
		}
	}
	return nomics.ExchangeRate{}, false
}

// Collector gathers snapshots from a Nomics API
type Collector struct {
	api    nomics.API
	logger zerolog.Logger
	now    func() time.Time
}

// NewCollector creates a snapshot collector
func NewCollector(api nomics.API, logger zerolog.Logger) *Collector {
	return &Collector{
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot fetches the global ticker, exchange rates and the top currencies
// concurrently. A failing part is logged and recorded in Snapshot.Errors while
// the remaining parts are still returned; an error is only returned when the
// context ends or every part failed.
func (c *Collector) Snapshot(ctx context.Context, opts SnapshotOptions) (*Snapshot, error) {
	if opts.Top <= 0 {
		opts.Top = DefaultTop
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Convert == "" {
		opts.Convert = "USD"
	}

	snap := &Snapshot{
		TakenAt: c.now(),
		Convert: opts.Convert,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	// Use mutex to protect the error list
	var mu sync.Mutex
	record := func(part string, err error) {
		c.logger.Warn().
			Err(err).
			Str("part", part).
			Msg("Failed to collect snapshot part")

		mu.Lock()
		snap.Errors = append(snap.Errors, PartError{Part: part, Err: err})
		mu.Unlock()
	}

	g.Go(func() error {
		raw, err := c.api.GetGlobalTicker(gctx, nomics.GlobalTickerParams{Convert: opts.Convert})
		if len(raw) == 0 && err == nil {
			return nil
		}
		global, err := nomics.Decode[nomics.GlobalTicker](raw, err)
		if err != nil {
			record(PartGlobal, err)
			return nil
		}
		snap.Global = &global
		return nil
	})

	g.Go(func() error {
		rates, err := nomics.Decode[[]nomics.ExchangeRate](c.api.GetExchangeRates(gctx))
		if err != nil {
			record(PartRates, err)
			return nil
		}
		snap.Rates = rates
		return nil
	})

	g.Go(func() error {
		tickers, err := nomics.Decode[[]nomics.Ticker](c.api.GetCurrenciesTicker(gctx, nomics.CurrenciesTickerParams{
			Interval: opts.Intervals,
			Convert:  opts.Convert,
			Status:   "active",
			Sort:     "rank",
			PerPage:  opts.Top,
			Page:     1,
		}))
		if err != nil {
			record(PartTickers, err)
			return nil
		}
		snap.Tickers = tickers
		return nil
	})

	// Parts never fail the group, only the parent context can end it early
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return snap, err
	}

	if len(snap.Errors) == len(snapshotParts) {
		errs := make([]error, 0, len(snap.Errors))
		for _, partErr := range snap.Errors {
			errs = append(errs, partErr)
		}
		return snap, fmt.Errorf("%w: %w", ErrSnapshotFailed, errors.Join(errs...))
	}

	return snap, nil
}
