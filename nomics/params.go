package nomics

import "time"

// Parameter structs map one-to-one onto endpoint query parameters. Zero values are
// omitted from the request; slices are sent as comma-separated lists. Fields marked
// required are not validated locally, the API rejects requests missing them.

// Ticker and highlight intervals
const (
	Interval1h   = "1h"
	Interval1d   = "1d"
	Interval7d   = "7d"
	Interval30d  = "30d"
	Interval365d = "365d"
	IntervalYTD  = "ytd"
)

// Candle intervals
const (
	CandleInterval1m  = "1m"
	CandleInterval5m  = "5m"
	CandleInterval30m = "30m"
	CandleInterval1h  = "1h"
	CandleInterval4h  = "4h"
	CandleInterval1d  = "1d"
)

// CurrenciesTickerParams configures GetCurrenciesTicker.
type CurrenciesTickerParams struct {
	IDs      []string `url:"ids,comma,omitempty"`
	Interval []string `url:"interval,comma,omitempty"`
	// Convert quotes prices in a fiat or crypto currency, USD when empty.
	Convert string `url:"convert,omitempty"`
	// Status is one of "active", "inactive" or "dead".
	Status string `url:"status,omitempty"`
	// Filter is "any" or "new".
	Filter              string `url:"filter,omitempty"`
	Sort                string `url:"sort,omitempty"`
	IncludeTransparency bool   `url:"include-transparency,omitempty"`
	PerPage             int    `url:"per-page,omitempty"`
	Page                int    `url:"page,omitempty"`
}

// CurrenciesParams configures GetCurrencies.
type CurrenciesParams struct {
	IDs        []string `url:"ids,comma,omitempty"`
	Attributes []string `url:"attributes,comma,omitempty"`
	// Format is "json" or "csv".
	Format string `url:"format,omitempty"`
}

// CurrenciesSparklineParams configures GetCurrenciesSparkline.
type CurrenciesSparklineParams struct {
	IDs []string `url:"ids,comma,omitempty"`
	// Start is required.
	Start   time.Time `url:"start,omitempty"`
	End     time.Time `url:"end,omitempty"`
	Convert string    `url:"convert,omitempty"`
}

// MarketsParams configures GetMarket.
type MarketsParams struct {
	Exchange string   `url:"exchange,omitempty"`
	Base     []string `url:"base,comma,omitempty"`
	Quote    []string `url:"quote,comma,omitempty"`
	Format   string   `url:"format,omitempty"`
}

// MarketCapHistoryParams configures GetMarketCapHistory.
type MarketCapHistoryParams struct {
	// Start is required.
	Start               time.Time `url:"start,omitempty"`
	End                 time.Time `url:"end,omitempty"`
	Convert             string    `url:"convert,omitempty"`
	Format              string    `url:"format,omitempty"`
	IncludeTransparency bool      `url:"include-transparency,omitempty"`
}

// GlobalVolumeHistoryParams configures GetGlobalVolumeHistory.
type GlobalVolumeHistoryParams struct {
	Start               time.Time `url:"start,omitempty"`
	End                 time.Time `url:"end,omitempty"`
	Convert             string    `url:"convert,omitempty"`
	Format              string    `url:"format,omitempty"`
	IncludeTransparency bool      `url:"include-transparency,omitempty"`
}

// ExchangeRatesHistoryParams configures GetExchangeRatesHistory.
type ExchangeRatesHistoryParams struct {
	Currency string    `url:"currency,omitempty"`
	Start    time.Time `url:"start,omitempty"`
	End      time.Time `url:"end,omitempty"`
}

// GlobalTickerParams configures GetGlobalTicker.
type GlobalTickerParams struct {
	Convert string `url:"convert,omitempty"`
}

// CurrencyHighlightsParams configures GetCurrencyHighlights.
type CurrencyHighlightsParams struct {
	// Currency is required.
	Currency string `url:"currency,omitempty"`
	Convert  string `url:"convert,omitempty"`
	Interval string `url:"interval,omitempty"`
}

// SupplyHistoryParams configures GetSupplyHistory.
type SupplyHistoryParams struct {
	// Currency and Start are required.
	Currency string    `url:"currency,omitempty"`
	Start    time.Time `url:"start,omitempty"`
	End      time.Time `url:"end,omitempty"`
}

// ExchangeHighlightsParams configures GetExchangeHighlights.
type ExchangeHighlightsParams struct {
	// Exchange is required.
	Exchange string `url:"exchange,omitempty"`
	Convert  string `url:"convert,omitempty"`
	Interval string `url:"interval,omitempty"`
}

// ExchangesTickerParams configures GetExchangesTicker.
type ExchangesTickerParams struct {
	IDs           []string `url:"ids,comma,omitempty"`
	Interval      []string `url:"interval,comma,omitempty"`
	Convert       string   `url:"convert,omitempty"`
	Type          []string `url:"type,comma,omitempty"`
	Centralized   bool     `url:"centralized,omitempty"`
	Decentralized bool     `url:"decentralized,omitempty"`
	PerPage       int      `url:"per-page,omitempty"`
	Page          int      `url:"page,omitempty"`
}

// ExchangesVolumeHistoryParams configures GetExchangesVolumeHistory.
type ExchangesVolumeHistoryParams struct {
	// Exchange and Start are required.
	Exchange            string    `url:"exchange,omitempty"`
	Start               time.Time `url:"start,omitempty"`
	End                 time.Time `url:"end,omitempty"`
	Convert             string    `url:"convert,omitempty"`
	IncludeTransparency bool      `url:"include-transparency,omitempty"`
}

// ExchangeMetadataParams configures GetExchangeMetadata.
type ExchangeMetadataParams struct {
	IDs           []string `url:"ids,comma,omitempty"`
	Attributes    []string `url:"attributes,comma,omitempty"`
	Centralized   bool     `url:"centralized,omitempty"`
	Decentralized bool     `url:"decentralized,omitempty"`
	Format        string   `url:"format,omitempty"`
}

// MarketHighlightsParams configures GetMarketHighlights.
type MarketHighlightsParams struct {
	// Base and Quote are required.
	Base     string `url:"base,omitempty"`
	Quote    string `url:"quote,omitempty"`
	Convert  string `url:"convert,omitempty"`
	Interval string `url:"interval,omitempty"`
}

// ExchangeMarketsTickerParams configures GetExchangeMarketsTicker.
type ExchangeMarketsTickerParams struct {
	Interval []string `url:"interval,comma,omitempty"`
	Currency []string `url:"currency,comma,omitempty"`
	Base     []string `url:"base,comma,omitempty"`
	Quote    []string `url:"quote,comma,omitempty"`
	Exchange []string `url:"exchange,comma,omitempty"`
	Market   []string `url:"market,comma,omitempty"`
	Convert  string   `url:"convert,omitempty"`
	Status   string   `url:"status,omitempty"`
	Search   string   `url:"search,omitempty"`
	PerPage  int      `url:"per-page,omitempty"`
	Page     int      `url:"page,omitempty"`
}

// AggregatedOHLCVCandlesParams configures GetAggregatedOHLCVCandles.
type AggregatedOHLCVCandlesParams struct {
	// Interval and Currency are required.
	Interval string    `url:"interval,omitempty"`
	Currency string    `url:"currency,omitempty"`
	Start    time.Time `url:"start,omitempty"`
	End      time.Time `url:"end,omitempty"`
}

// ExchangeOHLCVCandlesParams configures GetExchangeOHLCVCandles.
type ExchangeOHLCVCandlesParams struct {
	// Interval, Exchange and Market are required.
	Interval string    `url:"interval,omitempty"`
	Exchange string    `url:"exchange,omitempty"`
	Market   string    `url:"market,omitempty"`
	Start    time.Time `url:"start,omitempty"`
	End      time.Time `url:"end,omitempty"`
}

// AggregatedPairOHLCVCandlesParams configures GetAggregatedPairOHLCVCandles.
type AggregatedPairOHLCVCandlesParams struct {
	// Interval, Base and Quote are required.
	Interval string    `url:"interval,omitempty"`
	Base     string    `url:"base,omitempty"`
	Quote    string    `url:"quote,omitempty"`
	Start    time.Time `url:"start,omitempty"`
	End      time.Time `url:"end,omitempty"`
}

// TradesParams configures GetTrades.
type TradesParams struct {
	// Exchange and Market are required.
	Exchange string `url:"exchange,omitempty"`
	Market   string `url:"market,omitempty"`
	// Limit caps the page size, the API allows at most 100.
	Limit int `url:"limit,omitempty"`
	// Order is "asc" or "desc".
	Order string `url:"order,omitempty"`
	// From is the cursor returned by a previous page.
	From string `url:"from,omitempty"`
}

// OrderBookSnapshotParams configures GetOrderBookSnapshot.
type OrderBookSnapshotParams struct {
	// Exchange and Market are required.
	Exchange string    `url:"exchange,omitempty"`
	Market   string    `url:"market,omitempty"`
	At       time.Time `url:"at,omitempty"`
}

// OrderBookBatchesParams configures GetOrderBookBatches.
type OrderBookBatchesParams struct {
	// Exchange and Market are required.
	Exchange string    `url:"exchange,omitempty"`
	Market   string    `url:"market,omitempty"`
	Date     time.Time `url:"date,omitempty" layout:"2006-01-02"`
	// Hour is 0-23 and narrows Date to a single hour.
	Hour *int `url:"hour,omitempty"`
}

// CurrencyPredictionsTickerParams configures GetCurrencyPredictionsTicker.
type CurrencyPredictionsTickerParams struct {
	IDs []string `url:"ids,comma,omitempty"`
}

// CurrencyPredictionsHistoryParams configures GetCurrencyPredictionsHistory.
type CurrencyPredictionsHistoryParams struct {
	ID string `url:"id,omitempty"`
}
