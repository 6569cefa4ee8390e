package nomics

import (
	"context"
	"encoding/json"
	"net/url"
)

// API defines the interface for Nomics operations
type API interface {
	// Get issues a raw request against any endpoint path
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)

	// Currencies
	GetCurrenciesTicker(ctx context.Context, params CurrenciesTickerParams) (json.RawMessage, error)
	GetCurrencies(ctx context.Context, params CurrenciesParams) (json.RawMessage, error)
	GetCurrenciesSparkline(ctx context.Context, params CurrenciesSparklineParams) (json.RawMessage, error)
	GetCurrencyHighlights(ctx context.Context, params CurrencyHighlightsParams) (json.RawMessage, error)
	GetSupplyHistory(ctx context.Context, params SupplyHistoryParams) (json.RawMessage, error)
	GetCurrencyPredictionsTicker(ctx context.Context, params CurrencyPredictionsTickerParams) (json.RawMessage, error)
	GetCurrencyPredictionsHistory(ctx context.Context, params CurrencyPredictionsHistoryParams) (json.RawMessage, error)

	// Global
	GetMarketCapHistory(ctx context.Context, params MarketCapHistoryParams) (json.RawMessage, error)
	GetGlobalVolumeHistory(ctx context.Context, params GlobalVolumeHistoryParams) (json.RawMessage, error)
	GetExchangeRates(ctx context.Context) (json.RawMessage, error)
	GetExchangeRatesHistory(ctx context.Context, params ExchangeRatesHistoryParams) (json.RawMessage, error)
	GetGlobalTicker(ctx context.Context, params GlobalTickerParams) (json.RawMessage, error)

	// Markets
	GetMarket(ctx context.Context, params MarketsParams) (json.RawMessage, error)
	GetMarketHighlights(ctx context.Context, params MarketHighlightsParams) (json.RawMessage, error)
	GetExchangeMarketsTicker(ctx context.Context, params ExchangeMarketsTickerParams) (json.RawMessage, error)
	GetTrades(ctx context.Context, params TradesParams) (json.RawMessage, error)
	GetOrderBookSnapshot(ctx context.Context, params OrderBookSnapshotParams) (json.RawMessage, error)
	GetOrderBookBatches(ctx context.Context, params OrderBookBatchesParams) (json.RawMessage, error)

	// Exchanges
	GetExchangeHighlights(ctx context.Context, params ExchangeHighlightsParams) (json.RawMessage, error)
	GetExchangesTicker(ctx context.Context, params ExchangesTickerParams) (json.RawMessage, error)
	GetExchangesVolumeHistory(ctx context.Context, params ExchangesVolumeHistoryParams) (json.RawMessage, error)
	GetExchangeMetadata(ctx context.Context, params ExchangeMetadataParams) (json.RawMessage, error)

	// Candles
	GetAggregatedOHLCVCandles(ctx context.Context, params AggregatedOHLCVCandlesParams) (json.RawMessage, error)
	GetExchangeOHLCVCandles(ctx context.Context, params ExchangeOHLCVCandlesParams) (json.RawMessage, error)
	GetAggregatedPairOHLCVCandles(ctx context.Context, params AggregatedPairOHLCVCandlesParams) (json.RawMessage, error)
}

var _ API = (*Client)(nil)
