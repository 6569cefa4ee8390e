package nomics

import "slices"

// Endpoint identifies a Nomics API path relative to the base URL.
type Endpoint string

// Free endpoints
const (
	EndpointCurrenciesTicker     Endpoint = "currencies/ticker"
	EndpointCurrencies           Endpoint = "currencies"
	EndpointCurrenciesSparkline  Endpoint = "currencies/sparkline"
	EndpointMarkets              Endpoint = "markets"
	EndpointMarketCapHistory     Endpoint = "market-cap/history"
	EndpointGlobalVolumeHistory  Endpoint = "volume/history"
	EndpointExchangeRates        Endpoint = "exchange-rates"
	EndpointExchangeRatesHistory Endpoint = "exchange-rates/history"
	EndpointGlobalTicker         Endpoint = "global-ticker"
)

// Paid plan endpoints
const (
	EndpointCurrencyHighlights         Endpoint = "currencies/highlights"
	EndpointSupplyHistory              Endpoint = "supplies/history"
	EndpointExchangeHighlights         Endpoint = "exchanges/highlights"
	EndpointExchangesTicker            Endpoint = "exchanges/ticker"
	EndpointExchangesVolumeHistory     Endpoint = "exchanges/volume/history"
	EndpointExchangeMetadata           Endpoint = "exchanges"
	EndpointMarketHighlights           Endpoint = "markets/highlights"
	EndpointExchangeMarketsTicker      Endpoint = "exchange-markets/ticker"
	EndpointAggregatedOHLCVCandles     Endpoint = "candles"
	EndpointExchangeOHLCVCandles       Endpoint = "exchange_candles"
	EndpointAggregatedPairOHLCVCandles Endpoint = "markets/candles"
	EndpointTrades                     Endpoint = "trades"
	EndpointOrderBookSnapshot          Endpoint = "orders/snapshot"
	EndpointOrderBookBatches           Endpoint = "orders/batches"
	EndpointCurrencyPredictionsTicker  Endpoint = "currencies/predictions/ticker"
	EndpointCurrencyPredictionsHistory Endpoint = "currencies/predictions/history"
)

var freeEndpoints = []Endpoint{
	EndpointCurrenciesTicker,
	EndpointCurrencies,
	EndpointCurrenciesSparkline,
	EndpointMarkets,
	EndpointMarketCapHistory,
	EndpointGlobalVolumeHistory,
	EndpointExchangeRates,
	EndpointExchangeRatesHistory,
	EndpointGlobalTicker,
}

// paidEndpoints is the plan gate: endpoints rejected unless the client has a paid key.
var paidEndpoints = map[Endpoint]struct{}{
	EndpointCurrencyHighlights:         {},
	EndpointSupplyHistory:              {},
	EndpointExchangeHighlights:         {},
	EndpointExchangesTicker:            {},
	EndpointExchangesVolumeHistory:     {},
	EndpointExchangeMetadata:           {},
	EndpointMarketHighlights:           {},
	EndpointExchangeMarketsTicker:      {},
	EndpointAggregatedOHLCVCandles:     {},
	EndpointExchangeOHLCVCandles:       {},
	EndpointAggregatedPairOHLCVCandles: {},
	EndpointTrades:                     {},
	EndpointOrderBookSnapshot:          {},
	EndpointOrderBookBatches:           {},
	EndpointCurrencyPredictionsTicker:  {},
	EndpointCurrencyPredictionsHistory: {},
}

// Path returns the endpoint path relative to the base URL.
func (e Endpoint) Path() string {
	return string(e)
}

// RequiresPaidPlan reports whether the endpoint is restricted to paid plan keys.
func (e Endpoint) RequiresPaidPlan() bool {
	_, ok := paidEndpoints[e]
	return ok
}

func (e Endpoint) String() string {
	return string(e)
}

// Endpoints returns every known endpoint, free ones first, each group sorted by path.
func Endpoints() []Endpoint {
	free := slices.Clone(freeEndpoints)
	slices.Sort(free)

	paid := make([]Endpoint, 0, len(paidEndpoints))
	for e := range paidEndpoints {
		paid = append(paid, e)
	}
	slices.Sort(paid)

	return append(free, paid...)
}
