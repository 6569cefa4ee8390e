package nomics

import (
	"context"
	"encoding/json"
)

// GetCurrenciesTicker retrieves price, volume, market cap and rank for currencies,
// with optional interval deltas.
func (c *Client) GetCurrenciesTicker(ctx context.Context, params CurrenciesTickerParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointCurrenciesTicker, params)
}

// GetCurrencies retrieves currency metadata.
func (c *Client) GetCurrencies(ctx context.Context, params CurrenciesParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointCurrencies, params)
}

// GetCurrenciesSparkline retrieves prices for the given currencies between Start and End.
func (c *Client) GetCurrenciesSparkline(ctx context.Context, params CurrenciesSparklineParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointCurrenciesSparkline, params)
}

// GetCurrencyHighlights retrieves aggregated highlight data for a single currency.
// Paid plans only.
func (c *Client) GetCurrencyHighlights(ctx context.Context, params CurrencyHighlightsParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointCurrencyHighlights, params)
}

// GetSupplyHistory retrieves the circulating and max supply history of a currency.
// Paid plans only.
func (c *Client) GetSupplyHistory(ctx context.Context, params SupplyHistoryParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointSupplyHistory, params)
}

// GetCurrencyPredictionsTicker retrieves the current price predictions for currencies.
// Paid plans only.
func (c *Client) GetCurrencyPredictionsTicker(ctx context.Context, params CurrencyPredictionsTickerParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointCurrencyPredictionsTicker, params)
}

// GetCurrenciesPredictionsTicket is an alias of GetCurrencyPredictionsTicker.
//
// Deprecated: use GetCurrencyPredictionsTicker.
func (c *Client) GetCurrenciesPredictionsTicket(ctx context.Context, params CurrencyPredictionsTickerParams) (json.RawMessage, error) {
	return c.GetCurrencyPredictionsTicker(ctx, params)
}

// GetCurrencyPredictionsHistory retrieves historical predictions for one currency.
// Paid plans only.
func (c *Client) GetCurrencyPredictionsHistory(ctx context.Context, params CurrencyPredictionsHistoryParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointCurrencyPredictionsHistory, params)
}
