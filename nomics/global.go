package nomics

import (
	"context"
	"encoding/json"
)

// GetMarketCapHistory retrieves the total market cap history across all currencies.
func (c *Client) GetMarketCapHistory(ctx context.Context, params MarketCapHistoryParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointMarketCapHistory, params)
}

// GetGlobalVolumeHistory retrieves the total volume history across all currencies.
func (c *Client) GetGlobalVolumeHistory(ctx context.Context, params GlobalVolumeHistoryParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointGlobalVolumeHistory, params)
}

// GetExchangeRates retrieves the current USD exchange rate of every currency.
func (c *Client) GetExchangeRates(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangeRates, nil)
}

// GetExchangeRatesHistory retrieves USD exchange rates for a currency over time.
func (c *Client) GetExchangeRatesHistory(ctx context.Context, params ExchangeRatesHistoryParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangeRatesHistory, params)
}

// GetGlobalTicker retrieves aggregate market cap, volume and dominance figures.
func (c *Client) GetGlobalTicker(ctx context.Context, params GlobalTickerParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointGlobalTicker, params)
}
