package nomics

import (
	"context"
	"encoding/json"
)

// GetAggregatedOHLCVCandles retrieves OHLCV candles for a currency aggregated across
// all markets.
// Paid plans only.
func (c *Client) GetAggregatedOHLCVCandles(ctx context.Context, params AggregatedOHLCVCandlesParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointAggregatedOHLCVCandles, params)
}

// GetExchangeOHLCVCandles retrieves OHLCV candles for one exchange market.
// Paid plans only.
func (c *Client) GetExchangeOHLCVCandles(ctx context.Context, params ExchangeOHLCVCandlesParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangeOHLCVCandles, params)
}

// GetAggregatedPairOHLCVCandles retrieves OHLCV candles for a base/quote pair
// aggregated across exchanges.
// Paid plans only.
func (c *Client) GetAggregatedPairOHLCVCandles(ctx context.Context, params AggregatedPairOHLCVCandlesParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointAggregatedPairOHLCVCandles, params)
}
