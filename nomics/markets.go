package nomics

import (
	"context"
	"encoding/json"
)

// GetMarket retrieves the markets known to Nomics, optionally narrowed by exchange
// and base or quote currencies.
func (c *Client) GetMarket(ctx context.Context, params MarketsParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointMarkets, params)
}

// GetMarketHighlights retrieves highlight data for a base/quote pair.
// Paid plans only.
func (c *Client) GetMarketHighlights(ctx context.Context, params MarketHighlightsParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointMarketHighlights, params)
}

// GetExchangeMarketsTicker retrieves ticker data for individual exchange markets.
// Paid plans only.
func (c *Client) GetExchangeMarketsTicker(ctx context.Context, params ExchangeMarketsTickerParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangeMarketsTicker, params)
}

// GetTrades retrieves a page of trades for an exchange market. Pass the returned
// cursor as From to fetch the next page.
// Paid plans only.
func (c *Client) GetTrades(ctx context.Context, params TradesParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointTrades, params)
}

// GetOrderBookSnapshot retrieves the order book of an exchange market at a point in time.
// Paid plans only.
func (c *Client) GetOrderBookSnapshot(ctx context.Context, params OrderBookSnapshotParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointOrderBookSnapshot, params)
}

// GetOrderBookBatches retrieves order book batches for an exchange market by date and hour.
// Paid plans only.
func (c *Client) GetOrderBookBatches(ctx context.Context, params OrderBookBatchesParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointOrderBookBatches, params)
}
