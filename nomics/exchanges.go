package nomics

import (
	"context"
	"encoding/json"
)

// GetExchangeHighlights retrieves highlight data for a single exchange.
// Paid plans only.
func (c *Client) GetExchangeHighlights(ctx context.Context, params ExchangeHighlightsParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangeHighlights, params)
}

// GetExchangesTicker retrieves volume and rank data for exchanges.
// Paid plans only.
func (c *Client) GetExchangesTicker(ctx context.Context, params ExchangesTickerParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangesTicker, params)
}

// GetExchangesVolumeHistory retrieves the volume history of one exchange.
// Paid plans only.
func (c *Client) GetExchangesVolumeHistory(ctx context.Context, params ExchangesVolumeHistoryParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangesVolumeHistory, params)
}

// GetExchangeMetadata retrieves exchange metadata.
// Paid plans only.
func (c *Client) GetExchangeMetadata(ctx context.Context, params ExchangeMetadataParams) (json.RawMessage, error) {
	return c.call(ctx, EndpointExchangeMetadata, params)
}
