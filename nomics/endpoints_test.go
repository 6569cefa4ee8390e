package nomics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type endpointCase struct {
	name     string
	endpoint Endpoint
	call     func(ctx context.Context, c *Client) (json.RawMessage, error)
}

// endpointCases exercises every public endpoint method, mostly with zero parameters.
func endpointCases() []endpointCase {
	return []endpointCase{
		{"GetCurrenciesTicker", EndpointCurrenciesTicker, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetCurrenciesTicker(ctx, CurrenciesTickerParams{IDs: []string{""}, Interval: []string{""}, Convert: "USD"})
		}},
		{"GetCurrencies", EndpointCurrencies, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetCurrencies(ctx, CurrenciesParams{IDs: []string{""}, Attributes: []string{""}})
		}},
		{"GetCurrenciesSparkline", EndpointCurrenciesSparkline, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetCurrenciesSparkline(ctx, CurrenciesSparklineParams{})
		}},
		{"GetMarket", EndpointMarkets, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetMarket(ctx, MarketsParams{})
		}},
		{"GetMarketCapHistory", EndpointMarketCapHistory, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetMarketCapHistory(ctx, MarketCapHistoryParams{})
		}},
		{"GetGlobalVolumeHistory", EndpointGlobalVolumeHistory, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetGlobalVolumeHistory(ctx, GlobalVolumeHistoryParams{})
		}},
		{"GetExchangeRates", EndpointExchangeRates, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangeRates(ctx)
		}},
		{"GetExchangeRatesHistory", EndpointExchangeRatesHistory, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangeRatesHistory(ctx, ExchangeRatesHistoryParams{})
		}},
		{"GetGlobalTicker", EndpointGlobalTicker, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetGlobalTicker(ctx, GlobalTickerParams{Convert: "EUR"})
		}},
		{"GetCurrencyHighlights", EndpointCurrencyHighlights, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetCurrencyHighlights(ctx, CurrencyHighlightsParams{})
		}},
		{"GetSupplyHistory", EndpointSupplyHistory, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetSupplyHistory(ctx, SupplyHistoryParams{})
		}},
		{"GetExchangeHighlights", EndpointExchangeHighlights, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangeHighlights(ctx, ExchangeHighlightsParams{})
		}},
		{"GetExchangesTicker", EndpointExchangesTicker, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangesTicker(ctx, ExchangesTickerParams{})
		}},
		{"GetExchangesVolumeHistory", EndpointExchangesVolumeHistory, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangesVolumeHistory(ctx, ExchangesVolumeHistoryParams{})
		}},
		{"GetExchangeMetadata", EndpointExchangeMetadata, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangeMetadata(ctx, ExchangeMetadataParams{})
		}},
		{"GetMarketHighlights", EndpointMarketHighlights, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetMarketHighlights(ctx, MarketHighlightsParams{})
		}},
		{"GetExchangeMarketsTicker", EndpointExchangeMarketsTicker, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangeMarketsTicker(ctx, ExchangeMarketsTickerParams{})
		}},
		{"GetAggregatedOHLCVCandles", EndpointAggregatedOHLCVCandles, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetAggregatedOHLCVCandles(ctx, AggregatedOHLCVCandlesParams{})
		}},
		{"GetExchangeOHLCVCandles", EndpointExchangeOHLCVCandles, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetExchangeOHLCVCandles(ctx, ExchangeOHLCVCandlesParams{})
		}},
		{"GetAggregatedPairOHLCVCandles", EndpointAggregatedPairOHLCVCandles, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetAggregatedPairOHLCVCandles(ctx, AggregatedPairOHLCVCandlesParams{})
		}},
		{"GetTrades", EndpointTrades, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetTrades(ctx, TradesParams{})
		}},
		{"GetOrderBookSnapshot", EndpointOrderBookSnapshot, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetOrderBookSnapshot(ctx, OrderBookSnapshotParams{})
		}},
		{"GetOrderBookBatches", EndpointOrderBookBatches, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetOrderBookBatches(ctx, OrderBookBatchesParams{})
		}},
		{"GetCurrencyPredictionsTicker", EndpointCurrencyPredictionsTicker, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetCurrencyPredictionsTicker(ctx, CurrencyPredictionsTickerParams{})
		}},
		{"GetCurrenciesPredictionsTicket", EndpointCurrencyPredictionsTicker, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetCurrenciesPredictionsTicket(ctx, CurrencyPredictionsTickerParams{IDs: []string{""}})
		}},
		{"GetCurrencyPredictionsHistory", EndpointCurrencyPredictionsHistory, func(ctx context.Context, c *Client) (json.RawMessage, error) {
			return c.GetCurrencyPredictionsHistory(ctx, CurrencyPredictionsHistoryParams{})
		}},
	}
}

func TestEndpointsIssueOneRequest(t *testing.T) {
	for _, tc := range endpointCases() {
		t.Run(tc.name, func(t *testing.T) {
			srv := newRecorder(t, http.StatusOK, `[]`)
			client, logs := newTestClient(t, srv.URL, WithPaidPlans(true))

			body, err := tc.call(context.Background(), client)
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(body))

			reqs := srv.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodGet, reqs[0].Method)
			assert.Equal(t, "/"+tc.endpoint.Path(), reqs[0].Path)
			assert.Equal(t, testAPIKey, reqs[0].Query.Get("key"))
			assert.Empty(t, logRecords(t, logs))
		})
	}
}

func TestEndpointCatalogue(t *testing.T) {
	seen := make(map[Endpoint]bool)
	for _, tc := range endpointCases() {
		seen[tc.endpoint] = true
	}

	all := Endpoints()
	assert.Len(t, all, len(seen))
	for _, e := range all {
		assert.True(t, seen[e], "endpoint %s has no method", e)
	}

	assert.Len(t, paidEndpoints, 16)
	assert.False(t, EndpointCurrenciesTicker.RequiresPaidPlan())
	assert.False(t, EndpointExchangeRates.RequiresPaidPlan())
	assert.True(t, EndpointExchangeMarketsTicker.RequiresPaidPlan())
	assert.True(t, EndpointTrades.RequiresPaidPlan())
}

func TestPaidEndpointsWithoutPaidPlan(t *testing.T) {
	for _, tc := range endpointCases() {
		if !tc.endpoint.RequiresPaidPlan() {
			continue
		}

		t.Run(tc.name, func(t *testing.T) {
			srv := newRecorder(t, http.StatusOK, `[]`)
			// fail silently must not hide a plan error
			client, logs := newTestClient(t, srv.URL, WithFailSilently(true))

			body, err := tc.call(context.Background(), client)
			assert.Nil(t, body)

			var keyErr *KeyTypeError
			require.True(t, errors.As(err, &keyErr))
			assert.Equal(t, tc.endpoint, keyErr.Endpoint)
			assert.ErrorIs(t, err, ErrPaidPlanRequired)

			assert.Empty(t, srv.Requests())

			records := logRecords(t, logs)
			require.Len(t, records, 1)
			assert.Equal(t, "error", records[0].Level)
			assert.Equal(t, tc.endpoint.Path(), records[0].Endpoint)
			assert.Equal(t, err.Error(), records[0].Message)
		})
	}
}

func TestFreeEndpointsWithoutPaidPlan(t *testing.T) {
	for _, tc := range endpointCases() {
		if tc.endpoint.RequiresPaidPlan() {
			continue
		}

		t.Run(tc.name, func(t *testing.T) {
			srv := newRecorder(t, http.StatusOK, `{}`)
			client, _ := newTestClient(t, srv.URL)

			_, err := tc.call(context.Background(), client)
			require.NoError(t, err)
			assert.Len(t, srv.Requests(), 1)
		})
	}
}

func TestEndpointUpstreamErrors(t *testing.T) {
	srv := newRecorder(t, http.StatusTooManyRequests, `{"message":"rate limit exceeded"}`)
	client, logs := newTestClient(t, srv.URL, WithPaidPlans(true))

	_, err := client.GetTrades(context.Background(), TradesParams{Exchange: "binance", Market: "BTCUSDT"})

	var upstream *UpstreamRequestError
	require.True(t, errors.As(err, &upstream))
	assert.True(t, upstream.IsRateLimited())
	assert.Equal(t, "429 rate limit exceeded", err.Error())

	records := logRecords(t, logs)
	require.Len(t, records, 1)
	assert.Equal(t, "warn", records[0].Level)
	assert.Equal(t, "trades", records[0].Path)
}

func TestParameterEncoding(t *testing.T) {
	start := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	hour := 0

	tests := []struct {
		name string
		call func(ctx context.Context, c *Client) (json.RawMessage, error)
		want url.Values
	}{
		{
			name: "no arguments",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetExchangeRatesHistory(ctx, ExchangeRatesHistoryParams{})
			},
			want: url.Values{},
		},
		{
			name: "empty list elements are still sent",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetCurrenciesTicker(ctx, CurrenciesTickerParams{IDs: []string{""}, Interval: []string{""}, Convert: "USD"})
			},
			want: url.Values{"ids": {""}, "interval": {""}, "convert": {"USD"}},
		},
		{
			name: "lists are comma joined",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetCurrenciesTicker(ctx, CurrenciesTickerParams{
					IDs:                 []string{"BTC", "ETH", "XRP"},
					Interval:            []string{Interval1d, Interval30d},
					IncludeTransparency: true,
					PerPage:             100,
					Page:                2,
				})
			},
			want: url.Values{
				"ids":                  {"BTC,ETH,XRP"},
				"interval":             {"1d,30d"},
				"include-transparency": {"true"},
				"per-page":             {"100"},
				"page":                 {"2"},
			},
		},
		{
			name: "timestamps use RFC3339",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetSupplyHistory(ctx, SupplyHistoryParams{Currency: "BTC", Start: start, End: end})
			},
			want: url.Values{
				"currency": {"BTC"},
				"start":    {"2021-01-02T03:04:05Z"},
				"end":      {"2021-01-03T03:04:05Z"},
			},
		},
		{
			name: "dates and explicit zero hour",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetOrderBookBatches(ctx, OrderBookBatchesParams{Exchange: "gdax", Market: "BTC-USD", Date: start, Hour: &hour})
			},
			want: url.Values{
				"exchange": {"gdax"},
				"market":   {"BTC-USD"},
				"date":     {"2021-01-02"},
				"hour":     {"0"},
			},
		},
		{
			name: "trade cursor",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetTrades(ctx, TradesParams{Exchange: "binance", Market: "BTCUSDT", Limit: 50, Order: "asc", From: "abc123"})
			},
			want: url.Values{
				"exchange": {"binance"},
				"market":   {"BTCUSDT"},
				"limit":    {"50"},
				"order":    {"asc"},
				"from":     {"abc123"},
			},
		},
		{
			name: "markets base and quote lists",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetMarket(ctx, MarketsParams{Exchange: "binance", Base: []string{"BTC", "ETH"}, Quote: []string{"USDT"}})
			},
			want: url.Values{
				"exchange": {"binance"},
				"base":     {"BTC,ETH"},
				"quote":    {"USDT"},
			},
		},
		{
			name: "candles",
			call: func(ctx context.Context, c *Client) (json.RawMessage, error) {
				return c.GetAggregatedPairOHLCVCandles(ctx, AggregatedPairOHLCVCandlesParams{Interval: CandleInterval4h, Base: "BTC", Quote: "EUR", Start: start})
			},
			want: url.Values{
				"interval": {"4h"},
				"base":     {"BTC"},
				"quote":    {"EUR"},
				"start":    {"2021-01-02T03:04:05Z"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRecorder(t, http.StatusOK, `[]`)
			client, _ := newTestClient(t, srv.URL, WithPaidPlans(true))

			_, err := tt.call(context.Background(), client)
			require.NoError(t, err)

			reqs := srv.Requests()
			require.Len(t, reqs, 1)

			got := reqs[0].Query
			assert.Equal(t, testAPIKey, got.Get("key"))
			got.Del("key")
			assert.Equal(t, tt.want, got)
		})
	}
}
