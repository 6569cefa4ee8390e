package market

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/nomics/nomics"
)

// fakeAPI serves canned bodies for the endpoints a snapshot uses
type fakeAPI struct {
	nomics.API

	mu      sync.Mutex
	bodies  map[nomics.Endpoint]string
	errs    map[nomics.Endpoint]error
	tickers []nomics.CurrenciesTickerParams
	global  []nomics.GlobalTickerParams
}

func (f *fakeAPI) respond(e nomics.Endpoint) (json.RawMessage, error) {
	if err := f.errs[e]; err != nil {
		return nil, err
	}
	body, ok := f.bodies[e]
	if !ok {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

func (f *fakeAPI) GetGlobalTicker(_ context.Context, params nomics.GlobalTickerParams) (json.RawMessage, error) {
	f.mu.Lock()
	f.global = append(f.global, params)
	f.mu.Unlock()
	return f.respond(nomics.EndpointGlobalTicker)
}

func (f *fakeAPI) GetExchangeRates(_ context.Context) (json.RawMessage, error) {
	return f.respond(nomics.EndpointExchangeRates)
}

func (f *fakeAPI) GetCurrenciesTicker(_ context.Context, params nomics.CurrenciesTickerParams) (json.RawMessage, error) {
	f.mu.Lock()
	f.tickers = append(f.tickers, params)
	f.mu.Unlock()
	return f.respond(nomics.EndpointCurrenciesTicker)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		bodies: map[nomics.Endpoint]string{
			nomics.EndpointGlobalTicker:     `{"num_currencies":"20000","market_cap":"2500000000000"}`,
			nomics.EndpointExchangeRates:    `[{"currency":"EUR","rate":"1.13","timestamp":"2021-12-01T00:00:00Z"},{"currency":"BTC","rate":"57000","timestamp":"2021-12-01T00:00:00Z"}]`,
			nomics.EndpointCurrenciesTicker: `[{"id":"BTC","symbol":"BTC","name":"Bitcoin","price":"50000","rank":"1","1d":{"price_change_pct":"0.01"}}]`,
		},
		errs: map[nomics.Endpoint]error{},
	}
}

func newTestCollector(api nomics.API) (*Collector, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	c := NewCollector(api, zerolog.New(buf))
	c.now = func() time.Time { return time.Date(2021, 12, 1, 12, 0, 0, 0, time.UTC) }
	return c, buf
}

func TestSnapshot(t *testing.T) {
	api := newFakeAPI()
	collector, logs := newTestCollector(api)

	snap, err := collector.Snapshot(context.Background(), SnapshotOptions{
		Convert:   "EUR",
		Top:       5,
		Intervals: []string{nomics.Interval1d},
	})
	require.NoError(t, err)

	assert.True(t, snap.Complete())
	assert.Equal(t, "EUR", snap.Convert)
	require.NotNil(t, snap.Global)
	assert.Equal(t, "20000", snap.Global.NumCurrencies)
	assert.Len(t, snap.Rates, 2)
	require.Len(t, snap.Tickers, 1)
	assert.Equal(t, "Bitcoin", snap.Tickers[0].Name)
	assert.Contains(t, snap.Tickers[0].Intervals, nomics.Interval1d)
	assert.Empty(t, logs.String())

	require.Len(t, api.tickers, 1)
	assert.Equal(t, 5, api.tickers[0].PerPage)
	assert.Equal(t, "EUR", api.tickers[0].Convert)
	assert.Equal(t, []string{nomics.Interval1d}, api.tickers[0].Interval)
	require.Len(t, api.global, 1)
	assert.Equal(t, "EUR", api.global[0].Convert)

	rate, ok := snap.Rate("eur")
	require.True(t, ok)
	assert.Equal(t, "1.13", rate.Rate.String())
	_, ok = snap.Rate("JPY")
	assert.False(t, ok)
}

func TestSnapshotDefaults(t *testing.T) {
	api := newFakeAPI()
	collector, _ := newTestCollector(api)

	snap, err := collector.Snapshot(context.Background(), SnapshotOptions{})
	require.NoError(t, err)
	assert.Equal(t, "USD", snap.Convert)

	require.Len(t, api.tickers, 1)
	assert.Equal(t, DefaultTop, api.tickers[0].PerPage)
	assert.Equal(t, "USD", api.tickers[0].Convert)
}

func TestSnapshotPartialFailure(t *testing.T) {
	api := newFakeAPI()
	api.errs[nomics.EndpointExchangeRates] = &nomics.UpstreamRequestError{StatusCode: 500, Message: "boom"}
	collector, logs := newTestCollector(api)

	snap, err := collector.Snapshot(context.Background(), SnapshotOptions{})
	require.NoError(t, err)

	assert.False(t, snap.Complete())
	require.Len(t, snap.Errors, 1)
	assert.Equal(t, PartRates, snap.Errors[0].Part)

	var upstream *nomics.UpstreamRequestError
	assert.True(t, errors.As(snap.Errors[0], &upstream))

	assert.NotNil(t, snap.Global)
	assert.Len(t, snap.Tickers, 1)
	assert.Nil(t, snap.Rates)
	assert.Contains(t, logs.String(), `"part":"rates"`)
}

func TestSnapshotInvalidBody(t *testing.T) {
	api := newFakeAPI()
	api.bodies[nomics.EndpointCurrenciesTicker] = `{"not":"a list"}`
	collector, _ := newTestCollector(api)

	snap, err := collector.Snapshot(context.Background(), SnapshotOptions{})
	require.NoError(t, err)
	require.Len(t, snap.Errors, 1)
	assert.Equal(t, PartTickers, snap.Errors[0].Part)
	assert.ErrorIs(t, snap.Errors[0], nomics.ErrInvalidResponse)
}

func TestSnapshotSilentFailures(t *testing.T) {
	api := newFakeAPI()
	api.bodies = map[nomics.Endpoint]string{}
	collector, _ := newTestCollector(api)

	snap, err := collector.Snapshot(context.Background(), SnapshotOptions{})
	require.NoError(t, err)
	assert.True(t, snap.Complete())
	assert.Nil(t, snap.Global)
	assert.Empty(t, snap.Rates)
	assert.Empty(t, snap.Tickers)
}

func TestSnapshotAllPartsFail(t *testing.T) {
	api := newFakeAPI()
	boom := errors.New("connection refused")
	api.errs[nomics.EndpointGlobalTicker] = boom
	api.errs[nomics.EndpointExchangeRates] = boom
	api.errs[nomics.EndpointCurrenciesTicker] = boom
	collector, _ := newTestCollector(api)

	snap, err := collector.Snapshot(context.Background(), SnapshotOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotFailed)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, snap.Errors, 3)
}

func TestSnapshotCanceled(t *testing.T) {
	collector, _ := newTestCollector(newFakeAPI())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collector.Snapshot(ctx, SnapshotOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatSnapshot(t *testing.T) {
	api := newFakeAPI()
	api.errs[nomics.EndpointGlobalTicker] = errors.New("timeout")
	collector, _ := newTestCollector(api)

	snap, err := collector.Snapshot(context.Background(), SnapshotOptions{Convert: "EUR"})
	require.NoError(t, err)

	out := NewConsoleFormatter().FormatSnapshot(snap, []string{nomics.Interval1d})
	assert.Contains(t, out, "Snapshot taken 2021-12-01 12:00:00")
	assert.Contains(t, out, "Bitcoin")
	assert.Contains(t, out, "+1.00%")
	assert.Contains(t, out, "1 EUR = 1.13 USD")
	assert.Contains(t, out, "Incomplete snapshot")
	assert.True(t, strings.Contains(out, "global: timeout"))
	assert.NotContains(t, out, "Global market")
}
