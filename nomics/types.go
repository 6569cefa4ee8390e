package nomics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Decode unmarshals a raw endpoint response into T. It is shaped to wrap an endpoint
// call directly:
//
//	rates, err := nomics.Decode[[]nomics.ExchangeRate](client.GetExchangeRates(ctx))
//
// A nil body, as returned by a silently failed call, decodes to the zero value.
func Decode[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}

// unmarshalLenient decodes a JSON object into v after dropping fields sent as an
// empty string, which the API uses for unknown amounts and timestamps. The
// remaining fields are returned; they are nil when data is not an object.
func unmarshalLenient(data []byte, v any) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, json.Unmarshal(data, v)
	}

	for k, raw := range fields {
		if string(raw) == `""` {
			delete(fields, k)
		}
	}

	cleaned, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cleaned, v); err != nil {
		return nil, err
	}
	return fields, nil
}

// IntervalChange holds the deltas reported for one ticker interval.
type IntervalChange struct {
	Volume             decimal.Decimal `json:"volume"`
	PriceChange        decimal.Decimal `json:"price_change"`
	PriceChangePct     decimal.Decimal `json:"price_change_pct"`
	VolumeChange       decimal.Decimal `json:"volume_change"`
	VolumeChangePct    decimal.Decimal `json:"volume_change_pct"`
	MarketCapChange    decimal.Decimal `json:"market_cap_change"`
	MarketCapChangePct decimal.Decimal `json:"market_cap_change_pct"`
}

// UnmarshalJSON treats empty string fields as absent.
func (i *IntervalChange) UnmarshalJSON(data []byte) error {
	type plain IntervalChange
	_, err := unmarshalLenient(data, (*plain)(i))
	return err
}

// Ticker is a row of the currencies ticker. Interval deltas are keyed by interval
// ("1h", "1d", ...) and only present for the intervals requested.
type Ticker struct {
	ID                 string          `json:"id"`
	Currency           string          `json:"currency"`
	Symbol             string          `json:"symbol"`
	Name               string          `json:"name"`
	LogoURL            string          `json:"logo_url"`
	Status             string          `json:"status"`
	Price              decimal.Decimal `json:"price"`
	PriceDate          time.Time       `json:"price_date"`
	PriceTimestamp     time.Time       `json:"price_timestamp"`
	CirculatingSupply  decimal.Decimal `json:"circulating_supply"`
	MaxSupply          decimal.Decimal `json:"max_supply"`
	MarketCap          decimal.Decimal `json:"market_cap"`
	MarketCapDominance decimal.Decimal `json:"market_cap_dominance"`
	NumExchanges       string          `json:"num_exchanges"`
	NumPairs           string          `json:"num_pairs"`
	Rank               string          `json:"rank"`
	RankDelta          string          `json:"rank_delta"`
	High               decimal.Decimal `json:"high"`
	HighTimestamp      time.Time       `json:"high_timestamp"`

	Intervals map[string]IntervalChange `json:"intervals,omitempty"`
}

// UnmarshalJSON collects the interval objects ("1d": {...}) next to the flat fields
// and treats empty string fields as absent.
func (t *Ticker) UnmarshalJSON(data []byte) error {
	type plain Ticker
	fields, err := unmarshalLenient(data, (*plain)(t))
	if err != nil || fields == nil {
		return err
	}

	for _, interval := range []string{Interval1h, Interval1d, Interval7d, Interval30d, Interval365d, IntervalYTD} {
		raw, ok := fields[interval]
		if !ok {
			continue
		}
		var change IntervalChange
		if err := json.Unmarshal(raw, &change); err != nil {
			return fmt.Errorf("interval %s: %w", interval, err)
		}
		if t.Intervals == nil {
			t.Intervals = make(map[string]IntervalChange)
		}
		t.Intervals[interval] = change
	}

	return nil
}

// ExchangeRate is a row of the exchange rates endpoint.
type ExchangeRate struct {
	Currency  string          `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	Timestamp time.Time       `json:"timestamp"`
}

// UnmarshalJSON treats empty string fields as absent.
func (e *ExchangeRate) UnmarshalJSON(data []byte) error {
	type plain ExchangeRate
	_, err := unmarshalLenient(data, (*plain)(e))
	return err
}

// GlobalTicker is the response of the global ticker endpoint.
type GlobalTicker struct {
	NumCurrencies         string          `json:"num_currencies"`
	NumCurrenciesActive   string          `json:"num_currencies_active"`
	NumCurrenciesInactive string          `json:"num_currencies_inactive"`
	NumCurrenciesDead     string          `json:"num_currencies_dead"`
	NumCurrenciesNew      string          `json:"num_currencies_new"`
	MarketCap             decimal.Decimal `json:"market_cap"`
	TransparentMarketCap  decimal.Decimal `json:"transparent_market_cap"`
}

// UnmarshalJSON treats empty string fields as absent.
func (g *GlobalTicker) UnmarshalJSON(data []byte) error {
	type plain GlobalTicker
	_, err := unmarshalLenient(data, (*plain)(g))
	return err
}

// Sparkline is a row of the sparkline endpoint.
type Sparkline struct {
	Currency   string            `json:"currency"`
	Timestamps []time.Time       `json:"timestamps"`
	Prices     []decimal.Decimal `json:"prices"`
}

// Candle is one OHLCV candle.
type Candle struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
}

// UnmarshalJSON treats empty string fields as absent.
func (c *Candle) UnmarshalJSON(data []byte) error {
	type plain Candle
	_, err := unmarshalLenient(data, (*plain)(c))
	return err
}
