package market

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/s0up4200/nomics/nomics"
)

// FormatOptions controls ticker formatting
type FormatOptions struct {
	// Convert is the quote currency shown next to prices
	Convert string
	// Intervals adds a change column per interval
	Intervals []string
}

// ConsoleFormatter provides console output formatting for market data
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatTickers formats ticker rows as a table
func (f *ConsoleFormatter) FormatTickers(tickers []nomics.Ticker, options FormatOptions) string {
	if len(tickers) == 0 {
		return "No currencies found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nCurrenc%s (%d):\n\n", plural(len(tickers), "y", "ies"), len(tickers))

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"#", "Symbol", "Name", "Price " + quote(options.Convert), "Market Cap"}
	for _, interval := range options.Intervals {
		header = append(header, interval)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, t := range tickers {
		row := []string{
			t.Rank,
			t.Symbol,
			t.Name,
			formatPrice(t.Price),
			formatLarge(t.MarketCap),
		}
		for _, interval := range options.Intervals {
			change, ok := t.Intervals[interval]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, formatPercent(change.PriceChangePct))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	tw.Flush()

	return sb.String()
}

// FormatRates formats exchange rates as a table
func (f *ConsoleFormatter) FormatRates(rates []nomics.ExchangeRate) string {
	if len(rates) == 0 {
		return "No exchange rates found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nExchange rate%s (%d):\n\n", plural(len(rates), "", "s"), len(rates))

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Currency\tRate USD\tTimestamp")
	for _, r := range rates {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Currency, formatPrice(r.Rate), formatTime(r.Timestamp))
	}
	tw.Flush()

	return sb.String()
}

// FormatGlobal formats the global ticker
func (f *ConsoleFormatter) FormatGlobal(global nomics.GlobalTicker, convert string) string {
	var sb strings.Builder

	sb.WriteString("\nGlobal market:\n\n")
	fmt.Fprintf(&sb, "├── Market cap: %s %s\n", formatLarge(global.MarketCap), quote(convert))
	if !global.TransparentMarketCap.IsZero() {
		fmt.Fprintf(&sb, "├── Transparent market cap: %s %s\n", formatLarge(global.TransparentMarketCap), quote(convert))
	}
	fmt.Fprintf(&sb, "╰── Currencies: %s (active %s, inactive %s, dead %s, new %s)\n",
		orDash(global.NumCurrencies),
		orDash(global.NumCurrenciesActive),
		orDash(global.NumCurrenciesInactive),
		orDash(global.NumCurrenciesDead),
		orDash(global.NumCurrenciesNew),
	)

	return sb.String()
}

// FormatSparklines formats the first and last price of each sparkline with its range
func (f *ConsoleFormatter) FormatSparklines(sparklines []nomics.Sparkline) string {
	if len(sparklines) == 0 {
		return "No sparklines found"
	}

	var sb strings.Builder
	for _, s := range sparklines {
		fmt.Fprintf(&sb, "\n%s (%d points)\n", s.Currency, len(s.Prices))
		if len(s.Prices) == 0 {
			continue
		}

		low, high := s.Prices[0], s.Prices[0]
		for _, p := range s.Prices[1:] {
			low = decimal.Min(low, p)
			high = decimal.Max(high, p)
		}
		first, last := s.Prices[0], s.Prices[len(s.Prices)-1]

		fmt.Fprintf(&sb, "├── First: %s\n", formatPrice(first))
		fmt.Fprintf(&sb, "├── Last:  %s (%s)\n", formatPrice(last), formatPercent(changeRatio(first, last)))
		fmt.Fprintf(&sb, "╰── Range: %s - %s\n", formatPrice(low), formatPrice(high))
	}

	return sb.String()
}

// FormatCandles formats OHLCV candles as a table
func (f *ConsoleFormatter) FormatCandles(candles []nomics.Candle) string {
	if len(candles) == 0 {
		return "No candles found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nCandle%s (%d):\n\n", plural(len(candles), "", "s"), len(candles))

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Time\tOpen\tHigh\tLow\tClose\tVolume")
	for _, c := range candles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			formatTime(c.Timestamp),
			formatPrice(c.Open),
			formatPrice(c.High),
			formatPrice(c.Low),
			formatPrice(c.Close),
			formatLarge(c.Volume),
		)
	}
	tw.Flush()

	return sb.String()
}

// FormatSnapshot formats every collected part of a snapshot followed by the
// parts that failed
func (f *ConsoleFormatter) FormatSnapshot(snap *Snapshot, intervals []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Snapshot taken %s\n", snap.TakenAt.Format("2006-01-02 15:04:05"))

	if snap.Global != nil {
		sb.WriteString(f.FormatGlobal(*snap.Global, snap.Convert))
	}
	if len(snap.Tickers) > 0 {
		sb.WriteString(f.FormatTickers(snap.Tickers, FormatOptions{Convert: snap.Convert, Intervals: intervals}))
	}
	if snap.Convert != "" && !strings.EqualFold(snap.Convert, "USD") {
		if rate, ok := snap.Rate(snap.Convert); ok {
			fmt.Fprintf(&sb, "\n1 %s = %s USD\n", strings.ToUpper(snap.Convert), formatPrice(rate.Rate))
		}
	} else if len(snap.Rates) > 0 {
		fmt.Fprintf(&sb, "\n%d exchange rates available\n", len(snap.Rates))
	}

	if !snap.Complete() {
		sb.WriteString("\nIncomplete snapshot:\n")
		for i, partErr := range snap.Errors {
			prefix := "├"
			if i == len(snap.Errors)-1 {
				prefix = "╰"
			}
			fmt.Fprintf(&sb, "%s── %s\n", prefix, partErr.Error())
		}
	}

	return sb.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func quote(convert string) string {
	if convert == "" {
		return "USD"
	}
	return strings.ToUpper(convert)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// formatPrice keeps more precision for small prices
func formatPrice(d decimal.Decimal) string {
	switch {
	case d.IsZero():
		return "0"
	case d.Abs().LessThan(decimal.NewFromInt(1)):
		return d.StringFixed(6)
	default:
		return d.StringFixed(2)
	}
}

// formatLarge abbreviates large amounts (1.23T, 456.70B, 12.00M)
func formatLarge(d decimal.Decimal) string {
	units := []struct {
		suffix string
		size   decimal.Decimal
	}{
		{"T", decimal.New(1, 12)},
		{"B", decimal.New(1, 9)},
		{"M", decimal.New(1, 6)},
	}

	for _, u := range units {
		if d.Abs().GreaterThanOrEqual(u.size) {
			return d.Div(u.size).StringFixed(2) + u.suffix
		}
	}
	return d.StringFixed(0)
}

// formatPercent renders a ratio (0.0123) as a signed percentage (+1.23%)
func formatPercent(ratio decimal.Decimal) string {
	pct := ratio.Mul(decimal.NewFromInt(100)).StringFixed(2)
	if ratio.IsPositive() {
		pct = "+" + pct
	}
	return pct + "%"
}

func changeRatio(from, to decimal.Decimal) decimal.Decimal {
	if from.IsZero() {
		return decimal.Zero
	}
	return to.Sub(from).Div(from)
}
