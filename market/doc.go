// Package market builds higher level views on top of the nomics client: a
// concurrently collected snapshot of the free endpoints and console formatting for
// tickers, rates, sparklines and candles.
package market
