// Package filter selects currency ticker rows with expr-lang expressions.
//
// An expression sees the ticker fields as variables and must evaluate to a bool:
//
//	Rank <= 20 and change("1d") > 0.05
//	hasPrefixFold(Symbol, "b") or containsFold(Name, "coin")
//	lower(Name) contains "coin"
//
// Numeric fields (Price, MarketCap, CirculatingSupply, MaxSupply, High,
// MarketCapDominance) are float64, Rank and NumExchanges are ints. change(interval)
// returns the price change ratio for a requested interval, 0 when the interval was
// not part of the response; volume(interval) does the same for traded volume.
//
// containsFold, hasPrefixFold and hasSuffixFold compare case-insensitively. The
// expr operators contains, startsWith and endsWith remain available and are case
// sensitive.
//
// Compiled programs are cached per expression, so repeatedly compiling the same
// preset is cheap.
package filter
