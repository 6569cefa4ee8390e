// Package nomics provides a client for the Nomics cryptocurrency market data API.
//
// Every endpoint method translates a parameter struct into query parameters and
// issues exactly one authenticated GET request through the client's gateway. The
// gateway owns I/O, error classification and logging; endpoint methods own none of it.
//
// # Usage
//
// Create a client with your API key and a zerolog logger:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := nomics.NewClient(
//		"your-api-key",
//		logger,
//		nomics.WithPaidPlans(true),
//		nomics.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	raw, err := client.GetCurrenciesTicker(ctx, nomics.CurrenciesTickerParams{
//		IDs:      []string{"BTC", "ETH"},
//		Interval: []string{nomics.Interval1d},
//		Convert:  "EUR",
//	})
//
// Responses are returned as raw JSON. Decode them into the provided row types when
// convenient:
//
//	tickers, err := nomics.Decode[[]nomics.Ticker](client.GetCurrenciesTicker(ctx, params))
//
// # Paid plans
//
// Some endpoints are only available to paid API keys. Calling one of them on a client
// built without [WithPaidPlans] returns a [*KeyTypeError] before any request is made.
//
// # Error Handling
//
// Non-200 responses are returned as [*UpstreamRequestError], whose message has the form
// "<status> <message>". With [WithFailSilently] enabled those responses are logged at
// info level and the call returns a nil body and a nil error instead:
//
//	raw, err := client.GetExchangeRates(ctx)
//	var upstream *nomics.UpstreamRequestError
//	if errors.As(err, &upstream) && upstream.IsRateLimited() {
//		// back off
//	}
//
// Missing plan access is never silenced: errors.Is(err, nomics.ErrPaidPlanRequired)
// reports it regardless of the fail-silently setting.
package nomics
