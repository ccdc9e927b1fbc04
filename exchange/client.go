package exchange

import (
	"net/url"
	"time"
)

//
// Client generically provides an interface to an object that can be used to interact with the
// public market-data surface of a cryptocurrency exchange's REST API. Account and payment
// endpoints vary too much between exchanges to be generalized, so they are left to the concrete
// client implementations.
//
// Whenever an endpoint fails – whether due to a system failure, an HTTP error, or an API error –
// the error component of the response will be non-nil.
//
type Client interface {

	//
	// GetTime retrieves the exchange's own notion of the current time. It is useful for detecting
	// clock drift before issuing nonce-bound authenticated requests.
	//
	GetTime() (time.Time, error)

	//
	// GetTicker retrieves the most recent ticker for the specified symbol.
	//
	GetTicker(symbol string) (Ticker, error)

	//
	// GetOrderBook retrieves the current aggregated order book for the specified symbol.
	//
	GetOrderBook(symbol string) (OrderBook, error)

	//
	// GetTrades retrieves recently executed trades for the specified symbol. The provided
	// parameters are forwarded to the endpoint verbatim (e.g. pagination cursors) and may be nil.
	//
	GetTrades(symbol string, params url.Values) ([]Trade, error)

	//
	// GetAssetPairs retrieves the symbol pairs that the exchange currently supports trading on.
	//
	GetAssetPairs() ([]Pair, error)
}
