package globitex

import (
	"net/url"
	"time"

	"globitex-client/exchange"
)

//
// GetTime retrieves the exchange's own notion of the current time.
//
func (o *Client) GetTime() (time.Time, error) {
	resp, err := o.publicRequest("time", "", nil)
	if err != nil {
		return time.Time{}, err
	}

	var envelope struct {
		Timestamp int64 `json:"timestamp"`
	}

	if err := resp.decode(&envelope); err != nil {
		return time.Time{}, err
	}

	if envelope.Timestamp == 0 {
		return time.Time{}, newMissingFieldError(apiPath("time", true), "timestamp")
	}

	return time.Unix(0, envelope.Timestamp*int64(time.Millisecond)), nil
}

//
// GetTicker retrieves the most recent 24-hour ticker for the specified symbol.
//
func (o *Client) GetTicker(symbol string) (exchange.Ticker, error) {
	resp, err := o.publicRequest("ticker", symbol, nil)
	if err != nil {
		return nil, err
	}

	ticker := &Ticker{
		symbol: symbol,
	}

	if err := resp.decode(ticker); err != nil {
		return nil, err
	}

	return ticker, nil
}

//
// GetOrderBook retrieves the current aggregated order book for the specified symbol.
//
func (o *Client) GetOrderBook(symbol string) (exchange.OrderBook, error) {
	resp, err := o.publicRequest("orderbook", symbol, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Asks []*PriceLevel `json:"asks"`
		Bids []*PriceLevel `json:"bids"`
	}

	if err := resp.decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Asks == nil && envelope.Bids == nil {
		return nil, newMissingFieldError(apiPath("orderbook", true), "asks")
	}

	return &OrderBook{
		symbol: symbol,
		asks:   envelope.Asks,
		bids:   envelope.Bids,
	}, nil
}

//
// GetTrades retrieves recently executed trades for the specified symbol, preserving the order in
// which the API returned them. The provided parameters (e.g. "from", "max_results") are
// forwarded verbatim and may be nil.
//
func (o *Client) GetTrades(symbol string, params url.Values) ([]exchange.Trade, error) {
	resp, err := o.publicRequest("trades", symbol, params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Trades []*Trade `json:"trades"`
	}

	if err := resp.decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Trades == nil {
		return nil, newMissingFieldError(apiPath("trades", true), "trades")
	}

	ret := make([]exchange.Trade, len(envelope.Trades))

	for i, v := range envelope.Trades {
		ret[i] = v
	}

	return ret, nil
}

//
// GetAssetPairs retrieves the symbol pairs that the exchange currently supports trading on.
//
func (o *Client) GetAssetPairs() ([]exchange.Pair, error) {
	resp, err := o.publicRequest("symbols", "", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Symbols []*Pair `json:"symbols"`
	}

	if err := resp.decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Symbols == nil {
		return nil, newMissingFieldError(apiPath("symbols", true), "symbols")
	}

	ret := make([]exchange.Pair, len(envelope.Symbols))

	for i, v := range envelope.Symbols {
		ret[i] = v
	}

	return ret, nil
}
