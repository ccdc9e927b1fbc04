package globitex

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

//
// Ticker implements the exchange.Ticker interface for 24-hour tickers provided by the Globitex
// API.
//
type Ticker struct {
	symbol      string
	ask         decimal.Decimal
	bid         decimal.Decimal
	last        decimal.Decimal
	low         decimal.Decimal
	high        decimal.Decimal
	open        decimal.Decimal
	volume      decimal.Decimal
	volumeQuote decimal.Decimal
	timestamp   time.Time
}

//
// UnmarshalJSON implements the json.Unmarshaller interface for Ticker structures. The API
// provides every price as a JSON string and the timestamp as milliseconds since the epoch.
//
func (o *Ticker) UnmarshalJSON(data []byte) error {
	var raw struct {
		Ask         decimal.Decimal `json:"ask"`
		Bid         decimal.Decimal `json:"bid"`
		Last        decimal.Decimal `json:"last"`
		Low         decimal.Decimal `json:"low"`
		High        decimal.Decimal `json:"high"`
		Open        decimal.Decimal `json:"open"`
		Volume      decimal.Decimal `json:"volume"`
		VolumeQuote decimal.Decimal `json:"volume_quote"`
		Timestamp   int64           `json:"timestamp"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.ask = raw.Ask
	o.bid = raw.Bid
	o.last = raw.Last
	o.low = raw.Low
	o.high = raw.High
	o.open = raw.Open
	o.volume = raw.Volume
	o.volumeQuote = raw.VolumeQuote
	o.timestamp = time.Unix(0, raw.Timestamp*int64(time.Millisecond))

	return nil
}

func (o *Ticker) Symbol() string {
	return o.symbol
}

func (o *Ticker) Ask() decimal.Decimal {
	return o.ask
}

func (o *Ticker) Bid() decimal.Decimal {
	return o.bid
}

func (o *Ticker) Last() decimal.Decimal {
	return o.last
}

func (o *Ticker) Low() decimal.Decimal {
	return o.low
}

func (o *Ticker) High() decimal.Decimal {
	return o.high
}

func (o *Ticker) Open() decimal.Decimal {
	return o.open
}

func (o *Ticker) Volume() decimal.Decimal {
	return o.volume
}

func (o *Ticker) VolumeQuote() decimal.Decimal {
	return o.volumeQuote
}

func (o *Ticker) Timestamp() time.Time {
	return o.timestamp
}
