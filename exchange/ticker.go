package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

//
// Ticker generically provides an interface to objects that represent a 24-hour rolling ticker
// provided in a response from a call to an exchange's API endpoint.
//
type Ticker interface {

	//
	// Symbol returns the symbol pair that the ticker describes.
	//
	Symbol() string

	//
	// Ask returns the lowest currently-open ask price.
	//
	Ask() decimal.Decimal

	//
	// Bid returns the highest currently-open bid price.
	//
	Bid() decimal.Decimal

	//
	// Last returns the price of the most recently executed trade.
	//
	Last() decimal.Decimal

	//
	// Low returns the lowest trade price of the window.
	//
	Low() decimal.Decimal

	//
	// High returns the highest trade price of the window.
	//
	High() decimal.Decimal

	//
	// Open returns the trade price at the opening instant of the window.
	//
	Open() decimal.Decimal

	//
	// Volume returns the trade volume of the window, denominated in the base asset.
	//
	Volume() decimal.Decimal

	//
	// VolumeQuote returns the trade volume of the window, denominated in the quote currency.
	//
	VolumeQuote() decimal.Decimal

	//
	// Timestamp returns the instant at which the exchange assembled the ticker.
	//
	Timestamp() time.Time
}
