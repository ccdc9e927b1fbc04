package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

//
// Trade generically provides an interface to objects that represent a single executed trade
// provided in a response from a call to an exchange's API endpoint.
//
type Trade interface {

	//
	// ID returns the exchange-assigned sequential identifier of the trade.
	//
	ID() int64

	//
	// Price returns the price that the trade executed at.
	//
	Price() decimal.Decimal

	//
	// Amount returns the amount of the base asset that changed hands.
	//
	Amount() decimal.Decimal

	//
	// Side returns which side of the book the taker was on (e.g. "buy" or "sell").
	//
	Side() string

	//
	// Timestamp returns the instant at which the trade executed.
	//
	Timestamp() time.Time
}
