package exchange

import "github.com/shopspring/decimal"

//
// OrderBook generically provides an interface to objects that represent a point-in-time snapshot
// of an exchange's aggregated order book for a single symbol pair.
//
type OrderBook interface {

	//
	// Symbol returns the symbol pair that the order book describes.
	//
	Symbol() string

	//
	// Asks returns the open ask levels of the book, ordered from best (lowest) price outward.
	//
	Asks() []PriceLevel

	//
	// Bids returns the open bid levels of the book, ordered from best (highest) price outward.
	//
	Bids() []PriceLevel
}

//
// PriceLevel generically provides an interface to objects that represent a single aggregated
// price level of an order book.
//
type PriceLevel interface {

	//
	// Price returns the price of the level.
	//
	Price() decimal.Decimal

	//
	// Size returns the total open volume at the level.
	//
	Size() decimal.Decimal
}
