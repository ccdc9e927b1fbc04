package exchange

import "github.com/shopspring/decimal"

//
// Pair generically provides an interface to objects that represent a tradeable symbol pair and
// its trading rules as provided by an exchange's API.
//
type Pair interface {

	//
	// Symbol returns the exchange's identifier for the pair (e.g. "BTCEUR").
	//
	Symbol() string

	//
	// Commodity returns the base asset of the pair.
	//
	Commodity() string

	//
	// Currency returns the quote currency of the pair.
	//
	Currency() string

	//
	// PriceStep returns the smallest increment that order prices on the pair may move by.
	//
	PriceStep() decimal.Decimal

	//
	// LotSize returns the smallest order size increment of the pair.
	//
	LotSize() decimal.Decimal

	//
	// TakeLiquidityRate returns the taker commission rate of the pair.
	//
	TakeLiquidityRate() decimal.Decimal

	//
	// ProvideLiquidityRate returns the maker commission rate of the pair.
	//
	ProvideLiquidityRate() decimal.Decimal
}
