package globitex

import (
	"encoding/json"
	"fmt"

	"globitex-client/exchange"

	"github.com/shopspring/decimal"
)

//
// OrderBook implements the exchange.OrderBook interface for aggregated order book snapshots
// provided by the Globitex API.
//
type OrderBook struct {
	symbol string
	asks   []*PriceLevel
	bids   []*PriceLevel
}

func (o *OrderBook) Symbol() string {
	return o.symbol
}

func (o *OrderBook) Asks() []exchange.PriceLevel {
	ret := make([]exchange.PriceLevel, len(o.asks))

	for i, v := range o.asks {
		ret[i] = v
	}

	return ret
}

func (o *OrderBook) Bids() []exchange.PriceLevel {
	ret := make([]exchange.PriceLevel, len(o.bids))

	for i, v := range o.bids {
		ret[i] = v
	}

	return ret
}

//
// PriceLevel implements the exchange.PriceLevel interface for single aggregated levels of a
// Globitex order book.
//
type PriceLevel struct {
	price decimal.Decimal
	size  decimal.Decimal
}

//
// UnmarshalJSON implements the json.Unmarshaller interface for PriceLevel structures. The API
// provides each level as a two-element array of price and size strings.
//
func (o *PriceLevel) UnmarshalJSON(data []byte) error {
	var raw []string

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) != 2 {
		return fmt.Errorf("expected a [price, size] pair but got %d elements", len(raw))
	}

	var err error

	if o.price, err = decimal.NewFromString(raw[0]); err != nil {
		return err
	}

	if o.size, err = decimal.NewFromString(raw[1]); err != nil {
		return err
	}

	return nil
}

func (o *PriceLevel) Price() decimal.Decimal {
	return o.price
}

func (o *PriceLevel) Size() decimal.Decimal {
	return o.size
}
