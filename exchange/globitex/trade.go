package globitex

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

//
// Trade implements the exchange.Trade interface for executed trades provided by the Globitex
// API.
//
type Trade struct {
	id        int64
	price     decimal.Decimal
	amount    decimal.Decimal
	side      string
	timestamp time.Time
}

//
// UnmarshalJSON implements the json.Unmarshaller interface for Trade structures. The API
// provides the trade identifier as a number, the price and amount as strings, and the execution
// instant as milliseconds since the epoch.
//
func (o *Trade) UnmarshalJSON(data []byte) error {
	var raw struct {
		TID    int64           `json:"tid"`
		Price  decimal.Decimal `json:"price"`
		Amount decimal.Decimal `json:"amount"`
		Side   string          `json:"side"`
		Date   int64           `json:"date"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.id = raw.TID
	o.price = raw.Price
	o.amount = raw.Amount
	o.side = raw.Side
	o.timestamp = time.Unix(0, raw.Date*int64(time.Millisecond))

	return nil
}

func (o *Trade) ID() int64 {
	return o.id
}

func (o *Trade) Price() decimal.Decimal {
	return o.price
}

func (o *Trade) Amount() decimal.Decimal {
	return o.amount
}

func (o *Trade) Side() string {
	return o.side
}

func (o *Trade) Timestamp() time.Time {
	return o.timestamp
}
