package globitex

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

//
// Pair implements the exchange.Pair interface for tradeable symbol pairs provided by the
// Globitex API.
//
type Pair struct {
	symbol               string
	commodity            string
	currency             string
	priceStep            decimal.Decimal
	lotSize              decimal.Decimal
	takeLiquidityRate    decimal.Decimal
	provideLiquidityRate decimal.Decimal
}

//
// UnmarshalJSON implements the json.Unmarshaller interface for Pair structures.
//
func (o *Pair) UnmarshalJSON(data []byte) error {
	var raw struct {
		Symbol               string          `json:"symbol"`
		Commodity            string          `json:"commodity"`
		Currency             string          `json:"currency"`
		Step                 decimal.Decimal `json:"step"`
		Lot                  decimal.Decimal `json:"lot"`
		TakeLiquidityRate    decimal.Decimal `json:"takeLiquidityRate"`
		ProvideLiquidityRate decimal.Decimal `json:"provideLiquidityRate"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.symbol = raw.Symbol
	o.commodity = raw.Commodity
	o.currency = raw.Currency
	o.priceStep = raw.Step
	o.lotSize = raw.Lot
	o.takeLiquidityRate = raw.TakeLiquidityRate
	o.provideLiquidityRate = raw.ProvideLiquidityRate

	return nil
}

func (o *Pair) Symbol() string {
	return o.symbol
}

func (o *Pair) Commodity() string {
	return o.commodity
}

func (o *Pair) Currency() string {
	return o.currency
}

func (o *Pair) PriceStep() decimal.Decimal {
	return o.priceStep
}

func (o *Pair) LotSize() decimal.Decimal {
	return o.lotSize
}

func (o *Pair) TakeLiquidityRate() decimal.Decimal {
	return o.takeLiquidityRate
}

func (o *Pair) ProvideLiquidityRate() decimal.Decimal {
	return o.provideLiquidityRate
}
