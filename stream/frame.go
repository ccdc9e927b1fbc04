package stream

import (
	"encoding/json"
	"time"

	"globitex-client/structs/tickerlog"

	"github.com/shopspring/decimal"
)

//
// subscribeMessage is the frame sent to the market-data feed to subscribe to ticker updates for
// a set of symbols.
//
type subscribeMessage struct {
	Op      string   `json:"op"`
	Symbols []string `json:"symbols"`
}

//
// tickerFrame models a single ticker update frame as broadcast by the market-data feed. Frames
// of other kinds (e.g. heartbeats) simply fail to populate the symbol and are skipped.
//
type tickerFrame struct {
	Symbol    string          `json:"symbol"`
	Ask       decimal.Decimal `json:"ask"`
	Bid       decimal.Decimal `json:"bid"`
	Last      decimal.Decimal `json:"last"`
	Timestamp int64           `json:"timestamp"`
}

//
// decodeFrame parses a raw feed frame. A nil frame with a nil error means the frame was valid
// JSON but not a ticker update.
//
func decodeFrame(data []byte) (*tickerFrame, error) {
	var frame tickerFrame

	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, err
	}

	if frame.Symbol == "" {
		return nil, nil
	}

	return &frame, nil
}

//
// tick converts the frame into the Tick form that the service's history logs and handlers
// consume.
//
func (o *tickerFrame) tick() tickerlog.Tick {
	return tickerlog.Tick{
		Symbol: o.Symbol,
		Ask:    o.Ask,
		Bid:    o.Bid,
		Last:   o.Last,
		At:     time.Unix(0, o.Timestamp*int64(time.Millisecond)),
	}
}
