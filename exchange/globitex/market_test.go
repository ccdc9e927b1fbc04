package globitex

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// newFixtureServer builds a fake API that answers every request with the provided body.
//
func newFixtureServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
}

func TestGetTime(t *testing.T) {
	server := newFixtureServer(`{"timestamp":1505137069526}`)
	defer server.Close()

	client := newTestClient(server)

	at, err := client.GetTime()
	require.NoError(t, err)

	assert.Equal(t, time.Unix(0, 1505137069526*int64(time.Millisecond)), at)
}

func TestGetTimeMissingTimestamp(t *testing.T) {
	server := newFixtureServer(`{}`)
	defer server.Close()

	client := newTestClient(server)

	_, err := client.GetTime()
	require.Error(t, err)

	assert.Contains(t, err.Error(), `"timestamp"`)
}

func TestGetTicker(t *testing.T) {
	server := newFixtureServer(`{
		"ask": "7906.72",
		"bid": "7900.14",
		"last": "7903.41",
		"low": "7801.00",
		"high": "8100.50",
		"open": "7952.30",
		"volume": "143.4211",
		"volume_quote": "1134942.85",
		"timestamp": 1346691273497
	}`)
	defer server.Close()

	client := newTestClient(server)

	ticker, err := client.GetTicker("BTCEUR")
	require.NoError(t, err)

	assert.Equal(t, "BTCEUR", ticker.Symbol())
	assert.Equal(t, "7906.72", ticker.Ask().String())
	assert.Equal(t, "7900.14", ticker.Bid().String())
	assert.Equal(t, "7903.41", ticker.Last().String())
	assert.Equal(t, "7801", ticker.Low().String())
	assert.Equal(t, "8100.5", ticker.High().String())
	assert.Equal(t, "7952.3", ticker.Open().String())
	assert.Equal(t, "143.4211", ticker.Volume().String())
	assert.Equal(t, "1134942.85", ticker.VolumeQuote().String())
	assert.Equal(t, time.Unix(0, 1346691273497*int64(time.Millisecond)), ticker.Timestamp())
}

func TestGetOrderBook(t *testing.T) {
	server := newFixtureServer(`{
		"asks": [["7906.72", "0.25"], ["7906.80", "1.10"]],
		"bids": [["7900.14", "0.40"]]
	}`)
	defer server.Close()

	client := newTestClient(server)

	book, err := client.GetOrderBook("BTCEUR")
	require.NoError(t, err)

	assert.Equal(t, "BTCEUR", book.Symbol())
	require.Len(t, book.Asks(), 2)
	require.Len(t, book.Bids(), 1)

	assert.Equal(t, "7906.72", book.Asks()[0].Price().String())
	assert.Equal(t, "0.25", book.Asks()[0].Size().String())
	assert.Equal(t, "7900.14", book.Bids()[0].Price().String())
	assert.Equal(t, "0.4", book.Bids()[0].Size().String())
}

//
// A two-entry fixture must come back as a two-element slice in exactly the fixture's order, with
// every field populated from the fixture.
//
func TestGetTradesPreservesOrder(t *testing.T) {
	server := newFixtureServer(`{
		"trades": [
			{"date": 1346691273497, "price": "7903.41", "amount": "0.02", "tid": 11572367, "side": "buy"},
			{"date": 1346691274123, "price": "7903.20", "amount": "1.50", "tid": 11572368, "side": "sell"}
		]
	}`)
	defer server.Close()

	client := newTestClient(server)

	trades, err := client.GetTrades("BTCEUR", nil)
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, int64(11572367), trades[0].ID())
	assert.Equal(t, "7903.41", trades[0].Price().String())
	assert.Equal(t, "0.02", trades[0].Amount().String())
	assert.Equal(t, "buy", trades[0].Side())
	assert.Equal(t, time.Unix(0, 1346691273497*int64(time.Millisecond)), trades[0].Timestamp())

	assert.Equal(t, int64(11572368), trades[1].ID())
	assert.Equal(t, "sell", trades[1].Side())
}

func TestGetTradesMissingField(t *testing.T) {
	server := newFixtureServer(`{"message":"ok"}`)
	defer server.Close()

	client := newTestClient(server)

	_, err := client.GetTrades("BTCEUR", nil)
	require.Error(t, err)

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), `"trades"`)
}

func TestGetAssetPairs(t *testing.T) {
	server := newFixtureServer(`{
		"symbols": [
			{
				"symbol": "BTCEUR",
				"commodity": "BTC",
				"currency": "EUR",
				"step": "0.01",
				"lot": "0.00001",
				"takeLiquidityRate": "0.002",
				"provideLiquidityRate": "0.001"
			}
		]
	}`)
	defer server.Close()

	client := newTestClient(server)

	pairs, err := client.GetAssetPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	pair := pairs[0]

	assert.Equal(t, "BTCEUR", pair.Symbol())
	assert.Equal(t, "BTC", pair.Commodity())
	assert.Equal(t, "EUR", pair.Currency())
	assert.Equal(t, "0.01", pair.PriceStep().String())
	assert.Equal(t, "0.00001", pair.LotSize().String())
	assert.Equal(t, "0.002", pair.TakeLiquidityRate().String())
	assert.Equal(t, "0.001", pair.ProvideLiquidityRate().String())
}
