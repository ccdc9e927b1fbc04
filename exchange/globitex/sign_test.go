package globitex

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIPath(t *testing.T) {
	assert.Equal(t, "/api/1/public/ticker", apiPath("ticker", true))
	assert.Equal(t, "/api/1/ticker", apiPath("ticker", false))
	assert.Equal(t, "/api/1/payment/accounts", apiPath("payment/accounts", false))
}

func TestAPIPathIsIdempotent(t *testing.T) {
	first := apiPath("orderbook", true)
	second := apiPath("orderbook", true)

	assert.Equal(t, first, second)
}

func TestNewNonce(t *testing.T) {
	// 123456789ns truncates to 123456µs.
	assert.Equal(t, "1620000000123456", newNonce(time.Unix(1620000000, 123456789)))

	// Sub-millisecond instants must still produce exactly six microsecond digits.
	assert.Equal(t, "1620000000000042", newNonce(time.Unix(1620000000, 42000)))

	// A whole-second instant pads with zeros rather than dropping digits.
	assert.Equal(t, "1620000000000000", newNonce(time.Unix(1620000000, 0)))
}

func TestCanonicalMessageWithoutParams(t *testing.T) {
	msg := canonicalMessage("K", "1620000000123456", "payment/accounts", nil)

	assert.Equal(t, "K&1620000000123456/api/1/payment/accounts", msg)
}

func TestCanonicalMessageWithParams(t *testing.T) {
	params := url.Values{}

	params.Set("account", "ADE1234")
	params.Set("limit", "10")

	msg := canonicalMessage("K", "1620000000123456", "payment/transactions", params)

	assert.Equal(t, "K&1620000000123456/api/1/payment/transactions?account=ADE1234&limit=10", msg)
}

func TestCanonicalMessageWithEmptyParams(t *testing.T) {
	msg := canonicalMessage("K", "1620000000123456", "payment/accounts", url.Values{})

	assert.NotContains(t, msg, "?")
}

//
// The expected digests below were pinned with an independent HMAC-SHA512 implementation so that
// this test cannot drift along with the code under test.
//
func TestSignMatchesKnownVectors(t *testing.T) {
	assert.Equal(t,
		"34b6037a245cdc05676e12b9556642610ad406e1a506c1f0f5907d45ac7d86317eec6a71ef7b56ba711bf244dbdf1cab1ab8bc532cd5c65afef6d27e6fdd078c",
		sign("S", "K&1620000000123456/api/1/payment/accounts"),
	)

	assert.Equal(t,
		"4209ad7c5ad82060e23e51364d87f800ef2ed4579dcc5af79f2e633c0ee86519c5132cf96d6f027bf193bcac3c558155d0c3baf99ab14fc8e5853a13be507d24",
		sign("topsecret", "apikey&1620000000000001/api/1/eurowallet/status"),
	)
}

func TestSignFullPipelineMatchesKnownVector(t *testing.T) {
	params := url.Values{}

	params.Set("account", "ADE1234")
	params.Set("limit", "10")

	signature := sign("S", canonicalMessage("K", "1620000000123456", "payment/transactions", params))

	assert.Equal(t,
		"b25b8651f4f43afaf4f9755f7faf1f822f9402e36fa3e946b1d2d9bbcecb44027cd70002a8ed9cca877975cc4c7b4402d51955e915445c58339084a5f1c557fd",
		signature,
	)
}
