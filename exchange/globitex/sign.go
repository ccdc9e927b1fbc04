package globitex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"
)

//
// apiPath composes the request path for the specified logical method name. Public (i.e.
// unauthenticated) endpoints live under an extra "/public" segment; authenticated endpoints do
// not. The composition is pure – calling it any number of times with the same inputs yields the
// same output.
//
func apiPath(method string, public bool) string {
	path := "/api/" + APIVersion

	if public {
		path += "/public"
	}

	return path + "/" + method
}

//
// newNonce derives a fresh nonce from the provided wall-clock instant. The nonce is the whole
// seconds of the instant immediately followed by exactly six zero-padded digits of microsecond
// precision. Keeping the value a digit string (rather than a single large integer, or worse, a
// float) sidesteps overflow on 32-bit platforms and guarantees that no decimal point or exponent
// ever leaks into the signed message.
//
// Two calls within the same microsecond produce the same nonce. The exchange rejects reused
// nonces, so callers issuing authenticated requests faster than the clock's resolution will see
// those rejections surface as API errors.
//
func newNonce(now time.Time) string {
	return fmt.Sprintf("%d%06d", now.Unix(), now.Nanosecond()/int(time.Microsecond))
}

//
// canonicalMessage builds the exact string that gets signed for an authenticated request:
//
//	<apiKey>&<nonce><path>[?<queryString>]
//
// The path is always the private form of the endpoint's path, regardless of the HTTP verb the
// request will eventually use. The query string, when the parameters are non-empty, is the
// url.Values encoding – the very same encoding the dispatcher later puts on the wire, so the
// signed bytes and the transmitted bytes can never disagree.
//
func canonicalMessage(apiKey string, nonce string, method string, params url.Values) string {
	msg := apiKey + "&" + nonce + apiPath(method, false)

	if query := params.Encode(); query != "" {
		msg += "?" + query
	}

	return msg
}

//
// sign computes the lower-case hexadecimal HMAC-SHA512 digest of the provided message, keyed by
// the provided API secret. Both the message and the secret are taken as their UTF-8 bytes.
//
func sign(secret string, message string) string {
	mac := hmac.New(sha512.New, []byte(secret))

	mac.Write([]byte(message))

	return hex.EncodeToString(mac.Sum(nil))
}
