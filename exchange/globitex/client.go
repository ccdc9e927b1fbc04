package globitex

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"globitex-client/exchange"
)

//
// Client talks to the Globitex trading/payments REST API. Public market-data endpoints are plain
// GET requests; account and payment endpoints are authenticated with a per-request nonce and an
// HMAC-SHA512 signature over a canonical message that embeds that nonce.
//
// A Client exclusively owns its credentials for its entire lifetime. It is safe for concurrent
// use: nonce generation and signing for any single request execute as an atomic pair under an
// internal mutex, while the network calls themselves proceed concurrently.
//
type Client struct {
	apiKey    string
	apiSecret string

	baseURL    string
	httpClient *http.Client

	// Guards the generate-nonce-then-sign sequence so that two in-flight requests can never swap
	// nonces between their signed messages.
	mu  sync.Mutex
	now func() time.Time
}

func NewClient(key string, secret string) *Client {
	return &Client{
		apiKey:     key,
		apiSecret:  secret,
		baseURL:    BaseURL,
		httpClient: &http.Client{},
		now:        time.Now,
	}
}

//
// publicRequest issues an unauthenticated GET against the specified public method. An optional
// extra path segment (e.g. a symbol) is appended to the endpoint path, and any provided
// parameters are carried as the query string. No nonce and no signature are involved.
//
func (o *Client) publicRequest(method string, pathSuffix string, params url.Values) (*Response, error) {
	endpoint := apiPath(method, true)

	if pathSuffix != "" {
		endpoint += "/" + pathSuffix
	}

	reqURL := o.baseURL + endpoint

	if query := params.Encode(); query != "" {
		reqURL += "?" + query
	}

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, newTransportError(endpoint, err)
	}

	req.Header.Set("User-Agent", UserAgent)

	return o.do(req, endpoint)
}

//
// privateRequest issues an authenticated request against the specified method. The nonce and the
// signature over it are generated as an atomic pair immediately before dispatch. A GET carries
// the parameters as a query string; a POST carries them as a form-encoded body. Either way the
// parameter encoding is the exact encoding that was signed.
//
func (o *Client) privateRequest(method string, params url.Values, verb string) (*Response, error) {
	endpoint := apiPath(method, false)

	nonce, signature := o.signRequest(method, params)

	var req *http.Request
	var err error

	switch verb {
	case http.MethodGet:
		reqURL := o.baseURL + endpoint

		if query := params.Encode(); query != "" {
			reqURL += "?" + query
		}

		req, err = http.NewRequest(http.MethodGet, reqURL, nil)

	case http.MethodPost:
		req, err = http.NewRequest(http.MethodPost, o.baseURL+endpoint, strings.NewReader(params.Encode()))

		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}

	default:
		return nil, newTransportError(endpoint, fmt.Errorf("unsupported HTTP verb %q", verb))
	}

	if err != nil {
		return nil, newTransportError(endpoint, err)
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set(APIKeyHeader, o.apiKey)
	req.Header.Set(NonceHeader, nonce)
	req.Header.Set(SignatureHeader, signature)

	return o.do(req, endpoint)
}

//
// signRequest generates a fresh nonce and the signature embedding it for a single authenticated
// request. The two are returned together and must be used together – attaching one request's
// nonce with another's signature is exactly the interleaving the mutex here exists to prevent.
//
func (o *Client) signRequest(method string, params url.Values) (nonce string, signature string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	nonce = newNonce(o.now())
	signature = sign(o.apiSecret, canonicalMessage(o.apiKey, nonce, method, params))

	return nonce, signature
}

//
// do performs the actual HTTP call and translates every failure mode into an *APIError. There
// are no retries – a failure is terminal for the call and surfaces to the caller immediately.
//
func (o *Client) do(req *http.Request, endpoint string) (*Response, error) {
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(endpoint, err)
	}

	defer resp.Body.Close()

	//
	// Begin wrapping the response in the standard response structure. Even failed calls return
	// whatever payload was received so that the caller can inspect it.
	//
	wrapped := &Response{
		response: resp,
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapped, newTransportError(endpoint, err)
	}

	wrapped.body = body

	//
	// Translate a non-2xx status. A 404 gets its own message naming the attempted endpoint; any
	// other status is reported with the API's own error payload when one was provided, or with
	// the bare status otherwise.
	//
	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		httpErr := exchange.NewHTTPError(resp.StatusCode, endpoint)

		if httpErr.NotFound() {
			return wrapped, newEndpointNotFoundError(endpoint, httpErr)
		}

		if apiErr := sniffAPIError(endpoint, body); apiErr != nil {
			apiErr.cause = httpErr

			return wrapped, apiErr
		}

		return wrapped, newTransportError(endpoint, httpErr)
	}

	//
	// Some API-level rejections come back with a 200 status and an error envelope in the body.
	//
	if apiErr := sniffAPIError(endpoint, body); apiErr != nil {
		return wrapped, apiErr
	}

	return wrapped, nil
}
