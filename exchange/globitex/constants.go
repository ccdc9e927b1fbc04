package globitex

const (
	APIKeyHeader    = "X-API-Key"
	NonceHeader     = "X-Nonce"
	SignatureHeader = "X-Signature"

	BaseURL    = "https://api.globitex.com"
	APIVersion = "1"

	UserAgent = "globitex-client/1.0"
)
