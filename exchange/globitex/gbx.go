package globitex

import (
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

//
// GBXUtilizationTransaction represents a single GBX (Globitex token) utilization event – a
// commission that was paid for, or discounted by, holding the token.
//
type GBXUtilizationTransaction struct {
	TransactionCode string          `json:"transactionCode"`
	Date            int64           `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Account         string          `json:"account"`
	CommissionType  string          `json:"commissionType"`
}

//
// GetGBXUtilizationTransactions retrieves the GBX utilization transactions of the authenticated
// user's accounts, preserving the order in which the API returned them. The provided parameters
// are forwarded verbatim and may be nil.
//
func (o *Client) GetGBXUtilizationTransactions(params url.Values) ([]*GBXUtilizationTransaction, error) {
	resp, err := o.privateRequest("gbx-utilization/list", params, http.MethodGet)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Transactions []*GBXUtilizationTransaction `json:"transactions"`
	}

	if err := resp.decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Transactions == nil {
		return nil, newMissingFieldError(apiPath("gbx-utilization/list", false), "transactions")
	}

	return envelope.Transactions, nil
}
