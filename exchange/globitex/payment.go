package globitex

import (
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

//
// Account represents a single payment account held with the exchange, along with its per-currency
// balances.
//
type Account struct {
	Account string           `json:"account"`
	Main    bool             `json:"main"`
	Balance []AccountBalance `json:"balance"`
}

//
// AccountBalance represents one currency's balance within a payment account.
//
type AccountBalance struct {
	Currency  string          `json:"currency"`
	Available decimal.Decimal `json:"available"`
	Reserved  decimal.Decimal `json:"reserved"`
}

//
// CryptoTransactionFee represents the fee levels currently offered for a cryptocurrency payout.
//
type CryptoTransactionFee struct {
	Recommended decimal.Decimal `json:"recommended"`
	Minimum     decimal.Decimal `json:"minimum"`
	Maximum     decimal.Decimal `json:"maximum"`
	ExpiresOn   int64           `json:"expiresOn"`
}

//
// Transaction represents a single payment transaction (deposit, withdrawal, or transfer) on one
// of the caller's accounts.
//
type Transaction struct {
	TransactionCode string          `json:"transactionCode"`
	Created         int64           `json:"created"`
	Finished        int64           `json:"finished"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Account         string          `json:"account"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
}

//
// GetAccountBalance retrieves every payment account that belongs to the authenticated user,
// along with the per-currency balances of each.
//
func (o *Client) GetAccountBalance() ([]*Account, error) {
	resp, err := o.privateRequest("payment/accounts", nil, http.MethodGet)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Accounts []*Account `json:"accounts"`
	}

	if err := resp.decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Accounts == nil {
		return nil, newMissingFieldError(apiPath("payment/accounts", false), "accounts")
	}

	return envelope.Accounts, nil
}

//
// GetCryptoTransactionFee retrieves the currently offered fee levels for a cryptocurrency payout
// of the specified amount from the specified account.
//
func (o *Client) GetCryptoTransactionFee(currency string, amount decimal.Decimal, account string) (*CryptoTransactionFee, error) {
	params := url.Values{}

	params.Set("currency", currency)
	params.Set("amount", amount.String())
	params.Set("account", account)

	resp, err := o.privateRequest("payment/payout/fee/crypto", params, http.MethodGet)
	if err != nil {
		return nil, err
	}

	fee := &CryptoTransactionFee{}

	if err := resp.decode(fee); err != nil {
		return nil, err
	}

	return fee, nil
}

//
// GetCryptoCurrencyDepositAddress retrieves (creating, if necessary) the deposit address for the
// specified cryptocurrency.
//
func (o *Client) GetCryptoCurrencyDepositAddress(currency string) (string, error) {
	params := url.Values{}

	params.Set("currency", currency)

	resp, err := o.privateRequest("payment/deposit/crypto/address", params, http.MethodGet)
	if err != nil {
		return "", err
	}

	var envelope struct {
		Address string `json:"address"`
	}

	if err := resp.decode(&envelope); err != nil {
		return "", err
	}

	if envelope.Address == "" {
		return "", newMissingFieldError(apiPath("payment/deposit/crypto/address", false), "address")
	}

	return envelope.Address, nil
}

//
// GetTransactions retrieves the payment transactions of the authenticated user's accounts,
// preserving the order in which the API returned them. The provided parameters (e.g. "account",
// "limit", "offset") are forwarded verbatim and may be nil.
//
func (o *Client) GetTransactions(params url.Values) ([]*Transaction, error) {
	resp, err := o.privateRequest("payment/transactions", params, http.MethodGet)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Transactions []*Transaction `json:"transactions"`
	}

	if err := resp.decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Transactions == nil {
		return nil, newMissingFieldError(apiPath("payment/transactions", false), "transactions")
	}

	return envelope.Transactions, nil
}
