package globitex

import (
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

//
// EuroAccount represents the status of a single euro-wallet IBAN account held with the exchange.
//
type EuroAccount struct {
	IBAN    string          `json:"iban"`
	Status  string          `json:"status"`
	Balance decimal.Decimal `json:"balance"`
}

//
// EuroPayment represents a single payment that has passed through a euro-wallet account.
//
type EuroPayment struct {
	PaymentID       string          `json:"paymentId"`
	Date            int64           `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Direction       string          `json:"direction"`
	Account         string          `json:"account"`
	BeneficiaryName string          `json:"beneficiaryName"`
	BeneficiaryIBAN string          `json:"beneficiaryAccount"`
	Details         string          `json:"details"`
	Status          string          `json:"status"`
}

//
// EuroPaymentHistory represents a euro-wallet account statement: the balance and turnover of the
// requested period together with the payments that moved it.
//
type EuroPaymentHistory struct {
	DebitTurnover  decimal.Decimal `json:"debitTurnover"`
	CreditTurnover decimal.Decimal `json:"creditTurnover"`
	BalanceStart   decimal.Decimal `json:"balanceStart"`
	BalanceEnd     decimal.Decimal `json:"balanceEnd"`
	DateFrom       int64           `json:"dateFrom"`
	DateTill       int64           `json:"dateTill"`
	Payments       []*EuroPayment  `json:"payments"`
}

//
// GetEuroAccountStatus retrieves the status of every euro-wallet account that belongs to the
// authenticated user.
//
func (o *Client) GetEuroAccountStatus() ([]*EuroAccount, error) {
	resp, err := o.privateRequest("eurowallet/status", nil, http.MethodGet)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Accounts []*EuroAccount `json:"accounts"`
	}

	if err := resp.decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Accounts == nil {
		return nil, newMissingFieldError(apiPath("eurowallet/status", false), "accounts")
	}

	return envelope.Accounts, nil
}

//
// GetEuroPaymentHistory retrieves a euro-wallet account statement. The provided parameters (e.g.
// "account", "fromDate", "tillDate") are forwarded verbatim and may be nil.
//
func (o *Client) GetEuroPaymentHistory(params url.Values) (*EuroPaymentHistory, error) {
	resp, err := o.privateRequest("eurowallet/payments/history", params, http.MethodGet)
	if err != nil {
		return nil, err
	}

	history := &EuroPaymentHistory{}

	if err := resp.decode(history); err != nil {
		return nil, err
	}

	return history, nil
}
