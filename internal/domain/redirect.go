package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Redirect form field names published by the gateway
const (
	FieldMntID         = "MNT_ID"
	FieldTransactionID = "MNT_TRANSACTION_ID"
	FieldCurrencyCode  = "MNT_CURRENCY_CODE"
	FieldAmount        = "MNT_AMOUNT"
	FieldTestMode      = "MNT_TEST_MODE"
	FieldSubscriberID  = "MNT_SUBSCRIBER_ID"
	FieldSignature     = "MNT_SIGNATURE"
)

// RedirectRequest is the signed field set for one redirect submission.
// It is rebuilt for every attempt and never stored.
type RedirectRequest struct {
	PaymentURL    string
	MntID         string
	TransactionID string
	CurrencyCode  string
	Amount        string
	TestMode      bool
	SubscriberID  int64
	Signature     string
}

// SignatureFields are the redirect values covered by the signature, in signing order
type SignatureFields struct {
	MntID         string
	TransactionID string
	Amount        string
	CurrencyCode  string
	SubscriberID  string
	TestMode      string
}

// Signer computes MNT_SIGNATURE for a set of fields and the merchant secret
type Signer interface {
	Sign(fields SignatureFields, secret string) (string, error)
}

// Field is one key/value pair of the redirect form
type Field struct {
	Name  string
	Value string
}

// TestModeFlag renders the test mode indicator as the gateway expects it
func TestModeFlag(testMode bool) string {
	if testMode {
		return "1"
	}
	return "0"
}

// Fields returns the form fields in submission order
func (r *RedirectRequest) Fields() []Field {
	return []Field{
		{Name: FieldMntID, Value: r.MntID},
		{Name: FieldTransactionID, Value: r.TransactionID},
		{Name: FieldCurrencyCode, Value: r.CurrencyCode},
		{Name: FieldAmount, Value: r.Amount},
		{Name: FieldTestMode, Value: TestModeFlag(r.TestMode)},
		{Name: FieldSubscriberID, Value: strconv.FormatInt(r.SubscriberID, 10)},
		{Name: FieldSignature, Value: r.Signature},
	}
}

// BuildRedirectRequest produces the signed redirect fields for an order.
// It only reads its inputs, so repeated calls with the same order, settings and
// currency yield identical requests.
func BuildRedirectRequest(order *Order, settings GatewaySettings, currencyCode string, signer Signer) (*RedirectRequest, error) {
	if order == nil {
		return nil, NewInvalidOrderStateError("order is missing")
	}
	if order.OrderGUID == uuid.Nil {
		return nil, NewInvalidOrderStateError("order has no correlation token")
	}
	if !order.Total.IsPositive() {
		return nil, NewInvalidOrderStateError("order total must be positive")
	}
	if err := settings.ValidateCredentials(); err != nil {
		return nil, err
	}
	currencyCode = strings.TrimSpace(currencyCode)
	if currencyCode == "" {
		return nil, &DomainError{
			Code:    ErrCodeCurrencyResolution,
			Message: "currency code is empty",
			Err:     ErrCurrencyResolution,
		}
	}

	req := &RedirectRequest{
		PaymentURL:    settings.PaymentURL,
		MntID:         strings.TrimSpace(settings.MntID),
		TransactionID: order.TransactionID(),
		CurrencyCode:  currencyCode,
		Amount:        FormatAmount(order.Total),
		TestMode:      settings.TestMode,
		SubscriberID:  order.CustomerID,
	}

	signature, err := signer.Sign(SignatureFields{
		MntID:         req.MntID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
		SubscriberID:  strconv.FormatInt(req.SubscriberID, 10),
		TestMode:      TestModeFlag(req.TestMode),
	}, settings.Hashcode)
	if err != nil {
		return nil, err
	}
	req.Signature = signature

	return req, nil
}
