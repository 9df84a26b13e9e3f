package handlers

import (
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/moneta"
)

type RedirectResponse struct {
	PaymentURL string            `json:"payment_url" example:"https://www.payanyway.ru/assistant.htm"`
	Fields     map[string]string `json:"fields"`
	FormBody   string            `json:"form_body" example:"MNT_AMOUNT=250.00&MNT_CURRENCY_CODE=USD"`
}

func toRedirectResponse(req *domain.RedirectRequest) RedirectResponse {
	values := moneta.FormValues(req)
	fields := make(map[string]string, len(values))
	for name := range values {
		fields[name] = values.Get(name)
	}
	return RedirectResponse{
		PaymentURL: req.PaymentURL,
		Fields:     fields,
		FormBody:   values.Encode(),
	}
}

type RetryEligibilityResponse struct {
	OrderID            int64   `json:"order_id"`
	CanRetry           bool    `json:"can_retry"`
	GracePeriodSeconds float64 `json:"grace_period_seconds"`
}

type CartItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required" example:"101"`
	Quantity  int    `json:"quantity" validate:"gte=0" example:"2"`
	UnitPrice string `json:"unit_price" validate:"required,numeric" example:"19.99"`
}

type FeeRequest struct {
	Items []CartItemRequest `json:"items" validate:"dive"`
}

type FeeResponse struct {
	Fee               string `json:"fee" example:"0.0075"`
	HidePaymentMethod bool   `json:"hide_payment_method"`
}

type CapabilityResponse struct {
	Operation domain.Operation `json:"operation"`
	Supported bool             `json:"supported"`
	Reason    string           `json:"reason,omitempty"`
}

type CapabilitiesResponse struct {
	PaymentMethodType    domain.PaymentMethodType    `json:"payment_method_type"`
	RecurringPaymentType domain.RecurringPaymentType `json:"recurring_payment_type"`
	SkipPaymentInfo      bool                        `json:"skip_payment_info"`
	Operations           []CapabilityResponse        `json:"operations"`
}

type PaymentInfoResponse struct {
	PaymentMethodType domain.PaymentMethodType `json:"payment_method_type"`
	SkipPaymentInfo   bool                     `json:"skip_payment_info"`
	HidePaymentMethod bool                     `json:"hide_payment_method"`
	RedirectionTip    string                   `json:"redirection_tip"`
}

type OperationResponse struct {
	Operation        domain.Operation     `json:"operation"`
	Success          bool                 `json:"success"`
	NewPaymentStatus domain.PaymentStatus `json:"new_payment_status,omitempty"`
	Errors           []string             `json:"errors,omitempty"`
}

func toOperationResponse(r domain.OperationResult) OperationResponse {
	return OperationResponse{
		Operation:        r.Operation,
		Success:          r.Success(),
		NewPaymentStatus: r.NewPaymentStatus,
		Errors:           r.Errors,
	}
}

type RefundRequest struct {
	Amount          string `json:"amount" validate:"omitempty,numeric" example:"10.00"`
	IsPartialRefund bool   `json:"is_partial_refund"`
}

type RecurringRequest struct {
	OrderID string `json:"order_id" validate:"required" example:"1001"`
}

type SettingsRequest struct {
	MntID                   string `json:"mnt_id" validate:"required" example:"12345678"`
	Hashcode                string `json:"hashcode"`
	TestMode                bool   `json:"test_mode"`
	AdditionalFee           string `json:"additional_fee" validate:"omitempty,numeric" example:"2.5"`
	AdditionalFeePercentage bool   `json:"additional_fee_percentage"`
	PaymentURL              string `json:"payment_url" validate:"required,url" example:"https://www.payanyway.ru/assistant.htm"`
	SignatureScheme         string `json:"signature_scheme" validate:"omitempty,oneof=md5 hmac-sha256" example:"md5"`
}

// SettingsResponse never carries the hashcode itself
type SettingsResponse struct {
	MntID                   string `json:"mnt_id"`
	TestMode                bool   `json:"test_mode"`
	HashcodeSet             bool   `json:"hashcode_set"`
	AdditionalFee           string `json:"additional_fee"`
	AdditionalFeePercentage bool   `json:"additional_fee_percentage"`
	PaymentURL              string `json:"payment_url"`
	SignatureScheme         string `json:"signature_scheme"`
}

func toSettingsResponse(s *domain.GatewaySettings) SettingsResponse {
	return SettingsResponse{
		MntID:                   s.MntID,
		TestMode:                s.TestMode,
		HashcodeSet:             s.Hashcode != "",
		AdditionalFee:           s.AdditionalFee.String(),
		AdditionalFeePercentage: s.AdditionalFeePercentage,
		PaymentURL:              s.PaymentURL,
		SignatureScheme:         string(s.SignatureScheme),
	}
}
