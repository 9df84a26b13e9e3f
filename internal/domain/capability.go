package domain

// Operation identifies a payment method operation
type Operation string

const (
	OperationProcessPayment         Operation = "PROCESS_PAYMENT"
	OperationPostProcessPayment     Operation = "POST_PROCESS_PAYMENT"
	OperationCapture                Operation = "CAPTURE"
	OperationRefund                 Operation = "REFUND"
	OperationPartialRefund          Operation = "PARTIAL_REFUND"
	OperationVoid                   Operation = "VOID"
	OperationRecurringPayment       Operation = "RECURRING_PAYMENT"
	OperationCancelRecurringPayment Operation = "CANCEL_RECURRING_PAYMENT"
	OperationSkipPaymentInfo        Operation = "SKIP_PAYMENT_INFO"
)

// Reasons reported by operations the gateway integration does not offer
const (
	ReasonCaptureNotSupported   = "Capture method not supported"
	ReasonRefundNotSupported    = "Refund method not supported"
	ReasonVoidNotSupported      = "Void method not supported"
	ReasonRecurringNotSupported = "Recurring payment not supported"
)

// PaymentMethodType tells the checkout how the customer pays
type PaymentMethodType string

const PaymentMethodRedirection PaymentMethodType = "REDIRECTION"

// RecurringPaymentType tells the checkout whether recurring orders can use the method
type RecurringPaymentType string

const RecurringNotSupported RecurringPaymentType = "NOT_SUPPORTED"

// RedirectionTip is shown on the payment info page
const RedirectionTip = "For payment you will be redirected to the website MONETA.RU"

// Capability is a row of the capability table
type Capability struct {
	Operation Operation
	Supported bool
	Reason    string
}

var capabilities = []Capability{
	{Operation: OperationProcessPayment, Supported: true},
	{Operation: OperationPostProcessPayment, Supported: true},
	{Operation: OperationCapture, Reason: ReasonCaptureNotSupported},
	{Operation: OperationRefund, Reason: ReasonRefundNotSupported},
	{Operation: OperationPartialRefund, Reason: ReasonRefundNotSupported},
	{Operation: OperationVoid, Reason: ReasonVoidNotSupported},
	{Operation: OperationRecurringPayment, Reason: ReasonRecurringNotSupported},
	{Operation: OperationCancelRecurringPayment, Reason: ReasonRecurringNotSupported},
	{Operation: OperationSkipPaymentInfo},
}

// Capabilities returns a copy of the static capability table
func Capabilities() []Capability {
	out := make([]Capability, len(capabilities))
	copy(out, capabilities)
	return out
}

// Supports reports whether op is offered by the payment method
func Supports(op Operation) bool {
	for _, c := range capabilities {
		if c.Operation == op {
			return c.Supported
		}
	}
	return false
}

// OperationResult is returned by payment method operations. A failed result
// carries the human readable reasons instead of an error.
type OperationResult struct {
	Operation        Operation
	NewPaymentStatus PaymentStatus
	Errors           []string
}

func (r OperationResult) Success() bool {
	return len(r.Errors) == 0
}

func (r *OperationResult) AddError(reason string) {
	r.Errors = append(r.Errors, reason)
}

// Unsupported builds the fixed failure result for op
func Unsupported(op Operation) OperationResult {
	result := OperationResult{Operation: op}
	for _, c := range capabilities {
		if c.Operation == op && c.Reason != "" {
			result.AddError(c.Reason)
			return result
		}
	}
	result.AddError(string(op) + " not supported")
	return result
}

// ProcessPayment accepts the order and leaves it pending until the customer
// completes the redirect.
func ProcessPayment() OperationResult {
	return OperationResult{
		Operation:        OperationProcessPayment,
		NewPaymentStatus: StatusPending,
	}
}
