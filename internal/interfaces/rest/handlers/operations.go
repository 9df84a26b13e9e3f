package handlers

import (
	"net/http"
	"strings"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

const ErrCodeOperationNotSupported = "OPERATION_NOT_SUPPORTED"

// HandleCapture
// @Summary      Capture a payment
// @Description  Not offered by the gateway; always fails with a fixed reason.
// @Tags         operations
// @Produce      json
// @Param        paymentID  path      string            true  "Payment reference"
// @Failure      422        {object}  rest.APIResponse  "Capture method not supported"
// @Router       /api/v1/payments/{paymentID}/capture [post]
func (h *Handlers) HandleCapture(w http.ResponseWriter, r *http.Request) {
	paymentID, err := bindPaymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	h.respondWithResult(w, h.methods.Capture(r.Context(), paymentID))
}

// HandleRefund
// @Summary      Refund a payment
// @Description  Not offered by the gateway; always fails with a fixed reason.
// @Tags         operations
// @Accept       json
// @Produce      json
// @Param        paymentID  path      string            true   "Payment reference"
// @Param        request    body      RefundRequest     false  "Refund details"
// @Failure      422        {object}  rest.APIResponse  "Refund method not supported"
// @Router       /api/v1/payments/{paymentID}/refund [post]
func (h *Handlers) HandleRefund(w http.ResponseWriter, r *http.Request) {
	paymentID, err := bindPaymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req RefundRequest
	if err := h.decodeBody(r, &req, true); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	amount := decimal.Zero
	if req.Amount != "" {
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
			return
		}
	}

	h.respondWithResult(w, h.methods.Refund(r.Context(), paymentID, amount, req.IsPartialRefund))
}

// HandleVoid
// @Summary      Void a payment
// @Description  Not offered by the gateway; always fails with a fixed reason.
// @Tags         operations
// @Produce      json
// @Param        paymentID  path      string            true  "Payment reference"
// @Failure      422        {object}  rest.APIResponse  "Void method not supported"
// @Router       /api/v1/payments/{paymentID}/void [post]
func (h *Handlers) HandleVoid(w http.ResponseWriter, r *http.Request) {
	paymentID, err := bindPaymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	h.respondWithResult(w, h.methods.Void(r.Context(), paymentID))
}

// HandleProcessRecurring
// @Summary      Charge a recurring payment
// @Tags         operations
// @Accept       json
// @Produce      json
// @Param        request  body      RecurringRequest  true  "Recurring order"
// @Failure      422      {object}  rest.APIResponse  "Recurring payment not supported"
// @Router       /api/v1/recurring/process [post]
func (h *Handlers) HandleProcessRecurring(w http.ResponseWriter, r *http.Request) {
	var req RecurringRequest
	if err := h.decodeBody(r, &req, false); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	h.respondWithResult(w, h.methods.ProcessRecurringPayment(r.Context(), req.OrderID))
}

// HandleCancelRecurring
// @Summary      Cancel a recurring payment
// @Tags         operations
// @Accept       json
// @Produce      json
// @Param        request  body      RecurringRequest  true  "Recurring order"
// @Failure      422      {object}  rest.APIResponse  "Recurring payment not supported"
// @Router       /api/v1/recurring/cancel [post]
func (h *Handlers) HandleCancelRecurring(w http.ResponseWriter, r *http.Request) {
	var req RecurringRequest
	if err := h.decodeBody(r, &req, false); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	h.respondWithResult(w, h.methods.CancelRecurringPayment(r.Context(), req.OrderID))
}

func (h *Handlers) respondWithResult(w http.ResponseWriter, result domain.OperationResult) {
	if result.Success() {
		rest.RespondWithJSON(w, http.StatusOK, toOperationResponse(result))
		return
	}

	h.metrics.UnsupportedOperation(string(result.Operation))
	rest.RespondWithFailure(w,
		http.StatusUnprocessableEntity,
		ErrCodeOperationNotSupported,
		strings.Join(result.Errors, "; "),
		toOperationResponse(result),
	)
}
