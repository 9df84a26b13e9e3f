package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/moneta"
	"github.com/DanielPopoola/moneta-checkout/internal/interfaces/rest"
	"github.com/DanielPopoola/moneta-checkout/internal/metrics"
)

// HandleProcessPayment accepts an order for payment
// @Summary      Accept an order for payment
// @Description  The order is left pending until the customer completes the redirect.
// @Tags         operations
// @Produce      json
// @Param        orderID  path      int                true  "Order ID"
// @Success      200      {object}  rest.APIResponse   "Payment pending"
// @Failure      400      {object}  rest.APIResponse   "Invalid order id"
// @Router       /api/v1/orders/{orderID}/process [post]
func (h *Handlers) HandleProcessPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := bindOrderID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result := h.methods.ProcessPayment(r.Context(), orderID)
	rest.RespondWithJSON(w, http.StatusOK, toOperationResponse(result))
}

// HandlePostProcessPayment builds the redirect for a placed order
// @Summary      Build the signed redirect request
// @Description  Returns the gateway fields, or an auto-submitting form when the client accepts text/html.
// @Tags         redirect
// @Produce      json,html
// @Param        orderID  path      int                true  "Order ID"
// @Success      200      {object}  RedirectResponse   "Redirect fields"
// @Failure      404      {object}  rest.APIResponse   "Order not found"
// @Failure      409      {object}  rest.APIResponse   "Order cannot be paid"
// @Failure      503      {object}  rest.APIResponse   "Gateway not configured"
// @Router       /api/v1/orders/{orderID}/redirect [post]
func (h *Handlers) HandlePostProcessPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := bindOrderID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	req, err := h.redirects.PostProcessPayment(r.Context(), orderID)
	if err != nil {
		h.metrics.RedirectFailed(application.ToErrorCode(err))
		rest.WriteError(w, err, h.logger)
		return
	}

	h.metrics.RedirectBuilt(metrics.KindInitial)
	h.respondWithRedirect(w, r, req)
}

// HandleRePostProcessPayment rebuilds the redirect for a retrying customer
// @Summary      Retry payment for an order
// @Description  Allowed once the order is at least five seconds old.
// @Tags         redirect
// @Produce      json,html
// @Param        orderID  path      int                true  "Order ID"
// @Success      200      {object}  RedirectResponse   "Redirect fields"
// @Failure      409      {object}  rest.APIResponse   "Retry not allowed yet"
// @Router       /api/v1/orders/{orderID}/redirect/retry [post]
func (h *Handlers) HandleRePostProcessPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := bindOrderID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	req, err := h.redirects.RePostProcessPayment(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrRetryNotAllowed) {
			h.metrics.RetryRejected()
		} else {
			h.metrics.RedirectFailed(application.ToErrorCode(err))
		}
		rest.WriteError(w, err, h.logger)
		return
	}

	h.metrics.RedirectBuilt(metrics.KindRetry)
	h.respondWithRedirect(w, r, req)
}

// HandleRetryEligibility reports whether the customer may retry payment
// @Summary      Retry eligibility
// @Tags         policy
// @Produce      json
// @Param        orderID  path      int                        true  "Order ID"
// @Success      200      {object}  RetryEligibilityResponse
// @Failure      404      {object}  rest.APIResponse           "Order not found"
// @Router       /api/v1/orders/{orderID}/retry-eligibility [get]
func (h *Handlers) HandleRetryEligibility(w http.ResponseWriter, r *http.Request) {
	orderID, err := bindOrderID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	ok, err := h.redirects.CanRePostProcessPayment(r.Context(), orderID)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondWithJSON(w, http.StatusOK, RetryEligibilityResponse{
		OrderID:            orderID,
		CanRetry:           ok,
		GracePeriodSeconds: domain.RetryGracePeriod.Seconds(),
	})
}

func (h *Handlers) respondWithRedirect(w http.ResponseWriter, r *http.Request, req *domain.RedirectRequest) {
	if !strings.Contains(r.Header.Get("Accept"), "text/html") {
		rest.RespondWithJSON(w, http.StatusOK, toRedirectResponse(req))
		return
	}

	var page bytes.Buffer
	if err := moneta.RenderForm(&page, req); err != nil {
		rest.WriteError(w, application.NewInternalError(err), h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Bytes())
}
