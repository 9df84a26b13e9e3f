package handlers

import (
	"net/http"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

// HandleAdditionalFee computes the handling fee for a cart
// @Summary      Additional handling fee
// @Description  Fixed fee, or a percentage of the cart subtotal when configured so. The fee is not rounded.
// @Tags         policy
// @Accept       json
// @Produce      json
// @Param        request  body      FeeRequest         true  "Cart lines"
// @Success      200      {object}  FeeResponse
// @Failure      400      {object}  rest.APIResponse   "Invalid cart"
// @Router       /api/v1/fees [post]
func (h *Handlers) HandleAdditionalFee(w http.ResponseWriter, r *http.Request) {
	var req FeeRequest
	if err := h.decodeBody(r, &req, false); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	cart := make(domain.Cart, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
			return
		}
		cart = append(cart, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}

	fee, err := h.fees.AdditionalHandlingFee(r.Context(), cart)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondWithJSON(w, http.StatusOK, FeeResponse{
		Fee:               fee.String(),
		HidePaymentMethod: h.fees.HidePaymentMethod(r.Context(), cart),
	})
}

// HandleCapabilities lists supported and unsupported operations
// @Summary      Capability table
// @Tags         policy
// @Produce      json
// @Success      200  {object}  CapabilitiesResponse
// @Router       /api/v1/capabilities [get]
func (h *Handlers) HandleCapabilities(w http.ResponseWriter, r *http.Request) {
	info := h.methods.PaymentInfo()
	caps := h.methods.Capabilities()

	ops := make([]CapabilityResponse, 0, len(caps))
	for _, c := range caps {
		ops = append(ops, CapabilityResponse{
			Operation: c.Operation,
			Supported: c.Supported,
			Reason:    c.Reason,
		})
	}

	rest.RespondWithJSON(w, http.StatusOK, CapabilitiesResponse{
		PaymentMethodType:    info.PaymentMethodType,
		RecurringPaymentType: info.RecurringPaymentType,
		SkipPaymentInfo:      info.SkipPaymentInfo,
		Operations:           ops,
	})
}

// HandlePaymentInfo describes how checkout presents the method
// @Summary      Payment info
// @Tags         policy
// @Produce      json
// @Success      200  {object}  PaymentInfoResponse
// @Router       /api/v1/payment-info [get]
func (h *Handlers) HandlePaymentInfo(w http.ResponseWriter, r *http.Request) {
	info := h.methods.PaymentInfo()

	rest.RespondWithJSON(w, http.StatusOK, PaymentInfoResponse{
		PaymentMethodType: info.PaymentMethodType,
		SkipPaymentInfo:   info.SkipPaymentInfo,
		HidePaymentMethod: h.fees.HidePaymentMethod(r.Context(), nil),
		RedirectionTip:    info.RedirectionTip,
	})
}
