package handlers

import (
	"net/http"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

// HandleGetSettings
// @Summary      Current gateway settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  SettingsResponse
// @Failure      503  {object}  rest.APIResponse  "Payment method not installed"
// @Router       /api/v1/settings [get]
func (h *Handlers) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.RespondWithJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// HandleInstall
// @Summary      Install the payment method
// @Description  Saves the default settings; installing twice keeps the existing ones.
// @Tags         settings
// @Produce      json
// @Success      201  {object}  SettingsResponse
// @Router       /api/v1/settings [post]
func (h *Handlers) HandleInstall(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Install(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.RespondWithJSON(w, http.StatusCreated, toSettingsResponse(settings))
}

// HandleUpdateSettings
// @Summary      Update the gateway settings
// @Description  An empty hashcode keeps the stored one.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      SettingsRequest   true  "Settings"
// @Success      200      {object}  SettingsResponse
// @Failure      400      {object}  rest.APIResponse  "Invalid settings"
// @Router       /api/v1/settings [put]
func (h *Handlers) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := h.decodeBody(r, &req, false); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	fee := decimal.Zero
	if req.AdditionalFee != "" {
		var err error
		fee, err = decimal.NewFromString(req.AdditionalFee)
		if err != nil {
			rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
			return
		}
	}

	settings, err := h.settings.Update(r.Context(), domain.GatewaySettings{
		MntID:                   req.MntID,
		TestMode:                req.TestMode,
		Hashcode:                req.Hashcode,
		AdditionalFee:           fee,
		AdditionalFeePercentage: req.AdditionalFeePercentage,
		PaymentURL:              req.PaymentURL,
		SignatureScheme:         domain.SignatureScheme(req.SignatureScheme),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.RespondWithJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// HandleUninstall
// @Summary      Uninstall the payment method
// @Tags         settings
// @Success      204
// @Router       /api/v1/settings [delete]
func (h *Handlers) HandleUninstall(w http.ResponseWriter, r *http.Request) {
	if err := h.settings.Uninstall(r.Context()); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
