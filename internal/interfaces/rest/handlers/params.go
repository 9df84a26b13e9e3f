package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/oapi-codegen/runtime"
)

var pathParamOptions = runtime.BindStyledParameterOptions{
	ParamLocation: runtime.ParamLocationPath,
	Explode:       false,
	Required:      true,
}

func bindOrderID(r *http.Request) (int64, error) {
	var orderID int64
	err := runtime.BindStyledParameterWithOptions("simple", "orderID", r.PathValue("orderID"), &orderID, pathParamOptions)
	if err != nil {
		return 0, application.NewInvalidInputError(err)
	}
	if orderID <= 0 {
		return 0, application.NewInvalidInputError(fmt.Errorf("orderID must be positive, got %d", orderID))
	}
	return orderID, nil
}

func bindPaymentID(r *http.Request) (string, error) {
	var paymentID string
	err := runtime.BindStyledParameterWithOptions("simple", "paymentID", r.PathValue("paymentID"), &paymentID, pathParamOptions)
	if err != nil {
		return "", application.NewInvalidInputError(err)
	}
	return paymentID, nil
}

// decodeBody reads a JSON body into dst and validates it. An empty body is
// accepted when optional is set.
func (h *Handlers) decodeBody(r *http.Request, dst any, optional bool) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return application.NewInvalidInputError(err)
	}
	if len(body) == 0 {
		if optional {
			return nil
		}
		return application.NewInvalidInputError(errors.New("request body is required"))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return application.NewInvalidInputError(err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}
