package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/moneta-checkout/internal/application/services"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/metrics"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

type RedirectService interface {
	PostProcessPayment(ctx context.Context, orderID int64) (*domain.RedirectRequest, error)
	RePostProcessPayment(ctx context.Context, orderID int64) (*domain.RedirectRequest, error)
	CanRePostProcessPayment(ctx context.Context, orderID int64) (bool, error)
}

type FeeService interface {
	AdditionalHandlingFee(ctx context.Context, cart domain.Cart) (decimal.Decimal, error)
	HidePaymentMethod(ctx context.Context, cart domain.Cart) bool
}

type PaymentMethodService interface {
	ProcessPayment(ctx context.Context, orderID int64) domain.OperationResult
	Capture(ctx context.Context, paymentID string) domain.OperationResult
	Refund(ctx context.Context, paymentID string, amount decimal.Decimal, partial bool) domain.OperationResult
	Void(ctx context.Context, paymentID string) domain.OperationResult
	ProcessRecurringPayment(ctx context.Context, orderID string) domain.OperationResult
	CancelRecurringPayment(ctx context.Context, orderID string) domain.OperationResult
	Capabilities() []domain.Capability
	PaymentInfo() services.PaymentInfo
}

type SettingsService interface {
	Install(ctx context.Context) (*domain.GatewaySettings, error)
	Uninstall(ctx context.Context) error
	Get(ctx context.Context) (*domain.GatewaySettings, error)
	Update(ctx context.Context, settings domain.GatewaySettings) (*domain.GatewaySettings, error)
}

type Handlers struct {
	redirects RedirectService
	fees      FeeService
	methods   PaymentMethodService
	settings  SettingsService
	metrics   *metrics.Metrics
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewHandlers(
	redirects RedirectService,
	fees FeeService,
	methods PaymentMethodService,
	settings SettingsService,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		redirects: redirects,
		fees:      fees,
		methods:   methods,
		settings:  settings,
		metrics:   m,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/orders/{orderID}/process", h.HandleProcessPayment)
	mux.HandleFunc("POST /api/v1/orders/{orderID}/redirect", h.HandlePostProcessPayment)
	mux.HandleFunc("POST /api/v1/orders/{orderID}/redirect/retry", h.HandleRePostProcessPayment)
	mux.HandleFunc("GET /api/v1/orders/{orderID}/retry-eligibility", h.HandleRetryEligibility)

	mux.HandleFunc("POST /api/v1/fees", h.HandleAdditionalFee)
	mux.HandleFunc("GET /api/v1/capabilities", h.HandleCapabilities)
	mux.HandleFunc("GET /api/v1/payment-info", h.HandlePaymentInfo)

	mux.HandleFunc("POST /api/v1/payments/{paymentID}/capture", h.HandleCapture)
	mux.HandleFunc("POST /api/v1/payments/{paymentID}/refund", h.HandleRefund)
	mux.HandleFunc("POST /api/v1/payments/{paymentID}/void", h.HandleVoid)
	mux.HandleFunc("POST /api/v1/recurring/process", h.HandleProcessRecurring)
	mux.HandleFunc("POST /api/v1/recurring/cancel", h.HandleCancelRecurring)

	mux.HandleFunc("GET /api/v1/settings", h.HandleGetSettings)
	mux.HandleFunc("POST /api/v1/settings", h.HandleInstall)
	mux.HandleFunc("PUT /api/v1/settings", h.HandleUpdateSettings)
	mux.HandleFunc("DELETE /api/v1/settings", h.HandleUninstall)
}
