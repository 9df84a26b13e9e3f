package moneta_test

import (
	"bytes"
	"testing"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/moneta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedirect() *domain.RedirectRequest {
	return &domain.RedirectRequest{
		PaymentURL:    "https://www.payanyway.ru/assistant.htm",
		MntID:         "12345",
		TransactionID: "6f1c2a3e-8d4b-4a5f-9e21-3b7c0d9a1f10",
		CurrencyCode:  "RUB",
		Amount:        "10.00",
		TestMode:      true,
		SubscriberID:  7,
		Signature:     "abc123",
	}
}

func TestRenderForm(t *testing.T) {
	var buf bytes.Buffer

	err := moneta.RenderForm(&buf, testRedirect())

	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, `<form name="PayPoint" method="post" action="https://www.payanyway.ru/assistant.htm">`)
	assert.Contains(t, html, `<input type="hidden" name="MNT_ID" value="12345">`)
	assert.Contains(t, html, `<input type="hidden" name="MNT_AMOUNT" value="10.00">`)
	assert.Contains(t, html, `<input type="hidden" name="MNT_TEST_MODE" value="1">`)
	assert.Contains(t, html, `<input type="hidden" name="MNT_SIGNATURE" value="abc123">`)
}

func TestRenderForm_RequiresPaymentURL(t *testing.T) {
	req := testRedirect()
	req.PaymentURL = ""

	err := moneta.RenderForm(&bytes.Buffer{}, req)

	assert.Error(t, err)
}

func TestFormValues(t *testing.T) {
	values := moneta.FormValues(testRedirect())

	assert.Equal(t, "12345", values.Get(domain.FieldMntID))
	assert.Equal(t, "RUB", values.Get(domain.FieldCurrencyCode))
	assert.Equal(t, "7", values.Get(domain.FieldSubscriberID))
	assert.Len(t, values, 7)
}
