package moneta

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
)

// FormName is the name of the auto-submitted checkout form
const FormName = "PayPoint"

var formTemplate = template.Must(template.New(FormName).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.forms['{{.Name}}'].submit()">
<form name="{{.Name}}" method="post" action="{{.Action}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

type formData struct {
	Name   string
	Action string
	Fields []domain.Field
}

// RenderForm writes an HTML page that posts the redirect fields to the gateway
// as soon as the browser loads it.
func RenderForm(w io.Writer, req *domain.RedirectRequest) error {
	if req.PaymentURL == "" {
		return errors.New("payment url is not configured")
	}
	action, err := url.Parse(req.PaymentURL)
	if err != nil {
		return fmt.Errorf("parse payment url: %w", err)
	}

	return formTemplate.Execute(w, formData{
		Name:   FormName,
		Action: action.String(),
		Fields: req.Fields(),
	})
}

// FormValues returns the redirect fields as a urlencoded form body
func FormValues(req *domain.RedirectRequest) url.Values {
	values := url.Values{}
	for _, f := range req.Fields() {
		values.Set(f.Name, f.Value)
	}
	return values
}
