// Package moneta adapts redirect requests to the MONETA.RU Assistant protocol.
//
// MNT_SIGNATURE is computed over the concatenation, in this order and without
// separators, of MNT_ID, MNT_TRANSACTION_ID, MNT_AMOUNT, MNT_CURRENCY_CODE,
// MNT_SUBSCRIBER_ID and MNT_TEST_MODE ("1" or "0").
//
//	md5:         hex(MD5(fields + hashcode))
//	hmac-sha256: hex(HMAC-SHA256(key=hashcode, fields))
package moneta

import (
	"fmt"
	"strings"

	"gitee.com/golang-module/dongle"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
)

// MD5Signer implements the integrity code published by the gateway
type MD5Signer struct{}

func (MD5Signer) Sign(fields domain.SignatureFields, secret string) (string, error) {
	enc := dongle.Encrypt.FromString(signingString(fields) + secret).ByMd5()
	if enc.Error != nil {
		return "", fmt.Errorf("md5 signature: %w", enc.Error)
	}
	return enc.ToHexString(), nil
}

// HMACSigner keys the digest with the hashcode instead of appending it
type HMACSigner struct{}

func (HMACSigner) Sign(fields domain.SignatureFields, secret string) (string, error) {
	enc := dongle.Encrypt.FromString(signingString(fields)).ByHmacSha256(secret)
	if enc.Error != nil {
		return "", fmt.Errorf("hmac-sha256 signature: %w", enc.Error)
	}
	return enc.ToHexString(), nil
}

// NewSigner returns the signer for a configured scheme. An empty scheme means md5.
func NewSigner(scheme domain.SignatureScheme) (domain.Signer, error) {
	switch domain.SignatureScheme(strings.ToLower(string(scheme))) {
	case "", domain.SchemeMD5:
		return MD5Signer{}, nil
	case domain.SchemeHMACSHA256:
		return HMACSigner{}, nil
	}
	return nil, domain.NewUnsupportedSignatureSchemeError(string(scheme))
}

func signingString(f domain.SignatureFields) string {
	var b strings.Builder
	b.WriteString(f.MntID)
	b.WriteString(f.TransactionID)
	b.WriteString(f.Amount)
	b.WriteString(f.CurrencyCode)
	b.WriteString(f.SubscriberID)
	b.WriteString(f.TestMode)
	return b.String()
}
