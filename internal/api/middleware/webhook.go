package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/nestera/savings-api/internal/api/metrics"
	"github.com/nestera/savings-api/internal/core/domain"
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the raw request
// body, computed by the gateway with the shared webhook secret.
const SignatureHeader = "X-Gateway-Signature"

// VerifySignature authenticates gateway callbacks. The MAC is computed
// over the exact body bytes as received, before any parsing, so there is
// no canonicalization to disagree about. The comparison is constant-time
// and the expected signature is never echoed back.
func VerifySignature(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(SignatureHeader)
			if provided == "" {
				metrics.WebhookVerificationsTotal.WithLabelValues("missing_signature").Inc()
				return domain.ErrMissingSignature
			}

			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return err
			}
			// Hand the body back to the handler's bind step.
			c.Request().Body = io.NopCloser(bytes.NewReader(body))

			decoded, err := hex.DecodeString(provided)
			if err != nil {
				metrics.WebhookVerificationsTotal.WithLabelValues("invalid_signature").Inc()
				return domain.ErrInvalidSignature
			}

			mac := hmac.New(sha256.New, key)
			mac.Write(body)
			if !hmac.Equal(mac.Sum(nil), decoded) {
				metrics.WebhookVerificationsTotal.WithLabelValues("invalid_signature").Inc()
				return domain.ErrInvalidSignature
			}

			metrics.WebhookVerificationsTotal.WithLabelValues("ok").Inc()
			return next(c)
		}
	}
}
