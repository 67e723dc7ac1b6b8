package tapsilat

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const signaturePrefix = "sha256="

// SignWebhook returns "sha256=" followed by the hex HMAC-SHA256 of payload.
func SignWebhook(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhook reports whether signature matches SignWebhook(payload, secret).
// The comparison is constant-time. No network call is made.
func VerifyWebhook(payload []byte, signature, secret string) bool {
	return hmac.Equal([]byte(signature), []byte(SignWebhook(payload, secret)))
}
