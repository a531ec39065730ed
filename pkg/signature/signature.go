// Package signature implements the gateway's payment signature scheme:
// hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

type Verifier interface {
	Sign(orderID, paymentID string) string
	Verify(orderID, paymentID, signature string) bool
}

type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Sign(orderID, paymentID string) string {
	return Sign(v.secret, orderID, paymentID)
}

func (v *HMACVerifier) Verify(orderID, paymentID, signature string) bool {
	return Verify(v.secret, orderID, paymentID, signature)
}

func Sign(secret []byte, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature and compares it in constant time. Hex case is ignored.
func Verify(secret []byte, orderID, paymentID, signature string) bool {
	if len(secret) == 0 || signature == "" {
		return false
	}
	got, err := hex.DecodeString(strings.ToLower(signature))
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(Sign(secret, orderID, paymentID))
	return hmac.Equal(got, want)
}
