package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	signature := sign("order_123", "pay_456", secret)

	assert.True(t, VerifySignature("order_123", "pay_456", signature, secret))
}

func TestVerifySignatureMismatch(t *testing.T) {
	secret := "test_secret"
	signature := sign("order_123", "pay_456", secret)

	assert.False(t, VerifySignature("order_123", "pay_456", signature, "other_secret"))
	assert.False(t, VerifySignature("order_999", "pay_456", signature, secret), "signature bound to a different order")
	assert.False(t, VerifySignature("order_123", "pay_999", signature, secret), "signature bound to a different payment")
	assert.False(t, VerifySignature("order_123", "pay_456", "deadbeef", secret))
	assert.False(t, VerifySignature("order_123", "pay_456", "", secret))
}
