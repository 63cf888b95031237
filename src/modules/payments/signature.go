package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks the gateway's payment confirmation: the signature
// must be the hex HMAC-SHA256 of "orderID|paymentID" under the key secret.
// A nominally successful charge with a bad signature is a verification
// failure, which is reported separately from a gateway decline.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
