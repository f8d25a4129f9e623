package chargereseller

import (
	"crypto/rand"
	"math/big"
)

const callbackDigits = 15

// Nonce bounds per the reseller protocol: always 13 decimal digits.
const (
	nonceMin = 1_111_111_111_111
	nonceMax = 9_999_999_999_999
)

// GenerateCallbackName generates the JSONP callback token sent with each
// call and later stripped from the response.
// Format: "callback_" followed by 15 random decimal digits.
// Example: callback_072941358207465
func GenerateCallbackName() (string, error) {
	digits, err := randomDigits(callbackDigits)
	if err != nil {
		return "", err
	}
	return "callback_" + digits, nil
}

// generateNonce returns a random 13-digit nonce for a single reseller call.
func generateNonce() (int64, error) {
	span := big.NewInt(nonceMax - nonceMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}
	return n.Int64() + nonceMin, nil
}

// randomDigits returns n uniformly random decimal digits.
func randomDigits(n int) (string, error) {
	ten := big.NewInt(10)
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}
