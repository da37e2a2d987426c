package gocoinex

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// GetParamHmacSHA256Sign computes the lowercase hex HMAC-SHA256 digest of
// params keyed by secretKey.
func GetParamHmacSHA256Sign(secretKey, params string) (string, error) {
	mac := hmac.New(sha256.New, []byte(secretKey))
	if _, err := mac.Write([]byte(params)); err != nil {
		return "", err
	}
	return hex.EncodeToString(mac.Sum(nil)), nil
}
