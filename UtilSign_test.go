package gocoinex

import (
	"testing"
)

func TestGetParamHmacSHA256Sign(t *testing.T) {
	// rfc 4231 style vector, verifiable with openssl dgst -sha256 -hmac
	sign, err := GetParamHmacSHA256Sign(
		"key",
		"The quick brown fox jumps over the lazy dog",
	)
	if err != nil {
		t.Fatal(err)
	}
	if sign != "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8" {
		t.Errorf("unexpected signature: %s", sign)
	}
}
