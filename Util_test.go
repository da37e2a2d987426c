package gocoinex

import (
	"strings"
	"testing"
)

func TestParams_Encode(t *testing.T) {
	params := NewParams().
		Set("market", "BTCUSDT").
		SetInt("limit", 10).
		Set("interval", "0")

	// keys keep their insertion order, never sorted
	if encoded := params.Encode(); encoded != "market=BTCUSDT&limit=10&interval=0" {
		t.Errorf("unexpected encoding: %s", encoded)
	}

	escaped := NewParams().Set("order_ids", "13400,13401").Encode()
	if escaped != "order_ids=13400%2C13401" {
		t.Errorf("unexpected escaping: %s", escaped)
	}

	if !NewParams().IsEmpty() {
		t.Error("new params must be empty")
	}
	if NewParams().Set("a", "1").IsEmpty() {
		t.Error("params with one entry must not be empty")
	}
}

func TestCheckPositiveDecimal(t *testing.T) {
	var cases = []struct {
		value string
		valid bool
	}{
		{"10.5", true},
		{"0.0001", true},
		{"0", false},
		{"-1", false},
		{"1,5", false},
		{"", false},
		{"abc", false},
	}

	for _, c := range cases {
		err := CheckPositiveDecimal("amount", c.value)
		if c.valid && err != nil {
			t.Errorf("value %q: unexpected error %v", c.value, err)
		}
		if !c.valid && err == nil {
			t.Errorf("value %q: expected an error", c.value)
		}
	}

	// empty passes for optional fields
	if err := CheckDecimal("price", ""); err != nil {
		t.Errorf("unexpected error for empty optional field: %v", err)
	}
	if err := CheckDecimal("price", "not-a-number"); err == nil {
		t.Error("expected an error for a malformed decimal")
	}
}

func TestUUID(t *testing.T) {
	id := UUID()
	if len(id) != 32 {
		t.Errorf("unexpected length %d: %s", len(id), id)
	}
	if strings.Contains(id, "-") {
		t.Errorf("dashes must be stripped: %s", id)
	}
	if UUID() == id {
		t.Error("two ids must differ")
	}
}
