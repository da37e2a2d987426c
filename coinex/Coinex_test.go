package coinex

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "gocoinex"
)

func newTestConfig(endpoint string) *APIConfig {
	return &APIConfig{
		HttpClient: &http.Client{Timeout: 5 * time.Second},
		Endpoint:   endpoint,
		AccessId:   "test-access-id",
		SecretKey:  "test-secret-key",
		Location:   time.UTC,
	}
}

func TestCoinex_SignDeterminism(t *testing.T) {
	requestPath := "/v2/spot/depth?market=BTCUSDT&limit=10&interval=0"

	first, err := signPayload("secret", "GET", requestPath, "", "1700000000000")
	if err != nil {
		t.Fatal(err)
	}
	second, err := signPayload("secret", "GET", requestPath, "", "1700000000000")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("signature not deterministic: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}
	for _, c := range first {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Errorf("signature is not lowercase hex: %s", first)
			break
		}
	}
}

func TestCoinex_SignSensitivity(t *testing.T) {
	base := [5]string{"GET", "/v2/spot/depth?market=BTCUSDT&limit=10&interval=0", "", "1700000000000", "secret"}
	variants := [][5]string{
		base,
		{"POST", base[1], base[2], base[3], base[4]},
		{base[0], "/v2/spot/deals?market=BTCUSDT&limit=10&interval=0", base[2], base[3], base[4]},
		// same parameters, different order
		{base[0], "/v2/spot/depth?limit=10&market=BTCUSDT&interval=0", base[2], base[3], base[4]},
		{base[0], base[1], `{"market":"BTCUSDT"}`, base[3], base[4]},
		{base[0], base[1], base[2], "1700000000001", base[4]},
		{base[0], base[1], base[2], base[3], "another-secret"},
	}

	seen := map[string]int{}
	for i, v := range variants {
		sign, err := signPayload(v[4], v[0], v[1], v[2], v[3])
		if err != nil {
			t.Fatal(err)
		}
		if prev, exist := seen[sign]; exist {
			t.Errorf("variant %d collides with variant %d", i, prev)
		}
		seen[sign] = i
	}
}

func TestCoinex_EmptySecretKey(t *testing.T) {
	hit := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		_, _ = w.Write([]byte(`{"code":0,"data":[],"message":"OK"}`))
	}))
	defer ts.Close()

	config := newTestConfig(ts.URL)
	config.SecretKey = ""
	client := New(config)

	if _, _, err := client.Spot.GetBalance(); err == nil {
		t.Fatal("expected an error with an empty secret key")
	} else if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("expected *ConfigurationError, got %T: %s", err, err.Error())
	}

	if _, _, err := client.Future.GetBalance(); err == nil {
		t.Fatal("expected an error with an empty secret key")
	} else if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("expected *ConfigurationError, got %T: %s", err, err.Error())
	}

	if hit {
		t.Error("request must not reach the network with empty credentials")
	}
}

func TestCoinex_ExchangeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", APPLICATION_JSON_UTF8)
		_, _ = w.Write([]byte(`{"code":3008,"data":{},"message":"Service busy, please try again later."}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	_, _, err := client.Spot.GetBalance()
	if err == nil {
		t.Fatal("expected an exchange error")
	}

	exErr, ok := err.(*ExchangeError)
	if !ok {
		t.Fatalf("expected *ExchangeError, got %T: %s", err, err.Error())
	}
	if exErr.Code() != 3008 {
		t.Errorf("expected code 3008, got %d", exErr.Code())
	}
	if exErr.Error() != "Service busy, please try again later." {
		t.Errorf("message not preserved verbatim: %q", exErr.Error())
	}
}

func TestCoinex_ExchangeErrorOnNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":4001,"data":{},"message":"Signature error"}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	_, _, err := client.Spot.GetBalance()

	exErr, ok := err.(*ExchangeError)
	if !ok {
		t.Fatalf("expected *ExchangeError, got %T: %v", err, err)
	}
	if exErr.Code() != 4001 {
		t.Errorf("expected code 4001, got %d", exErr.Code())
	}
}

func TestCoinex_AcceptsNon200Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", APPLICATION_JSON_UTF8)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"code":0,"data":[{"ccy":"USDT","available":"12.5","frozen":"0"}],"message":"OK"}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	balances, _, err := client.Spot.GetBalance()
	if err != nil {
		t.Fatalf("2xx with a clean envelope must succeed, got %T: %v", err, err)
	}
	if len(balances) != 1 || balances[0].Available != "12.5" {
		t.Errorf("unexpected balances: %+v", balances)
	}
}

func TestCoinex_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	_, _, err := client.Spot.GetBalance()
	if err == nil {
		t.Fatal("expected a transport error")
	}

	trErr, ok := err.(*TransportError)
	if !ok {
		t.Fatalf("expected *TransportError, got %T: %s", err, err.Error())
	}
	if trErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", trErr.StatusCode)
	}
}
