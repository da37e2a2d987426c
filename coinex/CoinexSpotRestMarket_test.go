package coinex

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "gocoinex"
)

func TestSpot_GetMarketDepth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v2/spot/depth" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "market=BTCUSDT&limit=10&interval=0" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}

		if accessId := r.Header.Get(COINEX_KEY); accessId != "test-access-id" {
			t.Errorf("unexpected access id header: %s", accessId)
		}
		timestamp := r.Header.Get(COINEX_TIMESTAMP)
		if timestamp == "" {
			t.Error("timestamp header missing")
		}
		expectedSign, _ := signPayload("test-secret-key", r.Method, r.URL.RequestURI(), "", timestamp)
		if sign := r.Header.Get(COINEX_SIGN); sign != expectedSign {
			t.Errorf("signature mismatch: got %s, want %s", sign, expectedSign)
		}

		w.Header().Set("Content-Type", APPLICATION_JSON_UTF8)
		_, _ = w.Write([]byte(`{
			"code": 0,
			"data": {
				"market": "BTCUSDT",
				"is_full": true,
				"depth": {
					"asks": [["68500.00", "0.15"], ["68500.50", "1.20"]],
					"bids": [["68499.50", "0.33"]],
					"last": "68500.00",
					"updated_at": 1716000000000,
					"checksum": 12345
				}
			},
			"message": "OK"
		}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	depth, _, err := client.Spot.GetMarketDepth("BTCUSDT", 10, "0")
	if err != nil {
		t.Fatal(err)
	}

	if depth.Market != "BTCUSDT" {
		t.Errorf("unexpected market: %s", depth.Market)
	}
	if depth.Last != "68500.00" {
		t.Errorf("unexpected last: %s", depth.Last)
	}
	if len(depth.AskList) != 2 || len(depth.BidList) != 1 {
		t.Fatalf("unexpected depth sizes: %d asks, %d bids", len(depth.AskList), len(depth.BidList))
	}
	if depth.AskList[0].Price != "68500.00" || depth.AskList[0].Amount != "0.15" {
		t.Errorf("unexpected first ask: %+v", depth.AskList[0])
	}
	if depth.BidList[0].Price != "68499.50" {
		t.Errorf("unexpected first bid: %+v", depth.BidList[0])
	}
}

func TestSpot_GetMarketDeals(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/spot/deals" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "market=BTCUSDT&limit=2&last_id=0" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", APPLICATION_JSON_UTF8)
		_, _ = w.Write([]byte(`{
			"code": 0,
			"data": [
				{"deal_id": 3514376759, "created_at": 1716000000100, "side": "buy", "price": "68500.00", "amount": "0.01"},
				{"deal_id": 3514376758, "created_at": 1716000000000, "side": "sell", "price": "68499.50", "amount": "0.25"}
			],
			"message": "OK"
		}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	deals, _, err := client.Spot.GetMarketDeals("BTCUSDT", 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(deals) != 2 {
		t.Fatalf("expected 2 deals, got %d", len(deals))
	}
	if deals[0].DealId != 3514376759 || deals[0].Side != "buy" {
		t.Errorf("unexpected first deal: %+v", deals[0])
	}
	if deals[1].Price != "68499.50" {
		t.Errorf("unexpected second deal price: %s", deals[1].Price)
	}
}

func TestSpot_GetMarketStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/spot/market" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// empty market means all markets, so no query at all
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", APPLICATION_JSON_UTF8)
		_, _ = w.Write([]byte(`{
			"code": 0,
			"data": [{
				"market": "BTCUSDT",
				"taker_fee_rate": "0.002",
				"maker_fee_rate": "0.002",
				"min_amount": "0.0001",
				"base_ccy": "BTC",
				"quote_ccy": "USDT",
				"base_ccy_precision": 8,
				"quote_ccy_precision": 2,
				"is_margin_available": true
			}],
			"message": "OK"
		}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	markets, _, err := client.Spot.GetMarketStatus("")
	if err != nil {
		t.Fatal(err)
	}

	if len(markets) != 1 {
		t.Fatalf("expected 1 market, got %d", len(markets))
	}
	if markets[0].BaseCcy != "BTC" || markets[0].QuoteCcy != "USDT" {
		t.Errorf("unexpected market: %+v", markets[0])
	}
	if markets[0].MinAmount != "0.0001" {
		t.Errorf("min amount must stay a string: %v", markets[0].MinAmount)
	}
}

func TestSpot_GetMarketCandlesticks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "market=BTCUSDT&limit=1&period=1min" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", APPLICATION_JSON_UTF8)
		_, _ = w.Write([]byte(`{
			"code": 0,
			"data": [{
				"market": "BTCUSDT",
				"created_at": 1716000000000,
				"open": "68000.00",
				"close": "68500.00",
				"high": "68600.00",
				"low": "67900.00",
				"volume": "12.5",
				"value": "853750.00"
			}],
			"message": "OK"
		}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	klines, _, err := client.Spot.GetMarketCandlesticks("BTCUSDT", 1, KLINE_PERIOD_1MIN)
	if err != nil {
		t.Fatal(err)
	}

	if len(klines) != 1 {
		t.Fatalf("expected 1 kline, got %d", len(klines))
	}
	if klines[0].Open != "68000.00" || klines[0].Close != "68500.00" {
		t.Errorf("unexpected kline: %+v", klines[0])
	}
}

func TestSpot_GetMarketIndex(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/spot/index" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "market=BTCUSDT" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", APPLICATION_JSON_UTF8)
		_, _ = w.Write([]byte(`{
			"code": 0,
			"data": [{"market": "BTCUSDT", "created_at": 1716000000000, "price": "68512.34"}],
			"message": "OK"
		}`))
	}))
	defer ts.Close()

	client := New(newTestConfig(ts.URL))
	records, _, err := client.Spot.GetMarketIndex("BTCUSDT")
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 || records[0].Price != "68512.34" {
		t.Errorf("unexpected index records: %+v", records)
	}
}
