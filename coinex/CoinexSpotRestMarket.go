package coinex

import (
	"time"

	. "gocoinex"
)

type Spot struct {
	*Coinex
}

func (spot *Spot) GetMarketDepth(market string, limit int, interval string) (*Depth, []byte, error) {
	params := NewParams().
		Set("market", market).
		SetInt("limit", int64(limit)).
		Set("interval", interval)

	response := struct {
		Market string `json:"market"`
		IsFull bool   `json:"is_full"`
		Depth  struct {
			Asks      [][]string `json:"asks"`
			Bids      [][]string `json:"bids"`
			Last      string     `json:"last"`
			UpdatedAt int64      `json:"updated_at"`
			Checksum  int64      `json:"checksum"`
		} `json:"depth"`
	}{}

	resp, err := spot.DoRequest(GET, buildUri(SPOT_DEPTH_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}

	depth := &Depth{
		Market:    response.Market,
		Last:      response.Depth.Last,
		UpdatedAt: response.Depth.UpdatedAt,
		Date: time.Unix(
			response.Depth.UpdatedAt/1000,
			0,
		).In(spot.config.Location).Format(GO_BIRTHDAY),
	}
	for _, ask := range response.Depth.Asks {
		if len(ask) < 2 {
			continue
		}
		depth.AskList = append(depth.AskList, DepthRecord{Price: ask[0], Amount: ask[1]})
	}
	for _, bid := range response.Depth.Bids {
		if len(bid) < 2 {
			continue
		}
		depth.BidList = append(depth.BidList, DepthRecord{Price: bid[0], Amount: bid[1]})
	}
	return depth, resp, nil
}

func (spot *Spot) GetMarketDeals(market string, limit int, lastId int64) ([]*Deal, []byte, error) {
	params := NewParams().
		Set("market", market).
		SetInt("limit", int64(limit)).
		SetInt("last_id", lastId)

	response := make([]*Deal, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_DEALS_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

// GetMarketTransactions is the transaction-record entry point; it reads the
// same deal records as GetMarketDeals.
func (spot *Spot) GetMarketTransactions(market string, limit int, lastId int64) ([]*Deal, []byte, error) {
	return spot.GetMarketDeals(market, limit, lastId)
}

func (spot *Spot) GetMarketCandlesticks(market string, limit int, period string) ([]*Kline, []byte, error) {
	params := NewParams().
		Set("market", market).
		SetInt("limit", int64(limit)).
		Set("period", period)

	response := make([]*Kline, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_KLINE_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

// GetMarketStatus queries one market, a comma separated list of markets, or
// all markets when market is empty.
func (spot *Spot) GetMarketStatus(market string) ([]*MarketStatus, []byte, error) {
	params := NewParams()
	if market != "" {
		params.Set("market", market)
	}

	response := make([]*MarketStatus, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_MARKET_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (spot *Spot) GetMarketTicker(market string) ([]*Ticker, []byte, error) {
	params := NewParams()
	if market != "" {
		params.Set("market", market)
	}

	response := make([]*Ticker, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_TICKER_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (spot *Spot) GetMarketIndex(market string) ([]*IndexRecord, []byte, error) {
	params := NewParams()
	if market != "" {
		params.Set("market", market)
	}

	response := make([]*IndexRecord, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_INDEX_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}
