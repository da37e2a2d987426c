package coinex

import (
	"time"

	. "gocoinex"
)

type Future struct {
	*Coinex
}

func (future *Future) GetMarketDepth(market string, limit int, interval string) (*Depth, []byte, error) {
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

	resp, err := future.DoRequest(GET, buildUri(FUTURES_DEPTH_URI, params), "", &response)
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
		).In(future.config.Location).Format(GO_BIRTHDAY),
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

func (future *Future) GetMarketDeals(market string, limit int, lastId int64) ([]*Deal, []byte, error) {
	params := NewParams().
		Set("market", market).
		SetInt("limit", int64(limit)).
		SetInt("last_id", lastId)

	response := make([]*Deal, 0)
	resp, err := future.DoRequest(GET, buildUri(FUTURES_DEALS_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

// GetMarketCandlesticks reads futures klines. Empty priceType defaults to
// latest_price.
func (future *Future) GetMarketCandlesticks(market string, limit int, period, priceType string) ([]*Kline, []byte, error) {
	if priceType == "" {
		priceType = PRICE_TYPE_LATEST
	}

	params := NewParams().
		Set("market", market).
		Set("price_type", priceType).
		SetInt("limit", int64(limit)).
		Set("period", period)

	response := make([]*Kline, 0)
	resp, err := future.DoRequest(GET, buildUri(FUTURES_KLINE_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (future *Future) GetMarketTicker(market string) ([]*FutureTicker, []byte, error) {
	params := NewParams()
	if market != "" {
		params.Set("market", market)
	}

	response := make([]*FutureTicker, 0)
	resp, err := future.DoRequest(GET, buildUri(FUTURES_TICKER_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}
