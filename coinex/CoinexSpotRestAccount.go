package coinex

import (
	. "gocoinex"
)

func (spot *Spot) GetBalance() ([]*Balance, []byte, error) {
	response := make([]*Balance, 0)
	resp, err := spot.DoRequest(GET, SPOT_BALANCE_URI, "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (spot *Spot) GetUserDeals(req *UserDealsRequest) ([]*UserDeal, []byte, error) {
	if req == nil {
		return nil, nil, NewConfigurationError("request must not be nil")
	}
	if err := checkRequest(req); err != nil {
		return nil, nil, err
	}

	page, limit := req.Page, req.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	params := NewParams().
		Set("market", req.Market).
		Set("market_type", req.MarketType).
		SetInt("page", int64(page)).
		SetInt("limit", int64(limit))
	if req.Side != "" {
		params.Set("side", req.Side)
	}
	if req.StartTime != 0 {
		params.SetInt("start_time", req.StartTime)
	}
	if req.EndTime != 0 {
		params.SetInt("end_time", req.EndTime)
	}

	response := make([]*UserDeal, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_USER_DEALS_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (spot *Spot) GetUserOrderDeals(market, marketType string, orderId int64, page, limit int) ([]*UserDeal, []byte, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	params := NewParams().
		Set("market", market).
		Set("market_type", marketType).
		SetInt("order_id", orderId).
		SetInt("page", int64(page)).
		SetInt("limit", int64(limit))

	response := make([]*UserDeal, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_ORDER_DEALS_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}
