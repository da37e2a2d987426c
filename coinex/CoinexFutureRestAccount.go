package coinex

import (
	. "gocoinex"
)

func (future *Future) GetBalance() ([]*FutureBalance, []byte, error) {
	response := make([]*FutureBalance, 0)
	resp, err := future.DoRequest(GET, FUTURES_BALANCE_URI, "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

// AdjustPositionLeverage sets the margin mode and leverage for the market.
// This directly changes account risk parameters and is never retried.
func (future *Future) AdjustPositionLeverage(market, marginMode string, leverage int) (*PositionLeverage, []byte, error) {
	if market == "" {
		return nil, nil, NewConfigurationError("market must not be empty")
	}
	if marginMode != MARGIN_MODE_CROSS && marginMode != MARGIN_MODE_ISOLATED {
		return nil, nil, NewConfigurationError("margin mode must be cross or isolated, got %q", marginMode)
	}
	if leverage <= 0 {
		return nil, nil, NewConfigurationError("leverage must be positive, got %d", leverage)
	}

	reqBody, err := future.BuildRequestBody(struct {
		Market     string `json:"market"`
		MarketType string `json:"market_type"`
		MarginMode string `json:"margin_mode"`
		Leverage   int    `json:"leverage"`
	}{market, MARKET_TYPE_FUTURES, marginMode, leverage})
	if err != nil {
		return nil, nil, err
	}

	response := PositionLeverage{}
	resp, err := future.DoRequest(POST, FUTURES_ADJUST_LEVERAGE_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

func (future *Future) GetCurrentPosition(market string, page, limit int) ([]*Position, []byte, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 100
	}

	params := NewParams().
		Set("market", market).
		Set("market_type", MARKET_TYPE_FUTURES).
		SetInt("page", int64(page)).
		SetInt("limit", int64(limit))

	response := make([]*Position, 0)
	resp, err := future.DoRequest(GET, buildUri(FUTURES_PENDING_POSITION_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}
