package coinex

import (
	. "gocoinex"
)

func checkFutureOrderRequest(order *FutureOrderRequest) error {
	if err := checkRequest(order); err != nil {
		return err
	}
	if err := CheckPositiveDecimal("amount", order.Amount); err != nil {
		return err
	}
	if order.Type == ORDER_TYPE_LIMIT && order.Price == "" {
		return NewConfigurationError("price is required for limit orders")
	}
	return CheckDecimal("price", order.Price)
}

// PlaceOrder submits one futures order. Empty MarketType defaults to
// FUTURES; a caller-supplied ClientId is forwarded verbatim.
func (future *Future) PlaceOrder(order *FutureOrderRequest) (*FutureOrder, []byte, error) {
	if order == nil {
		return nil, nil, NewConfigurationError("order must not be nil")
	}
	if order.MarketType == "" {
		// default on a copy, the caller's struct stays untouched
		defaulted := *order
		defaulted.MarketType = MARKET_TYPE_FUTURES
		order = &defaulted
	}
	if err := checkFutureOrderRequest(order); err != nil {
		return nil, nil, err
	}

	reqBody, err := future.BuildRequestBody(order)
	if err != nil {
		return nil, nil, err
	}

	response := FutureOrder{}
	resp, err := future.DoRequest(POST, FUTURES_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

func (future *Future) GetOrderStatus(market string, orderId int64) (*FutureOrder, []byte, error) {
	params := NewParams().
		Set("market", market).
		SetInt("order_id", orderId)

	response := FutureOrder{}
	resp, err := future.DoRequest(GET, buildUri(FUTURES_ORDER_STATUS_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

// ClosePosition flattens the pending position with a market or limit
// order. Empty Amount closes the whole position.
func (future *Future) ClosePosition(req *ClosePositionRequest) (*FutureOrder, []byte, error) {
	if req == nil {
		return nil, nil, NewConfigurationError("request must not be nil")
	}
	if req.MarketType == "" {
		defaulted := *req
		defaulted.MarketType = MARKET_TYPE_FUTURES
		req = &defaulted
	}
	if err := checkRequest(req); err != nil {
		return nil, nil, err
	}
	if req.Type == ORDER_TYPE_LIMIT && req.Price == "" {
		return nil, nil, NewConfigurationError("price is required for limit orders")
	}
	if err := CheckDecimal("price", req.Price); err != nil {
		return nil, nil, err
	}
	if err := CheckDecimal("amount", req.Amount); err != nil {
		return nil, nil, err
	}

	reqBody, err := future.BuildRequestBody(req)
	if err != nil {
		return nil, nil, err
	}

	response := FutureOrder{}
	resp, err := future.DoRequest(POST, FUTURES_CLOSE_POSITION_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}
