package coinex

import (
	"fmt"
	"strconv"
	"strings"

	. "gocoinex"
)

// localRejectCode marks a batch element the library refused before
// dispatch; the exchange never saw it.
const localRejectCode = -1

func checkOrderRequest(order *OrderRequest) error {
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

func checkStopOrderRequest(order *StopOrderRequest) error {
	if err := checkRequest(order); err != nil {
		return err
	}
	if err := CheckPositiveDecimal("amount", order.Amount); err != nil {
		return err
	}
	if err := CheckPositiveDecimal("trigger_price", order.TriggerPrice); err != nil {
		return err
	}
	if order.Type == ORDER_TYPE_LIMIT && order.Price == "" {
		return NewConfigurationError("price is required for limit orders")
	}
	return CheckDecimal("price", order.Price)
}

// PlaceOrder submits one spot or margin order. A caller-supplied ClientId
// is forwarded verbatim; the library never fills one in.
func (spot *Spot) PlaceOrder(order *OrderRequest) (*Order, []byte, error) {
	if order == nil {
		return nil, nil, NewConfigurationError("order must not be nil")
	}
	if err := checkOrderRequest(order); err != nil {
		return nil, nil, err
	}

	reqBody, err := spot.BuildRequestBody(order)
	if err != nil {
		return nil, nil, err
	}

	response := Order{}
	resp, err := spot.DoRequest(POST, SPOT_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

func (spot *Spot) PlaceStopOrder(order *StopOrderRequest) (*StopOrder, []byte, error) {
	if order == nil {
		return nil, nil, NewConfigurationError("order must not be nil")
	}
	if err := checkStopOrderRequest(order); err != nil {
		return nil, nil, err
	}

	reqBody, err := spot.BuildRequestBody(order)
	if err != nil {
		return nil, nil, err
	}

	response := StopOrder{}
	resp, err := spot.DoRequest(POST, SPOT_STOP_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

// BatchPlaceOrders places up to the exchange's batch limit of orders in one
// call. The result always has one element per input, in input order:
// elements the library rejects locally are flagged without reaching the
// exchange, the rest are dispatched together and keep the exchange's
// per-element verdicts.
func (spot *Spot) BatchPlaceOrders(orders []*OrderRequest) ([]*BatchOrderResult, []byte, error) {
	if len(orders) == 0 {
		return nil, nil, NewConfigurationError("orders must not be empty")
	}

	results := make([]*BatchOrderResult, len(orders))
	outgoing := make([]*OrderRequest, 0, len(orders))
	slots := make([]int, 0, len(orders))
	for i, order := range orders {
		if order == nil {
			results[i] = &BatchOrderResult{Code: localRejectCode, Message: "order must not be nil"}
			continue
		}
		if err := checkOrderRequest(order); err != nil {
			results[i] = &BatchOrderResult{Code: localRejectCode, Message: err.Error()}
			continue
		}
		outgoing = append(outgoing, order)
		slots = append(slots, i)
	}
	if len(outgoing) == 0 {
		return results, nil, nil
	}

	reqBody, err := spot.BuildRequestBody(struct {
		Orders []*OrderRequest `json:"orders"`
	}{outgoing})
	if err != nil {
		return nil, nil, err
	}

	response := make([]*BatchOrderResult, 0, len(outgoing))
	resp, err := spot.DoRequest(POST, SPOT_BATCH_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	// a verdict per dispatched element, or the envelope is malformed
	if len(response) != len(outgoing) {
		return nil, resp, &TransportError{
			Message: fmt.Sprintf("batch response carries %d results for %d orders", len(response), len(outgoing)),
		}
	}

	for j, item := range response {
		results[slots[j]] = item
	}
	return results, resp, nil
}

func (spot *Spot) BatchPlaceStopOrders(orders []*StopOrderRequest) ([]*BatchStopOrderResult, []byte, error) {
	if len(orders) == 0 {
		return nil, nil, NewConfigurationError("orders must not be empty")
	}

	results := make([]*BatchStopOrderResult, len(orders))
	outgoing := make([]*StopOrderRequest, 0, len(orders))
	slots := make([]int, 0, len(orders))
	for i, order := range orders {
		if order == nil {
			results[i] = &BatchStopOrderResult{Code: localRejectCode, Message: "order must not be nil"}
			continue
		}
		if err := checkStopOrderRequest(order); err != nil {
			results[i] = &BatchStopOrderResult{Code: localRejectCode, Message: err.Error()}
			continue
		}
		outgoing = append(outgoing, order)
		slots = append(slots, i)
	}
	if len(outgoing) == 0 {
		return results, nil, nil
	}

	reqBody, err := spot.BuildRequestBody(struct {
		Orders []*StopOrderRequest `json:"orders"`
	}{outgoing})
	if err != nil {
		return nil, nil, err
	}

	response := make([]*BatchStopOrderResult, 0, len(outgoing))
	resp, err := spot.DoRequest(POST, SPOT_BATCH_STOP_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	if len(response) != len(outgoing) {
		return nil, resp, &TransportError{
			Message: fmt.Sprintf("batch response carries %d results for %d orders", len(response), len(outgoing)),
		}
	}

	for j, item := range response {
		results[slots[j]] = item
	}
	return results, resp, nil
}

func (spot *Spot) GetOrderStatus(market string, orderId int64) (*Order, []byte, error) {
	params := NewParams().
		Set("market", market).
		SetInt("order_id", orderId)

	response := Order{}
	resp, err := spot.DoRequest(GET, buildUri(SPOT_ORDER_STATUS_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

func (spot *Spot) BatchOrderStatus(market string, orderIds []int64) ([]*Order, []byte, error) {
	if len(orderIds) == 0 {
		return nil, nil, NewConfigurationError("order ids must not be empty")
	}

	ids := make([]string, 0, len(orderIds))
	for _, orderId := range orderIds {
		ids = append(ids, strconv.FormatInt(orderId, 10))
	}
	params := NewParams().
		Set("market", market).
		Set("order_ids", strings.Join(ids, ","))

	response := make([]*Order, 0)
	resp, err := spot.DoRequest(GET, buildUri(SPOT_BATCH_ORDER_STATUS_URI, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (spot *Spot) queryOrders(uri string, req *OrderQueryRequest) ([]*Order, []byte, error) {
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
		Set("market_type", req.MarketType).
		SetInt("page", int64(page)).
		SetInt("limit", int64(limit))
	if req.Market != "" {
		params.Set("market", req.Market)
	}
	if req.Side != "" {
		params.Set("side", req.Side)
	}
	if req.ClientId != "" {
		params.Set("client_id", req.ClientId)
	}

	response := make([]*Order, 0)
	resp, err := spot.DoRequest(GET, buildUri(uri, params), "", &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (spot *Spot) GetUnfilledOrders(req *OrderQueryRequest) ([]*Order, []byte, error) {
	return spot.queryOrders(SPOT_PENDING_ORDER_URI, req)
}

func (spot *Spot) GetFilledOrders(req *OrderQueryRequest) ([]*Order, []byte, error) {
	return spot.queryOrders(SPOT_FINISHED_ORDER_URI, req)
}

func (spot *Spot) GetUnfilledStopOrders(req *OrderQueryRequest) ([]*Order, []byte, error) {
	return spot.queryOrders(SPOT_PENDING_STOP_ORDER_URI, req)
}

func (spot *Spot) ModifyOrder(req *ModifyOrderRequest) (*Order, []byte, error) {
	if req == nil {
		return nil, nil, NewConfigurationError("request must not be nil")
	}
	if err := checkRequest(req); err != nil {
		return nil, nil, err
	}
	if err := CheckDecimal("amount", req.Amount); err != nil {
		return nil, nil, err
	}
	if err := CheckDecimal("price", req.Price); err != nil {
		return nil, nil, err
	}

	reqBody, err := spot.BuildRequestBody(req)
	if err != nil {
		return nil, nil, err
	}

	response := Order{}
	resp, err := spot.DoRequest(POST, SPOT_MODIFY_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

// ModifyStopOrder cancels the old stop order on the exchange side and
// creates a new one; the returned stop id is the new order's.
func (spot *Spot) ModifyStopOrder(req *ModifyStopOrderRequest) (*StopOrder, []byte, error) {
	if req == nil {
		return nil, nil, NewConfigurationError("request must not be nil")
	}
	if err := checkRequest(req); err != nil {
		return nil, nil, err
	}
	if err := CheckDecimal("amount", req.Amount); err != nil {
		return nil, nil, err
	}
	if err := CheckDecimal("price", req.Price); err != nil {
		return nil, nil, err
	}
	if err := CheckDecimal("trigger_price", req.TriggerPrice); err != nil {
		return nil, nil, err
	}

	reqBody, err := spot.BuildRequestBody(req)
	if err != nil {
		return nil, nil, err
	}

	response := StopOrder{}
	resp, err := spot.DoRequest(POST, SPOT_MODIFY_STOP_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

func (spot *Spot) CancelOrder(market, marketType string, orderId int64) (*Order, []byte, error) {
	reqBody, err := spot.BuildRequestBody(struct {
		Market     string `json:"market"`
		MarketType string `json:"market_type"`
		OrderId    int64  `json:"order_id"`
	}{market, marketType, orderId})
	if err != nil {
		return nil, nil, err
	}

	response := Order{}
	resp, err := spot.DoRequest(POST, SPOT_CANCEL_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return &response, resp, nil
}

func (spot *Spot) CancelStopOrder(market, marketType string, stopId int64) ([]byte, error) {
	reqBody, err := spot.BuildRequestBody(struct {
		Market     string `json:"market"`
		MarketType string `json:"market_type"`
		StopId     int64  `json:"stop_id"`
	}{market, marketType, stopId})
	if err != nil {
		return nil, err
	}
	return spot.DoRequest(POST, SPOT_CANCEL_STOP_ORDER_URI, reqBody, nil)
}

// CancelAllOrders cancels every order in the market, optionally only one
// side. Empty side cancels both.
func (spot *Spot) CancelAllOrders(market, marketType, side string) ([]byte, error) {
	if side != "" && side != SIDE_BUY && side != SIDE_SELL {
		return nil, NewConfigurationError("side must be buy or sell, got %q", side)
	}
	reqBody, err := spot.BuildRequestBody(struct {
		Market     string `json:"market"`
		MarketType string `json:"market_type"`
		Side       string `json:"side,omitempty"`
	}{market, marketType, side})
	if err != nil {
		return nil, err
	}
	return spot.DoRequest(POST, SPOT_CANCEL_ALL_ORDER_URI, reqBody, nil)
}

func (spot *Spot) CancelBatchOrders(market string, orderIds []int64) ([]*BatchOrderResult, []byte, error) {
	if len(orderIds) == 0 {
		return nil, nil, NewConfigurationError("order ids must not be empty")
	}

	reqBody, err := spot.BuildRequestBody(struct {
		Market   string  `json:"market"`
		OrderIds []int64 `json:"order_ids"`
	}{market, orderIds})
	if err != nil {
		return nil, nil, err
	}

	response := make([]*BatchOrderResult, 0, len(orderIds))
	resp, err := spot.DoRequest(POST, SPOT_CANCEL_BATCH_ORDER_URI, reqBody, &response)
	if err != nil {
		return nil, resp, err
	}
	return response, resp, nil
}

func (spot *Spot) CancelBatchStopOrders(market string, stopIds []int64) ([]byte, error) {
	if len(stopIds) == 0 {
		return nil, NewConfigurationError("stop ids must not be empty")
	}

	reqBody, err := spot.BuildRequestBody(struct {
		Market  string  `json:"market"`
		StopIds []int64 `json:"stop_ids"`
	}{market, stopIds})
	if err != nil {
		return nil, err
	}
	return spot.DoRequest(POST, SPOT_CANCEL_BATCH_STOP_ORDER_URI, reqBody, nil)
}

func (spot *Spot) CancelOrderByClientId(market, marketType, clientId string) ([]byte, error) {
	if clientId == "" {
		return nil, NewConfigurationError("client id must not be empty")
	}
	reqBody, err := spot.BuildRequestBody(struct {
		Market     string `json:"market"`
		MarketType string `json:"market_type"`
		ClientId   string `json:"client_id"`
	}{market, marketType, clientId})
	if err != nil {
		return nil, err
	}
	return spot.DoRequest(POST, SPOT_CANCEL_ORDER_BY_CLIENT_ID_URI, reqBody, nil)
}

func (spot *Spot) CancelStopOrderByClientId(market, marketType, clientId string) ([]byte, error) {
	if clientId == "" {
		return nil, NewConfigurationError("client id must not be empty")
	}
	reqBody, err := spot.BuildRequestBody(struct {
		Market     string `json:"market"`
		MarketType string `json:"market_type"`
		ClientId   string `json:"client_id"`
	}{market, marketType, clientId})
	if err != nil {
		return nil, err
	}
	return spot.DoRequest(POST, SPOT_CANCEL_STOP_ORDER_BY_CLIENT_ID_URI, reqBody, nil)
}
