package coinex

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	. "gocoinex"
)

const (
	/*
	  http headers
	*/
	COINEX_KEY       = "X-COINEX-KEY"
	COINEX_SIGN      = "X-COINEX-SIGN"
	COINEX_TIMESTAMP = "X-COINEX-TIMESTAMP"

	CONTENT_TYPE = "Content-Type"
	ACCEPT       = "Accept"

	APPLICATION_JSON      = "application/json"
	APPLICATION_JSON_UTF8 = "application/json; charset=utf-8"

	/*Rest Endpoint*/
	ENDPOINT = "https://api.coinex.com"
	API_V2   = "/v2"

	SPOT_DEPTH_URI                          = "/spot/depth"
	SPOT_DEALS_URI                          = "/spot/deals"
	SPOT_KLINE_URI                          = "/spot/kline"
	SPOT_MARKET_URI                         = "/spot/market"
	SPOT_TICKER_URI                         = "/spot/ticker"
	SPOT_INDEX_URI                          = "/spot/index"
	SPOT_BALANCE_URI                        = "/assets/spot/balance"
	SPOT_USER_DEALS_URI                     = "/spot/user-deals"
	SPOT_ORDER_DEALS_URI                    = "/spot/order-deals"
	SPOT_ORDER_URI                          = "/spot/order"
	SPOT_STOP_ORDER_URI                     = "/spot/stop-order"
	SPOT_BATCH_ORDER_URI                    = "/spot/batch-order"
	SPOT_BATCH_STOP_ORDER_URI               = "/spot/batch-stop-order"
	SPOT_ORDER_STATUS_URI                   = "/spot/order-status"
	SPOT_BATCH_ORDER_STATUS_URI             = "/spot/batch-order-status"
	SPOT_PENDING_ORDER_URI                  = "/spot/pending-order"
	SPOT_FINISHED_ORDER_URI                 = "/spot/finished-order"
	SPOT_PENDING_STOP_ORDER_URI             = "/spot/pending-stop-order"
	SPOT_MODIFY_ORDER_URI                   = "/spot/modify-order"
	SPOT_MODIFY_STOP_ORDER_URI              = "/spot/modify-stop-order"
	SPOT_CANCEL_ALL_ORDER_URI               = "/spot/cancel-all-order"
	SPOT_CANCEL_ORDER_URI                   = "/spot/cancel-order"
	SPOT_CANCEL_STOP_ORDER_URI              = "/spot/cancel-stop-order"
	SPOT_CANCEL_BATCH_ORDER_URI             = "/spot/cancel-batch-order"
	SPOT_CANCEL_BATCH_STOP_ORDER_URI        = "/spot/cancel-batch-stop-order"
	SPOT_CANCEL_ORDER_BY_CLIENT_ID_URI      = "/spot/cancel-order-by-client-id"
	SPOT_CANCEL_STOP_ORDER_BY_CLIENT_ID_URI = "/spot/cancel-stop-order-by-client-id"

	FUTURES_DEPTH_URI            = "/futures/depth"
	FUTURES_DEALS_URI            = "/futures/deals"
	FUTURES_KLINE_URI            = "/futures/kline"
	FUTURES_TICKER_URI           = "/futures/ticker"
	FUTURES_BALANCE_URI          = "/assets/futures/balance"
	FUTURES_ORDER_URI            = "/futures/order"
	FUTURES_ORDER_STATUS_URI     = "/futures/order-status"
	FUTURES_CLOSE_POSITION_URI   = "/futures/close-position"
	FUTURES_ADJUST_LEVERAGE_URI  = "/futures/adjust-position-leverage"
	FUTURES_PENDING_POSITION_URI = "/futures/pending-position"
)

var validate = validator.New()

type Coinex struct {
	config *APIConfig

	Spot   *Spot
	Future *Future
}

func New(config *APIConfig) *Coinex {
	cfg := *config
	if cfg.Endpoint == "" {
		cfg.Endpoint = ENDPOINT
	}
	if cfg.HttpClient == nil {
		cfg.HttpClient = &http.Client{
			Timeout: 15 * time.Second,
		}
	}
	if cfg.Location == nil {
		cfg.Location = time.Now().Location()
	}

	coinex := &Coinex{config: &cfg}
	coinex.Spot = &Spot{coinex}
	coinex.Future = &Future{coinex}
	return coinex
}

func (coinex *Coinex) GetExchangeName() string {
	return COINEX
}

// signPayload digests the canonical string METHOD+path+body+timestamp.
// The path includes the /v2 prefix and the query exactly as dispatched.
func signPayload(secretKey, httpMethod, requestPath, reqBody, timestamp string) (string, error) {
	preText := httpMethod + requestPath + reqBody + timestamp
	return GetParamHmacSHA256Sign(secretKey, preText)
}

func (coinex *Coinex) doParamSign(httpMethod, requestPath, reqBody string) (map[string]string, error) {
	if coinex.config.AccessId == "" || coinex.config.SecretKey == "" {
		return nil, NewConfigurationError("access id and secret key must not be empty")
	}

	timestamp := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	sign, err := signPayload(coinex.config.SecretKey, httpMethod, requestPath, reqBody, timestamp)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		COINEX_KEY:       coinex.config.AccessId,
		COINEX_SIGN:      sign,
		COINEX_TIMESTAMP: timestamp,
	}, nil
}

func (coinex *Coinex) DoRequest(httpMethod, uri, reqBody string, response interface{}) ([]byte, error) {
	requestPath := API_V2 + uri
	signHeaders, err := coinex.doParamSign(httpMethod, requestPath, reqBody)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		CONTENT_TYPE: APPLICATION_JSON_UTF8,
		ACCEPT:       APPLICATION_JSON,
	}
	for k, v := range signHeaders {
		headers[k] = v
	}

	status, resp, err := NewHttpRequest(
		coinex.config.HttpClient,
		httpMethod, coinex.config.Endpoint+requestPath, reqBody, headers,
	)
	if err != nil {
		return resp, err
	}

	envelope := struct {
		Code    int             `json:"code"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}{}
	if err := json.Unmarshal(resp, &envelope); err != nil {
		return resp, &TransportError{StatusCode: status, Message: string(resp), Err: err}
	}
	if envelope.Code != 0 {
		return resp, NewExchangeError(envelope.Code, envelope.Message)
	}
	if status/100 != 2 {
		return resp, &TransportError{StatusCode: status, Message: string(resp)}
	}

	if response == nil || len(envelope.Data) == 0 {
		return resp, nil
	}
	return resp, json.Unmarshal(envelope.Data, response)
}

/*
Get a http request body is a json string.
*/
func (coinex *Coinex) BuildRequestBody(params interface{}) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", NewConfigurationError("json convert string error: %s", err.Error())
	}
	return string(data), nil
}

func buildUri(path string, params *Params) string {
	if params == nil || params.IsEmpty() {
		return path
	}
	return path + "?" + params.Encode()
}

func checkRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewConfigurationError(err.Error())
	}
	return nil
}
