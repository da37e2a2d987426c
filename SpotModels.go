package gocoinex

/*
	models about spot market
*/

type MarketStatus struct {
	Market            string `json:"market"`
	TakerFeeRate      string `json:"taker_fee_rate"`
	MakerFeeRate      string `json:"maker_fee_rate"`
	MinAmount         string `json:"min_amount"`
	BaseCcy           string `json:"base_ccy"`
	QuoteCcy          string `json:"quote_ccy"`
	BaseCcyPrecision  int    `json:"base_ccy_precision"`
	QuoteCcyPrecision int    `json:"quote_ccy_precision"`
	IsMarginAvailable bool   `json:"is_margin_available"`
	IsPreMarket       bool   `json:"is_pre_market_trading_available"`
}

/*
	models about spot trade
*/

type OrderRequest struct {
	Market     string `json:"market" validate:"required"`
	MarketType string `json:"market_type" validate:"required,oneof=SPOT MARGIN"`
	Side       string `json:"side" validate:"required,oneof=buy sell"`
	Type       string `json:"type" validate:"required,oneof=limit market"`
	// Amount and Price stay decimal strings end to end.
	Amount   string `json:"amount" validate:"required"`
	Price    string `json:"price,omitempty"`
	Ccy      string `json:"ccy,omitempty"`
	ClientId string `json:"client_id,omitempty"`
	IsHide   bool   `json:"is_hide"`
	StpMode  string `json:"stp_mode,omitempty" validate:"omitempty,oneof=ct cm both"`
}

type StopOrderRequest struct {
	Market       string `json:"market" validate:"required"`
	MarketType   string `json:"market_type" validate:"required,oneof=SPOT MARGIN"`
	Side         string `json:"side" validate:"required,oneof=buy sell"`
	Type         string `json:"type" validate:"required,oneof=limit market"`
	Amount       string `json:"amount" validate:"required"`
	TriggerPrice string `json:"trigger_price" validate:"required"`
	Price        string `json:"price,omitempty"`
	Ccy          string `json:"ccy,omitempty"`
	ClientId     string `json:"client_id,omitempty"`
	IsHide       bool   `json:"is_hide"`
	StpMode      string `json:"stp_mode,omitempty" validate:"omitempty,oneof=ct cm both"`
}

type Order struct {
	OrderId        int64  `json:"order_id"`
	Market         string `json:"market"`
	MarketType     string `json:"market_type"`
	Side           string `json:"side"`
	Type           string `json:"type"`
	Ccy            string `json:"ccy"`
	Amount         string `json:"amount"`
	Price          string `json:"price"`
	UnfilledAmount string `json:"unfilled_amount"`
	FilledAmount   string `json:"filled_amount"`
	FilledValue    string `json:"filled_value"`
	ClientId       string `json:"client_id"`
	BaseFee        string `json:"base_fee"`
	QuoteFee       string `json:"quote_fee"`
	DiscountFee    string `json:"discount_fee"`
	MakerFeeRate   string `json:"maker_fee_rate"`
	TakerFeeRate   string `json:"taker_fee_rate"`
	LastFillAmount string `json:"last_fill_amount"`
	LastFillPrice  string `json:"last_fill_price"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

type StopOrder struct {
	StopId int64 `json:"stop_id"`
}

// BatchOrderResult is the per-element outcome of a batch placement. A
// non-zero Code means the element failed, either locally before dispatch
// or on the exchange side; the remaining elements are unaffected.
type BatchOrderResult struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Order   *Order `json:"data"`
}

func (result *BatchOrderResult) Succeeded() bool {
	return result.Code == 0
}

type BatchStopOrderResult struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Order   *StopOrder `json:"data"`
}

func (result *BatchStopOrderResult) Succeeded() bool {
	return result.Code == 0
}

type ModifyOrderRequest struct {
	Market     string `json:"market" validate:"required"`
	MarketType string `json:"market_type" validate:"required,oneof=SPOT MARGIN"`
	OrderId    int64  `json:"order_id" validate:"required"`
	Amount     string `json:"amount,omitempty"`
	Price      string `json:"price,omitempty"`
}

type ModifyStopOrderRequest struct {
	Market       string `json:"market" validate:"required"`
	MarketType   string `json:"market_type" validate:"required,oneof=SPOT MARGIN"`
	StopId       int64  `json:"stop_id" validate:"required"`
	Amount       string `json:"amount,omitempty"`
	Price        string `json:"price,omitempty"`
	TriggerPrice string `json:"trigger_price,omitempty"`
}

// OrderQueryRequest narrows pending/finished order queries. Market, Side
// and ClientId are optional filters; MarketType is required.
type OrderQueryRequest struct {
	MarketType string `validate:"required,oneof=SPOT MARGIN"`
	Market     string
	Side       string `validate:"omitempty,oneof=buy sell"`
	ClientId   string
	Page       int
	Limit      int
}

/*
	models about spot account
*/

type Balance struct {
	Ccy       string `json:"ccy"`
	Available string `json:"available"`
	Frozen    string `json:"frozen"`
}

type UserDealsRequest struct {
	Market     string `validate:"required"`
	MarketType string `validate:"required,oneof=SPOT MARGIN FUTURES"`
	Side       string `validate:"omitempty,oneof=buy sell"`
	StartTime  int64
	EndTime    int64
	Page       int
	Limit      int
}

type UserDeal struct {
	DealId    int64  `json:"deal_id"`
	CreatedAt int64  `json:"created_at"`
	OrderId   int64  `json:"order_id"`
	ClientId  string `json:"client_id"`
	Market    string `json:"market"`
	Side      string `json:"side"`
	Price     string `json:"price"`
	Amount    string `json:"amount"`
	Role      string `json:"role"`
	Fee       string `json:"fee"`
	FeeCcy    string `json:"fee_ccy"`
}
