package gocoinex

/*
	models about futures account
*/

type FutureBalance struct {
	Ccy           string `json:"ccy"`
	Available     string `json:"available"`
	Frozen        string `json:"frozen"`
	Margin        string `json:"margin"`
	Transferrable string `json:"transferrable"`
	UnrealizedPnl string `json:"unrealized_pnl"`
}

type Position struct {
	PositionId    int64  `json:"position_id"`
	Market        string `json:"market"`
	MarketType    string `json:"market_type"`
	Side          string `json:"side"`
	MarginMode    string `json:"margin_mode"`
	OpenInterest  string `json:"open_interest"`
	CloseAvbl     string `json:"close_avbl"`
	AvgEntryPrice string `json:"avg_entry_price"`
	UnrealizedPnl string `json:"unrealized_pnl"`
	RealizedPnl   string `json:"realized_pnl"`
	Leverage      int    `json:"leverage"`
	MarginAvbl    string `json:"margin_avbl"`
	LiqPrice      string `json:"liq_price"`
	BkrPrice      string `json:"bkr_price"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

type PositionLeverage struct {
	MarginMode string `json:"margin_mode"`
	Leverage   int    `json:"leverage"`
}

/*
	models about futures market
*/

type FutureTicker struct {
	Ticker
	IndexPrice   string `json:"index_price"`
	MarkPrice    string `json:"mark_price"`
	OpenInterest string `json:"open_interest_volume"`
}

/*
	models about futures trade
*/

type FutureOrderRequest struct {
	Market     string `json:"market" validate:"required"`
	MarketType string `json:"market_type" validate:"required,oneof=FUTURES"`
	Side       string `json:"side" validate:"required,oneof=buy sell"`
	Type       string `json:"type" validate:"required,oneof=limit market"`
	Amount     string `json:"amount" validate:"required"`
	Price      string `json:"price,omitempty"`
	ClientId   string `json:"client_id,omitempty"`
	IsHide     bool   `json:"is_hide"`
	StpMode    string `json:"stp_mode,omitempty" validate:"omitempty,oneof=ct cm both"`
}

// ClosePositionRequest flattens an open position. Amount empty closes the
// whole position; price is required for limit type only.
type ClosePositionRequest struct {
	Market     string `json:"market" validate:"required"`
	MarketType string `json:"market_type" validate:"required,oneof=FUTURES"`
	Type       string `json:"type" validate:"required,oneof=limit market"`
	Price      string `json:"price,omitempty"`
	Amount     string `json:"amount,omitempty"`
	ClientId   string `json:"client_id,omitempty"`
	IsHide     bool   `json:"is_hide"`
	StpMode    string `json:"stp_mode,omitempty" validate:"omitempty,oneof=ct cm both"`
}

type FutureOrder struct {
	OrderId          int64  `json:"order_id"`
	Market           string `json:"market"`
	MarketType       string `json:"market_type"`
	Side             string `json:"side"`
	Type             string `json:"type"`
	Amount           string `json:"amount"`
	Price            string `json:"price"`
	UnfilledAmount   string `json:"unfilled_amount"`
	FilledAmount     string `json:"filled_amount"`
	FilledValue      string `json:"filled_value"`
	ClientId         string `json:"client_id"`
	Fee              string `json:"fee"`
	FeeCcy           string `json:"fee_ccy"`
	MakerFeeRate     string `json:"maker_fee_rate"`
	TakerFeeRate     string `json:"taker_fee_rate"`
	LastFilledAmount string `json:"last_filled_amount"`
	LastFilledPrice  string `json:"last_filled_price"`
	RealizedPnl      string `json:"realized_pnl"`
	Status           string `json:"status"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
}
