package gocoinex

const (
	GO_BIRTHDAY = "2006-01-02 15:04:05"
)

/*
http methods
*/
const (
	GET  = "GET"
	POST = "POST"
)

// market types
const (
	MARKET_TYPE_SPOT    = "SPOT"
	MARKET_TYPE_MARGIN  = "MARGIN"
	MARKET_TYPE_FUTURES = "FUTURES"
)

// order sides
const (
	SIDE_BUY  = "buy"
	SIDE_SELL = "sell"
)

// order types
const (
	ORDER_TYPE_LIMIT  = "limit"
	ORDER_TYPE_MARKET = "market"
)

// margin modes
const (
	MARGIN_MODE_CROSS    = "cross"
	MARGIN_MODE_ISOLATED = "isolated"
)

// self-trading protection modes
const (
	STP_CANCEL_TAKER = "ct"
	STP_CANCEL_MAKER = "cm"
	STP_CANCEL_BOTH  = "both"
)

// kline periods
const (
	KLINE_PERIOD_1MIN   = "1min"
	KLINE_PERIOD_3MIN   = "3min"
	KLINE_PERIOD_5MIN   = "5min"
	KLINE_PERIOD_15MIN  = "15min"
	KLINE_PERIOD_30MIN  = "30min"
	KLINE_PERIOD_1HOUR  = "1hour"
	KLINE_PERIOD_2HOUR  = "2hour"
	KLINE_PERIOD_4HOUR  = "4hour"
	KLINE_PERIOD_6HOUR  = "6hour"
	KLINE_PERIOD_12HOUR = "12hour"
	KLINE_PERIOD_1DAY   = "1day"
	KLINE_PERIOD_3DAY   = "3day"
	KLINE_PERIOD_1WEEK  = "1week"
)

// futures kline price types
const (
	PRICE_TYPE_LATEST = "latest_price"
	PRICE_TYPE_MARK   = "mark_price"
	PRICE_TYPE_INDEX  = "index_price"
)

// exchanges const
const (
	COINEX = "coinex"
)
