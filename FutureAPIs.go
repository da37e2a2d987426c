package gocoinex

type FutureRestAPI interface {

	// public api
	GetExchangeName() string
	GetMarketDepth(market string, limit int, interval string) (*Depth, []byte, error)
	GetMarketDeals(market string, limit int, lastId int64) ([]*Deal, []byte, error)
	GetMarketCandlesticks(market string, limit int, period, priceType string) ([]*Kline, []byte, error)
	GetMarketTicker(market string) ([]*FutureTicker, []byte, error)

	// private api
	GetBalance() ([]*FutureBalance, []byte, error)
	AdjustPositionLeverage(market, marginMode string, leverage int) (*PositionLeverage, []byte, error)
	GetCurrentPosition(market string, page, limit int) ([]*Position, []byte, error)
	PlaceOrder(order *FutureOrderRequest) (*FutureOrder, []byte, error)
	GetOrderStatus(market string, orderId int64) (*FutureOrder, []byte, error)
	ClosePosition(req *ClosePositionRequest) (*FutureOrder, []byte, error)
}
