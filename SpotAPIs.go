package gocoinex

// api interface
type SpotRestAPI interface {

	// public api
	GetExchangeName() string
	GetMarketDepth(market string, limit int, interval string) (*Depth, []byte, error)
	GetMarketDeals(market string, limit int, lastId int64) ([]*Deal, []byte, error)
	GetMarketTransactions(market string, limit int, lastId int64) ([]*Deal, []byte, error)
	GetMarketCandlesticks(market string, limit int, period string) ([]*Kline, []byte, error)
	GetMarketStatus(market string) ([]*MarketStatus, []byte, error)
	GetMarketTicker(market string) ([]*Ticker, []byte, error)
	GetMarketIndex(market string) ([]*IndexRecord, []byte, error)

	// private api
	GetBalance() ([]*Balance, []byte, error)
	GetUserDeals(req *UserDealsRequest) ([]*UserDeal, []byte, error)
	GetUserOrderDeals(market, marketType string, orderId int64, page, limit int) ([]*UserDeal, []byte, error)
	PlaceOrder(order *OrderRequest) (*Order, []byte, error)
	PlaceStopOrder(order *StopOrderRequest) (*StopOrder, []byte, error)
	BatchPlaceOrders(orders []*OrderRequest) ([]*BatchOrderResult, []byte, error)
	BatchPlaceStopOrders(orders []*StopOrderRequest) ([]*BatchStopOrderResult, []byte, error)
	GetOrderStatus(market string, orderId int64) (*Order, []byte, error)
	BatchOrderStatus(market string, orderIds []int64) ([]*Order, []byte, error)
	GetUnfilledOrders(req *OrderQueryRequest) ([]*Order, []byte, error)
	GetFilledOrders(req *OrderQueryRequest) ([]*Order, []byte, error)
	GetUnfilledStopOrders(req *OrderQueryRequest) ([]*Order, []byte, error)
	ModifyOrder(req *ModifyOrderRequest) (*Order, []byte, error)
	ModifyStopOrder(req *ModifyStopOrderRequest) (*StopOrder, []byte, error)
	CancelOrder(market, marketType string, orderId int64) (*Order, []byte, error)
	CancelStopOrder(market, marketType string, stopId int64) ([]byte, error)
	CancelAllOrders(market, marketType, side string) ([]byte, error)
	CancelBatchOrders(market string, orderIds []int64) ([]*BatchOrderResult, []byte, error)
	CancelBatchStopOrders(market string, stopIds []int64) ([]byte, error)
	CancelOrderByClientId(market, marketType, clientId string) ([]byte, error)
	CancelStopOrderByClientId(market, marketType, clientId string) ([]byte, error)
}
