package gocoinex

import (
	"net/http"
	"time"
)

/*
models about API config
*/
type APIConfig struct {
	HttpClient *http.Client
	Endpoint   string
	AccessId   string
	SecretKey  string
	Location   *time.Location
}

/*
	models about market
*/

type DepthRecord struct {
	Price  string
	Amount string
}

type Depth struct {
	Market    string
	Last      string
	UpdatedAt int64
	Date      string
	AskList   []DepthRecord
	BidList   []DepthRecord
}

type Deal struct {
	DealId    int64  `json:"deal_id"`
	CreatedAt int64  `json:"created_at"`
	Side      string `json:"side"`
	Price     string `json:"price"`
	Amount    string `json:"amount"`
}

type Kline struct {
	Market    string `json:"market"`
	CreatedAt int64  `json:"created_at"`
	Open      string `json:"open"`
	Close     string `json:"close"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Volume    string `json:"volume"`
	Value     string `json:"value"`
}

type Ticker struct {
	Market     string `json:"market"`
	Last       string `json:"last"`
	Open       string `json:"open"`
	Close      string `json:"close"`
	High       string `json:"high"`
	Low        string `json:"low"`
	Volume     string `json:"volume"`
	Value      string `json:"value"`
	VolumeSell string `json:"volume_sell"`
	VolumeBuy  string `json:"volume_buy"`
	Period     int64  `json:"period"`
}

type IndexRecord struct {
	Market    string `json:"market"`
	CreatedAt int64  `json:"created_at"`
	Price     string `json:"price"`
}
