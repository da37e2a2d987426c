package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"

	"gocoinex/coinex"

	. "gocoinex"
)

type Command struct {
	client *coinex.Coinex
}

func (c *Command) Init(command string, args []string) {
	if *cliEnvFile != "" {
		if err := godotenv.Load(*cliEnvFile); err != nil {
			fail(err)
		}
	} else {
		// every request is signed, so credentials are always needed
		_ = godotenv.Load()
	}

	c.client = coinex.New(&APIConfig{
		HttpClient: getHttpClient(*cliProxy),
		Endpoint:   coinex.ENDPOINT,
		AccessId:   os.Getenv("COINEX_ACCESS_ID"),
		SecretKey:  os.Getenv("COINEX_SECRET_KEY"),
		Location:   time.Now().Location(),
	})

	switch command {
	case "ticker":
		c.ticker()
	case "depth":
		c.depth()
	case "deals":
		c.deals()
	case "kline":
		c.kline(args)
	case "balance":
		c.balance()
	case "place":
		c.place(args)
	case "cancel":
		c.cancel(args)
	}
}

func (c *Command) ticker() {
	if *cliType == "futures" {
		tickers, _, err := c.client.Future.GetMarketTicker(*cliMarket)
		if err != nil {
			fail(err)
		}
		printJson(tickers)
		return
	}

	tickers, _, err := c.client.Spot.GetMarketTicker(*cliMarket)
	if err != nil {
		fail(err)
	}
	printJson(tickers)
}

func (c *Command) depth() {
	var depth *Depth
	var err error
	if *cliType == "futures" {
		depth, _, err = c.client.Future.GetMarketDepth(*cliMarket, 10, "0")
	} else {
		depth, _, err = c.client.Spot.GetMarketDepth(*cliMarket, 10, "0")
	}
	if err != nil {
		fail(err)
	}
	printJson(depth)
}

func (c *Command) deals() {
	var deals []*Deal
	var err error
	if *cliType == "futures" {
		deals, _, err = c.client.Future.GetMarketDeals(*cliMarket, 20, 0)
	} else {
		deals, _, err = c.client.Spot.GetMarketDeals(*cliMarket, 20, 0)
	}
	if err != nil {
		fail(err)
	}
	printJson(deals)
}

func (c *Command) kline(args []string) {
	fs := flag.NewFlagSet("kline", flag.ExitOnError)
	period := fs.String("period", KLINE_PERIOD_1MIN, "Input the kline period. ")
	limit := fs.Int("limit", 100, "Input the kline limit. ")
	_ = fs.Parse(args)

	var klines []*Kline
	var err error
	if *cliType == "futures" {
		klines, _, err = c.client.Future.GetMarketCandlesticks(*cliMarket, *limit, *period, "")
	} else {
		klines, _, err = c.client.Spot.GetMarketCandlesticks(*cliMarket, *limit, *period)
	}
	if err != nil {
		fail(err)
	}
	printJson(klines)
}

func (c *Command) balance() {
	if *cliType == "futures" {
		balances, _, err := c.client.Future.GetBalance()
		if err != nil {
			fail(err)
		}
		printJson(balances)
		return
	}

	balances, _, err := c.client.Spot.GetBalance()
	if err != nil {
		fail(err)
	}
	printJson(balances)
}

func (c *Command) place(args []string) {
	fs := flag.NewFlagSet("place", flag.ExitOnError)
	side := fs.String("side", SIDE_BUY, "Input the order side, buy or sell. ")
	orderType := fs.String("order-type", ORDER_TYPE_LIMIT, "Input the order type, limit or market. ")
	amount := fs.String("amount", "", "Input the order amount. ")
	price := fs.String("price", "", "Input the order price, limit orders only. ")
	clientId := fs.String("client-id", "", "Input the client order id. ")
	genClientId := fs.Bool("gen-client-id", false, "Generate a client order id locally. ")
	_ = fs.Parse(args)

	if *genClientId && *clientId == "" {
		*clientId = UUID()
		fmt.Println(aurora.Yellow("client_id: " + *clientId))
	}

	if *cliType == "futures" {
		order, _, err := c.client.Future.PlaceOrder(&FutureOrderRequest{
			Market:   *cliMarket,
			Side:     *side,
			Type:     *orderType,
			Amount:   *amount,
			Price:    *price,
			ClientId: *clientId,
		})
		if err != nil {
			fail(err)
		}
		fmt.Println(aurora.Green(fmt.Sprintf("order %d placed", order.OrderId)))
		printJson(order)
		return
	}

	order, _, err := c.client.Spot.PlaceOrder(&OrderRequest{
		Market:     *cliMarket,
		MarketType: MARKET_TYPE_SPOT,
		Side:       *side,
		Type:       *orderType,
		Amount:     *amount,
		Price:      *price,
		ClientId:   *clientId,
	})
	if err != nil {
		fail(err)
	}
	fmt.Println(aurora.Green(fmt.Sprintf("order %d placed", order.OrderId)))
	printJson(order)
}

func (c *Command) cancel(args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	orderId := fs.Int64("order-id", 0, "Input the order id. ")
	clientId := fs.String("client-id", "", "Input the client order id. ")
	_ = fs.Parse(args)

	if *cliType == "futures" {
		fail(NewConfigurationError("cancel supports spot markets only"))
	}

	if *clientId != "" {
		if _, err := c.client.Spot.CancelOrderByClientId(*cliMarket, MARKET_TYPE_SPOT, *clientId); err != nil {
			fail(err)
		}
		fmt.Println(aurora.Green("order " + *clientId + " canceled"))
		return
	}

	order, _, err := c.client.Spot.CancelOrder(*cliMarket, MARKET_TYPE_SPOT, *orderId)
	if err != nil {
		fail(err)
	}
	fmt.Println(aurora.Green(fmt.Sprintf("order %d canceled", order.OrderId)))
	printJson(order)
}

func printJson(data interface{}) {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(body))
}

func fail(err error) {
	fmt.Println(aurora.Red(err.Error()))
	os.Exit(1)
}

func getHttpClient(proxyUrl string) *http.Client {
	if proxyUrl == "" {
		return &http.Client{
			Timeout: 15 * time.Second,
		}
	}

	return &http.Client{
		Transport: &http.Transport{
			Proxy: func(req *http.Request) (*url.URL, error) {
				return url.Parse(proxyUrl)
			},
		},
		Timeout: 15 * time.Second,
	}
}
