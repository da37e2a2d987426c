package main

import (
	"flag"
)

var cliMarket = flag.String("market", "BTCUSDT", "Input the market name. ")
var cliType = flag.String("type", "spot", "Input the market type, spot or futures. ")
var cliProxy = flag.String("proxy", "", "Input the proxy url. ")
var cliEnvFile = flag.String("env", "", "Input the env file holding the credentials. ")

var sCommand = map[string]string{
	"ticker":  "market ticker api",
	"depth":   "market depth api",
	"deals":   "market latest deals api",
	"kline":   "market candlestick api",
	"balance": "account balance api",
	"place":   "place one order",
	"cancel":  "cancel one order",
}

func main() {
	flag.Parse()
	paramCount := flag.NArg()
	firstParam := ""
	if paramCount != 0 {
		firstParam = flag.Arg(0)
	}

	_, exist := sCommand[firstParam]
	if paramCount == 0 || !exist {
		flag.PrintDefaults()
	} else {
		c := &Command{}
		c.Init(firstParam, flag.Args()[1:])
	}
}
