package main

import (
	"encoding/json"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/xyths/poloniex"
	"github.com/xyths/poloniex/cmd/utils"
)

var (
	tickerCommand = &cli.Command{
		Action: ticker,
		Name:   "ticker",
		Usage:  "Show the ticker of a market",
		Flags: []cli.Flag{
			utils.PairFlag,
		},
	}
	orderBookCommand = &cli.Command{
		Action: orderBook,
		Name:   "orderbook",
		Usage:  "Show the order book of a market",
		Flags: []cli.Flag{
			utils.PairFlag,
			utils.DepthFlag,
		},
	}
	balancesCommand = &cli.Command{
		Action: balances,
		Name:   "balances",
		Usage:  "Show non-zero account balances (requires key/secret)",
	}
	openOrdersCommand = &cli.Command{
		Action: openOrders,
		Name:   "openorders",
		Usage:  "Show open orders of a market (requires key/secret)",
		Flags: []cli.Flag{
			utils.PairFlag,
		},
	}
)

func client(ctx *cli.Context) *poloniex.Poloniex {
	return poloniex.New(ctx.String(utils.KeyFlag.Name), ctx.String(utils.SecretFlag.Name), ctx.String(utils.HostFlag.Name))
}

func print(v interface{}) error {
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "\t")
	return e.Encode(v)
}

func ticker(ctx *cli.Context) error {
	t, err := client(ctx).Ticker(ctx.String(utils.PairFlag.Name))
	if err != nil {
		return err
	}
	return print(t)
}

func orderBook(ctx *cli.Context) error {
	book, err := client(ctx).OrderBook(ctx.String(utils.PairFlag.Name), ctx.Int(utils.DepthFlag.Name))
	if err != nil {
		return err
	}
	return print(book)
}

func balances(ctx *cli.Context) error {
	b, err := client(ctx).AvailableBalance()
	if err != nil {
		return err
	}
	return print(b)
}

func openOrders(ctx *cli.Context) error {
	orders, err := client(ctx).OpenOrders(ctx.String(utils.PairFlag.Name))
	if err != nil {
		return err
	}
	return print(orders)
}
