package utils

import "github.com/urfave/cli/v2"

var (
	HostFlag = &cli.StringFlag{
		Name:    "host",
		Value:   "",
		Usage:   "api `host`, default is the exchange's",
		EnvVars: []string{"POLONIEX_HOST"},
	}
	KeyFlag = &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "api `key`",
		EnvVars: []string{"POLONIEX_KEY"},
	}
	SecretFlag = &cli.StringFlag{
		Name:    "secret",
		Aliases: []string{"s"},
		Usage:   "api `secret`",
		EnvVars: []string{"POLONIEX_SECRET"},
	}
	PairFlag = &cli.StringFlag{
		Name:    "pair",
		Aliases: []string{"p"},
		Value:   "USDT_BTC",
		Usage:   "currency `pair`",
	}
	DepthFlag = &cli.IntFlag{
		Name:  "depth",
		Value: 10,
		Usage: "order book `depth`",
	}
)
