package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"github.com/xyths/poloniex"
	"github.com/xyths/poloniex/cmd/utils"
)

var app *cli.App

func init() {
	app = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "query the poloniex rest api",
		Version: poloniex.Version,
	}

	app.Commands = []*cli.Command{
		tickerCommand,
		orderBookCommand,
		balancesCommand,
		openOrdersCommand,
	}
	app.Flags = []cli.Flag{
		utils.HostFlag,
		utils.KeyFlag,
		utils.SecretFlag,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
