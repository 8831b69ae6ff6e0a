package poloniex

import (
	"os"
	"testing"
)

// apiKey=xxx secretKey=yyy go test -v -run TestLive .

func TestLiveTicker(t *testing.T) {
	host := os.Getenv("host")
	p := New("", "", host)
	if ticker, err := p.Ticker(USDT_BTC); err != nil {
		t.Logf("error when Ticker: %s", err)
	} else {
		t.Logf("Ticker(USDT_BTC): %#v", ticker)
	}
}

func TestLiveBalances(t *testing.T) {
	apiKey := os.Getenv("apiKey")
	secretKey := os.Getenv("secretKey")
	host := os.Getenv("host")
	p := New(apiKey, secretKey, host)
	if balances, err := p.AvailableBalance(); err != nil {
		t.Logf("error when AvailableBalance: %s", err)
	} else {
		t.Logf("balances: %#v", balances)
	}
}

func TestLiveOpenOrders(t *testing.T) {
	apiKey := os.Getenv("apiKey")
	secretKey := os.Getenv("secretKey")
	host := os.Getenv("host")
	p := New(apiKey, secretKey, host)
	if orders, err := p.OpenOrders(USDT_BTC); err != nil {
		t.Logf("error when OpenOrders: %s", err)
	} else {
		t.Logf("OpenOrders(USDT_BTC): %#v", orders)
	}
}
