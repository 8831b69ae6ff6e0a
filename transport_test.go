package poloniex

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// full round trip through the real net/http transport, with the
// signature verified server-side from the raw body, the way the
// exchange does.
func TestNetTransportRoundTrip(t *testing.T) {
	const secret = "server-known-secret"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/public":
			require.Equal(t, GET, r.Method)
			require.Equal(t, "returnTicker", r.URL.Query().Get("command"))
			_, _ = fmt.Fprint(w, `{"BTC_ETH":{"id":148,"last":"0.031","lowestAsk":"0.032","highestBid":"0.030","percentChange":"0.01","baseVolume":"1.2","quoteVolume":"39.4","isFrozen":"0","high24hr":"0.033","low24hr":"0.029"}}`)
		case "/tradingApi":
			require.Equal(t, POST, r.Method)
			body, err := ioutil.ReadAll(r.Body)
			require.NoError(t, err)
			require.Equal(t, Sign(string(body), secret), r.Header.Get("Sign"))
			require.Equal(t, "PUB", r.Header.Get("Key"))
			_, _ = fmt.Fprint(w, `{"BTC":"1.5","LTC":"0.0"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewWithTransport("PUB", secret, srv.URL, NewTransport(5*time.Second))

	ticker, err := p.Ticker("BTC_ETH")
	require.NoError(t, err)
	require.Equal(t, 0.031, ticker.Last)
	require.Equal(t, 0.029, ticker.Low24hr)

	balances, err := p.Balances()
	require.NoError(t, err)
	require.Equal(t, "1.5", balances["BTC"])

	available, err := p.AvailableBalance()
	require.NoError(t, err)
	require.Len(t, available, 1, "zero balances are dropped")
	require.Equal(t, "1.5", available["BTC"].String())
}

func TestNetTransportRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = fmt.Fprint(w, `{"error":"Invalid command."}`)
	}))
	defer srv.Close()

	p := NewWithTransport("PUB", "SECRET", srv.URL, NewTransport(5*time.Second))
	_, err := p.Balances()
	require.EqualError(t, err, "Invalid command.")
}

func TestNetTransportNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	p := NewWithTransport("", "", srv.URL, NewTransport(time.Second))
	_, err := p.Tickers()
	require.Error(t, err)
}
