package poloniex

import (
	"context"
	"net/url"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xyths/poloniex/exchange"
)

type mockTransport struct {
	calls []*Request
	resp  *Response
	err   error
}

func (m *mockTransport) Do(_ context.Context, r *Request) (*Response, error) {
	m.calls = append(m.calls, r)
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func ok(data string) *Response {
	return &Response{Status: 200, Data: []byte(data)}
}

func TestNewFromPair(t *testing.T) {
	p := NewFromPair(exchange.APIKeyPair{ApiKey: "PUB", SecretKey: "SECRET"})
	require.True(t, p.IsUpgraded())
	require.Equal(t, DefaultHost, p.Host)
}

func TestIsUpgraded(t *testing.T) {
	p := New("", "", "")
	require.False(t, p.IsUpgraded())

	// a partial pair is still unauthenticated
	p = New("PUB", "", "")
	require.False(t, p.IsUpgraded())

	p.Upgrade("PUB", "SECRET")
	require.True(t, p.IsUpgraded())
}

func TestSendPrivateUnauthenticated(t *testing.T) {
	mock := &mockTransport{resp: ok(`{}`)}
	p := NewWithTransport("", "", "", mock)

	_, err := p.Balances()
	require.Equal(t, ErrUnauthenticated, err)
	require.Len(t, mock.calls, 0, "transport must not be contacted")
}

func TestSendPrivateSignsExactBody(t *testing.T) {
	mock := &mockTransport{resp: ok(`{"BTC":"0.59098578","ETH":"0.0"}`)}
	p := NewWithTransport("PUB", "SECRET", "", mock)

	balances, err := p.Balances()
	require.NoError(t, err)
	require.Equal(t, "0.59098578", balances["BTC"])

	require.Len(t, mock.calls, 1)
	r := mock.calls[0]
	require.Equal(t, POST, r.Method)
	require.Equal(t, DefaultHost, r.BaseURL)
	require.Equal(t, "/tradingApi", r.Path)
	require.Equal(t, "PUB", r.Headers["Key"])
	require.Equal(t, Sign(r.Body, "SECRET"), r.Headers["Sign"])
	require.Equal(t, "application/x-www-form-urlencoded", r.Headers["Content-Type"])

	body, err := url.ParseQuery(r.Body)
	require.NoError(t, err)
	require.Equal(t, "returnBalances", body.Get("command"))
	nonce, err := strconv.ParseInt(body.Get("nonce"), 10, 64)
	require.NoError(t, err)
	require.Greater(t, nonce, int64(0))
}

func TestSendPublicNoCredentialHeaders(t *testing.T) {
	mock := &mockTransport{resp: ok(`{"asks":[["0.09",12.5]],"bids":[["0.08",3.0]],"isFrozen":"0","seq":18849}`)}
	p := NewWithTransport("", "", "", mock)

	book, err := p.OrderBook("BTC_ETH", 0)
	require.NoError(t, err)
	require.Len(t, book.Asks, 1)
	require.Equal(t, 0.09, book.Asks[0].Price)
	require.Equal(t, 12.5, book.Asks[0].Amount)
	require.False(t, book.IsFrozen)
	require.Equal(t, int64(18849), book.Seq)

	require.Len(t, mock.calls, 1)
	r := mock.calls[0]
	require.Equal(t, GET, r.Method)
	require.Equal(t, "/public", r.Path)
	require.Empty(t, r.Body)
	require.Empty(t, r.Headers["Key"])
	require.Empty(t, r.Headers["Sign"])

	query, err := url.ParseQuery(r.Query)
	require.NoError(t, err)
	require.Equal(t, "returnOrderBook", query.Get("command"))
	require.Equal(t, "BTC_ETH", query.Get("currencyPair"))
}

func TestRemoteErrorUnwrapped(t *testing.T) {
	mock := &mockTransport{resp: ok(`{"error":"Invalid nonce parameter."}`)}
	p := NewWithTransport("PUB", "SECRET", "", mock)

	_, err := p.Balances()
	require.EqualError(t, err, "Invalid nonce parameter.")
}

func TestHTTPErrorSurfacesBody(t *testing.T) {
	mock := &mockTransport{resp: &Response{Status: 502, Data: []byte("bad gateway")}}
	p := NewWithTransport("", "", "", mock)

	_, err := p.Tickers()
	require.Error(t, err)
	require.Contains(t, err.Error(), "http 502")
	require.Contains(t, err.Error(), "bad gateway")
}

func TestUpgradeReplacesKeys(t *testing.T) {
	mock := &mockTransport{resp: ok(`{}`)}
	p := NewWithTransport("OLDPUB", "OLDSECRET", "", mock)
	p.Upgrade("NEWPUB", "NEWSECRET")

	_, err := p.Balances()
	require.NoError(t, err)

	require.Len(t, mock.calls, 1)
	r := mock.calls[0]
	require.Equal(t, "NEWPUB", r.Headers["Key"])
	require.Equal(t, Sign(r.Body, "NEWSECRET"), r.Headers["Sign"])
	require.NotEqual(t, Sign(r.Body, "OLDSECRET"), r.Headers["Sign"])
}

func TestNonceIncreasesAcrossRequests(t *testing.T) {
	mock := &mockTransport{resp: ok(`{}`)}
	p := NewWithTransport("PUB", "SECRET", "", mock)

	last := int64(0)
	for i := 0; i < 50; i++ {
		_, err := p.Balances()
		require.NoError(t, err)
		body, err := url.ParseQuery(mock.calls[i].Body)
		require.NoError(t, err)
		nonce, err := strconv.ParseInt(body.Get("nonce"), 10, 64)
		require.NoError(t, err)
		require.Greater(t, nonce, last)
		last = nonce
	}
}

func TestHeaderPrecedence(t *testing.T) {
	mock := &mockTransport{resp: ok(`{}`)}
	p := NewWithTransport("PUB", "SECRET", "", mock)
	p.Headers = map[string]string{
		"User-Agent": "custom-agent",
		"Key":        "NOT-THE-KEY",
	}

	_, err := p.Balances()
	require.NoError(t, err)

	r := mock.calls[0]
	require.Equal(t, "custom-agent", r.Headers["User-Agent"])
	// request headers win over the caller's base headers
	require.Equal(t, "PUB", r.Headers["Key"])
}

func TestPlaceOrderParams(t *testing.T) {
	mock := &mockTransport{resp: ok(`{"orderNumber":"514845991795","resultingTrades":[]}`)}
	p := NewWithTransport("PUB", "SECRET", "", mock)

	rate := decimal.RequireFromString("0.025")
	amount := decimal.RequireFromString("100.5")
	res, err := p.PlaceOrder(CommandBuy, "BTC_ETH", rate, amount, true, false, false)
	require.NoError(t, err)
	require.Equal(t, "514845991795", res.OrderNumber)

	body, err := url.ParseQuery(mock.calls[0].Body)
	require.NoError(t, err)
	require.Equal(t, "buy", body.Get("command"))
	require.Equal(t, "BTC_ETH", body.Get("currencyPair"))
	require.Equal(t, "0.025", body.Get("rate"))
	require.Equal(t, "100.5", body.Get("amount"))
	require.Equal(t, "1", body.Get("fillOrKill"))
	require.Empty(t, body.Get("immediateOrCancel"))

	_, err = p.PlaceOrder("steal", "BTC_ETH", rate, amount, false, false, false)
	require.Error(t, err)
	require.Len(t, mock.calls, 1, "bad side must not reach the transport")
}

func TestTransportErrorPropagated(t *testing.T) {
	mock := &mockTransport{err: context.DeadlineExceeded}
	p := NewWithTransport("PUB", "SECRET", "", mock)

	_, err := p.Balances()
	require.Equal(t, context.DeadlineExceeded, err)
}
