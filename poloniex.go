package poloniex

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/xyths/hs/logger"
	"github.com/xyths/poloniex/exchange"
)

// ErrUnauthenticated is returned by private commands when the client
// holds no api key pair. The request is never sent.
var ErrUnauthenticated = errors.New("poloniex: trading api requires api key and secret")

// Poloniex is a REST client for the exchange. A client without keys
// can only call the public api; Upgrade adds the key pair afterwards.
type Poloniex struct {
	Host string

	Key    string
	Secret string

	// extra headers merged into every request; per-request headers
	// win on conflict
	Headers map[string]string

	// per-request deadline; 0 leaves the transport's default
	Timeout time.Duration

	transport Transport
	nonce     nonceCounter
}

func New(apiKey, secretKey, host string) *Poloniex {
	return NewWithTransport(apiKey, secretKey, host, NewTransport(0))
}

// NewFromPair builds a client from a stored key pair.
func NewFromPair(pair exchange.APIKeyPair) *Poloniex {
	return New(pair.ApiKey, pair.SecretKey, pair.Domain)
}

func NewWithTransport(apiKey, secretKey, host string, transport Transport) *Poloniex {
	if host == "" {
		host = DefaultHost
	}
	return &Poloniex{
		Host:      host,
		Key:       apiKey,
		Secret:    secretKey,
		transport: transport,
	}
}

// IsUpgraded reports whether the client holds a full key pair.
func (p *Poloniex) IsUpgraded() bool {
	return p.Key != "" && p.Secret != ""
}

// Upgrade replaces the key pair unconditionally. Later private
// commands sign with the new secret only.
func (p *Poloniex) Upgrade(apiKey, secretKey string) {
	p.Key = apiKey
	p.Secret = secretKey
}

// SendPublic issues GET /public with values as the query string and
// decodes the response into result.
func (p *Poloniex) SendPublic(command string, values url.Values, result interface{}) error {
	if values == nil {
		values = url.Values{}
	}
	values.Set("command", command)
	r := &Request{
		Method:  GET,
		BaseURL: p.Host,
		Path:    publicPath,
		Headers: p.headers(nil),
		Query:   values.Encode(),
		Timeout: p.Timeout,
	}
	resp, err := p.transport.Do(context.Background(), r)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

// SendPrivate signs values and issues POST /tradingApi. It fails with
// ErrUnauthenticated before touching the transport when no key pair
// is set.
func (p *Poloniex) SendPrivate(command string, values url.Values, result interface{}) error {
	if !p.IsUpgraded() {
		return ErrUnauthenticated
	}
	if values == nil {
		values = url.Values{}
	}
	values.Set("command", command)
	values.Set("nonce", strconv.FormatInt(p.nonce.Next(), 10))
	body := values.Encode()
	r := &Request{
		Method:  POST,
		BaseURL: p.Host,
		Path:    tradingPath,
		Headers: p.headers(map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Key":          p.Key,
			"Sign":         Sign(body, p.Secret),
		}),
		Body:    body,
		Timeout: p.Timeout,
	}
	resp, err := p.transport.Do(context.Background(), r)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

func (p *Poloniex) headers(request map[string]string) map[string]string {
	merged := map[string]string{
		"User-Agent": "poloniex-go/" + Version,
	}
	for k, v := range p.Headers {
		merged[k] = v
	}
	for k, v := range request {
		merged[k] = v
	}
	return merged
}

// decode surfaces the most specific diagnostic available: the
// server's error field when present, otherwise the raw body on a
// non-2xx status, otherwise the result of unmarshalling into result.
func decode(r *Response, result interface{}) error {
	var remote struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(r.Data, &remote); err == nil && remote.Error != "" {
		return errors.New(remote.Error)
	}
	if r.Status < 200 || r.Status > 299 {
		return errors.Errorf("http %d: %s", r.Status, string(r.Data))
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(r.Data, result); err != nil {
		logger.Sugar.Debugf("raw response: %s", string(r.Data))
		return errors.Wrap(err, "decode response")
	}
	return nil
}
