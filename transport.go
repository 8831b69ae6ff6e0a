package poloniex

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DefaultTimeout = 30 * time.Second

// Request is the transport configuration built by the client for one
// call: everything the wire needs, nothing about what it means.
type Request struct {
	Method  string
	BaseURL string
	Path    string
	Headers map[string]string
	Query   string // urlencoded, GET requests
	Body    string // urlencoded, POST requests
	Timeout time.Duration
}

// Response is the raw result of one request.
type Response struct {
	Status  int
	Headers http.Header
	Data    []byte
}

// Transport sends a single request. The default implementation wraps
// net/http; tests substitute their own.
type Transport interface {
	Do(ctx context.Context, r *Request) (*Response, error)
}

type netTransport struct {
	client *http.Client
}

// NewTransport returns the default net/http transport. A timeout of 0
// means DefaultTimeout.
func NewTransport(timeout time.Duration) Transport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &netTransport{client: &http.Client{Timeout: timeout}}
}

func (t *netTransport) Do(ctx context.Context, r *Request) (*Response, error) {
	url := r.BaseURL + r.Path
	if r.Query != "" {
		url += "?" + r.Query
	}
	var body io.Reader
	if r.Body != "" {
		body = strings.NewReader(r.Body)
	}
	req, err := http.NewRequest(r.Method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	req = req.WithContext(ctx)
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}

	defer func() {
		if resp != nil {
			_ = resp.Body.Close()
		}
	}()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	return &Response{Status: resp.StatusCode, Headers: resp.Header, Data: data}, nil
}
