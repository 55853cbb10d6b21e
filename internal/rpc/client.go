package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"shardkit/internal/domain"
)

const (
	connectTimeout = 3 * time.Second
	requestTimeout = 5 * time.Second

	// Single logical call per invocation, so no id multiplexing is needed.
	requestID = 1
)

// Client talks to one node endpoint over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for endpoint with the standard timeouts.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
	}
}

type request struct {
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int    `json:"id"`
}

type response struct {
	Jsonrpc string           `json:"jsonrpc"`
	Result  json.RawMessage  `json:"result"`
	Error   *domain.RPCError `json:"error"`
	ID      int              `json:"id"`
}

// Call performs a single JSON-RPC exchange and decodes the result into R.
// Transport and envelope-decode failures wrap domain.ErrTransport; an error
// object in the envelope is returned as *domain.RPCError. A response with
// neither result nor error is success with R's zero value, used for
// "no stored value" storage queries.
func Call[P, R any](ctx context.Context, c *Client, method string, params P) (R, error) {
	var zero R

	body, err := json.Marshal(request{
		Jsonrpc: "2.0",
		Method:  method,
		Params:  params,
		ID:      requestID,
	})
	if err != nil {
		return zero, errors.Wrap(domain.ErrTransport, err.Error())
	}

	log.Debug().Str("endpoint", c.endpoint).Str("method", method).Msg("rpc call")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return zero, errors.Wrap(domain.ErrTransport, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, errors.Wrap(domain.ErrTransport, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return zero, errors.Wrapf(domain.ErrTransport, "%s: %s", method, resp.Status)
	}

	var env response
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, errors.Wrap(domain.ErrTransport, err.Error())
	}
	if env.Error != nil {
		return zero, env.Error
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return zero, nil
	}

	var out R
	if err := json.Unmarshal(env.Result, &out); err != nil {
		return zero, errors.Wrap(domain.ErrTransport, err.Error())
	}
	return out, nil
}
