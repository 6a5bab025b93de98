// Package client fetches introspection documents from live GraphQL endpoints.
// It is a thin I/O wrapper: one POST of the introspection query, one decode.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/buger/jsonparser"
	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"

	"github.com/Atwolf/graph-vis/pkg/introspection"
)

var DefaultHTTPClient = &http.Client{
	Timeout: time.Second * 10,
	Transport: &http.Transport{
		MaxIdleConnsPerHost: 1024,
	},
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	header     http.Header
	log        abstractlogger.Logger
}

type Option func(options *opts)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(options *opts) {
		options.httpClient = httpClient
	}
}

func WithHeader(key, value string) Option {
	return func(options *opts) {
		options.header.Add(key, value)
	}
}

func WithLogger(log abstractlogger.Logger) Option {
	return func(options *opts) {
		options.log = log
	}
}

type opts struct {
	httpClient *http.Client
	header     http.Header
	log        abstractlogger.Logger
}

func New(endpoint string, options ...Option) *Client {
	op := &opts{
		httpClient: DefaultHTTPClient,
		header:     http.Header{},
		log:        abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(op)
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: op.httpClient,
		header:     op.header,
		log:        op.log,
	}
}

type graphqlRequest struct {
	OperationName string `json:"operationName"`
	Query         string `json:"query"`
}

// FetchIntrospection posts the introspection query to the endpoint and
// decodes the response. GraphQL-level errors in the response body are
// surfaced as errors even when the transport succeeded.
func (c *Client) FetchIntrospection(ctx context.Context) (*introspection.Document, error) {
	body, err := json.Marshal(graphqlRequest{
		OperationName: "IntrospectionQuery",
		Query:         introspection.Query,
	})
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for key, values := range c.header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", "application/json")

	c.log.Debug("client.Client.FetchIntrospection: sending request",
		abstractlogger.String("endpoint", c.endpoint),
	)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "fetch introspection")
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read introspection response")
	}

	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch introspection: unexpected status code %d", response.StatusCode)
	}

	if message, err := jsonparser.GetString(responseBody, "errors", "[0]", "message"); err == nil {
		return nil, errors.Errorf("introspection query failed: %s", message)
	}

	doc, err := introspection.ParseJSON(bytes.NewReader(responseBody))
	if err != nil {
		return nil, errors.Wrap(err, "decode introspection response")
	}
	return doc, nil
}
