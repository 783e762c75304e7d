// Package xmlrpc builds XML-RPC method calls and sends them to a remote
// endpoint.
//
//	client, err := xmlrpc.NewClient("http://localhost:11311")
//	...
//	response, err := client.Execute(ctx, "getSystemState", value.String("/caller"))
//
// Responses are returned as raw text. Decoding methodResponse and fault
// documents is up to the caller.
package xmlrpc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/tsatke/xmlrpc/encoder"
	"github.com/tsatke/xmlrpc/value"
	"golang.org/x/time/rate"
)

// Client sends method calls to a single endpoint. Calls are synchronous.
// A Client holds no per-call state and may be used by multiple goroutines
// as long as its Transport may be.
type Client struct {
	endpoint  *url.URL
	transport Transport

	httpClient *http.Client
	userAgent  string

	encoderOpts []encoder.Option
	limiter     *rate.Limiter
	log         logrus.FieldLogger
}

// NewClient creates a client for the given http or https endpoint,
// applying all given options.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", endpoint)
	}

	c := &Client{
		endpoint:   u,
		httpClient: http.DefaultClient,
		userAgent:  DefaultUserAgent,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = &HTTPTransport{
			Client:    c.httpClient,
			UserAgent: c.userAgent,
		}
	}
	return c, nil
}

// Endpoint returns a copy of the endpoint URL.
func (c *Client) Endpoint() *url.URL {
	u := *c.endpoint
	return &u
}

// Execute calls method with params and returns the raw response body.
// If params is an Array, each element is passed as a separate parameter.
// Errors of the transport are returned unchanged.
func (c *Client) Execute(ctx context.Context, method string, params value.Value) (string, error) {
	log := c.log.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": c.endpoint.Redacted(),
	})

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("wait for rate limit: %w", err)
		}
	}

	body, err := BuildRequest(method, params, c.encoderOpts...)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	log.WithField("body", string(body)).Debug("Sending request")

	response, err := c.transport.Post(ctx, c.Endpoint(), body)
	if err != nil {
		log.WithError(err).Debug("Request failed")
		return "", err
	}

	log.WithField("bytes", len(response)).Debug("Received response")
	return response, nil
}
