package xmlrpc

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tsatke/xmlrpc/encoder"
	"golang.org/x/time/rate"
)

type Option func(*Client)

// WithTransport replaces the HTTPTransport the client uses by default.
// WithHTTPClient and WithUserAgent have no effect if a transport is set.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithPrecision sets the number of digits after the decimal point of
// doubles in requests. See encoder.WithPrecision.
func WithPrecision(precision int) Option {
	return func(c *Client) {
		c.encoderOpts = append(c.encoderOpts, encoder.WithPrecision(precision))
	}
}

// WithRateLimit limits the number of requests per second. Execute blocks
// until a request may be sent or its context is done.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}
