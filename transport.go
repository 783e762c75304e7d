package xmlrpc

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent identifies this library to servers.
const DefaultUserAgent = "xmlrpc-go/0.1"

// Transport delivers a complete request body to an endpoint and returns
// the response body as text.
type Transport interface {
	Post(ctx context.Context, endpoint *url.URL, body []byte) (string, error)
}

// HTTPTransport is the default Transport. It performs a blocking POST with
// Content-Length and Host set from the body and endpoint. Timeouts are those
// of the underlying http.Client and of the context.
type HTTPTransport struct {
	Client    *http.Client
	UserAgent string
}

func (t *HTTPTransport) Post(ctx context.Context, endpoint *url.URL, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Err: errors.Wrap(err, "create request")}
	}
	req.ContentLength = int64(len(body))
	req.Host = endpoint.Host
	req.Header.Set("Content-Type", "text/xml")
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &TransportError{Err: errors.Wrap(err, "post request")}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected response status %q", resp.Status),
		}
	}

	r, err := decodeBody(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: errors.Wrap(err, "read response")}
	}
	return string(data), nil
}

// decodeBody converts the body to UTF-8 if the content type declares a
// charset. Bodies without one are XML's default, UTF-8.
func decodeBody(r io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r, nil
	}
	label, ok := params["charset"]
	if !ok {
		return r, nil
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return nil, errors.Errorf("unsupported response charset %q", label)
	}
	return enc.NewDecoder().Reader(r), nil
}
