package engagespot

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/http/httpguts"
)

const (
	headerAPIKey    = "X-ENGAGESPOT-API-KEY"
	headerAPISecret = "X-ENGAGESPOT-API-SECRET"

	userAgent = "engagespot-go"
)

// Client communicates with the Engagespot API for sending notifications
// and creating or updating user attributes. It holds no per-call state
// and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *resty.Client
	logger  RequestLogger
}

// New creates a [Client] authenticated with the given API key and secret.
// Both are sent as headers on every request and are validated here; a key
// or secret containing characters that are not valid in an HTTP header
// value fails construction. Configuration is supplied as [Option]
// functions:
//
//	client, err := engagespot.New("api-key", "api-secret",
//	    engagespot.WithBaseURL("https://engagespot.internal/v3"),
//	)
func New(apiKey, apiSecret string, opts ...Option) (*Client, error) {
	if !httpguts.ValidHeaderFieldValue(apiKey) {
		return nil, errors.New("api key is not a valid header value")
	}

	if !httpguts.ValidHeaderFieldValue(apiSecret) {
		return nil, errors.New("api secret is not a valid header value")
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpClient := resty.New()
	if options.httpClient != nil {
		httpClient = resty.NewWithClient(options.httpClient)
	}

	httpClient.
		SetHeaders(options.requestHeaders).
		SetHeader(headerAPIKey, apiKey).
		SetHeader(headerAPISecret, apiSecret).
		SetHeader("User-Agent", userAgent)

	return &Client{
		baseURL: options.baseURL,
		http:    httpClient,
		logger:  options.requestLogger,
	}, nil
}

// BaseURL returns the API endpoint this client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send delivers a notification by POSTing it to the notifications
// endpoint. On a 2xx response the raw response body is returned
// uninterpreted; a non-2xx response is returned as an [*APIError]
// carrying the raw body, and a transport failure is returned as the
// underlying error. Exactly one request is issued per call.
func (c *Client) Send(ctx context.Context, notification *Notification) (string, error) {
	if c == nil {
		return "", errors.New("engagespot client is nil")
	}

	if notification == nil {
		return "", errors.New("notification is nil")
	}

	return c.do(ctx, http.MethodPost, c.url("notifications"), notification)
}

// CreateOrUpdateUserAttrs creates the user identified by identifier, or
// updates it if it already exists, with the given attributes. attrs may
// be any JSON-marshalable value. The identifier is used as a raw path
// segment and is not URL-escaped; the caller must supply URL-safe text.
// Success and failure semantics match [Client.Send].
func (c *Client) CreateOrUpdateUserAttrs(ctx context.Context, identifier string, attrs any) (string, error) {
	if c == nil {
		return "", errors.New("engagespot client is nil")
	}

	if identifier == "" {
		return "", errors.New("identifier cannot be empty")
	}

	return c.do(ctx, http.MethodPut, c.url("users/"+identifier), attrs)
}

func (c *Client) do(ctx context.Context, method, url string, body any) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Execute(method, url)
	if err != nil {
		c.logger.Errorf("%s %s failed: %v", method, url, err)
		return "", fmt.Errorf("%s %s: %w", method, url, err)
	}

	text := resp.String()

	if resp.IsError() {
		c.logger.Warnf("%s %s returned %d: %s", method, url, resp.StatusCode(), text)
		return "", &APIError{StatusCode: resp.StatusCode(), Body: text}
	}

	c.logger.Debugf("%s %s returned %d", method, url, resp.StatusCode())

	return text, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + path
}
