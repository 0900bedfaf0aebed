package engagespot

import (
	"net/http"
	"strings"
)

// DefaultBaseURL is the hosted Engagespot production API endpoint. It is
// used unless [WithBaseURL] points the client at a self-hosted instance.
const DefaultBaseURL = "https://api.engagespot.co/v3"

type Option func(*Options)

type Options struct {
	baseURL        string
	httpClient     *http.Client
	requestLogger  RequestLogger
	requestHeaders map[string]string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:       DefaultBaseURL,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// WithBaseURL overrides the API endpoint, for self-hosted Engagespot
// deployments. An empty URL is ignored and the default is retained.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

		if baseURL == "" {
			return
		}

		o.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying [net/http.Client] used for all
// requests, e.g. to configure a proxy or a custom timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. The Content-Type and
// Engagespot authentication headers cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, headerAPIKey) ||
			strings.EqualFold(header, headerAPISecret) {
			return
		}

		o.requestHeaders[header] = value
	}
}
