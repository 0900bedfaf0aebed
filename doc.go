// Package engagespot provides a client for the Engagespot REST API,
// for sending multi-channel notifications and managing user attributes
// from Go applications.
//
// The client wraps [github.com/go-resty/resty/v2] and attaches the
// Engagespot authentication headers to every request. An API key and
// API secret are required; get them from the Engagespot dashboard at
// https://portal.engagespot.co/feed.
//
// # Basic Usage
//
//	client, err := engagespot.New("api-key", "api-secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	notification := engagespot.NewNotificationBuilder("Message received", []string{"hello@foo.com"}).
//	    Message("You have a new message").
//	    URL("https://example.com/inbox").
//	    Build()
//
//	body, err := client.Send(ctx, notification)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained.
// [WithBaseURL] points the client at a self-hosted Engagespot instance;
// the default is the hosted production endpoint, [DefaultBaseURL].
//
// # Errors
//
// A response with a non-2xx status is returned as an [*APIError] whose
// Error text is the raw response body, exactly as the vendor sent it.
// Transport failures (DNS, TLS, connection refused) are returned as the
// underlying error. Use [errors.As] to tell the two apart. Requests are
// never retried.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. Ensure your implementation redacts credentials from
// request and response bodies before persisting logs.
package engagespot
