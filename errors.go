package engagespot

// APIError is returned when the Engagespot API answers with a non-2xx
// status. Its Error text is the raw response body, exactly as the vendor
// sent it; the body is not parsed. Use [errors.As] to distinguish an API
// rejection from a transport failure:
//
//	var apiErr *engagespot.APIError
//	if errors.As(err, &apiErr) {
//	    // server was reached and rejected the request
//	}
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the verbatim response body. May be empty.
	Body string
}

func (e *APIError) Error() string {
	return e.Body
}
