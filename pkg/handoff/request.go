package handoff

import (
	"net/http"
	"strings"
)

// Request is the read-only snapshot of one inbound request's signing inputs.
// Headers are kept in the CGI environment form the REST layer produces
// ("HTTP_AUTHORIZATION", "HTTP_X_AMZ_DATE") because the capture rules are
// defined on those keys.
type Request struct {
	TransactionID string
	AccessKeyID   string
	SessionToken  string
	StringToSign  []byte

	Method string
	// URI is the request path relative to the server root, without the
	// query string.
	URI string
	// Env maps CGI-style header keys to verbatim values.
	Env map[string]string
	// Query holds the parsed query parameters. Names beginning with
	// "X-Amz" are stored lowercased.
	Query map[string]string
}

// NewRequest builds a snapshot from an *http.Request. Multi-valued headers
// and query parameters keep their first value, matching the environment map
// the signing layer operates on.
func NewRequest(transactionID string, r *http.Request) *Request {
	env := make(map[string]string, len(r.Header))
	for name, values := range r.Header {
		if len(values) == 0 {
			continue
		}
		env[envKey(name)] = values[0]
	}
	query := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if strings.HasPrefix(name, "X-Amz") {
			name = strings.ToLower(name)
		}
		query[name] = values[0]
	}
	return &Request{
		TransactionID: transactionID,
		Method:        r.Method,
		URI:           r.URL.Path,
		Env:           env,
		Query:         query,
	}
}

// envKey converts a canonical header name to its CGI environment form:
// "X-Amz-Date" becomes "HTTP_X_AMZ_DATE".
func envKey(name string) string {
	return "HTTP_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Header returns the value stored for a canonical header name.
func (r *Request) Header(name string) string {
	return r.Env[envKey(name)]
}
