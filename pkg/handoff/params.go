package handoff

import (
	"strings"
)

// AuthorizationParameters is the optional enriched request context that
// accompanies a verification call. A snapshot that could not be captured
// cleanly carries valid=false and is suppressed by the engine rather than
// failing the request.
type AuthorizationParameters struct {
	valid bool

	Method        string
	BucketName    string
	ObjectKeyName string
	// HTTPHeaders holds the request's x-amz-* headers with lowercase
	// hyphenated names, values verbatim.
	HTTPHeaders map[string]string
	Path        string
	QueryParams map[string]string
}

// Valid reports whether the snapshot is well-formed. Fields of an invalid
// snapshot carry no meaning.
func (p *AuthorizationParameters) Valid() bool {
	return p != nil && p.valid
}

// CaptureParameters snapshots the request context. The snapshot
// is marked invalid if the method is empty or the relative URI does not
// begin with "/".
func CaptureParameters(req *Request) *AuthorizationParameters {
	p := &AuthorizationParameters{
		HTTPHeaders: make(map[string]string),
		QueryParams: make(map[string]string),
	}

	p.Method = req.Method
	if p.Method == "" {
		return p
	}

	uri := req.URI
	if q := strings.IndexByte(uri, '?'); q >= 0 {
		uri = uri[:q]
	}
	if !strings.HasPrefix(uri, "/") {
		return p
	}
	p.Path = uri

	rest := uri[1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		p.BucketName = rest[:i]
		p.ObjectKeyName = rest[i+1:]
	} else {
		p.BucketName = rest
	}

	for key, value := range req.Env {
		if !strings.HasPrefix(key, "HTTP_X_AMZ_") {
			continue
		}
		name := strings.TrimPrefix(key, "HTTP_")
		name = strings.ToLower(strings.ReplaceAll(name, "_", "-"))
		p.HTTPHeaders[name] = value
	}

	for key, value := range req.Query {
		p.QueryParams[key] = value
	}

	p.valid = true
	return p
}
