package handoff

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	// ErrMissingCredential means no Authorization header was present and
	// none could be synthesized from the query parameters.
	ErrMissingCredential = errors.New("handoff: no credential in request")
	// ErrPresignedExpired means a presigned URL's validity window has
	// passed, or its temporal parameters could not be parsed.
	ErrPresignedExpired = errors.New("handoff: presigned URL expired")
)

const (
	v2Prefix = "AWS "
	v4Prefix = "AWS4-HMAC-SHA256"
)

// normalizeAuthorization produces the single canonical Authorization header
// for a request. An inbound header is used verbatim. Otherwise one is
// synthesized from v2 (AWSAccessKeyId/Signature) or v4 (x-amz-credential/
// x-amz-signedheaders/x-amz-signature) presigned URL parameters, and the
// presigned expiry check is applied when enabled.
func normalizeAuthorization(req *Request, cfg *Config, now time.Time) (string, error) {
	if h := req.Env["HTTP_AUTHORIZATION"]; h != "" {
		return h, nil
	}

	var header string
	switch {
	case req.Query["AWSAccessKeyId"] != "":
		key := req.Query["AWSAccessKeyId"]
		sig := req.Query["Signature"]
		if sig == "" {
			return "", ErrMissingCredential
		}
		header = fmt.Sprintf("%s%s:%s", v2Prefix, key, sig)

	case req.Query["x-amz-credential"] != "":
		cred := req.Query["x-amz-credential"]
		signedHeaders := req.Query["x-amz-signedheaders"]
		sig := req.Query["x-amz-signature"]
		if signedHeaders == "" || sig == "" {
			return "", ErrMissingCredential
		}
		header = fmt.Sprintf("%s Credential=%s, SignedHeaders=%s, Signature=%s",
			v4Prefix, cred, signedHeaders, sig)

	default:
		return "", ErrMissingCredential
	}

	if cfg.PresignedExpiryCheck && !validPresignedTime(req.Query, now) {
		return "", ErrPresignedExpired
	}
	return header, nil
}

// validPresignedTime reports whether a presigned URL is still within its
// validity window at the given instant. Missing or unparseable temporal
// parameters count as expired.
func validPresignedTime(query map[string]string, now time.Time) bool {
	if query["AWSAccessKeyId"] != "" {
		expires, err := strconv.ParseInt(query["Expires"], 10, 64)
		if err != nil {
			return false
		}
		return expires >= now.Unix()
	}

	if query["x-amz-credential"] != "" {
		date, err := time.Parse("20060102T150405Z", query["x-amz-date"])
		if err != nil {
			return false
		}
		delta, err := strconv.ParseInt(query["x-amz-expires"], 10, 64)
		if err != nil || delta < 0 {
			return false
		}
		return date.Unix()+delta >= now.Unix()
	}

	return false
}
