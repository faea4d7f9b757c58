// Package sigv4 computes AWS signature inputs without holding any secret
// key material. The gateway forwards the resulting string to sign to an
// external authenticator for verification; only streaming chunk signatures
// are checked locally, using a signing key the authenticator hands back.
package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const (
	v2Prefix = "AWS "
	v4Prefix = "AWS4-HMAC-SHA256"
)

var (
	// ErrUnsignedRequest means the request carries no recognized AWS
	// signature, in the header or the query string.
	ErrUnsignedRequest = errors.New("sigv4: request carries no recognized signature")
	// ErrMalformedAuthorization means a signature was present but its
	// parameters could not be parsed.
	ErrMalformedAuthorization = errors.New("sigv4: malformed authorization parameters")
)

// StringToSign reconstructs the string the client signed, for both header
// and presigned forms of signature v2 and v4. The caller sends it to the
// authenticator alongside the authorization header.
func StringToSign(r *http.Request) ([]byte, error) {
	query := r.URL.Query()
	authHeader := r.Header.Get("Authorization")

	switch {
	case strings.HasPrefix(authHeader, v4Prefix):
		return stringToSignV4Header(r, authHeader)
	case strings.HasPrefix(authHeader, v2Prefix):
		return stringToSignV2(r, false), nil
	case query.Get("X-Amz-Algorithm") == v4Prefix:
		return stringToSignV4Query(r)
	case query.Get("AWSAccessKeyId") != "":
		return stringToSignV2(r, true), nil
	}
	return nil, ErrUnsignedRequest
}

// ParseAuthorizationV4 splits a v4 authorization header into its
// Credential, SignedHeaders and Signature parameters.
func ParseAuthorizationV4(authHeader string) (credential, signedHeaders, signature string, err error) {
	rest, ok := strings.CutPrefix(authHeader, v4Prefix+" ")
	if !ok {
		return "", "", "", ErrMalformedAuthorization
	}
	for _, part := range strings.Split(rest, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "Credential":
			credential = kv[1]
		case "SignedHeaders":
			signedHeaders = kv[1]
		case "Signature":
			signature = kv[1]
		}
	}
	if credential == "" || signedHeaders == "" || signature == "" {
		return "", "", "", ErrMalformedAuthorization
	}
	return credential, signedHeaders, signature, nil
}

// CredentialScope drops the access key from a v4 Credential, leaving
// date/region/service/aws4_request.
func CredentialScope(credential string) (string, error) {
	parts := strings.SplitN(credential, "/", 2)
	if len(parts) != 2 || !strings.HasSuffix(parts[1], "/aws4_request") {
		return "", ErrMalformedAuthorization
	}
	return parts[1], nil
}

func stringToSignV4Header(r *http.Request, authHeader string) ([]byte, error) {
	credential, signedHeaders, _, err := ParseAuthorizationV4(authHeader)
	if err != nil {
		return nil, err
	}
	scope, err := CredentialScope(credential)
	if err != nil {
		return nil, err
	}

	timestamp := r.Header.Get("X-Amz-Date")
	if timestamp == "" {
		timestamp = r.Header.Get("Date")
	}
	payloadHash := r.Header.Get("X-Amz-Content-Sha256")
	if payloadHash == "" {
		payloadHash = "UNSIGNED-PAYLOAD"
	}

	canonical := canonicalRequest(r, signedHeaders, payloadHash, false)
	return buildV4StringToSign(timestamp, scope, canonical), nil
}

func stringToSignV4Query(r *http.Request) ([]byte, error) {
	query := r.URL.Query()
	credential := query.Get("X-Amz-Credential")
	signedHeaders := query.Get("X-Amz-SignedHeaders")
	timestamp := query.Get("X-Amz-Date")
	if credential == "" || signedHeaders == "" || timestamp == "" {
		return nil, ErrMalformedAuthorization
	}
	scope, err := CredentialScope(credential)
	if err != nil {
		return nil, err
	}

	canonical := canonicalRequest(r, signedHeaders, "UNSIGNED-PAYLOAD", true)
	return buildV4StringToSign(timestamp, scope, canonical), nil
}

func buildV4StringToSign(timestamp, scope, canonical string) []byte {
	hash := sha256.Sum256([]byte(canonical))
	return []byte(strings.Join([]string{
		v4Prefix,
		timestamp,
		scope,
		hex.EncodeToString(hash[:]),
	}, "\n"))
}

// canonicalRequest builds the v4 canonical request. For presigned URLs the
// X-Amz-Signature parameter is excluded from the canonical query string.
func canonicalRequest(r *http.Request, signedHeaders, payloadHash string, presigned bool) string {
	uri := pathEscape(r.URL.Path)
	if uri == "" {
		uri = "/"
	}

	query := r.URL.Query()
	var queryParams []string
	for key := range query {
		if presigned && key == "X-Amz-Signature" {
			continue
		}
		for _, value := range query[key] {
			queryParams = append(queryParams, url.QueryEscape(key)+"="+url.QueryEscape(value))
		}
	}
	sort.Strings(queryParams)

	var canonicalHeaders []string
	for _, header := range strings.Split(signedHeaders, ";") {
		var value string
		if strings.ToLower(header) == "host" {
			value = r.Host
		} else {
			value = r.Header.Get(header)
		}
		canonicalHeaders = append(canonicalHeaders, strings.ToLower(header)+":"+strings.TrimSpace(value)+"\n")
	}
	sort.Strings(canonicalHeaders)

	return strings.Join([]string{
		r.Method,
		uri,
		strings.Join(queryParams, "&"),
		strings.Join(canonicalHeaders, ""),
		signedHeaders,
		payloadHash,
	}, "\n")
}

func pathEscape(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		segments[i] = url.QueryEscape(segment)
	}
	return strings.Join(segments, "/")
}

// v2Subresources are the query parameters included in the v2 canonicalized
// resource, in sorted order.
var v2Subresources = []string{
	"acl", "cors", "delete", "lifecycle", "location", "logging",
	"notification", "partNumber", "policy", "requestPayment",
	"response-cache-control", "response-content-disposition",
	"response-content-encoding", "response-content-language",
	"response-content-type", "response-expires", "tagging", "torrent",
	"uploadId", "uploads", "versionId", "versioning", "versions", "website",
}

// stringToSignV2 builds the v2 string to sign. Presigned URLs place the
// Expires value where header authentication places the Date.
func stringToSignV2(r *http.Request, presigned bool) []byte {
	var date string
	if presigned {
		date = r.URL.Query().Get("Expires")
	} else if r.Header.Get("X-Amz-Date") == "" {
		date = r.Header.Get("Date")
	}

	var b strings.Builder
	b.WriteString(r.Method)
	b.WriteByte('\n')
	b.WriteString(r.Header.Get("Content-MD5"))
	b.WriteByte('\n')
	b.WriteString(r.Header.Get("Content-Type"))
	b.WriteByte('\n')
	b.WriteString(date)
	b.WriteByte('\n')
	b.WriteString(canonicalizedAmzHeaders(r))
	b.WriteString(canonicalizedResource(r))
	return []byte(b.String())
}

func canonicalizedAmzHeaders(r *http.Request) string {
	var names []string
	for name := range r.Header {
		if strings.HasPrefix(strings.ToLower(name), "x-amz-") {
			names = append(names, strings.ToLower(name))
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s:%s\n", name, strings.TrimSpace(r.Header.Get(name)))
	}
	return b.String()
}

func canonicalizedResource(r *http.Request) string {
	var b strings.Builder
	b.WriteString(r.URL.Path)

	query := r.URL.Query()
	var included []string
	for _, name := range v2Subresources {
		if !query.Has(name) {
			continue
		}
		if value := query.Get(name); value != "" {
			included = append(included, name+"="+value)
		} else {
			included = append(included, name)
		}
	}
	if len(included) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(included, "&"))
	}
	return b.String()
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
