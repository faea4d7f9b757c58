// Package httpverify is the HTTP POST transport to the Authenticator
// service. It predates the RPC transport and remains available as the
// alternate verification path; it has no signing key endpoint, so chunked
// uploads cannot be served through it.
package httpverify

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/wzshiming/handoff/pkg/handoff"
)

// Client dispatches verification calls as JSON over HTTP. It implements
// handoff.Verifier.
type Client struct {
	mu       sync.RWMutex
	endpoint string
	httpc    *http.Client

	logger *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a client posting to the verify endpoint derived from the
// config snapshot's base URI.
func New(cfg *handoff.Config, opts ...Option) *Client {
	c := &Client{
		endpoint: verifyEndpoint(cfg.HTTPURI),
		httpc:    newHTTPClient(cfg.VerifySSL),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// verifyEndpoint normalizes the base URI's trailing slash and appends the
// verify path.
func verifyEndpoint(base string) string {
	return strings.TrimRight(base, "/") + "/verify"
}

func newHTTPClient(verifySSL bool) *http.Client {
	if verifySSL {
		return &http.Client{}
	}
	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

// ConfigChanged is the config store watcher covering the HTTP URI and the
// TLS verification toggle.
func (c *Client) ConfigChanged(old, cur *handoff.Config) {
	if old.HTTPURI == cur.HTTPURI && old.VerifySSL == cur.VerifySSL {
		return
	}
	c.mu.Lock()
	c.endpoint = verifyEndpoint(cur.HTTPURI)
	if old.VerifySSL != cur.VerifySSL {
		c.httpc = newHTTPClient(cur.VerifySSL)
	}
	c.mu.Unlock()
}

func (c *Client) snapshot() (string, *http.Client) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint, c.httpc
}

type verifyRequest struct {
	StringToSign  string         `json:"stringToSign"`
	AccessKeyID   string         `json:"accessKeyId"`
	Authorization string         `json:"authorization"`
	EAKParameters *eakParameters `json:"eakParameters,omitempty"`
}

type eakParameters struct {
	Method        string `json:"method"`
	BucketName    string `json:"bucketName"`
	ObjectKeyName string `json:"objectKeyName"`
}

type verifyResponse struct {
	Message *string `json:"message"`
	UID     *string `json:"uid"`
}

// Verify posts the signing inputs to the Authenticator and folds the HTTP
// status into a verdict.
func (c *Client) Verify(ctx context.Context, req *handoff.Request, authHeader string, params *handoff.AuthorizationParameters) handoff.Verdict {
	body := verifyRequest{
		StringToSign:  base64.StdEncoding.EncodeToString(req.StringToSign),
		AccessKeyID:   req.AccessKeyID,
		Authorization: authHeader,
	}
	if params.Valid() {
		body.EAKParameters = &eakParameters{
			Method:        params.Method,
			BucketName:    params.BucketName,
			ObjectKeyName: params.ObjectKeyName,
		}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return handoff.Deny(handoff.InternalError, handoff.CodeInternalError, err.Error())
	}

	endpoint, httpc := c.snapshot()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return handoff.Deny(handoff.InternalError, handoff.CodeInternalError, err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(httpReq)
	if err != nil {
		return handoff.DenyAccess(handoff.TransportError, err.Error())
	}
	defer resp.Body.Close()

	var parsed verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return handoff.Deny(handoff.InternalError, handoff.CodeInternalError,
			fmt.Sprintf("bad verify response: %v", err))
	}
	if parsed.Message == nil || parsed.UID == nil {
		return handoff.Deny(handoff.InternalError, handoff.CodeInternalError,
			"verify response missing message or uid")
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return handoff.Accept(*parsed.UID, *parsed.Message)
	case http.StatusUnauthorized:
		return handoff.Deny(handoff.AuthError, handoff.CodeSignatureNoMatch, *parsed.Message)
	case http.StatusNotFound:
		return handoff.Deny(handoff.AuthError, handoff.CodeInvalidAccessKey, *parsed.Message)
	default:
		c.logger.Printf("httpverify: unexpected status %d for txn %s", resp.StatusCode, req.TransactionID)
		return handoff.DenyAccess(handoff.AuthError, *parsed.Message)
	}
}

// GetSigningKey is not part of the HTTP protocol. The engine treats the
// error by denying the chunked upload.
func (c *Client) GetSigningKey(ctx context.Context, transactionID, authHeader string) ([]byte, error) {
	return nil, fmt.Errorf("httpverify: signing keys unavailable over HTTP transport")
}
