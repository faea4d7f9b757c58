package handoff

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

// streamingPayload is the content hash sentinel marking a chunked upload.
const streamingPayload = "STREAMING-AWS4-HMAC-SHA256-PAYLOAD"

// Verifier is the transport capability the engine dispatches through. Two
// implementations exist: an RPC client and an HTTP POST client.
type Verifier interface {
	// Verify asks the Authenticator for a verdict on one request.
	// Transport failures are reported inside the Verdict, not as errors.
	Verify(ctx context.Context, req *Request, authHeader string, params *AuthorizationParameters) Verdict
	// GetSigningKey fetches the day-bounded chunk signing key for the
	// credential named by authHeader.
	GetSigningKey(ctx context.Context, transactionID, authHeader string) ([]byte, error)
}

// Engine runs the per-request authentication pipeline.
type Engine struct {
	store    *Store
	verifier Verifier
	logger   *log.Logger
	now      func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine reading runtime settings from store and
// dispatching through verifier.
func NewEngine(store *Store, verifier Verifier, opts ...EngineOption) *Engine {
	e := &Engine{
		store:    store,
		verifier: verifier,
		logger:   log.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Authenticate runs the pipeline for one request: normalize the credential,
// capture context per policy, dispatch to the Authenticator, and for chunked
// uploads attach the signing key. The runtime config is loaded once; the
// request observes that snapshot throughout.
func (e *Engine) Authenticate(ctx context.Context, req *Request) Verdict {
	cfg := e.store.Load()

	header, err := normalizeAuthorization(req, cfg, e.now())
	if err != nil {
		if errors.Is(err, ErrPresignedExpired) {
			return DenyAccess(AuthError, "presigned URL expired")
		}
		return DenyAccess(AuthError, "missing or incomplete credential")
	}

	if !cfg.SignatureV2Enabled && strings.HasPrefix(header, v2Prefix) {
		return DenyAccess(AuthError, "V2 signatures disabled")
	}

	var params *AuthorizationParameters
	if cfg.CaptureMode == CaptureAlways ||
		(cfg.CaptureMode == CaptureWithToken && req.SessionToken != "") {
		if p := CaptureParameters(req); p.Valid() {
			params = p
		}
	}

	chunked := req.Header("X-Amz-Content-Sha256") == streamingPayload
	if chunked && !cfg.ChunkedUploadEnabled {
		return DenyAccess(AuthError, "chunked upload disabled")
	}

	verdict := e.verifier.Verify(ctx, req, header, params)
	if !verdict.OK() {
		return verdict
	}

	if chunked {
		key, err := e.verifier.GetSigningKey(ctx, req.TransactionID, header)
		if err != nil {
			e.logger.Printf("handoff: signing key fetch failed for txn %s: %v",
				req.TransactionID, err)
			return DenyAccess(TransportError, "signing key unavailable")
		}
		verdict = verdict.WithSigningKey(key)
	}
	return verdict
}
