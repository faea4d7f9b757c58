// Package grpcverify is the RPC transport to the Authenticator service.
//
// One shared client connection backs all requests. When the runtime config
// changes the connection's URI or reconnect backoff, the connection is
// rebuilt and swapped atomically; in-flight calls keep the handle they
// borrowed, and the old connection closes only after its last borrower
// finishes.
package grpcverify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/wzshiming/handoff/pkg/handoff"
	authenticatorv1 "github.com/wzshiming/handoff/pkg/authenticator/v1"
)

// channelHandle ties one connection to the calls borrowed from it. The
// client's current slot holds one reference; each in-flight call holds
// another. The connection closes when the last reference is released, so a
// swap never fails a call already dispatched on the old channel.
type channelHandle struct {
	conn *grpc.ClientConn
	stub authenticatorv1.AuthenticatorServiceClient
	refs atomic.Int64
}

func newChannelHandle(conn *grpc.ClientConn) *channelHandle {
	h := &channelHandle{
		conn: conn,
		stub: authenticatorv1.NewAuthenticatorServiceClient(conn),
	}
	h.refs.Store(1)
	return h
}

func (h *channelHandle) acquire() {
	h.refs.Add(1)
}

func (h *channelHandle) release() {
	if h.refs.Add(-1) == 0 {
		h.conn.Close()
	}
}

// Client dispatches verification calls over gRPC. It implements
// handoff.Verifier.
type Client struct {
	mu  sync.RWMutex
	cur *channelHandle

	dialOpts []grpc.DialOption
	logger   *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDialOptions appends extra gRPC dial options, applied after the
// defaults. Used by tests to dial in-process listeners.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) { c.dialOpts = append(c.dialOpts, opts...) }
}

// WithLogger sets the client's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client connected per the given config snapshot. A
// construction failure here is fatal to the caller; later rebuild failures
// only log and keep the previous connection.
func New(cfg *handoff.Config, opts ...Option) (*Client, error) {
	c := &Client{logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	conn, err := c.dial(cfg)
	if err != nil {
		return nil, fmt.Errorf("grpcverify: dial %s: %w", cfg.GRPCURI, err)
	}
	c.cur = newChannelHandle(conn)
	return c, nil
}

func (c *Client) dial(cfg *handoff.Config) (*grpc.ClientConn, error) {
	bk := backoff.DefaultConfig
	bk.BaseDelay = cfg.InitialBackoff
	bk.MaxDelay = cfg.MaxBackoff

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff:           bk,
			MinConnectTimeout: cfg.MinBackoff,
		}),
	}
	opts = append(opts, c.dialOpts...)
	return grpc.NewClient(cfg.GRPCURI, opts...)
}

// ConfigChanged is the config store watcher. Backoff arguments are folded
// into the dial options before any URI-induced rebuild, so a batch changing
// both takes effect in one swap. A rebuild failure keeps the old connection.
func (c *Client) ConfigChanged(old, cur *handoff.Config) {
	if old.GRPCURI == cur.GRPCURI &&
		old.InitialBackoff == cur.InitialBackoff &&
		old.MinBackoff == cur.MinBackoff &&
		old.MaxBackoff == cur.MaxBackoff {
		return
	}
	if err := c.rebuild(cur); err != nil {
		c.logger.Printf("grpcverify: keeping previous channel, rebuild failed: %v", err)
	}
}

func (c *Client) rebuild(cfg *handoff.Config) error {
	conn, err := c.dial(cfg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	old := c.cur
	c.cur = newChannelHandle(conn)
	c.mu.Unlock()
	if old != nil {
		// Drops the current-slot reference. In-flight borrowers keep the
		// old connection alive until they release.
		old.release()
	}
	return nil
}

// handle borrows the current channel. Callers release it when their call
// completes; a concurrent swap neither blocks them nor fails them.
func (c *Client) handle() *channelHandle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h := c.cur
	if h != nil {
		h.acquire()
	}
	return h
}

// Close releases the client's reference to the underlying connection. It
// closes once any in-flight calls finish.
func (c *Client) Close() error {
	c.mu.Lock()
	h := c.cur
	c.cur = nil
	c.mu.Unlock()
	if h != nil {
		h.release()
	}
	return nil
}

// Verify asks the Authenticator for a verdict on one request.
func (c *Client) Verify(ctx context.Context, req *handoff.Request, authHeader string, params *handoff.AuthorizationParameters) handoff.Verdict {
	r := &authenticatorv1.AuthenticateRESTRequest{
		TransactionId:       req.TransactionID,
		StringToSign:        req.StringToSign,
		AuthorizationHeader: authHeader,
	}
	if params.Valid() {
		r.HttpMethod = methodEnum(params.Method)
		r.BucketName = params.BucketName
		r.ObjectKey = params.ObjectKeyName
		r.XAmzHeaders = params.HTTPHeaders
		r.QueryParameters = params.QueryParams
	}

	h := c.handle()
	if h == nil {
		return handoff.DenyAccess(handoff.TransportError, "authenticator channel closed")
	}
	defer h.release()

	resp, err := h.stub.AuthenticateREST(ctx, r)
	if err == nil {
		return handoff.Accept(resp.GetUserId(), "")
	}

	st, ok := status.FromError(err)
	if !ok {
		return handoff.DenyAccess(handoff.TransportError, err.Error())
	}
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *authenticatorv1.S3ErrorDetails:
			return handoff.Deny(handoff.AuthError, Translate(d), d.GetMessage())
		case error:
			return handoff.Deny(handoff.InternalError, handoff.CodeInternalError,
				"undecodable error details from Authenticator")
		}
	}
	return handoff.DenyAccess(handoff.TransportError, st.Message())
}

// GetSigningKey fetches the day-bounded chunk signing key.
func (c *Client) GetSigningKey(ctx context.Context, transactionID, authHeader string) ([]byte, error) {
	h := c.handle()
	if h == nil {
		return nil, errors.New("grpcverify: authenticator channel closed")
	}
	defer h.release()

	resp, err := h.stub.GetSigningKey(ctx, &authenticatorv1.GetSigningKeyRequest{
		TransactionId:       transactionID,
		AuthorizationHeader: authHeader,
	})
	if err != nil {
		return nil, err
	}
	key := resp.GetSigningKey()
	if len(key) == 0 {
		return nil, errors.New("grpcverify: empty signing key")
	}
	return key, nil
}

func methodEnum(method string) authenticatorv1.AuthenticateRESTRequest_HTTPMethod {
	switch method {
	case "GET":
		return authenticatorv1.AuthenticateRESTRequest_HTTP_METHOD_GET
	case "PUT":
		return authenticatorv1.AuthenticateRESTRequest_HTTP_METHOD_PUT
	case "POST":
		return authenticatorv1.AuthenticateRESTRequest_HTTP_METHOD_POST
	case "DELETE":
		return authenticatorv1.AuthenticateRESTRequest_HTTP_METHOD_DELETE
	case "HEAD":
		return authenticatorv1.AuthenticateRESTRequest_HTTP_METHOD_HEAD
	}
	return authenticatorv1.AuthenticateRESTRequest_HTTP_METHOD_UNSPECIFIED
}
