package handoff

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// CaptureMode decides when the engine snapshots AuthorizationParameters.
type CaptureMode int

const (
	// CaptureNever skips the snapshot entirely.
	CaptureNever CaptureMode = iota
	// CaptureWithToken snapshots only requests carrying a session token.
	CaptureWithToken
	// CaptureAlways snapshots every request.
	CaptureAlways
)

// String returns the mode name.
func (m CaptureMode) String() string {
	switch m {
	case CaptureNever:
		return "Never"
	case CaptureWithToken:
		return "WithToken"
	case CaptureAlways:
		return "Always"
	}
	return "Unknown"
}

// reduceCaptureMode folds the (always, withtoken) toggle pair into a mode.
// Always dominates, then WithToken.
func reduceCaptureMode(always, withToken bool) CaptureMode {
	switch {
	case always:
		return CaptureAlways
	case withToken:
		return CaptureWithToken
	default:
		return CaptureNever
	}
}

// Config is one immutable snapshot of the runtime-tunable settings. A
// request loads a snapshot once and observes it unchanged for its lifetime.
// GRPCMode and PresignedExpiryCheck are set at boot and never change.
type Config struct {
	// GRPCMode selects the RPC transport; false selects the HTTP
	// transport. Boot-only.
	GRPCMode bool
	// PresignedExpiryCheck enables validity-window checking on synthesized
	// presigned credentials. Boot-only.
	PresignedExpiryCheck bool

	GRPCURI        string
	InitialBackoff time.Duration
	MinBackoff     time.Duration
	MaxBackoff     time.Duration

	HTTPURI   string
	VerifySSL bool

	ChunkedUploadEnabled bool
	SignatureV2Enabled   bool
	CaptureMode          CaptureMode

	// The capture mode is reduced from this toggle pair; both are kept so
	// clearing one leaves the other in force.
	authAlways    bool
	authWithToken bool
}

// DefaultConfig returns the boot defaults.
func DefaultConfig() Config {
	return Config{
		GRPCMode:             true,
		PresignedExpiryCheck: true,
		GRPCURI:              "dns:localhost:8003",
		InitialBackoff:       100 * time.Millisecond,
		MinBackoff:           100 * time.Millisecond,
		MaxBackoff:           5 * time.Second,
		VerifySSL:            true,
		ChunkedUploadEnabled: true,
		SignatureV2Enabled:   true,
		CaptureMode:          CaptureNever,
	}
}

// Runtime-mutable configuration keys.
const (
	KeyGRPCURI              = "handoff_grpc_uri"
	KeyInitialBackoff       = "handoff_grpc_arg_initial_reconnect_backoff_ms"
	KeyMinBackoff           = "handoff_grpc_arg_min_reconnect_backoff_ms"
	KeyMaxBackoff           = "handoff_grpc_arg_max_reconnect_backoff_ms"
	KeyEnableChunkedUpload  = "handoff_enable_chunked_upload"
	KeyEnableSignatureV2    = "handoff_enable_signature_v2"
	KeyAuthparamAlways      = "handoff_authparam_always"
	KeyAuthparamWithToken   = "handoff_authparam_withtoken"
	KeyPresignedExpiryCheck = "handoff_enable_presigned_expiry_check"
	KeyVerifySSL            = "handoff_verify_ssl"
	KeyURI                  = "handoff_uri"
)

// Store holds the current Config snapshot and notifies watchers when it is
// replaced. Readers get a cheap immutable snapshot; writers swap the whole
// snapshot under an exclusive lock.
type Store struct {
	mu       sync.RWMutex
	cur      *Config
	watchers []func(old, cur *Config)
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(cfg Config) *Store {
	c := cfg
	return &Store{cur: &c}
}

// Load returns the current snapshot. Callers must not mutate it.
func (s *Store) Load() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Watch registers a callback invoked after every snapshot replacement, with
// the old and new snapshots. Callbacks run outside the store's lock and must
// not call back into Apply.
func (s *Store) Watch(fn func(old, cur *Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Apply parses the given runtime key/value updates, swaps in a new snapshot,
// and notifies watchers. Boot-only settings present in values are ignored.
// An unknown key or an unparseable value aborts the whole batch.
func (s *Store) Apply(values map[string]string) error {
	s.mu.Lock()
	next := *s.cur

	for key, value := range values {
		switch key {
		case KeyGRPCURI:
			next.GRPCURI = value
		case KeyInitialBackoff, KeyMinBackoff, KeyMaxBackoff:
			ms, err := strconv.ParseInt(value, 10, 64)
			if err != nil || ms < 0 {
				s.mu.Unlock()
				return fmt.Errorf("config: bad value %q for %s", value, key)
			}
			d := time.Duration(ms) * time.Millisecond
			switch key {
			case KeyInitialBackoff:
				next.InitialBackoff = d
			case KeyMinBackoff:
				next.MinBackoff = d
			case KeyMaxBackoff:
				next.MaxBackoff = d
			}
		case KeyEnableChunkedUpload, KeyEnableSignatureV2,
			KeyAuthparamAlways, KeyAuthparamWithToken, KeyVerifySSL:
			b, err := strconv.ParseBool(value)
			if err != nil {
				s.mu.Unlock()
				return fmt.Errorf("config: bad value %q for %s", value, key)
			}
			switch key {
			case KeyEnableChunkedUpload:
				next.ChunkedUploadEnabled = b
			case KeyEnableSignatureV2:
				next.SignatureV2Enabled = b
			case KeyAuthparamAlways:
				next.authAlways = b
			case KeyAuthparamWithToken:
				next.authWithToken = b
			case KeyVerifySSL:
				next.VerifySSL = b
			}
		case KeyURI:
			next.HTTPURI = value
		case KeyPresignedExpiryCheck:
			// Boot-only.
		default:
			s.mu.Unlock()
			return fmt.Errorf("config: unknown key %s", key)
		}
	}

	next.CaptureMode = reduceCaptureMode(next.authAlways, next.authWithToken)

	old := s.cur
	s.cur = &next
	watchers := make([]func(old, cur *Config), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(old, &next)
	}
	return nil
}
