// Package server implements the S3 REST front end of the gateway. Every
// request is authenticated by delegating its signing inputs to an external
// authenticator before any bucket or object handler runs; requests carrying
// the storequery header bypass that and are answered from the bucket index.
package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wzshiming/handoff/pkg/handoff"
	"github.com/wzshiming/handoff/pkg/middleware"
	"github.com/wzshiming/handoff/pkg/storage"
	"github.com/wzshiming/handoff/pkg/storequery"
)

// S3Handler serves the S3-compatible API.
type S3Handler struct {
	storage *storage.Storage
	engine  *handoff.Engine
	query   *storequery.Handler
	region  string
}

// Option is a functional option for configuring S3Handler
type Option func(*S3Handler)

// WithRegion sets the region reported in responses.
func WithRegion(region string) Option {
	return func(h *S3Handler) {
		h.region = region
	}
}

// NewS3Handler creates a new S3 server delegating authentication to engine.
func NewS3Handler(store *storage.Storage, engine *handoff.Engine, opts ...Option) *S3Handler {
	h := &S3Handler{
		storage: store,
		engine:  engine,
		query:   storequery.NewHandler(store),
		region:  "us-east-1", // default region
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// splitPath splits a request path into bucket and key. The key keeps any
// inner slashes; a trailing slash yields an empty key.
func splitPath(path string) (bucket, key string) {
	path = strings.TrimPrefix(path, "/")
	parts := strings.SplitN(path, "/", 2)
	bucket = parts[0]
	if len(parts) > 1 {
		key = strings.TrimPrefix(parts[1], "/")
	}
	return bucket, key
}

// queryContext classifies a request path for the storequery dispatcher.
func queryContext(bucket, key string) storequery.Context {
	switch {
	case bucket == "":
		return storequery.ServiceContext
	case key == "":
		return storequery.BucketContext
	default:
		return storequery.ObjectContext
	}
}

// ServeHTTP handles all S3 requests.
func (s *S3Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	transactionID := uuid.New().String()

	// The storequery side channel is answered before authentication.
	if value := r.Header.Get(storequery.HeaderName); value != "" {
		bucket, key := splitPath(r.URL.Path)
		s.query.ServeQuery(w, value, queryContext(bucket, key), bucket, key)
		return
	}

	r, ok := s.authenticate(w, r, transactionID)
	if !ok {
		return
	}

	path, err := middleware.SanitizePath(r.URL.Path)
	if err != nil {
		s.errorResponse(w, r, "InvalidURI", "Couldn't parse the specified URI", http.StatusBadRequest)
		return
	}
	bucket, key := splitPath(path)

	// Root path - list buckets
	if bucket == "" {
		if r.Method == http.MethodGet {
			s.handleListBuckets(w, r)
		} else {
			s.errorResponse(w, r, "MethodNotAllowed", "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	query := r.URL.Query()
	if key == "" {
		switch r.Method {
		case http.MethodPut:
			s.handleCreateBucket(w, r, bucket)
		case http.MethodGet:
			switch {
			case query.Has("uploads"):
				s.handleListMultipartUploads(w, r, bucket)
			case query.Has("versions"):
				s.handleListObjectVersions(w, r, bucket)
			default:
				s.handleListObjects(w, r, bucket)
			}
		case http.MethodPost:
			if query.Has("delete") {
				s.handleDeleteObjects(w, r, bucket)
			} else {
				s.errorResponse(w, r, "MethodNotAllowed", "Method not allowed", http.StatusMethodNotAllowed)
			}
		case http.MethodDelete:
			s.handleDeleteBucket(w, r, bucket)
		case http.MethodHead:
			s.handleHeadBucket(w, r, bucket)
		default:
			s.errorResponse(w, r, "MethodNotAllowed", "Method not allowed", http.StatusMethodNotAllowed)
		}
	} else {
		switch r.Method {
		case http.MethodPost:
			if query.Has("uploads") {
				s.handleInitiateMultipartUpload(w, r, bucket, key)
			} else if query.Has("uploadId") {
				s.handleCompleteMultipartUpload(w, r, bucket, key, query.Get("uploadId"))
			} else {
				s.errorResponse(w, r, "MethodNotAllowed", "Method not allowed", http.StatusMethodNotAllowed)
			}
		case http.MethodPut:
			if query.Has("uploadId") {
				if partNumber := query.Get("partNumber"); partNumber != "" {
					s.handleUploadPart(w, r, bucket, key, query.Get("uploadId"), partNumber)
				} else {
					s.errorResponse(w, r, "MissingParameter", "Missing partNumber parameter", http.StatusBadRequest)
				}
			} else {
				s.handlePutObject(w, r, bucket, key)
			}
		case http.MethodGet:
			if query.Has("uploadId") {
				s.handleListParts(w, r, bucket, key, query.Get("uploadId"))
			} else {
				s.handleGetObject(w, r, bucket, key)
			}
		case http.MethodHead:
			s.handleHeadObject(w, r, bucket, key)
		case http.MethodDelete:
			if query.Has("uploadId") {
				s.handleAbortMultipartUpload(w, r, bucket, key, query.Get("uploadId"))
			} else {
				s.handleDeleteObject(w, r, bucket, key)
			}
		default:
			s.errorResponse(w, r, "MethodNotAllowed", "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
