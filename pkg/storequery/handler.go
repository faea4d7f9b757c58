package storequery

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/wzshiming/handoff/pkg/storage"
)

// queryPageSize is how many index entries each listing call asks for while
// resolving objectstatus.
const queryPageSize = 100

// Lister is the slice of the object store the side-channel reads from.
type Lister interface {
	ListObjectVersions(bucket, prefix, marker string, maxKeys int) (*storage.VersionPage, error)
	ListMultipartUploads(bucket, prefix, marker string, maxUploads int) (*storage.UploadPage, error)
}

// Handler executes parsed side-channel commands against the store.
type Handler struct {
	store  Lister
	logger *log.Logger
}

type HandlerOption func(*Handler)

func WithLogger(logger *log.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

func NewHandler(store Lister, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:  store,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type pingResult struct {
	RequestID string `json:"request_id"`
}

type pingResponse struct {
	Result pingResult `json:"StoreQueryPingResult"`
}

type objectStatus struct {
	Bucket                    string `json:"bucket"`
	Key                       string `json:"key"`
	Deleted                   bool   `json:"deleted"`
	MultipartUploadInProgress bool   `json:"multipart_upload_in_progress"`
	VersionID                 string `json:"version_id,omitempty"`
	Size                      *int64 `json:"size,omitempty"`
	MultipartUploadID         string `json:"multipart_upload_id,omitempty"`
}

type objectStatusResponse struct {
	Object objectStatus `json:"Object"`
}

type objectStatusResult struct {
	Result objectStatusResponse `json:"StoreQueryObjectStatusResult"`
}

// ServeQuery parses the header value and runs the command it names. The
// bucket and key arguments describe the dispatch site; they are empty when
// the surrounding request does not address one. Any failure to parse or any
// command used outside its context is terminal for the request.
func (h *Handler) ServeQuery(w http.ResponseWriter, headerValue string, qctx Context, bucket, key string) {
	cmd, err := ParseHeader(headerValue)
	if err != nil {
		h.logger.Printf("storequery: rejected header: %v", err)
		http.Error(w, "malformed storequery header", http.StatusInternalServerError)
		return
	}

	switch cmd.Name {
	case "ping":
		if len(cmd.Params) != 1 {
			http.Error(w, "ping takes one parameter", http.StatusInternalServerError)
			return
		}
		h.logger.Printf("storequery: ping %q", cmd.Params[0])
		writeJSON(w, http.StatusOK, pingResponse{Result: pingResult{RequestID: cmd.Params[0]}})
	case "objectstatus":
		if len(cmd.Params) != 0 {
			http.Error(w, "objectstatus takes no parameters", http.StatusInternalServerError)
			return
		}
		if qctx != ObjectContext {
			http.Error(w, "objectstatus requires an object request", http.StatusInternalServerError)
			return
		}
		status, err := h.objectStatus(bucket, key)
		if err == ErrNotFound {
			http.Error(w, "no such key", http.StatusNotFound)
			return
		}
		if err != nil {
			h.logger.Printf("storequery: objectstatus %s/%s failed: %v", bucket, key, err)
			http.Error(w, "objectstatus failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, objectStatusResult{Result: objectStatusResponse{Object: *status}})
	default:
		http.Error(w, "unknown storequery command", http.StatusInternalServerError)
	}
}

// objectStatus resolves a key in two passes: first the version index for a
// committed object (the newest entry decides, a delete marker counts as
// deleted), then the upload table for an in-flight multipart upload.
func (h *Handler) objectStatus(bucket, key string) (*objectStatus, error) {
	marker := ""
	for {
		page, err := h.store.ListObjectVersions(bucket, key, marker, queryPageSize)
		if err != nil {
			return nil, err
		}
		for _, v := range page.Versions {
			if v.Key != key || !v.IsLatest {
				continue
			}
			status := &objectStatus{
				Bucket:  bucket,
				Key:     key,
				Deleted: v.IsDeleteMarker,
			}
			if !v.IsDeleteMarker {
				status.VersionID = v.VersionID
				size := v.Size
				status.Size = &size
			}
			return status, nil
		}
		if !page.IsTruncated {
			break
		}
		marker = page.NextMarker
	}

	marker = ""
	for {
		page, err := h.store.ListMultipartUploads(bucket, key, marker, queryPageSize)
		if err != nil {
			return nil, err
		}
		for _, u := range page.Uploads {
			if u.Key != key {
				continue
			}
			return &objectStatus{
				Bucket:                    bucket,
				Key:                       key,
				MultipartUploadInProgress: true,
				MultipartUploadID:         u.UploadID,
			}, nil
		}
		if !page.IsTruncated {
			break
		}
		marker = page.NextMarker
	}
	return nil, ErrNotFound
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
