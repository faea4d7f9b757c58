package server

import (
	"fmt"
	"net/http"

	"github.com/wzshiming/handoff/pkg/storage"
)

// handlePutObject handles PutObject operation
func (s *S3Handler) handlePutObject(w http.ResponseWriter, r *http.Request, bucket, key string) {
	contentType := r.Header.Get("Content-Type")

	info, err := s.storage.PutObject(bucket, key, r.Body, contentType)
	if err != nil {
		switch err {
		case storage.ErrBucketNotFound:
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		case storage.ErrInvalidObjectKey:
			s.errorResponse(w, r, "InvalidArgument", "Invalid object key", http.StatusBadRequest)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("ETag", fmt.Sprintf("%q", info.ETag))
	w.Header().Set("x-amz-version-id", info.VersionID)
	w.WriteHeader(http.StatusOK)
}

// handleGetObject handles GetObject operation
func (s *S3Handler) handleGetObject(w http.ResponseWriter, r *http.Request, bucket, key string) {
	reader, info, err := s.storage.GetObject(bucket, key)
	if err != nil {
		switch err {
		case storage.ErrBucketNotFound:
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		case storage.ErrObjectNotFound:
			s.errorResponse(w, r, "NoSuchKey", "Object does not exist", http.StatusNotFound)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}
	defer reader.Close()

	w.Header().Set("ETag", fmt.Sprintf("%q", info.ETag))
	w.Header().Set("x-amz-version-id", info.VersionID)
	w.Header().Set("Content-Type", info.ContentType)

	http.ServeContent(w, r, key, info.ModTime, reader)
}

// handleHeadObject handles HeadObject operation
func (s *S3Handler) handleHeadObject(w http.ResponseWriter, r *http.Request, bucket, key string) {
	info, err := s.storage.HeadObject(bucket, key)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("ETag", fmt.Sprintf("%q", info.ETag))
	w.Header().Set("x-amz-version-id", info.VersionID)
	w.Header().Set("Content-Type", info.ContentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", info.Size))
	w.Header().Set("Last-Modified", info.ModTime.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
}

// handleDeleteObject handles DeleteObject operation. Deletion writes a
// delete marker version; it succeeds even when the key does not exist.
func (s *S3Handler) handleDeleteObject(w http.ResponseWriter, r *http.Request, bucket, key string) {
	err := s.storage.DeleteObject(bucket, key)
	if err != nil && err != storage.ErrObjectNotFound {
		if err == storage.ErrBucketNotFound {
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		} else {
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("x-amz-delete-marker", "true")
	w.WriteHeader(http.StatusNoContent)
}
