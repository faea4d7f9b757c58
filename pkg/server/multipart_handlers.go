package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wzshiming/handoff/pkg/storage"
)

// handleInitiateMultipartUpload handles InitiateMultipartUpload operation
func (s *S3Handler) handleInitiateMultipartUpload(w http.ResponseWriter, r *http.Request, bucket, key string) {
	uploadID, err := s.storage.InitiateMultipartUpload(bucket, key)
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

	result := InitiateMultipartUploadResult{
		Bucket:   bucket,
		Key:      key,
		UploadId: uploadID,
	}
	s.xmlResponse(w, result, http.StatusOK)
}

// handleUploadPart handles UploadPart operation
func (s *S3Handler) handleUploadPart(w http.ResponseWriter, r *http.Request, bucket, key, uploadID, partNumber string) {
	number, err := strconv.Atoi(partNumber)
	if err != nil {
		s.errorResponse(w, r, "InvalidArgument", "Invalid part number", http.StatusBadRequest)
		return
	}

	etag, err := s.storage.UploadPart(bucket, key, uploadID, number, r.Body)
	if err != nil {
		switch err {
		case storage.ErrInvalidUploadID:
			s.errorResponse(w, r, "NoSuchUpload", "The specified upload does not exist", http.StatusNotFound)
		case storage.ErrInvalidPartNumber:
			s.errorResponse(w, r, "InvalidArgument", "Part number must be between 1 and 10000", http.StatusBadRequest)
		case storage.ErrBucketNotFound:
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("ETag", fmt.Sprintf("%q", etag))
	w.WriteHeader(http.StatusOK)
}

// handleListParts handles ListParts operation
func (s *S3Handler) handleListParts(w http.ResponseWriter, r *http.Request, bucket, key, uploadID string) {
	parts, err := s.storage.ListParts(bucket, key, uploadID)
	if err != nil {
		switch err {
		case storage.ErrInvalidUploadID:
			s.errorResponse(w, r, "NoSuchUpload", "The specified upload does not exist", http.StatusNotFound)
		case storage.ErrBucketNotFound:
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := ListPartsResult{
		Bucket:       bucket,
		Key:          key,
		UploadId:     uploadID,
		StorageClass: "STANDARD",
		MaxParts:     len(parts),
	}
	for _, part := range parts {
		result.Parts = append(result.Parts, CompletedPart{
			PartNumber:   part.PartNumber,
			LastModified: part.ModTime,
			ETag:         fmt.Sprintf("%q", part.ETag),
			Size:         part.Size,
		})
	}
	s.xmlResponse(w, result, http.StatusOK)
}

// handleCompleteMultipartUpload handles CompleteMultipartUpload operation
func (s *S3Handler) handleCompleteMultipartUpload(w http.ResponseWriter, r *http.Request, bucket, key, uploadID string) {
	var completeReq CompleteMultipartUpload
	if err := s.xmlRequest(r, &completeReq); err != nil {
		s.errorResponse(w, r, "MalformedXML", "The XML you provided was not well-formed", http.StatusBadRequest)
		return
	}

	partNumbers := make([]int, 0, len(completeReq.Parts))
	for _, part := range completeReq.Parts {
		partNumbers = append(partNumbers, part.PartNumber)
	}

	info, err := s.storage.CompleteMultipartUpload(bucket, key, uploadID, partNumbers)
	if err != nil {
		switch err {
		case storage.ErrInvalidUploadID:
			s.errorResponse(w, r, "NoSuchUpload", "The specified upload does not exist", http.StatusNotFound)
		case storage.ErrInvalidPartNumber:
			s.errorResponse(w, r, "InvalidPart", "One or more of the specified parts could not be found", http.StatusBadRequest)
		case storage.ErrBucketNotFound:
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := CompleteMultipartUploadResult{
		Location: "/" + bucket + "/" + key,
		Bucket:   bucket,
		Key:      key,
		ETag:     fmt.Sprintf("%q", info.ETag),
	}
	s.xmlResponse(w, result, http.StatusOK)
}

// handleAbortMultipartUpload handles AbortMultipartUpload operation
func (s *S3Handler) handleAbortMultipartUpload(w http.ResponseWriter, r *http.Request, bucket, key, uploadID string) {
	err := s.storage.AbortMultipartUpload(bucket, key, uploadID)
	if err != nil {
		switch err {
		case storage.ErrInvalidUploadID:
			s.errorResponse(w, r, "NoSuchUpload", "The specified upload does not exist", http.StatusNotFound)
		case storage.ErrBucketNotFound:
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListMultipartUploads handles ListMultipartUploads operation
func (s *S3Handler) handleListMultipartUploads(w http.ResponseWriter, r *http.Request, bucket string) {
	query := r.URL.Query()
	prefix := query.Get("prefix")
	marker := query.Get("key-marker")
	maxUploads := maxKeysParam(r, "max-uploads")

	page, err := s.storage.ListMultipartUploads(bucket, prefix, marker, maxUploads)
	if err != nil {
		if err == storage.ErrBucketNotFound {
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		} else {
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := ListMultipartUploadsResult{
		Bucket:      bucket,
		KeyMarker:   marker,
		MaxUploads:  maxUploads,
		IsTruncated: page.IsTruncated,
	}
	if page.IsTruncated {
		result.NextMarker = page.NextMarker
	}
	for _, upload := range page.Uploads {
		result.Uploads = append(result.Uploads, Upload{
			Key:          upload.Key,
			UploadId:     upload.UploadID,
			Initiated:    upload.Initiated,
			StorageClass: "STANDARD",
		})
	}
	s.xmlResponse(w, result, http.StatusOK)
}
