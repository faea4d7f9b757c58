package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wzshiming/handoff/pkg/storage"
)

// handleListBuckets handles ListBuckets operation
func (s *S3Handler) handleListBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.storage.ListBuckets()
	if err != nil {
		s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		return
	}

	result := ListAllMyBucketsResult{
		Owner: Owner{
			ID:          "handoff",
			DisplayName: "handoff",
		},
	}
	for _, bucket := range buckets {
		result.Buckets.Bucket = append(result.Buckets.Bucket, Bucket{
			Name:         bucket.Name,
			CreationDate: bucket.Created,
		})
	}

	s.xmlResponse(w, result, http.StatusOK)
}

// handleCreateBucket handles CreateBucket operation
func (s *S3Handler) handleCreateBucket(w http.ResponseWriter, r *http.Request, bucket string) {
	err := s.storage.CreateBucket(bucket)
	if err != nil {
		switch err {
		case storage.ErrBucketAlreadyExists:
			s.errorResponse(w, r, "BucketAlreadyOwnedByYou", "Bucket already exists", http.StatusConflict)
		case storage.ErrInvalidBucketName:
			s.errorResponse(w, r, "InvalidBucketName", "The specified bucket is not valid", http.StatusBadRequest)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Location", "/"+bucket)
	w.WriteHeader(http.StatusOK)
}

// handleDeleteBucket handles DeleteBucket operation
func (s *S3Handler) handleDeleteBucket(w http.ResponseWriter, r *http.Request, bucket string) {
	err := s.storage.DeleteBucket(bucket)
	if err != nil {
		switch err {
		case storage.ErrBucketNotFound:
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		case storage.ErrBucketNotEmpty:
			s.errorResponse(w, r, "BucketNotEmpty", "The bucket you tried to delete is not empty", http.StatusConflict)
		default:
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHeadBucket handles HeadBucket operation
func (s *S3Handler) handleHeadBucket(w http.ResponseWriter, r *http.Request, bucket string) {
	if !s.storage.BucketExists(bucket) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("x-amz-bucket-region", s.region)
	w.WriteHeader(http.StatusOK)
}

// maxKeysParam parses a listing page size parameter, defaulting to 1000.
func maxKeysParam(r *http.Request, name string) int {
	if value := r.URL.Query().Get(name); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 1000
}

// handleListObjects handles ListObjects operation (v1 and v2)
func (s *S3Handler) handleListObjects(w http.ResponseWriter, r *http.Request, bucket string) {
	query := r.URL.Query()

	if query.Get("list-type") == "2" {
		s.handleListObjectsV2(w, r, bucket)
		return
	}

	prefix := query.Get("prefix")
	marker := query.Get("marker")
	maxKeys := maxKeysParam(r, "max-keys")

	objects, isTruncated, err := s.storage.ListObjects(bucket, prefix, marker, maxKeys)
	if err != nil {
		if err == storage.ErrBucketNotFound {
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		} else {
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := ListBucketResult{
		Name:        bucket,
		Prefix:      prefix,
		Marker:      marker,
		MaxKeys:     maxKeys,
		IsTruncated: isTruncated,
	}
	if isTruncated && len(objects) > 0 {
		result.NextMarker = objects[len(objects)-1].Key
	}
	for _, obj := range objects {
		result.Contents = append(result.Contents, Contents{
			Key:          obj.Key,
			LastModified: obj.ModTime,
			ETag:         fmt.Sprintf("%q", obj.ETag),
			Size:         obj.Size,
			StorageClass: "STANDARD",
		})
	}

	s.xmlResponse(w, result, http.StatusOK)
}

// handleListObjectsV2 handles ListObjectsV2 operation
func (s *S3Handler) handleListObjectsV2(w http.ResponseWriter, r *http.Request, bucket string) {
	query := r.URL.Query()
	prefix := query.Get("prefix")
	startAfter := query.Get("start-after")
	continuationToken := query.Get("continuation-token")
	maxKeys := maxKeysParam(r, "max-keys")

	marker := continuationToken
	if marker == "" {
		marker = startAfter
	}

	objects, isTruncated, err := s.storage.ListObjects(bucket, prefix, marker, maxKeys)
	if err != nil {
		if err == storage.ErrBucketNotFound {
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		} else {
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := ListBucketResultV2{
		Name:              bucket,
		Prefix:            prefix,
		MaxKeys:           maxKeys,
		KeyCount:          len(objects),
		IsTruncated:       isTruncated,
		StartAfter:        startAfter,
		ContinuationToken: continuationToken,
	}
	if isTruncated && len(objects) > 0 {
		result.NextContinuationToken = objects[len(objects)-1].Key
	}
	for _, obj := range objects {
		result.Contents = append(result.Contents, Contents{
			Key:          obj.Key,
			LastModified: obj.ModTime,
			ETag:         fmt.Sprintf("%q", obj.ETag),
			Size:         obj.Size,
			StorageClass: "STANDARD",
		})
	}

	s.xmlResponse(w, result, http.StatusOK)
}

// handleListObjectVersions handles ListObjectVersions operation
func (s *S3Handler) handleListObjectVersions(w http.ResponseWriter, r *http.Request, bucket string) {
	query := r.URL.Query()
	prefix := query.Get("prefix")
	marker := query.Get("key-marker")
	maxKeys := maxKeysParam(r, "max-keys")

	page, err := s.storage.ListObjectVersions(bucket, prefix, marker, maxKeys)
	if err != nil {
		if err == storage.ErrBucketNotFound {
			s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		} else {
			s.errorResponse(w, r, "InternalError", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := ListVersionsResult{
		Name:        bucket,
		Prefix:      prefix,
		KeyMarker:   marker,
		MaxKeys:     maxKeys,
		IsTruncated: page.IsTruncated,
	}
	if page.IsTruncated {
		result.NextKeyMarker = page.NextMarker
	}
	for _, version := range page.Versions {
		if version.IsDeleteMarker {
			result.DeleteMarkers = append(result.DeleteMarkers, DeleteMarkerEntry{
				Key:          version.Key,
				VersionId:    version.VersionID,
				IsLatest:     version.IsLatest,
				LastModified: version.ModTime,
			})
			continue
		}
		result.Versions = append(result.Versions, ObjectVersion{
			Key:          version.Key,
			VersionId:    version.VersionID,
			IsLatest:     version.IsLatest,
			LastModified: version.ModTime,
			ETag:         fmt.Sprintf("%q", version.ETag),
			Size:         version.Size,
			StorageClass: "STANDARD",
		})
	}

	s.xmlResponse(w, result, http.StatusOK)
}

// handleDeleteObjects handles DeleteObjects operation (batch delete)
func (s *S3Handler) handleDeleteObjects(w http.ResponseWriter, r *http.Request, bucket string) {
	if !s.storage.BucketExists(bucket) {
		s.errorResponse(w, r, "NoSuchBucket", "Bucket does not exist", http.StatusNotFound)
		return
	}

	var deleteReq Delete
	if err := s.xmlRequest(r, &deleteReq); err != nil {
		s.errorResponse(w, r, "MalformedXML", "The XML you provided was not well-formed", http.StatusBadRequest)
		return
	}

	result := DeleteObjectsResult{}
	for _, obj := range deleteReq.Objects {
		err := s.storage.DeleteObject(bucket, obj.Key)
		if err != nil && err != storage.ErrObjectNotFound {
			result.Errors = append(result.Errors, DeleteError{
				Key:     obj.Key,
				Code:    "InternalError",
				Message: err.Error(),
			})
			continue
		}
		if !deleteReq.Quiet {
			result.Deleted = append(result.Deleted, DeletedObject{
				Key:          obj.Key,
				DeleteMarker: true,
			})
		}
	}

	s.xmlResponse(w, result, http.StatusOK)
}
