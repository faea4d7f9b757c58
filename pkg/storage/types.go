package storage

import "time"

// BucketInfo contains metadata about a bucket.
type BucketInfo struct {
	Name    string
	Created time.Time
}

// ObjectVersion is one entry in a bucket's version index. The newest
// version of a key is the current one; a delete marker as the current
// version means the key reads as absent.
type ObjectVersion struct {
	Key            string
	VersionID      string
	Size           int64
	ETag           string
	ContentType    string
	IsDeleteMarker bool
	IsLatest       bool
	ModTime        time.Time
}

// VersionPage is one page of a version listing.
type VersionPage struct {
	Versions    []ObjectVersion
	IsTruncated bool
	NextMarker  string
}

// ObjectInfo describes the current version of an object.
type ObjectInfo struct {
	Key         string
	VersionID   string
	Size        int64
	ETag        string
	ContentType string
	ModTime     time.Time
}

// Part is one stored part of a multipart upload.
type Part struct {
	PartNumber int
	ETag       string
	Size       int64
	ModTime    time.Time
}

// MultipartUpload is an in-progress multipart upload.
type MultipartUpload struct {
	UploadID  string
	Bucket    string
	Key       string
	Initiated time.Time
}

// UploadPage is one page of a multipart upload listing.
type UploadPage struct {
	Uploads     []MultipartUpload
	IsTruncated bool
	NextMarker  string
}
