package server

import (
	"encoding/xml"
	"time"
)

// Bucket represents a bucket in ListBuckets response
type Bucket struct {
	Name         string    `xml:"Name"`
	CreationDate time.Time `xml:"CreationDate"`
}

// Owner represents the owner of buckets
type Owner struct {
	ID          string `xml:"ID"`
	DisplayName string `xml:"DisplayName"`
}

// ListAllMyBucketsResult is the response for ListBuckets operation
type ListAllMyBucketsResult struct {
	XMLName xml.Name `xml:"ListAllMyBucketsResult"`
	Owner   Owner    `xml:"Owner"`
	Buckets struct {
		Bucket []Bucket `xml:"Bucket"`
	} `xml:"Buckets"`
}

// Contents represents an object in ListObjects responses
type Contents struct {
	Key          string    `xml:"Key"`
	LastModified time.Time `xml:"LastModified"`
	ETag         string    `xml:"ETag"`
	Size         int64     `xml:"Size"`
	StorageClass string    `xml:"StorageClass"`
}

// ListBucketResult is the response for ListObjects (v1) operation
type ListBucketResult struct {
	XMLName     xml.Name   `xml:"ListBucketResult"`
	Name        string     `xml:"Name"`
	Prefix      string     `xml:"Prefix"`
	Marker      string     `xml:"Marker,omitempty"`
	NextMarker  string     `xml:"NextMarker,omitempty"`
	MaxKeys     int        `xml:"MaxKeys"`
	IsTruncated bool       `xml:"IsTruncated"`
	Contents    []Contents `xml:"Contents"`
}

// ListBucketResultV2 is the response for ListObjectsV2 operation
type ListBucketResultV2 struct {
	XMLName               xml.Name   `xml:"ListBucketResult"`
	Name                  string     `xml:"Name"`
	Prefix                string     `xml:"Prefix"`
	MaxKeys               int        `xml:"MaxKeys"`
	KeyCount              int        `xml:"KeyCount"`
	IsTruncated           bool       `xml:"IsTruncated"`
	ContinuationToken     string     `xml:"ContinuationToken,omitempty"`
	NextContinuationToken string     `xml:"NextContinuationToken,omitempty"`
	StartAfter            string     `xml:"StartAfter,omitempty"`
	Contents              []Contents `xml:"Contents"`
}

// ObjectVersion represents a version entry in ListObjectVersions response
type ObjectVersion struct {
	Key          string    `xml:"Key"`
	VersionId    string    `xml:"VersionId"`
	IsLatest     bool      `xml:"IsLatest"`
	LastModified time.Time `xml:"LastModified"`
	ETag         string    `xml:"ETag,omitempty"`
	Size         int64     `xml:"Size"`
	StorageClass string    `xml:"StorageClass"`
}

// DeleteMarkerEntry represents a delete marker in ListObjectVersions response
type DeleteMarkerEntry struct {
	Key          string    `xml:"Key"`
	VersionId    string    `xml:"VersionId"`
	IsLatest     bool      `xml:"IsLatest"`
	LastModified time.Time `xml:"LastModified"`
}

// ListVersionsResult is the response for ListObjectVersions operation
type ListVersionsResult struct {
	XMLName       xml.Name            `xml:"ListVersionsResult"`
	Name          string              `xml:"Name"`
	Prefix        string              `xml:"Prefix"`
	KeyMarker     string              `xml:"KeyMarker,omitempty"`
	NextKeyMarker string              `xml:"NextKeyMarker,omitempty"`
	MaxKeys       int                 `xml:"MaxKeys"`
	IsTruncated   bool                `xml:"IsTruncated"`
	Versions      []ObjectVersion     `xml:"Version"`
	DeleteMarkers []DeleteMarkerEntry `xml:"DeleteMarker"`
}

// InitiateMultipartUploadResult is the response for InitiateMultipartUpload operation
type InitiateMultipartUploadResult struct {
	XMLName  xml.Name `xml:"InitiateMultipartUploadResult"`
	Bucket   string   `xml:"Bucket"`
	Key      string   `xml:"Key"`
	UploadId string   `xml:"UploadId"`
}

// Multipart represents a part in CompleteMultipartUpload request
type Multipart struct {
	PartNumber int    `xml:"PartNumber"`
	ETag       string `xml:"ETag"`
}

// CompletedPart represents a part in ListParts response
type CompletedPart struct {
	PartNumber   int       `xml:"PartNumber"`
	LastModified time.Time `xml:"LastModified"`
	ETag         string    `xml:"ETag"`
	Size         int64     `xml:"Size"`
}

// CompleteMultipartUpload is the request for CompleteMultipartUpload operation
type CompleteMultipartUpload struct {
	Parts []Multipart `xml:"Part"`
}

// CompleteMultipartUploadResult is the response for CompleteMultipartUpload operation
type CompleteMultipartUploadResult struct {
	XMLName  xml.Name `xml:"CompleteMultipartUploadResult"`
	Location string   `xml:"Location"`
	Bucket   string   `xml:"Bucket"`
	Key      string   `xml:"Key"`
	ETag     string   `xml:"ETag"`
}

// Upload represents an upload in ListMultipartUploads response
type Upload struct {
	Key          string    `xml:"Key"`
	UploadId     string    `xml:"UploadId"`
	Initiated    time.Time `xml:"Initiated"`
	StorageClass string    `xml:"StorageClass"`
}

// ListMultipartUploadsResult is the response for ListMultipartUploads operation
type ListMultipartUploadsResult struct {
	XMLName     xml.Name `xml:"ListMultipartUploadsResult"`
	Bucket      string   `xml:"Bucket"`
	KeyMarker   string   `xml:"KeyMarker,omitempty"`
	NextMarker  string   `xml:"NextMarker,omitempty"`
	MaxUploads  int      `xml:"MaxUploads"`
	IsTruncated bool     `xml:"IsTruncated"`
	Uploads     []Upload `xml:"Upload"`
}

// ListPartsResult is the response for ListParts operation
type ListPartsResult struct {
	XMLName      xml.Name        `xml:"ListPartsResult"`
	Bucket       string          `xml:"Bucket"`
	Key          string          `xml:"Key"`
	UploadId     string          `xml:"UploadId"`
	StorageClass string          `xml:"StorageClass"`
	MaxParts     int             `xml:"MaxParts"`
	IsTruncated  bool            `xml:"IsTruncated"`
	Parts        []CompletedPart `xml:"Part"`
}

// Error represents an S3 error response
type Error struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}

// ObjectIdentifier represents an object to delete in DeleteObjects request
type ObjectIdentifier struct {
	Key       string `xml:"Key"`
	VersionId string `xml:"VersionId,omitempty"`
}

// Delete represents the delete request in DeleteObjects operation
type Delete struct {
	Objects []ObjectIdentifier `xml:"Object"`
	Quiet   bool               `xml:"Quiet,omitempty"`
}

// DeletedObject represents a successfully deleted object in DeleteObjects response
type DeletedObject struct {
	Key          string `xml:"Key"`
	DeleteMarker bool   `xml:"DeleteMarker,omitempty"`
}

// DeleteError represents an error deleting an object in DeleteObjects response
type DeleteError struct {
	Key     string `xml:"Key"`
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
}

// DeleteObjectsResult is the response for DeleteObjects operation
type DeleteObjectsResult struct {
	XMLName xml.Name        `xml:"DeleteResult"`
	Deleted []DeletedObject `xml:"Deleted,omitempty"`
	Errors  []DeleteError   `xml:"Error,omitempty"`
}
