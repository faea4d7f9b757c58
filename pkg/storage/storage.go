// Package storage implements the gateway's bucket index and object store.
//
// Object data lives in flat files under the base path; the index (buckets,
// object versions, delete markers, in-flight multipart uploads) lives in a
// bbolt database. Every write to an object key appends a new version; reads
// resolve the newest version for the key.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bolt "go.etcd.io/bbolt"
)

var (
	ErrBucketNotFound      = errors.New("bucket not found")
	ErrBucketAlreadyExists = errors.New("bucket already exists")
	ErrBucketNotEmpty      = errors.New("bucket not empty")
	ErrObjectNotFound      = errors.New("object not found")
	ErrInvalidUploadID     = errors.New("invalid upload id")
	ErrInvalidPartNumber   = errors.New("invalid part number")
	ErrInvalidBucketName   = errors.New("invalid bucket name")
	ErrInvalidObjectKey    = errors.New("invalid object key")
)

var (
	bucketsBucket  = []byte("buckets")
	versionsBucket = []byte("versions")
	uploadsBucket  = []byte("uploads")
)

// keySep separates the object key from the version ordinal in index keys.
// Object keys containing it are rejected by sanitizeObjectKey.
const keySep = "\x00"

// Storage is the local object store backed by a bbolt index.
type Storage struct {
	basePath string
	db       *bolt.DB
}

// NewStorage opens (creating if needed) a store rooted at basePath.
func NewStorage(basePath string) (*Storage, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(filepath.Join(absPath, "index.db"), 0644, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketsBucket, versionsBucket, uploadsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{basePath: absPath, db: db}, nil
}

// Close releases the index database.
func (s *Storage) Close() error {
	return s.db.Close()
}

// sanitizeBucketName validates a bucket name.
func sanitizeBucketName(bucket string) error {
	if bucket == "" || bucket == "." || bucket == ".." {
		return ErrInvalidBucketName
	}
	if strings.ContainsAny(bucket, "/\\\x00") {
		return ErrInvalidBucketName
	}
	if strings.HasPrefix(bucket, ".") {
		return ErrInvalidBucketName
	}
	return nil
}

// sanitizeObjectKey validates an object key. Keys are index entries, never
// filesystem paths, so slashes are fine; NUL would corrupt the index
// encoding.
func sanitizeObjectKey(key string) error {
	if key == "" {
		return ErrInvalidObjectKey
	}
	if strings.Contains(key, keySep) {
		return ErrInvalidObjectKey
	}
	return nil
}

// versionIndexKey builds the composite index key for one object version.
// The ordinal is the bitwise complement of the allocation sequence so newer
// versions sort first within the same object key.
func versionIndexKey(key string, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s%016x", key, keySep, ^seq))
}

// splitIndexKey returns the object key portion of a composite index key.
func splitIndexKey(indexKey []byte) string {
	if i := strings.Index(string(indexKey), keySep); i >= 0 {
		return string(indexKey[:i])
	}
	return string(indexKey)
}

// objectDataPath is where a version's payload lives on disk. Version ids
// are generated, so the path needs no key sanitization.
func (s *Storage) objectDataPath(bucket, versionID string) string {
	return filepath.Join(s.basePath, bucket, "objects", versionID)
}

// uploadPartPath is where one multipart part's payload lives on disk.
func (s *Storage) uploadPartPath(bucket, uploadID string, partNumber int) string {
	return filepath.Join(s.basePath, bucket, "uploads", uploadID, fmt.Sprintf("%05d", partNumber))
}

// writeFileAtomic writes data to path via a temp file and rename.
func (s *Storage) writeFileAtomic(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
