package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

// CreateBucket creates a bucket and its index entries.
func (s *Storage) CreateBucket(bucket string) error {
	if err := sanitizeBucketName(bucket); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket(bucketsBucket)
		if names.Get([]byte(bucket)) != nil {
			return ErrBucketAlreadyExists
		}
		info, err := json.Marshal(BucketInfo{Name: bucket, Created: time.Now().UTC()})
		if err != nil {
			return err
		}
		if err := names.Put([]byte(bucket), info); err != nil {
			return err
		}
		if _, err := tx.Bucket(versionsBucket).CreateBucket([]byte(bucket)); err != nil {
			return err
		}
		if _, err := tx.Bucket(uploadsBucket).CreateBucket([]byte(bucket)); err != nil {
			return err
		}
		return nil
	})
}

// DeleteBucket removes an empty bucket. A bucket holding any version entry
// or in-flight upload is not empty.
func (s *Storage) DeleteBucket(bucket string) error {
	if err := sanitizeBucketName(bucket); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket(bucketsBucket)
		if names.Get([]byte(bucket)) == nil {
			return ErrBucketNotFound
		}
		versions := tx.Bucket(versionsBucket).Bucket([]byte(bucket))
		if k, _ := versions.Cursor().First(); k != nil {
			return ErrBucketNotEmpty
		}
		uploads := tx.Bucket(uploadsBucket).Bucket([]byte(bucket))
		if k, _ := uploads.Cursor().First(); k != nil {
			return ErrBucketNotEmpty
		}
		if err := names.Delete([]byte(bucket)); err != nil {
			return err
		}
		if err := tx.Bucket(versionsBucket).DeleteBucket([]byte(bucket)); err != nil {
			return err
		}
		return tx.Bucket(uploadsBucket).DeleteBucket([]byte(bucket))
	})
	if err != nil {
		return err
	}
	return os.RemoveAll(filepath.Join(s.basePath, bucket))
}

// BucketExists reports whether the bucket is in the index.
func (s *Storage) BucketExists(bucket string) bool {
	if sanitizeBucketName(bucket) != nil {
		return false
	}
	exists := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(bucketsBucket).Get([]byte(bucket)) != nil
		return nil
	})
	return exists
}

// ListBuckets returns every bucket, sorted by name.
func (s *Storage) ListBuckets() ([]BucketInfo, error) {
	var buckets []BucketInfo
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketsBucket).ForEach(func(k, v []byte) error {
			var info BucketInfo
			if err := json.Unmarshal(v, &info); err != nil {
				return err
			}
			buckets = append(buckets, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Name < buckets[j].Name })
	return buckets, nil
}
