package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// PutObject appends a new version of the object and returns its info.
func (s *Storage) PutObject(bucket, key string, data io.Reader, contentType string) (*ObjectInfo, error) {
	if err := sanitizeObjectKey(key); err != nil {
		return nil, err
	}
	if !s.BucketExists(bucket) {
		return nil, ErrBucketNotFound
	}

	versionID := uuid.New().String()
	dataPath := s.objectDataPath(bucket, versionID)

	hash := sha256.New()
	var size int64
	err := s.writeFileAtomic(dataPath, func(f *os.File) error {
		n, err := io.Copy(io.MultiWriter(f, hash), data)
		size = n
		return err
	})
	if err != nil {
		return nil, err
	}

	version := ObjectVersion{
		Key:         key,
		VersionID:   versionID,
		Size:        size,
		ETag:        hex.EncodeToString(hash.Sum(nil)),
		ContentType: contentType,
		ModTime:     time.Now().UTC(),
	}
	if err := s.appendVersion(bucket, version); err != nil {
		os.Remove(dataPath)
		return nil, err
	}

	return &ObjectInfo{
		Key:         key,
		VersionID:   versionID,
		Size:        size,
		ETag:        version.ETag,
		ContentType: contentType,
		ModTime:     version.ModTime,
	}, nil
}

// appendVersion writes one version entry into the bucket's index.
func (s *Storage) appendVersion(bucket string, version ObjectVersion) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		versions := tx.Bucket(versionsBucket).Bucket([]byte(bucket))
		if versions == nil {
			return ErrBucketNotFound
		}
		seq, err := versions.NextSequence()
		if err != nil {
			return err
		}
		entry, err := json.Marshal(version)
		if err != nil {
			return err
		}
		return versions.Put(versionIndexKey(version.Key, seq), entry)
	})
}

// currentVersion resolves the newest version entry for a key, delete
// markers included. Returns ErrObjectNotFound when the key has no versions.
func (s *Storage) currentVersion(bucket, key string) (*ObjectVersion, error) {
	if err := sanitizeObjectKey(key); err != nil {
		return nil, err
	}
	var current *ObjectVersion
	err := s.db.View(func(tx *bolt.Tx) error {
		versions := tx.Bucket(versionsBucket).Bucket([]byte(bucket))
		if versions == nil {
			return ErrBucketNotFound
		}
		c := versions.Cursor()
		prefix := []byte(key + keySep)
		k, v := c.Seek(prefix)
		if k == nil || !strings.HasPrefix(string(k), string(prefix)) {
			return ErrObjectNotFound
		}
		var version ObjectVersion
		if err := json.Unmarshal(v, &version); err != nil {
			return err
		}
		version.IsLatest = true
		current = &version
		return nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// GetObject opens the current version of an object. A current delete marker
// reads as not found.
func (s *Storage) GetObject(bucket, key string) (io.ReadSeekCloser, *ObjectInfo, error) {
	version, err := s.currentVersion(bucket, key)
	if err != nil {
		return nil, nil, err
	}
	if version.IsDeleteMarker {
		return nil, nil, ErrObjectNotFound
	}

	file, err := os.Open(s.objectDataPath(bucket, version.VersionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrObjectNotFound
		}
		return nil, nil, err
	}

	info := &ObjectInfo{
		Key:         key,
		VersionID:   version.VersionID,
		Size:        version.Size,
		ETag:        version.ETag,
		ContentType: version.ContentType,
		ModTime:     version.ModTime,
	}
	if info.ContentType == "" {
		info.ContentType = "application/octet-stream"
	}
	return file, info, nil
}

// HeadObject returns the current version's info without opening data.
func (s *Storage) HeadObject(bucket, key string) (*ObjectInfo, error) {
	version, err := s.currentVersion(bucket, key)
	if err != nil {
		return nil, err
	}
	if version.IsDeleteMarker {
		return nil, ErrObjectNotFound
	}
	return &ObjectInfo{
		Key:         key,
		VersionID:   version.VersionID,
		Size:        version.Size,
		ETag:        version.ETag,
		ContentType: version.ContentType,
		ModTime:     version.ModTime,
	}, nil
}

// DeleteObject appends a delete marker as the key's new current version.
// Deleting an absent key still writes a marker, matching S3.
func (s *Storage) DeleteObject(bucket, key string) error {
	if err := sanitizeObjectKey(key); err != nil {
		return err
	}
	if !s.BucketExists(bucket) {
		return ErrBucketNotFound
	}
	return s.appendVersion(bucket, ObjectVersion{
		Key:            key,
		VersionID:      uuid.New().String(),
		IsDeleteMarker: true,
		ModTime:        time.Now().UTC(),
	})
}

// ListObjects returns the current, non-deleted view of a bucket: at most
// maxKeys keys with the given prefix, strictly after marker.
func (s *Storage) ListObjects(bucket, prefix, marker string, maxKeys int) ([]ObjectInfo, bool, error) {
	if !s.BucketExists(bucket) {
		return nil, false, ErrBucketNotFound
	}
	if maxKeys <= 0 {
		maxKeys = 1000
	}

	var objects []ObjectInfo
	truncated := false
	err := s.db.View(func(tx *bolt.Tx) error {
		versions := tx.Bucket(versionsBucket).Bucket([]byte(bucket))
		c := versions.Cursor()

		lastKey := ""
		for k, v := c.Seek([]byte(prefix)); k != nil; k, v = c.Next() {
			key := splitIndexKey(k)
			if !strings.HasPrefix(key, prefix) {
				break
			}
			// Only the first entry per key is current.
			if key == lastKey {
				continue
			}
			lastKey = key
			if marker != "" && key <= marker {
				continue
			}
			var version ObjectVersion
			if err := json.Unmarshal(v, &version); err != nil {
				return err
			}
			if version.IsDeleteMarker {
				continue
			}
			if len(objects) == maxKeys {
				truncated = true
				return nil
			}
			objects = append(objects, ObjectInfo{
				Key:         key,
				VersionID:   version.VersionID,
				Size:        version.Size,
				ETag:        version.ETag,
				ContentType: version.ContentType,
				ModTime:     version.ModTime,
			})
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return objects, truncated, nil
}

// ListObjectVersions returns one ordered page of version entries with the
// given prefix. marker is the opaque cursor from the previous page's
// NextMarker; the page resumes strictly after it.
func (s *Storage) ListObjectVersions(bucket, prefix, marker string, maxEntries int) (*VersionPage, error) {
	if !s.BucketExists(bucket) {
		return nil, ErrBucketNotFound
	}
	if maxEntries <= 0 {
		maxEntries = 1000
	}

	page := &VersionPage{}
	err := s.db.View(func(tx *bolt.Tx) error {
		versions := tx.Bucket(versionsBucket).Bucket([]byte(bucket))
		c := versions.Cursor()

		var k, v []byte
		prevKey := ""
		if marker != "" {
			k, v = c.Seek([]byte(marker))
			if k != nil && string(k) == marker {
				prevKey = splitIndexKey(k)
				k, v = c.Next()
			} else if k != nil {
				prevKey = ""
			}
		} else {
			k, v = c.Seek([]byte(prefix))
		}

		for ; k != nil; k, v = c.Next() {
			key := splitIndexKey(k)
			if !strings.HasPrefix(key, prefix) {
				break
			}
			if len(page.Versions) == maxEntries {
				page.IsTruncated = true
				return nil
			}
			var version ObjectVersion
			if err := json.Unmarshal(v, &version); err != nil {
				return err
			}
			version.IsLatest = key != prevKey
			prevKey = key
			page.Versions = append(page.Versions, version)
			page.NextMarker = string(k)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}
