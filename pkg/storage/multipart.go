package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

const maxPartNumber = 10000

// InitiateMultipartUpload starts a multipart upload and records it in the
// bucket's upload table.
func (s *Storage) InitiateMultipartUpload(bucket, key string) (string, error) {
	if err := sanitizeObjectKey(key); err != nil {
		return "", err
	}
	if !s.BucketExists(bucket) {
		return "", ErrBucketNotFound
	}

	uploadID := uuid.New().String()
	upload := MultipartUpload{
		UploadID:  uploadID,
		Bucket:    bucket,
		Key:       key,
		Initiated: time.Now().UTC(),
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		uploads := tx.Bucket(uploadsBucket).Bucket([]byte(bucket))
		if uploads == nil {
			return ErrBucketNotFound
		}
		entry, err := json.Marshal(upload)
		if err != nil {
			return err
		}
		return uploads.Put([]byte(key+keySep+uploadID), entry)
	})
	if err != nil {
		return "", err
	}
	return uploadID, nil
}

// lookupUpload confirms the upload table holds the given upload.
func (s *Storage) lookupUpload(bucket, key, uploadID string) error {
	return s.db.View(func(tx *bolt.Tx) error {
		uploads := tx.Bucket(uploadsBucket).Bucket([]byte(bucket))
		if uploads == nil {
			return ErrBucketNotFound
		}
		if uploads.Get([]byte(key+keySep+uploadID)) == nil {
			return ErrInvalidUploadID
		}
		return nil
	})
}

// UploadPart stores one part of an upload and returns its ETag.
func (s *Storage) UploadPart(bucket, key, uploadID string, partNumber int, data io.Reader) (string, error) {
	if partNumber < 1 || partNumber > maxPartNumber {
		return "", ErrInvalidPartNumber
	}
	if err := s.lookupUpload(bucket, key, uploadID); err != nil {
		return "", err
	}

	hash := sha256.New()
	err := s.writeFileAtomic(s.uploadPartPath(bucket, uploadID, partNumber), func(f *os.File) error {
		_, err := io.Copy(io.MultiWriter(f, hash), data)
		return err
	})
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// ListParts returns the stored parts of an upload, ordered by part number.
func (s *Storage) ListParts(bucket, key, uploadID string) ([]Part, error) {
	if err := s.lookupUpload(bucket, key, uploadID); err != nil {
		return nil, err
	}

	dir := filepath.Dir(s.uploadPartPath(bucket, uploadID, 1))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var parts []Part
	for _, entry := range entries {
		number, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		etag, err := s.partETag(bucket, uploadID, number)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{
			PartNumber: number,
			ETag:       etag,
			Size:       info.Size(),
			ModTime:    info.ModTime(),
		})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNumber < parts[j].PartNumber })
	return parts, nil
}

// partETag recomputes a stored part's ETag from its content.
func (s *Storage) partETag(bucket, uploadID string, partNumber int) (string, error) {
	f, err := os.Open(s.uploadPartPath(bucket, uploadID, partNumber))
	if err != nil {
		return "", err
	}
	defer f.Close()
	hash := sha256.New()
	if _, err := io.Copy(hash, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// CompleteMultipartUpload concatenates the named parts into a new object
// version and drops the upload from the table. The resulting ETag is the
// hash of the part ETags suffixed with the part count, so it differs from a
// plain PutObject of the same bytes, matching S3.
func (s *Storage) CompleteMultipartUpload(bucket, key, uploadID string, partNumbers []int) (*ObjectInfo, error) {
	if err := s.lookupUpload(bucket, key, uploadID); err != nil {
		return nil, err
	}
	if len(partNumbers) == 0 {
		return nil, ErrInvalidPartNumber
	}
	numbers := append([]int(nil), partNumbers...)
	sort.Ints(numbers)

	versionID := uuid.New().String()
	dataPath := s.objectDataPath(bucket, versionID)
	etagHash := sha256.New()
	var size int64
	err := s.writeFileAtomic(dataPath, func(dst *os.File) error {
		for _, n := range numbers {
			partETag, err := s.partETag(bucket, uploadID, n)
			if err != nil {
				if os.IsNotExist(err) {
					return ErrInvalidPartNumber
				}
				return err
			}
			etagHash.Write([]byte(partETag))

			src, err := os.Open(s.uploadPartPath(bucket, uploadID, n))
			if err != nil {
				return err
			}
			written, err := appendPartFile(dst, src)
			src.Close()
			if err != nil {
				return err
			}
			size += written
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	version := ObjectVersion{
		Key:       key,
		VersionID: versionID,
		Size:      size,
		ETag:      hex.EncodeToString(etagHash.Sum(nil)) + "-" + strconv.Itoa(len(numbers)),
		ModTime:   time.Now().UTC(),
	}
	if err := s.appendVersion(bucket, version); err != nil {
		os.Remove(dataPath)
		return nil, err
	}
	if err := s.removeUpload(bucket, key, uploadID); err != nil {
		return nil, err
	}
	return &ObjectInfo{
		Key:       key,
		VersionID: versionID,
		Size:      size,
		ETag:      version.ETag,
		ModTime:   version.ModTime,
	}, nil
}

// AbortMultipartUpload drops an upload and its stored parts.
func (s *Storage) AbortMultipartUpload(bucket, key, uploadID string) error {
	if err := s.lookupUpload(bucket, key, uploadID); err != nil {
		return err
	}
	return s.removeUpload(bucket, key, uploadID)
}

func (s *Storage) removeUpload(bucket, key, uploadID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		uploads := tx.Bucket(uploadsBucket).Bucket([]byte(bucket))
		if uploads == nil {
			return ErrBucketNotFound
		}
		return uploads.Delete([]byte(key + keySep + uploadID))
	})
	if err != nil {
		return err
	}
	return os.RemoveAll(filepath.Dir(s.uploadPartPath(bucket, uploadID, 1)))
}

// ListMultipartUploads returns one page of in-flight uploads with the given
// key prefix, resuming strictly after marker (the previous NextMarker).
func (s *Storage) ListMultipartUploads(bucket, prefix, marker string, maxUploads int) (*UploadPage, error) {
	if !s.BucketExists(bucket) {
		return nil, ErrBucketNotFound
	}
	if maxUploads <= 0 {
		maxUploads = 1000
	}

	page := &UploadPage{}
	err := s.db.View(func(tx *bolt.Tx) error {
		uploads := tx.Bucket(uploadsBucket).Bucket([]byte(bucket))
		c := uploads.Cursor()

		var k, v []byte
		if marker != "" {
			k, v = c.Seek([]byte(marker))
			if k != nil && string(k) == marker {
				k, v = c.Next()
			}
		} else {
			k, v = c.Seek([]byte(prefix))
		}

		for ; k != nil; k, v = c.Next() {
			if !strings.HasPrefix(splitIndexKey(k), prefix) {
				break
			}
			if len(page.Uploads) == maxUploads {
				page.IsTruncated = true
				return nil
			}
			var upload MultipartUpload
			if err := json.Unmarshal(v, &upload); err != nil {
				return err
			}
			page.Uploads = append(page.Uploads, upload)
			page.NextMarker = string(k)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}
