package server

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wzshiming/handoff/pkg/handoff"
	"github.com/wzshiming/handoff/pkg/storage"
)

const testAuthHeader = "AWS4-HMAC-SHA256 Credential=0555b35654ad1656d804/20231012/eu-west-2/s3/aws4_request, SignedHeaders=host;x-amz-date, Signature=d63f2167860f1f3a02b098988cbe9e7cf19e2d3208044e70d52bcc88985abb17"

type fakeVerifier struct {
	verdict    handoff.Verdict
	signingKey []byte
	keyErr     error

	lastAuthHeader string
}

func (f *fakeVerifier) Verify(ctx context.Context, req *handoff.Request, authHeader string, params *handoff.AuthorizationParameters) handoff.Verdict {
	f.lastAuthHeader = authHeader
	return f.verdict
}

func (f *fakeVerifier) GetSigningKey(ctx context.Context, transactionID, authHeader string) ([]byte, error) {
	return f.signingKey, f.keyErr
}

func newTestHandler(t *testing.T) (*S3Handler, *fakeVerifier, *storage.Storage) {
	t.Helper()
	store, err := storage.NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	verifier := &fakeVerifier{verdict: handoff.Accept("testid", "ok")}
	engine := handoff.NewEngine(handoff.NewStore(handoff.DefaultConfig()), verifier)
	return NewS3Handler(store, engine), verifier, store
}

// signedRequest builds a request carrying a v4 authorization header so the
// engine forwards it to the verifier.
func signedRequest(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Authorization", testAuthHeader)
	r.Header.Set("X-Amz-Date", "20231012T123659Z")
	return r
}

func do(h *S3Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) Error {
	t.Helper()
	var e Error
	if err := xml.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("Bad error body %q: %v", w.Body.String(), err)
	}
	return e
}

func TestUnsignedRequestDenied(t *testing.T) {
	h, _, _ := newTestHandler(t)

	w := do(h, httptest.NewRequest("GET", "http://localhost/testbucket/testobject", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", w.Code)
	}
	if e := decodeError(t, w); e.Code != "AccessDenied" {
		t.Fatalf("Expected AccessDenied, got %+v", e)
	}
}

func TestAuthorizationHeaderForwardedVerbatim(t *testing.T) {
	h, verifier, _ := newTestHandler(t)

	do(h, signedRequest("GET", "http://localhost/", nil))
	if verifier.lastAuthHeader != testAuthHeader {
		t.Fatalf("Expected header forwarded verbatim, got %q", verifier.lastAuthHeader)
	}
}

func TestVerifierDenialMapped(t *testing.T) {
	h, verifier, _ := newTestHandler(t)

	tests := []struct {
		code       handoff.Code
		wantCode   string
		wantStatus int
	}{
		{handoff.CodeAccessDenied, "AccessDenied", http.StatusForbidden},
		{handoff.CodeSignatureNoMatch, "SignatureDoesNotMatch", http.StatusForbidden},
		{handoff.CodeInvalidAccessKey, "InvalidAccessKeyId", http.StatusForbidden},
		{handoff.CodeRequestTimeSkewed, "RequestTimeTooSkewed", http.StatusForbidden},
		{handoff.CodeInvalid, "InvalidArgument", http.StatusBadRequest},
		{handoff.CodeInvalidRequest, "InvalidRequest", http.StatusBadRequest},
		{handoff.CodeInvalidIdentityToken, "InvalidIdentityToken", http.StatusBadRequest},
		{handoff.CodeNotFound, "NoSuchKey", http.StatusNotFound},
		{handoff.CodeMethodNotAllowed, "MethodNotAllowed", http.StatusMethodNotAllowed},
		{handoff.CodeInternalError, "InternalError", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		verifier.verdict = handoff.Deny(handoff.AuthError, tt.code, "denied")
		w := do(h, signedRequest("GET", "http://localhost/testbucket/testobject", nil))
		if w.Code != tt.wantStatus {
			t.Fatalf("%v: expected %d, got %d", tt.code, tt.wantStatus, w.Code)
		}
		if e := decodeError(t, w); e.Code != tt.wantCode {
			t.Fatalf("%v: expected %s, got %+v", tt.code, tt.wantCode, e)
		}
	}
}

func TestBucketLifecycleOverHTTP(t *testing.T) {
	h, _, _ := newTestHandler(t)

	if w := do(h, signedRequest("PUT", "http://localhost/testbucket", nil)); w.Code != http.StatusOK {
		t.Fatalf("CreateBucket: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(h, signedRequest("PUT", "http://localhost/testbucket", nil)); w.Code != http.StatusConflict {
		t.Fatalf("CreateBucket again: expected 409, got %d", w.Code)
	}
	if w := do(h, signedRequest("HEAD", "http://localhost/testbucket", nil)); w.Code != http.StatusOK {
		t.Fatalf("HeadBucket: expected 200, got %d", w.Code)
	}

	w := do(h, signedRequest("GET", "http://localhost/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("ListBuckets: expected 200, got %d", w.Code)
	}
	var buckets ListAllMyBucketsResult
	if err := xml.Unmarshal(w.Body.Bytes(), &buckets); err != nil {
		t.Fatalf("Bad ListBuckets body: %v", err)
	}
	if len(buckets.Buckets.Bucket) != 1 || buckets.Buckets.Bucket[0].Name != "testbucket" {
		t.Fatalf("Unexpected buckets %+v", buckets)
	}

	if w := do(h, signedRequest("DELETE", "http://localhost/testbucket", nil)); w.Code != http.StatusNoContent {
		t.Fatalf("DeleteBucket: expected 204, got %d", w.Code)
	}
	if w := do(h, signedRequest("HEAD", "http://localhost/testbucket", nil)); w.Code != http.StatusNotFound {
		t.Fatalf("HeadBucket after delete: expected 404, got %d", w.Code)
	}
}

func TestObjectLifecycleOverHTTP(t *testing.T) {
	h, _, _ := newTestHandler(t)

	do(h, signedRequest("PUT", "http://localhost/testbucket", nil))

	put := do(h, signedRequest("PUT", "http://localhost/testbucket/testobject", strings.NewReader("hello world")))
	if put.Code != http.StatusOK {
		t.Fatalf("PutObject: expected 200, got %d: %s", put.Code, put.Body.String())
	}
	if put.Header().Get("ETag") == "" || put.Header().Get("x-amz-version-id") == "" {
		t.Fatal("Expected ETag and version id headers")
	}

	get := do(h, signedRequest("GET", "http://localhost/testbucket/testobject", nil))
	if get.Code != http.StatusOK {
		t.Fatalf("GetObject: expected 200, got %d", get.Code)
	}
	if get.Body.String() != "hello world" {
		t.Fatalf("Expected content back, got %q", get.Body.String())
	}

	head := do(h, signedRequest("HEAD", "http://localhost/testbucket/testobject", nil))
	if head.Code != http.StatusOK || head.Header().Get("Content-Length") != "11" {
		t.Fatalf("HeadObject: unexpected response %d %v", head.Code, head.Header())
	}

	if w := do(h, signedRequest("DELETE", "http://localhost/testbucket/testobject", nil)); w.Code != http.StatusNoContent {
		t.Fatalf("DeleteObject: expected 204, got %d", w.Code)
	}
	if w := do(h, signedRequest("GET", "http://localhost/testbucket/testobject", nil)); w.Code != http.StatusNotFound {
		t.Fatalf("GetObject after delete: expected 404, got %d", w.Code)
	}

	// The versions listing shows the original version and the delete marker.
	w := do(h, signedRequest("GET", "http://localhost/testbucket?versions=", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("ListObjectVersions: expected 200, got %d", w.Code)
	}
	var versions ListVersionsResult
	if err := xml.Unmarshal(w.Body.Bytes(), &versions); err != nil {
		t.Fatalf("Bad versions body: %v", err)
	}
	if len(versions.Versions) != 1 || len(versions.DeleteMarkers) != 1 {
		t.Fatalf("Expected one version and one marker, got %+v", versions)
	}
	if !versions.DeleteMarkers[0].IsLatest {
		t.Fatal("Expected the delete marker to be latest")
	}
}

func TestListObjectsOverHTTP(t *testing.T) {
	h, _, _ := newTestHandler(t)

	do(h, signedRequest("PUT", "http://localhost/testbucket", nil))
	for _, key := range []string{"a/1", "a/2", "b/1"} {
		do(h, signedRequest("PUT", "http://localhost/testbucket/"+key, strings.NewReader("x")))
	}

	w := do(h, signedRequest("GET", "http://localhost/testbucket?prefix=a%2F", nil))
	var result ListBucketResult
	if err := xml.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Bad list body: %v", err)
	}
	if len(result.Contents) != 2 {
		t.Fatalf("Expected 2 keys under prefix, got %+v", result.Contents)
	}

	w = do(h, signedRequest("GET", "http://localhost/testbucket?list-type=2&max-keys=2", nil))
	var v2 ListBucketResultV2
	if err := xml.Unmarshal(w.Body.Bytes(), &v2); err != nil {
		t.Fatalf("Bad v2 list body: %v", err)
	}
	if !v2.IsTruncated || v2.NextContinuationToken == "" {
		t.Fatalf("Expected truncated v2 listing, got %+v", v2)
	}
}

func TestMultipartLifecycleOverHTTP(t *testing.T) {
	h, _, _ := newTestHandler(t)

	do(h, signedRequest("PUT", "http://localhost/testbucket", nil))

	w := do(h, signedRequest("POST", "http://localhost/testbucket/big?uploads=", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Initiate: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var initiate InitiateMultipartUploadResult
	if err := xml.Unmarshal(w.Body.Bytes(), &initiate); err != nil {
		t.Fatalf("Bad initiate body: %v", err)
	}

	var parts CompleteMultipartUpload
	for i, data := range []string{"hello ", "world"} {
		target := fmt.Sprintf("http://localhost/testbucket/big?uploadId=%s&partNumber=%d", initiate.UploadId, i+1)
		pw := do(h, signedRequest("PUT", target, strings.NewReader(data)))
		if pw.Code != http.StatusOK {
			t.Fatalf("UploadPart %d: expected 200, got %d", i+1, pw.Code)
		}
		parts.Parts = append(parts.Parts, Multipart{PartNumber: i + 1, ETag: pw.Header().Get("ETag")})
	}

	listURL := "http://localhost/testbucket?uploads="
	w = do(h, signedRequest("GET", listURL, nil))
	var uploads ListMultipartUploadsResult
	if err := xml.Unmarshal(w.Body.Bytes(), &uploads); err != nil {
		t.Fatalf("Bad uploads body: %v", err)
	}
	if len(uploads.Uploads) != 1 || uploads.Uploads[0].UploadId != initiate.UploadId {
		t.Fatalf("Unexpected uploads %+v", uploads)
	}

	body, _ := xml.Marshal(parts)
	w = do(h, signedRequest("POST", "http://localhost/testbucket/big?uploadId="+initiate.UploadId, strings.NewReader(string(body))))
	if w.Code != http.StatusOK {
		t.Fatalf("Complete: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	get := do(h, signedRequest("GET", "http://localhost/testbucket/big", nil))
	if get.Body.String() != "hello world" {
		t.Fatalf("Expected combined object, got %q", get.Body.String())
	}
}

func TestStoreQueryBypassesAuthorization(t *testing.T) {
	h, _, store := newTestHandler(t)
	if err := store.CreateBucket("testbucket"); err != nil {
		t.Fatalf("CreateBucket failed: %v", err)
	}

	// No authorization header at all.
	r := httptest.NewRequest("GET", "http://localhost/testbucket/testobject", nil)
	r.Header.Set("x-rgw-storequery", "ping 12345")
	w := do(h, r)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"request_id":"12345"`) {
		t.Fatalf("Unexpected body %q", w.Body.String())
	}
}

func TestStoreQueryObjectStatusOverHTTP(t *testing.T) {
	h, _, store := newTestHandler(t)
	if err := store.CreateBucket("testbucket"); err != nil {
		t.Fatalf("CreateBucket failed: %v", err)
	}
	if _, err := store.PutObject("testbucket", "testobject", strings.NewReader(strings.Repeat("x", 123)), ""); err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}

	r := httptest.NewRequest("GET", "http://localhost/testbucket/testobject", nil)
	r.Header.Set("x-rgw-storequery", "objectstatus")
	w := do(h, r)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"size":123`) {
		t.Fatalf("Expected committed size in body, got %q", w.Body.String())
	}

	r = httptest.NewRequest("GET", "http://localhost/testbucket/missing", nil)
	r.Header.Set("x-rgw-storequery", "objectstatus")
	if w := do(h, r); w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for missing key, got %d", w.Code)
	}
}

const (
	chunkTimestamp = "20231012T123659Z"
	chunkScope     = "20231012/eu-west-2/s3/aws4_request"
	chunkSeedSig   = "d63f2167860f1f3a02b098988cbe9e7cf19e2d3208044e70d52bcc88985abb17"
)

func testChunkSignature(signingKey []byte, prevSig string, data []byte) string {
	chunkHash := sha256.Sum256(data)
	emptyHash := sha256.Sum256(nil)
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256-PAYLOAD",
		chunkTimestamp,
		chunkScope,
		prevSig,
		hex.EncodeToString(emptyHash[:]),
		hex.EncodeToString(chunkHash[:]),
	}, "\n")
	mac := hmac.New(sha256.New, signingKey)
	mac.Write([]byte(stringToSign))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestChunkedUploadOverHTTP(t *testing.T) {
	h, verifier, _ := newTestHandler(t)
	signingKey := []byte("0123456789abcdef0123456789abcdef")
	verifier.signingKey = signingKey

	do(h, signedRequest("PUT", "http://localhost/testbucket", nil))

	var body strings.Builder
	prev := chunkSeedSig
	for _, chunk := range []string{"hello ", "world"} {
		sig := testChunkSignature(signingKey, prev, []byte(chunk))
		fmt.Fprintf(&body, "%x;chunk-signature=%s\r\n%s\r\n", len(chunk), sig, chunk)
		prev = sig
	}
	fmt.Fprintf(&body, "0;chunk-signature=%s\r\n\r\n", testChunkSignature(signingKey, prev, nil))

	r := signedRequest("PUT", "http://localhost/testbucket/streamed", strings.NewReader(body.String()))
	r.Header.Set("X-Amz-Content-Sha256", "STREAMING-AWS4-HMAC-SHA256-PAYLOAD")
	if w := do(h, r); w.Code != http.StatusOK {
		t.Fatalf("Chunked put: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	get := do(h, signedRequest("GET", "http://localhost/testbucket/streamed", nil))
	if get.Body.String() != "hello world" {
		t.Fatalf("Expected decoded payload stored, got %q", get.Body.String())
	}
}

func TestChunkedUploadTamperedChunk(t *testing.T) {
	h, verifier, _ := newTestHandler(t)
	signingKey := []byte("0123456789abcdef0123456789abcdef")
	verifier.signingKey = signingKey

	do(h, signedRequest("PUT", "http://localhost/testbucket", nil))

	sig := testChunkSignature(signingKey, chunkSeedSig, []byte("hello"))
	body := fmt.Sprintf("5;chunk-signature=%s\r\nhaxed\r\n0;chunk-signature=%s\r\n\r\n", sig, sig)

	r := signedRequest("PUT", "http://localhost/testbucket/streamed", strings.NewReader(body))
	r.Header.Set("X-Amz-Content-Sha256", "STREAMING-AWS4-HMAC-SHA256-PAYLOAD")
	w := do(h, r)
	if w.Code == http.StatusOK {
		t.Fatal("Expected tampered chunk rejected")
	}
	if w := do(h, signedRequest("GET", "http://localhost/testbucket/streamed", nil)); w.Code != http.StatusNotFound {
		t.Fatalf("Expected no object stored, got %d", w.Code)
	}
}
