package storequery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wzshiming/handoff/pkg/storage"
)

func newTestHandler(t *testing.T) (*Handler, *storage.Storage) {
	t.Helper()
	s, err := storage.NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.CreateBucket("testbucket"); err != nil {
		t.Fatalf("CreateBucket failed: %v", err)
	}
	return NewHandler(s), s
}

func serve(h *Handler, header string, qctx Context, bucket, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeQuery(w, header, qctx, bucket, key)
	return w
}

func TestPing(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, qctx := range []Context{ServiceContext, BucketContext, ObjectContext} {
		w := serve(h, "ping 12345-abc", qctx, "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Fatalf("Expected JSON content type, got %q", ct)
		}
		var resp pingResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Bad response body %q: %v", w.Body.String(), err)
		}
		if resp.Result.RequestID != "12345-abc" {
			t.Fatalf("Expected request id echoed verbatim, got %q", resp.Result.RequestID)
		}
	}
}

func TestPingPreservesCase(t *testing.T) {
	h, _ := newTestHandler(t)

	w := serve(h, "Ping MiXeD-CaSe", ServiceContext, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"request_id":"MiXeD-CaSe"`) {
		t.Fatalf("Expected parameter case preserved, got %q", w.Body.String())
	}
}

func TestPingParamCount(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, header := range []string{"ping", "ping a b"} {
		w := serve(h, header, ServiceContext, "", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%q: expected 500, got %d", header, w.Code)
		}
	}
}

func TestMalformedHeaderIsTerminal(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []string{
		"",
		"ping\x01id",
		"ping " + strings.Repeat("x", maxHeaderLen),
		"nosuchcommand",
	}
	for _, header := range tests {
		w := serve(h, header, ObjectContext, "testbucket", "k")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%q: expected 500, got %d", header, w.Code)
		}
	}
}

func TestObjectStatusCommitted(t *testing.T) {
	h, s := newTestHandler(t)
	info, err := s.PutObject("testbucket", "testobject", strings.NewReader(strings.Repeat("z", 123)), "")
	if err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}

	w := serve(h, "objectstatus", ObjectContext, "testbucket", "testobject")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp objectStatusResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body %q: %v", w.Body.String(), err)
	}
	obj := resp.Result.Object
	if obj.Bucket != "testbucket" || obj.Key != "testobject" {
		t.Fatalf("Unexpected identity %+v", obj)
	}
	if obj.Deleted || obj.MultipartUploadInProgress {
		t.Fatalf("Expected plain committed object, got %+v", obj)
	}
	if obj.VersionID != info.VersionID {
		t.Fatalf("Expected version %q, got %q", info.VersionID, obj.VersionID)
	}
	if obj.Size == nil || *obj.Size != 123 {
		t.Fatalf("Expected size 123, got %+v", obj.Size)
	}
}

func TestObjectStatusDeleted(t *testing.T) {
	h, s := newTestHandler(t)
	if _, err := s.PutObject("testbucket", "testobject", strings.NewReader("x"), ""); err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}
	if err := s.DeleteObject("testbucket", "testobject"); err != nil {
		t.Fatalf("DeleteObject failed: %v", err)
	}

	w := serve(h, "objectstatus", ObjectContext, "testbucket", "testobject")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp objectStatusResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body %q: %v", w.Body.String(), err)
	}
	obj := resp.Result.Object
	if !obj.Deleted {
		t.Fatalf("Expected deleted, got %+v", obj)
	}
	if obj.Size != nil || obj.VersionID != "" {
		t.Fatalf("Expected no size or version for a delete marker, got %+v", obj)
	}
}

func TestObjectStatusMultipartInProgress(t *testing.T) {
	h, s := newTestHandler(t)
	uploadID, err := s.InitiateMultipartUpload("testbucket", "testobject")
	if err != nil {
		t.Fatalf("InitiateMultipartUpload failed: %v", err)
	}

	w := serve(h, "objectstatus", ObjectContext, "testbucket", "testobject")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp objectStatusResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body %q: %v", w.Body.String(), err)
	}
	obj := resp.Result.Object
	if !obj.MultipartUploadInProgress {
		t.Fatalf("Expected in-flight upload, got %+v", obj)
	}
	if obj.MultipartUploadID != uploadID {
		t.Fatalf("Expected upload id %q, got %q", uploadID, obj.MultipartUploadID)
	}
	if obj.Deleted || obj.Size != nil {
		t.Fatalf("Unexpected committed fields %+v", obj)
	}
}

func TestObjectStatusCommittedWinsOverUpload(t *testing.T) {
	h, s := newTestHandler(t)
	info, err := s.PutObject("testbucket", "testobject", strings.NewReader("x"), "")
	if err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}
	if _, err := s.InitiateMultipartUpload("testbucket", "testobject"); err != nil {
		t.Fatalf("InitiateMultipartUpload failed: %v", err)
	}

	w := serve(h, "objectstatus", ObjectContext, "testbucket", "testobject")
	var resp objectStatusResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body %q: %v", w.Body.String(), err)
	}
	obj := resp.Result.Object
	if obj.MultipartUploadInProgress {
		t.Fatalf("Expected committed object to win, got %+v", obj)
	}
	if obj.VersionID != info.VersionID {
		t.Fatalf("Expected version %q, got %q", info.VersionID, obj.VersionID)
	}
}

func TestObjectStatusNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	w := serve(h, "objectstatus", ObjectContext, "testbucket", "missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
}

func TestObjectStatusExactKeyMatch(t *testing.T) {
	h, s := newTestHandler(t)
	if _, err := s.PutObject("testbucket", "testobject-suffix", strings.NewReader("x"), ""); err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}

	// The index listing is prefix based; a longer key must not satisfy the
	// query for its prefix.
	w := serve(h, "objectstatus", ObjectContext, "testbucket", "testobject")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for prefix-only match, got %d", w.Code)
	}
}

func TestObjectStatusPagesThroughIndex(t *testing.T) {
	h, s := newTestHandler(t)

	// Fill the version index with more prefix matches than one listing
	// page so the first pass has to follow markers before giving way to
	// the upload table.
	for i := 0; i < queryPageSize+5; i++ {
		key := fmt.Sprintf("testobject-%03d", i)
		if _, err := s.PutObject("testbucket", key, strings.NewReader("x"), ""); err != nil {
			t.Fatalf("PutObject %s failed: %v", key, err)
		}
	}
	uploadID, err := s.InitiateMultipartUpload("testbucket", "testobject")
	if err != nil {
		t.Fatalf("InitiateMultipartUpload failed: %v", err)
	}

	w := serve(h, "objectstatus", ObjectContext, "testbucket", "testobject")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp objectStatusResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body %q: %v", w.Body.String(), err)
	}
	if resp.Result.Object.MultipartUploadID != uploadID {
		t.Fatalf("Expected upload id %q, got %+v", uploadID, resp.Result.Object)
	}
}

func TestObjectStatusRequiresObjectContext(t *testing.T) {
	h, s := newTestHandler(t)
	if _, err := s.PutObject("testbucket", "testobject", strings.NewReader("x"), ""); err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}

	for _, qctx := range []Context{ServiceContext, BucketContext} {
		w := serve(h, "objectstatus", qctx, "testbucket", "testobject")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("Expected 500 outside object context, got %d", w.Code)
		}
	}
}

func TestObjectStatusRejectsParams(t *testing.T) {
	h, _ := newTestHandler(t)

	w := serve(h, "objectstatus extra", ObjectContext, "testbucket", "testobject")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for extra parameter, got %d", w.Code)
	}
}
