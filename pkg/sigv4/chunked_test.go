package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"testing"
)

const (
	testTimestamp = "20231012T123659Z"
	testScope     = "20231012/eu-west-2/s3/aws4_request"
	testSeedSig   = "0ff5da4ef7b6b72dc9b3ee7a62a16d0b473ac19ff48d3ce009f1cbbfecd59dcd"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func chunkSignature(prevSig string, data []byte) string {
	chunkHash := sha256.Sum256(data)
	emptyHash := sha256.Sum256(nil)
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256-PAYLOAD",
		testTimestamp,
		testScope,
		prevSig,
		hex.EncodeToString(emptyHash[:]),
		hex.EncodeToString(chunkHash[:]),
	}, "\n")
	mac := hmac.New(sha256.New, testSigningKey)
	mac.Write([]byte(stringToSign))
	return hex.EncodeToString(mac.Sum(nil))
}

// buildChunkedBody frames the given chunks with valid chained signatures
// and a signed zero-size terminator.
func buildChunkedBody(chunks ...string) string {
	var b strings.Builder
	prev := testSeedSig
	for _, chunk := range chunks {
		sig := chunkSignature(prev, []byte(chunk))
		fmt.Fprintf(&b, "%x;chunk-signature=%s\r\n%s\r\n", len(chunk), sig, chunk)
		prev = sig
	}
	fmt.Fprintf(&b, "0;chunk-signature=%s\r\n\r\n", chunkSignature(prev, nil))
	return b.String()
}

func newTestChunkedReader(body string) *ChunkedReader {
	return NewChunkedReader(strings.NewReader(body), testSigningKey, testTimestamp, testScope, testSeedSig)
}

func TestChunkedReaderValidStream(t *testing.T) {
	body := buildChunkedBody("hello ", "world")
	data, err := io.ReadAll(newTestChunkedReader(body))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("Expected decoded payload, got %q", data)
	}
}

func TestChunkedReaderSingleChunk(t *testing.T) {
	body := buildChunkedBody("just one chunk of data")
	data, err := io.ReadAll(newTestChunkedReader(body))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "just one chunk of data" {
		t.Fatalf("Expected decoded payload, got %q", data)
	}
}

func TestChunkedReaderSmallReads(t *testing.T) {
	body := buildChunkedBody("hello ", "world")
	r := newTestChunkedReader(body)
	var out []byte
	buf := make([]byte, 3)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
	}
	if string(out) != "hello world" {
		t.Fatalf("Expected decoded payload, got %q", out)
	}
}

func TestChunkedReaderTamperedData(t *testing.T) {
	body := buildChunkedBody("hello world")
	body = strings.Replace(body, "hello world", "hacked world", 1)
	if _, err := io.ReadAll(newTestChunkedReader(body)); err != ErrChunkSignatureMismatch {
		t.Fatalf("Expected ErrChunkSignatureMismatch, got %v", err)
	}
}

func TestChunkedReaderBadSeedSignature(t *testing.T) {
	body := buildChunkedBody("hello world")
	r := NewChunkedReader(strings.NewReader(body), testSigningKey, testTimestamp, testScope, "wrongseed")
	if _, err := io.ReadAll(r); err != ErrChunkSignatureMismatch {
		t.Fatalf("Expected ErrChunkSignatureMismatch, got %v", err)
	}
}

func TestChunkedReaderWrongKey(t *testing.T) {
	body := buildChunkedBody("hello world")
	r := NewChunkedReader(strings.NewReader(body), []byte("another-key"), testTimestamp, testScope, testSeedSig)
	if _, err := io.ReadAll(r); err != ErrChunkSignatureMismatch {
		t.Fatalf("Expected ErrChunkSignatureMismatch, got %v", err)
	}
}

func TestChunkedReaderMissingSignature(t *testing.T) {
	body := "b\r\nhello world\r\n0\r\n\r\n"
	if _, err := io.ReadAll(newTestChunkedReader(body)); err != ErrInvalidChunkFormat {
		t.Fatalf("Expected ErrInvalidChunkFormat, got %v", err)
	}
}

func TestChunkedReaderBadSize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"non-hex size", "zz;chunk-signature=ab\r\n", ErrInvalidChunkFormat},
		{"empty size", ";chunk-signature=ab\r\n", ErrInvalidChunkFormat},
		{"oversized", "10000000;chunk-signature=ab\r\n", ErrChunkTooLarge},
	}
	for _, tt := range tests {
		if _, err := io.ReadAll(newTestChunkedReader(tt.body)); err != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestChunkedReaderBadChunkDelimiter(t *testing.T) {
	// Valid signature, but the data is not terminated by an exact CRLF.
	sig := chunkSignature(testSeedSig, []byte("hello world"))
	body := fmt.Sprintf("b;chunk-signature=%s\r\nhello world\rX", sig)
	body += fmt.Sprintf("0;chunk-signature=%s\r\n\r\n", chunkSignature(sig, nil))
	if _, err := io.ReadAll(newTestChunkedReader(body)); err != ErrInvalidChunkFormat {
		t.Fatalf("Expected ErrInvalidChunkFormat, got %v", err)
	}
}

func TestUnsignedChunkedReaderBadDelimiter(t *testing.T) {
	body := "6\r\nhello \nX5\r\nworld\r\n0\r\n\r\n"
	if _, err := io.ReadAll(NewUnsignedChunkedReader(strings.NewReader(body))); err != ErrInvalidChunkFormat {
		t.Fatalf("Expected ErrInvalidChunkFormat, got %v", err)
	}
}

func TestChunkedReaderFinalChunkSignatureChecked(t *testing.T) {
	body := buildChunkedBody("hello world")
	// Corrupt only the terminator's signature.
	idx := strings.LastIndex(body, "0;chunk-signature=")
	body = body[:idx] + "0;chunk-signature=" + strings.Repeat("0", 64) + "\r\n\r\n"
	if _, err := io.ReadAll(newTestChunkedReader(body)); err != ErrChunkSignatureMismatch {
		t.Fatalf("Expected ErrChunkSignatureMismatch, got %v", err)
	}
}

func TestUnsignedChunkedReader(t *testing.T) {
	body := "6\r\nhello \r\n5\r\nworld\r\n0\r\nx-amz-checksum-crc32:DUoRhQ==\r\n\r\n"
	data, err := io.ReadAll(NewUnsignedChunkedReader(strings.NewReader(body)))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("Expected decoded payload, got %q", data)
	}
}

func TestUnsignedChunkedReaderIgnoresSignatures(t *testing.T) {
	// Signed framing decodes too; the signatures are not checked.
	body := "b;chunk-signature=" + strings.Repeat("0", 64) + "\r\nhello world\r\n0\r\n\r\n"
	data, err := io.ReadAll(NewUnsignedChunkedReader(strings.NewReader(body)))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("Expected decoded payload, got %q", data)
	}
}

func TestIsUnsignedChunkedUpload(t *testing.T) {
	tests := []struct {
		sha256   string
		encoding string
		want     bool
	}{
		{UnsignedStreamingPayloadHash, "", true},
		{"STREAMING-AWS4-HMAC-SHA256-PAYLOAD-TRAILER", "", true},
		{"", "aws-chunked", true},
		{"", "aws-chunked,gzip", true},
		{StreamingPayloadHash, "", false},
		{StreamingPayloadHash, "aws-chunked", false},
		{"UNSIGNED-PAYLOAD", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := IsUnsignedChunkedUpload(tt.sha256, tt.encoding); got != tt.want {
			t.Fatalf("IsUnsignedChunkedUpload(%q, %q) = %v, want %v", tt.sha256, tt.encoding, got, tt.want)
		}
	}
}

func TestIsChunkedUpload(t *testing.T) {
	if !IsChunkedUpload(StreamingPayloadHash) {
		t.Fatal("Expected streaming payload detected")
	}
	if IsChunkedUpload("UNSIGNED-PAYLOAD") || IsChunkedUpload("") {
		t.Fatal("Expected non-streaming payloads rejected")
	}
}
