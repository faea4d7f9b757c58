package handoff

import (
	"net/http/httptest"
	"testing"
	"time"
)

const testAccessKey = "0555b35654ad1656d804"

func TestNormalizeInboundHeaderVerbatim(t *testing.T) {
	cfg := DefaultConfig()
	req := &Request{
		Env: map[string]string{
			"HTTP_AUTHORIZATION": "AWS " + testAccessKey + ":ZbQ5cA54KqNak3O2KTRTwX5YzUE=",
		},
		Query: map[string]string{},
	}

	header, err := normalizeAuthorization(req, &cfg, time.Now())
	if err != nil {
		t.Fatalf("normalizeAuthorization failed: %v", err)
	}
	if header != req.Env["HTTP_AUTHORIZATION"] {
		t.Fatalf("Expected inbound header verbatim, got %q", header)
	}
}

func TestNormalizeSynthesizeV2(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PresignedExpiryCheck = false
	req := &Request{
		Env: map[string]string{},
		Query: map[string]string{
			"AWSAccessKeyId": testAccessKey,
			"Signature":      "2HxhmxDYl0WgfktL0L62GVC+9vY=",
		},
	}

	header, err := normalizeAuthorization(req, &cfg, time.Now())
	if err != nil {
		t.Fatalf("normalizeAuthorization failed: %v", err)
	}
	want := "AWS " + testAccessKey + ":2HxhmxDYl0WgfktL0L62GVC+9vY="
	if header != want {
		t.Fatalf("Expected %q, got %q", want, header)
	}
}

func TestNormalizeSynthesizeV4(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PresignedExpiryCheck = false
	req := &Request{
		Env: map[string]string{},
		Query: map[string]string{
			"x-amz-credential":    testAccessKey + "/20231012/eu-west-2/s3/aws4_request",
			"x-amz-signedheaders": "host",
			"x-amz-signature":     "d63f2167860f1f3a02b098988cbe9e7cf19e2d3208044e70d52bcc88985abb17",
		},
	}

	header, err := normalizeAuthorization(req, &cfg, time.Now())
	if err != nil {
		t.Fatalf("normalizeAuthorization failed: %v", err)
	}
	want := "AWS4-HMAC-SHA256 Credential=" + testAccessKey + "/20231012/eu-west-2/s3/aws4_request" +
		", SignedHeaders=host" +
		", Signature=d63f2167860f1f3a02b098988cbe9e7cf19e2d3208044e70d52bcc88985abb17"
	if header != want {
		t.Fatalf("Expected %q, got %q", want, header)
	}
}

func TestNormalizeMissingParameters(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name  string
		query map[string]string
	}{
		{"no credential at all", map[string]string{}},
		{"v2 missing signature", map[string]string{"AWSAccessKeyId": testAccessKey}},
		{"v4 missing signed headers", map[string]string{
			"x-amz-credential": testAccessKey + "/20231012/eu-west-2/s3/aws4_request",
			"x-amz-signature":  "d63f",
		}},
		{"v4 missing signature", map[string]string{
			"x-amz-credential":    testAccessKey + "/20231012/eu-west-2/s3/aws4_request",
			"x-amz-signedheaders": "host",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Env: map[string]string{}, Query: tt.query}
			_, err := normalizeAuthorization(req, &cfg, time.Now())
			if err == nil {
				t.Fatal("Expected normalization to fail")
			}
		})
	}
}

func TestValidPresignedTimeV2(t *testing.T) {
	// Expires=1697122817 is 60 seconds after now.
	now := int64(1697122757)
	query := map[string]string{
		"AWSAccessKeyId": testAccessKey,
		"Expires":        "1697122817",
		"Signature":      "2HxhmxDYl0WgfktL0L62GVC+9vY=",
	}

	if !validPresignedTime(query, time.Unix(now, 0)) {
		t.Fatal("Expected valid at issue time")
	}
	if !validPresignedTime(query, time.Unix(now+60, 0)) {
		t.Fatal("Expected valid at expiry instant")
	}
	if validPresignedTime(query, time.Unix(now+61, 0)) {
		t.Fatal("Expected invalid one second past expiry")
	}
}

func TestValidPresignedTimeV4(t *testing.T) {
	issued := time.Date(2023, 10, 12, 12, 36, 59, 0, time.UTC)
	query := map[string]string{
		"x-amz-credential": testAccessKey + "/20231012/eu-west-2/s3/aws4_request",
		"x-amz-date":       "20231012T123659Z",
		"x-amz-expires":    "3600",
	}

	if !validPresignedTime(query, issued) {
		t.Fatal("Expected valid at issue time")
	}
	if !validPresignedTime(query, issued.Add(3600*time.Second)) {
		t.Fatal("Expected valid at expiry instant")
	}
	if validPresignedTime(query, issued.Add(3601*time.Second)) {
		t.Fatal("Expected invalid one second past expiry")
	}
}

func TestValidPresignedTimeFailsClosed(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		query map[string]string
	}{
		{"v2 missing Expires", map[string]string{"AWSAccessKeyId": testAccessKey}},
		{"v2 unparseable Expires", map[string]string{
			"AWSAccessKeyId": testAccessKey,
			"Expires":        "tomorrow",
		}},
		{"v4 missing date", map[string]string{
			"x-amz-credential": "c",
			"x-amz-expires":    "3600",
		}},
		{"v4 bad date format", map[string]string{
			"x-amz-credential": "c",
			"x-amz-date":       "2023-10-12 12:36:59",
			"x-amz-expires":    "3600",
		}},
		{"v4 negative expires", map[string]string{
			"x-amz-credential": "c",
			"x-amz-date":       "20231012T123659Z",
			"x-amz-expires":    "-1",
		}},
		{"neither form", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if validPresignedTime(tt.query, now) {
				t.Fatal("Expected fail closed")
			}
		})
	}
}

func TestNewRequestLowercasesAmzQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/bucket/key?X-Amz-Credential=c&X-Amz-Signature=s&Marker=m", nil)
	r.Header.Set("X-Amz-Date", "20231012T123659Z")
	r.Header.Set("Authorization", "AWS4-HMAC-SHA256 ...")

	req := NewRequest("txn-1", r)
	if req.Query["x-amz-credential"] != "c" {
		t.Fatalf("Expected lowercased x-amz-credential, got %v", req.Query)
	}
	if req.Query["Marker"] != "m" {
		t.Fatal("Expected non-amz parameter names preserved")
	}
	if req.Env["HTTP_X_AMZ_DATE"] != "20231012T123659Z" {
		t.Fatalf("Expected CGI-form header key, got %v", req.Env)
	}
	if req.Header("Authorization") == "" {
		t.Fatal("Expected Authorization visible through Header")
	}
}
