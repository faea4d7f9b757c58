package grpcverify

import (
	"github.com/wzshiming/handoff/pkg/handoff"
	authenticatorv1 "github.com/wzshiming/handoff/pkg/authenticator/v1"
)

// errorCodes maps the Authenticator's error taxonomy onto the gateway's.
var errorCodes = map[authenticatorv1.S3ErrorDetails_Type]handoff.Code{
	authenticatorv1.S3ErrorDetails_TYPE_ACCESS_DENIED:                  handoff.CodeAccessDenied,
	authenticatorv1.S3ErrorDetails_TYPE_AUTHORIZATION_HEADER_MALFORMED: handoff.CodeInvalidRequest,
	authenticatorv1.S3ErrorDetails_TYPE_EXPIRED_TOKEN:                  handoff.CodeAccessDenied,
	authenticatorv1.S3ErrorDetails_TYPE_INTERNAL_ERROR:                 handoff.CodeInternalError,
	authenticatorv1.S3ErrorDetails_TYPE_INVALID_ACCESS_KEY_ID:          handoff.CodeInvalidAccessKey,
	authenticatorv1.S3ErrorDetails_TYPE_INVALID_REQUEST:                handoff.CodeInvalid,
	authenticatorv1.S3ErrorDetails_TYPE_INVALID_SECURITY:               handoff.CodeInvalid,
	authenticatorv1.S3ErrorDetails_TYPE_INVALID_TOKEN:                  handoff.CodeInvalidIdentityToken,
	authenticatorv1.S3ErrorDetails_TYPE_INVALID_URI:                    handoff.CodeInvalidRequest,
	authenticatorv1.S3ErrorDetails_TYPE_METHOD_NOT_ALLOWED:             handoff.CodeMethodNotAllowed,
	authenticatorv1.S3ErrorDetails_TYPE_MISSING_SECURITY_HEADER:        handoff.CodeInvalidRequest,
	authenticatorv1.S3ErrorDetails_TYPE_REQUEST_TIME_TOO_SKEWED:        handoff.CodeRequestTimeSkewed,
	authenticatorv1.S3ErrorDetails_TYPE_SIGNATURE_DOES_NOT_MATCH:       handoff.CodeSignatureNoMatch,
	authenticatorv1.S3ErrorDetails_TYPE_TOKEN_REFRESH_REQUIRED:         handoff.CodeInvalidRequest,
}

// Translate maps one S3ErrorDetails payload to a gateway error code. Types
// without a table entry fall back on the HTTP status the Authenticator asked
// for: 400 is invalid, 404 is not found, anything else is access denied.
func Translate(d *authenticatorv1.S3ErrorDetails) handoff.Code {
	if code, ok := errorCodes[d.GetType()]; ok {
		return code
	}
	switch d.GetHttpStatusCode() {
	case 400:
		return handoff.CodeInvalid
	case 404:
		return handoff.CodeNotFound
	default:
		return handoff.CodeAccessDenied
	}
}
