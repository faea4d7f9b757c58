package server

import (
	"encoding/xml"
	"net/http"

	"github.com/wzshiming/handoff/pkg/handoff"
)

// xmlResponse writes an XML response
func (s *S3Handler) xmlResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(data); err != nil {
		return
	}
}

// xmlRequest reads and decodes an XML request body
func (s *S3Handler) xmlRequest(r *http.Request, data any) error {
	return xml.NewDecoder(r.Body).Decode(data)
}

// errorResponse writes an error response
func (s *S3Handler) errorResponse(w http.ResponseWriter, r *http.Request, code, message string, status int) {
	err := Error{
		Code:    code,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)

	if _, writeErr := w.Write([]byte(xml.Header)); writeErr != nil {
		return
	}
	if encodeErr := xml.NewEncoder(w).Encode(err); encodeErr != nil {
		return
	}
}

// verdictResponse translates an authentication denial into the S3 error
// response the client sees.
func (s *S3Handler) verdictResponse(w http.ResponseWriter, r *http.Request, verdict handoff.Verdict) {
	code, status := verdictError(verdict.Code())
	message := verdict.Message()
	if message == "" {
		message = "Access Denied"
	}
	s.errorResponse(w, r, code, message, status)
}

// verdictError maps an authenticator error code to the S3 error code and
// HTTP status reported to the client.
func verdictError(code handoff.Code) (string, int) {
	switch code {
	case handoff.CodeAccessDenied:
		return "AccessDenied", http.StatusForbidden
	case handoff.CodeSignatureNoMatch:
		return "SignatureDoesNotMatch", http.StatusForbidden
	case handoff.CodeInvalidAccessKey:
		return "InvalidAccessKeyId", http.StatusForbidden
	case handoff.CodeRequestTimeSkewed:
		return "RequestTimeTooSkewed", http.StatusForbidden
	case handoff.CodeInvalid:
		return "InvalidArgument", http.StatusBadRequest
	case handoff.CodeInvalidRequest:
		return "InvalidRequest", http.StatusBadRequest
	case handoff.CodeInvalidIdentityToken:
		return "InvalidIdentityToken", http.StatusBadRequest
	case handoff.CodeNotFound:
		return "NoSuchKey", http.StatusNotFound
	case handoff.CodeMethodNotAllowed:
		return "MethodNotAllowed", http.StatusMethodNotAllowed
	case handoff.CodeInternalError:
		return "InternalError", http.StatusInternalServerError
	default:
		return "AccessDenied", http.StatusForbidden
	}
}
