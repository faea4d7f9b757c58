// Package handoff implements delegated S3 request authentication.
//
// The gateway holds no secret keys. For each inbound request it extracts or
// synthesizes the AWS Authorization credential, snapshots the request
// context, and forwards the signing inputs to an external Authenticator
// service which returns a verdict. Chunked uploads additionally receive a
// day-bounded signing key so chunk signatures can be checked locally.
package handoff

// Category classifies how an authentication attempt concluded.
type Category int

const (
	// NoError means the Authenticator accepted the signature.
	NoError Category = iota
	// TransportError means the Authenticator call failed or returned
	// details the client could not interpret.
	TransportError
	// AuthError means the Authenticator returned a structured denial.
	AuthError
	// InternalError means a response parse failure or invariant violation.
	InternalError
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case NoError:
		return "NoError"
	case TransportError:
		return "TransportError"
	case AuthError:
		return "AuthError"
	case InternalError:
		return "InternalError"
	}
	return "Unknown"
}

// Code is the gateway's S3 error taxonomy. The REST layer renders each code
// as the corresponding S3 XML error response.
type Code int

const (
	CodeNone Code = iota
	CodeAccessDenied
	CodeInvalid
	CodeInvalidRequest
	CodeInvalidAccessKey
	CodeInvalidIdentityToken
	CodeInternalError
	CodeMethodNotAllowed
	CodeNotFound
	CodeRequestTimeSkewed
	CodeSignatureNoMatch
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeAccessDenied:
		return "AccessDenied"
	case CodeInvalid:
		return "Invalid"
	case CodeInvalidRequest:
		return "InvalidRequest"
	case CodeInvalidAccessKey:
		return "InvalidAccessKey"
	case CodeInvalidIdentityToken:
		return "InvalidIdentityToken"
	case CodeInternalError:
		return "InternalError"
	case CodeMethodNotAllowed:
		return "MethodNotAllowed"
	case CodeNotFound:
		return "NotFound"
	case CodeRequestTimeSkewed:
		return "RequestTimeSkewed"
	case CodeSignatureNoMatch:
		return "SignatureNoMatch"
	}
	return "Unknown"
}

// Verdict is the typed result of one authentication attempt. The zero value
// is a denial with no detail. All accessors are total: reading the user id
// or signing key of a denial returns ok=false rather than panicking.
type Verdict struct {
	ok         bool
	userID     string
	message    string
	signingKey []byte
	category   Category
	code       Code
}

// Accept builds a success verdict for the given user.
func Accept(userID, message string) Verdict {
	return Verdict{ok: true, userID: userID, message: message}
}

// Deny builds a failure verdict.
func Deny(category Category, code Code, message string) Verdict {
	return Verdict{category: category, code: code, message: message}
}

// DenyAccess builds the common access-denied failure verdict.
func DenyAccess(category Category, message string) Verdict {
	return Deny(category, CodeAccessDenied, message)
}

// OK reports whether the request was accepted.
func (v Verdict) OK() bool {
	return v.ok
}

// UserID returns the authenticated user id. ok is false on a denial.
func (v Verdict) UserID() (string, bool) {
	if !v.ok {
		return "", false
	}
	return v.userID, true
}

// SigningKey returns the chunk signing key attached to a success verdict.
// ok is false when no key was fetched or the verdict is a denial.
func (v Verdict) SigningKey() ([]byte, bool) {
	if !v.ok || len(v.signingKey) == 0 {
		return nil, false
	}
	return v.signingKey, true
}

// WithSigningKey returns a copy of a success verdict carrying the key.
// Calling it on a denial returns the denial unchanged.
func (v Verdict) WithSigningKey(key []byte) Verdict {
	if !v.ok {
		return v
	}
	v.signingKey = key
	return v
}

// Category returns the error category. NoError on success.
func (v Verdict) Category() Category {
	if v.ok {
		return NoError
	}
	return v.category
}

// Code returns the gateway error code. CodeNone on success.
func (v Verdict) Code() Code {
	if v.ok {
		return CodeNone
	}
	return v.code
}

// Message returns the human-readable detail, if any.
func (v Verdict) Message() string {
	return v.message
}
