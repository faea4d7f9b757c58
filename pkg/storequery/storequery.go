// Package storequery implements the x-rgw-storequery header side-channel:
// out-of-band commands embedded in S3 requests that bypass authorization
// and surface object-presence information from the bucket index.
package storequery

import (
	"errors"
	"strings"
)

// HeaderName triggers the side-channel when present on a request.
const HeaderName = "x-rgw-storequery"

// maxHeaderLen bounds the accepted header value, in bytes.
const maxHeaderLen = 2048

var (
	// ErrMalformedHeader means the header failed length, character set,
	// or grammar checks. It is terminal for the request.
	ErrMalformedHeader = errors.New("storequery: malformed header")
	// ErrNotFound means objectstatus found neither a committed object
	// nor an in-flight multipart upload.
	ErrNotFound = errors.New("storequery: no such key")
)

// Context is the handler type of the dispatch site. It restricts which
// commands are accepted.
type Context int

const (
	ServiceContext Context = iota
	BucketContext
	ObjectContext
)

// Command is one parsed side-channel command. The name is lowercased;
// parameter case is preserved.
type Command struct {
	Name   string
	Params []string
}

// ParseHeader validates and tokenizes a header value. The value must be at
// most 2048 bytes of printable ASCII. Tokens are space-separated; double
// quotes group spaces into one token and \" is a literal quote, inside or
// outside quotes.
func ParseHeader(value string) (*Command, error) {
	if len(value) > maxHeaderLen {
		return nil, ErrMalformedHeader
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 32 || value[i] > 126 {
			return nil, ErrMalformedHeader
		}
	}

	tokens, err := tokenize(value)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrMalformedHeader
	}
	return &Command{
		Name:   strings.ToLower(tokens[0]),
		Params: tokens[1:],
	}, nil
}

func tokenize(s string) ([]string, error) {
	var tokens []string
	var cur []byte
	inQuotes := false
	started := false

	flush := func() {
		if started {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
			started = false
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '"':
			cur = append(cur, '"')
			started = true
			i++
		case c == '"':
			inQuotes = !inQuotes
			started = true
		case c == ' ' && !inQuotes:
			flush()
		default:
			cur = append(cur, c)
			started = true
		}
	}
	if inQuotes {
		return nil, ErrMalformedHeader
	}
	flush()
	return tokens, nil
}
