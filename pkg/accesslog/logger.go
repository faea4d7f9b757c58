// Package accesslog emits one log line per gateway request, in a layout
// close to the S3 server access log format.
package accesslog

import (
	"log"
	"net"
	"net/http"
	"time"
)

// Entry represents a single access log entry
type Entry struct {
	RemoteIP   string
	Method     string
	RequestURI string
	HTTPStatus int
	BytesSent  int64
	TotalTime  time.Duration
	UserAgent  string
	Timestamp  time.Time
}

// Logger wraps a handler and logs every request it serves.
type Logger struct {
	next   http.Handler
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the logger's time source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// NewLogger creates access logging middleware writing through logger.
func NewLogger(next http.Handler, logger *log.Logger, opts ...Option) *Logger {
	l := &Logger{
		next:   next,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// statusRecorder captures the status code and bytes written to a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += int64(n)
	return n, err
}

// ServeHTTP implements the http.Handler interface.
func (l *Logger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := l.now()
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	l.next.ServeHTTP(recorder, r)

	l.log(Entry{
		RemoteIP:   remoteIP(r),
		Method:     r.Method,
		RequestURI: r.URL.RequestURI(),
		HTTPStatus: recorder.status,
		BytesSent:  recorder.bytes,
		TotalTime:  l.now().Sub(start),
		UserAgent:  r.UserAgent(),
		Timestamp:  start,
	})
}

func (l *Logger) log(e Entry) {
	l.logger.Printf("%s [%s] %q %s %q %d %d %dms",
		e.RemoteIP,
		e.Timestamp.UTC().Format("02/Jan/2006:15:04:05 -0700"),
		e.Method,
		e.RequestURI,
		e.UserAgent,
		e.HTTPStatus,
		e.BytesSent,
		e.TotalTime.Milliseconds(),
	)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
