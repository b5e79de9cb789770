package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/keen-menu/src/internal/log"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	fieldsKey    contextKey = "menu_fields"

	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-Id"

	isoTimestamp = "2006-01-02T15:04:05.000Z07:00"
)

// RequestID reuses the client's X-Request-Id or generates a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestIDFromContext returns the id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogger logs every request before it is handled. POST and PUT bodies
// are logged on a second line. format is a fasttemplate with the tags
// timestamp, method, url and request_id.
func RequestLogger(format string) func(http.Handler) http.Handler {
	t, err := fasttemplate.NewTemplate(format, "{{", "}}")
	if err != nil {
		log.Warnf("Invalid request log format %q (%v), using plain format", format, err)
		t = fasttemplate.New("{{timestamp}} {{method}} {{url}}", "{{", "}}")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := RequestIDFromContext(r.Context())

			line := t.ExecuteFuncString(func(tw io.Writer, tag string) (int, error) {
				switch tag {
				case "timestamp":
					return io.WriteString(tw, start.UTC().Format(isoTimestamp))
				case "method":
					return io.WriteString(tw, r.Method)
				case "url":
					return io.WriteString(tw, r.URL.RequestURI())
				case "request_id":
					return io.WriteString(tw, requestID)
				default:
					return 0, nil
				}
			})
			log.Infof("%s", line)

			if r.Method == http.MethodPost || r.Method == http.MethodPut {
				data, _ := peekBody(r)
				log.Infof("Request body [%s]: %s", requestID, compactBody(data, r.Header.Get("Content-Type")))
			}

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			log.Debugf("%s %s - %d (%v)", r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
		})
	}
}

// ValidateBody decodes the JSON body and runs rules on it. On success the
// validated fields are put on the request context; with defaultAvailable a
// missing "available" becomes true.
func ValidateBody(rules []menu.Rule, defaultAvailable bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := peekBody(r)
			if errors.Is(err, errBodyTooLarge) {
				WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large")
				return
			}
			if err != nil {
				WriteInvalidRequest(w, "Failed to read request body: "+err.Error())
				return
			}

			body, err := decodeObject(data, r.Header.Get("Content-Type"))
			if errors.Is(err, errNotAnObject) {
				WriteInvalidRequest(w, "Request body must be a JSON object")
				return
			}
			if err != nil {
				WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
				return
			}

			fields, violations := menu.Validate(body, rules)
			if len(violations) > 0 {
				WriteValidationError(w, violations)
				return
			}
			if defaultAvailable {
				fields.DefaultAvailable()
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), fieldsKey, fields)))
		})
	}
}

// fieldsFromContext returns the fields stored by ValidateBody.
func fieldsFromContext(ctx context.Context) (menu.Fields, bool) {
	fields, ok := ctx.Value(fieldsKey).(menu.Fields)
	return fields, ok
}

// Recovery middleware recovers from panics and returns a 500 error.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Errorf("Panic recovered: %v", err)
				WriteInternalError(w, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CORS middleware adds permissive CORS headers.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
