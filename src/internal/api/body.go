package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// maxBodySize is the largest accepted request body (100 KiB).
const maxBodySize = 100 << 10

var (
	errBodyTooLarge = errors.New("request body too large")
	errNotAnObject  = errors.New("request body must be a JSON object")
)

// peekBody reads up to maxBodySize+1 bytes and puts an equivalent body back on
// the request, so later stages read exactly what the client sent.
func peekBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(data), r.Body), Closer: r.Body}
	if err != nil {
		return data, err
	}
	if len(data) > maxBodySize {
		return data, errBodyTooLarge
	}
	return data, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// isJSONContentType accepts application/json, */*+json and a missing header.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// decodeObject decodes a JSON object body. Bodies that are empty, not
// declared as JSON or a JSON array decode to an empty object, so the field
// rules report what is missing. Other top-level values are rejected.
func decodeObject(data []byte, contentType string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 || !isJSONContentType(contentType) {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}

	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case []any:
		return map[string]any{}, nil
	default:
		return nil, errNotAnObject
	}
}

// compactBody renders a body for the request log.
func compactBody(data []byte, contentType string) string {
	if len(bytes.TrimSpace(data)) == 0 || !isJSONContentType(contentType) {
		return "{}"
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return fmt.Sprintf("%q", data)
	}
	return buf.String()
}
