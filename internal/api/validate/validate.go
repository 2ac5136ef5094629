package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const MaxBodyBytes = 1 << 20

var (
	ErrMissing    = errors.New("missing")
	ErrNotInteger = errors.New("not an integer")
)

// Fields is a decoded JSON object body, keyed by field name.
type Fields map[string]json.RawMessage

// Decode reads a JSON object body. An empty body decodes to no fields.
func Decode(w http.ResponseWriter, r *http.Request) (Fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	f := Fields{}
	if len(bytes.TrimSpace(b)) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// Int accepts a JSON integer or a string holding one.
func (f Fields) Int(name string) (int64, error) {
	raw, ok := f[name]
	if !ok {
		return 0, ErrMissing
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(strings.TrimSpace(s))
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

// String returns the field if it is a JSON string, "" otherwise.
func (f Fields) String(name string) string {
	var s string
	if raw, ok := f[name]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// IntMessage renders an Int error the way the balance endpoints report it.
func IntMessage(field string, err error) string {
	if errors.Is(err, ErrNotInteger) {
		return field + " must be an integer"
	}
	return field + " field is required"
}
