package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingCredential is returned when no API key was configured
var ErrMissingCredential = errors.New("API key not found")

// StatusError is returned for non-2xx replies from the listing endpoint
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("HTTP Error %s", e.Status)
	}
	return fmt.Sprintf("HTTP Error %d", e.StatusCode)
}

// RequestFailure is the single failure kind of a listing run. Transport,
// status, decoding and configuration problems all end up here.
type RequestFailure struct {
	Source string
	Err    error

	credential string
}

func (f *RequestFailure) Error() string {
	msg := f.Err.Error()
	if f.credential != "" {
		msg = redactQueryKey(msg, url.QueryEscape(f.credential))
		msg = redactQueryKey(msg, f.credential)
	}
	return msg
}

// redactQueryKey replaces whole "key=<value>" parameters only
func redactQueryKey(msg, value string) string {
	needle := "key=" + value
	var b strings.Builder
	for {
		i := strings.Index(msg, needle)
		if i < 0 {
			b.WriteString(msg)
			return b.String()
		}
		end := i + len(needle)
		startOK := i == 0 || strings.ContainsRune("?& \"", rune(msg[i-1]))
		endOK := end == len(msg) || strings.ContainsRune("&\"# \t\n", rune(msg[end]))
		if !startOK || !endOK {
			b.WriteString(msg[:end])
			msg = msg[end:]
			continue
		}
		b.WriteString(msg[:i])
		b.WriteString("key=REDACTED")
		msg = msg[end:]
	}
}

func (f *RequestFailure) Unwrap() error {
	return f.Err
}

func newRequestFailure(source, credential string, err error) *RequestFailure {
	return &RequestFailure{Source: source, Err: err, credential: credential}
}
