// Package httperr defines StatusError, the generic "remote call failed with
// a non-2xx response" value that richer client errors build on.
//
// A StatusError is immutable: byte slices and header maps are copied in at
// construction and copied out on access, so one value can be shared freely
// between goroutines.
package httperr

import (
	"bytes"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

type StatusError struct {
	code    int
	text    string
	header  http.Header
	body    []byte
	charset encoding.Encoding
}

// New returns a StatusError whose text is the standard reason phrase for code.
func New(code int) *StatusError {
	return NewWithText(code, http.StatusText(code))
}

func NewWithText(code int, text string) *StatusError {
	return NewWithHeaders(code, text, nil, nil, nil)
}

// NewWithBody keeps the raw response body and the charset it was sent in.
// charset may be nil; see BodyString for the fallback.
func NewWithBody(code int, text string, body []byte, charset encoding.Encoding) *StatusError {
	return NewWithHeaders(code, text, nil, body, charset)
}

// NewWithHeaders is the full form. Header keys are stored as supplied,
// without canonicalisation.
func NewWithHeaders(code int, text string, header http.Header, body []byte, charset encoding.Encoding) *StatusError {
	return &StatusError{
		code:    code,
		text:    text,
		header:  header.Clone(),
		body:    bytes.Clone(body),
		charset: charset,
	}
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.text == "" {
		return strconv.Itoa(e.code)
	}
	return strconv.Itoa(e.code) + " " + e.text
}

func (e *StatusError) StatusCode() int    { return e.code }
func (e *StatusError) StatusText() string { return e.text }

// Header returns a copy of the response headers, or nil if none were given.
// Keys keep the spelling they were supplied with, so http.Header.Get only
// finds canonical ones; use HeaderValues for lookups by name.
func (e *StatusError) Header() http.Header { return e.header.Clone() }

// HeaderValues returns the values of the named header, matching the name
// case-insensitively. Keys differing only in case are merged in key order.
func (e *StatusError) HeaderValues(name string) []string {
	var keys []string
	for k := range e.header {
		if strings.EqualFold(k, name) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var out []string
	for _, k := range keys {
		out = append(out, e.header[k]...)
	}
	return out
}

// HeaderValue returns the first value of the named header, or "".
func (e *StatusError) HeaderValue(name string) string {
	if v := e.HeaderValues(name); len(v) > 0 {
		return v[0]
	}
	return ""
}

// Body returns a copy of the raw response body, or nil if none was given.
func (e *StatusError) Body() []byte { return bytes.Clone(e.body) }

// Charset returns the response charset, or nil if none was given.
func (e *StatusError) Charset() encoding.Encoding { return e.charset }

// CharsetName returns the preferred MIME name of the response charset
// (e.g. "UTF-8", "ISO-8859-1"), or "" when there is none.
func (e *StatusError) CharsetName() string { return charsetName(e.charset) }

// BodyString decodes the body to UTF-8 using the response charset,
// assuming ISO-8859-1 when none was given. If decoding fails the raw bytes
// are returned as is.
func (e *StatusError) BodyString() string {
	if len(e.body) == 0 {
		return ""
	}
	cs := e.charset
	if cs == nil {
		cs = DefaultCharset
	}
	out, err := cs.NewDecoder().Bytes(e.body)
	if err != nil {
		return string(e.body)
	}
	return string(out)
}

// IsClientError reports a 4xx status.
func (e *StatusError) IsClientError() bool { return e.code >= 400 && e.code < 500 }

// IsServerError reports a 5xx status.
func (e *StatusError) IsServerError() bool { return e.code >= 500 && e.code < 600 }
