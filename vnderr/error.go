// Package vnderr provides Error, returned by HTTP clients when a failed
// response carried a vnd.error document.
//
// Error composes the generic *httperr.StatusError (status code, reason
// phrase, headers, raw body, charset) with the parsed *vnd.Errors payload.
// Callers that only care about the HTTP failure can keep matching
// *httperr.StatusError; those that want the structured entries ask for
// *vnderr.Error:
//
//	var verr *vnderr.Error
//	if errors.As(err, &verr) {
//		for _, e := range verr.Errors().All() { ... }
//	}
package vnderr

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/text/encoding"

	"github.com/bodrovis/vnderr/httperr"
	"github.com/bodrovis/vnderr/vnd"
)

// statusError names the embedded field so it stays unexported; the
// StatusError accessors are still promoted onto Error.
type statusError = httperr.StatusError

type Error struct {
	*statusError
	payload *vnd.Errors
}

// New is the minimal form: status code and payload. The status text is the
// standard reason phrase for code.
func New(code int, payload *vnd.Errors) *Error {
	return wrap(httperr.New(code), payload)
}

func NewWithText(code int, text string, payload *vnd.Errors) *Error {
	return wrap(httperr.NewWithText(code, text), payload)
}

// NewWithBody also keeps the raw response body, e.g. for logging.
func NewWithBody(code int, text string, body []byte, charset encoding.Encoding, payload *vnd.Errors) *Error {
	return wrap(httperr.NewWithBody(code, text, body, charset), payload)
}

// NewWithHeaders is the full form, for callers that need response headers
// such as Retry-After or a correlation id next to the structured errors.
func NewWithHeaders(code int, text string, header http.Header, body []byte, charset encoding.Encoding, payload *vnd.Errors) *Error {
	return wrap(httperr.NewWithHeaders(code, text, header, body, charset), payload)
}

// A nil payload becomes an empty collection so Errors never returns nil.
func wrap(se *httperr.StatusError, payload *vnd.Errors) *Error {
	if payload == nil {
		payload = vnd.New()
	}
	return &Error{statusError: se, payload: payload}
}

// Errors returns the payload exactly as it was passed in.
func (e *Error) Errors() *vnd.Errors { return e.payload }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	status := e.statusError.Error()

	// first non-empty message, plus how many other entries carry one
	var msg string
	more := 0
	for _, entry := range e.payload.All() {
		switch {
		case entry.Message == "":
		case msg == "":
			msg = entry.Message
		default:
			more++
		}
	}
	if msg == "" {
		return status
	}
	if more > 0 {
		return fmt.Sprintf("%s: %s (and %d more)", status, msg, more)
	}
	return status + ": " + msg
}

// Unwrap exposes the underlying status error to errors.As / errors.Is.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.statusError
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// Is reports whether err's chain contains an *Error.
func Is(err error) bool {
	_, ok := As(err)
	return ok
}
