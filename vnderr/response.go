package vnderr

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bodrovis/vnderr/httperr"
	"github.com/bodrovis/vnderr/vnd"
)

// FromResponse builds an Error from a response whose body has already been
// read into body. The reason phrase comes from resp.Status and the charset
// from the Content-Type header; an unknown charset is left unset.
func FromResponse(resp *http.Response, body []byte, payload *vnd.Errors) *Error {
	charset, _ := httperr.CharsetFromContentType(resp.Header.Get("Content-Type"))
	return NewWithHeaders(resp.StatusCode, reasonPhrase(resp), resp.Header, body, charset, payload)
}

// resp.Status is "502 Bad Gateway" from net/http but often just "502"
// from hand-built responses.
func reasonPhrase(resp *http.Response) string {
	text := strings.TrimSpace(resp.Status)
	text = strings.TrimSpace(strings.TrimPrefix(text, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
