package httperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elnormous/contenttype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset is assumed for bodies that arrive without a charset.
var DefaultCharset encoding.Encoding = charmap.ISO8859_1

var ErrUnknownCharset = errors.New("unknown charset")

// LookupCharset resolves a charset label such as "utf-8", "ISO-8859-1" or
// "windows-1251". IANA names win over WHATWG labels, so "iso-8859-1" means
// Latin-1 and not windows-1252.
func LookupCharset(name string) (encoding.Encoding, error) {
	label := strings.TrimSpace(name)
	if label == "" {
		return nil, fmt.Errorf("lookup charset: %w: empty name", ErrUnknownCharset)
	}
	for _, idx := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		if enc, err := idx.Encoding(label); err == nil && enc != nil {
			return enc, nil
		}
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("lookup charset: %w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// CharsetFromContentType returns the encoding named by the charset parameter
// of a Content-Type value. It returns nil, nil when ct is empty or carries
// no charset.
func CharsetFromContentType(ct string) (encoding.Encoding, error) {
	if strings.TrimSpace(ct) == "" {
		return nil, nil
	}
	mt, err := contenttype.ParseMediaType(ct)
	if err != nil {
		return nil, fmt.Errorf("parse content type %q: %w", ct, err)
	}
	for k, v := range mt.Parameters {
		if strings.EqualFold(k, "charset") {
			return LookupCharset(v)
		}
	}
	return nil, nil
}

func charsetName(enc encoding.Encoding) string {
	if enc == nil {
		return ""
	}
	// MIME first: it has "ISO-8859-1" where IANA has "ISO_8859-1:1987".
	for _, idx := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		if name, err := idx.Name(enc); err == nil {
			return name
		}
	}
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	return ""
}
