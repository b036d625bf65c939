package vnd

import (
	"strings"

	"github.com/elnormous/contenttype"
)

// MediaType is the registered content type of a vnd.error JSON document.
const MediaType = "application/vnd.error+json"

// IsMediaType reports whether a Content-Type value names a vnd.error
// document. Parameters such as charset are ignored.
func IsMediaType(ct string) bool {
	if strings.TrimSpace(ct) == "" {
		return false
	}
	mt, err := contenttype.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return strings.EqualFold(mt.Type, "application") &&
		strings.EqualFold(mt.Subtype, "vnd.error+json")
}
