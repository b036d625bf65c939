package httperr_test

import (
	"errors"
	"testing"

	"github.com/bodrovis/vnderr/httperr"
	"golang.org/x/text/encoding/charmap"
)

func TestLookupCharset_Known(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"utf-8", "UTF-8"},
		{"UTF-8", "UTF-8"},
		{"ISO-8859-1", "ISO-8859-1"},
		{"iso-8859-1", "ISO-8859-1"},
		{" windows-1251 ", "windows-1251"},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			enc, err := httperr.LookupCharset(tc.label)
			if err != nil {
				t.Fatalf("LookupCharset(%q): %v", tc.label, err)
			}
			e := httperr.NewWithBody(400, "", []byte("x"), enc)
			if got := e.CharsetName(); got != tc.want {
				t.Fatalf("CharsetName()=%q want %q", got, tc.want)
			}
		})
	}
}

func TestLookupCharset_IANABeatsWHATWG(t *testing.T) {
	enc, err := httperr.LookupCharset("iso-8859-1")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if enc != charmap.ISO8859_1 {
		t.Fatalf("iso-8859-1 resolved to %v, want Latin-1", enc)
	}
}

func TestLookupCharset_Unknown(t *testing.T) {
	for _, label := range []string{"", "   ", "klingon-8"} {
		_, err := httperr.LookupCharset(label)
		if !errors.Is(err, httperr.ErrUnknownCharset) {
			t.Fatalf("LookupCharset(%q) err=%v, want ErrUnknownCharset", label, err)
		}
	}
}

func TestCharsetFromContentType(t *testing.T) {
	cases := []struct {
		name string
		ct   string
		want string // "" means nil encoding
	}{
		{"empty", "", ""},
		{"no charset", "application/vnd.error+json", ""},
		{"utf8", "application/vnd.error+json; charset=utf-8", "UTF-8"},
		{"quoted", `text/plain; charset="ISO-8859-1"`, "ISO-8859-1"},
		{"upper param", "text/plain; CHARSET=windows-1251", "windows-1251"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := httperr.CharsetFromContentType(tc.ct)
			if err != nil {
				t.Fatalf("CharsetFromContentType(%q): %v", tc.ct, err)
			}
			if tc.want == "" {
				if enc != nil {
					t.Fatalf("want nil encoding, got %v", enc)
				}
				return
			}
			if enc == nil {
				t.Fatalf("want %s, got nil", tc.want)
			}
			if got := httperr.NewWithBody(400, "", nil, enc).CharsetName(); got != tc.want {
				t.Fatalf("charset=%q want %q", got, tc.want)
			}
		})
	}
}

func TestCharsetFromContentType_Errors(t *testing.T) {
	if _, err := httperr.CharsetFromContentType("not a media type"); err == nil {
		t.Fatalf("expected parse error")
	}
	_, err := httperr.CharsetFromContentType("text/plain; charset=klingon-8")
	if !errors.Is(err, httperr.ErrUnknownCharset) {
		t.Fatalf("err=%v, want ErrUnknownCharset", err)
	}
}
