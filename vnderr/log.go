package vnderr

import (
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject renders the error as structured zap fields:
//
//	logger.Error("fetch failed", zap.Object("remote", verr))
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("status", e.StatusCode())
	if text := e.StatusText(); text != "" {
		enc.AddString("status_text", text)
	}
	if cs := e.CharsetName(); cs != "" {
		enc.AddString("charset", cs)
	}
	if h := e.Header(); len(h) > 0 {
		enc.AddInt("header_count", len(h))
	}
	if n := len(e.Body()); n > 0 {
		enc.AddInt("body_bytes", n)
	}
	return enc.AddArray("errors", e.payload)
}
