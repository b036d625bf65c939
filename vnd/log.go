package vnd

import "go.uber.org/zap/zapcore"

func (l Link) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("rel", l.Rel)
	enc.AddString("href", l.Href)
	return nil
}

func (e Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.LogRef != "" {
		enc.AddString("logref", e.LogRef)
	}
	enc.AddString("message", e.Message)
	if len(e.Links) > 0 {
		return enc.AddArray("links", links(e.Links))
	}
	return nil
}

// MarshalLogArray lets a collection be logged with zap.Array.
func (v *Errors) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range v.All() {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}

type links []Link

func (ls links) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, l := range ls {
		if err := enc.AppendObject(l); err != nil {
			return err
		}
	}
	return nil
}
