// Package vnd models the vnd.error document: an ordered collection of error
// entries, each with a message, an optional log reference and links that
// point at documentation or remediation.
package vnd

import (
	"iter"
	"slices"
)

// Link is a single hyperlink attached to an error entry.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// Error is one entry of a vnd.error document.
type Error struct {
	LogRef  string `json:"logref,omitempty"`
	Message string `json:"message"`
	Links   []Link `json:"links,omitempty"`
}

func NewError(logref, message string, links ...Link) Error {
	return Error{
		LogRef:  logref,
		Message: message,
		Links:   slices.Clone(links),
	}
}

func (e Error) clone() Error {
	e.Links = slices.Clone(e.Links)
	return e
}

// Link returns the first link with the given rel.
func (e Error) Link(rel string) (Link, bool) {
	for _, l := range e.Links {
		if l.Rel == rel {
			return l, true
		}
	}
	return Link{}, false
}

// Errors is an ordered, read-only collection of entries. The zero value and
// a nil *Errors are both empty collections.
type Errors struct {
	entries []Error
}

// New builds a collection from entries. Zero entries is a valid, empty
// document.
func New(entries ...Error) *Errors {
	out := make([]Error, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}
	return &Errors{entries: out}
}

func NewSingle(logref, message string, links ...Link) *Errors {
	return &Errors{entries: []Error{NewError(logref, message, links...)}}
}

func (v *Errors) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// At returns entry i. It panics when i is out of range, like a slice index.
func (v *Errors) At(i int) Error {
	return v.entries[i].clone()
}

func (v *Errors) First() (Error, bool) {
	if v.Len() == 0 {
		return Error{}, false
	}
	return v.entries[0].clone(), true
}

// All iterates entries in document order.
func (v *Errors) All() iter.Seq2[int, Error] {
	return func(yield func(int, Error) bool) {
		if v == nil {
			return
		}
		for i, e := range v.entries {
			if !yield(i, e.clone()) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries; never nil.
func (v *Errors) Entries() []Error {
	out := make([]Error, 0, v.Len())
	for _, e := range v.All() {
		out = append(out, e)
	}
	return out
}

func (v *Errors) Messages() []string {
	out := make([]string, 0, v.Len())
	for _, e := range v.All() {
		out = append(out, e.Message)
	}
	return out
}
