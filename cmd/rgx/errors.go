package main

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/termfx/rgx"
	"github.com/termfx/rgx/db"
)

// ErrCode enumerates common error identifiers.
const (
	ErrInvalidRange  = "ERR_INVALID_RANGE"
	ErrEmptyClass    = "ERR_EMPTY_CLASS"
	ErrUnsupported   = "ERR_UNSUPPORTED_LITERAL"
	ErrUnresolvable  = "ERR_UNRESOLVABLE_MEMBER"
	ErrInvalidBounds = "ERR_INVALID_BOUNDS"
	ErrBadGlob       = "ERR_BAD_GLOB"
	ErrBadDoc        = "ERR_BAD_DOC"
	ErrNotFound      = "ERR_NOT_FOUND"
	ErrIO            = "ERR_IO"
	ErrDB            = "ERR_DB"
	ErrUnknown       = "ERR_UNKNOWN"
)

// CLIError is a uniform error payload for both human and JSON output.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// classify maps library sentinels onto stable error codes.
func classify(err error) CLIError {
	code := ErrUnknown
	switch {
	case errors.Is(err, rgx.ErrInvalidRange):
		code = ErrInvalidRange
	case errors.Is(err, rgx.ErrEmptyClass):
		code = ErrEmptyClass
	case errors.Is(err, rgx.ErrUnsupportedLiteral):
		code = ErrUnsupported
	case errors.Is(err, rgx.ErrUnresolvableMember):
		code = ErrUnresolvable
	case errors.Is(err, rgx.ErrInvalidBounds):
		code = ErrInvalidBounds
	case errors.Is(err, rgx.ErrBadGlob):
		code = ErrBadGlob
	case errors.Is(err, rgx.ErrBadDoc), errors.Is(err, rgx.ErrBadName),
		errors.Is(err, rgx.ErrClassMismatch):
		code = ErrBadDoc
	case errors.Is(err, db.ErrNotFound):
		code = ErrNotFound
	case errors.Is(err, db.ErrConnect):
		code = ErrDB
	default:
		var perr *fs.PathError
		if errors.As(err, &perr) {
			code = ErrIO
		}
	}
	return CLIError{Code: code, Message: err.Error()}
}
