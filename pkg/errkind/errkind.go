// Package errkind classifies failures of the acquisition pipeline and the
// installation index into a small set of kinds.
//
// Errors built with New unwrap to both the sentinel of their kind and the
// underlying cause, so callers may test either with errors.Is.
package errkind

import (
	"errors"
	"fmt"
)

// Kind is a string code for debuggability and log output.
type Kind string

const (
	// Network covers transport failures and non-success HTTP statuses.
	Network Kind = "NETWORK"
	// Parse covers malformed catalog or descriptor bodies.
	Parse Kind = "PARSE"
	// Filesystem covers create, delete and write failures.
	Filesystem Kind = "FILESYSTEM"
	// NotFound covers unknown version ids, root paths and version names.
	NotFound Kind = "NOT_FOUND"
	// Lock covers failures to acquire the registry lock.
	Lock Kind = "LOCK"
)

var (
	ErrNetwork    = errors.New("network error")
	ErrParse      = errors.New("parse error")
	ErrFilesystem = errors.New("filesystem error")
	ErrNotFound   = errors.New("not found")
	ErrLock       = errors.New("lock error")
)

var sentinels = map[Kind]error{
	Network:    ErrNetwork,
	Parse:      ErrParse,
	Filesystem: ErrFilesystem,
	NotFound:   ErrNotFound,
	Lock:       ErrLock,
}

type Error struct {
	Kind  Kind
	Op    string
	Inner error
}

func (e *Error) Error() string {
	if e.Inner == nil {
		return fmt.Sprintf("%s: %s", e.Op, sentinels[e.Kind])
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Inner)
}

func (e *Error) Unwrap() []error {
	errs := []error{sentinels[e.Kind]}
	if e.Inner != nil {
		errs = append(errs, e.Inner)
	}
	return errs
}

// New wraps err with kind and a short description of the failed operation.
// A nil err is allowed and produces an error carrying only the kind.
func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Inner: err}
}

func Networkf(err error, format string, args ...any) error {
	return New(Network, fmt.Sprintf(format, args...), err)
}

func Parsef(err error, format string, args ...any) error {
	return New(Parse, fmt.Sprintf(format, args...), err)
}

func Filesystemf(err error, format string, args ...any) error {
	return New(Filesystem, fmt.Sprintf(format, args...), err)
}

func NotFoundf(format string, args ...any) error {
	return New(NotFound, fmt.Sprintf(format, args...), nil)
}

// Of reports the kind of the first classified error in err's chain.
func Of(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
