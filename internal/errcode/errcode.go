package errcode

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误类别，同时作为响应体中的 code 字段。
type Kind string

const (
	MalformedIdentifier Kind = "MALFORMED_IDENTIFIER"
	MissingField        Kind = "MISSING_FIELD"
	DuplicateKey        Kind = "DUPLICATE_KEY"
	ReferenceNotFound   Kind = "REFERENCE_NOT_FOUND"
	NotFound            Kind = "NOT_FOUND"
	StorageFault        Kind = "STORAGE_FAULT"
)

// Status maps a kind onto the HTTP status returned to the caller.
func (k Kind) Status() int {
	switch k {
	case MalformedIdentifier, DuplicateKey:
		return http.StatusBadRequest
	case MissingField:
		return http.StatusUnprocessableEntity
	case ReferenceNotFound, NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FieldError 描述单个字段的校验失败。
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the typed error passed from the schema and store layers up to the handlers.
type Error struct {
	Kind   Kind
	Detail string
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// Fields builds a MissingField error with per-field details.
func Fields(detail string, fields []FieldError) *Error {
	return &Error{Kind: MissingField, Detail: detail, Fields: fields}
}

// As extracts an *Error from err; anything else is reported as a storage fault.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(StorageFault, "internal error", err)
}

// KindOf returns the kind carried by err, or StorageFault for untyped errors.
func KindOf(err error) Kind {
	return As(err).Kind
}
