package models

import "errors"

// ErrUnavailable marks a provider call that produced no usable data.
var ErrUnavailable = errors.New("provider unavailable")

// Result carries either a value or the reason it is missing.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail wraps a failure reason.
func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// OK reports whether the result holds a value.
func (r Result[T]) OK() bool { return r.Err == nil }
