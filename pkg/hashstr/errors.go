// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashstr

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes errors returned by this package.
type ErrorKind int

const (
	// KindUnknown indicates an unclassified error.
	KindUnknown ErrorKind = iota

	// KindInvalidEncoding indicates that text is not valid UTF-8.
	KindInvalidEncoding

	// KindUnknownAlgorithm indicates an algorithm outside the supported set.
	KindUnknownAlgorithm
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidEncoding:
		return "InvalidEncoding"
	case KindUnknownAlgorithm:
		return "UnknownAlgorithm"
	default:
		return "UnknownError"
	}
}

// Sentinel errors matched by errors.Is against any *Error of the same kind.
var (
	ErrInvalidEncoding  = &Error{Kind: KindInvalidEncoding, Offset: -1, Message: "text is not valid UTF-8"}
	ErrUnknownAlgorithm = &Error{Kind: KindUnknownAlgorithm, Offset: -1, Message: "unsupported digest algorithm"}
)

// Error is the structured error returned by the text accessors.
//
//	if errors.Is(err, hashstr.ErrInvalidEncoding) {
//	    // input was not UTF-8
//	}
type Error struct {
	// Kind categorizes the error for programmatic handling.
	Kind ErrorKind

	// Offset is the byte offset of the first invalid sequence, or -1.
	Offset int

	// Message is a human-readable description.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Offset >= 0 && e.Kind == KindInvalidEncoding {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind reports whether err, or anything it wraps, is an *Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func invalidEncoding(offset int) *Error {
	return &Error{
		Kind:    KindInvalidEncoding,
		Offset:  offset,
		Message: "text is not valid UTF-8",
	}
}

func unknownAlgorithm(cause error) *Error {
	return &Error{
		Kind:    KindUnknownAlgorithm,
		Offset:  -1,
		Message: "unsupported digest algorithm",
		Cause:   cause,
	}
}
