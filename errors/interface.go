/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package errors provides the shared result taxonomy of the library with
// error codes, stack tracing and hierarchy management.
//
// Every fallible operation of the library returns an Error built from one
// code of the closed result taxonomy (see result.go). An Error carries:
//   - a numeric code (CodeError) from the taxonomy
//   - an optional chain of parent errors
//   - the trace frame (file, line, function) where it was raised
//
// The package stays compatible with the standard errors.Is / errors.As
// functions through Unwrap.
//
// Example usage:
//
//	import liberr "github.com/nabbar/udstk/errors"
//
//	err := liberr.CodeBufferTooSmall.Error(parentErr)
//	if liberr.Has(err, liberr.CodeBufferTooSmall) {
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// FuncMap is a callback function type used for iterating over error
// hierarchies. Return false to stop the iteration.
type FuncMap func(e error) bool

// Error is the main interface extending Go's standard error.
//
// All methods are safe for concurrent reads but modification methods
// (Add, SetParent) are not thread-safe.
type Error interface {
	error

	// IsCode checks if the error's own code matches the given code.
	// Parent errors are not checked.
	IsCode(code CodeError) bool
	// HasCode checks if the current error or any parent has the given code.
	HasCode(code CodeError) bool
	// GetCode returns the CodeError value of the current error.
	GetCode() CodeError
	// GetParentCode returns the codes of the current error and all parents.
	GetParentCode() []CodeError

	// Is implements compatibility with the root package errors Is function.
	Is(e error) bool

	// IsError checks if the given error matches the current error message.
	IsError(e error) bool
	// HasError checks if the given error is found in the parent chain.
	HasError(err error) bool
	// HasParent checks if the current Error has any valid parent.
	HasParent() bool
	// GetParent returns the parent errors, with or without the main error.
	GetParent(withMainError bool) []error
	// Map runs a function on the error and each parent; stops on false.
	Map(fct FuncMap) bool
	// ContainsString returns true if the error or any parent message
	// contains the given part string.
	ContainsString(s string) bool

	// Add appends all non-empty given errors to the parents of the error.
	Add(parent ...error)
	// SetParent replaces all parents with the given error list.
	SetParent(parent ...error)

	// Code returns the code of the current Error as an uint16.
	Code() uint16
	// CodeSlice returns the codes of the current Error and all parents.
	CodeSlice() []uint16

	// CodeError returns a composed string of code and message for the
	// current Error, without parents.
	CodeError(pattern string) string
	// CodeErrorSlice returns composed code/message strings for the current
	// Error and all parents.
	CodeErrorSlice(pattern string) []string

	// CodeErrorTrace returns a composed string of code, message and trace
	// for the current Error, without parents.
	CodeErrorTrace(pattern string) string
	// CodeErrorTraceSlice returns composed code/message/trace strings for
	// the current Error and all parents.
	CodeErrorTraceSlice(pattern string) []string

	// Error matches the standard error interface. The result depends on
	// the mode defined by calling SetModeReturnError.
	Error() string

	// StringError returns the error message of the current Error only.
	StringError() string
	// StringErrorSlice returns the messages of the Error and all parents.
	StringErrorSlice() []string

	// GetError returns a new standard error based on the current error.
	GetError() error
	// GetErrorSlice returns standard errors for the Error and all parents.
	GetErrorSlice() []error
	// Unwrap sets compliance with errors As/Is functions.
	Unwrap() []error

	// GetTrace returns a composed trace string of the current Error.
	GetTrace() string
	// GetTraceSlice returns trace strings of the Error and all parents.
	GetTraceSlice() []string
}

// Is checks if the given error is of type Error.
func Is(e error) bool {
	var err Error
	return errors.As(e, &err)
}

// Get returns the given error as an Error interface if it is one,
// or nil otherwise.
func Get(e error) Error {
	var err Error
	if errors.As(e, &err) {
		return err
	}

	return nil
}

// Has checks if the given error or any of its parents carries the given
// error code.
func Has(e error, code CodeError) bool {
	if err := Get(e); err == nil {
		return false
	} else {
		return err.HasCode(code)
	}
}

// IsCode checks if the given error's own code is the given code.
func IsCode(e error, code CodeError) bool {
	if err := Get(e); err == nil {
		return false
	} else {
		return err.IsCode(code)
	}
}

// ContainsString checks if the given error message, or any parent message,
// contains the given string.
func ContainsString(e error, s string) bool {
	if e == nil {
		return false
	} else if err := Get(e); err == nil {
		return strings.Contains(e.Error(), s)
	} else {
		return err.ContainsString(s)
	}
}

// Make wraps the given error into an Error with code 0, or returns it
// unchanged if it already is an Error.
func Make(e error) Error {
	var err Error

	if e == nil {
		return nil
	} else if errors.As(e, &err) {
		return err
	} else {
		return &ers{
			c: 0,
			e: e.Error(),
			p: nil,
			t: getNilFrame(),
		}
	}
}

// MakeIfError wraps the given errors into a single Error chain, or returns
// nil when all of them are nil.
func MakeIfError(err ...error) Error {
	var e Error = nil

	for _, p := range err {
		if p == nil {
			continue
		} else if e == nil {
			e = Make(p)
		} else {
			e.Add(p)
		}
	}

	return e
}

// New creates a new Error with the given code, message, and parent errors.
func New(code uint16, message string, parent ...error) Error {
	var p = make([]Error, 0)

	if len(parent) > 0 {
		for _, e := range parent {
			if er := Make(e); er != nil {
				p = append(p, er)
			}
		}
	}

	return &ers{
		c: code,
		e: message,
		p: p,
		t: getFrame(),
	}
}

// Newf creates a new Error with the given code and a formatted message.
func Newf(code uint16, pattern string, args ...any) Error {
	return &ers{
		c: code,
		e: fmt.Sprintf(pattern, args...),
		p: make([]Error, 0),
		t: getFrame(),
	}
}

// IfError creates a new Error with the given code and message only when the
// filtered parent list contains at least one valid error; nil otherwise.
func IfError(code uint16, message string, parent ...error) Error {
	p := make([]Error, 0)

	if len(parent) > 0 {
		for _, e := range parent {
			if er := Make(e); er != nil {
				p = append(p, er)
			}
		}
	}

	if len(p) < 1 {
		return nil
	}

	return &ers{
		c: code,
		e: message,
		p: p,
		t: getFrame(),
	}
}
