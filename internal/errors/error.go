package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryConfig   Category = "config"
	CategoryPlan     Category = "plan"
	CategoryRequest  Category = "request"
	CategoryCLI      Category = "cli"
)

// Location represents a source location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// VselError is a structured error with an optional location and suggestion.
type VselError struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the source location where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VselError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VselError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a source location to the error and reads the
// surrounding lines from file when it exists.
func (e *VselError) WithLocation(file string, line, column int) *VselError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VselError) WithSuggestion(s string) *VselError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *VselError) WithDetail(d string) *VselError {
	e.Detail = d
	return e
}

// WithContext adds custom context lines to the error.
func (e *VselError) WithContext(lines []string) *VselError {
	e.Context = lines
	return e
}

// Wrap wraps another error.
func (e *VselError) Wrap(err error) *VselError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a VselError from a registered error code.
func New(code string) *VselError {
	template, ok := registry[code]
	if !ok {
		return &VselError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VselError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new VselError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VselError {
	return &VselError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VselError. Errors that already
// contain a VselError are returned as that error.
func FromError(err error, code string) *VselError {
	if err == nil {
		return nil
	}
	var ve *VselError
	if stderrors.As(err, &ve) {
		return ve
	}
	return New(code).Wrap(err)
}

// CategoryOf returns the category of the first VselError in err's chain.
func CategoryOf(err error) Category {
	var ve *VselError
	if stderrors.As(err, &ve) {
		return ve.Category
	}
	return ""
}
