package synd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported feed format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeDocumentTooLarge indicates the document exceeded the configured size limit.
	ErrCodeDocumentTooLarge ErrorCode = "DOCUMENT_TOO_LARGE"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeIOError indicates an I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
)

var (
	// ErrUnsupportedFormat indicates an unsupported feed format.
	ErrUnsupportedFormat = errors.New("unsupported feed format")
	// ErrDocumentTooLarge indicates the document exceeded the configured size limit.
	ErrDocumentTooLarge = errors.New("synd: document exceeds configured limit")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error
// condition).
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrDocumentTooLarge):
		return ErrCodeDocumentTooLarge
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		underlyingCode := Code(parseErr.Err)
		if underlyingCode != ErrCodeParseError && underlyingCode != "" {
			return underlyingCode
		}
		return ErrCodeParseError
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeContextCanceled
	}

	return ErrCodeParseError
}

// ParseError provides structured context for feed parse failures.
type ParseError struct {
	Format  string // Format name (e.g., "rss", "atom")
	Element string // Offending element path, if known
	Err     error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Element != "" {
		fmt.Fprintf(&msg, " <%s>", e.Element)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseError adds format/element context to a parse error.
func wrapParseError(format, element string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Element: element, Err: err}
}
