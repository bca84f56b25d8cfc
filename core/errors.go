package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes of otsvg operations.
const (
	NOERROR    int = 0
	EMISSING   int = 122 // font, glyph or file not found
	EINVALID   int = 123 // bad parameter or request
	EMALFORMED int = 124 // glyph outline data cannot be decoded
	EMETRICS   int = 125 // font-wide metrics unavailable
	EINTERNAL  int = 126
)

var codeText = map[int]string{
	NOERROR:    "OK",
	EMISSING:   "not found",
	EINVALID:   "invalid",
	EMALFORMED: "malformed outline",
	EMETRICS:   "missing font metrics",
	EINTERNAL:  "internal error",
}

func errorText(code int) string {
	if s, ok := codeText[code]; ok {
		return s
	}
	return "undefined error"
}

// codedError carries a code and a message fit for end users alongside
// the underlying cause.
type codedError struct {
	cause error
	code  int
	msg   string
}

func (e codedError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.cause)
}

func (e codedError) Unwrap() error { return e.cause }

// WrapError attaches code and a formatted user message to err.
// A nil err is replaced by the default text of code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates a new coded error with a formatted user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the code of the first coded error in err's chain.
// Uncoded errors yield EINTERNAL, nil yields NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var ce codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return EINTERNAL
}

// UserMessage returns the message of the first coded error in err's chain,
// or the default text of Code(err). nil yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ce codedError
	if errors.As(err, &ce) {
		return ce.msg
	}
	return errorText(Code(err))
}

// UserError reports err on stderr.
func UserError(err error) {
	var ce codedError
	if errors.As(err, &ce) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", ce.code, ce.msg)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
