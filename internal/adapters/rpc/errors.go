package rpc

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/example/dayboard/internal/apperr"
)

// Code is a tRPC error code name.
type Code string

const (
	CodeBadRequest           Code = "BAD_REQUEST"
	CodeNotFound             Code = "NOT_FOUND"
	CodeMethodNotSupported   Code = "METHOD_NOT_SUPPORTED"
	CodeConflict             Code = "CONFLICT"
	CodePayloadTooLarge      Code = "PAYLOAD_TOO_LARGE"
	CodeUnprocessableContent Code = "UNPROCESSABLE_CONTENT"
	CodeInternal             Code = "INTERNAL_SERVER_ERROR"
)

var codeTable = map[Code]struct {
	jsonRPC    int
	httpStatus int
}{
	CodeBadRequest:           {-32600, http.StatusBadRequest},
	CodeNotFound:             {-32004, http.StatusNotFound},
	CodeMethodNotSupported:   {-32005, http.StatusMethodNotAllowed},
	CodeConflict:             {-32009, http.StatusConflict},
	CodePayloadTooLarge:      {-32013, http.StatusRequestEntityTooLarge},
	CodeUnprocessableContent: {-32022, http.StatusUnprocessableEntity},
	CodeInternal:             {-32603, http.StatusInternalServerError},
}

// HTTPStatus returns the status code a response with this code carries.
func (c Code) HTTPStatus() int {
	if e, ok := codeTable[c]; ok {
		return e.httpStatus
	}
	return http.StatusInternalServerError
}

// JSONRPCCode returns the numeric code used in the error envelope.
func (c Code) JSONRPCCode() int {
	if e, ok := codeTable[c]; ok {
		return e.jsonRPC
	}
	return codeTable[CodeInternal].jsonRPC
}

// Error is a procedure failure as seen by a caller.
type Error struct {
	Code    Code
	Message string
	Path    string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s): %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// classify maps a handler error onto a wire error. The second result is false
// for unclassified errors, whose detail must not reach the caller.
func classify(err error) (*Error, bool) {
	var rpcErr *Error
	switch {
	case errors.As(err, &rpcErr):
		return rpcErr, true
	case apperr.IsValidation(err):
		return &Error{Code: CodeUnprocessableContent, Message: err.Error()}, true
	case apperr.IsNotFound(err):
		return &Error{Code: CodeNotFound, Message: err.Error()}, true
	case apperr.IsConflict(err):
		return &Error{Code: CodeConflict, Message: err.Error()}, true
	default:
		return &Error{Code: CodeInternal, Message: "internal server error"}, false
	}
}

type errorShape struct {
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Data    errorData `json:"data"`
}

type errorData struct {
	Code       Code   `json:"code"`
	HTTPStatus int    `json:"httpStatus"`
	Path       string `json:"path,omitempty"`
}

type errorEnvelope struct {
	Error errorShape `json:"error"`
}

type resultEnvelope struct {
	Result resultData `json:"result"`
}

type resultData struct {
	Data any `json:"data"`
}

func errorResponse(e *Error, path string) errorEnvelope {
	if e.Path != "" {
		path = e.Path
	}
	return errorEnvelope{Error: errorShape{
		Message: e.Message,
		Code:    e.Code.JSONRPCCode(),
		Data: errorData{
			Code:       e.Code,
			HTTPStatus: e.Code.HTTPStatus(),
			Path:       path,
		},
	}}
}
