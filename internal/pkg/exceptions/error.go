package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"typeform-connector/internal/pkg/constvars"
)

// ErrorKind names the stage a Typeform call failed at so callers can
// decide retry or surfacing policy without parsing messages.
type ErrorKind string

const (
	ErrorKindRequestBuild ErrorKind = "request_build"
	ErrorKindTransport    ErrorKind = "transport"
	ErrorKindDecode       ErrorKind = "decode"
	ErrorKindProviderAPI  ErrorKind = "provider_api"
)

type CustomError struct {
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"-"`
	Kind          ErrorKind `json:"-"`
	Err           error     `json:"-"`
	Location      Location  `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(kind ErrorKind, err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	customError := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          kind,
		Err:           err,
		Location:      location,
	}
	if err != nil {
		customError.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customError
}

func IsRequestBuildError(err error) bool {
	return hasKind(err, ErrorKindRequestBuild)
}

func IsTransportError(err error) bool {
	return hasKind(err, ErrorKindTransport)
}

func IsDecodeError(err error) bool {
	return hasKind(err, ErrorKindDecode)
}

func IsProviderAPIError(err error) bool {
	return hasKind(err, ErrorKindProviderAPI)
}

func hasKind(err error, kind ErrorKind) bool {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.Kind == kind
	}
	return false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
