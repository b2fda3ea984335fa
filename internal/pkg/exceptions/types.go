package exceptions

import (
	"fmt"
	"typeform-connector/internal/pkg/constvars"
)

var (
	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(ErrorKindRequestBuild, err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(ErrorKindTransport, err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}

	// Typeform
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(ErrorKindDecode, err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevTypeformDecodeResponse, resource))
	}
	ErrValidateResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(ErrorKindDecode, err, constvars.StatusInternalServerError, FormatFirstValidationError(err), fmt.Sprintf(constvars.ErrDevTypeformValidateResponse, resource))
	}
	ErrTypeformAPIRequest = func(err error, resource string, statusCode int) *CustomError {
		return BuildNewCustomError(ErrorKindProviderAPI, err, statusCode, constvars.ErrClientProviderRejectedRequest, fmt.Sprintf(constvars.ErrDevTypeformAPIRequest, resource, statusCode))
	}
)
