package exceptions

import (
	"errors"
	"testing"
	"typeform-connector/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Kinds(t *testing.T) {
	cause := errors.New("connection refused")

	testCases := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{"Request Build", ErrCreateHTTPRequest(cause), IsRequestBuildError},
		{"Transport", ErrSendHTTPRequest(cause), IsTransportError},
		{"Decode", ErrDecodeResponse(cause, constvars.ResourceTypeformResponses), IsDecodeError},
		{"Validation As Decode", ErrValidateResponse(cause, constvars.ResourceTypeformResponses), IsDecodeError},
		{"Provider API", ErrTypeformAPIRequest(cause, constvars.ResourceTypeformResponses, constvars.StatusUnauthorized), IsProviderAPIError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.predicate(tc.err))
			assert.ErrorIs(t, tc.err, cause, "cause must stay reachable through Unwrap")
		})
	}
}

func TestCustomError_KindsAreExclusive(t *testing.T) {
	err := ErrSendHTTPRequest(errors.New("timeout"))

	assert.True(t, IsTransportError(err))
	assert.False(t, IsRequestBuildError(err))
	assert.False(t, IsDecodeError(err))
	assert.False(t, IsProviderAPIError(err))
}

func TestCustomError_PlainErrorHasNoKind(t *testing.T) {
	err := errors.New("plain")

	assert.False(t, IsRequestBuildError(err))
	assert.False(t, IsTransportError(err))
	assert.False(t, IsDecodeError(err))
	assert.False(t, IsProviderAPIError(err))
}

func TestCustomError_MessageCarriesCauseAndLocation(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := ErrDecodeResponse(cause, constvars.ResourceTypeformResponses)

	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.Contains(t, err.Error(), "responses")
	assert.NotEmpty(t, err.Location.File)
	assert.NotZero(t, err.Location.Line)
}

func TestErrTypeformAPIRequest_WithoutProviderBody(t *testing.T) {
	err := ErrTypeformAPIRequest(nil, constvars.ResourceTypeformForm, constvars.StatusInternalServerError)

	assert.True(t, IsProviderAPIError(err))
	assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
	assert.Contains(t, err.Error(), "500")
}
