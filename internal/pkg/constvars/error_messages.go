package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"numeric":     "must be a number",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"url":         "must be a valid URL",
	"answer_type": "must be a known answer type",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest    = "failed to process your request"
	ErrClientProviderRejectedRequest = "the survey provider could not fulfill the request"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	// Typeform messages
	ErrDevTypeformDecodeResponse   = "failed to decode Typeform %s payload"
	ErrDevTypeformValidateResponse = "Typeform %s payload failed contract validation"
	ErrDevTypeformAPIRequest       = "Typeform %s request rejected with status %d"
)

const (
	ResponseUnknown = "unknown"
)
