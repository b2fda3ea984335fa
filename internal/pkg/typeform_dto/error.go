package typeform_dto

// TypeformError is the body Typeform returns on non-success statuses.
type TypeformError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
