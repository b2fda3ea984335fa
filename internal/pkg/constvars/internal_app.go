package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "TYPFRM_CON_"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

// Timestamps in the responses payload carry second precision in UTC.
const (
	TypeformTimeLayout = "2006-01-02T15:04:05Z"
)
