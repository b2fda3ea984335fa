package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingFormIDKey      = "form_id"
	LoggingCursorTokenKey = "cursor_token"
	LoggingURLKey         = "url"
	LoggingStatusCodeKey  = "status_code"
	LoggingItemCountKey   = "item_count"
	LoggingQueryParamsKey = "query_params"
)
