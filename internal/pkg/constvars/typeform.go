package constvars

const (
	TypeformBaseUrl = "https://api.typeform.com"
)

const (
	ResourceTypeformForm      = "form"
	ResourceTypeformResponses = "responses"
)

const (
	TypeformResponsesUrlFormat      = "%s/forms/%s/responses"
	TypeformResponsesAfterUrlFormat = "%s/forms/%s/responses?after=%s&page_size=%d"
	TypeformFormUrlFormat           = "%s/forms/%s"
)

// A cursor fetch pins the page size to a single item so the caller can
// thread the returned token into the next call.
const (
	TypeformCursorPageSize = 1
)

// Query parameters accepted by the responses listing endpoint.
const (
	URLQueryParamPageSize  = "page_size"
	URLQueryParamSince     = "since"
	URLQueryParamUntil     = "until"
	URLQueryParamAfter     = "after"
	URLQueryParamBefore    = "before"
	URLQueryParamCompleted = "completed"
	URLQueryParamSort      = "sort"
	URLQueryParamQuery     = "query"
	URLQueryParamFields    = "fields"
)

// Field types appearing in form definitions.
const (
	FieldTypeShortText      = "short_text"
	FieldTypeLongText       = "long_text"
	FieldTypeDropdown       = "dropdown"
	FieldTypeMultipleChoice = "multiple_choice"
	FieldTypePictureChoice  = "picture_choice"
	FieldTypeEmail          = "email"
	FieldTypeWebsite        = "website"
	FieldTypeFileUpload     = "file_upload"
	FieldTypeLegal          = "legal"
	FieldTypeYesNo          = "yes_no"
	FieldTypeRating         = "rating"
	FieldTypeOpinionScale   = "opinion_scale"
	FieldTypeNumber         = "number"
	FieldTypeDate           = "date"
	FieldTypePayment        = "payment"
	FieldTypePhoneNumber    = "phone_number"
)

// Answer type discriminants returned by the responses payload.
const (
	AnswerTypeChoice      = "choice"
	AnswerTypeChoices     = "choices"
	AnswerTypeDate        = "date"
	AnswerTypeEmail       = "email"
	AnswerTypeURL         = "url"
	AnswerTypeFileURL     = "file_url"
	AnswerTypeNumber      = "number"
	AnswerTypeBoolean     = "boolean"
	AnswerTypeText        = "text"
	AnswerTypePayment     = "payment"
	AnswerTypePhoneNumber = "phone_number"
)
