package typeform_dto

type Form struct {
	ID       string        `json:"id" validate:"required"`
	Type     *string       `json:"type,omitempty"`
	Title    string        `json:"title" validate:"required"`
	Language *string       `json:"language,omitempty"`
	Fields   []FormField   `json:"fields,omitempty" validate:"omitempty,dive"`
	Hidden   []string      `json:"hidden,omitempty"`
	Settings *FormSettings `json:"settings,omitempty"`
	Links    *FormLinks    `json:"_links,omitempty"`
}

type FormField struct {
	ID          string                `json:"id" validate:"required"`
	Ref         *string               `json:"ref,omitempty"`
	Title       string                `json:"title"`
	Type        string                `json:"type" validate:"required"`
	Properties  *FormFieldProperties  `json:"properties,omitempty"`
	Validations *FormFieldValidations `json:"validations,omitempty"`
}

type FormFieldProperties struct {
	Description            *string           `json:"description,omitempty"`
	Randomize              *bool             `json:"randomize,omitempty"`
	AllowMultipleSelection *bool             `json:"allow_multiple_selection,omitempty"`
	AllowOtherChoice       *bool             `json:"allow_other_choice,omitempty"`
	Choices                []FormFieldChoice `json:"choices,omitempty"`
}

type FormFieldChoice struct {
	ID    *string `json:"id,omitempty"`
	Ref   *string `json:"ref,omitempty"`
	Label string  `json:"label"`
}

type FormFieldValidations struct {
	Required  *bool `json:"required,omitempty"`
	MaxLength *int  `json:"max_length,omitempty"`
}

type FormSettings struct {
	Language    *string `json:"language,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
	ProgressBar *string `json:"progress_bar,omitempty"`
}

type FormLinks struct {
	Display string `json:"display,omitempty"`
}

func (f Form) FieldByRef(ref string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.Ref != nil && *field.Ref == ref {
			return field, true
		}
	}
	return FormField{}, false
}
