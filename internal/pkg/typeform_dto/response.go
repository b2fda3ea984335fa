package typeform_dto

import (
	"time"
	"typeform-connector/internal/pkg/constvars"
)

type ResponseList struct {
	TotalItems *int       `json:"total_items,omitempty"`
	PageCount  *int       `json:"page_count,omitempty"`
	Items      []Response `json:"items" validate:"omitempty,dive"`
}

type Response struct {
	Token       string      `json:"token" validate:"required"`
	ResponseID  *string     `json:"response_id,omitempty"`
	LandedAt    string      `json:"landed_at" validate:"required"`
	SubmittedAt string      `json:"submitted_at" validate:"required"`
	Metadata    *Metadata   `json:"metadata" validate:"required"`
	Definition  *Definition `json:"definition,omitempty"`
	Answers     []Answer    `json:"answers,omitempty" validate:"omitempty,dive"`
	Calculated  *Calculated `json:"calculated" validate:"required"`
}

type Metadata struct {
	UserAgent string  `json:"user_agent" validate:"required"`
	Platform  *string `json:"platform,omitempty"`
	Referer   string  `json:"referer" validate:"required"`
	NetworkID string  `json:"network_id" validate:"required"`
}

type Definition struct {
	Fields []Field `json:"fields" validate:"omitempty,dive"`
}

type Field struct {
	ID          string `json:"id" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type Answer struct {
	Field       AnswerField `json:"field"`
	Type        string      `json:"type" validate:"required,answer_type"`
	Choice      *Choice     `json:"choice,omitempty"`
	Choices     *Choices    `json:"choices,omitempty"`
	Date        *string     `json:"date,omitempty"`
	Email       *string     `json:"email,omitempty"`
	URL         *string     `json:"url,omitempty"`
	FileURL     *string     `json:"file_url,omitempty"`
	Number      *int32      `json:"number,omitempty"`
	Boolean     *bool       `json:"boolean,omitempty"`
	Text        *string     `json:"text,omitempty"`
	Payment     *Payment    `json:"payment,omitempty"`
	PhoneNumber *string     `json:"phone_number,omitempty"`
}

type AnswerField struct {
	ID    string  `json:"id" validate:"required"`
	Type  string  `json:"type" validate:"required"`
	Ref   string  `json:"ref" validate:"required"`
	Title *string `json:"title,omitempty"`
}

type Choice struct {
	Label string  `json:"label" validate:"required"`
	Other *string `json:"other,omitempty"`
}

type Choices struct {
	Labels []string `json:"labels"`
	Other  *string  `json:"other,omitempty"`
}

type Payment struct {
	Amount string `json:"amount" validate:"required"`
	Last4  string `json:"last4" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

type Calculated struct {
	Score int `json:"score"`
}

func (l ResponseList) Tokens() []string {
	tokens := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		tokens = append(tokens, item.Token)
	}
	return tokens
}

func (l ResponseList) LastToken() (string, bool) {
	if len(l.Items) == 0 {
		return "", false
	}
	return l.Items[len(l.Items)-1].Token, true
}

func (r Response) LandedAtTime() (time.Time, error) {
	return time.Parse(constvars.TypeformTimeLayout, r.LandedAt)
}

func (r Response) SubmittedAtTime() (time.Time, error) {
	return time.Parse(constvars.TypeformTimeLayout, r.SubmittedAt)
}

// IsSubmitted reports whether the response was actually submitted.
// Typeform fills submitted_at with the zero date for responses that
// only landed on the form.
func (r Response) IsSubmitted() bool {
	submittedAt, err := r.SubmittedAtTime()
	if err != nil {
		return false
	}
	return submittedAt.Year() > 1
}

func (d Definition) FieldByID(fieldID string) (Field, bool) {
	for _, field := range d.Fields {
		if field.ID == fieldID {
			return field, true
		}
	}
	return Field{}, false
}
