package utils

import (
	"context"
	"strings"
	"testing"
	"typeform-connector/internal/pkg/constvars"
	"typeform-connector/internal/pkg/typeform_dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_Answer(t *testing.T) {
	t.Run("Known Answer Type Passes", func(t *testing.T) {
		text := "It's cold right now!"
		answer := typeform_dto.Answer{
			Field: typeform_dto.AnswerField{ID: "DlXFaesGBpoF", Type: "long_text", Ref: "readable_ref_long_text"},
			Type:  constvars.AnswerTypeText,
			Text:  &text,
		}
		assert.NoError(t, ValidateStruct(answer))
	})

	t.Run("Unknown Answer Type Fails", func(t *testing.T) {
		answer := typeform_dto.Answer{
			Field: typeform_dto.AnswerField{ID: "DlXFaesGBpoF", Type: "ranking", Ref: "readable_ref_ranking"},
			Type:  "ranking",
		}
		assert.Error(t, ValidateStruct(answer))
	})

	t.Run("Missing Discriminant Fails", func(t *testing.T) {
		answer := typeform_dto.Answer{
			Field: typeform_dto.AnswerField{ID: "DlXFaesGBpoF", Type: "long_text", Ref: "readable_ref_long_text"},
		}
		assert.Error(t, ValidateStruct(answer))
	})
}

func TestValidateStruct_Response(t *testing.T) {
	response := typeform_dto.Response{
		LandedAt:    "2024-03-01T10:15:04Z",
		SubmittedAt: "2024-03-01T10:17:30Z",
		Metadata: &typeform_dto.Metadata{
			UserAgent: "Mozilla/5.0",
			Referer:   "https://site.typeform.com/to/abc123",
			NetworkID: "f111d6da66",
		},
		Calculated: &typeform_dto.Calculated{Score: 0},
	}

	err := ValidateStruct(response)
	assert.Error(t, err, "token is required")

	response.Token = "tok_first"
	assert.NoError(t, ValidateStruct(response))
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.True(t, strings.HasPrefix(first, constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, first, second)
}

func TestGetRequestID(t *testing.T) {
	requestID := GenerateRequestID()
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	assert.Equal(t, requestID, GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}
