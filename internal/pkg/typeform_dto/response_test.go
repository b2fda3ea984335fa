package typeform_dto

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

const responseListFixture = `{
  "total_items": 2,
  "page_count": 1,
  "items": [
    {
      "landed_at": "2024-03-01T10:15:04Z",
      "submitted_at": "2024-03-01T10:17:30Z",
      "token": "a3a12ec67a1365927098a606107fac15",
      "response_id": "a3a12ec67a1365927098a606107fac15",
      "metadata": {
        "user_agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
        "platform": "other",
        "referer": "https://site.typeform.com/to/lT4Z3j",
        "network_id": "responsdent_network_id",
        "browser": "default"
      },
      "definition": {
        "id": "lT4Z3j",
        "fields": [
          {
            "id": "DlXFaesGBpoF",
            "title": "Thanks, {{answer_60906475}}! What's it like where you live?",
            "type": "long_text",
            "ref": "readable_ref_long_text",
            "description": "Tell us everything",
            "allow_multiple_selections": false
          }
        ]
      },
      "answers": [
        {
          "field": {
            "id": "DlXFaesGBpoF",
            "type": "long_text",
            "ref": "readable_ref_long_text"
          },
          "type": "text",
          "text": "It's cold right now! I live in an older medium-sized city."
        },
        {
          "field": {
            "id": "NRsxU591jIW9",
            "type": "opinion_scale",
            "ref": "readable_ref_opinion_scale"
          },
          "type": "number",
          "number": 1
        }
      ],
      "calculated": {
        "score": 2
      }
    },
    {
      "landed_at": "2024-03-02T08:00:10Z",
      "submitted_at": "0001-01-01T00:00:00Z",
      "token": "c13xhcdc97mv2pknmtk13xhcucfyt5np",
      "metadata": {
        "user_agent": "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
        "referer": "https://site.typeform.com/to/lT4Z3j",
        "network_id": "f111d6da66"
      },
      "calculated": {
        "score": 0
      }
    }
  ]
}`

func TestResponseList_Decode(t *testing.T) {
	t.Run("Preserves Item Count And Order", func(t *testing.T) {
		var responseList ResponseList
		err := json.Unmarshal([]byte(responseListFixture), &responseList)

		assert.NoError(t, err)
		assert.Len(t, responseList.Items, 2)
		assert.Equal(t, "a3a12ec67a1365927098a606107fac15", responseList.Items[0].Token)
		assert.Equal(t, "c13xhcdc97mv2pknmtk13xhcucfyt5np", responseList.Items[1].Token)

		assert.NotNil(t, responseList.TotalItems)
		assert.Equal(t, 2, *responseList.TotalItems)
		assert.NotNil(t, responseList.PageCount)
		assert.Equal(t, 1, *responseList.PageCount)
	})

	t.Run("Optional Fields Decode To Absent", func(t *testing.T) {
		var responseList ResponseList
		err := json.Unmarshal([]byte(responseListFixture), &responseList)
		assert.NoError(t, err)

		second := responseList.Items[1]
		assert.Nil(t, second.ResponseID)
		assert.Nil(t, second.Definition)
		assert.Nil(t, second.Answers)
		assert.Nil(t, second.Metadata.Platform)
	})

	t.Run("Absent Envelope Counts Decode To Absent", func(t *testing.T) {
		var responseList ResponseList
		err := json.Unmarshal([]byte(`{"items": []}`), &responseList)

		assert.NoError(t, err)
		assert.Nil(t, responseList.TotalItems)
		assert.Nil(t, responseList.PageCount)
		assert.Empty(t, responseList.Items)
	})

	t.Run("Unknown Keys Are Ignored", func(t *testing.T) {
		var responseList ResponseList
		err := json.Unmarshal([]byte(responseListFixture), &responseList)
		assert.NoError(t, err)

		// browser on metadata, id and allow_multiple_selections inside
		// definition are not modeled and must not break decoding.
		first := responseList.Items[0]
		assert.Equal(t, "other", *first.Metadata.Platform)
		assert.Len(t, first.Definition.Fields, 1)
	})

	t.Run("Malformed JSON Fails", func(t *testing.T) {
		var responseList ResponseList
		err := json.Unmarshal([]byte(`{"items": [`), &responseList)
		assert.Error(t, err)
	})
}

func TestResponseList_Tokens(t *testing.T) {
	var responseList ResponseList
	err := json.Unmarshal([]byte(responseListFixture), &responseList)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"a3a12ec67a1365927098a606107fac15",
		"c13xhcdc97mv2pknmtk13xhcucfyt5np",
	}, responseList.Tokens())

	lastToken, ok := responseList.LastToken()
	assert.True(t, ok)
	assert.Equal(t, "c13xhcdc97mv2pknmtk13xhcucfyt5np", lastToken)

	_, ok = ResponseList{}.LastToken()
	assert.False(t, ok)
}

func TestResponse_Timestamps(t *testing.T) {
	var responseList ResponseList
	err := json.Unmarshal([]byte(responseListFixture), &responseList)
	assert.NoError(t, err)

	first := responseList.Items[0]
	landedAt, err := first.LandedAtTime()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 15, 4, 0, time.UTC), landedAt)

	assert.True(t, first.IsSubmitted())
	assert.False(t, responseList.Items[1].IsSubmitted(), "zero-date sentinel means the response only landed")
}

func TestDefinition_FieldByID(t *testing.T) {
	definition := Definition{Fields: []Field{
		{ID: "DlXFaesGBpoF", Type: "long_text", Title: "Where do you live?", Description: "Tell us everything"},
	}}

	field, ok := definition.FieldByID("DlXFaesGBpoF")
	assert.True(t, ok)
	assert.Equal(t, "long_text", field.Type)

	_, ok = definition.FieldByID("missing")
	assert.False(t, ok)
}
