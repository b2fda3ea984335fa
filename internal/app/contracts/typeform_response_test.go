package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseSearchParams_ToQueryParam(t *testing.T) {
	t.Run("Zero Params Produce Empty Query", func(t *testing.T) {
		q := ResponseSearchParams{}.ToQueryParam()
		assert.Empty(t, q.Encode())
	})

	t.Run("Populated Params Use Provider Names", func(t *testing.T) {
		completed := false
		params := ResponseSearchParams{
			PageSize:  25,
			Since:     "2024-03-01T00:00:00Z",
			Until:     "2024-03-31T23:59:59Z",
			After:     "tok_after",
			Before:    "tok_before",
			Completed: &completed,
			Sort:      "submitted_at,desc",
			Query:     "cold",
			Fields:    []string{"DlXFaesGBpoF", "NRsxU591jIW9"},
		}

		q := params.ToQueryParam()

		assert.Equal(t, "25", q.Get("page_size"))
		assert.Equal(t, "2024-03-01T00:00:00Z", q.Get("since"))
		assert.Equal(t, "2024-03-31T23:59:59Z", q.Get("until"))
		assert.Equal(t, "tok_after", q.Get("after"))
		assert.Equal(t, "tok_before", q.Get("before"))
		assert.Equal(t, "false", q.Get("completed"))
		assert.Equal(t, "submitted_at,desc", q.Get("sort"))
		assert.Equal(t, "cold", q.Get("query"))
		assert.Equal(t, "DlXFaesGBpoF,NRsxU591jIW9", q.Get("fields"))
	})

	t.Run("False Completed Is Still Serialized", func(t *testing.T) {
		completed := false
		q := ResponseSearchParams{Completed: &completed}.ToQueryParam()
		assert.Equal(t, "completed=false", q.Encode())
	})
}
