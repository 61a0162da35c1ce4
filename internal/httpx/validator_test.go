package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title      string `validate:"required"`
	TotalPages int    `validate:"required,gt=0"`
	PagesRead  *int   `validate:"required,gte=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct returns nil", func(t *testing.T) {
		pages := 0
		details := ValidateStruct(sampleRequest{Title: "Dune", TotalPages: 412, PagesRead: &pages})
		assert.Nil(t, details)
	})

	t.Run("missing fields are reported in camel case", func(t *testing.T) {
		details := ValidateStruct(sampleRequest{})

		require.Len(t, details, 3)
		assert.Equal(t, "title", details[0].Field)
		assert.Equal(t, "Title is required", details[0].Message)
		assert.Equal(t, "totalPages", details[1].Field)
		assert.Equal(t, "pagesRead", details[2].Field)
	})

	t.Run("nil pointer fails required but zero value passes", func(t *testing.T) {
		zero := 0
		withZero := ValidateStruct(sampleRequest{Title: "Dune", TotalPages: 412, PagesRead: &zero})
		assert.Nil(t, withZero)

		withNil := ValidateStruct(sampleRequest{Title: "Dune", TotalPages: 412})
		require.Len(t, withNil, 1)
		assert.Equal(t, "pagesRead", withNil[0].Field)
	})

	t.Run("gt message carries the bound", func(t *testing.T) {
		pages := 0
		details := ValidateStruct(sampleRequest{Title: "Dune", TotalPages: -1, PagesRead: &pages})

		require.Len(t, details, 1)
		assert.Equal(t, "TotalPages must be greater than 0", details[0].Message)
	})
}
