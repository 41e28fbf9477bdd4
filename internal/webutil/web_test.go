package webutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/errors"
)

func TestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, Validate(api.CreateReviewRequest{
			PropertyId: "p1",
			Rating:     5,
			Title:      "Wonderful",
			Content:    "Great stay",
		}))
	})

	t.Run("out-of-range rating", func(t *testing.T) {
		err := Validate(api.CreateReviewRequest{
			PropertyId: "p1",
			Rating:     6,
			Title:      "Too good",
			Content:    "x",
		})

		var statusErr *errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.StatusCode)
	})

	t.Run("missing required fields", func(t *testing.T) {
		assert.Error(t, Validate(api.LoginRequest{Email: "not-an-email"}))
	})
}
