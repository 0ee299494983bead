package response

import (
	"Hustings/internal/api/dto"
	"Hustings/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// TestSuccess tests that data is written as the raw body
func TestSuccess(t *testing.T) {
	c, w := newContext()

	Success(c, []int{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// TestError tests sentinel errors mapped through errors.Is
func TestError(t *testing.T) {
	t.Run("wrapped cms failure", func(t *testing.T) {
		c, w := newContext()

		Error(c, fmt.Errorf("%w: %w", service.ErrCMSUnavailable, errors.New("directus responded 503")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, service.ErrCMSUnavailable.Error(), body.Error)
		assert.Equal(t, "directus responded 503", body.Details)
	})

	t.Run("bare sentinel has no details", func(t *testing.T) {
		c, w := newContext()

		Error(c, service.ForbiddenError)

		assert.Equal(t, http.StatusForbidden, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, service.ForbiddenError.Error(), body.Error)
		assert.Empty(t, body.Details)
	})

	t.Run("unknown error", func(t *testing.T) {
		c, w := newContext()

		Error(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, service.UnExpectedError.Error(), body.Error)
		assert.Equal(t, "boom", body.Details)
	})
}
