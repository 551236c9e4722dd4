package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerrors "github.com/clinicdir/directory-data-service/internal/system/errors"
	"github.com/clinicdir/directory-data-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func decodeErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	return body
}

func TestHandleError(t *testing.T) {

	t.Run("ValidationErrorIs400WithMissingFields", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, customerrors.NewValidationError(
			customerrors.DRAFT_INCOMPLETE_FOR_APPROVAL, []string{"website", "email"}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		body := decodeErrorResponse(t, recorder)
		assert.Equal(t, customerrors.DRAFT_INCOMPLETE_FOR_APPROVAL.Code, body.Code)
		assert.Equal(t, []string{"website", "email"}, body.MissingFields)
	})

	t.Run("ConflictErrorIs409", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, customerrors.NewConflictError(customerrors.DRAFT_NOT_PENDING))

		assert.Equal(t, http.StatusConflict, recorder.Code)
		body := decodeErrorResponse(t, recorder)
		assert.Equal(t, customerrors.DRAFT_NOT_PENDING.Code, body.Code)
	})

	t.Run("NotFoundErrorIs404", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, customerrors.NewNotFoundError(customerrors.DRAFT_NOT_FOUND))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("ClientErrorCarriesItsStatus", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, customerrors.NewClientError(customerrors.BAD_REQUEST, http.StatusBadRequest))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("UnknownErrorIs500", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, errors.New("database on fire"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("ServerErrorIs500", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, customerrors.NewServerError(customerrors.GET_DRAFT, errors.New("timeout")))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
