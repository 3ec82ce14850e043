package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrMalformedRecord, "malformed daily record: 'sales' expected type 'float64'", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrMalformedRecord, body.Code)
	assert.Equal(t, "malformed daily record: 'sales' expected type 'float64'", body.Message)
}

func TestStatusFor_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInvalidFormat, Message: "boom"}, FromError(errors.New("boom"), ErrInvalidFormat))
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidFormat).Code)
}
