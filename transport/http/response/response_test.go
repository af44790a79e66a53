package response_test

import (
	"courtbook/shared/failure"
	"courtbook/transport/http/response"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "validation names the field",
			err:          failure.Validation("customerInfo.email", "must be a valid email address"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"customerInfo.email: must be a valid email address","field":"customerInfo.email"}`,
		},
		{
			name:         "provider message verbatim",
			err:          failure.Provider(http.StatusConflict, "Khung giờ đã được đặt"),
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Khung giờ đã được đặt"}`,
		},
		{
			name:         "foreign error is internal",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]any{"paymentUrl": "https://pay.payos.vn/web/x"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"paymentUrl":"https://pay.payos.vn/web/x"}}`, recorder.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}
