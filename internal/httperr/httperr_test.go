package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestBusinessCode(t *testing.T) {
	err := ErrBusiness("barber_time_conflict")

	code, ok := BusinessCode(err)
	require.True(t, ok)
	require.Equal(t, "barber_time_conflict", code)

	require.True(t, IsBusiness(err, "barber_time_conflict"))
	require.False(t, IsBusiness(err, "client_time_conflict"))

	_, ok = BusinessCode(errors.New("connection refused"))
	require.False(t, ok)
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		code   string
		status int
	}{
		{"invalid_range", http.StatusBadRequest},
		{"client_not_found", http.StatusNotFound},
		{"barber_not_found", http.StatusNotFound},
		{"service_not_found", http.StatusNotFound},
		{"appointment_not_found", http.StatusNotFound},
		{"barber_inactive", http.StatusUnprocessableEntity},
		{"service_inactive", http.StatusUnprocessableEntity},
		{"invalid_service_duration", http.StatusUnprocessableEntity},
		{"outside_working_hours", http.StatusConflict},
		{"barber_time_conflict", http.StatusConflict},
		{"client_time_conflict", http.StatusConflict},
		{"invalid_state", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			require.True(t, FromError(c, ErrBusiness(tt.code)))
			require.Equal(t, tt.status, rec.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.code, body.Code)
			require.NotEmpty(t, body.Message)
		})
	}
}

func TestFromErrorIgnoresInfraErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	require.False(t, FromError(c, errors.New("dial tcp: timeout")))
	require.Empty(t, rec.Body.String())
}
