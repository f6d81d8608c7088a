package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-service/internal/service"
)

func TestHandleErrorMapsSentinels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{log: zerolog.Nop()}

	cases := []struct {
		err  error
		code int
	}{
		{service.ErrInvalidInput, http.StatusBadRequest},
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrConflict, http.StatusConflict},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrPermissionDenied, http.StatusForbidden},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.handleError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
	}
}

// Persistence failures return the driver detail and the attempted record in
// the 500 body.
func TestHandleErrorPersistFailureEchoesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{log: zerolog.Nop()}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.handleError(c, &service.PersistError{
		Op:      "persist customer",
		Payload: gin.H{"first_name": "Sami"},
		Err:     errors.New(`duplicate key value violates unique constraint "customers_cin_key"`),
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "duplicate key value")
	payload, ok := body["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sami", payload["first_name"])
}
