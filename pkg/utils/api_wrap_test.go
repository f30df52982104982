package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, http.StatusOK, []string{"a"}, "ok")

	body := decode(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(http.StatusOK), body["statusCode"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, []interface{}{"a"}, body["data"])
}

func TestRespondErrorAlwaysCarriesNullData(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, http.StatusBadRequest, "bad")

	body := decode(t, w)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body, "data")
	assert.Nil(t, body["data"])
	assert.True(t, c.IsAborted())
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found is relayed verbatim",
			err:         NotFound("La provincia no existe en la base de datos"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "La provincia no existe en la base de datos",
		},
		{
			name:        "wrapped service error is still found",
			err:         errors.Join(errors.New("context"), BadRequest("malo")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "malo",
		},
		{
			name:        "query failure keeps its message",
			err:         QueryFailed(errors.New("relation \"cantons\" does not exist")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error en la consulta: relation \"cantons\" does not exist",
		},
		{
			name:        "unexpected error is downgraded to 500",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error inesperado: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleServiceError(c, tc.err)

			body := decode(t, w)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, float64(tc.wantStatus), body["statusCode"])
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.wantMessage, body["message"])
			assert.Nil(t, body["data"])
		})
	}
}
