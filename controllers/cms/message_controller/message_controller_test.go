package message_controller

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsMessageStatus(t *testing.T) {
	for _, s := range []string{"new", "read", "replied", "archived"} {
		assert.True(t, isMessageStatus(s), s)
	}
	assert.False(t, isMessageStatus(""))
	assert.False(t, isMessageStatus("NEW"))
	assert.False(t, isMessageStatus("spam"))
}

func TestMessageHandlersValidateInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/messages/:id", GetMessageByID)
	r.PATCH("/messages/:id/status", UpdateMessageStatus)
	r.DELETE("/messages/:id", DeleteMessage)

	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/messages/abc", ""},
		{http.MethodDelete, "/messages/abc", ""},
		{http.MethodPatch, "/messages/abc/status", `{"status":"read"}`},
		{http.MethodPatch, "/messages/" + uuid.NewString() + "/status", `{"status":"spam"}`},
		{http.MethodPatch, "/messages/" + uuid.NewString() + "/status", `{}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s %s", tc.method, tc.path, tc.body)
	}
}
