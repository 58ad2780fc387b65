package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

func TestSendLeadNotification(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	client := NewResendClientWithEndpoint("re_test", "cars@example.com", "sales@example.com", srv.URL)
	msg := models.ContactMessage{
		ID:      uuid.Must(uuid.NewV7()),
		Name:    "Ana <script>",
		Email:   "ana@example.com",
		Message: "Is it available?",
	}

	require.NoError(t, client.SendLeadNotification(context.Background(), msg, "Toyota Hilux"))
	assert.Equal(t, "sales@example.com", got["to"])
	assert.Equal(t, "ana@example.com", got["reply_to"])
	assert.Equal(t, "New enquiry about Toyota Hilux", got["subject"])
	assert.Contains(t, got["html"], "Ana &lt;script&gt;")
}

func TestSendLeadNotificationSkipsWithoutRecipient(t *testing.T) {
	client := NewResendClientWithEndpoint("re_test", "cars@example.com", "", "http://127.0.0.1:0")
	assert.NoError(t, client.SendLeadNotification(context.Background(), models.ContactMessage{}, ""))
}

func TestSendReportsAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer srv.Close()

	client := NewResendClientWithEndpoint("re_test", "bad", "sales@example.com", srv.URL)
	err := client.SendLeadAcknowledgement(context.Background(), models.ContactMessage{Email: "ana@example.com"})
	assert.ErrorContains(t, err, "status 422")
}
