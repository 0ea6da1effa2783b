package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/reminderly/reminderly/internal/shared/config"
)

func brevoConfig(baseURL string) sharedConfig.EmailConfig {
	return sharedConfig.EmailConfig{
		Provider:    sharedConfig.EmailProviderBrevo,
		FromAddress: "noreply@example.com",
		FromName:    "Employee Reminder System",
		Brevo:       sharedConfig.BrevoConfig{APIKey: "test-key", BaseURL: baseURL + "/"},
	}
}

func TestBrevoSender_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/smtp/email", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<2024@smtp-relay.brevo.com>"}`))
	}))
	defer srv.Close()

	sender := NewBrevoSender(brevoConfig(srv.URL))
	result, err := sender.Send(context.Background(), Message{
		To:       []Address{{Email: "hr@example.com", Name: "HR"}},
		Subject:  "Visa Renewal due in 7 days",
		HTMLBody: "<p>Hello HR Department</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "<2024@smtp-relay.brevo.com>", result.MessageID)
	assert.Equal(t, "Visa Renewal due in 7 days", got["subject"])
	assert.Equal(t, "<p>Hello HR Department</p>", got["htmlContent"])
	assert.Equal(t, map[string]any{"email": "noreply@example.com", "name": "Employee Reminder System"}, got["sender"])
	assert.Equal(t, []any{map[string]any{"email": "hr@example.com", "name": "HR"}}, got["to"])
}

func TestBrevoSender_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer srv.Close()

	_, err := NewBrevoSender(brevoConfig(srv.URL)).Send(context.Background(), Message{
		To:      []Address{{Email: "hr@example.com"}},
		Subject: "s",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "Key not found")
}

func TestBrevoSender_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBrevoSender(brevoConfig(srv.URL)).Send(ctx, Message{
		To:      []Address{{Email: "hr@example.com"}},
		Subject: "s",
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestMessage_Validate(t *testing.T) {
	assert.ErrorIs(t, Message{Subject: "s"}.Validate(), ErrNoRecipients)
	assert.ErrorIs(t, Message{To: []Address{{Email: "a@b.c"}}}.Validate(), ErrEmptySubject)
	assert.Error(t, Message{To: []Address{{Email: " "}}, Subject: "s"}.Validate())
	assert.NoError(t, Message{To: []Address{{Email: "a@b.c"}}, Subject: "s"}.Validate())
}
