package concierge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restrofi/storefront-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestBuildContentsDropsLeadingGreeting(t *testing.T) {
	history := []domain.ChatMessage{
		{Role: domain.RoleAssistant, Text: "Bonjour."},
		{Role: domain.RoleUser, Text: "Is the dal vegan?"},
		{Role: domain.RoleAssistant, Text: "It contains butter."},
	}

	got := buildContents(history, "Anything vegan then?")

	require.Len(t, got, 3)
	assert.Equal(t, "user", got[0].Role)
	assert.Equal(t, "model", got[1].Role)
	assert.Equal(t, "user", got[2].Role)
	assert.Equal(t, "Anything vegan then?", got[2].Parts[0].Text)
}

func TestGenerateReply(t *testing.T) {
	var captured []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("x-goog-api-key"))
		var body json.RawMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		captured = body
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Try the "},{"text":"Dal Makhani. "}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(Config{APIKey: "key-1", Model: "gemini-test", Endpoint: server.URL + "/models"})

	reply, err := client.GenerateReply(context.Background(), nil, "Recommend something", "- Dal Makhani (main, ₹700): Lentils [V]")

	require.NoError(t, err)
	assert.Equal(t, "Try the Dal Makhani.", reply)
	assert.Contains(t, gjson.GetBytes(captured, "system_instruction.parts.0.text").String(), "- Dal Makhani (main, ₹700): Lentils [V]")
	assert.Equal(t, "Recommend something", gjson.GetBytes(captured, "contents.0.parts.0.text").String())
}

func TestGenerateReplyErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "api_error", status: http.StatusTooManyRequests, body: `{"error":{"code":429,"message":"Resource exhausted"}}`, wantErr: "Resource exhausted"},
		{name: "blocked", status: http.StatusOK, body: `{"candidates":[{"finishReason":"SAFETY"}]}`, wantErr: "SAFETY"},
		{name: "garbage", status: http.StatusBadGateway, body: `upstream down`, wantErr: "upstream down"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := NewGeminiClient(Config{APIKey: "k", Endpoint: server.URL})
			_, err := client.GenerateReply(context.Background(), nil, "hi", "")

			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantErr)
		})
	}
}

func TestGenerateReplyRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewGeminiClient(Config{APIKey: "k", Endpoint: server.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GenerateReply(ctx, nil, "hi", "")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateReplyWithoutKey(t *testing.T) {
	_, err := NewGeminiClient(Config{}).GenerateReply(context.Background(), nil, "hi", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
