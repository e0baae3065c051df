package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(serverURL string) *AnthropicClient {
	c := NewAnthropicClient("test-key", "test-model", 4096)
	c.baseURL = serverURL
	return c
}

func TestComplete_Success(t *testing.T) {
	var gotReq messagesRequest
	var gotKey, gotVersion string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "Bones, xiquet!"}},
		})
	}))
	defer server.Close()

	reply, err := testClient(server.URL).Complete(context.Background(), "ets Giuseppe", []Turn{
		{Role: RoleUser, Content: "hola"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply != "Bones, xiquet!" {
		t.Fatalf("wrong reply: %q", reply)
	}
	if gotKey != "test-key" || gotVersion != "2023-06-01" {
		t.Fatalf("wrong auth headers: %q %q", gotKey, gotVersion)
	}
	if gotReq.Model != "test-model" || gotReq.MaxTokens != 4096 || gotReq.System != "ets Giuseppe" {
		t.Fatalf("wrong request: %+v", gotReq)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "hola" {
		t.Fatalf("wrong turns: %+v", gotReq.Messages)
	}
}

func TestComplete_EmptyContentFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"content": []map[string]string{}})
	}))
	defer server.Close()

	reply, err := testClient(server.URL).Complete(context.Background(), "sys", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != Fallback {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error","error":{"type":"overloaded_error"}}`, 529)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Complete(context.Background(), "sys", nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upstream.StatusCode != 529 {
		t.Fatalf("expected status 529, got %d", upstream.StatusCode)
	}
	if upstream.Body == "" {
		t.Fatal("expected the raw error body to be captured")
	}
}
