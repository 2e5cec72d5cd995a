package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTelegram_SendPostsToBotEndpoint(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := NewTelegramWithBase("token123", "chat456", srv.URL)
	if err := tg.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotPath != "/bottoken123/sendMessage" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["chat_id"] != "chat456" {
		t.Fatalf("unexpected chat_id %v", gotBody["chat_id"])
	}
	if gotBody["text"] != "hello" {
		t.Fatalf("unexpected text %v", gotBody["text"])
	}
	if gotBody["parse_mode"] != "Markdown" {
		t.Fatalf("unexpected parse_mode %v", gotBody["parse_mode"])
	}
}

func TestTelegram_SendReportsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tg := NewTelegramWithBase("token", "chat", srv.URL)
	if err := tg.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error on 403 response")
	}
}
