package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestToggleFlipsUnconditionally(t *testing.T) {
	d := NewDispatcher("http://127.0.0.1:0")
	if d.Mode() != ModeScripted {
		t.Fatalf("default mode = %q, want scripted", d.Mode())
	}
	if d.Toggle() != ModeLive {
		t.Fatalf("first toggle should enter live mode")
	}
	if d.Toggle() != ModeScripted {
		t.Fatalf("second toggle should return to scripted mode")
	}
}

func TestDispatchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/v1/assistant/query") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"live answer","tool_chips":["Forecast"]}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.URL)
	payload, err := d.Dispatch(context.Background(), "will we hit the number?", map[string]string{"company": "Acme"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if payload == nil || payload.Content != "live answer" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.ToolChips) != 1 || payload.ToolChips[0] != "Forecast" {
		t.Fatalf("tool chips not passed through: %+v", payload.ToolChips)
	}
}

func TestDispatchNonSuccessStatusResolvesNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	payload, err := NewDispatcher(server.URL).Dispatch(context.Background(), "q", nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload on 502, got %+v", payload)
	}
}

func TestDispatchTimesOutToNil(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	d := NewDispatcher(server.URL, WithTimeout(100*time.Millisecond))
	start := time.Now()
	payload, err := d.Dispatch(context.Background(), "q", nil)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload on timeout, got %+v", payload)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("dispatch did not respect the timeout, took %v", elapsed)
	}
}

func TestDispatchConnectionRefusedResolvesNil(t *testing.T) {
	payload, err := NewDispatcher("http://127.0.0.1:1").Dispatch(context.Background(), "q", nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload on refused connection, got %+v", payload)
	}
}

func TestDispatchMalformedBodyResolvesNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	payload, err := NewDispatcher(server.URL).Dispatch(context.Background(), "q", nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload on decode failure, got %+v", payload)
	}
}

func TestBadgeOnlyInLiveMode(t *testing.T) {
	d := NewDispatcher("")
	if d.Badge() != "" {
		t.Fatalf("scripted mode should render no badge")
	}
	d.Toggle()
	if !strings.Contains(d.Badge(), "LIVE") {
		t.Fatalf("live mode badge missing LIVE text: %q", d.Badge())
	}
	// Re-rendering is pure; two renders are identical, never stacked.
	if d.Badge() != d.Badge() {
		t.Fatalf("badge render is not idempotent")
	}
}
