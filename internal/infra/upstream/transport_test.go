package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected method GET, got %s", r.Method)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept application/json, got %s", r.Header.Get("Accept"))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	c := NewClient(time.Second, 5*time.Second)
	out := c.Get(context.Background(), server.URL+"/posts")

	if out.Err != nil {
		t.Fatalf("unexpected transport error: %v", out.Err)
	}
	if out.Status != http.StatusOK {
		t.Errorf("status = %d, want 200", out.Status)
	}
	if string(out.Body) != `[{"id":1}]` {
		t.Errorf("body = %q", out.Body)
	}
}

func TestClient_Get_StatusPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(time.Second, 5*time.Second)
	out := c.Get(context.Background(), server.URL)

	// Non-2xx responses are not transport errors; classification decides.
	if out.Err != nil {
		t.Fatalf("unexpected transport error: %v", out.Err)
	}
	if out.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", out.Status)
	}
}

func TestClient_Get_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(time.Second, time.Second)
	out := c.Get(context.Background(), url)

	if out.Err == nil {
		t.Fatal("expected transport error for closed server")
	}
}

func TestClient_Get_ContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(time.Second, 10*time.Second)
	start := time.Now()
	out := c.Get(ctx, server.URL)

	if out.Err == nil {
		t.Fatal("expected transport error after context deadline")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("call did not abort promptly: %v", elapsed)
	}
}
