package boardapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"memoryscramble/internal/boardengine"
)

func newTestServer(t *testing.T) (*httptest.Server, *boardengine.Board) {
	t.Helper()
	b := boardengine.NewBoard(2, 2, []string{"A", "A", "B", "B"})
	t.Cleanup(b.Close)
	srv := httptest.NewServer(NewServer(b))
	t.Cleanup(srv.Close)
	return srv, b
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestFlipEndpointSuccess(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/flip/p1/0,0")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestFlipEndpointOutOfBoundsIsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/flip/p1/9,9")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFlipEndpointSecondControlledIsConflict(t *testing.T) {
	srv, _ := newTestServer(t)
	if resp, err := http.Get(srv.URL + "/flip/p1/0,0"); err != nil {
		t.Fatalf("get: %v", err)
	} else {
		resp.Body.Close()
	}
	resp, err := http.Get(srv.URL + "/flip/p1/0,0")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestLookEndpointIsTextPlain(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/look/p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type = %q, want text/plain", ct)
	}
}

func TestReplaceEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/replace/p1/A/Z")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
