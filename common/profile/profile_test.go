package profile

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProfileManagerRegister(t *testing.T) {
	mux := http.NewServeMux()
	NewProfileManager().Register(mux)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/debug/pprof/memory/gc")
	if err != nil {
		t.Fatalf("get memory gc failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("memory gc status expected 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	if !strings.Contains(string(body), "HeapAlloc") {
		t.Fatalf("memory trace missing, body: %s", body)
	}

	indexResp, err := http.Get(srv.URL + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index failed: %v", err)
	}
	defer indexResp.Body.Close()
	if indexResp.StatusCode != http.StatusOK {
		t.Fatalf("pprof index status expected 200, got %d", indexResp.StatusCode)
	}
}
