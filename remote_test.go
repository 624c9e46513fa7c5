package chart

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/etnz/chart/date"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeURL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/balance.jsonl":
			fmt.Fprintln(w, `{"on":"2025-01-02","value":110}`)
			fmt.Fprintln(w, `{"on":"2025-01-01","value":100}`)
		case "/balance.csv":
			fmt.Fprintln(w, "date,value")
			fmt.Fprintln(w, "2025-01-01,100")
			fmt.Fprintln(w, "2025-01-02,110")
		case "/api/balance.json":
			fmt.Fprint(w, `{"data":[["2025-01-01",100],["2025-01-02",110]]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := &http.Client{Transport: &diskCache{
		base:  http.DefaultTransport,
		dir:   t.TempDir(),
		today: func() date.Date { return day0 },
	}}
	want := series(100, 110)

	testCases := []struct {
		path     string
		jsonpath string
	}{
		{"/balance.jsonl", ""},
		{"/balance.csv", ""},
		{"/api/balance.json", "$.data"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := DecodeURL(context.Background(), client, srv.URL+tc.path, tc.jsonpath)
			if err != nil {
				t.Fatalf("DecodeURL() error = %v", err)
			}
			if diff := cmp.Diff(want, got, dateOpt); diff != "" {
				t.Errorf("DecodeURL() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// the same day, the second request is served by the cache.
	before := hits.Load()
	got, err := DecodeURL(context.Background(), client, srv.URL+"/balance.jsonl", "")
	if err != nil {
		t.Fatalf("DecodeURL() cached error = %v", err)
	}
	if diff := cmp.Diff(want, got, dateOpt); diff != "" {
		t.Errorf("DecodeURL() cached mismatch (-want +got):\n%s", diff)
	}
	if n := hits.Load() - before; n != 0 {
		t.Errorf("DecodeURL() cached hit the server %d times", n)
	}
}

func TestDecodeURL_Errors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	client := DailyClient(t.TempDir())

	testCases := []struct {
		name    string
		addr    string
		wantErr string
	}{
		{"not found", srv.URL + "/missing.jsonl", "404"},
		{"invalid url", "http://exa mple.com/b.jsonl", "invalid url"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeURL(context.Background(), client, tc.addr, "")
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeURL() error = %v want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestDecode_Format(t *testing.T) {
	testCases := []struct {
		ext, jsonpath, wantErr string
	}{
		{".txt", "", `unknown series format ".txt"`},
		{".json", "", "a jsonpath expression is required"},
	}
	for _, tc := range testCases {
		_, err := decode(strings.NewReader(""), "remote", tc.ext, tc.jsonpath)
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("decode(%q) error = %v want containing %q", tc.ext, err, tc.wantErr)
		}
	}
}

func TestIsURL(t *testing.T) {
	for name, want := range map[string]bool{
		"https://example.com/b.jsonl": true,
		"http://localhost:8080/b.csv": true,
		"balance.jsonl":               false,
		"-":                           false,
	} {
		if got := IsURL(name); got != want {
			t.Errorf("IsURL(%q) = %v want %v", name, got, want)
		}
	}
}
