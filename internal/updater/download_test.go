package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDownloadAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/octet-stream" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		w.Write([]byte("// script body"))
	}))
	defer server.Close()

	u := New(WithHTTPClient(server.Client()))
	body, err := u.DownloadAsset(context.Background(), &Asset{Name: "foo.js", DownloadURL: server.URL + "/foo.js"})
	if err != nil {
		t.Fatalf("DownloadAsset failed: %v", err)
	}
	if string(body) != "// script body" {
		t.Errorf("body = %q", body)
	}
}

func TestDownloadAsset_TokenNotSentToAssetHost(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	u := New(WithHTTPClient(server.Client()), WithAPIBase("https://api.example.com"), WithToken("secret"))
	if _, err := u.DownloadAsset(context.Background(), &Asset{Name: "x", DownloadURL: server.URL + "/x"}); err != nil {
		t.Fatal(err)
	}
	if auth != "" {
		t.Errorf("token leaked to asset host: %q", auth)
	}
}

func TestDownloadAsset_NonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	u := New(WithHTTPClient(server.Client()))
	if _, err := u.DownloadAsset(context.Background(), &Asset{Name: "foo.js", DownloadURL: server.URL}); err == nil {
		t.Error("expected error for status 500")
	}
}
