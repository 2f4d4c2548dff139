// internal/gallery/server_test.go
package gallery_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coplot/internal/app"
	"coplot/internal/figure"
	"coplot/internal/gallery"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testServer(t *testing.T) *gallery.Server {
	t.Helper()
	wire, err := app.NewWire(app.Config{Data: t.TempDir()})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	return gallery.NewServer(wire.Figures, nil)
}

func get(t *testing.T, srv *gallery.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_FiguresJSON(t *testing.T) {
	rec := get(t, testServer(t), "/figures")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /figures = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}

	var infos []figure.Info
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"dualaxis", "grid", "bars", "stack"}
	if len(infos) != len(want) {
		t.Fatalf("%d figures, want %d", len(infos), len(want))
	}
	for i, info := range infos {
		if info.Name != want[i] {
			t.Fatalf("figure %d = %q, want %q", i, info.Name, want[i])
		}
	}
}

func TestServer_RenderPNGAndCache(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/figure/bars.png?w=2&h=1.5")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /figure/bars.png = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), pngMagic) {
		t.Fatal("response is not a png")
	}

	// The repeat comes from the cache and is byte-identical.
	rec2 := get(t, srv, "/figure/bars.png?w=2&h=1.5")
	if !bytes.Equal(rec.Body.Bytes(), rec2.Body.Bytes()) {
		t.Fatal("cached render differs from the first")
	}
}

func TestServer_RenderSVG(t *testing.T) {
	rec := get(t, testServer(t), "/figure/dualaxis.svg?w=2&h=1.5")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /figure/dualaxis.svg = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Fatal("response has no <svg element")
	}
}

func TestServer_Thumb(t *testing.T) {
	srv := testServer(t)
	for _, name := range []string{"dualaxis", "stack"} {
		rec := get(t, srv, "/figure/"+name+"/thumb.png")
		if rec.Code != http.StatusOK {
			t.Fatalf("thumb %s = %d: %s", name, rec.Code, rec.Body.String())
		}
		if !bytes.HasPrefix(rec.Body.Bytes(), pngMagic) {
			t.Fatalf("thumb %s is not a png", name)
		}
	}
}

func TestServer_Index(t *testing.T) {
	rec := get(t, testServer(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"dualaxis", "grid", "bars", "stack", "thumb.png"} {
		if !strings.Contains(body, want) {
			t.Fatalf("index is missing %q", want)
		}
	}
}

func TestServer_Errors(t *testing.T) {
	srv := testServer(t)

	cases := []struct {
		path string
		code int
	}{
		{"/figure/nope.png", http.StatusNotFound},
		{"/figure/nope/thumb.png", http.StatusNotFound},
		{"/figure/bars.bmp", http.StatusBadRequest},
		{"/figure/bars", http.StatusBadRequest},
		{"/figure/bars.png?w=abc", http.StatusBadRequest},
		{"/figure/bars.png?h=-2", http.StatusBadRequest},
		{"/figure/bars.png?w=Inf", http.StatusBadRequest},
		{"/figure/bars.png?w=NaN", http.StatusBadRequest},
	}
	for _, c := range cases {
		if rec := get(t, srv, c.path); rec.Code != c.code {
			t.Fatalf("GET %s = %d, want %d", c.path, rec.Code, c.code)
		}
	}
}
