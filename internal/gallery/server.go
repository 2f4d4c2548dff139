package gallery

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"coplot/internal/figure"
	"coplot/internal/render"
)

// contentTypes maps render formats to media types. Requests for a format
// outside this map are rejected before any rendering happens.
var contentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
	"eps": "application/postscript",
	"jpg": "image/jpeg",
	"tif": "image/tiff",
}

// renderKey identifies one cached rendering. Thumbnails use the reserved
// format "thumb" with a zero size.
type renderKey struct {
	name   string
	format string
	width  float64
	height float64
}

// Server renders registered figures over HTTP.
type Server struct {
	reg *figure.Registry
	r   render.Renderer
	log *log.Logger
	mux *http.ServeMux

	mu    sync.RWMutex
	cache map[renderKey][]byte
}

// NewServer builds the route table over the registry. A nil logger disables
// the access log.
func NewServer(reg *figure.Registry, logger *log.Logger) *Server {
	s := &Server{
		reg:   reg,
		log:   logger,
		mux:   http.NewServeMux(),
		cache: make(map[renderKey][]byte),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /figures", s.handleFigures)
	s.mux.HandleFunc("GET /figure/{file}", s.handleFigure)
	s.mux.HandleFunc("GET /figure/{name}/thumb.png", s.handleThumb)
	return s
}

// ServeHTTP dispatches to the route table behind the access log.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.log == nil {
		s.mux.ServeHTTP(w, r)
		return
	}
	lw := &statusWriter{ResponseWriter: w}
	start := time.Now()
	s.mux.ServeHTTP(lw, r)
	s.log.Printf("%s %s %s %d %dB %s",
		r.RemoteAddr, r.Method, r.URL.Path, lw.code(), lw.bytes, time.Since(start).Round(time.Millisecond))
}

// handleFigures lists the registered figures as JSON.
func (s *Server) handleFigures(w http.ResponseWriter, r *http.Request) {
	builders := s.reg.All()
	infos := make([]figure.Info, len(builders))
	for i, b := range builders {
		infos[i] = b.Info()
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(infos)
}

// handleFigure renders {name}.{ext} at the figure's preferred size, or at
// the size given by the w and h query parameters (inches).
func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)
	format := strings.ToLower(strings.TrimPrefix(ext, "."))

	ctype, ok := contentTypes[format]
	if !ok {
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
		return
	}
	b, ok := s.reg.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	o, err := sizeFromQuery(b.Info(), r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o.Format = format

	img, err := s.rendered(b, o)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ctype)
	_, _ = w.Write(img)
}

// handleThumb serves the small sketch preview for one figure.
func (s *Server) handleThumb(w http.ResponseWriter, r *http.Request) {
	b, ok := s.reg.Lookup(r.PathValue("name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	img, err := s.thumb(b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(img)
}

// rendered returns the cached rendering for b at o, building and encoding
// the figure on the first request for this key.
func (s *Server) rendered(b figure.Builder, o render.Options) ([]byte, error) {
	key := renderKey{name: b.Info().Name, format: o.Format, width: o.Width, height: o.Height}

	s.mu.RLock()
	img, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return img, nil
	}

	fig, err := b.Build(b.DefaultTable())
	if err != nil {
		return nil, err
	}
	img, err = s.r.Render(fig, o)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = img
	s.mu.Unlock()
	return img, nil
}

// thumb returns the cached thumbnail for b, building it on first request.
func (s *Server) thumb(b figure.Builder) ([]byte, error) {
	key := renderKey{name: b.Info().Name, format: "thumb"}

	s.mu.RLock()
	img, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return img, nil
	}

	sk, err := b.Sketch(b.DefaultTable())
	if err != nil {
		return nil, err
	}
	img, err = Thumb(sk)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = img
	s.mu.Unlock()
	return img, nil
}

// sizeFromQuery reads the optional w and h query parameters (inches),
// falling back to the figure's preferred size.
func sizeFromQuery(info figure.Info, r *http.Request) (render.Options, error) {
	o := render.Options{Width: info.Width, Height: info.Height}
	for _, q := range []struct {
		key string
		dst *float64
	}{{"w", &o.Width}, {"h", &o.Height}} {
		raw := r.URL.Query().Get(q.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return render.Options{}, fmt.Errorf("bad %s=%q: want a positive size in inches", q.key, raw)
		}
		*q.dst = v
	}
	return o, nil
}

// statusWriter records the status code and body size for the access log.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
