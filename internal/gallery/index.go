package gallery

import (
	"html/template"
	"net/http"

	"coplot/internal/figure"
)

// downloadFormats are the formats the index page links per figure.
var downloadFormats = []string{"png", "svg", "pdf"}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>coplot gallery</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 48rem; color: #1f2430; }
section { margin-bottom: 2.5rem; }
img { border: 1px solid #d8dce5; border-radius: 4px; }
h2 { margin-bottom: 0.2rem; }
p.desc { margin-top: 0; color: #5b647a; }
a { color: #2563eb; }
</style>
</head>
<body>
<h1>coplot gallery</h1>
{{range .Figures}}{{$fig := .}}<section>
<h2>{{.Title}}</h2>
<p class="desc">{{.Description}}</p>
<a href="/figure/{{.Name}}.png"><img src="/figure/{{.Name}}/thumb.png" alt="{{.Name}}"></a>
<p>download:{{range $.Formats}} <a href="/figure/{{$fig.Name}}.{{.}}">{{.}}</a>{{end}}</p>
</section>
{{end}}
</body>
</html>
`))

// handleIndex renders the HTML index of figures with thumbnails.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	builders := s.reg.All()
	infos := make([]figure.Info, len(builders))
	for i, b := range builders {
		infos[i] = b.Info()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTmpl.Execute(w, struct {
		Figures []figure.Info
		Formats []string
	}{Figures: infos, Formats: downloadFormats})
}
