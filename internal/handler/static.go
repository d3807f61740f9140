package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// landingPage is served at / when no frontend build is present.
var landingPage = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head><title>SafeReach API</title></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 50px auto; padding: 20px;">
<h1>SafeReach API</h1>
<p>API is running.</p>
<ul>
<li><a href="/openapi.yaml">API description</a></li>
<li><a href="/healthz">Health check</a></li>
</ul>
<p><em>Environment: {{.}}</em></p>
</body>
</html>
`))

// mountFrontend serves dir at /static and /frontend, and its index.html at /.
// A missing dir leaves only the landing page.
func (s *Server) mountFrontend(r chi.Router, dir string) {
	info, err := os.Stat(dir)
	if dir == "" || err != nil || !info.IsDir() {
		r.Get("/", s.landing)
		return
	}

	slog.Info("serving frontend", "dir", dir)
	files := http.FileServer(http.Dir(dir))
	r.Handle("/static/*", http.StripPrefix("/static", files))
	r.Handle("/frontend/*", http.StripPrefix("/frontend", files))

	index := filepath.Join(dir, "index.html")
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		if _, err := os.Stat(index); err != nil {
			s.landing(w, req)
			return
		}
		http.ServeFile(w, req, index)
	})
}

func (s *Server) landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingPage.Execute(w, s.environment); err != nil {
		slog.ErrorContext(r.Context(), "render landing page", "error", err)
	}
}
