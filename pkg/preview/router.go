package preview

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailmerge/middlewares"
	"github.com/dmitrymomot/mailmerge/pkg/cache"
	"github.com/dmitrymomot/mailmerge/pkg/health"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// Router returns the preview HTTP handler. Routes:
//
//	GET /             redirect to the first page
//	GET /preview/{n}  rendered message for recipient n (1-based)
//	GET /healthz      readiness (template resolves, roster non-empty)
//	GET /livez        liveness
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(middlewares.WithRecoverLogger(s.log)))

	r.Get("/", s.handleIndex)
	r.Get("/preview/{page}", s.handlePage)
	r.Get("/healthz", health.ReadinessHandler(s.Checks(), health.WithLogger(s.log)))
	r.Get("/livez", health.LivenessHandler())

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.limit() == 0 {
		http.Error(w, "roster has no recipients", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, "/preview/1", http.StatusFound)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil || n < 1 || n > s.limit() {
		http.NotFound(w, r)
		return
	}

	pg, err := cache.GetOrSet(r.Context(), s.pages, "page:"+strconv.Itoa(n),
		func(ctx context.Context) (page, time.Duration, error) {
			return s.renderPage(n), 0, nil
		})
	if err != nil {
		s.log.ErrorContext(r.Context(), "failed to render preview page",
			slog.Int("page", n),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := pageData{
		Index:   n,
		Total:   s.limit(),
		To:      pg.To,
		Subject: pg.Subject,
		Body:    pg.Body,
		Text:    s.tmpl.Mode() == template.ModeText,
	}
	if n > 1 {
		data.Prev = n - 1
	}
	if n < data.Total {
		data.Next = n + 1
	}

	// Render to a buffer first so a template failure can still 500.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.log.ErrorContext(r.Context(), "failed to render preview shell",
			slog.Int("page", n),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// pageData feeds the shell template around one rendered message.
type pageData struct {
	To      string
	Subject string
	Body    string
	Index   int
	Total   int
	Prev    int
	Next    int
	Text    bool
}

var pageTemplate = htmltemplate.Must(htmltemplate.New("page").Parse(pageShell))

// pageShell embeds the rendered HTML message in a sandboxed iframe via
// srcdoc, so stray markup or scripts in the message cannot touch the
// preview page itself. Text-mode messages render in a <pre> instead.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Preview {{.Index}} of {{.Total}}</title>
<style>
  body { margin: 0; font: 14px/1.4 system-ui, sans-serif; background: #f3f4f6; }
  header { display: flex; align-items: center; gap: 16px; padding: 12px 20px; background: #111827; color: #f9fafb; }
  header a { color: #93c5fd; text-decoration: none; }
  header .off { color: #6b7280; }
  .meta { padding: 10px 20px; background: #ffffff; border-bottom: 1px solid #e5e7eb; }
  .meta div { margin: 2px 0; }
  iframe { display: block; width: 100%; height: calc(100vh - 120px); border: 0; background: #ffffff; }
  pre { margin: 20px; padding: 16px; background: #ffffff; border: 1px solid #e5e7eb; white-space: pre-wrap; }
</style>
</head>
<body>
<header>
  {{if .Prev}}<a href="/preview/{{.Prev}}">&larr; prev</a>{{else}}<span class="off">&larr; prev</span>{{end}}
  <span>{{.Index}} / {{.Total}}</span>
  {{if .Next}}<a href="/preview/{{.Next}}">next &rarr;</a>{{else}}<span class="off">next &rarr;</span>{{end}}
</header>
<div class="meta">
  <div><strong>To:</strong> {{.To}}</div>
  <div><strong>Subject:</strong> {{.Subject}}</div>
</div>
{{if .Text}}<pre>{{.Body}}</pre>{{else}}<iframe sandbox="" srcdoc="{{.Body}}"></iframe>{{end}}
</body>
</html>
`
