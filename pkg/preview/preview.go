package preview

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailmerge/pkg/cache"
	"github.com/dmitrymomot/mailmerge/pkg/health"
	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/params"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

const (
	defaultAddress         = "localhost:8025"
	defaultPageTTL         = 5 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Server serves personalized renderings of a campaign over HTTP so the
// content can be proofread with real roster data before anything is sent.
// Pages are numbered from 1 and follow roster order.
type Server struct {
	tmpl            *template.Template
	roster          *roster.Roster
	registry        *params.Registry
	log             *slog.Logger
	pages           *cache.Memory[page]
	addr            string
	count           int
	pageTTL         time.Duration
	shutdownTimeout time.Duration
}

// page is one rendered recipient message, cached between requests.
type page struct {
	To      string
	Subject string
	Body    string
}

// Option configures a preview server.
type Option func(*Server)

// WithAddress sets the listen address. Defaults to "localhost:8025".
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithRegistry replaces the default parameter registry. Use this when the
// template declares custom parameters beyond email and name.
func WithRegistry(reg *params.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCount limits how many recipients can be paged through. Zero
// (the default) previews the whole roster.
func WithCount(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.count = n
		}
	}
}

// WithPageTTL sets how long rendered pages stay cached.
// Defaults to 5 minutes.
func WithPageTTL(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.pageTTL = d
		}
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout.
// Defaults to 10 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New creates a preview server for the given template and roster.
func New(tmpl *template.Template, r *roster.Roster, opts ...Option) (*Server, error) {
	if tmpl == nil {
		return nil, ErrNoTemplate
	}
	if r == nil {
		return nil, ErrNoRoster
	}

	s := &Server{
		tmpl:            tmpl,
		roster:          r,
		registry:        params.NewRegistry(),
		log:             logger.NewNope(),
		addr:            defaultAddress,
		pageTTL:         defaultPageTTL,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.pages = cache.NewMemory[page](cache.WithDefaultTTL(s.pageTTL))

	return s, nil
}

// Close releases the page cache. Run calls this during shutdown; call it
// directly when the server is used only through Router.
func (s *Server) Close() error {
	return s.pages.Close()
}

// limit returns the number of previewable pages.
func (s *Server) limit() int {
	n := s.roster.Len()
	if s.count > 0 && s.count < n {
		return s.count
	}
	return n
}

// renderPage personalizes the template for the recipient on page n.
func (s *Server) renderPage(n int) page {
	rec := s.roster.At(n - 1)
	vars := s.registry.Resolve(rec.Email, rec.Name, rec.Custom)
	subject, body := s.tmpl.Personalize(vars)
	if s.tmpl.Mode() != template.ModeText {
		body = s.tmpl.WrapDocument(body)
	}
	return page{
		To:      mailer.Address(rec.Name, rec.Email),
		Subject: subject,
		Body:    body,
	}
}

// Checks returns the readiness checks served on /healthz: the template
// resolves against the registry and the roster is non-empty.
func (s *Server) Checks() health.Checks {
	return health.Checks{
		"template": func(ctx context.Context) error {
			return s.tmpl.Validate(s.registry.Identifiers())
		},
		"roster": func(ctx context.Context) error {
			if s.roster.Len() == 0 {
				return ErrEmptyRoster
			}
			return nil
		},
	}
}
