package server

import (
	"context"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sofienekhiari/midlandproject/internal/analytics"
	"github.com/sofienekhiari/midlandproject/internal/auth"
	"github.com/sofienekhiari/midlandproject/internal/contact"
	"github.com/sofienekhiari/midlandproject/internal/content"
	"github.com/sofienekhiari/midlandproject/internal/database"
	"github.com/sofienekhiari/midlandproject/internal/docs"
	"github.com/sofienekhiari/midlandproject/internal/event"
	"github.com/sofienekhiari/midlandproject/internal/geoip"
	"github.com/sofienekhiari/midlandproject/internal/httputil"
	"github.com/sofienekhiari/midlandproject/internal/metrics"
	"github.com/sofienekhiari/midlandproject/internal/page"
	"github.com/sofienekhiari/midlandproject/internal/ratelimit"
	"github.com/sofienekhiari/midlandproject/internal/site"
	"github.com/sofienekhiari/midlandproject/internal/validate"
	"github.com/sofienekhiari/midlandproject/internal/video"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Config carries everything the router needs. DB, Geo, Metrics, Publisher
// and StaticFS are optional: a nil DB disables analytics and admin stats,
// a nil Publisher disables content publishing.
type Config struct {
	Site              site.Config
	DB                database.DBTX
	Pinger            Pinger
	Events            *event.Handler
	Videos            *video.Handler
	Publisher         *content.PublishHandler
	Notifier          contact.Notifier
	Geo               *geoip.Resolver
	Metrics           *metrics.Metrics
	StaticFS          fs.FS
	JWTSecret         string
	AdminPasswordHash string
	BaseURL           string
	EnableDocs        bool
}

type Server struct {
	router         chi.Router
	pinger         Pinger
	pages          *page.Handler
	events         *event.Handler
	videos         *video.Handler
	contactHandler *contact.Handler
	authHandler    *auth.Handler
	stats          *analytics.Handler
	publisher      *content.PublishHandler
	static         *staticFileServer
	metricsHandler http.Handler
	enableDocs     bool
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(slogMiddleware)
	r.Use(securityHeaders(SecurityConfig{BaseURL: cfg.BaseURL}))

	if cfg.AdminPasswordHash != "" && cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}

	s := &Server{
		router:         r,
		pinger:         cfg.Pinger,
		events:         cfg.Events,
		videos:         cfg.Videos,
		publisher:      cfg.Publisher,
		contactHandler: contact.NewHandler(cfg.Notifier),
		authHandler:    auth.NewHandler(cfg.JWTSecret, cfg.AdminPasswordHash),
		enableDocs:     cfg.EnableDocs,
	}

	var views *analytics.Recorder
	if cfg.DB != nil {
		// The typed nil must not leak into the interface field.
		var failures analytics.FailureCounter
		if cfg.Metrics != nil {
			failures = cfg.Metrics
		}
		views = analytics.NewRecorder(cfg.DB, cfg.Geo, failures)
		s.stats = analytics.NewHandler(cfg.DB)
	}

	var renders page.RenderCounter
	if cfg.Metrics != nil {
		renders = cfg.Metrics
		s.metricsHandler = metrics.Handler()
	}

	s.pages = page.NewHandler(cfg.Site, cfg.Events, cfg.Videos, views, renders)

	if cfg.StaticFS != nil {
		s.static = newStaticFileServer(cfg.StaticFS)
	}

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)

	s.router.Get("/", s.pages.Home)
	s.router.NotFound(s.pages.NotFound)

	if s.static != nil {
		s.router.Handle("/static/*", s.static)
		s.router.Get("/robots.txt", s.static.serveRootFile("robots.txt"))
		s.router.Get("/favicon.svg", s.static.serveRootFile("favicon.svg"))
	}

	if s.events != nil {
		s.router.Get("/api/events", s.events.List)
	}
	if s.videos != nil {
		s.router.Get("/api/videos", s.videos.List)
	}
	s.router.Get("/api/limits", s.handleLimits)

	contactLimiter := ratelimit.NewLimiter(0.5, 5)
	s.router.With(contactLimiter.Middleware).Post("/api/contact", s.contactHandler.Submit)

	s.router.Route("/api/admin", func(r chi.Router) {
		loginLimiter := ratelimit.NewLimiter(0.5, 5)
		r.With(loginLimiter.Middleware).Post("/login", s.authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.authHandler.Middleware)
			if s.stats != nil {
				r.Get("/stats", s.stats.Stats)
			}
			if s.publisher != nil {
				r.Put("/content/{doc}", s.publisher.Update)
			}
		})
	})

	if s.metricsHandler != nil {
		s.router.Handle("/metrics", s.metricsHandler)
	}

	if s.enableDocs {
		s.router.Get("/api/docs", docs.HandleDocs)
		s.router.Get("/api/docs/openapi.yaml", docs.HandleSpec)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"database unreachable"}`))
			return
		}
	}
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleLimits tells the contact form its field limits.
func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, validate.FieldLimits())
}
