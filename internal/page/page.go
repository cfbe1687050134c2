// Package page renders the public site. The whole page is a single
// server-rendered template: events and videos are loaded per request and
// inlined, so the browser never fetches content itself.
package page

import (
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/sofienekhiari/midlandproject/internal/analytics"
	"github.com/sofienekhiari/midlandproject/internal/event"
	"github.com/sofienekhiari/midlandproject/internal/httputil"
	"github.com/sofienekhiari/midlandproject/internal/site"
	"github.com/sofienekhiari/midlandproject/internal/video"
)

// RenderCounter counts delivered pages per route.
type RenderCounter interface {
	PageRendered(route string)
}

type Handler struct {
	site    site.Config
	events  *event.Handler
	videos  *video.Handler
	views   *analytics.Recorder
	renders RenderCounter
}

// NewHandler assembles the home page from the section loaders. views and
// renders may be nil when analytics or metrics are not configured.
func NewHandler(cfg site.Config, events *event.Handler, videos *video.Handler, views *analytics.Recorder, renders RenderCounter) *Handler {
	return &Handler{
		site:    cfg,
		events:  events,
		videos:  videos,
		views:   views,
		renders: renders,
	}
}

type homePageData struct {
	Site           site.Config
	Nonce          string
	EventsFragment template.HTML
	VideosFragment template.HTML
	Year           int
}

// Home renders the landing page. The events and videos loaders run
// concurrently and each swallows its own failures, so a broken events
// document still leaves the videos section intact and vice versa. A
// section disabled in the site config is left out entirely and its
// loader never runs.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := homePageData{
		Site:  h.site,
		Nonce: httputil.NonceFromContext(r.Context()),
		Year:  time.Now().Year(),
	}

	var wg sync.WaitGroup
	if h.site.Sections.Events.Enabled && h.events != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data.EventsFragment = h.events.Fragment(r.Context())
		}()
	}
	if h.site.Sections.Videos.Enabled && h.videos != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data.VideosFragment = h.videos.Fragment(r.Context())
		}()
	}
	wg.Wait()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homePageTemplate.Execute(w, data); err != nil {
		log.Printf("failed to render home page: %v", err)
		return
	}

	if h.renders != nil {
		h.renders.PageRendered("home")
	}

	// Record the view in the background so a slow database never
	// delays the response.
	if h.views != nil {
		h.views.Record(analytics.View{
			Path:      r.URL.Path,
			IP:        httputil.ClientIP(r),
			UserAgent: r.UserAgent(),
			Referrer:  r.Header.Get("Referer"),
		})
	}
}

type notFoundPageData struct {
	Site  site.Config
	Nonce string
}

// NotFound serves the 404 page. Not-found hits are not recorded as page
// views.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := notFoundPageTemplate.Execute(w, notFoundPageData{Site: h.site, Nonce: httputil.NonceFromContext(r.Context())}); err != nil {
		log.Printf("failed to render not found page: %v", err)
		return
	}
	if h.renders != nil {
		h.renders.PageRendered("not-found")
	}
}
