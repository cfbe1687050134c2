package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/sofienekhiari/midlandproject/internal/analytics"
	"github.com/sofienekhiari/midlandproject/internal/content"
	"github.com/sofienekhiari/midlandproject/internal/event"
	"github.com/sofienekhiari/midlandproject/internal/httputil"
	"github.com/sofienekhiari/midlandproject/internal/site"
	"github.com/sofienekhiari/midlandproject/internal/video"
)

const eventsDoc = `[{"title":"Sommerfest","venue":"Stadthalle","location":"Celle","date":"2099-06-20","ticketUrl":"https://tickets.example.com/sommerfest"}]`

const videosDoc = "videos:\n  - id: dQw4w9WgXcQ\n    title: \"Live in Hamburg\"\n"

// stubSource serves fixed documents by path.
type stubSource struct {
	docs map[string][]byte
	errs map[string]error
}

func (s *stubSource) Fetch(_ context.Context, path string) ([]byte, error) {
	if err := s.errs[path]; err != nil {
		return nil, err
	}
	doc, ok := s.docs[path]
	if !ok {
		return nil, content.ErrNotFound
	}
	return doc, nil
}

// countingSource fails every fetch and counts how often it was asked.
type countingSource struct {
	calls atomic.Int32
}

func (s *countingSource) Fetch(context.Context, string) ([]byte, error) {
	s.calls.Add(1)
	return nil, content.ErrNotFound
}

type stubRenderCounter struct {
	routes []string
}

func (s *stubRenderCounter) PageRendered(route string) {
	s.routes = append(s.routes, route)
}

func serveHome(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(httputil.ContextWithNonce(req.Context(), "test-nonce"))
	recorder := httptest.NewRecorder()
	h.Home(recorder, req)
	return recorder
}

func TestHomeRendersBothSections(t *testing.T) {
	src := &stubSource{docs: map[string][]byte{
		content.EventsPath: []byte(eventsDoc),
		content.VideosPath: []byte(videosDoc),
	}}
	handler := NewHandler(site.Default(), event.NewHandler(src), video.NewHandler(src), nil, nil)

	recorder := serveHome(t, handler)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}

	body := recorder.Body.String()
	for _, want := range []string{
		`nonce="test-nonce"`,
		"Sommerfest",
		"https://tickets.example.com/sommerfest",
		"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		"Live in Hamburg",
		"<h2>Termine</h2>",
		"<h2>Videos</h2>",
		`id="contact-form"`,
		"IntersectionObserver",
		`id="menu-toggle"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestHomeEventsFailureLeavesVideosIntact(t *testing.T) {
	src := &stubSource{
		docs: map[string][]byte{content.VideosPath: []byte(videosDoc)},
		errs: map[string]error{content.EventsPath: content.ErrNotFound},
	}
	handler := NewHandler(site.Default(), event.NewHandler(src), video.NewHandler(src), nil, nil)

	body := serveHome(t, handler).Body.String()

	if !strings.Contains(body, event.FallbackUnavailable) {
		t.Error("expected the events fallback message")
	}
	if !strings.Contains(body, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ") {
		t.Error("expected the videos section to render despite the events failure")
	}
}

func TestHomeVideosFailureLeavesEventsIntact(t *testing.T) {
	src := &stubSource{
		docs: map[string][]byte{content.EventsPath: []byte(eventsDoc)},
		errs: map[string]error{content.VideosPath: content.ErrNotFound},
	}
	handler := NewHandler(site.Default(), event.NewHandler(src), video.NewHandler(src), nil, nil)

	body := serveHome(t, handler).Body.String()

	if !strings.Contains(body, video.FallbackNone) {
		t.Error("expected the videos fallback message")
	}
	if !strings.Contains(body, "Sommerfest") {
		t.Error("expected the events section to render despite the videos failure")
	}
}

func TestHomeDisabledSectionNeverLoads(t *testing.T) {
	cfg := site.Default()
	cfg.Sections.Videos.Enabled = false

	eventsSrc := &stubSource{docs: map[string][]byte{content.EventsPath: []byte(eventsDoc)}}
	videosSrc := &countingSource{}
	handler := NewHandler(cfg, event.NewHandler(eventsSrc), video.NewHandler(videosSrc), nil, nil)

	body := serveHome(t, handler).Body.String()

	if strings.Contains(body, `id="videos"`) {
		t.Error("expected the videos section to be absent")
	}
	if got := videosSrc.calls.Load(); got != 0 {
		t.Errorf("expected the videos loader to never run, got %d fetches", got)
	}
	if !strings.Contains(body, "Sommerfest") {
		t.Error("expected the events section to still render")
	}
}

func TestHomeCountsRender(t *testing.T) {
	src := &stubSource{docs: map[string][]byte{
		content.EventsPath: []byte(eventsDoc),
		content.VideosPath: []byte(videosDoc),
	}}
	renders := &stubRenderCounter{}
	handler := NewHandler(site.Default(), event.NewHandler(src), video.NewHandler(src), nil, renders)

	serveHome(t, handler)

	if len(renders.routes) != 1 || renders.routes[0] != "home" {
		t.Errorf("expected one render of route home, got %v", renders.routes)
	}
}

func TestHomeRecordsPageView(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec("INSERT INTO page_views").
		WithArgs(pgxmock.AnyArg(), "/", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	src := &stubSource{docs: map[string][]byte{
		content.EventsPath: []byte(eventsDoc),
		content.VideosPath: []byte(videosDoc),
	}}
	handler := NewHandler(site.Default(), event.NewHandler(src), video.NewHandler(src), analytics.NewRecorder(mock, nil, nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:4711"
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://www.google.de/search")
	recorder := httptest.NewRecorder()
	handler.Home(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	// Give the goroutine time to execute
	time.Sleep(100 * time.Millisecond)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestNotFoundPage(t *testing.T) {
	handler := NewHandler(site.Default(), nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	recorder := httptest.NewRecorder()
	handler.NotFound(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Seite nicht gefunden") {
		t.Error("expected the German not-found message")
	}
}
