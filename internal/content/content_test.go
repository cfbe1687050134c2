package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestHTTPSource_FetchSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/events.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	src := NewHTTPSource(upstream.URL + "/")
	data, err := src.Fetch(context.Background(), EventsPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %q", data)
	}
}

func TestHTTPSource_NotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	src := NewHTTPSource(upstream.URL)
	_, err := src.Fetch(context.Background(), VideosPath)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHTTPSource_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	src := NewHTTPSource(upstream.URL)
	_, err := src.Fetch(context.Background(), EventsPath)
	if err == nil {
		t.Fatal("expected error for upstream 500")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("a 500 must not be reported as a missing document")
	}
}

func TestDirSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "videos.txt"), []byte("videos:\n- id: abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewDirSource(dir)

	data, err := src.Fetch(context.Background(), VideosPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(data), "- id: abc") {
		t.Errorf("unexpected content %q", data)
	}

	_, err = src.Fetch(context.Background(), EventsPath)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing file, got %v", err)
	}
}

type recordedFetch struct {
	path string
	ok   bool
}

type stubRecorder struct {
	fetches []recordedFetch
}

func (r *stubRecorder) ObserveFetch(path string, ok bool, elapsed time.Duration) {
	r.fetches = append(r.fetches, recordedFetch{path: path, ok: ok})
}

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	return s.data, s.err
}

func TestInstrumented_RecordsOutcome(t *testing.T) {
	rec := &stubRecorder{}

	ok := Instrument(stubSource{data: []byte("x")}, rec)
	if _, err := ok.Fetch(context.Background(), EventsPath); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	failing := Instrument(stubSource{err: errors.New("boom")}, rec)
	if _, err := failing.Fetch(context.Background(), VideosPath); err == nil {
		t.Fatal("expected error to pass through")
	}

	if len(rec.fetches) != 2 {
		t.Fatalf("expected 2 recorded fetches, got %d", len(rec.fetches))
	}
	if rec.fetches[0] != (recordedFetch{path: EventsPath, ok: true}) {
		t.Errorf("unexpected first record %+v", rec.fetches[0])
	}
	if rec.fetches[1] != (recordedFetch{path: VideosPath, ok: false}) {
		t.Errorf("unexpected second record %+v", rec.fetches[1])
	}
}

type stubPutter struct {
	key         string
	contentType string
	data        []byte
	err         error
}

func (p *stubPutter) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	p.key = key
	p.data = data
	p.contentType = contentType
	return p.err
}

func publishRequest(t *testing.T, h *PublishHandler, doc, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Put("/api/admin/content/{doc}", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/content/"+doc, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestPublishHandler_StoresVideos(t *testing.T) {
	putter := &stubPutter{}
	h := NewPublishHandler(putter, nil)

	recorder := publishRequest(t, h, "videos", "videos:\n- id: abc\n")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if putter.key != VideosPath {
		t.Errorf("expected key %s, got %s", VideosPath, putter.key)
	}
	if putter.contentType != "text/plain; charset=utf-8" {
		t.Errorf("unexpected content type %s", putter.contentType)
	}
}

func TestPublishHandler_RejectsInvalidEvents(t *testing.T) {
	putter := &stubPutter{}
	h := NewPublishHandler(putter, func(data []byte) error {
		return fmt.Errorf("bad payload")
	})

	recorder := publishRequest(t, h, "events", "not json")

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", recorder.Code)
	}
	if putter.key != "" {
		t.Error("invalid document must not be stored")
	}
}

func TestPublishHandler_UnknownDocument(t *testing.T) {
	h := NewPublishHandler(&stubPutter{}, nil)

	recorder := publishRequest(t, h, "gallery", "{}")

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestPublishHandler_TooLarge(t *testing.T) {
	h := NewPublishHandler(&stubPutter{}, nil)

	recorder := publishRequest(t, h, "videos", strings.Repeat("a", maxDocumentBytes+1))

	if recorder.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", recorder.Code)
	}
}
