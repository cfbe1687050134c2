package server

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// staticFileServer serves the embedded assets mounted under /static/ plus
// the well-known files browsers and crawlers request at the root. The page
// itself is rendered, never served from here.
type staticFileServer struct {
	fileServer http.Handler
	fileSystem fs.FS
}

func newStaticFileServer(fsys fs.FS) *staticFileServer {
	return &staticFileServer{
		fileServer: http.StripPrefix("/static/", http.FileServer(http.FS(fsys))),
		fileSystem: fsys,
	}
}

func (s *staticFileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.fileServer.ServeHTTP(w, r)
}

// serveRootFile maps a root-level request like /robots.txt onto the
// embedded asset of the same name.
func (s *staticFileServer) serveRootFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(s.fileSystem, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		_, _ = w.Write(data)
	}
}
