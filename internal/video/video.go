package video

import (
	"bufio"
	"bytes"
	"net/url"
	"strings"
)

// Video is one entry of the curated list: an embed id and an optional
// display title.
type Video struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// EmbedURL returns the privacy-enhanced player URL for a video id.
func EmbedURL(id string) string {
	return "https://www.youtube-nocookie.com/embed/" + url.PathEscape(id)
}

// listScanner builds records from the restricted line format. It has two
// states: no current record, or one record under construction.
type listScanner struct {
	videos  []Video
	current *Video
}

func (s *listScanner) flush() {
	if s.current != nil {
		s.videos = append(s.videos, *s.current)
		s.current = nil
	}
}

func (s *listScanner) start(id string) {
	s.flush()
	s.current = &Video{ID: id}
}

func (s *listScanner) line(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") || line == "videos:" {
		return
	}

	switch {
	case strings.HasPrefix(line, "- id:"):
		s.start(unquote(strings.TrimSpace(strings.TrimPrefix(line, "- id:"))))
	case strings.HasPrefix(line, "id:"):
		// A bare id line only opens a record when none is open.
		if s.current == nil {
			s.start(unquote(strings.TrimSpace(strings.TrimPrefix(line, "id:"))))
		}
	case strings.HasPrefix(line, "title:"):
		if s.current != nil {
			s.current.Title = unquote(strings.TrimSpace(strings.TrimPrefix(line, "title:")))
		}
	}
}

// unquote strips at most one layer of matching surrounding quotes. The
// format supports nothing beyond that: no escapes, no continuation.
func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '"' || first == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// ParseList scans the video list document. Lines are trimmed; blank lines,
// # comments and the top-level "videos:" key line are skipped; "- id:"
// starts a record, flushing any open one; "title:" attaches to the open
// record; the final record is flushed at end of input. The scanner never
// fails: unrecognized lines are ignored and a malformed document simply
// yields fewer records.
func ParseList(data []byte) []Video {
	ls := &listScanner{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		ls.line(sc.Text())
	}
	ls.flush()
	if ls.videos == nil {
		return []Video{}
	}
	return ls.videos
}
