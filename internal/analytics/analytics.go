package analytics

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"github.com/sofienekhiari/midlandproject/internal/database"
	"github.com/sofienekhiari/midlandproject/internal/geoip"
)

// View carries the request attributes of a single page view. The raw IP
// and User-Agent never reach the database; they are reduced to a short
// hash and coarse browser/device labels first.
type View struct {
	Path      string
	IP        string
	UserAgent string
	Referrer  string
}

// FailureCounter counts page view rows that could not be written.
type FailureCounter interface {
	ViewRecordFailed()
}

type Recorder struct {
	db       database.DBTX
	geo      *geoip.Resolver
	failures FailureCounter
}

// NewRecorder returns a Recorder writing to db. geo and failures may be
// nil; views are then stored without location and failures are only
// logged.
func NewRecorder(db database.DBTX, geo *geoip.Resolver, failures FailureCounter) *Recorder {
	return &Recorder{db: db, geo: geo, failures: failures}
}

// Record stores the view in a detached goroutine so the page response
// never waits on the database.
func (rec *Recorder) Record(v View) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		hash := viewerHash(v.IP, v.UserAgent)
		ref := categorizeReferrer(v.Referrer)
		browser := parseBrowser(v.UserAgent)
		device := parseDevice(v.UserAgent)
		var country, city string
		if rec.geo != nil {
			country, city = rec.geo.Lookup(v.IP)
		}
		if _, err := rec.db.Exec(ctx,
			`INSERT INTO page_views (id, path, viewer_hash, referrer, browser, device, country, city)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New().String(), v.Path, hash, ref, browser, device, country, city,
		); err != nil {
			slog.Error("analytics: failed to record page view", "path", v.Path, "error", err)
			if rec.failures != nil {
				rec.failures.ViewRecordFailed()
			}
		}
	}()
}

func viewerHash(ip, userAgent string) string {
	h := sha256.Sum256([]byte(ip + "|" + userAgent))
	return fmt.Sprintf("%x", h[:8])
}

func parseBrowser(uaString string) string {
	if uaString == "" {
		return "Other"
	}
	// Edge carries a Chrome token as well, so check it before the
	// library's generic detection.
	if strings.Contains(uaString, "Edg/") || strings.Contains(uaString, "Edge/") {
		return "Edge"
	}
	name, _ := useragent.New(uaString).Browser()
	switch name {
	case "Chrome", "Safari", "Firefox", "Opera":
		return name
	}
	return "Other"
}

func parseDevice(uaString string) string {
	if uaString == "" {
		return "Desktop"
	}
	lower := strings.ToLower(uaString)
	switch {
	case strings.Contains(lower, "ipad"):
		return "Tablet"
	// Android tablets omit the Mobile token.
	case strings.Contains(lower, "android") && !strings.Contains(lower, "mobile"):
		return "Tablet"
	case strings.Contains(lower, "tablet"):
		return "Tablet"
	case useragent.New(uaString).Mobile():
		return "Mobile"
	default:
		return "Desktop"
	}
}

func categorizeReferrer(referer string) string {
	if referer == "" {
		return "Direct"
	}
	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		return "Other"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch {
	case strings.HasPrefix(host, "google.") || strings.HasPrefix(host, "bing.") ||
		strings.HasPrefix(host, "duckduckgo.") || strings.HasPrefix(host, "ecosia."):
		return "Search"
	case host == "facebook.com" || host == "instagram.com" || host == "tiktok.com" ||
		host == "twitter.com" || host == "x.com" ||
		host == "youtube.com" || host == "youtu.be":
		return "Social"
	case strings.HasPrefix(host, "mail.") || strings.HasPrefix(host, "outlook.") ||
		host == "gmx.net" || host == "web.de":
		return "Email"
	default:
		return "Other"
	}
}
