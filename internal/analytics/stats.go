package analytics

import (
	"context"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/sofienekhiari/midlandproject/internal/database"
	"github.com/sofienekhiari/midlandproject/internal/httputil"
)

type statsSummary struct {
	TotalViews        int64   `json:"totalViews"`
	UniqueViews       int64   `json:"uniqueViews"`
	ViewsToday        int64   `json:"viewsToday"`
	AverageDailyViews float64 `json:"averageDailyViews"`
	PeakDay           string  `json:"peakDay"`
	PeakDayViews      int64   `json:"peakDayViews"`
}

type dailyViews struct {
	Date        string `json:"date"`
	Views       int64  `json:"views"`
	UniqueViews int64  `json:"uniqueViews"`
}

type breakdownItem struct {
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type statsResponse struct {
	Summary   statsSummary    `json:"summary"`
	Daily     []dailyViews    `json:"daily"`
	Pages     []breakdownItem `json:"pages"`
	Referrers []breakdownItem `json:"referrers"`
	Browsers  []breakdownItem `json:"browsers"`
	Devices   []breakdownItem `json:"devices"`
	Countries []breakdownItem `json:"countries"`
}

// Handler serves the admin statistics endpoint.
type Handler struct {
	db database.DBTX
}

func NewHandler(db database.DBTX) *Handler {
	return &Handler{db: db}
}

const (
	pagesQuery = `SELECT path, COUNT(*) AS cnt
	 FROM page_views WHERE viewed_at >= $1
	 GROUP BY path ORDER BY cnt DESC LIMIT 10`
	referrersQuery = `SELECT referrer, COUNT(*) AS cnt
	 FROM page_views WHERE viewed_at >= $1
	 GROUP BY referrer ORDER BY cnt DESC`
	browsersQuery = `SELECT browser, COUNT(*) AS cnt
	 FROM page_views WHERE viewed_at >= $1
	 GROUP BY browser ORDER BY cnt DESC`
	devicesQuery = `SELECT device, COUNT(*) AS cnt
	 FROM page_views WHERE viewed_at >= $1
	 GROUP BY device ORDER BY cnt DESC`
	countriesQuery = `SELECT country, COUNT(*) AS cnt
	 FROM page_views WHERE viewed_at >= $1 AND country <> ''
	 GROUP BY country ORDER BY cnt DESC LIMIT 10`
)

// Stats handles GET /api/admin/stats. The range query parameter accepts
// 7d, 30d, 90d or all; the default is 7d.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	rangeParam := r.URL.Query().Get("range")
	if rangeParam == "" {
		rangeParam = "7d"
	}

	var days int
	switch rangeParam {
	case "7d":
		days = 7
	case "30d":
		days = 30
	case "90d":
		days = 90
	case "all":
		days = 0
	default:
		httputil.WriteError(w, http.StatusBadRequest, "invalid range: must be 7d, 30d, 90d, or all")
		return
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	var since time.Time
	if days > 0 {
		since = now.AddDate(0, 0, -(days - 1))
	}

	rows, err := h.db.Query(r.Context(),
		`SELECT date_trunc('day', viewed_at) AS day, COUNT(*) AS views, COUNT(DISTINCT viewer_hash) AS unique_views
		 FROM page_views WHERE viewed_at >= $1
		 GROUP BY day ORDER BY day`,
		since,
	)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to query statistics")
		return
	}
	defer rows.Close()

	dataByDate := make(map[string]dailyViews)
	for rows.Next() {
		var day time.Time
		var views, uniqueViews int64
		if err := rows.Scan(&day, &views, &uniqueViews); err != nil {
			httputil.WriteError(w, http.StatusInternalServerError, "failed to scan statistics")
			return
		}
		dateStr := day.Format("2006-01-02")
		dataByDate[dateStr] = dailyViews{
			Date:        dateStr,
			Views:       views,
			UniqueViews: uniqueViews,
		}
	}
	if err := rows.Err(); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to read statistics")
		return
	}

	daily := make([]dailyViews, 0)
	if days > 0 {
		for i := days - 1; i >= 0; i-- {
			d := now.AddDate(0, 0, -i)
			dateStr := d.Format("2006-01-02")
			if entry, ok := dataByDate[dateStr]; ok {
				daily = append(daily, entry)
			} else {
				daily = append(daily, dailyViews{Date: dateStr})
			}
		}
	} else {
		for _, entry := range dataByDate {
			daily = append(daily, entry)
		}
		sortDailyViews(daily)
	}

	httputil.WriteJSON(w, http.StatusOK, statsResponse{
		Summary:   computeSummary(daily, now.Format("2006-01-02")),
		Daily:     daily,
		Pages:     h.breakdown(r.Context(), pagesQuery, since),
		Referrers: h.breakdown(r.Context(), referrersQuery, since),
		Browsers:  h.breakdown(r.Context(), browsersQuery, since),
		Devices:   h.breakdown(r.Context(), devicesQuery, since),
		Countries: h.breakdown(r.Context(), countriesQuery, since),
	})
}

// breakdown runs one of the grouped count queries and converts the rows
// into named shares of the total.
func (h *Handler) breakdown(ctx context.Context, query string, since time.Time) []breakdownItem {
	items := make([]breakdownItem, 0)
	rows, err := h.db.Query(ctx, query, since)
	if err != nil {
		return items
	}
	defer rows.Close()

	var total int64
	for rows.Next() {
		var it breakdownItem
		if err := rows.Scan(&it.Name, &it.Count); err == nil {
			items = append(items, it)
			total += it.Count
		}
	}
	if total > 0 {
		for i := range items {
			items[i].Percentage = math.Round(float64(items[i].Count)/float64(total)*1000) / 10
		}
	}
	return items
}

func computeSummary(daily []dailyViews, todayStr string) statsSummary {
	var summary statsSummary
	for _, d := range daily {
		summary.TotalViews += d.Views
		summary.UniqueViews += d.UniqueViews
		if d.Date == todayStr {
			summary.ViewsToday = d.Views
		}
		if d.Views > summary.PeakDayViews {
			summary.PeakDayViews = d.Views
			summary.PeakDay = d.Date
		}
	}
	if len(daily) > 0 && summary.TotalViews > 0 {
		avg := float64(summary.TotalViews) / float64(len(daily))
		summary.AverageDailyViews = math.Round(avg*10) / 10
	}
	return summary
}

func sortDailyViews(daily []dailyViews) {
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date < daily[j].Date
	})
}
