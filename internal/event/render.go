package event

import (
	"bytes"
	"fmt"
	"html/template"
)

// User-facing fallback copy, German like the rest of the site.
const (
	FallbackUnavailable = "Termine können im Moment nicht geladen werden. Bitte versuchen Sie es später erneut."
	FallbackNone        = "Zurzeit sind keine Termine geplant."
)

// revealStepMillis staggers the entrance of consecutive rows once the
// section scrolls into view.
const revealStepMillis = 80

type eventRow struct {
	Day         string
	Month       string
	Year        string
	Title       string
	Description string
	Venue       string
	Location    string
	TicketURL   string
	Delay       int
}

var rowsTemplate = template.Must(template.New("event-rows").Parse(`{{range .}}<article class="event-row reveal-item" style="transition-delay: {{.Delay}}ms">
    <div class="event-date">
        <span class="event-day">{{.Day}}</span>
        <span class="event-month">{{.Month}}</span>
        <span class="event-year">{{.Year}}</span>
    </div>
    <div class="event-body">
        <h3 class="event-title">{{.Title}}</h3>
        {{if .Description}}<p class="event-description">{{.Description}}</p>
        {{end}}<p class="event-meta">{{.Venue}} · {{.Location}}</p>
    </div>
    {{if .TicketURL}}<a class="event-tickets" href="{{.TicketURL}}" target="_blank" rel="noopener">Tickets</a>
    {{end}}</article>
{{end}}`))

func rows(events []Event) []eventRow {
	out := make([]eventRow, 0, len(events))
	for i, e := range events {
		when, ok := e.When()
		if !ok {
			continue
		}
		out = append(out, eventRow{
			Day:         fmt.Sprintf("%02d", when.Day()),
			Month:       germanMonths[when.Month()-1],
			Year:        fmt.Sprintf("%04d", when.Year()),
			Title:       e.Title,
			Description: e.Description,
			Venue:       e.Venue,
			Location:    e.Location,
			TicketURL:   e.TicketURL,
			Delay:       i * revealStepMillis,
		})
	}
	return out
}

// RenderRows renders the upcoming events as escaped HTML rows.
func RenderRows(events []Event) (template.HTML, error) {
	var buf bytes.Buffer
	if err := rowsTemplate.Execute(&buf, rows(events)); err != nil {
		return "", fmt.Errorf("render event rows: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func messageFragment(msg string) template.HTML {
	return template.HTML(`<p class="section-fallback">` + template.HTMLEscapeString(msg) + `</p>`)
}
