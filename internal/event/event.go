package event

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Event is one entry of the events document. The JSON wire shape is the
// document's own: date is a plain YYYY-MM-DD calendar date, description
// and ticketUrl are optional.
type Event struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Venue       string `json:"venue"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	TicketURL   string `json:"ticketUrl,omitempty"`
}

const dateLayout = "2006-01-02"

// germanMonths is the fixed three-letter month table used on the site.
var germanMonths = [12]string{"JAN", "FEB", "MÄR", "APR", "MAI", "JUN", "JUL", "AUG", "SEP", "OKT", "NOV", "DEZ"}

// When parses the calendar date in local time. ok is false for dates that
// do not parse; such events cannot be ordered and are dropped upstream.
func (e Event) When() (when time.Time, ok bool) {
	t, err := time.ParseInLocation(dateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseFeed decodes the events document.
func ParseFeed(data []byte) ([]Event, error) {
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events document: %w", err)
	}
	return events, nil
}

// ValidateFeed guards publishes: the document must decode and every entry
// needs a title and a parseable date, otherwise the renderer would drop it
// silently.
func ValidateFeed(data []byte) error {
	events, err := ParseFeed(data)
	if err != nil {
		return err
	}
	for i, e := range events {
		if e.Title == "" {
			return fmt.Errorf("event %d: missing title", i)
		}
		if _, ok := e.When(); !ok {
			return fmt.Errorf("event %d: invalid date %q", i, e.Date)
		}
	}
	return nil
}

// Upcoming returns the events sorted ascending by date, without those
// dated before the start of today in now's location. Entries whose dates
// do not parse are dropped.
func Upcoming(events []Event, now time.Time) []Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	keep := make([]Event, 0, len(events))
	for _, e := range events {
		when, ok := e.When()
		if !ok || when.Before(today) {
			continue
		}
		keep = append(keep, e)
	}

	sort.SliceStable(keep, func(i, j int) bool {
		a, _ := keep[i].When()
		b, _ := keep[j].When()
		return a.Before(b)
	})

	return keep
}
