package model

import "strings"

// MuseumID uniquely identifies a museum in the catalog
type MuseumID string

// Museum is a read-only catalog record. The catalog loader normalizes
// the raw JSON's alternative field names into this single shape; the
// rest of the system never sees the raw form.
type Museum struct {
	ID          MuseumID  `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	OpeningTime string    `json:"opening_time,omitempty"`
	ClosingTime string    `json:"closing_time,omitempty"`
	ClosedDays  string    `json:"closed_days,omitempty"`
	TicketPrice string    `json:"ticket_price,omitempty"`
	FamousFor   []string  `json:"famous_for,omitempty"`
	Memorials   []string  `json:"memorials,omitempty"`
	Exhibits    []Exhibit `json:"exhibits,omitempty"`
}

// Exhibit is a notable item on display at a museum
type Exhibit struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// HoursString renders the opening hours and closed days as a single
// display line, e.g. "10:00 - 17:00 • Closed: Monday"
func (m *Museum) HoursString() string {
	var b strings.Builder
	if m.OpeningTime != "" || m.ClosingTime != "" {
		b.WriteString(m.OpeningTime)
		if m.OpeningTime != "" && m.ClosingTime != "" {
			b.WriteString(" - ")
		}
		b.WriteString(m.ClosingTime)
	}
	if m.ClosedDays != "" {
		if b.Len() > 0 {
			b.WriteString(" • ")
		}
		b.WriteString("Closed: ")
		b.WriteString(m.ClosedDays)
	}
	return b.String()
}
