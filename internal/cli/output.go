package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Museum:
		o.printMuseum(v)
	case MuseumList:
		o.printMuseumList(v)
	case Me:
		o.printMe(v)
	case VisitResult:
		o.printVisitResult(v)
	case Progress:
		o.printProgress(v)
	case BadgeBoard:
		o.printBadgeBoard(v)
	case ToggleResult:
		o.printToggleResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Museum response type (matches API)
type Museum struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city,omitempty"`
	Description string    `json:"description,omitempty"`
	Hours       string    `json:"hours,omitempty"`
	TicketPrice string    `json:"ticket_price,omitempty"`
	FamousFor   []string  `json:"famous_for,omitempty"`
	Memorials   []string  `json:"memorials,omitempty"`
	Exhibits    []Exhibit `json:"exhibits,omitempty"`
}

// Exhibit response type
type Exhibit struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// MuseumList response type
type MuseumList struct {
	Museums []Museum `json:"museums"`
	Count   int      `json:"count"`
}

// Me response type
type Me struct {
	Username  string `json:"username,omitempty"`
	Anonymous bool   `json:"anonymous"`
	Points    int    `json:"points"`
}

// VisitEntry response type
type VisitEntry struct {
	MuseumID string    `json:"museum_id"`
	Date     time.Time `json:"date"`
	Rating   int       `json:"rating,omitempty"`
	Note     string    `json:"note,omitempty"`
}

// Badge response type
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Criteria    string `json:"criteria,omitempty"`
}

// VisitResult response type
type VisitResult struct {
	Entry     VisitEntry `json:"entry"`
	Points    int        `json:"points"`
	NewBadges []Badge    `json:"new_badges"`
}

// VisitedItem response type
type VisitedItem struct {
	Museum Museum     `json:"museum"`
	Entry  VisitEntry `json:"entry"`
}

// Progress response type
type Progress struct {
	Wishlist  []Museum      `json:"wishlist"`
	Visited   []VisitedItem `json:"visited"`
	Favorites []Museum      `json:"favorites"`
	Points    int           `json:"points"`
	Badges    []string      `json:"badges"`
}

// BadgeStatus response type
type BadgeStatus struct {
	Badge    Badge `json:"badge"`
	Unlocked bool  `json:"unlocked"`
}

// BadgeBoard response type
type BadgeBoard struct {
	Badges []BadgeStatus `json:"badges"`
}

// ToggleResult response type
type ToggleResult struct {
	MuseumID string `json:"museum_id"`
	Member   bool   `json:"member"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printMuseum(m Museum) {
	fmt.Printf("Museum: %s (%s)\n", m.Name, m.ID)
	if m.City != "" {
		fmt.Printf("City: %s\n", m.City)
	}
	if m.Hours != "" {
		fmt.Printf("Hours: %s\n", m.Hours)
	}
	if m.TicketPrice != "" {
		fmt.Printf("Tickets: %s\n", m.TicketPrice)
	}
	if m.Description != "" {
		fmt.Printf("\n%s\n", m.Description)
	}
	if len(m.FamousFor) > 0 {
		fmt.Printf("\nFamous for: %s\n", strings.Join(m.FamousFor, ", "))
	}
	if len(m.Memorials) > 0 {
		fmt.Printf("Memorials: %s\n", strings.Join(m.Memorials, ", "))
	}
	if len(m.Exhibits) > 0 {
		fmt.Printf("\nExhibits (%d):\n", len(m.Exhibits))
		for _, e := range m.Exhibits {
			fmt.Printf("  - %s\n", e.Title)
		}
	}
}

func (o *Output) printMuseumList(l MuseumList) {
	fmt.Printf("Museums (%d):\n", l.Count)
	for _, m := range l.Museums {
		city := ""
		if m.City != "" {
			city = " - " + m.City
		}
		fmt.Printf("  %s: %s%s\n", m.ID, m.Name, city)
	}
}

func (o *Output) printMe(m Me) {
	if m.Anonymous {
		fmt.Println("Signed in: no (anonymous journey)")
	} else {
		fmt.Printf("Signed in: %s\n", m.Username)
	}
	fmt.Printf("Points: %d\n", m.Points)
}

func (o *Output) printVisitResult(r VisitResult) {
	fmt.Printf("Visit recorded: %s\n", r.Entry.MuseumID)
	if r.Entry.Rating > 0 {
		fmt.Printf("Rating: %d/5\n", r.Entry.Rating)
	}
	if r.Entry.Note != "" {
		fmt.Printf("Note: %s\n", r.Entry.Note)
	}
	fmt.Printf("Points: %d\n", r.Points)
	for _, b := range r.NewBadges {
		fmt.Printf("Badge unlocked: %s\n", b.Title)
	}
}

func (o *Output) printProgress(p Progress) {
	fmt.Printf("Points: %d\n", p.Points)

	fmt.Printf("\nVisited (%d):\n", len(p.Visited))
	for _, item := range p.Visited {
		rating := ""
		if item.Entry.Rating > 0 {
			rating = fmt.Sprintf(" [%d/5]", item.Entry.Rating)
		}
		fmt.Printf("  - %s (%s)%s\n", item.Museum.Name, item.Entry.Date.Format("2006-01-02"), rating)
	}

	fmt.Printf("\nWishlist (%d):\n", len(p.Wishlist))
	for _, m := range p.Wishlist {
		fmt.Printf("  - %s\n", m.Name)
	}

	fmt.Printf("\nFavorites (%d):\n", len(p.Favorites))
	for _, m := range p.Favorites {
		fmt.Printf("  - %s\n", m.Name)
	}

	if len(p.Badges) > 0 {
		fmt.Printf("\nBadges: %s\n", strings.Join(p.Badges, ", "))
	}
}

func (o *Output) printBadgeBoard(b BadgeBoard) {
	fmt.Printf("Badges (%d):\n", len(b.Badges))
	for _, st := range b.Badges {
		mark := " "
		if st.Unlocked {
			mark = "x"
		}
		fmt.Printf("  [%s] %s - %s\n", mark, st.Badge.Title, st.Badge.Criteria)
	}
}

func (o *Output) printToggleResult(t ToggleResult) {
	state := "removed"
	if t.Member {
		state = "added"
	}
	fmt.Printf("%s: %s\n", t.MuseumID, state)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
