package response

import (
	"time"

	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/services/journey"
)

// Museum represents a catalog museum in API responses
type Museum struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Hours       string    `json:"hours,omitempty"`
	TicketPrice string    `json:"ticket_price,omitempty"`
	FamousFor   []string  `json:"famous_for,omitempty"`
	Memorials   []string  `json:"memorials,omitempty"`
	Exhibits    []Exhibit `json:"exhibits,omitempty"`
}

// Exhibit represents a museum exhibit in API responses
type Exhibit struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// MuseumFromModel converts a model.Museum to a response Museum
func MuseumFromModel(m *model.Museum) Museum {
	out := Museum{
		ID:          string(m.ID),
		Name:        m.Name,
		City:        m.City,
		Description: m.Description,
		Image:       m.Image,
		Hours:       m.HoursString(),
		TicketPrice: m.TicketPrice,
		FamousFor:   m.FamousFor,
		Memorials:   m.Memorials,
	}
	for _, e := range m.Exhibits {
		out.Exhibits = append(out.Exhibits, Exhibit{
			Title:       e.Title,
			Description: e.Description,
			Image:       e.Image,
		})
	}
	return out
}

// MuseumList wraps a list of museums
type MuseumList struct {
	Museums []Museum `json:"museums"`
	Count   int      `json:"count"`
}

// MuseumListFromModels converts a slice of model museums
func MuseumListFromModels(museums []model.Museum) MuseumList {
	list := MuseumList{Museums: []Museum{}, Count: len(museums)}
	for i := range museums {
		list.Museums = append(list.Museums, MuseumFromModel(&museums[i]))
	}
	return list
}

// Me describes the current identity
type Me struct {
	Username  string `json:"username,omitempty"`
	Anonymous bool   `json:"anonymous"`
	Points    int    `json:"points"`
}

// VisitEntry represents a recorded visit in API responses
type VisitEntry struct {
	MuseumID string    `json:"museum_id"`
	Date     time.Time `json:"date"`
	Rating   int       `json:"rating,omitempty"`
	Note     string    `json:"note,omitempty"`
}

// VisitEntryFromModel converts a model.VisitEntry
func VisitEntryFromModel(v model.VisitEntry) VisitEntry {
	return VisitEntry{
		MuseumID: string(v.MuseumID),
		Date:     v.Date,
		Rating:   v.Rating,
		Note:     v.Note,
	}
}

// Badge represents a badge in API responses
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Criteria    string `json:"criteria,omitempty"`
}

// BadgeFromModel converts a model.Badge
func BadgeFromModel(b model.Badge) Badge {
	return Badge{
		ID:          string(b.ID),
		Title:       b.Title,
		Description: b.Description,
		Criteria:    b.Criteria,
	}
}

// VisitResult is the response for recording a visit
type VisitResult struct {
	Entry     VisitEntry `json:"entry"`
	Points    int        `json:"points"`
	NewBadges []Badge    `json:"new_badges"`
}

// VisitResultFromService converts a journey.VisitResult
func VisitResultFromService(r *journey.VisitResult) VisitResult {
	out := VisitResult{
		Entry:     VisitEntryFromModel(r.Entry),
		Points:    r.Points,
		NewBadges: []Badge{},
	}
	for _, b := range r.NewBadges {
		out.NewBadges = append(out.NewBadges, BadgeFromModel(b))
	}
	return out
}

// VisitedItem pairs a visit entry with its museum
type VisitedItem struct {
	Museum Museum     `json:"museum"`
	Entry  VisitEntry `json:"entry"`
}

// Progress is the dashboard view of the current identity's journey
type Progress struct {
	Wishlist  []Museum      `json:"wishlist"`
	Visited   []VisitedItem `json:"visited"`
	Favorites []Museum      `json:"favorites"`
	Points    int           `json:"points"`
	Badges    []string      `json:"badges"`
}

// ProgressFromCollections converts journey.Collections
func ProgressFromCollections(c *journey.Collections) Progress {
	p := Progress{
		Wishlist:  []Museum{},
		Visited:   []VisitedItem{},
		Favorites: []Museum{},
		Points:    c.Points,
		Badges:    []string{},
	}
	for i := range c.Wishlist {
		p.Wishlist = append(p.Wishlist, MuseumFromModel(&c.Wishlist[i]))
	}
	for _, item := range c.Visited {
		p.Visited = append(p.Visited, VisitedItem{
			Museum: MuseumFromModel(&item.Museum),
			Entry:  VisitEntryFromModel(item.Entry),
		})
	}
	for i := range c.Favorites {
		p.Favorites = append(p.Favorites, MuseumFromModel(&c.Favorites[i]))
	}
	for _, id := range c.Badges {
		p.Badges = append(p.Badges, string(id))
	}
	return p
}

// BadgeStatus is a catalog badge plus its unlocked state
type BadgeStatus struct {
	Badge    Badge `json:"badge"`
	Unlocked bool  `json:"unlocked"`
}

// BadgeBoard wraps the full badge board
type BadgeBoard struct {
	Badges []BadgeStatus `json:"badges"`
}

// BadgeBoardFromService converts journey badge statuses
func BadgeBoardFromService(statuses []journey.BadgeStatus) BadgeBoard {
	board := BadgeBoard{Badges: []BadgeStatus{}}
	for _, st := range statuses {
		board.Badges = append(board.Badges, BadgeStatus{
			Badge:    BadgeFromModel(st.Badge),
			Unlocked: st.Unlocked,
		})
	}
	return board
}

// ToggleResult reports the state of a collection toggle
type ToggleResult struct {
	MuseumID string `json:"museum_id"`
	Member   bool   `json:"member"`
}
