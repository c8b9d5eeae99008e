package model

import (
	"slices"
	"time"
)

// VisitEntry records one museum visit. A progress record holds at most
// one entry per museum id; re-visits update the existing entry in place.
type VisitEntry struct {
	MuseumID MuseumID  `json:"museum_id"`
	Date     time.Time `json:"date"`
	Rating   int       `json:"rating,omitempty"` // 1-5, 0 means unrated
	Note     string    `json:"note,omitempty"`
}

// Review is the rating/note pair kept in the reviews map, synced with
// the corresponding visit entry whenever either field is non-empty.
type Review struct {
	Rating int       `json:"rating,omitempty"`
	Note   string    `json:"note,omitempty"`
	Date   time.Time `json:"date"`
}

// ProgressRecord is the per-identity mutable state: collections, points
// and badges. Mutators enforce the membership invariants; the owning
// directory is responsible for persistence.
type ProgressRecord struct {
	Wishlist  []MuseumID           `json:"wishlist"`
	Visited   []VisitEntry         `json:"visited"`
	Favorites []MuseumID           `json:"favorites"`
	Reviews   map[MuseumID]Review  `json:"reviews"`
	Points    int                  `json:"points"`
	Badges    []BadgeID            `json:"badges"`
}

// NewProgressRecord returns an empty progress record
func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{
		Wishlist:  []MuseumID{},
		Visited:   []VisitEntry{},
		Favorites: []MuseumID{},
		Reviews:   map[MuseumID]Review{},
		Badges:    []BadgeID{},
	}
}

// Normalize repairs nil collections on records decoded from older or
// partial blobs so mutators never hit a nil map
func (p *ProgressRecord) Normalize() {
	if p.Wishlist == nil {
		p.Wishlist = []MuseumID{}
	}
	if p.Visited == nil {
		p.Visited = []VisitEntry{}
	}
	if p.Favorites == nil {
		p.Favorites = []MuseumID{}
	}
	if p.Reviews == nil {
		p.Reviews = map[MuseumID]Review{}
	}
	if p.Badges == nil {
		p.Badges = []BadgeID{}
	}
}

// VisitFor returns the visit entry for a museum, or nil if never visited
func (p *ProgressRecord) VisitFor(id MuseumID) *VisitEntry {
	for i := range p.Visited {
		if p.Visited[i].MuseumID == id {
			return &p.Visited[i]
		}
	}
	return nil
}

// HasVisited reports whether a visit has been recorded for the museum
func (p *ProgressRecord) HasVisited(id MuseumID) bool {
	return p.VisitFor(id) != nil
}

// UniqueVisitCount returns the number of distinct museums visited
func (p *ProgressRecord) UniqueVisitCount() int {
	seen := make(map[MuseumID]struct{}, len(p.Visited))
	for _, v := range p.Visited {
		seen[v.MuseumID] = struct{}{}
	}
	return len(seen)
}

// InWishlist reports wishlist membership
func (p *ProgressRecord) InWishlist(id MuseumID) bool {
	return slices.Contains(p.Wishlist, id)
}

// AddToWishlist adds the museum id if not already present.
// Returns false if it was already a member.
func (p *ProgressRecord) AddToWishlist(id MuseumID) bool {
	if p.InWishlist(id) {
		return false
	}
	p.Wishlist = append(p.Wishlist, id)
	return true
}

// RemoveFromWishlist removes the museum id if present.
// Returns false if it was not a member.
func (p *ProgressRecord) RemoveFromWishlist(id MuseumID) bool {
	idx := slices.Index(p.Wishlist, id)
	if idx < 0 {
		return false
	}
	p.Wishlist = slices.Delete(p.Wishlist, idx, idx+1)
	return true
}

// InFavorites reports favorites membership
func (p *ProgressRecord) InFavorites(id MuseumID) bool {
	return slices.Contains(p.Favorites, id)
}

// AddFavorite adds the museum id if not already present
func (p *ProgressRecord) AddFavorite(id MuseumID) bool {
	if p.InFavorites(id) {
		return false
	}
	p.Favorites = append(p.Favorites, id)
	return true
}

// RemoveFavorite removes the museum id if present
func (p *ProgressRecord) RemoveFavorite(id MuseumID) bool {
	idx := slices.Index(p.Favorites, id)
	if idx < 0 {
		return false
	}
	p.Favorites = slices.Delete(p.Favorites, idx, idx+1)
	return true
}

// HasBadge reports whether a badge has been unlocked
func (p *ProgressRecord) HasBadge(id BadgeID) bool {
	return slices.Contains(p.Badges, id)
}

// GrantBadge unlocks a badge. Badges are never revoked; granting an
// already-held badge is a no-op and returns false.
func (p *ProgressRecord) GrantBadge(id BadgeID) bool {
	if p.HasBadge(id) {
		return false
	}
	p.Badges = append(p.Badges, id)
	return true
}

// Clone returns a deep copy, used for snapshot reads so callers cannot
// mutate the directory-owned record
func (p *ProgressRecord) Clone() *ProgressRecord {
	c := &ProgressRecord{
		Wishlist:  slices.Clone(p.Wishlist),
		Visited:   slices.Clone(p.Visited),
		Favorites: slices.Clone(p.Favorites),
		Reviews:   make(map[MuseumID]Review, len(p.Reviews)),
		Points:    p.Points,
		Badges:    slices.Clone(p.Badges),
	}
	for id, r := range p.Reviews {
		c.Reviews[id] = r
	}
	return c
}
