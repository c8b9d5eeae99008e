package journey

import (
	"context"
	"log/slog"

	"github.com/chhavipande/museumyatra/internal/clock"
	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/services/accounts"
	"github.com/chhavipande/museumyatra/internal/services/badges"
	"github.com/chhavipande/museumyatra/internal/services/catalog"
)

// PointsPerVisit is the fixed award for recording a visit
const PointsPerVisit = 10

// Service is the journey state machine over the current identity's
// progress record: visit recording, wishlist/favorite toggles, and the
// read surfaces the dashboard needs.
type Service struct {
	accounts *accounts.Service
	badges   *badges.Service
	catalog  *catalog.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a journey service
func New(
	accountsService *accounts.Service,
	badgeService *badges.Service,
	catalogService *catalog.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts: accountsService,
		badges:   badgeService,
		catalog:  catalogService,
		clock:    clk,
		logger:   logger,
	}
}

// VisitResult reports the outcome of recording a visit: the entry as
// stored, the updated point total, and any badges unlocked by this
// visit, in catalog order. It carries everything a presentation layer
// needs to re-render without further queries.
type VisitResult struct {
	Entry     model.VisitEntry
	Points    int
	NewBadges []model.Badge
}

// RecordVisit records (or refreshes) a visit to the given museum as one
// transaction: upsert the visit entry, sync the review, drop the museum
// from the wishlist, award points and evaluate badges. A rating of 0
// means unrated; an empty note preserves any existing note on re-visit.
func (s *Service) RecordVisit(ctx context.Context, id model.MuseumID, rating int, note string) (*VisitResult, error) {
	// Validate up front: once the mutation starts there is no rollback.
	if _, err := s.catalog.Get(id); err != nil {
		return nil, err
	}
	if rating < 0 || rating > 5 {
		return nil, model.ErrInvalidRating
	}

	now := s.clock.Now()
	result := &VisitResult{}

	s.accounts.Update(ctx, func(p *model.ProgressRecord) {
		entry := p.VisitFor(id)
		if entry != nil {
			// Re-visit: refresh the timestamp, keep existing rating and
			// note unless new ones were supplied
			entry.Date = now
			if rating != 0 {
				entry.Rating = rating
			}
			if note != "" {
				entry.Note = note
			}
		} else {
			p.Visited = append(p.Visited, model.VisitEntry{
				MuseumID: id,
				Date:     now,
				Rating:   rating,
				Note:     note,
			})
			entry = &p.Visited[len(p.Visited)-1]
		}

		if rating != 0 || note != "" {
			p.Reviews[id] = model.Review{
				Rating: entry.Rating,
				Note:   entry.Note,
				Date:   now,
			}
		}

		p.RemoveFromWishlist(id)
		p.Points += PointsPerVisit

		for _, badge := range s.badges.Evaluate(p.Visited, p.Badges, now) {
			p.GrantBadge(badge.ID)
			result.NewBadges = append(result.NewBadges, badge)
		}

		result.Entry = *entry
		result.Points = p.Points
	})

	s.logger.Info("visit recorded",
		slog.String("museum_id", string(id)),
		slog.Int("points", result.Points),
		slog.Int("new_badges", len(result.NewBadges)),
	)

	return result, nil
}

// ToggleWishlist adds the museum to the wishlist, or removes it if
// already present. Returns whether the museum is now wishlisted.
func (s *Service) ToggleWishlist(ctx context.Context, id model.MuseumID) (bool, error) {
	if _, err := s.catalog.Get(id); err != nil {
		return false, err
	}

	var added bool
	s.accounts.Update(ctx, func(p *model.ProgressRecord) {
		if !p.RemoveFromWishlist(id) {
			p.AddToWishlist(id)
			added = true
		}
	})
	return added, nil
}

// ToggleFavorite adds the museum to favorites, or removes it if already
// present. Returns whether the museum is now a favorite.
func (s *Service) ToggleFavorite(ctx context.Context, id model.MuseumID) (bool, error) {
	if _, err := s.catalog.Get(id); err != nil {
		return false, err
	}

	var added bool
	s.accounts.Update(ctx, func(p *model.ProgressRecord) {
		if !p.RemoveFavorite(id) {
			p.AddFavorite(id)
			added = true
		}
	})
	return added, nil
}

// VisitedItem pairs a visit entry with its resolved museum
type VisitedItem struct {
	Museum model.Museum
	Entry  model.VisitEntry
}

// Collections is the dashboard view of the current identity's progress,
// with every museum id resolved against the catalog
type Collections struct {
	Wishlist  []model.Museum
	Visited   []VisitedItem
	Favorites []model.Museum
	Points    int
	Badges    []model.BadgeID
}

// Collections resolves the current progress record against the catalog.
// Ids no longer present in the catalog are skipped. Visited entries
// come back newest-first, the order the dashboard shows them.
func (s *Service) Collections() *Collections {
	p := s.accounts.CurrentProgress()

	c := &Collections{
		Points: p.Points,
		Badges: p.Badges,
	}
	for _, id := range p.Wishlist {
		if m, err := s.catalog.Get(id); err == nil {
			c.Wishlist = append(c.Wishlist, *m)
		}
	}
	for i := len(p.Visited) - 1; i >= 0; i-- {
		entry := p.Visited[i]
		if m, err := s.catalog.Get(entry.MuseumID); err == nil {
			c.Visited = append(c.Visited, VisitedItem{Museum: *m, Entry: entry})
		}
	}
	for _, id := range p.Favorites {
		if m, err := s.catalog.Get(id); err == nil {
			c.Favorites = append(c.Favorites, *m)
		}
	}
	return c
}

// BadgeStatus is a catalog badge plus whether the current identity
// holds it
type BadgeStatus struct {
	Badge    model.Badge
	Unlocked bool
}

// BadgeBoard returns every catalog badge with its unlocked state, in
// catalog order
func (s *Service) BadgeBoard() []BadgeStatus {
	p := s.accounts.CurrentProgress()

	board := make([]BadgeStatus, 0, len(s.badges.Catalog()))
	for _, rule := range s.badges.Catalog() {
		board = append(board, BadgeStatus{
			Badge:    rule.Badge,
			Unlocked: p.HasBadge(rule.Badge.ID),
		})
	}
	return board
}
