package badges

import (
	"time"

	"github.com/chhavipande/museumyatra/internal/model"
)

// Service evaluates the badge rule catalog against visit history.
// Evaluation is pure: no clock, no storage, no mutation of its inputs.
type Service struct {
	catalog []Rule
}

// New creates a badge service with the given rule catalog
func New(catalog []Rule) *Service {
	return &Service{catalog: catalog}
}

// NewDefault creates a badge service with the default catalog
func NewDefault() *Service {
	return New(DefaultCatalog())
}

// Catalog returns the rules in catalog order
func (s *Service) Catalog() []Rule {
	return s.catalog
}

// Badge returns the catalog badge with the given id
func (s *Service) Badge(id model.BadgeID) (model.Badge, bool) {
	for _, rule := range s.catalog {
		if rule.Badge.ID == id {
			return rule.Badge, true
		}
	}
	return model.Badge{}, false
}

// Evaluate returns the badges that are newly satisfied by the visit
// history: rules already in held are skipped, so re-running with
// unchanged input yields nothing. Results come back in catalog order.
// now anchors the rolling-window rules.
func (s *Service) Evaluate(visited []model.VisitEntry, held []model.BadgeID, now time.Time) []model.Badge {
	heldSet := make(map[model.BadgeID]struct{}, len(held))
	for _, id := range held {
		heldSet[id] = struct{}{}
	}

	var unlocked []model.Badge
	for _, rule := range s.catalog {
		if _, ok := heldSet[rule.Badge.ID]; ok {
			continue
		}
		if s.satisfied(rule, visited, now) {
			unlocked = append(unlocked, rule.Badge)
		}
	}
	return unlocked
}

func (s *Service) satisfied(rule Rule, visited []model.VisitEntry, now time.Time) bool {
	switch rule.Kind {
	case KindFirstVisit:
		return len(visited) > 0
	case KindUniqueVisits:
		return uniqueMuseums(visited, func(model.VisitEntry) bool { return true }) >= rule.Threshold
	case KindUniqueVisitsWithin:
		cutoff := now.Add(-rule.Window)
		return uniqueMuseums(visited, func(v model.VisitEntry) bool {
			return !v.Date.Before(cutoff)
		}) >= rule.Threshold
	default:
		return false
	}
}

func uniqueMuseums(visited []model.VisitEntry, include func(model.VisitEntry) bool) int {
	seen := make(map[model.MuseumID]struct{}, len(visited))
	for _, v := range visited {
		if include(v) {
			seen[v.MuseumID] = struct{}{}
		}
	}
	return len(seen)
}
