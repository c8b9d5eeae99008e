package badges

import (
	"time"

	"github.com/chhavipande/museumyatra/internal/model"
)

// RuleKind selects how a rule's parameters are interpreted
type RuleKind string

const (
	// KindFirstVisit unlocks on the first recorded visit
	KindFirstVisit RuleKind = "first-visit"
	// KindUniqueVisits unlocks once Threshold distinct museums have been visited
	KindUniqueVisits RuleKind = "unique-visits"
	// KindUniqueVisitsWithin unlocks once Threshold distinct museums have
	// been visited within the trailing Window
	KindUniqueVisitsWithin RuleKind = "unique-visits-within"
)

// Rule pairs a badge with its unlock parameters. The catalog is data:
// one evaluator interprets every rule, so adding a badge means adding a
// catalog entry, not another unlock branch.
type Rule struct {
	Badge     model.Badge
	Kind      RuleKind
	Threshold int
	Window    time.Duration
}

// DefaultCatalog returns the badge catalog in unlock-reporting order
func DefaultCatalog() []Rule {
	return []Rule{
		{
			Badge: model.Badge{
				ID:          "novice traveller",
				Title:       "Novice Traveller",
				Description: "Visited your first museum.",
				Criteria:    "Earned on your first museum visit.",
			},
			Kind: KindFirstVisit,
		},
		{
			Badge: model.Badge{
				ID:          "Cultural voyager",
				Title:       "Cultural Voyager",
				Description: "Visited 5 museums.",
				Criteria:    "Earned after 5 unique museum visits.",
			},
			Kind:      KindUniqueVisits,
			Threshold: 5,
		},
		{
			Badge: model.Badge{
				ID:          "heritage seeker",
				Title:       "Heritage Seeker",
				Description: "Visited 10 museums.",
				Criteria:    "Earned after 10 unique museum visits.",
			},
			Kind:      KindUniqueVisits,
			Threshold: 10,
		},
		{
			Badge: model.Badge{
				ID:          "Lightspeed traveller",
				Title:       "Lightspeed Traveller",
				Description: "Fast explorer.",
				Criteria:    "Earned when you visit 3 unique museums within 30 days.",
			},
			Kind:      KindUniqueVisitsWithin,
			Threshold: 3,
			Window:    30 * 24 * time.Hour,
		},
		{
			Badge: model.Badge{
				ID:          "sage traveller",
				Title:       "Sage Traveller",
				Description: "Visited 15 museums.",
				Criteria:    "Earned after 15 unique museum visits.",
			},
			Kind:      KindUniqueVisits,
			Threshold: 15,
		},
		{
			Badge: model.Badge{
				ID:          "traveller of the mortal world",
				Title:       "Traveller of the Mortal World",
				Description: "Visited 20 museums.",
				Criteria:    "Earned after 20 unique museum visits.",
			},
			Kind:      KindUniqueVisits,
			Threshold: 20,
		},
		{
			Badge: model.Badge{
				ID:          "True traveller",
				Title:       "True Traveller",
				Description: "True dedication.",
				Criteria:    "Have visited more than 20 museums.",
			},
			Kind:      KindUniqueVisits,
			Threshold: 21,
		},
	}
}
