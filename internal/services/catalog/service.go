package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/chhavipande/museumyatra/internal/model"
)

// Service provides read-only museum catalog lookup. Museums are loaded
// once at startup and are immutable for the session.
type Service struct {
	mu      sync.RWMutex
	museums []model.Museum
	byID    map[model.MuseumID]int
	loaded  bool
}

// New creates a new catalog service with no museums loaded
func New() *Service {
	return &Service{
		byID: make(map[model.MuseumID]int),
	}
}

// rawMuseum is the on-disk shape. The data file grew organically and
// uses several alternative field names; normalization folds them into
// one model.Museum at load time so lookups never deal with fallbacks.
type rawMuseum struct {
	ID          model.MuseumID  `json:"id"`
	Name        string          `json:"name"`
	City        string          `json:"city"`
	Description string          `json:"description"`
	Desc        string          `json:"desc"`
	Image       string          `json:"image"`
	Img         string          `json:"img"`
	OpeningTime string          `json:"opening_time"`
	Opening     string          `json:"opening"`
	ClosingTime string          `json:"closing_time"`
	Closing     string          `json:"closing"`
	ClosedDays  string          `json:"closed_days"`
	Closed      string          `json:"closed"`
	EntreePrice string          `json:"entree_price"`
	Ticket      string          `json:"ticket"`
	FamousFor   flexibleStrings `json:"famous_for"`
	Memorials   flexibleStrings `json:"memorials"`
	Exhibits    []model.Exhibit `json:"exhibits"`
}

// flexibleStrings decodes either a JSON string or an array of strings
type flexibleStrings []string

func (f *flexibleStrings) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*f = []string{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*f = many
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (r *rawMuseum) normalize() model.Museum {
	return model.Museum{
		ID:          r.ID,
		Name:        r.Name,
		City:        r.City,
		Description: firstNonEmpty(r.Description, r.Desc),
		Image:       firstNonEmpty(r.Image, r.Img),
		OpeningTime: firstNonEmpty(r.OpeningTime, r.Opening),
		ClosingTime: firstNonEmpty(r.ClosingTime, r.Closing),
		ClosedDays:  firstNonEmpty(r.ClosedDays, r.Closed),
		TicketPrice: firstNonEmpty(r.EntreePrice, r.Ticket),
		FamousFor:   r.FamousFor,
		Memorials:   r.Memorials,
		Exhibits:    r.Exhibits,
	}
}

// LoadFromFile loads the catalog from a JSON file containing an array
// of museum records
func (s *Service) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.LoadFromBytes(data)
}

// LoadFromBytes loads the catalog from raw JSON (useful for testing)
func (s *Service) LoadFromBytes(data []byte) error {
	var raw []rawMuseum
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse museum catalog: %w", err)
	}

	museums := make([]model.Museum, 0, len(raw))
	byID := make(map[model.MuseumID]int, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		if _, dup := byID[r.ID]; dup {
			continue
		}
		byID[r.ID] = len(museums)
		museums = append(museums, r.normalize())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.museums = museums
	s.byID = byID
	s.loaded = true
	return nil
}

// Get returns the museum with the given id
func (s *Service) Get(id model.MuseumID) (*model.Museum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, model.ErrCatalogNotLoaded
	}
	idx, ok := s.byID[id]
	if !ok {
		return nil, model.ErrMuseumNotFound
	}
	m := s.museums[idx]
	return &m, nil
}

// List returns all museums in catalog order
func (s *Service) List() []model.Museum {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Museum, len(s.museums))
	copy(result, s.museums)
	return result
}

// Search returns museums whose name, city or description contains the
// query, case-insensitively. An empty query returns the full catalog.
func (s *Service) Search(query string) []model.Museum {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []model.Museum
	for _, m := range s.museums {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.City), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			result = append(result, m)
		}
	}
	return result
}

// Count returns the number of museums in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.museums)
}

// IsLoaded returns whether a catalog has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
