package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chhavipande/museumyatra/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) TestLoadAndGet() {
	err := s.service.LoadFromBytes([]byte(`[
		{"id": "indian-museum-kolkata", "name": "Indian Museum", "city": "Kolkata"}
	]`))
	s.Require().NoError(err)
	s.True(s.service.IsLoaded())
	s.Equal(1, s.service.Count())

	m, err := s.service.Get("indian-museum-kolkata")
	s.Require().NoError(err)
	s.Equal("Indian Museum", m.Name)
	s.Equal("Kolkata", m.City)
}

func (s *ServiceSuite) TestGetBeforeLoad() {
	_, err := s.service.Get("indian-museum-kolkata")
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *ServiceSuite) TestGetUnknownMuseum() {
	s.Require().NoError(s.service.LoadFromBytes([]byte(`[]`)))

	_, err := s.service.Get("atlantis")
	s.ErrorIs(err, model.ErrMuseumNotFound)
}

func (s *ServiceSuite) TestAlternativeFieldNames() {
	err := s.service.LoadFromBytes([]byte(`[
		{"id": "m1", "name": "One", "desc": "short form", "img": "pic.jpg",
		 "opening": "09:00", "closed": "Friday", "ticket": "₹40"}
	]`))
	s.Require().NoError(err)

	m, err := s.service.Get("m1")
	s.Require().NoError(err)
	s.Equal("short form", m.Description)
	s.Equal("pic.jpg", m.Image)
	s.Equal("09:00", m.OpeningTime)
	s.Equal("Friday", m.ClosedDays)
	s.Equal("₹40", m.TicketPrice)
}

func (s *ServiceSuite) TestCanonicalFieldsWinOverFallbacks() {
	err := s.service.LoadFromBytes([]byte(`[
		{"id": "m1", "name": "One", "description": "long form", "desc": "short form"}
	]`))
	s.Require().NoError(err)

	m, err := s.service.Get("m1")
	s.Require().NoError(err)
	s.Equal("long form", m.Description)
}

func (s *ServiceSuite) TestFamousForAcceptsStringOrArray() {
	err := s.service.LoadFromBytes([]byte(`[
		{"id": "m1", "name": "One", "famous_for": "Chola bronzes"},
		{"id": "m2", "name": "Two", "famous_for": ["Mummy", "Fossils"]}
	]`))
	s.Require().NoError(err)

	m1, err := s.service.Get("m1")
	s.Require().NoError(err)
	s.Equal([]string{"Chola bronzes"}, []string(m1.FamousFor))

	m2, err := s.service.Get("m2")
	s.Require().NoError(err)
	s.Equal([]string{"Mummy", "Fossils"}, []string(m2.FamousFor))
}

func (s *ServiceSuite) TestSkipsRecordsWithoutID() {
	err := s.service.LoadFromBytes([]byte(`[
		{"name": "No ID"},
		{"id": "m1", "name": "One"}
	]`))
	s.Require().NoError(err)
	s.Equal(1, s.service.Count())
}

func (s *ServiceSuite) TestSkipsDuplicateIDs() {
	err := s.service.LoadFromBytes([]byte(`[
		{"id": "m1", "name": "First"},
		{"id": "m1", "name": "Second"}
	]`))
	s.Require().NoError(err)
	s.Equal(1, s.service.Count())

	m, err := s.service.Get("m1")
	s.Require().NoError(err)
	s.Equal("First", m.Name)
}

func (s *ServiceSuite) TestSearch() {
	err := s.service.LoadFromBytes([]byte(`[
		{"id": "m1", "name": "Indian Museum", "city": "Kolkata"},
		{"id": "m2", "name": "Salar Jung Museum", "city": "Hyderabad", "description": "National museum"},
		{"id": "m3", "name": "City Palace", "city": "Jaipur"}
	]`))
	s.Require().NoError(err)

	byName := s.service.Search("salar")
	s.Require().Len(byName, 1)
	s.Equal(model.MuseumID("m2"), byName[0].ID)

	byCity := s.service.Search("KOLKATA")
	s.Require().Len(byCity, 1)
	s.Equal(model.MuseumID("m1"), byCity[0].ID)

	byDescription := s.service.Search("national")
	s.Require().Len(byDescription, 1)

	s.Len(s.service.Search("museum"), 2)
	s.Empty(s.service.Search("louvre"))
	s.Len(s.service.Search("  "), 3)
}

func (s *ServiceSuite) TestListPreservesCatalogOrder() {
	err := s.service.LoadFromBytes([]byte(`[
		{"id": "b", "name": "B"},
		{"id": "a", "name": "A"}
	]`))
	s.Require().NoError(err)

	list := s.service.List()
	s.Require().Len(list, 2)
	s.Equal(model.MuseumID("b"), list[0].ID)
	s.Equal(model.MuseumID("a"), list[1].ID)
}

func (s *ServiceSuite) TestLoadRejectsMalformedJSON() {
	err := s.service.LoadFromBytes([]byte(`{not valid`))
	s.Error(err)
	s.False(s.service.IsLoaded())
}
