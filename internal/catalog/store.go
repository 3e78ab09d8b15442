package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Store is the read-only catalog shared by the page generator and the
// path-correction middleware. Built once at startup, never mutated, so it is
// safe to read from any number of request goroutines without locking.
type Store struct {
	locations []Location
	services  []Service
	locBySlug map[string]Location
	svcBySlug map[string]Service
}

// NewStore validates every record and indexes both collections by slug.
// A missing state/county or a duplicate slug fails the whole load — better a
// startup error than a malformed page path discovered in production.
func NewStore(locations []Location, services []Service) (*Store, error) {
	v := validator.New()

	s := &Store{
		locations: locations,
		services:  services,
		locBySlug: make(map[string]Location, len(locations)),
		svcBySlug: make(map[string]Service, len(services)),
	}

	for i, loc := range locations {
		if err := v.Struct(loc); err != nil {
			return nil, fmt.Errorf("invalid location at index %d (slug %q): %w", i, loc.Slug, err)
		}
		if _, exists := s.locBySlug[loc.Slug]; exists {
			return nil, fmt.Errorf("duplicate location slug %q", loc.Slug)
		}
		s.locBySlug[loc.Slug] = loc
	}

	for i, svc := range services {
		if err := v.Struct(svc); err != nil {
			return nil, fmt.Errorf("invalid service at index %d (slug %q): %w", i, svc.Slug, err)
		}
		if _, exists := s.svcBySlug[svc.Slug]; exists {
			return nil, fmt.Errorf("duplicate service slug %q", svc.Slug)
		}
		s.svcBySlug[svc.Slug] = svc
	}

	return s, nil
}

func (s *Store) LocationBySlug(slug string) (Location, bool) {
	loc, ok := s.locBySlug[slug]
	return loc, ok
}

func (s *Store) ServiceBySlug(slug string) (Service, bool) {
	svc, ok := s.svcBySlug[slug]
	return svc, ok
}

// Locations returns the full collection in authored order. Callers must not
// modify the returned slice.
func (s *Store) Locations() []Location {
	return s.locations
}

// Services returns the full collection in authored order.
func (s *Store) Services() []Service {
	return s.services
}

func (s *Store) LocationsInCounty(county string) []Location {
	var out []Location
	for _, loc := range s.locations {
		if loc.County == county {
			out = append(out, loc)
		}
	}
	return out
}

func (s *Store) LocationsInState(state string) []Location {
	var out []Location
	for _, loc := range s.locations {
		if loc.State == state {
			out = append(out, loc)
		}
	}
	return out
}
