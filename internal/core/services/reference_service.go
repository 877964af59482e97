package services

import (
	"context"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories"
	"promessas-api/internal/config"
)

// ReferenceService serves the read-only reference lists through the cache
type ReferenceService struct {
	stateRepo repositories.StateRepository
	cityRepo  repositories.CityRepository
	partyRepo repositories.PoliticalPartyRepository
	cache     Cacher
	ttl       config.CacheConfig
}

// NewReferenceService creates a new reference service
func NewReferenceService(
	stateRepo repositories.StateRepository,
	cityRepo repositories.CityRepository,
	partyRepo repositories.PoliticalPartyRepository,
	cache Cacher,
	ttl config.CacheConfig,
) *ReferenceService {
	return &ReferenceService{
		stateRepo: stateRepo,
		cityRepo:  cityRepo,
		partyRepo: partyRepo,
		cache:     cache,
		ttl:       ttl,
	}
}

// ListStates returns all states ordered by abbreviation
func (s *ReferenceService) ListStates(ctx context.Context) ([]models.StateResponse, error) {
	return cachedList(ctx, s.cache, keyStates, s.ttl.StatesTTL, func() ([]models.StateResponse, error) {
		states, err := s.stateRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.StateResponse, 0, len(states))
		for _, st := range states {
			out = append(out, st.ToResponse())
		}
		return out, nil
	})
}

// ListCities returns the cities of one state ordered by name
func (s *ReferenceService) ListCities(ctx context.Context, stateCode int) ([]models.CityResponse, error) {
	return cachedList(ctx, s.cache, citiesKey(stateCode), s.ttl.CitiesTTL, func() ([]models.CityResponse, error) {
		cities, err := s.cityRepo.ListByState(ctx, stateCode)
		if err != nil {
			return nil, err
		}
		out := make([]models.CityResponse, 0, len(cities))
		for _, c := range cities {
			out = append(out, c.ToResponse())
		}
		return out, nil
	})
}

// ListParties returns all parties ordered by number, then acronym
func (s *ReferenceService) ListParties(ctx context.Context) ([]models.PoliticalPartyResponse, error) {
	return cachedList(ctx, s.cache, keyParties, s.ttl.PartiesTTL, func() ([]models.PoliticalPartyResponse, error) {
		parties, err := s.partyRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.PoliticalPartyResponse, 0, len(parties))
		for _, p := range parties {
			out = append(out, p.ToResponse())
		}
		return out, nil
	})
}
