package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories"
	"promessas-api/internal/core/domain"

	"gorm.io/gorm"
)

// ElectionService handles elections
type ElectionService struct {
	electionRepo repositories.ElectionRepository
	cache        Cacher
	ttl          time.Duration
}

// NewElectionService creates a new election service
func NewElectionService(electionRepo repositories.ElectionRepository, cache Cacher, ttl time.Duration) *ElectionService {
	return &ElectionService{
		electionRepo: electionRepo,
		cache:        cache,
		ttl:          ttl,
	}
}

// CreateElectionInput represents election creation input
type CreateElectionInput struct {
	Year        *int
	Description *string
}

// List returns all elections ordered by year
func (s *ElectionService) List(ctx context.Context) ([]models.ElectionResponse, error) {
	return cachedList(ctx, s.cache, keyElections, s.ttl, func() ([]models.ElectionResponse, error) {
		elections, err := s.electionRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.ElectionResponse, 0, len(elections))
		for _, e := range elections {
			out = append(out, e.ToResponse())
		}
		return out, nil
	})
}

// Create creates an election and drops the cached list
func (s *ElectionService) Create(ctx context.Context, input CreateElectionInput) (*models.ElectionResponse, error) {
	if input.Year == nil {
		return nil, domain.ErrElectionYearRequired
	}

	exists, err := s.electionRepo.ExistsByYear(ctx, *input.Year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrElectionDuplicate
	}

	election := &models.Election{
		Year:        *input.Year,
		Description: trimmedOrNil(input.Description),
	}
	if err := s.electionRepo.Create(ctx, election); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrElectionDuplicate
		}
		return nil, err
	}

	s.cache.Delete(ctx, keyElections)

	resp := election.ToResponse()
	return &resp, nil
}

// trimmedOrNil keeps nil as nil and trims the value otherwise
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
