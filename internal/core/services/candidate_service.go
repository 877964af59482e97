package services

import (
	"context"
	"errors"
	"strings"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/core/eligibility"
	"promessas-api/internal/pkg/pagination"

	"gorm.io/gorm"
)

// CandidateService handles candidate listing and eligibility-checked creation
type CandidateService struct {
	candidateRepo repositories.CandidateRepository
	electionRepo  repositories.ElectionRepository
	partyRepo     repositories.PoliticalPartyRepository
	officeRepo    repositories.OfficeRepository
	locator       eligibility.Locator
}

// NewCandidateService creates a new candidate service
func NewCandidateService(
	candidateRepo repositories.CandidateRepository,
	electionRepo repositories.ElectionRepository,
	partyRepo repositories.PoliticalPartyRepository,
	officeRepo repositories.OfficeRepository,
	stateRepo repositories.StateRepository,
	cityRepo repositories.CityRepository,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		electionRepo:  electionRepo,
		partyRepo:     partyRepo,
		officeRepo:    officeRepo,
		locator:       geoLocator{states: stateRepo, cities: cityRepo},
	}
}

// ListCandidatesInput represents the candidate listing filters
type ListCandidatesInput struct {
	OfficeID   uint
	ElectionID *uint
	StateCode  *int
	CityID     *uint
	Page       int
	Limit      int
}

// CreateCandidateInput represents candidate creation input; nil means absent
type CreateCandidateInput struct {
	Name             string
	Number           *int
	PoliticalPartyID *uint
	ElectionID       *uint
	OfficeID         *uint
	StateCode        *int
	CityID           *uint
}

// List returns a page of candidates for one office
func (s *CandidateService) List(ctx context.Context, input ListCandidatesInput) (*pagination.Response[models.CandidateResponse], error) {
	params := pagination.New(input.Page, input.Limit)
	filter := repositories.CandidateFilter{
		OfficeID:   input.OfficeID,
		ElectionID: input.ElectionID,
		StateCode:  input.StateCode,
		CityID:     input.CityID,
	}

	candidates, total, err := s.candidateRepo.List(ctx, filter, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]models.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, c.ToResponse())
	}

	resp := pagination.NewResponse(items, params, total)
	return &resp, nil
}

// Create validates every reference and the location fields before the single insert.
// Lookups run in order: election, party, office, then geography.
func (s *CandidateService) Create(ctx context.Context, input CreateCandidateInput) (*models.CandidateResponse, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, domain.ErrNameRequired
	case input.OfficeID == nil:
		return nil, domain.ErrOfficeIDRequired
	case input.Number == nil:
		return nil, domain.ErrNumberRequired
	}

	if input.ElectionID != nil {
		if _, err := s.electionRepo.GetByID(ctx, *input.ElectionID); err != nil {
			return nil, notFoundAs(err, domain.ErrElectionNotFound)
		}
	}

	if input.PoliticalPartyID != nil {
		if _, err := s.partyRepo.GetByID(ctx, *input.PoliticalPartyID); err != nil {
			return nil, notFoundAs(err, domain.ErrPartyNotFound)
		}
	}

	office, err := s.officeRepo.GetByID(ctx, *input.OfficeID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrOfficeNotFound)
	}

	placement, err := eligibility.Resolve(ctx, s.locator,
		eligibility.Office{Name: office.Name, Class: office.Class()},
		eligibility.Request{StateCode: input.StateCode, CityID: input.CityID},
	)
	if err != nil {
		return nil, err
	}

	candidate := &models.Candidate{
		Name:             name,
		Number:           *input.Number,
		PoliticalPartyID: input.PoliticalPartyID,
		ElectionID:       input.ElectionID,
		OfficeID:         office.ID,
		StateCode:        placement.StateCode,
		CityID:           placement.CityID,
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	created, err := s.candidateRepo.GetByID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	return &resp, nil
}

// notFoundAs maps gorm.ErrRecordNotFound to the given domain error
func notFoundAs(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// geoLocator adapts the state and city repositories to the eligibility engine
type geoLocator struct {
	states repositories.StateRepository
	cities repositories.CityRepository
}

func (l geoLocator) FindCity(ctx context.Context, id uint) (eligibility.City, bool, error) {
	city, err := l.cities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return eligibility.City{}, false, nil
		}
		return eligibility.City{}, false, err
	}
	return eligibility.City{ID: city.ID, StateCode: city.StateCode}, true, nil
}

func (l geoLocator) StateExists(ctx context.Context, code int) (bool, error) {
	_, err := l.states.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
