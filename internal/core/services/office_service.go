package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/pkg/nullable"

	"gorm.io/gorm"
)

// OfficeService handles offices and their geography classes
type OfficeService struct {
	officeRepo repositories.OfficeRepository
	cache      Cacher
	ttl        time.Duration
}

// NewOfficeService creates a new office service
func NewOfficeService(officeRepo repositories.OfficeRepository, cache Cacher, ttl time.Duration) *OfficeService {
	return &OfficeService{
		officeRepo: officeRepo,
		cache:      cache,
		ttl:        ttl,
	}
}

// CreateOfficeInput represents office creation input.
// Empty Type defaults to FEDERAL_ESTADUAL, empty Geography to the default classification.
type CreateOfficeInput struct {
	Name        string
	Description *string
	Type        string
	Geography   string
}

// UpdateOfficeInput represents a partial office update
type UpdateOfficeInput struct {
	Name        nullable.Field[string]
	Description nullable.Field[string]
}

// List returns offices, optionally filtered by a case-insensitive type
func (s *OfficeService) List(ctx context.Context, rawType string) ([]models.OfficeResponse, error) {
	var officeType string
	if strings.TrimSpace(rawType) != "" {
		parsed, ok := domain.ParseOfficeType(rawType)
		if !ok {
			return nil, domain.ErrInvalidOfficeType
		}
		officeType = string(parsed)
	}

	return cachedList(ctx, s.cache, officesKey(officeType), s.ttl, func() ([]models.OfficeResponse, error) {
		offices, err := s.officeRepo.List(ctx, officeType)
		if err != nil {
			return nil, err
		}
		out := make([]models.OfficeResponse, 0, len(offices))
		for _, o := range offices {
			out = append(out, o.ToResponse())
		}
		return out, nil
	})
}

// Create stores an office with its geography class fixed for its lifetime
func (s *OfficeService) Create(ctx context.Context, input CreateOfficeInput) (*models.OfficeResponse, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrOfficeNameRequired
	}

	officeType := domain.OfficeTypeFederalEstadual
	if strings.TrimSpace(input.Type) != "" {
		parsed, ok := domain.ParseOfficeType(input.Type)
		if !ok {
			return nil, domain.ErrInvalidOfficeType
		}
		officeType = parsed
	}

	class := domain.ClassifyOffice(name, officeType)
	if strings.TrimSpace(input.Geography) != "" {
		parsed, ok := domain.ParseGeographyClass(input.Geography)
		if !ok {
			return nil, domain.ErrInvalidGeography
		}
		class = parsed
	}

	exists, err := s.officeRepo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrOfficeDuplicate
	}

	office := &models.Office{
		Name:        name,
		Description: trimmedOrNil(input.Description),
		Type:        string(officeType),
		Geography:   string(class),
	}
	if err := s.officeRepo.Create(ctx, office); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrOfficeDuplicate
		}
		return nil, err
	}

	s.cache.DeleteByPattern(ctx, keyOfficesPrefix)

	resp := office.ToResponse()
	return &resp, nil
}

// Update changes name and/or description. The geography class is not
// recomputed when the office is renamed.
func (s *OfficeService) Update(ctx context.Context, id uint, input UpdateOfficeInput) (*models.OfficeResponse, error) {
	if !input.Name.Set && !input.Description.Set {
		return nil, domain.ErrOfficeNoFields
	}
	if input.Name.Set && strings.TrimSpace(input.Name.Value) == "" {
		return nil, domain.ErrOfficeNameRequired
	}

	office, err := s.officeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfficeNotFoundUpd
		}
		return nil, err
	}

	if input.Name.Set {
		name := strings.TrimSpace(input.Name.Value)
		if name != office.Name {
			taken, err := s.officeRepo.ExistsByName(ctx, name, office.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrOfficeNameTaken
			}
		}
		office.Name = name
	}
	if input.Description.Set {
		office.Description = trimmedOrNil(input.Description.Ptr())
	}
	// keep rows created before the geography column on their current class
	office.Geography = string(office.Class())

	if err := s.officeRepo.Update(ctx, office); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrOfficeNameTaken
		}
		return nil, err
	}

	s.cache.DeleteByPattern(ctx, keyOfficesPrefix)

	resp := office.ToResponse()
	return &resp, nil
}
