package repositories

import (
	"context"

	"promessas-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ============================================================
// States
// ============================================================

type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

// List returns all states ordered by abbreviation
func (r *stateRepository) List(ctx context.Context) ([]*models.State, error) {
	var states []*models.State
	err := r.db.WithContext(ctx).Order("abbreviation ASC").Find(&states).Error
	return states, err
}

// GetByCode gets a state by IBGE code
func (r *stateRepository) GetByCode(ctx context.Context, code int) (*models.State, error) {
	var state models.State
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

// ============================================================
// Cities
// ============================================================

type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new city repository
func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

// ListByState returns the cities of a state ordered by name
func (r *cityRepository) ListByState(ctx context.Context, stateCode int) ([]*models.City, error) {
	var cities []*models.City
	err := r.db.WithContext(ctx).
		Where("state_code = ?", stateCode).
		Order("name ASC").
		Find(&cities).Error
	return cities, err
}

// GetByID gets a city by ID
func (r *cityRepository) GetByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

// ============================================================
// Political parties
// ============================================================

type politicalPartyRepository struct {
	db *gorm.DB
}

// NewPoliticalPartyRepository creates a new political party repository
func NewPoliticalPartyRepository(db *gorm.DB) PoliticalPartyRepository {
	return &politicalPartyRepository{db: db}
}

// List returns all parties ordered by ballot number, then acronym
func (r *politicalPartyRepository) List(ctx context.Context) ([]*models.PoliticalParty, error) {
	var parties []*models.PoliticalParty
	err := r.db.WithContext(ctx).Order("number ASC").Order("acronym ASC").Find(&parties).Error
	return parties, err
}

// GetByID gets a party by ID
func (r *politicalPartyRepository) GetByID(ctx context.Context, id uint) (*models.PoliticalParty, error) {
	var party models.PoliticalParty
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&party).Error; err != nil {
		return nil, err
	}
	return &party, nil
}
