package repositories

import (
	"context"

	"promessas-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ElectionRepository implementation
type electionRepository struct {
	db *gorm.DB
}

// NewElectionRepository creates a new election repository
func NewElectionRepository(db *gorm.DB) ElectionRepository {
	return &electionRepository{db: db}
}

// List returns all elections ordered by year
func (r *electionRepository) List(ctx context.Context) ([]*models.Election, error) {
	var elections []*models.Election
	err := r.db.WithContext(ctx).Order("year ASC").Find(&elections).Error
	return elections, err
}

// GetByID gets an election by ID
func (r *electionRepository) GetByID(ctx context.Context, id uint) (*models.Election, error) {
	var election models.Election
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&election).Error; err != nil {
		return nil, err
	}
	return &election, nil
}

// ExistsByYear checks if an election year exists
func (r *electionRepository) ExistsByYear(ctx context.Context, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Election{}).Where("year = ?", year).Count(&count).Error
	return count > 0, err
}

// Create creates a new election
func (r *electionRepository) Create(ctx context.Context, election *models.Election) error {
	return r.db.WithContext(ctx).Create(election).Error
}
