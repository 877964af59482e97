package repositories

import (
	"context"

	"promessas-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// OfficeRepository implementation
type officeRepository struct {
	db *gorm.DB
}

// NewOfficeRepository creates a new office repository
func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &officeRepository{db: db}
}

// List returns offices ordered by id, optionally filtered by type
func (r *officeRepository) List(ctx context.Context, officeType string) ([]*models.Office, error) {
	var offices []*models.Office
	query := r.db.WithContext(ctx).Order("id ASC")
	if officeType != "" {
		query = query.Where("type = ?", officeType)
	}
	err := query.Find(&offices).Error
	return offices, err
}

// GetByID gets an office by ID
func (r *officeRepository) GetByID(ctx context.Context, id uint) (*models.Office, error) {
	var office models.Office
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&office).Error; err != nil {
		return nil, err
	}
	return &office, nil
}

// ExistsByName checks for another office with the same name; excludeID 0 checks all rows
func (r *officeRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Office{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Create creates a new office
func (r *officeRepository) Create(ctx context.Context, office *models.Office) error {
	return r.db.WithContext(ctx).Create(office).Error
}

// Update writes name, description and the pinned geography; type is immutable
func (r *officeRepository) Update(ctx context.Context, office *models.Office) error {
	return r.db.WithContext(ctx).
		Model(office).
		Select("name", "description", "geography", "updated_at").
		Updates(office).Error
}
