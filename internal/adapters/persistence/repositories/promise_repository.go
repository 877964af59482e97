package repositories

import (
	"context"

	"promessas-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type promiseRepository struct {
	db *gorm.DB
}

// NewPromiseRepository creates a new promise repository
func NewPromiseRepository(db *gorm.DB) PromiseRepository {
	return &promiseRepository{db: db}
}

func newestCommentsFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// ListByCandidate returns promises newest first, each with its comments newest first
func (r *promiseRepository) ListByCandidate(ctx context.Context, candidateID uint) ([]*models.Promise, error) {
	var promises []*models.Promise
	err := r.db.WithContext(ctx).
		Preload("Comments", newestCommentsFirst).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&promises).Error
	return promises, err
}

// GetByID gets a promise by ID with its comments
func (r *promiseRepository) GetByID(ctx context.Context, id uint) (*models.Promise, error) {
	var promise models.Promise
	err := r.db.WithContext(ctx).
		Preload("Comments", newestCommentsFirst).
		Where("id = ?", id).
		First(&promise).Error
	if err != nil {
		return nil, err
	}
	return &promise, nil
}

// Create creates a new promise
func (r *promiseRepository) Create(ctx context.Context, promise *models.Promise) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(promise).Error
}

// Update saves the editable columns of a promise
func (r *promiseRepository) Update(ctx context.Context, promise *models.Promise) error {
	return r.db.WithContext(ctx).
		Model(promise).
		Select("title", "description", "status", "progress", "updated_at").
		Updates(promise).Error
}

// CreateComment creates a new comment
func (r *promiseRepository) CreateComment(ctx context.Context, comment *models.PromiseComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
