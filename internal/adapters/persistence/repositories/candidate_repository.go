package repositories

import (
	"context"

	"promessas-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const candidateCountColumns = `candidates.*,
	(SELECT COUNT(*) FROM promises p WHERE p.candidate_id = candidates.id) AS promises_count,
	(SELECT COUNT(*) FROM promise_comments pc JOIN promises p ON p.id = pc.promise_id
		WHERE p.candidate_id = candidates.id) AS comments_count`

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func applyCandidateFilter(db *gorm.DB, f CandidateFilter) *gorm.DB {
	db = db.Where("candidates.office_id = ?", f.OfficeID)
	if f.ElectionID != nil {
		db = db.Where("candidates.election_id = ?", *f.ElectionID)
	}
	if f.StateCode != nil {
		db = db.Where("candidates.state_code = ?", *f.StateCode)
	}
	if f.CityID != nil {
		db = db.Where("candidates.city_id = ?", *f.CityID)
	}
	return db
}

// List returns a page of candidates ordered by id with promise/comment counts
func (r *candidateRepository) List(ctx context.Context, filter CandidateFilter, offset, limit int) ([]*models.Candidate, int64, error) {
	var candidates []*models.Candidate
	var total int64

	countQuery := applyCandidateFilter(r.db.WithContext(ctx).Model(&models.Candidate{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyCandidateFilter(r.db.WithContext(ctx).Model(&models.Candidate{}), filter).
		Select(candidateCountColumns).
		Preload("Office").
		Preload("PoliticalParty").
		Preload("Election").
		Preload("City").
		Order("candidates.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&candidates).Error

	return candidates, total, err
}

// GetByID loads a candidate with its associations
func (r *candidateRepository) GetByID(ctx context.Context, id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).
		Preload("Office").
		Preload("PoliticalParty").
		Preload("Election").
		Preload("City").
		Where("id = ?", id).
		First(&candidate).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Exists checks if a candidate exists
func (r *candidateRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Candidate{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts the candidate row only; associations are never upserted
func (r *candidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(candidate).Error
}
