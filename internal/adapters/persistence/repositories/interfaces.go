package repositories

import (
	"context"

	"promessas-api/internal/adapters/persistence/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// StateRepository defines state repository interface (read only)
type StateRepository interface {
	List(ctx context.Context) ([]*models.State, error)
	GetByCode(ctx context.Context, code int) (*models.State, error)
}

// CityRepository defines city repository interface (read only)
type CityRepository interface {
	ListByState(ctx context.Context, stateCode int) ([]*models.City, error)
	GetByID(ctx context.Context, id uint) (*models.City, error)
}

// PoliticalPartyRepository defines political party repository interface (read only)
type PoliticalPartyRepository interface {
	List(ctx context.Context) ([]*models.PoliticalParty, error)
	GetByID(ctx context.Context, id uint) (*models.PoliticalParty, error)
}

// ElectionRepository defines election repository interface
type ElectionRepository interface {
	List(ctx context.Context) ([]*models.Election, error)
	GetByID(ctx context.Context, id uint) (*models.Election, error)
	ExistsByYear(ctx context.Context, year int) (bool, error)
	Create(ctx context.Context, election *models.Election) error
}

// OfficeRepository defines office repository interface
type OfficeRepository interface {
	// List returns all offices, or only those of officeType when it is not empty
	List(ctx context.Context, officeType string) ([]*models.Office, error)
	GetByID(ctx context.Context, id uint) (*models.Office, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	Create(ctx context.Context, office *models.Office) error
	Update(ctx context.Context, office *models.Office) error
}

// CandidateFilter narrows a candidate listing; nil fields are ignored
type CandidateFilter struct {
	OfficeID   uint
	ElectionID *uint
	StateCode  *int
	CityID     *uint
}

// CandidateRepository defines candidate repository interface
type CandidateRepository interface {
	List(ctx context.Context, filter CandidateFilter, offset, limit int) ([]*models.Candidate, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Candidate, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, candidate *models.Candidate) error
}

// PromiseRepository defines promise and comment repository interface
type PromiseRepository interface {
	ListByCandidate(ctx context.Context, candidateID uint) ([]*models.Promise, error)
	GetByID(ctx context.Context, id uint) (*models.Promise, error)
	Create(ctx context.Context, promise *models.Promise) error
	Update(ctx context.Context, promise *models.Promise) error
	CreateComment(ctx context.Context, comment *models.PromiseComment) error
}

// Repositories groups every repository the HTTP layer wires into services
type Repositories struct {
	Users      UserRepository
	States     StateRepository
	Cities     CityRepository
	Parties    PoliticalPartyRepository
	Elections  ElectionRepository
	Offices    OfficeRepository
	Candidates CandidateRepository
	Promises   PromiseRepository
}
