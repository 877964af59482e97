package services

import (
	"context"
	"math"
	"strings"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/pkg/nullable"
)

// PromiseService handles campaign promises and their comments
type PromiseService struct {
	promiseRepo   repositories.PromiseRepository
	candidateRepo repositories.CandidateRepository
}

// NewPromiseService creates a new promise service
func NewPromiseService(promiseRepo repositories.PromiseRepository, candidateRepo repositories.CandidateRepository) *PromiseService {
	return &PromiseService{
		promiseRepo:   promiseRepo,
		candidateRepo: candidateRepo,
	}
}

// CreatePromiseInput represents promise creation input
type CreatePromiseInput struct {
	Title       string
	Description *string
	Status      *string
	Progress    *float64
}

// UpdatePromiseInput represents a partial promise update.
// A null status resets to NOT_STARTED; a null progress leaves it unchanged.
type UpdatePromiseInput struct {
	Title       nullable.Field[string]
	Description nullable.Field[string]
	Status      nullable.Field[string]
	Progress    nullable.Field[float64]
}

// parseProgress checks the raw value is within [0,100] and rounds it
func parseProgress(raw float64) (int, error) {
	if math.IsNaN(raw) || raw < 0 || raw > 100 {
		return 0, domain.ErrProgressOutOfRange
	}
	return int(math.Round(raw)), nil
}

func parseStatus(raw *string) (domain.PromiseStatus, error) {
	if raw == nil {
		return domain.PromiseNotStarted, nil
	}
	status, ok := domain.ParsePromiseStatus(*raw)
	if !ok {
		return "", domain.ErrInvalidPromiseStatus
	}
	return status, nil
}

func (s *PromiseService) ensureCandidate(ctx context.Context, candidateID uint) error {
	exists, err := s.candidateRepo.Exists(ctx, candidateID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCandidateNotFound
	}
	return nil
}

// ListByCandidate returns a candidate's promises newest first
func (s *PromiseService) ListByCandidate(ctx context.Context, candidateID uint) ([]models.PromiseResponse, error) {
	if err := s.ensureCandidate(ctx, candidateID); err != nil {
		return nil, err
	}

	promises, err := s.promiseRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	out := make([]models.PromiseResponse, 0, len(promises))
	for _, p := range promises {
		out = append(out, p.ToResponse())
	}
	return out, nil
}

// Create adds a promise to a candidate; progress defaults to 0
func (s *PromiseService) Create(ctx context.Context, candidateID uint, input CreatePromiseInput) (*models.PromiseResponse, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrPromiseTitleRequired
	}

	if err := s.ensureCandidate(ctx, candidateID); err != nil {
		return nil, err
	}

	progress := 0
	if input.Progress != nil {
		p, err := parseProgress(*input.Progress)
		if err != nil {
			return nil, err
		}
		progress = p
	}

	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	promise := &models.Promise{
		CandidateID: candidateID,
		Title:       title,
		Description: trimmedOrNil(input.Description),
		Status:      string(status),
		Progress:    progress,
	}
	if err := s.promiseRepo.Create(ctx, promise); err != nil {
		return nil, err
	}

	resp := promise.ToResponse()
	return &resp, nil
}

// Update applies the fields present in input
func (s *PromiseService) Update(ctx context.Context, promiseID uint, input UpdatePromiseInput) (*models.PromiseResponse, error) {
	if !input.Title.Set && !input.Description.Set && !input.Status.Set && !input.Progress.Set {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var progress *int
	if input.Progress.Present() {
		p, err := parseProgress(input.Progress.Value)
		if err != nil {
			return nil, err
		}
		progress = &p
	}

	var status *domain.PromiseStatus
	if input.Status.Set {
		st, err := parseStatus(input.Status.Ptr())
		if err != nil {
			return nil, err
		}
		status = &st
	}

	if input.Title.Set && strings.TrimSpace(input.Title.Value) == "" {
		return nil, domain.ErrPromiseTitleRequired
	}

	promise, err := s.promiseRepo.GetByID(ctx, promiseID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrPromiseNotFound)
	}

	if input.Title.Set {
		promise.Title = strings.TrimSpace(input.Title.Value)
	}
	if input.Description.Set {
		promise.Description = trimmedOrNil(input.Description.Ptr())
	}
	if status != nil {
		promise.Status = string(*status)
	}
	if progress != nil {
		promise.Progress = *progress
	}

	if err := s.promiseRepo.Update(ctx, promise); err != nil {
		return nil, err
	}

	resp := promise.ToResponse()
	return &resp, nil
}

// AddComment appends a trimmed comment to a promise
func (s *PromiseService) AddComment(ctx context.Context, promiseID uint, content string) (*models.PromiseCommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrCommentRequired
	}

	if _, err := s.promiseRepo.GetByID(ctx, promiseID); err != nil {
		return nil, notFoundAs(err, domain.ErrPromiseNotFound)
	}

	comment := &models.PromiseComment{
		PromiseID: promiseID,
		Content:   content,
	}
	if err := s.promiseRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	resp := comment.ToResponse()
	return &resp, nil
}
