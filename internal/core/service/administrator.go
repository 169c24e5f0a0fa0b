package service

import (
	"context"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

// AdministratorService handles administrator management.
type AdministratorService struct {
	repo AdministratorRepository
}

// NewAdministratorService creates a new AdministratorService.
func NewAdministratorService(repo AdministratorRepository) *AdministratorService {
	return &AdministratorService{repo: repo}
}

// Create validates the draft and stores a new administrator. A draft
// that fails validation returns ErrValidation carrying every violation.
func (s *AdministratorService) Create(ctx context.Context, draft domain.AdministratorDraft) (*domain.Administrator, error) {
	if violations := domain.ValidateAdministratorDraft(draft); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	admin := &domain.Administrator{
		Email:    draft.Email,
		Password: draft.Password,
		Role:     domain.Role(draft.Role),
	}
	if err := s.repo.Insert(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Get retrieves an administrator by ID.
func (s *AdministratorService) Get(ctx context.Context, id int64) (*domain.Administrator, error) {
	return s.repo.Get(ctx, id)
}

// List retrieves one page of administrators. A nil page means the
// first page.
func (s *AdministratorService) List(ctx context.Context, page *int) ([]*domain.Administrator, error) {
	return s.repo.List(ctx, storage.NormalizePage(page))
}
