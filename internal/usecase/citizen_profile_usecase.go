package usecase

import (
	"context"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/textnorm"

	"github.com/go-playground/validator/v10"
)

type citizenProfileUsecase struct {
	repo     domain.CitizenProfileRepository
	validate *validator.Validate
}

func NewCitizenProfileUsecase(repo domain.CitizenProfileRepository, validate *validator.Validate) domain.CitizenProfileUsecase {
	return &citizenProfileUsecase{
		repo:     repo,
		validate: validate,
	}
}

// GetProfile is public: any caller may view a citizen's profile graph.
func (u *citizenProfileUsecase) GetProfile(ctx context.Context, userID string) (*domain.CitizenProfileDetail, error) {
	detail, err := u.repo.GetDetailByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperror.NotFound(msgProfileNotFound)
	}
	return detail, nil
}

func (u *citizenProfileUsecase) GetOwnProfile(ctx context.Context, actor *domain.AuthContext) (*domain.CitizenProfileDetail, error) {
	if err := RequireRole(actor, domain.RoleCitizen); err != nil {
		return nil, err
	}
	return u.GetProfile(ctx, actor.UserID)
}

func (u *citizenProfileUsecase) UpdateProfile(ctx context.Context, actor *domain.AuthContext, userID string, patch *domain.CitizenProfilePatch) (*domain.CitizenProfile, error) {
	if err := RequireOwnership(actor, userID); err != nil {
		return nil, err
	}

	patch.Bio = trimPtr(patch.Bio)
	patch.Address = trimPtr(patch.Address)
	patch.Phone = textnorm.CleanPtr(patch.Phone)
	if err := validateStruct(u.validate, patch); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return u.current(ctx, userID)
	}

	profile, err := u.repo.Patch(ctx, userID, *patch)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound(msgProfileNotFound)
	}
	return profile, nil
}

func (u *citizenProfileUsecase) current(ctx context.Context, userID string) (*domain.CitizenProfile, error) {
	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound(msgProfileNotFound)
	}
	return profile, nil
}

// trimPtr keeps an explicitly empty value so a field can be cleared.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := textnorm.Clean(*s)
	return &v
}
