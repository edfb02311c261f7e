package usecase

import (
	"context"
	"strings"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
)

type userUsecase struct {
	repo domain.UserRepository
}

func NewUserUsecase(repo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{repo: repo}
}

func (u *userUsecase) ListUsers(ctx context.Context, role string) ([]domain.UserSummary, error) {
	r := domain.Role(strings.ToUpper(strings.TrimSpace(role)))
	if r != "" && !r.IsValid() {
		return nil, apperror.BadRequest("Rol inválido")
	}
	return u.repo.List(ctx, r)
}
