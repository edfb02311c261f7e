package usecase

import (
	"context"
	"strings"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/textnorm"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type skillUsecase struct {
	repo           domain.SkillRepository
	validate       *validator.Validate
	allowAnonymous bool
}

// NewSkillUsecase builds the catalog usecase. allowAnonymous lets callers without a
// session create catalog entries.
func NewSkillUsecase(repo domain.SkillRepository, validate *validator.Validate, allowAnonymous bool) domain.SkillUsecase {
	return &skillUsecase{
		repo:           repo,
		validate:       validate,
		allowAnonymous: allowAnonymous,
	}
}

func (u *skillUsecase) ListSkills(ctx context.Context, category string) ([]domain.Skill, error) {
	c := domain.SkillCategory(strings.ToUpper(strings.TrimSpace(category)))
	if c != "" && !c.IsValid() {
		return nil, apperror.BadRequest("Categoría inválida")
	}
	return u.repo.List(ctx, c)
}

func (u *skillUsecase) CreateSkill(ctx context.Context, actor *domain.AuthContext, in *domain.SkillInput) (*domain.Skill, error) {
	if !u.allowAnonymous {
		if err := RequireSession(actor); err != nil {
			return nil, err
		}
	}

	in.Name = textnorm.Clean(in.Name)
	in.Description = textnorm.CleanPtr(in.Description)
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	skill := &domain.Skill{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := u.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}
