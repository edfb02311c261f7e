package usecase

import (
	"context"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	msgSkillNotFound     = "Habilidad no encontrada"
	msgCitizenSkillGone  = "La habilidad no existe en tu perfil"
	msgDuplicateCitSkill = "Ya tienes esta habilidad agregada"
)

type citizenSkillUsecase struct {
	profiles domain.CitizenProfileRepository
	skills   domain.SkillRepository
	repo     domain.CitizenSkillRepository
	validate *validator.Validate
}

func NewCitizenSkillUsecase(
	profiles domain.CitizenProfileRepository,
	skills domain.SkillRepository,
	repo domain.CitizenSkillRepository,
	validate *validator.Validate,
) domain.CitizenSkillUsecase {
	return &citizenSkillUsecase{
		profiles: profiles,
		skills:   skills,
		repo:     repo,
		validate: validate,
	}
}

func (u *citizenSkillUsecase) List(ctx context.Context, actor *domain.AuthContext) ([]domain.CitizenSkill, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByCitizen(ctx, profile.ID)
}

func (u *citizenSkillUsecase) Add(ctx context.Context, actor *domain.AuthContext, in *domain.CitizenSkillInput) (*domain.CitizenSkill, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	skill, err := u.skills.GetByID(ctx, in.SkillID)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperror.NotFound(msgSkillNotFound)
	}

	exists, err := u.repo.Exists(ctx, profile.ID, in.SkillID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict(msgDuplicateCitSkill, apperror.ErrDuplicateSkill)
	}

	cs := &domain.CitizenSkill{
		ID:        uuid.NewString(),
		CitizenID: profile.ID,
		SkillID:   skill.ID,
		Level:     in.Level,
	}
	if in.YearsOfExp != nil {
		cs.YearsOfExp = *in.YearsOfExp
	}
	// The unique constraint still decides when two requests race past Exists.
	if err := u.repo.Create(ctx, cs); err != nil {
		return nil, err
	}
	cs.Skill = skill
	return cs, nil
}

func (u *citizenSkillUsecase) Update(ctx context.Context, actor *domain.AuthContext, id string, in *domain.CitizenSkillUpdate) (*domain.CitizenSkill, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	// Omitted years keep the stored value.
	cs, err := u.repo.Update(ctx, profile.ID, id, *in)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, apperror.NotFound(msgCitizenSkillGone)
	}
	return cs, nil
}

func (u *citizenSkillUsecase) Remove(ctx context.Context, actor *domain.AuthContext, id string) error {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, profile.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound(msgCitizenSkillGone)
	}
	return nil
}
