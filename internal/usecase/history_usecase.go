package usecase

import (
	"context"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/textnorm"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------------

type educationUsecase struct {
	profiles domain.CitizenProfileRepository
	repo     domain.EducationRepository
	validate *validator.Validate
}

func NewEducationUsecase(profiles domain.CitizenProfileRepository, repo domain.EducationRepository, validate *validator.Validate) domain.EducationUsecase {
	return &educationUsecase{profiles: profiles, repo: repo, validate: validate}
}

func (u *educationUsecase) List(ctx context.Context, actor *domain.AuthContext) ([]domain.Education, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByCitizen(ctx, profile.ID)
}

func (u *educationUsecase) prepare(in *domain.Education) error {
	in.Institution = textnorm.Clean(in.Institution)
	in.FieldOfStudy = textnorm.Clean(in.FieldOfStudy)
	in.Degree = textnorm.CleanPtr(in.Degree)
	in.Description = textnorm.CleanPtr(in.Description)
	in.Normalize()
	if err := validateStruct(u.validate, in); err != nil {
		return err
	}
	return checkDates(in.CheckDates())
}

func (u *educationUsecase) Add(ctx context.Context, actor *domain.AuthContext, in *domain.Education) (*domain.Education, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if err := u.prepare(in); err != nil {
		return nil, err
	}

	in.ID = uuid.NewString()
	in.CitizenID = profile.ID
	if err := u.repo.Create(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (u *educationUsecase) Update(ctx context.Context, actor *domain.AuthContext, id string, in *domain.Education) (*domain.Education, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if err := u.prepare(in); err != nil {
		return nil, err
	}

	in.ID = id
	in.CitizenID = profile.ID
	ok, err := u.repo.Update(ctx, in)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("Educación no encontrada")
	}
	return in, nil
}

func (u *educationUsecase) Remove(ctx context.Context, actor *domain.AuthContext, id string) error {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, profile.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Educación no encontrada")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

type experienceUsecase struct {
	profiles domain.CitizenProfileRepository
	repo     domain.ExperienceRepository
	validate *validator.Validate
}

func NewExperienceUsecase(profiles domain.CitizenProfileRepository, repo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{profiles: profiles, repo: repo, validate: validate}
}

func (u *experienceUsecase) List(ctx context.Context, actor *domain.AuthContext) ([]domain.Experience, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByCitizen(ctx, profile.ID)
}

func (u *experienceUsecase) prepare(in *domain.Experience) error {
	in.Company = textnorm.Clean(in.Company)
	in.Position = textnorm.Clean(in.Position)
	in.Description = textnorm.CleanPtr(in.Description)
	in.Normalize()
	if err := validateStruct(u.validate, in); err != nil {
		return err
	}
	return checkDates(in.CheckDates())
}

func (u *experienceUsecase) Add(ctx context.Context, actor *domain.AuthContext, in *domain.Experience) (*domain.Experience, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if err := u.prepare(in); err != nil {
		return nil, err
	}

	in.ID = uuid.NewString()
	in.CitizenID = profile.ID
	if err := u.repo.Create(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (u *experienceUsecase) Update(ctx context.Context, actor *domain.AuthContext, id string, in *domain.Experience) (*domain.Experience, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if err := u.prepare(in); err != nil {
		return nil, err
	}

	in.ID = id
	in.CitizenID = profile.ID
	ok, err := u.repo.Update(ctx, in)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("Experiencia no encontrada")
	}
	return in, nil
}

func (u *experienceUsecase) Remove(ctx context.Context, actor *domain.AuthContext, id string) error {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, profile.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Experiencia no encontrada")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Certifications
// ---------------------------------------------------------------------------

type certificationUsecase struct {
	profiles domain.CitizenProfileRepository
	repo     domain.CertificationRepository
	validate *validator.Validate
}

func NewCertificationUsecase(profiles domain.CitizenProfileRepository, repo domain.CertificationRepository, validate *validator.Validate) domain.CertificationUsecase {
	return &certificationUsecase{profiles: profiles, repo: repo, validate: validate}
}

func (u *certificationUsecase) List(ctx context.Context, actor *domain.AuthContext) ([]domain.Certification, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByCitizen(ctx, profile.ID)
}

func (u *certificationUsecase) Add(ctx context.Context, actor *domain.AuthContext, in *domain.Certification) (*domain.Certification, error) {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}

	in.Name = textnorm.Clean(in.Name)
	in.Issuer = textnorm.Clean(in.Issuer)
	in.ExpiryDate = textnorm.CleanPtr(in.ExpiryDate)
	in.CredentialURL = textnorm.CleanPtr(in.CredentialURL)
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}
	if err := checkDates(in.CheckDates()); err != nil {
		return nil, err
	}

	in.ID = uuid.NewString()
	in.CitizenID = profile.ID
	if err := u.repo.Create(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (u *certificationUsecase) Remove(ctx context.Context, actor *domain.AuthContext, id string) error {
	profile, err := ownCitizenProfile(ctx, u.profiles, actor)
	if err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, profile.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Certificación no encontrada")
	}
	return nil
}
