package usecase

import (
	"context"
	"fmt"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/textnorm"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	citizens     domain.CitizenProfileRepository
	companies    domain.CompanyProfileRepository
	institutions domain.InstitutionProfileRepository
	validate     *validator.Validate
}

func NewProfileUsecase(
	citizens domain.CitizenProfileRepository,
	companies domain.CompanyProfileRepository,
	institutions domain.InstitutionProfileRepository,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		citizens:     citizens,
		companies:    companies,
		institutions: institutions,
		validate:     validate,
	}
}

// ProfileForUser returns the profile variant matching the caller's role.
func (u *profileUsecase) ProfileForUser(ctx context.Context, actor *domain.AuthContext) (domain.Profile, error) {
	if err := RequireSession(actor); err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.RoleCitizen:
		p, err := u.citizens.GetByUserID(ctx, actor.UserID)
		if err != nil || p == nil {
			return nil, notFoundOr(err)
		}
		return p, nil
	case domain.RoleCompany:
		p, err := u.GetCompanyProfile(ctx, actor)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.RoleInstitution:
		p, err := u.GetInstitutionProfile(ctx, actor)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, apperror.Internal(fmt.Errorf("unknown role %q", actor.Role))
}

func (u *profileUsecase) GetCompanyProfile(ctx context.Context, actor *domain.AuthContext) (*domain.CompanyProfile, error) {
	if err := RequireRole(actor, domain.RoleCompany); err != nil {
		return nil, err
	}
	p, err := u.companies.GetByUserID(ctx, actor.UserID)
	if err != nil || p == nil {
		return nil, notFoundOr(err)
	}
	return p, nil
}

func (u *profileUsecase) UpdateCompanyProfile(ctx context.Context, actor *domain.AuthContext, in *domain.CompanyProfileInput) (*domain.CompanyProfile, error) {
	p, err := u.GetCompanyProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	cleanCompanyInput(in)
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	applyCompanyInput(p, in)
	if err := u.companies.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *profileUsecase) GetInstitutionProfile(ctx context.Context, actor *domain.AuthContext) (*domain.InstitutionProfile, error) {
	if err := RequireRole(actor, domain.RoleInstitution); err != nil {
		return nil, err
	}
	p, err := u.institutions.GetByUserID(ctx, actor.UserID)
	if err != nil || p == nil {
		return nil, notFoundOr(err)
	}
	return p, nil
}

func (u *profileUsecase) UpdateInstitutionProfile(ctx context.Context, actor *domain.AuthContext, in *domain.InstitutionProfileInput) (*domain.InstitutionProfile, error) {
	p, err := u.GetInstitutionProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	cleanInstitutionInput(in)
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	applyInstitutionInput(p, in)
	if err := u.institutions.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func notFoundOr(err error) error {
	if err != nil {
		return err
	}
	return apperror.NotFound(msgProfileNotFound)
}

func cleanCompanyInput(in *domain.CompanyProfileInput) {
	in.CompanyName = textnorm.Clean(in.CompanyName)
	in.Industry = textnorm.Clean(in.Industry)
	in.City = textnorm.Clean(in.City)
	in.Department = textnorm.Clean(in.Department)
	in.Phone = textnorm.CleanPtr(in.Phone)
	in.Website = textnorm.CleanPtr(in.Website)
	in.Description = textnorm.CleanPtr(in.Description)
}

func applyCompanyInput(p *domain.CompanyProfile, in *domain.CompanyProfileInput) {
	p.CompanyName = in.CompanyName
	p.Industry = in.Industry
	p.Size = in.Size
	p.Phone = in.Phone
	p.City = in.City
	p.Department = in.Department
	p.Website = in.Website
	p.Description = in.Description
}

func cleanInstitutionInput(in *domain.InstitutionProfileInput) {
	in.InstitutionName = textnorm.Clean(in.InstitutionName)
	in.InstitutionType = domain.InstitutionType(textnorm.Clean(string(in.InstitutionType)))
	in.City = textnorm.Clean(in.City)
	in.Department = textnorm.Clean(in.Department)
	in.Phone = textnorm.CleanPtr(in.Phone)
	in.Website = textnorm.CleanPtr(in.Website)
	in.Description = textnorm.CleanPtr(in.Description)
}

func applyInstitutionInput(p *domain.InstitutionProfile, in *domain.InstitutionProfileInput) {
	p.InstitutionName = in.InstitutionName
	p.InstitutionType = in.InstitutionType
	p.Phone = in.Phone
	p.City = in.City
	p.Department = in.Department
	p.Website = in.Website
	p.Description = in.Description
}
