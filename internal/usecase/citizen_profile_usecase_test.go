package usecase_test

import (
	"context"
	"errors"
	"testing"

	"talento-local-backend/internal/domain"
	"talento-local-backend/internal/usecase"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCitizenProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Only the supplied field is sent to storage", func(t *testing.T) {
		repo := new(MockCitizenProfileRepo)
		repo.On("Patch", ctx, "u-alice", domain.CitizenProfilePatch{Bio: strPtr("Desarrolladora")}).
			Return(&domain.CitizenProfile{UserID: "u-alice", Bio: strPtr("Desarrolladora"), Address: strPtr("Calle 1")}, nil)

		uc := usecase.NewCitizenProfileUsecase(repo, validation.New())
		p, err := uc.UpdateProfile(ctx, citizen("u-alice"), "u-alice", &domain.CitizenProfilePatch{Bio: strPtr(" Desarrolladora ")})
		require.NoError(t, err)
		assert.Equal(t, "Calle 1", *p.Address)
		repo.AssertExpectations(t)
	})

	t.Run("Another user's profile is forbidden", func(t *testing.T) {
		repo := new(MockCitizenProfileRepo)
		uc := usecase.NewCitizenProfileUsecase(repo, validation.New())
		_, err := uc.UpdateProfile(ctx, citizen("u-bob"), "u-alice", &domain.CitizenProfilePatch{Bio: strPtr("x")})
		assert.True(t, errors.Is(err, apperror.ErrForbidden))
		repo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Anonymous is unauthenticated", func(t *testing.T) {
		uc := usecase.NewCitizenProfileUsecase(new(MockCitizenProfileRepo), validation.New())
		_, err := uc.UpdateProfile(ctx, nil, "u-alice", &domain.CitizenProfilePatch{})
		assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
	})

	t.Run("Invalid job status and phone are rejected", func(t *testing.T) {
		uc := usecase.NewCitizenProfileUsecase(new(MockCitizenProfileRepo), validation.New())
		status := domain.JobStatus("RETIRED")
		_, err := uc.UpdateProfile(ctx, citizen("u-alice"), "u-alice", &domain.CitizenProfilePatch{
			JobStatus: &status,
			Phone:     strPtr("abc"),
		})
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		assert.Len(t, appErr.Details, 2)
	})

	t.Run("Missing profile is not found", func(t *testing.T) {
		repo := new(MockCitizenProfileRepo)
		repo.On("Patch", ctx, "u-alice", mock.Anything).Return(nil, nil)
		uc := usecase.NewCitizenProfileUsecase(repo, validation.New())
		_, err := uc.UpdateProfile(ctx, citizen("u-alice"), "u-alice", &domain.CitizenProfilePatch{Bio: strPtr("x")})
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestGetCitizenProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCitizenProfileRepo)
	repo.On("GetDetailByUserID", ctx, "u-alice").Return(&domain.CitizenProfileDetail{
		CitizenProfile: domain.CitizenProfile{UserID: "u-alice"},
	}, nil)
	repo.On("GetDetailByUserID", ctx, "u-ghost").Return(nil, nil)
	uc := usecase.NewCitizenProfileUsecase(repo, validation.New())

	d, err := uc.GetProfile(ctx, "u-alice")
	require.NoError(t, err)
	assert.Equal(t, "u-alice", d.UserID)

	_, err = uc.GetProfile(ctx, "u-ghost")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = uc.GetOwnProfile(ctx, &domain.AuthContext{UserID: "u-acme", Role: domain.RoleCompany})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestProfileForUser(t *testing.T) {
	ctx := context.Background()
	citizens := new(MockCitizenProfileRepo)
	companies := new(MockCompanyProfileRepo)
	institutions := new(MockInstitutionProfileRepo)
	citizens.On("GetByUserID", ctx, "u-alice").Return(&domain.CitizenProfile{UserID: "u-alice"}, nil)
	companies.On("GetByUserID", ctx, "u-acme").Return(&domain.CompanyProfile{UserID: "u-acme"}, nil)
	institutions.On("GetByUserID", ctx, "u-sena").Return(nil, nil)
	uc := usecase.NewProfileUsecase(citizens, companies, institutions, validation.New())

	p, err := uc.ProfileForUser(ctx, citizen("u-alice"))
	require.NoError(t, err)
	assert.IsType(t, &domain.CitizenProfile{}, p)

	p, err = uc.ProfileForUser(ctx, &domain.AuthContext{UserID: "u-acme", Role: domain.RoleCompany})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCompany, p.ProfileRole())

	p, err = uc.ProfileForUser(ctx, &domain.AuthContext{UserID: "u-sena", Role: domain.RoleInstitution})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Nil(t, p)

	_, err = uc.GetCompanyProfile(ctx, citizen("u-alice"))
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestUpdateCompanyProfile(t *testing.T) {
	ctx := context.Background()
	companies := new(MockCompanyProfileRepo)
	companies.On("GetByUserID", ctx, "u-acme").Return(&domain.CompanyProfile{ID: "cp-1", UserID: "u-acme"}, nil)
	companies.On("Update", ctx, mock.AnythingOfType("*domain.CompanyProfile")).Return(nil)
	uc := usecase.NewProfileUsecase(new(MockCitizenProfileRepo), companies, new(MockInstitutionProfileRepo), validation.New())

	p, err := uc.UpdateCompanyProfile(ctx, &domain.AuthContext{UserID: "u-acme", Role: domain.RoleCompany}, &domain.CompanyProfileInput{
		CompanyName: "Acme",
		Industry:    "Software",
		Size:        domain.CompanySizeHuge,
		City:        "Cali",
		Department:  "Valle del Cauca",
	})
	require.NoError(t, err)
	assert.Equal(t, "cp-1", p.ID)
	assert.Equal(t, domain.CompanySizeHuge, p.Size)

	_, err = uc.UpdateCompanyProfile(ctx, &domain.AuthContext{UserID: "u-acme", Role: domain.RoleCompany}, &domain.CompanyProfileInput{
		CompanyName: "Acme", Industry: "Software", Size: "2-5", City: "Cali", Department: "Valle",
	})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
