package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"talento-local-backend/internal/domain"
	"talento-local-backend/internal/usecase"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/auth"
	"talento-local-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func aliceRegistration() *domain.CitizenRegistration {
	return &domain.CitizenRegistration{
		Email:           "  Alice@X.com ",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		FirstName:       "Alice",
		LastName:        "Ruiz",
		City:            "Bogotá",
		Department:      "Cundinamarca",
	}
}

func newAuthUsecase(repo *MockUserRepo, pub domain.EventPublisher) domain.AuthUsecase {
	issuer := auth.NewSessionIssuer("test-secret", "talento-local", time.Hour)
	return usecase.NewAuthUsecase(repo, issuer, pub, validation.New())
}

func TestRegisterCitizen(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates exactly one user with its citizen profile", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", ctx, "alice@x.com").Return(nil, nil)
		repo.On("CreateWithProfile", ctx, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.CitizenProfile")).
			Return(nil).Once()

		user, err := newAuthUsecase(repo, nil).RegisterCitizen(ctx, aliceRegistration())
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", user.Email)
		assert.Equal(t, domain.RoleCitizen, user.Role)
		assert.Equal(t, "Alice Ruiz", user.Name)
		require.NotNil(t, user.PasswordHash)
		assert.NotEqual(t, "Passw0rd", *user.PasswordHash)

		profile := repo.Calls[1].Arguments.Get(2).(*domain.CitizenProfile)
		assert.Equal(t, user.ID, profile.UserID)
		assert.Equal(t, "Bogotá", profile.City)
		repo.AssertNumberOfCalls(t, "CreateWithProfile", 1)
	})

	t.Run("Duplicate email creates nothing", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", ctx, "alice@x.com").Return(&domain.User{ID: "u-1"}, nil)

		_, err := newAuthUsecase(repo, nil).RegisterCitizen(ctx, aliceRegistration())
		assert.True(t, errors.Is(err, apperror.ErrDuplicateEmail))
		assert.Equal(t, 409, apperror.CodeOf(err))
		repo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unique constraint race surfaces as duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", ctx, "alice@x.com").Return(nil, nil)
		repo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).
			Return(apperror.Conflict("Este email ya está registrado", apperror.ErrDuplicateEmail))

		_, err := newAuthUsecase(repo, nil).RegisterCitizen(ctx, aliceRegistration())
		assert.True(t, errors.Is(err, apperror.ErrDuplicateEmail))
	})

	t.Run("Weak password and mismatched confirmation are rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		in := aliceRegistration()
		in.Password = "password"
		in.ConfirmPassword = "different"

		_, err := newAuthUsecase(repo, nil).RegisterCitizen(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrValidation))
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Len(t, appErr.Details, 2)
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestRegisterPublishesEvent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	repo.On("GetByEmail", ctx, "acme@x.com").Return(nil, nil)
	repo.On("CreateWithProfile", ctx, mock.Anything, mock.AnythingOfType("*domain.CompanyProfile")).Return(nil)

	pub := new(MockPublisher)
	pub.On("PublishMessage", ctx, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	user, err := newAuthUsecase(repo, pub).RegisterCompany(ctx, &domain.CompanyRegistration{
		Email:           "acme@x.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		CompanyProfileInput: domain.CompanyProfileInput{
			CompanyName: "Acme SAS",
			Industry:    "Software",
			Size:        domain.CompanySizeSmall,
			City:        "Medellín",
			Department:  "Antioquia",
			Website:     strPtr("  "),
		},
	})
	require.NoError(t, err, "broker failures never fail registration")
	assert.Equal(t, domain.RoleCompany, user.Role)
	assert.Equal(t, "Acme SAS", user.Name)

	pub.AssertCalled(t, "PublishMessage", ctx, []byte(user.ID), mock.Anything)
}

func TestRegisterInstitution(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	repo.On("GetByEmail", ctx, "sena@x.com").Return(nil, nil)
	repo.On("CreateWithProfile", ctx, mock.Anything, mock.AnythingOfType("*domain.InstitutionProfile")).Return(nil)

	in := &domain.InstitutionRegistration{
		Email:           "sena@x.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		InstitutionProfileInput: domain.InstitutionProfileInput{
			InstitutionName: "SENA",
			InstitutionType: domain.InstitutionTrainingCenter,
			City:            "Bogotá",
			Department:      "Cundinamarca",
		},
	}
	user, err := newAuthUsecase(repo, nil).RegisterInstitution(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleInstitution, user.Role)

	in.InstitutionType = "Colegio"
	_, err = newAuthUsecase(new(MockUserRepo), nil).RegisterInstitution(ctx, in)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestVerifyCredentials(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	repo := new(MockUserRepo)
	repo.On("GetByEmail", ctx, "alice@x.com").Return(&domain.User{
		ID: "u-alice", Email: "alice@x.com", Name: "Alice Ruiz", Role: domain.RoleCitizen, PasswordHash: &hashed,
	}, nil)
	repo.On("GetByEmail", ctx, "ghost@x.com").Return(nil, nil)
	uc := newAuthUsecase(repo, nil)

	t.Run("Original password succeeds", func(t *testing.T) {
		id, err := uc.VerifyCredentials(ctx, "ALICE@x.com", "Passw0rd")
		require.NoError(t, err)
		assert.Equal(t, "u-alice", id.ID)
		assert.Equal(t, domain.RoleCitizen, id.Role)
	})

	t.Run("Any other password fails", func(t *testing.T) {
		for _, pw := range []string{"passw0rd", "Passw0rd ", "", "Passw0rd1"} {
			_, err := uc.VerifyCredentials(ctx, "alice@x.com", pw)
			assert.True(t, errors.Is(err, apperror.ErrInvalidPassword), pw)
		}
	})

	t.Run("Unknown email is not found", func(t *testing.T) {
		_, err := uc.VerifyCredentials(ctx, "ghost@x.com", "Passw0rd")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("Login issues a session that resolves to the same identity", func(t *testing.T) {
		res, err := uc.Login(ctx, "alice@x.com", "Passw0rd")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.True(t, res.ExpiresAt.After(time.Now()))

		actor, err := uc.ResolveSession("Bearer " + res.Token)
		require.NoError(t, err)
		assert.Equal(t, "u-alice", actor.UserID)
		assert.Equal(t, domain.RoleCitizen, actor.Role)
	})

	t.Run("Garbage session is rejected", func(t *testing.T) {
		_, err := uc.ResolveSession("nope")
		assert.Equal(t, 401, apperror.CodeOf(err))
	})
}
