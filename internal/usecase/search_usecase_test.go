package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"talento-local-backend/internal/domain"
	"talento-local-backend/internal/usecase"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchCitizens(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters are cleaned and escaped, limit is fixed", func(t *testing.T) {
		repo := new(MockCitizenProfileRepo)
		repo.On("Search", ctx, domain.CitizenSearchFilter{SkillName: `100\%`, City: "bogot", Department: ""}, domain.MaxSearchResults).
			Return([]domain.CitizenSearchResult{}, nil)

		_, err := usecase.NewSearchUsecase(repo).SearchCitizens(ctx, domain.CitizenSearchFilter{SkillName: "100%", City: "  bogot "})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Never more than fifty rows", func(t *testing.T) {
		many := make([]domain.CitizenSearchResult, 60)
		for i := range many {
			many[i].ID = fmt.Sprint(i)
		}
		repo := new(MockCitizenProfileRepo)
		repo.On("Search", ctx, mock.Anything, domain.MaxSearchResults).Return(many, nil)

		res, err := usecase.NewSearchUsecase(repo).SearchCitizens(ctx, domain.CitizenSearchFilter{})
		require.NoError(t, err)
		assert.Len(t, res, domain.MaxSearchResults)
	})
}

func TestSkillCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Category filter is exact and case-insensitive", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("List", ctx, domain.CategoryLanguage).Return([]domain.Skill{{Name: "Inglés"}}, nil)
		skills, err := usecase.NewSkillUsecase(repo, validation.New(), false).ListSkills(ctx, "language")
		require.NoError(t, err)
		assert.Len(t, skills, 1)

		_, err = usecase.NewSkillUsecase(repo, validation.New(), false).ListSkills(ctx, "MAGIC")
		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})

	t.Run("Anonymous creation needs the opt-in", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Skill")).Return(nil)
		in := func() *domain.SkillInput {
			return &domain.SkillInput{Name: "Kotlin", Category: domain.CategoryTechnical}
		}

		_, err := usecase.NewSkillUsecase(repo, validation.New(), false).CreateSkill(ctx, nil, in())
		assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))

		s, err := usecase.NewSkillUsecase(repo, validation.New(), true).CreateSkill(ctx, nil, in())
		require.NoError(t, err)
		assert.Equal(t, "Kotlin", s.Name)

		_, err = usecase.NewSkillUsecase(repo, validation.New(), false).CreateSkill(ctx, citizen("u-alice"), in())
		assert.NoError(t, err)
	})

	t.Run("Duplicate name is a bad request", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("Create", ctx, mock.Anything).Return(apperror.New(400, "Ya existe una habilidad con este nombre", apperror.ErrDuplicateSkillName))
		_, err := usecase.NewSkillUsecase(repo, validation.New(), true).CreateSkill(ctx, nil, &domain.SkillInput{Name: "Python", Category: domain.CategoryTechnical})
		assert.Equal(t, 400, apperror.CodeOf(err))
		assert.True(t, errors.Is(err, apperror.ErrDuplicateSkillName))
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	repo.On("List", ctx, domain.RoleCompany).Return([]domain.UserSummary{{ID: "u-acme"}}, nil)
	uc := usecase.NewUserUsecase(repo)

	users, err := uc.ListUsers(ctx, "company")
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = uc.ListUsers(ctx, "admin")
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
