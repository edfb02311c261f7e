package usecase_test

import (
	"context"

	"talento-local-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile domain.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, role domain.Role) ([]domain.UserSummary, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

type MockCitizenProfileRepo struct {
	mock.Mock
}

func (m *MockCitizenProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CitizenProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CitizenProfile), args.Error(1)
}

func (m *MockCitizenProfileRepo) GetDetailByUserID(ctx context.Context, userID string) (*domain.CitizenProfileDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CitizenProfileDetail), args.Error(1)
}

func (m *MockCitizenProfileRepo) Patch(ctx context.Context, userID string, patch domain.CitizenProfilePatch) (*domain.CitizenProfile, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CitizenProfile), args.Error(1)
}

func (m *MockCitizenProfileRepo) Search(ctx context.Context, filter domain.CitizenSearchFilter, limit int) ([]domain.CitizenSearchResult, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]domain.CitizenSearchResult), args.Error(1)
}

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepo) Update(ctx context.Context, p *domain.CompanyProfile) error {
	return m.Called(ctx, p).Error(0)
}

type MockInstitutionProfileRepo struct {
	mock.Mock
}

func (m *MockInstitutionProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.InstitutionProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstitutionProfile), args.Error(1)
}

func (m *MockInstitutionProfileRepo) Update(ctx context.Context, p *domain.InstitutionProfile) error {
	return m.Called(ctx, p).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) List(ctx context.Context, category domain.SkillCategory) ([]domain.Skill, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSkillRepo) UpsertByName(ctx context.Context, s *domain.Skill) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

type MockCitizenSkillRepo struct {
	mock.Mock
}

func (m *MockCitizenSkillRepo) ListByCitizen(ctx context.Context, citizenID string) ([]domain.CitizenSkill, error) {
	args := m.Called(ctx, citizenID)
	return args.Get(0).([]domain.CitizenSkill), args.Error(1)
}

func (m *MockCitizenSkillRepo) Exists(ctx context.Context, citizenID, skillID string) (bool, error) {
	args := m.Called(ctx, citizenID, skillID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCitizenSkillRepo) Create(ctx context.Context, cs *domain.CitizenSkill) error {
	return m.Called(ctx, cs).Error(0)
}

func (m *MockCitizenSkillRepo) Update(ctx context.Context, citizenID, id string, patch domain.CitizenSkillUpdate) (*domain.CitizenSkill, error) {
	args := m.Called(ctx, citizenID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CitizenSkill), args.Error(1)
}

func (m *MockCitizenSkillRepo) Delete(ctx context.Context, citizenID, id string) (bool, error) {
	args := m.Called(ctx, citizenID, id)
	return args.Bool(0), args.Error(1)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) ListByCitizen(ctx context.Context, citizenID string) ([]domain.Education, error) {
	args := m.Called(ctx, citizenID)
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockEducationRepo) Create(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEducationRepo) Update(ctx context.Context, e *domain.Education) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *MockEducationRepo) Delete(ctx context.Context, citizenID, id string) (bool, error) {
	args := m.Called(ctx, citizenID, id)
	return args.Bool(0), args.Error(1)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) ListByCitizen(ctx context.Context, citizenID string) ([]domain.Experience, error) {
	args := m.Called(ctx, citizenID)
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockExperienceRepo) Update(ctx context.Context, e *domain.Experience) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *MockExperienceRepo) Delete(ctx context.Context, citizenID, id string) (bool, error) {
	args := m.Called(ctx, citizenID, id)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishMessage(ctx context.Context, key, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

func citizen(userID string) *domain.AuthContext {
	return &domain.AuthContext{UserID: userID, Email: userID + "@x.com", Role: domain.RoleCitizen}
}

func strPtr(s string) *string { return &s }
