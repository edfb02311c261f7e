package domain

import (
	"context"
	"time"
)

type SkillCategory string

const (
	CategoryTechnical  SkillCategory = "TECHNICAL"
	CategorySoftSkills SkillCategory = "SOFT_SKILLS"
	CategoryLanguage   SkillCategory = "LANGUAGE"
	CategoryTools      SkillCategory = "TOOLS"
	CategoryIndustry   SkillCategory = "INDUSTRY"
)

func (c SkillCategory) IsValid() bool {
	switch c {
	case CategoryTechnical, CategorySoftSkills, CategoryLanguage, CategoryTools, CategoryIndustry:
		return true
	}
	return false
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "BEGINNER"
	LevelIntermediate SkillLevel = "INTERMEDIATE"
	LevelAdvanced     SkillLevel = "ADVANCED"
	LevelExpert       SkillLevel = "EXPERT"
)

// Skill is an entry of the shared catalog.
type Skill struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type SkillInput struct {
	Name        string        `json:"name" validate:"required,min=2,max=80"`
	Category    SkillCategory `json:"category" validate:"required,oneof=TECHNICAL SOFT_SKILLS LANGUAGE TOOLS INDUSTRY"`
	Description *string       `json:"description" validate:"omitempty,max=500"`
}

// CitizenSkill links a citizen to a catalog skill. Verified is never set by the API.
type CitizenSkill struct {
	ID         string     `json:"id"`
	CitizenID  string     `json:"citizenId"`
	SkillID    string     `json:"skillId"`
	Level      SkillLevel `json:"level"`
	YearsOfExp int        `json:"yearsOfExp"`
	Verified   bool       `json:"verified"`
	CreatedAt  time.Time  `json:"createdAt"`
	Skill      *Skill     `json:"skill,omitempty"`
}

type CitizenSkillInput struct {
	SkillID    string     `json:"skillId" validate:"required,uuid"`
	Level      SkillLevel `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	YearsOfExp *int       `json:"yearsOfExp" validate:"omitempty,gte=0,lte=80"`
}

type CitizenSkillUpdate struct {
	Level      SkillLevel `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	YearsOfExp *int       `json:"yearsOfExp" validate:"omitempty,gte=0,lte=80"`
}

type SkillRepository interface {
	// List returns the catalog ordered by category then name. Empty category means all.
	List(ctx context.Context, category SkillCategory) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	// UpsertByName inserts the skill or refreshes category/description of an existing name.
	UpsertByName(ctx context.Context, skill *Skill) (created bool, err error)
}

type CitizenSkillRepository interface {
	ListByCitizen(ctx context.Context, citizenID string) ([]CitizenSkill, error)
	Exists(ctx context.Context, citizenID, skillID string) (bool, error)
	Create(ctx context.Context, cs *CitizenSkill) error
	// Update and Delete are scoped to citizenID; false means no matching row.
	// Update changes the level and, when given, the years of a row owned by citizenID.
	// It returns nil when no such row exists.
	Update(ctx context.Context, citizenID, id string, patch CitizenSkillUpdate) (*CitizenSkill, error)
	Delete(ctx context.Context, citizenID, id string) (bool, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, category string) ([]Skill, error)
	CreateSkill(ctx context.Context, actor *AuthContext, in *SkillInput) (*Skill, error)
}

type CitizenSkillUsecase interface {
	List(ctx context.Context, actor *AuthContext) ([]CitizenSkill, error)
	Add(ctx context.Context, actor *AuthContext, in *CitizenSkillInput) (*CitizenSkill, error)
	Update(ctx context.Context, actor *AuthContext, id string, in *CitizenSkillUpdate) (*CitizenSkill, error)
	Remove(ctx context.Context, actor *AuthContext, id string) error
}
