package domain

import (
	"context"
	"time"
)

type Gender string

const (
	GenderMale         Gender = "MALE"
	GenderFemale       Gender = "FEMALE"
	GenderOther        Gender = "OTHER"
	GenderPreferNotSay Gender = "PREFER_NOT_SAY"
)

type ZoneType string

const (
	ZoneUrban ZoneType = "URBAN"
	ZoneRural ZoneType = "RURAL"
)

type JobStatus string

const (
	JobStatusEmployed     JobStatus = "EMPLOYED"
	JobStatusSeeking      JobStatus = "SEEKING"
	JobStatusOpenToOffers JobStatus = "OPEN_TO_OFFERS"
	JobStatusNotSeeking   JobStatus = "NOT_SEEKING"
)

// Profile is the role-specific record attached to a user. Exactly one of
// *CitizenProfile, *CompanyProfile or *InstitutionProfile.
type Profile interface {
	ProfileRole() Role
	OwnerID() string
	isProfile()
}

type CitizenProfile struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Phone       *string    `json:"phone"`
	DateOfBirth *string    `json:"dateOfBirth"`
	Gender      *Gender    `json:"gender"`
	City        string     `json:"city"`
	Department  string     `json:"department"`
	ZoneType    *ZoneType  `json:"zoneType"`
	Bio         *string    `json:"bio"`
	Address     *string    `json:"address"`
	JobStatus   *JobStatus `json:"jobStatus"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *CitizenProfile) ProfileRole() Role { return RoleCitizen }
func (p *CitizenProfile) OwnerID() string   { return p.UserID }
func (p *CitizenProfile) isProfile()        {}

// FullName is used as the display name of the owning user.
func (p *CitizenProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// CitizenProfilePatch is a partial update; nil fields are left untouched.
type CitizenProfilePatch struct {
	Bio       *string    `json:"bio" validate:"omitempty,max=1000"`
	Address   *string    `json:"address" validate:"omitempty,max=200"`
	Phone     *string    `json:"phone" validate:"omitempty,valid_phone"`
	JobStatus *JobStatus `json:"jobStatus" validate:"omitempty,oneof=EMPLOYED SEEKING OPEN_TO_OFFERS NOT_SEEKING"`
}

func (p CitizenProfilePatch) IsEmpty() bool {
	return p.Bio == nil && p.Address == nil && p.Phone == nil && p.JobStatus == nil
}

// CitizenProfileDetail is the full public graph of a citizen.
type CitizenProfileDetail struct {
	CitizenProfile
	User           UserRef         `json:"user"`
	Skills         []CitizenSkill  `json:"skills"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
}

type CompanySize string

const (
	CompanySizeMicro  CompanySize = "1-10"
	CompanySizeSmall  CompanySize = "11-50"
	CompanySizeMedium CompanySize = "51-200"
	CompanySizeLarge  CompanySize = "201-500"
	CompanySizeHuge   CompanySize = "500+"
)

type CompanyProfile struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	CompanyName string      `json:"companyName"`
	Industry    string      `json:"industry"`
	Size        CompanySize `json:"size"`
	Phone       *string     `json:"phone"`
	City        string      `json:"city"`
	Department  string      `json:"department"`
	Website     *string     `json:"website"`
	Description *string     `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (p *CompanyProfile) ProfileRole() Role { return RoleCompany }
func (p *CompanyProfile) OwnerID() string   { return p.UserID }
func (p *CompanyProfile) isProfile()        {}

// CompanyProfileInput is shared by company registration and profile edits.
type CompanyProfileInput struct {
	CompanyName string      `json:"companyName" validate:"required,min=2,max=150"`
	Industry    string      `json:"industry" validate:"required,min=2,max=100"`
	Size        CompanySize `json:"size" validate:"required,oneof=1-10 11-50 51-200 201-500 500+"`
	Phone       *string     `json:"phone" validate:"omitempty,valid_phone"`
	City        string      `json:"city" validate:"required,min=2,max=100"`
	Department  string      `json:"department" validate:"required,min=2,max=100"`
	Website     *string     `json:"website" validate:"omitempty,url,max=255"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
}

type InstitutionType string

const (
	InstitutionUniversity     InstitutionType = "Universidad"
	InstitutionTechnical      InstitutionType = "Instituto técnico"
	InstitutionTrainingCenter InstitutionType = "Centro de capacitación"
	InstitutionOther          InstitutionType = "Otro"
)

type InstitutionProfile struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	InstitutionName string          `json:"institutionName"`
	InstitutionType InstitutionType `json:"institutionType"`
	Phone           *string         `json:"phone"`
	City            string          `json:"city"`
	Department      string          `json:"department"`
	Website         *string         `json:"website"`
	Description     *string         `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (p *InstitutionProfile) ProfileRole() Role { return RoleInstitution }
func (p *InstitutionProfile) OwnerID() string   { return p.UserID }
func (p *InstitutionProfile) isProfile()        {}

type InstitutionProfileInput struct {
	InstitutionName string          `json:"institutionName" validate:"required,min=2,max=150"`
	InstitutionType InstitutionType `json:"institutionType" validate:"required,oneof='Universidad' 'Instituto técnico' 'Centro de capacitación' 'Otro'"`
	Phone           *string         `json:"phone" validate:"omitempty,valid_phone"`
	City            string          `json:"city" validate:"required,min=2,max=100"`
	Department      string          `json:"department" validate:"required,min=2,max=100"`
	Website         *string         `json:"website" validate:"omitempty,url,max=255"`
	Description     *string         `json:"description" validate:"omitempty,max=2000"`
}

type CitizenProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CitizenProfile, error)
	GetDetailByUserID(ctx context.Context, userID string) (*CitizenProfileDetail, error)
	// Patch returns nil when no profile exists for userID.
	Patch(ctx context.Context, userID string, patch CitizenProfilePatch) (*CitizenProfile, error)
	Search(ctx context.Context, filter CitizenSearchFilter, limit int) ([]CitizenSearchResult, error)
}

type CompanyProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	Update(ctx context.Context, profile *CompanyProfile) error
}

type InstitutionProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*InstitutionProfile, error)
	Update(ctx context.Context, profile *InstitutionProfile) error
}

type CitizenProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CitizenProfileDetail, error)
	GetOwnProfile(ctx context.Context, actor *AuthContext) (*CitizenProfileDetail, error)
	UpdateProfile(ctx context.Context, actor *AuthContext, userID string, patch *CitizenProfilePatch) (*CitizenProfile, error)
}

type ProfileUsecase interface {
	ProfileForUser(ctx context.Context, actor *AuthContext) (Profile, error)
	GetCompanyProfile(ctx context.Context, actor *AuthContext) (*CompanyProfile, error)
	UpdateCompanyProfile(ctx context.Context, actor *AuthContext, in *CompanyProfileInput) (*CompanyProfile, error)
	GetInstitutionProfile(ctx context.Context, actor *AuthContext) (*InstitutionProfile, error)
	UpdateInstitutionProfile(ctx context.Context, actor *AuthContext, in *InstitutionProfileInput) (*InstitutionProfile, error)
}
