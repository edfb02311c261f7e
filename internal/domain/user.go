package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the public projection used by the users listing.
type UserSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRef is the identity embedded in profile and search payloads.
type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CitizenRegistration is the sign-up form of a citizen.
type CitizenRegistration struct {
	Email           string    `json:"email" validate:"required,email,max=254"`
	Password        string    `json:"password" validate:"required,strong_password"`
	ConfirmPassword string    `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string    `json:"firstName" validate:"required,min=2,max=80,valid_name"`
	LastName        string    `json:"lastName" validate:"required,min=2,max=80,valid_name"`
	DateOfBirth     *string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02,not_future_date"`
	Gender          *Gender   `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER PREFER_NOT_SAY"`
	Phone           *string   `json:"phone" validate:"omitempty,valid_phone"`
	City            string    `json:"city" validate:"required,min=2,max=100"`
	Department      string    `json:"department" validate:"required,min=2,max=100"`
	ZoneType        *ZoneType `json:"zoneType" validate:"omitempty,oneof=URBAN RURAL"`
}

type CompanyRegistration struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	CompanyProfileInput
}

type InstitutionRegistration struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	InstitutionProfileInput
}

type UserRepository interface {
	// CreateWithProfile inserts the user and its role profile in one transaction.
	CreateWithProfile(ctx context.Context, user *User, profile Profile) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, role Role) ([]UserSummary, error)
}

type AuthUsecase interface {
	RegisterCitizen(ctx context.Context, in *CitizenRegistration) (*User, error)
	RegisterCompany(ctx context.Context, in *CompanyRegistration) (*User, error)
	RegisterInstitution(ctx context.Context, in *InstitutionRegistration) (*User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*Identity, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ResolveSession(token string) (*AuthContext, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context, role string) ([]UserSummary, error)
}
