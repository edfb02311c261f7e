package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrEndBeforeStart = errors.New("end date before start date")

type EducationLevel string

const (
	EducationPrimary      EducationLevel = "PRIMARY"
	EducationSecondary    EducationLevel = "SECONDARY"
	EducationTechnical    EducationLevel = "TECHNICAL"
	EducationUniversity   EducationLevel = "UNIVERSITY"
	EducationPostgraduate EducationLevel = "POSTGRADUATE"
	EducationDoctorate    EducationLevel = "DOCTORATE"
)

type Education struct {
	ID           string         `json:"id"`
	CitizenID    string         `json:"citizenId"`
	Level        EducationLevel `json:"level" validate:"required,oneof=PRIMARY SECONDARY TECHNICAL UNIVERSITY POSTGRADUATE DOCTORATE"`
	Institution  string         `json:"institution" validate:"required,min=2,max=150"`
	FieldOfStudy string         `json:"fieldOfStudy" validate:"required,min=2,max=150"`
	Degree       *string        `json:"degree" validate:"omitempty,max=150"`
	StartDate    string         `json:"startDate" validate:"required,datetime=2006-01-02,not_future_date"`
	EndDate      *string        `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Current      bool           `json:"current"`
	Description  *string        `json:"description" validate:"omitempty,max=1000"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Normalize clears EndDate for ongoing studies.
func (e *Education) Normalize() {
	e.EndDate = normalizeEnd(e.EndDate, e.Current)
}

func (e *Education) CheckDates() error {
	return checkRange(e.StartDate, e.EndDate)
}

type Experience struct {
	ID          string    `json:"id"`
	CitizenID   string    `json:"citizenId"`
	Company     string    `json:"company" validate:"required,min=2,max=150"`
	Position    string    `json:"position" validate:"required,min=2,max=150"`
	StartDate   string    `json:"startDate" validate:"required,datetime=2006-01-02,not_future_date"`
	EndDate     *string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Current     bool      `json:"current"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Normalize clears EndDate for the current job.
func (e *Experience) Normalize() {
	e.EndDate = normalizeEnd(e.EndDate, e.Current)
}

func (e *Experience) CheckDates() error {
	return checkRange(e.StartDate, e.EndDate)
}

type Certification struct {
	ID            string    `json:"id"`
	CitizenID     string    `json:"citizenId"`
	Name          string    `json:"name" validate:"required,min=2,max=150"`
	Issuer        string    `json:"issuer" validate:"required,min=2,max=150"`
	IssueDate     string    `json:"issueDate" validate:"required,datetime=2006-01-02,not_future_date"`
	ExpiryDate    *string   `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	CredentialURL *string   `json:"credentialUrl" validate:"omitempty,url,max=255"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (c *Certification) CheckDates() error {
	return checkRange(c.IssueDate, c.ExpiryDate)
}

func normalizeEnd(end *string, current bool) *string {
	if current || end == nil || strings.TrimSpace(*end) == "" {
		return nil
	}
	return end
}

func checkRange(start string, end *string) error {
	if end == nil {
		return nil
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil
	}
	e, err := time.Parse(DateLayout, *end)
	if err != nil {
		return nil
	}
	if e.Before(s) {
		return ErrEndBeforeStart
	}
	return nil
}

type EducationRepository interface {
	// ListByCitizen orders by start date, newest first.
	ListByCitizen(ctx context.Context, citizenID string) ([]Education, error)
	Create(ctx context.Context, e *Education) error
	// Update and Delete are scoped to the citizen; false means no matching row.
	Update(ctx context.Context, e *Education) (bool, error)
	Delete(ctx context.Context, citizenID, id string) (bool, error)
}

type ExperienceRepository interface {
	ListByCitizen(ctx context.Context, citizenID string) ([]Experience, error)
	Create(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) (bool, error)
	Delete(ctx context.Context, citizenID, id string) (bool, error)
}

type CertificationRepository interface {
	ListByCitizen(ctx context.Context, citizenID string) ([]Certification, error)
	Create(ctx context.Context, c *Certification) error
	Delete(ctx context.Context, citizenID, id string) (bool, error)
}

type EducationUsecase interface {
	List(ctx context.Context, actor *AuthContext) ([]Education, error)
	Add(ctx context.Context, actor *AuthContext, in *Education) (*Education, error)
	Update(ctx context.Context, actor *AuthContext, id string, in *Education) (*Education, error)
	Remove(ctx context.Context, actor *AuthContext, id string) error
}

type ExperienceUsecase interface {
	List(ctx context.Context, actor *AuthContext) ([]Experience, error)
	Add(ctx context.Context, actor *AuthContext, in *Experience) (*Experience, error)
	Update(ctx context.Context, actor *AuthContext, id string, in *Experience) (*Experience, error)
	Remove(ctx context.Context, actor *AuthContext, id string) error
}

type CertificationUsecase interface {
	List(ctx context.Context, actor *AuthContext) ([]Certification, error)
	Add(ctx context.Context, actor *AuthContext, in *Certification) (*Certification, error)
	Remove(ctx context.Context, actor *AuthContext, id string) error
}
