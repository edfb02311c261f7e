package postgres

import (
	"context"
	"errors"
	"fmt"

	"talento-local-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

func (r *companyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, company_name, industry, size, phone, city, department, website, description, created_at, updated_at
		FROM company_profiles WHERE user_id = $1`, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Industry, &p.Size, &p.Phone,
		&p.City, &p.Department, &p.Website, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *companyProfileRepo) Update(ctx context.Context, p *domain.CompanyProfile) error {
	err := r.db.QueryRow(ctx, `
		UPDATE company_profiles SET
			company_name = $2, industry = $3, size = $4, phone = $5, city = $6,
			department = $7, website = $8, description = $9, updated_at = NOW()
		WHERE user_id = $1
		RETURNING id, created_at, updated_at`,
		p.UserID, p.CompanyName, p.Industry, string(p.Size), p.Phone, p.City, p.Department, p.Website, p.Description,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update company profile: %w", err)
	}
	return nil
}

type institutionProfileRepo struct {
	db *pgxpool.Pool
}

func NewInstitutionProfileRepository(db *pgxpool.Pool) domain.InstitutionProfileRepository {
	return &institutionProfileRepo{db: db}
}

func (r *institutionProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.InstitutionProfile, error) {
	var p domain.InstitutionProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, institution_name, institution_type, phone, city, department, website, description, created_at, updated_at
		FROM institution_profiles WHERE user_id = $1`, userID).Scan(
		&p.ID, &p.UserID, &p.InstitutionName, &p.InstitutionType, &p.Phone,
		&p.City, &p.Department, &p.Website, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *institutionProfileRepo) Update(ctx context.Context, p *domain.InstitutionProfile) error {
	err := r.db.QueryRow(ctx, `
		UPDATE institution_profiles SET
			institution_name = $2, institution_type = $3, phone = $4, city = $5,
			department = $6, website = $7, description = $8, updated_at = NOW()
		WHERE user_id = $1
		RETURNING id, created_at, updated_at`,
		p.UserID, p.InstitutionName, string(p.InstitutionType), p.Phone, p.City, p.Department, p.Website, p.Description,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update institution profile: %w", err)
	}
	return nil
}
