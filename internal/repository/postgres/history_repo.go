package postgres

import (
	"context"
	"errors"
	"fmt"

	"talento-local-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ---------------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------------

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `id, citizen_id, level::text, institution, field_of_study, degree,
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), current, description, created_at`

func listEducations(ctx context.Context, q querier, citizenID string) ([]domain.Education, error) {
	rows, err := q.Query(ctx, `SELECT `+educationColumns+`
		FROM educations WHERE citizen_id = $1 ORDER BY start_date DESC`, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(
			&e.ID, &e.CitizenID, &e.Level, &e.Institution, &e.FieldOfStudy, &e.Degree,
			&e.StartDate, &e.EndDate, &e.Current, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *educationRepo) ListByCitizen(ctx context.Context, citizenID string) ([]domain.Education, error) {
	return listEducations(ctx, r.db, citizenID)
}

func (r *educationRepo) Create(ctx context.Context, e *domain.Education) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO educations
			(id, citizen_id, level, institution, field_of_study, degree, start_date, end_date, current, description)
		VALUES ($1, $2, $3::education_level, $4, $5, $6, $7::date, $8::date, $9, $10)
		RETURNING created_at`,
		e.ID, e.CitizenID, string(e.Level), e.Institution, e.FieldOfStudy, e.Degree,
		e.StartDate, e.EndDate, e.Current, e.Description,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert education: %w", err)
	}
	return nil
}

func (r *educationRepo) Update(ctx context.Context, e *domain.Education) (bool, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE educations SET
			level = $3::education_level, institution = $4, field_of_study = $5, degree = $6,
			start_date = $7::date, end_date = $8::date, current = $9, description = $10
		WHERE id = $1 AND citizen_id = $2
		RETURNING created_at`,
		e.ID, e.CitizenID, string(e.Level), e.Institution, e.FieldOfStudy, e.Degree,
		e.StartDate, e.EndDate, e.Current, e.Description,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("update education: %w", err)
	}
	return true, nil
}

func (r *educationRepo) Delete(ctx context.Context, citizenID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND citizen_id = $2`, id, citizenID)
	if err != nil {
		return false, fmt.Errorf("delete education: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, citizen_id, company, position,
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), current, description, created_at`

func listExperiences(ctx context.Context, q querier, citizenID string) ([]domain.Experience, error) {
	rows, err := q.Query(ctx, `SELECT `+experienceColumns+`
		FROM experiences WHERE citizen_id = $1 ORDER BY start_date DESC`, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID, &e.CitizenID, &e.Company, &e.Position,
			&e.StartDate, &e.EndDate, &e.Current, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *experienceRepo) ListByCitizen(ctx context.Context, citizenID string) ([]domain.Experience, error) {
	return listExperiences(ctx, r.db, citizenID)
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO experiences (id, citizen_id, company, position, start_date, end_date, current, description)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8)
		RETURNING created_at`,
		e.ID, e.CitizenID, e.Company, e.Position, e.StartDate, e.EndDate, e.Current, e.Description,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}
	return nil
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) (bool, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE experiences SET
			company = $3, position = $4, start_date = $5::date, end_date = $6::date,
			current = $7, description = $8
		WHERE id = $1 AND citizen_id = $2
		RETURNING created_at`,
		e.ID, e.CitizenID, e.Company, e.Position, e.StartDate, e.EndDate, e.Current, e.Description,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("update experience: %w", err)
	}
	return true, nil
}

func (r *experienceRepo) Delete(ctx context.Context, citizenID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND citizen_id = $2`, id, citizenID)
	if err != nil {
		return false, fmt.Errorf("delete experience: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Certifications
// ---------------------------------------------------------------------------

type certificationRepo struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepo{db: db}
}

func listCertifications(ctx context.Context, q querier, citizenID string) ([]domain.Certification, error) {
	rows, err := q.Query(ctx, `
		SELECT id, citizen_id, name, issuer, to_char(issue_date, 'YYYY-MM-DD'),
			to_char(expiry_date, 'YYYY-MM-DD'), credential_url, created_at
		FROM certifications WHERE citizen_id = $1 ORDER BY issue_date DESC`, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Certification{}
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(
			&c.ID, &c.CitizenID, &c.Name, &c.Issuer, &c.IssueDate,
			&c.ExpiryDate, &c.CredentialURL, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *certificationRepo) ListByCitizen(ctx context.Context, citizenID string) ([]domain.Certification, error) {
	return listCertifications(ctx, r.db, citizenID)
}

func (r *certificationRepo) Create(ctx context.Context, c *domain.Certification) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO certifications (id, citizen_id, name, issuer, issue_date, expiry_date, credential_url)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7)
		RETURNING created_at`,
		c.ID, c.CitizenID, c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialURL,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert certification: %w", err)
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, citizenID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND citizen_id = $2`, id, citizenID)
	if err != nil {
		return false, fmt.Errorf("delete certification: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
