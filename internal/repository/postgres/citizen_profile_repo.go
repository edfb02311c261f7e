package postgres

import (
	"context"
	"errors"
	"fmt"

	"talento-local-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type citizenProfileRepo struct {
	db *pgxpool.Pool
}

func NewCitizenProfileRepository(db *pgxpool.Pool) domain.CitizenProfileRepository {
	return &citizenProfileRepo{db: db}
}

const citizenColumns = `
	cp.id, cp.user_id, cp.first_name, cp.last_name, cp.phone,
	to_char(cp.date_of_birth, 'YYYY-MM-DD'), cp.gender::text, cp.city, cp.department,
	cp.zone_type::text, cp.bio, cp.address, cp.job_status::text, cp.created_at, cp.updated_at`

func citizenDest(p *domain.CitizenProfile) []any {
	return []any{
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone,
		&p.DateOfBirth, &p.Gender, &p.City, &p.Department,
		&p.ZoneType, &p.Bio, &p.Address, &p.JobStatus, &p.CreatedAt, &p.UpdatedAt,
	}
}

func (r *citizenProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CitizenProfile, error) {
	var p domain.CitizenProfile
	err := r.db.QueryRow(ctx, `SELECT `+citizenColumns+` FROM citizen_profiles cp WHERE cp.user_id = $1`, userID).
		Scan(citizenDest(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *citizenProfileRepo) GetDetailByUserID(ctx context.Context, userID string) (*domain.CitizenProfileDetail, error) {
	var d domain.CitizenProfileDetail
	dest := append(citizenDest(&d.CitizenProfile), &d.User.ID, &d.User.Email, &d.User.Name)
	err := r.db.QueryRow(ctx, `
		SELECT `+citizenColumns+`, u.id, u.email, u.name
		FROM citizen_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.user_id = $1`, userID).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	citizenID := d.ID
	if d.Skills, err = listCitizenSkills(ctx, r.db, citizenID); err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	if d.Education, err = listEducations(ctx, r.db, citizenID); err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	if d.Experience, err = listExperiences(ctx, r.db, citizenID); err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	if d.Certifications, err = listCertifications(ctx, r.db, citizenID); err != nil {
		return nil, fmt.Errorf("failed to fetch certifications: %w", err)
	}
	return &d, nil
}

func (r *citizenProfileRepo) Patch(ctx context.Context, userID string, patch domain.CitizenProfilePatch) (*domain.CitizenProfile, error) {
	var p domain.CitizenProfile
	err := r.db.QueryRow(ctx, `
		UPDATE citizen_profiles cp SET
			bio        = COALESCE($2, cp.bio),
			address    = COALESCE($3, cp.address),
			phone      = COALESCE($4, cp.phone),
			job_status = COALESCE($5::job_status, cp.job_status),
			updated_at = NOW()
		WHERE cp.user_id = $1
		RETURNING `+citizenColumns,
		userID, patch.Bio, patch.Address, patch.Phone, patch.JobStatus,
	).Scan(citizenDest(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("patch citizen profile: %w", err)
	}
	return &p, nil
}

// Search filters are already LIKE-escaped by the caller.
func (r *citizenProfileRepo) Search(ctx context.Context, filter domain.CitizenSearchFilter, limit int) ([]domain.CitizenSearchResult, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+citizenColumns+`, u.id, u.email, u.name
		FROM citizen_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE ($1 = '' OR cp.city ILIKE '%' || $1 || '%' ESCAPE '\')
		  AND ($2 = '' OR cp.department ILIKE '%' || $2 || '%' ESCAPE '\')
		  AND ($3 = '' OR EXISTS (
				SELECT 1 FROM citizen_skills cs
				JOIN skills s ON s.id = cs.skill_id
				WHERE cs.citizen_id = cp.id AND s.name ILIKE '%' || $3 || '%' ESCAPE '\'))
		ORDER BY cp.created_at DESC
		LIMIT $4`,
		filter.City, filter.Department, filter.SkillName, limit)
	if err != nil {
		return nil, fmt.Errorf("search citizens: %w", err)
	}
	defer rows.Close()

	results := []domain.CitizenSearchResult{}
	for rows.Next() {
		var res domain.CitizenSearchResult
		dest := append(citizenDest(&res.CitizenProfile), &res.User.ID, &res.User.Email, &res.User.Name)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		res.Skills = []domain.CitizenSkill{}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return results, nil
	}

	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	byCitizen, err := listCitizenSkillsFor(ctx, r.db, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	for i := range results {
		if skills, ok := byCitizen[results[i].ID]; ok {
			results[i].Skills = skills
		}
	}
	return results, nil
}

func listCitizenSkillsFor(ctx context.Context, q querier, citizenIDs []string) (map[string][]domain.CitizenSkill, error) {
	rows, err := q.Query(ctx, `SELECT `+citizenSkillColumns+`
		FROM citizen_skills cs
		JOIN skills s ON s.id = cs.skill_id
		WHERE cs.citizen_id = ANY($1)
		ORDER BY cs.created_at DESC`, pq.Array(citizenIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.CitizenSkill, len(citizenIDs))
	for rows.Next() {
		cs, err := scanCitizenSkill(rows)
		if err != nil {
			return nil, err
		}
		out[cs.CitizenID] = append(out[cs.CitizenID], *cs)
	}
	return out, rows.Err()
}
