package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `id, name, category::text, description, created_at`

func (r *skillRepo) List(ctx context.Context, category domain.SkillCategory) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+skillColumns+` FROM skills
		WHERE ($1 = '' OR category::text = $1)
		ORDER BY category, name`, string(category))
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO skills (id, name, category, description)
		VALUES ($1, $2, $3::skill_category, $4)
		RETURNING created_at`,
		s.ID, s.Name, string(s.Category), s.Description,
	).Scan(&s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.New(http.StatusBadRequest, "Ya existe una habilidad con este nombre", apperror.ErrDuplicateSkillName)
		}
		return fmt.Errorf("insert skill: %w", err)
	}
	return nil
}

func (r *skillRepo) UpsertByName(ctx context.Context, s *domain.Skill) (bool, error) {
	var created bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO skills (id, name, category, description)
		VALUES ($1, $2, $3::skill_category, $4)
		ON CONFLICT (name) DO UPDATE SET
			category = EXCLUDED.category,
			description = EXCLUDED.description
		RETURNING id, created_at, (xmax = 0)`,
		s.ID, s.Name, string(s.Category), s.Description,
	).Scan(&s.ID, &s.CreatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("upsert skill %q: %w", s.Name, err)
	}
	return created, nil
}
