package postgres

import (
	"context"
	"errors"
	"fmt"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type citizenSkillRepo struct {
	db *pgxpool.Pool
}

func NewCitizenSkillRepository(db *pgxpool.Pool) domain.CitizenSkillRepository {
	return &citizenSkillRepo{db: db}
}

const citizenSkillColumns = `
	cs.id, cs.citizen_id, cs.skill_id, cs.level::text, cs.years_of_exp, cs.verified, cs.created_at,
	s.id, s.name, s.category::text, s.description, s.created_at`

func scanCitizenSkill(row pgx.Row) (*domain.CitizenSkill, error) {
	cs := domain.CitizenSkill{Skill: &domain.Skill{}}
	err := row.Scan(
		&cs.ID, &cs.CitizenID, &cs.SkillID, &cs.Level, &cs.YearsOfExp, &cs.Verified, &cs.CreatedAt,
		&cs.Skill.ID, &cs.Skill.Name, &cs.Skill.Category, &cs.Skill.Description, &cs.Skill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func listCitizenSkills(ctx context.Context, q querier, citizenID string) ([]domain.CitizenSkill, error) {
	rows, err := q.Query(ctx, `SELECT `+citizenSkillColumns+`
		FROM citizen_skills cs
		JOIN skills s ON s.id = cs.skill_id
		WHERE cs.citizen_id = $1
		ORDER BY cs.created_at DESC`, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CitizenSkill{}
	for rows.Next() {
		cs, err := scanCitizenSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *cs)
	}
	return out, rows.Err()
}

func (r *citizenSkillRepo) ListByCitizen(ctx context.Context, citizenID string) ([]domain.CitizenSkill, error) {
	return listCitizenSkills(ctx, r.db, citizenID)
}

func (r *citizenSkillRepo) Exists(ctx context.Context, citizenID, skillID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM citizen_skills WHERE citizen_id = $1 AND skill_id = $2)`,
		citizenID, skillID,
	).Scan(&exists)
	return exists, err
}

func (r *citizenSkillRepo) Create(ctx context.Context, cs *domain.CitizenSkill) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO citizen_skills (id, citizen_id, skill_id, level, years_of_exp)
		VALUES ($1, $2, $3, $4::skill_level, $5)
		RETURNING verified, created_at`,
		cs.ID, cs.CitizenID, cs.SkillID, string(cs.Level), cs.YearsOfExp,
	).Scan(&cs.Verified, &cs.CreatedAt)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return apperror.Conflict("Ya tienes esta habilidad agregada", apperror.ErrDuplicateSkill)
		case pgForeignKeyViolation:
			return apperror.NotFound("Habilidad no encontrada")
		}
		return fmt.Errorf("insert citizen skill: %w", err)
	}
	return nil
}

func (r *citizenSkillRepo) Update(ctx context.Context, citizenID, id string, patch domain.CitizenSkillUpdate) (*domain.CitizenSkill, error) {
	row := r.db.QueryRow(ctx, `
		WITH cs AS (
			UPDATE citizen_skills SET
				level = $3::skill_level,
				years_of_exp = COALESCE($4::int, years_of_exp)
			WHERE id = $1 AND citizen_id = $2
			RETURNING *
		)
		SELECT `+citizenSkillColumns+`
		FROM cs
		JOIN skills s ON s.id = cs.skill_id`,
		id, citizenID, string(patch.Level), patch.YearsOfExp,
	)
	cs, err := scanCitizenSkill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update citizen skill: %w", err)
	}
	return cs, nil
}

func (r *citizenSkillRepo) Delete(ctx context.Context, citizenID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM citizen_skills WHERE id = $1 AND citizen_id = $2`, id, citizenID)
	if err != nil {
		return false, fmt.Errorf("delete citizen skill: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
