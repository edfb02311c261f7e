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

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile domain.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin registration: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, role, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`,
		user.ID, user.Email, user.PasswordHash, string(user.Role), user.Name,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Este email ya está registrado", apperror.ErrDuplicateEmail)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	switch p := profile.(type) {
	case *domain.CitizenProfile:
		err = tx.QueryRow(ctx, `
			INSERT INTO citizen_profiles
				(id, user_id, first_name, last_name, phone, date_of_birth, gender, city, department, zone_type)
			VALUES ($1, $2, $3, $4, $5, $6::date, $7::gender, $8, $9, $10::zone_type)
			RETURNING created_at, updated_at`,
			p.ID, user.ID, p.FirstName, p.LastName, p.Phone, p.DateOfBirth, p.Gender, p.City, p.Department, p.ZoneType,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
	case *domain.CompanyProfile:
		err = tx.QueryRow(ctx, `
			INSERT INTO company_profiles
				(id, user_id, company_name, industry, size, phone, city, department, website, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING created_at, updated_at`,
			p.ID, user.ID, p.CompanyName, p.Industry, string(p.Size), p.Phone, p.City, p.Department, p.Website, p.Description,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
	case *domain.InstitutionProfile:
		err = tx.QueryRow(ctx, `
			INSERT INTO institution_profiles
				(id, user_id, institution_name, institution_type, phone, city, department, website, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at, updated_at`,
			p.ID, user.ID, p.InstitutionName, string(p.InstitutionType), p.Phone, p.City, p.Department, p.Website, p.Description,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
	default:
		return fmt.Errorf("unsupported profile type %T", profile)
	}
	if err != nil {
		return fmt.Errorf("insert %s profile: %w", profile.ProfileRole(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit registration: %w", err)
	}
	return nil
}

const userColumns = `id, email, password_hash, role::text, name, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (r *userRepo) List(ctx context.Context, role domain.Role) ([]domain.UserSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, name, role::text, created_at
		FROM users
		WHERE ($1 = '' OR role::text = $1)
		ORDER BY created_at DESC`, string(role))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.UserSummary{}
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
