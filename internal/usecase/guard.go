package usecase

import (
	"context"
	"errors"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgUnauthorized    = "No autorizado"
	msgForbidden       = "No tienes permiso para realizar esta acción"
	msgProfileNotFound = "Perfil no encontrado"
	msgInvalidData     = "Datos inválidos"
)

// RequireSession fails with 401 for anonymous callers.
func RequireSession(actor *domain.AuthContext) error {
	if actor == nil || actor.UserID == "" {
		return apperror.Unauthorized(msgUnauthorized)
	}
	return nil
}

// RequireRole fails with 401 without a session and 403 for any other role.
func RequireRole(actor *domain.AuthContext, role domain.Role) error {
	if err := RequireSession(actor); err != nil {
		return err
	}
	if actor.Role != role {
		return apperror.Forbidden(msgForbidden)
	}
	return nil
}

// RequireOwnership fails with 401 without a session and 403 unless the caller owns the resource.
func RequireOwnership(actor *domain.AuthContext, ownerUserID string) error {
	if err := RequireSession(actor); err != nil {
		return err
	}
	if actor.UserID != ownerUserID {
		return apperror.Forbidden(msgForbidden)
	}
	return nil
}

// ownCitizenProfile resolves the citizen profile of the caller.
func ownCitizenProfile(ctx context.Context, profiles domain.CitizenProfileRepository, actor *domain.AuthContext) (*domain.CitizenProfile, error) {
	if err := RequireRole(actor, domain.RoleCitizen); err != nil {
		return nil, err
	}
	profile, err := profiles.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound(msgProfileNotFound)
	}
	return profile, nil
}

func validateStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return apperror.Validation(msgInvalidData, validation.FormatValidationErrors(err))
	}
	return nil
}

func checkDates(err error) error {
	if errors.Is(err, domain.ErrEndBeforeStart) {
		return apperror.Validation(msgInvalidData, []string{"Fecha de finalización: No puede ser anterior a la fecha de inicio"})
	}
	return err
}
