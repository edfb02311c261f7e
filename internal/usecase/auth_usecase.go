package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/auth"
	"talento-local-backend/pkg/logger"
	"talento-local-backend/pkg/textnorm"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

// SessionIssuer signs and verifies session tokens. *auth.SessionIssuer implements it.
type SessionIssuer interface {
	Issue(id auth.Identity) (auth.Session, error)
	Resolve(token string) (*auth.Identity, error)
}

type authUsecase struct {
	userRepo  domain.UserRepository
	sessions  SessionIssuer
	publisher domain.EventPublisher
	validate  *validator.Validate
}

// NewAuthUsecase wires the credential store. publisher may be nil.
func NewAuthUsecase(userRepo domain.UserRepository, sessions SessionIssuer, publisher domain.EventPublisher, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		sessions:  sessions,
		publisher: publisher,
		validate:  validate,
	}
}

func (u *authUsecase) RegisterCitizen(ctx context.Context, in *domain.CitizenRegistration) (*domain.User, error) {
	in.Email = textnorm.Email(in.Email)
	in.FirstName = textnorm.Clean(in.FirstName)
	in.LastName = textnorm.Clean(in.LastName)
	in.City = textnorm.Clean(in.City)
	in.Department = textnorm.Clean(in.Department)
	in.Phone = textnorm.CleanPtr(in.Phone)
	in.DateOfBirth = textnorm.CleanPtr(in.DateOfBirth)
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	profile := &domain.CitizenProfile{
		ID:          uuid.NewString(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		City:        in.City,
		Department:  in.Department,
		ZoneType:    in.ZoneType,
	}
	return u.createAccount(ctx, in.Email, in.Password, domain.RoleCitizen, profile.FullName(), profile)
}

func (u *authUsecase) RegisterCompany(ctx context.Context, in *domain.CompanyRegistration) (*domain.User, error) {
	in.Email = textnorm.Email(in.Email)
	cleanCompanyInput(&in.CompanyProfileInput)
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	profile := &domain.CompanyProfile{ID: uuid.NewString()}
	applyCompanyInput(profile, &in.CompanyProfileInput)
	return u.createAccount(ctx, in.Email, in.Password, domain.RoleCompany, in.CompanyName, profile)
}

func (u *authUsecase) RegisterInstitution(ctx context.Context, in *domain.InstitutionRegistration) (*domain.User, error) {
	in.Email = textnorm.Email(in.Email)
	cleanInstitutionInput(&in.InstitutionProfileInput)
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	profile := &domain.InstitutionProfile{ID: uuid.NewString()}
	applyInstitutionInput(profile, &in.InstitutionProfileInput)
	return u.createAccount(ctx, in.Email, in.Password, domain.RoleInstitution, in.InstitutionName, profile)
}

// createAccount stores the user and its role profile atomically.
func (u *authUsecase) createAccount(ctx context.Context, email, password string, role domain.Role, name string, profile domain.Profile) (*domain.User, error) {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Este email ya está registrado", apperror.ErrDuplicateEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	hashed := string(hash)

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: &hashed,
		Role:         role,
		Name:         name,
	}
	switch p := profile.(type) {
	case *domain.CitizenProfile:
		p.UserID = user.ID
	case *domain.CompanyProfile:
		p.UserID = user.ID
	case *domain.InstitutionProfile:
		p.UserID = user.ID
	}

	if err := u.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	u.publishRegistered(ctx, user)
	return user, nil
}

// publishRegistered runs after commit; a broker failure never fails the registration.
func (u *authUsecase) publishRegistered(ctx context.Context, user *domain.User) {
	if u.publisher == nil {
		return
	}
	payload, err := json.Marshal(domain.UserRegisteredEvent{
		Type:      domain.EventUserRegistered,
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		logger.Log.Error("marshal user event", "error", err)
		return
	}
	if err := u.publisher.PublishMessage(ctx, []byte(user.ID), payload); err != nil {
		logger.Log.Warn("publish user event failed", "user_id", user.ID, "error", err)
	}
}

func (u *authUsecase) VerifyCredentials(ctx context.Context, email, password string) (*domain.Identity, error) {
	user, err := u.userRepo.GetByEmail(ctx, textnorm.Email(email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, apperror.NotFound("Usuario no encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.New(http.StatusUnauthorized, "Contraseña incorrecta", apperror.ErrInvalidPassword)
	}

	return &domain.Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	id, err := u.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session, err := u.sessions.Issue(auth.Identity{
		UserID: id.ID,
		Email:  id.Email,
		Name:   id.Name,
		Role:   string(id.Role),
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Truncate(time.Second),
		User:      *id,
	}, nil
}

func (u *authUsecase) ResolveSession(token string) (*domain.AuthContext, error) {
	id, err := u.sessions.Resolve(token)
	if err != nil {
		return nil, apperror.New(http.StatusUnauthorized, msgUnauthorized, err)
	}
	role := domain.Role(id.Role)
	if !role.IsValid() {
		return nil, apperror.Unauthorized(msgUnauthorized)
	}
	return &domain.AuthContext{
		UserID: id.UserID,
		Email:  id.Email,
		Name:   id.Name,
		Role:   role,
	}, nil
}
