package v1

import (
	"errors"
	"net/http"
	"time"

	"talento-local-backend/internal/delivery/http/middleware"
	"talento-local-backend/internal/delivery/http/response"
	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Cuerpo de la solicitud inválido"

type AuthHandler struct {
	authUC       domain.AuthUsecase
	profileUC    domain.ProfileUsecase
	sec          *security.SecurityLogger
	cookieSecure bool
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, profileUC domain.ProfileUsecase, sec *security.SecurityLogger, cookieSecure bool) {
	handler := &AuthHandler{
		authUC:       authUC,
		profileUC:    profileUC,
		sec:          sec,
		cookieSecure: cookieSecure,
	}

	auth := public.Group("/auth")
	{
		auth.POST("/register/citizen", handler.RegisterCitizen)
		auth.POST("/register/company", handler.RegisterCompany)
		auth.POST("/register/institution", handler.RegisterInstitution)
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.RequireSession(), handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// RegisterCitizen godoc
// @Summary      Register a citizen
// @Description  Creates the user and its citizen profile in one transaction.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CitizenRegistration  true  "Citizen sign-up form"
// @Success      201      {object}  RegisterResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Router       /auth/register/citizen [post]
func (h *AuthHandler) RegisterCitizen(c *gin.Context) {
	var req domain.CitizenRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	user, err := h.authUC.RegisterCitizen(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	h.registered(c, user)
}

// RegisterCompany godoc
// @Summary      Register a company
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CompanyRegistration  true  "Company sign-up form"
// @Success      201      {object}  RegisterResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Router       /auth/register/company [post]
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req domain.CompanyRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	user, err := h.authUC.RegisterCompany(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	h.registered(c, user)
}

// RegisterInstitution godoc
// @Summary      Register an educational institution
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.InstitutionRegistration  true  "Institution sign-up form"
// @Success      201      {object}  RegisterResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Router       /auth/register/institution [post]
func (h *AuthHandler) RegisterInstitution(c *gin.Context) {
	var req domain.InstitutionRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	user, err := h.authUC.RegisterInstitution(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	h.registered(c, user)
}

func (h *AuthHandler) registered(c *gin.Context, user *domain.User) {
	if h.sec != nil {
		h.sec.LogRegistration(c.Request.Context(), user.Email, string(user.Role), c.ClientIP(), c.GetString("RequestID"))
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Usuario registrado exitosamente",
		"userId":  user.ID,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and issues a session token. The token is also set as the auth_token cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  domain.LoginResult
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email y contraseña son requeridos"))
		return
	}

	ctx := c.Request.Context()
	result, err := h.authUC.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrInvalidPassword) {
			if h.sec != nil {
				reason := "unknown_email"
				if errors.Is(err, apperror.ErrInvalidPassword) {
					reason = "invalid_password"
				}
				h.sec.LogLoginFailed(ctx, req.Email, c.ClientIP(), c.Request.UserAgent(), c.GetString("RequestID"), reason)
			}
			// Same message either way so accounts cannot be enumerated.
			c.Error(apperror.New(http.StatusUnauthorized, "Credenciales inválidas", apperror.ErrInvalidPassword))
			return
		}
		c.Error(err)
		return
	}

	if h.sec != nil {
		h.sec.LogLoginSuccess(ctx, result.User.ID, string(result.User.Role), c.ClientIP(), c.GetString("RequestID"))
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, result.Token, maxAge, "/", "", h.cookieSecure, true)

	response.Success(c, http.StatusOK, gin.H{
		"token":     result.Token,
		"expiresAt": result.ExpiresAt,
		"user":      result.User,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the auth_token cookie. Bearer clients discard their token; it stays valid until it expires.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	response.Message(c, http.StatusOK, "Sesión cerrada")
}

// Me godoc
// @Summary      Current session
// @Description  Returns the session identity and the role-specific profile.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.Actor(c)
	profile, err := h.profileUC.ProfileForUser(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":    actor,
		"profile": profile,
		"role":    profile.ProfileRole(),
	})
}
