package v1

import (
	"net/http"

	"talento-local-backend/internal/delivery/http/middleware"
	"talento-local-backend/internal/delivery/http/response"
	"talento-local-backend/internal/domain"
	"talento-local-backend/internal/usecase"
	"talento-local-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	UserUC           domain.UserUsecase
	SkillUC          domain.SkillUsecase
	SearchUC         domain.SearchUsecase
	CitizenProfileUC domain.CitizenProfileUsecase
	ProfileUC        domain.ProfileUsecase
	CitizenSkillUC   domain.CitizenSkillUsecase
	EducationUC      domain.EducationUsecase
	ExperienceUC     domain.ExperienceUsecase
	CertificationUC  domain.CertificationUsecase
	HealthUC         usecase.HealthUsecase
	SecurityLogger   *security.SecurityLogger
	CookieSecure     bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.SecurityLogger))
	r.Use(middleware.SessionMiddleware(deps.AuthUC, deps.SecurityLogger))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		response.Success(c, http.StatusOK, gin.H{
			"message": "Talento Local API operativa",
			"status":  status,
		})
	})

	// Swagger
	api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewAuthHandler(api, deps.AuthUC, deps.ProfileUC, deps.SecurityLogger, deps.CookieSecure)
	NewCatalogHandler(api, deps.SkillUC, deps.UserUC)
	NewProfileHandler(api, deps.CitizenProfileUC, deps.SearchUC)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.RequireSession())
	{
		NewMeHandler(protected, MeDeps{
			CitizenUC:       deps.CitizenProfileUC,
			ProfileUC:       deps.ProfileUC,
			SkillUC:         deps.CitizenSkillUC,
			EducationUC:     deps.EducationUC,
			ExperienceUC:    deps.ExperienceUC,
			CertificationUC: deps.CertificationUC,
		})
	}

	return r
}
