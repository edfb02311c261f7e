package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talento-local-backend/config"
	_ "talento-local-backend/docs" // Important for Swagger
	v1 "talento-local-backend/internal/delivery/http/v1"
	"talento-local-backend/internal/domain"
	"talento-local-backend/internal/repository/postgres"
	"talento-local-backend/internal/seed"
	"talento-local-backend/internal/usecase"
	"talento-local-backend/migrations"
	"talento-local-backend/pkg/auth"
	"talento-local-backend/pkg/database"
	"talento-local-backend/pkg/events"
	"talento-local-backend/pkg/logger"
	"talento-local-backend/pkg/security"
	"talento-local-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Talento Local API
// @version         1.0
// @description     Perfiles de ciudadanos, empresas e instituciones y búsqueda de talento local.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinEnv)

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting talento local backend", "port", cfg.Port)

	env := "development"
	if cfg.GinEnv == gin.ReleaseMode {
		env = "production"
	}
	secLogger := security.InitSecurityLogger("talento-local", env)
	defer secLogger.Sync()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		applied, err := database.Migrate(context.Background(), dbPool, migrations.FS)
		if err != nil {
			logger.Log.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Migrations applied", "versions", applied)
	}

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	citizenRepo := postgres.NewCitizenProfileRepository(dbPool)
	companyRepo := postgres.NewCompanyProfileRepository(dbPool)
	institutionRepo := postgres.NewInstitutionProfileRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	citizenSkillRepo := postgres.NewCitizenSkillRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	certificationRepo := postgres.NewCertificationRepository(dbPool)

	if cfg.SeedSkills {
		if err := seed.Run(context.Background(), skillRepo); err != nil {
			logger.Log.Error("Skill seed failed", "error", err)
			os.Exit(1)
		}
	}

	// 5. Setup user events (optional)
	var publisher domain.EventPublisher
	producer := events.NewProducer(events.Config{
		Broker:   cfg.KafkaBroker,
		Topic:    cfg.KafkaUserEventsTopic,
		Username: cfg.KafkaUsername,
		Password: cfg.KafkaPassword,
	})
	if producer != nil {
		publisher = producer
		defer producer.Close()
	}

	// 6. Setup UseCases
	validate := validation.New()
	sessions := auth.NewSessionIssuer(cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL)

	authUC := usecase.NewAuthUsecase(userRepo, sessions, publisher, validate)
	userUC := usecase.NewUserUsecase(userRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, validate, cfg.AllowAnonymousSkillCreate)
	searchUC := usecase.NewSearchUsecase(citizenRepo)
	citizenProfileUC := usecase.NewCitizenProfileUsecase(citizenRepo, validate)
	profileUC := usecase.NewProfileUsecase(citizenRepo, companyRepo, institutionRepo, validate)
	citizenSkillUC := usecase.NewCitizenSkillUsecase(citizenRepo, skillRepo, citizenSkillRepo, validate)
	educationUC := usecase.NewEducationUsecase(citizenRepo, educationRepo, validate)
	experienceUC := usecase.NewExperienceUsecase(citizenRepo, experienceRepo, validate)
	certificationUC := usecase.NewCertificationUsecase(citizenRepo, certificationRepo, validate)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		SkillUC:          skillUC,
		SearchUC:         searchUC,
		CitizenProfileUC: citizenProfileUC,
		ProfileUC:        profileUC,
		CitizenSkillUC:   citizenSkillUC,
		EducationUC:      educationUC,
		ExperienceUC:     experienceUC,
		CertificationUC:  certificationUC,
		HealthUC:         healthUC,
		SecurityLogger:   secLogger,
		CookieSecure:     cfg.CookieSecure,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
