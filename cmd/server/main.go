package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/pushpakoirala/portfolio-api/adapters/event"
	httpAdapter "github.com/pushpakoirala/portfolio-api/adapters/http"
	"github.com/pushpakoirala/portfolio-api/adapters/media_storage"
	"github.com/pushpakoirala/portfolio-api/adapters/persistence"
	authUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/auth"
	certificationUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/certification"
	educationUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/experience"
	messageUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/message"
	profileUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/skill"
	"github.com/pushpakoirala/portfolio-api/internal/config"
	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
	"github.com/pushpakoirala/portfolio-api/pkg/tracing"
)

func main() {
	fmt.Println("Starting Portfolio API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tracerProvider, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		log.Fatalf("FATAL: cannot init tracing: %v", err)
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			appLogger.Error("failed to shut down tracer provider", err)
		}
	}()

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	adminRepo := persistence.NewPostgresAdminRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool)
	messageRepo := persistence.NewPostgresMessageRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	publicCache := persistence.NewPublicCache(redisClient, appLogger)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Warn("uploader unavailable, /uploads endpoint disabled")
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(adminRepo, jwtSvc, appLogger)
	changePasswordUseCase := authUC.NewChangePasswordUseCase(adminRepo, appLogger)
	changeUsernameUseCase := authUC.NewChangeUsernameUseCase(adminRepo, jwtSvc, appLogger)
	changeEmailUseCase := authUC.NewChangeEmailUseCase(adminRepo, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, publicCache)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, publicCache)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, publicCache)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, publicCache)
	toggleVisibilityUseCase := projectUC.NewToggleVisibilityUseCase(projectRepo, publicCache)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo)
	certificationUseCase := certificationUC.NewCertificationUseCase(certificationRepo)
	messageUseCase := messageUC.NewMessageUseCase(messageRepo, kafkaClient, publicCache, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(
			loginUseCase,
			changePasswordUseCase,
			changeUsernameUseCase,
			changeEmailUseCase,
		),
		Profile: httpAdapter.NewProfileHandler(profileUseCase),
		Skill:   httpAdapter.NewSkillHandler(skillUseCase),
		Project: httpAdapter.NewProjectHandler(
			createProjectUseCase,
			updateProjectUseCase,
			listProjectsUseCase,
			getProjectUseCase,
			deleteProjectUseCase,
			toggleVisibilityUseCase,
		),
		Experience:    httpAdapter.NewExperienceHandler(experienceUseCase),
		Education:     httpAdapter.NewEducationHandler(educationUseCase),
		Certification: httpAdapter.NewCertificationHandler(certificationUseCase),
		Message:       httpAdapter.NewMessageHandler(messageUseCase),
	}
	if uploader != nil {
		handlers.Upload = httpAdapter.NewUploadHandler(uploader)
	}

	router := httpAdapter.NewRouter(handlers, jwtSvc, appLogger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	addr := ":" + cfg.App.Port
	appLogger.Info("server listening on " + addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.Fatalf("FATAL: server stopped: %v", err)
	}
}
