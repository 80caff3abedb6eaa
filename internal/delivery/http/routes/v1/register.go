package v1

import (
	"log"

	"moonlight/internal/config"
	"moonlight/internal/database"
	"moonlight/internal/delivery/http/handler"
	"moonlight/internal/delivery/http/middleware"
	"moonlight/internal/pkg/jwt"
	"moonlight/internal/repository"
	"moonlight/internal/usecase"
	"moonlight/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, feedCache usecase.FeedCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	ingestMw := middleware.NewIngestKeyMiddleware(cfg.Ingest.APIKey)

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	jobs := repository.NewPostgresJobRepository(db)

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profiles)
	ingestUC := usecase.NewJobIngestUsecase(jobs, feedCache, ws.NewNotifier(), logger)
	matchUC := usecase.NewMatchUsecase(jobs, profiles, feedCache, cfg.Matching, logger)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	// The discovery feed authenticates with a shared key, not a user token.
	ingestGroup := r.Group("", ingestMw.Middleware())
	handler.NewJobIngestHandler(ingestUC).RegisterRoutes(ingestGroup)

	protected := r.Group("", authMw.Middleware())
	handler.NewProfileHandler(profileUC).RegisterRoutes(protected)
	handler.NewMatchHandler(matchUC).RegisterRoutes(protected)
}
