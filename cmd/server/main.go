package main

import (
	"context"
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"tutor_backend/internal/app/di"
	"tutor_backend/internal/app/router"
	authadapters "tutor_backend/internal/feature/auth/adapters"
	authhandler "tutor_backend/internal/feature/auth/transport/handler"
	authusecase "tutor_backend/internal/feature/auth/usecase"
	contenthandler "tutor_backend/internal/feature/content/transport/handler"
	contentusecase "tutor_backend/internal/feature/content/usecase"
	courseadapters "tutor_backend/internal/feature/courses/adapters"
	coursehandler "tutor_backend/internal/feature/courses/transport/handler"
	courseusecase "tutor_backend/internal/feature/courses/usecase"
	"tutor_backend/internal/platform/config"
	infradb "tutor_backend/internal/platform/db"
	infraredis "tutor_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Storage is mandatory: no database, no server.
	db, err := infradb.Open(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	if err := infradb.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// Redis only accelerates lesson reads; run without it if absent.
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		if tmp, err := infraredis.NewClient(cfg.Redis); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repositories
	userRepo := authadapters.NewUserGorm(db)
	pendingRepo := authadapters.NewPendingGorm(db)
	sessionRepo := authadapters.NewSessionGorm(db)
	courseRepo := courseadapters.NewCourseGorm(db)
	lessonRepo := di.NewLessonRepository(rdb, db, cfg.Redis.TTL)

	// External collaborators
	mailer, err := di.NewMailer(cfg.Mail)
	if err != nil {
		log.Fatalf("failed to initialize mailer: %v", err)
	}
	provider, err := di.NewContentProvider(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("failed to initialize content provider: %v", err)
	}

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, pendingRepo, sessionRepo, mailer)
	courseUC := courseusecase.NewCourseUsecase(courseRepo)
	contentUC := contentusecase.NewContentUsecase(lessonRepo, provider, courseUC)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	courseH := coursehandler.NewCourseHandler(courseUC)
	contentH := contenthandler.NewContentHandler(contentUC)

	r := router.NewRouter(authH, courseH, contentH, authUC)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
