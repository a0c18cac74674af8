package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"memberdesk/internal/config"
	"memberdesk/internal/database"
	"memberdesk/internal/domain"
	"memberdesk/internal/mailer"
	"memberdesk/internal/middleware"
	"memberdesk/internal/modules/auth"
	"memberdesk/internal/modules/intake"
	"memberdesk/internal/modules/review"
	jwtsvc "memberdesk/internal/pkg/jwt"
	"memberdesk/internal/repository"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.Submission{}, &domain.Member{}); err != nil {
		log.Fatal(err)
	}

	submissionRepo := repository.NewSubmissionRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	sender, err := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		SSL:      cfg.SMTP.SSL,
		Timeout:  cfg.SMTP.Timeout,
	}, log)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := auth.NewHandler(auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, j, cfg.TokenTTL))
	intakeHandler := intake.NewHandler(intake.NewService(submissionRepo, memberRepo, sender))
	reviewHandler := review.NewHandler(review.NewService(submissionRepo, memberRepo, sender))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RequestLogger(log))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		intakeHandler.RegisterRoutes(v1)

		// admin review surface
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			reviewHandler.RegisterRoutes(admin)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	log.WithField("port", cfg.Port).Info("server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
