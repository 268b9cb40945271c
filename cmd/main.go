package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bqviet86/cmict-server/config"
	_ "github.com/bqviet86/cmict-server/docs"
	"github.com/bqviet86/cmict-server/internal/handler"
	"github.com/bqviet86/cmict-server/internal/metrics"
	"github.com/bqviet86/cmict-server/internal/repository"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/bqviet86/cmict-server/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title cmict-server
// @version 1.0
// @description REST API сайта CMICT: пользователи, сессии, статьи, обращения и медиа

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := "config.yaml"
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("ошибка загрузки конфигурации", slog.Any("error", err))
		os.Exit(1)
	}
	config.SetupLogger(cfg.Log)

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		fatal("не удалось подключиться к БД", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("ошибка при закрытии БД", slog.Any("error", err))
		}
	}()

	if err := db.RunMigrations(ctx); err != nil {
		fatal("ошибка миграций", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		fatal("ошибка подключения к Redis", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("ошибка при закрытии Redis", slog.Any("error", err))
		}
	}()

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		fatal("ошибка создания S3 сервиса", err)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	userRepo := repository.NewUserRepository()
	sessionRepo := repository.NewSessionRepository()
	contactRepo := repository.NewContactRepository()
	postRepo := repository.NewPostRepository()
	cacheRepo := repository.NewCacheRepository(redisClient, cfg.RedisConfig.CacheTTL())

	passwordHasher := security.NewPasswordHasher(cfg.Password.Secret)
	accessTokens := security.NewJWTService(cfg.JWT.AccessSecret, security.AccessToken, cfg.JWT.AccessTTL())
	refreshTokens := security.NewJWTService(cfg.JWT.RefreshSecret, security.RefreshToken, cfg.JWT.RefreshTTL())

	mediaService := service.NewMediaService(s3Service, cfg.Media.MaxFiles, cfg.Media.MaxFileSize())
	authService := service.NewAuthenticationService(userRepo, sessionRepo, db, passwordHasher, accessTokens, refreshTokens)
	userService := service.NewUserService(userRepo, cacheRepo, mediaService, db)
	contactService := service.NewContactService(contactRepo, db)
	postService := service.NewPostService(postRepo, userRepo, db)

	srv, router := config.SetupServer(cfg.Server.Addr)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	router.Use(metrics.Middleware)

	requireAuth := security.JWTMiddleware(accessTokens, authService)
	optionalAuth := security.OptionalJWTMiddleware(accessTokens, authService)

	setupUserRoutes(router, handler.NewAuthenticationHandler(authService), handler.NewUserHandler(userService), requireAuth)
	setupContactRoutes(router, handler.NewContactHandler(contactService), requireAuth, optionalAuth)
	setupPostRoutes(router, handler.NewPostHandler(postService), requireAuth, optionalAuth)
	setupMediaRoutes(router, handler.NewMediaHandler(mediaService), requireAuth)

	health := handler.NewHealthHandler(map[string]handler.Pinger{"postgres": db, "redis": redisClient})
	router.Get("/health", health.Health)
	router.Handle("/metrics", metrics.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	runServer(ctx, srv, cfg.Server.ShutdownTimeoutDuration())
}

func setupUserRoutes(r chi.Router, auth *handler.AuthenticationHandler, h *handler.UserHandler, requireAuth func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", auth.Register)
		r.Post("/login", auth.Login)
		r.Post("/refresh-token", auth.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/logout", auth.Logout)
			r.Get("/me", h.GetMe)
			r.Patch("/me", h.UpdateMe)
			r.Patch("/update-avatar", h.UpdateAvatar)

			r.Group(func(r chi.Router) {
				r.Use(security.RequireAdmin)
				r.Get("/admin/all-users", h.ListUsers)
				r.Patch("/admin/update-active-status/{username}", h.UpdateActiveStatus)
				r.Get("/{username}", h.GetProfile)
			})
		})
	})
}

func setupContactRoutes(r chi.Router, h *handler.ContactHandler, requireAuth, optionalAuth func(http.Handler) http.Handler) {
	r.Route("/contacts", func(r chi.Router) {
		r.With(optionalAuth).Post("/", h.CreateContact)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, security.RequireAdmin)
			r.Get("/all", h.ListContacts)
			r.Patch("/update-is-read-status/{contact_id}", h.UpdateIsRead)
		})
	})
}

func setupPostRoutes(r chi.Router, h *handler.PostHandler, requireAuth, optionalAuth func(http.Handler) http.Handler) {
	r.Route("/posts", func(r chi.Router) {
		r.With(optionalAuth, handler.PostListAccess).Get("/all", h.ListPosts)
		r.Get("/{slug}", h.GetPost)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.CreatePost)
			r.Patch("/{post_id}", h.UpdatePost)
			r.Delete("/{post_id}", h.DeletePost)
			r.With(security.RequireAdmin).Patch("/update-approved-status/{post_id}", h.UpdateApproved)
		})
	})
}

func setupMediaRoutes(r chi.Router, h *handler.MediaHandler, requireAuth func(http.Handler) http.Handler) {
	r.Route("/medias", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/upload-image", h.UploadImage)
	})
}

func fatal(message string, err error) {
	slog.Error(message, slog.Any("error", err))
	os.Exit(1)
}

func runServer(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) {
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("сервер запущен", slog.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ошибка работы сервера", slog.Any("error", err))
		}
		return
	case sig := <-signalChannel:
		slog.Info("получен сигнал остановки работы сервера", slog.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		slog.Error("ошибка при остановке сервера", slog.Any("error", err))
	} else {
		slog.Info("сервер успешно остановлен")
	}
}
