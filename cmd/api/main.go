package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authadapter "github.com/Shrinila/productify-backend/internal/adapter/auth"
	dbadapter "github.com/Shrinila/productify-backend/internal/adapter/db"
	httpadapter "github.com/Shrinila/productify-backend/internal/adapter/http"
	"github.com/Shrinila/productify-backend/internal/adapter/http/handlers"
	httpmiddleware "github.com/Shrinila/productify-backend/internal/adapter/http/middleware"
	appservice "github.com/Shrinila/productify-backend/internal/app/service"
	"github.com/Shrinila/productify-backend/internal/config"
	"github.com/Shrinila/productify-backend/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	cfg := config.LoadConfig()
	if cfg.TokenSecret == "" {
		logger.Fatal("TOKEN_SECRET must be set")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	hasher := authadapter.NewBcryptHasher(cfg.BcryptCost)
	tokens := authadapter.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)

	accountRepository := dbadapter.NewAccountRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	accountService := appservice.NewAccountService(accountRepository, hasher, tokens)
	taskService := appservice.NewTaskService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", "Authorization"},
		AllowCredentials: true,
	}))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(accountService)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, authHandler, taskHandler, tokens, cfg.AuthRequired)

	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
