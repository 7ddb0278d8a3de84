package main

import (
	"fmt"
	"os"
	"time"

	"aircontrol/internal/config"
	"aircontrol/internal/database"
	"aircontrol/internal/events"
	"aircontrol/internal/llm"
	applog "aircontrol/internal/logger"
	"aircontrol/internal/middleware"
	"aircontrol/internal/modules/auth"
	"aircontrol/internal/modules/catalog"
	"aircontrol/internal/modules/contracts"
	"aircontrol/internal/modules/engineers"
	"aircontrol/internal/modules/exchange"
	"aircontrol/internal/modules/notifications"
	"aircontrol/internal/modules/planner"
	"aircontrol/internal/modules/reports"
	"aircontrol/internal/modules/settings"
	jwtsvc "aircontrol/internal/pkg/jwt"
	"aircontrol/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := applog.New(cfg.Environment)

	db, err := database.Connect(cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}

	contractRepo := repository.NewContractRepository(db)
	engineerRepo := repository.NewEngineerRepository(db)
	modelRepo := repository.NewEquipmentModelRepository(db)
	userRepo := repository.NewUserRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	for _, m := range []func() error{
		contractRepo.Migrate,
		engineerRepo.Migrate,
		modelRepo.Migrate,
		userRepo.Migrate,
		reminderRepo.Migrate,
		settingsRepo.Migrate,
	} {
		if err := m(); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
	}

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	hub := events.NewHub()
	defer hub.Close()
	wsHandler := events.NewWSHandler(hub, j, log)

	oracle := llm.NewClient(llm.Config{
		Endpoint:    cfg.AI.Endpoint,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		Timeout:     cfg.AI.Timeout,
	})

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	contractHandler := contracts.NewHandler(contracts.NewService(contractRepo, engineerRepo, hub))
	engineerHandler := engineers.NewHandler(engineers.NewService(engineerRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(modelRepo))
	plannerHandler := planner.NewHandler(planner.NewService(oracle, log))
	reportsHandler := reports.NewHandler(reports.NewService(contractRepo, engineerRepo))
	notifyHandler := notifications.NewHandler(notifications.NewService(contractRepo, reminderRepo))
	settingsHandler := settings.NewHandler(settings.NewService(settingsRepo))

	exchangeService := exchange.NewService(contractRepo, engineerRepo, modelRepo, log)
	exchangeHandler := exchange.NewHandler(exchangeService, exchange.NewActGenerator(cfg.ActFontPath))

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			contractHandler.RegisterRoutes(protected)
			engineerHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			plannerHandler.RegisterRoutes(protected)
			reportsHandler.RegisterRoutes(protected)
			notifyHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			exchangeHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole("admin"))
			{
				authHandler.RegisterAdminRoutes(admin)
				exchangeHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	// Websocket auth goes through the token query param inside the handler.
	r.GET("/ws", wsHandler.HandleWebSocket)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("starting api server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
