package main

import (
	"CareDesk/config"
	"CareDesk/database"
	"CareDesk/integrations/cognito"
	"CareDesk/repositories"
	"CareDesk/routes"
	"CareDesk/utils"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caredesk",
		Short: "CareDesk clinic API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			db, err := database.InitDB(ctx, cfg.DBURL, database.DefaultPool, cfg.IsDev())
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			logger.Info().Msg("clinic tables migrated")

			if cfg.IdentityProvider != config.IdentityProviderDatabase {
				return nil
			}
			adminDB, err := database.InitDB(ctx, cfg.DBAdminURL, database.AdminPool, cfg.IsDev())
			if err != nil {
				return err
			}
			defer database.Close(adminDB)

			if err := database.MigrateIdentity(adminDB); err != nil {
				return err
			}
			logger.Info().Msg("identity tables migrated")
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	db, err := database.InitDB(ctx, cfg.DBURL, database.DefaultPool, cfg.IsDev())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer closeQuietly(logger, db)
	logger.Info().Msg("connected to database")

	deps := routes.Dependencies{DB: db}

	switch cfg.IdentityProvider {
	case config.IdentityProviderCognito:
		admin, err := cognito.InitAdmin(ctx, cfg.CognitoUserPoolID)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize Cognito admin client")
		}
		deps.Identity = admin
	default:
		adminDB, err := database.InitDB(ctx, cfg.DBAdminURL, database.AdminPool, cfg.IsDev())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize administrative database connection")
		}
		defer closeQuietly(logger, adminDB)
		authRepo := repositories.NewAuthRepository(adminDB)
		deps.Identity = authRepo
		deps.AuthUsers = authRepo
	}

	if cfg.RedisAddress != "" {
		redisCfg, err := database.LoadRedisConfig(cfg.RedisAddress, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid Redis configuration")
		}
		client, err := database.NewRedisClient(ctx, redisCfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize Redis client")
		}
		defer client.Close()
		deps.Locker = database.NewRedisLocker(client)
		logger.Info().Msg("booking lock enabled")
	}

	if cfg.EmailEnabled() {
		deps.Mailer = utils.NewSMTPMailer(utils.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
		})
	}

	if cfg.TokensEnabled() {
		tokens, err := utils.NewTokenMaker(cfg.SymmetricKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize token maker")
		}
		deps.Tokens = tokens
	}

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        routes.SetupRoutes(cfg, deps, logger),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}

	wg.Wait()
	logger.Info().Msg("server exited gracefully")
	return nil
}

func closeQuietly(logger zerolog.Logger, db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.Warn().Err(err).Msg("failed to close database connection")
	}
}
