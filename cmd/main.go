package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/askhub/askhub-server/internal/api/graphql"
	"github.com/askhub/askhub-server/internal/config"
	"github.com/askhub/askhub-server/internal/hash"
	"github.com/askhub/askhub-server/internal/logger"
	"github.com/askhub/askhub-server/internal/mail"
	"github.com/askhub/askhub-server/internal/model"
	"github.com/askhub/askhub-server/internal/repository/postgres"
	"github.com/askhub/askhub-server/internal/server"
	"github.com/askhub/askhub-server/internal/service"
	"github.com/askhub/askhub-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	answerRepo := postgres.NewAnswerRepository(db)
	tagRepo := postgres.NewTagRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := hash.NewBcrypt()

	mailer, err := mail.NewSMTP(cfg.Mail)
	if err != nil {
		logger.Fatal("failed to create mailer", "error", err)
	}

	authService := service.NewAuth(userRepo, hasher, tokenManager, mailer, cfg.App.FrontendURL, logger)
	userService := service.NewUser(userRepo, logger)
	questionService := service.NewQuestion(questionRepo, answerRepo, tagRepo, logger)

	ctxMgr := graphql.NewManager()
	resolver := graphql.NewResolver(authService, userService, questionService, ctxMgr, logger)
	router := graphql.NewRouter(resolver, tokenManager, ctxMgr, logger)

	handler, err := router.Register()
	if err != nil {
		logger.Fatal("failed to register routes", "error", err)
	}

	httpServer := server.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
