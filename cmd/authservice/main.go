package main

import (
	"context"
	"errors"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"student-auth-service/internal/auth"
	"student-auth-service/internal/config"
	"student-auth-service/internal/http"
	"student-auth-service/internal/repository/postgres"
	"student-auth-service/internal/revocation"
)

const (
	envFilePath      = ".env"
	serverAddrPrefix = ":"
	signalBufferSize = 1
	logOutputFlags   = log.LstdFlags | log.Lshortfile
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(logOutputFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Configuration loaded successfully")

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Database connection established")

	credentialRepo := postgres.NewCredentialRepository(db)
	studentRepo := postgres.NewStudentRepository(db)

	redisClient, err := revocation.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	log.Println("Redis connection established")

	revocationStore := revocation.NewRedisStore(redisClient, cfg.Auth.StoreTimeout)

	// The signing key lives only in this process. A restart invalidates
	// every outstanding token.
	signingKey, err := auth.NewSigningKey()
	if err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}

	tokenService := auth.NewTokenService(signingKey)
	authService := auth.NewService(credentialRepo, tokenService, revocationStore)
	authMiddleware := auth.NewMiddleware(tokenService, revocationStore, credentialRepo, auth.DefaultPolicy(), cfg.Auth.LookupTimeout)

	serverDeps := &http.ServerDependencies{
		Config:         cfg,
		AuthService:    authService,
		StudentStore:   studentRepo,
		AuthMiddleware: authMiddleware,
	}

	server := http.NewServer(serverDeps)

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := server.Start(serverAddrPrefix + cfg.Server.Port); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
