package main

import (
	"context"
	"crew-dispatch/auth"
	"crew-dispatch/infrastructure/grpc/server"
	"crew-dispatch/infrastructure/rest"
	"crew-dispatch/infrastructure/socket"
	"crew-dispatch/internal"
	"crew-dispatch/repositories"
	"crew-dispatch/runtime"
	"crew-dispatch/runtime/workers"
	"crew-dispatch/services"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and owns their lifecycle, so that deferred cleanups
// run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, internal.DispatchMapper)
	}

	// 3. Storage
	users := repositories.NewUserRepository(db)
	activities := repositories.NewActivityRepository(db)
	messages := repositories.NewMessageRepository(db, logger)
	chats := repositories.NewChatRepository(db)
	events := repositories.NewEventRepository(db)
	opportunities := repositories.NewOpportunityRepository(db)

	// 4. Runtime: hub, dispatcher, supervised task pool and health monitoring
	hub := runtime.NewHub(logger, runtime.NewRegistry(), runtime.NewRooms())
	orchestrator := runtime.NewOrchestrator(logger,
		workers.NewSupervisor(logger, config.RestartInterval),
		hub,
		workers.NewTaskPool(logger, config.TaskBufferSize, config.TaskTimeout),
		config.TaskWorkers, config.WriteTimeout)

	hubStats := func() map[string]any {
		stats := hub.Stats()
		return map[string]any{"sessions": stats.Sessions, "users": stats.Users, "rooms": stats.Rooms}
	}
	health := server.NewHealthServer(hubStats)
	orchestrator.Add(workers.NewHealthMonitoringWorker(logger, config.HealthInterval,
		func(context.Context) error { return repositories.Ping(db) },
		hubStats, health.Report))

	// 5. Services
	dispatcher := orchestrator.Dispatcher()
	tokens := auth.NewTokens(config.JWTSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(users, tokens)
	notifications := services.NewNotificationService(logger, users, dispatcher)
	feed := services.NewActivityService(logger, activities, users, opportunities, events)
	chatService := services.NewChatService(logger, users, messages, chats, events,
		notifications, feed, dispatcher, orchestrator.Tasks(), config.DefaultPageSize)
	notifier := services.NewOpportunityNotifier(logger, users, messages, events,
		notifications, feed, orchestrator.Tasks())

	// 6. Transports
	wsHandler := socket.NewHandler(logger, hub, dispatcher, authService, socket.Options{
		BufferSize:     config.ConnectionBufferSize,
		WriteTimeout:   config.WriteTimeout,
		PongWait:       config.PongWait,
		AllowedOrigins: config.AllowedOrigins(),
	})
	if !logger.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := rest.NewRouter(logger, rest.Deps{
		Tokens:         tokens,
		Auth:           authService,
		Users:          users,
		Opportunities:  opportunities,
		Chat:           chatService,
		Feed:           feed,
		Notifications:  notifications,
		Hooks:          notifier,
		Socket:         wsHandler.Serve,
		Health:         health.Snapshot,
		AllowedOrigins: config.AllowedOrigins(),
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.HTTPHost, config.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcAddress := fmt.Sprintf("%s:%d", config.HTTPHost, config.GRPCPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(sdkgrpc.UnaryLoggingInterceptor(logger)))
	health.Register(grpcServer)

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errChan := make(chan error, 3)

	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	go func() {
		logger.Info("Starting gRPC health server", "address", grpcAddress)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	code := exitOK
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-errChan:
		logger.Error("Component failed, shutting down", "error", err)
		code = exitRuntime
	}

	// 9. Graceful Shutdown: stop accepting, drop every live session, drain workers
	logger.Info("Shutting down gracefully...")
	health.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("HTTP shutdown incomplete", "error", shutdownErr)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return code, err
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
