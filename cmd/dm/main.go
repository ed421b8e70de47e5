package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-dm-state/internal/config"
	"github.com/KirkDiggler/dnd-dm-state/internal/handlers/mcp"
	"github.com/KirkDiggler/dnd-dm-state/internal/repositories/gamestates"
	"github.com/KirkDiggler/dnd-dm-state/internal/services"
)

func main() {
	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, cleanup := openRepository(ctx, cfg)
	defer cleanup()

	// Create service provider
	serviceProvider := services.NewProvider(&services.ProviderConfig{
		StateRepository: repo,
	})

	if err := serviceProvider.StateService.Bootstrap(ctx); err != nil {
		log.Fatalf("Failed to bootstrap game state: %v", err)
	}

	server := mcp.NewServer(&mcp.ServerConfig{
		Name:    cfg.MCP.Name,
		Version: cfg.MCP.Version,
		Handler: mcp.NewHandler(&mcp.HandlerConfig{
			StateService: serviceProvider.StateService,
		}),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// A disconnected client ends the process
		defer stop()
		return server.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

// openRepository picks the configured backend. A redis backend that cannot be
// reached falls back to the state file.
func openRepository(ctx context.Context, cfg *config.Config) (gamestates.Repository, func()) {
	noop := func() {}

	switch cfg.State.Backend {
	case config.BackendMemory:
		log.Println("Using in-memory game state, nothing will survive a restart")
		return gamestates.NewInMemoryRepository(), noop

	case config.BackendSQLite:
		repo, err := gamestates.NewSQLiteRepository(ctx, &gamestates.SQLiteRepoConfig{
			Path: cfg.SQLite.Path,
		})
		if err != nil {
			log.Fatalf("Failed to open SQLite game state: %v", err)
		}
		log.Printf("Using SQLite game state at %s", cfg.SQLite.Path)
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Printf("Failed to close SQLite database: %v", err)
			}
		}

	case config.BackendRedis:
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			break
		}

		redisClient := redis.NewClient(opts)

		// Test connection
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			_ = redisClient.Close()
			break
		}

		log.Println("Successfully connected to Redis")
		repo := gamestates.NewRedisRepository(&gamestates.RedisRepoConfig{
			Client: redisClient,
			Key:    cfg.Redis.Key,
		})
		return repo, func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}
	}

	if cfg.State.Backend != config.BackendFile {
		log.Println("Falling back to the state file")
	}
	log.Printf("Using game state file at %s", cfg.State.File)
	return gamestates.NewFileRepository(&gamestates.FileRepoConfig{Path: cfg.State.File}), noop
}
