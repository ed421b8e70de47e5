package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-dm-state/internal/config"
	"github.com/KirkDiggler/dnd-dm-state/internal/repositories/gamestates"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var repo gamestates.Repository
	switch cfg.State.Backend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}

		client := redis.NewClient(opts)

		// Test connection first
		if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
			log.Fatalf("Failed to connect to Redis: %v", pingErr)
		}
		defer func() {
			clientErr := client.Close()
			if clientErr != nil {
				log.Printf("Failed to close Redis connection: %v", clientErr)
			}
		}()

		repo = gamestates.NewRedisRepository(&gamestates.RedisRepoConfig{
			Client: client,
			Key:    cfg.Redis.Key,
		})
		fmt.Printf("Source: redis key %s\n", cfg.Redis.Key)

	case config.BackendSQLite:
		sqliteRepo, err := gamestates.NewSQLiteRepository(ctx, &gamestates.SQLiteRepoConfig{
			Path: cfg.SQLite.Path,
		})
		if err != nil {
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
		defer func() {
			if closeErr := sqliteRepo.Close(); closeErr != nil {
				log.Printf("Failed to close SQLite database: %v", closeErr)
			}
		}()

		repo = sqliteRepo
		fmt.Printf("Source: sqlite %s\n", cfg.SQLite.Path)
		if updatedAt, err := sqliteRepo.UpdatedAt(ctx); err == nil && !updatedAt.IsZero() {
			fmt.Printf("Updated: %s\n", updatedAt.Local().Format("2006-01-02 15:04:05"))
		}

	case config.BackendMemory:
		log.Fatalf("The memory backend has nothing to inspect")

	default:
		repo = gamestates.NewFileRepository(&gamestates.FileRepoConfig{Path: cfg.State.File})
		fmt.Printf("Source: file %s\n", cfg.State.File)
	}

	exists, err := repo.Exists(ctx)
	if err != nil {
		log.Fatalf("Failed to check game state: %v", err)
	}
	if !exists {
		fmt.Println("No game state stored yet, showing defaults")
	}

	current, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load game state: %v", err)
	}

	fmt.Println("---")
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(current); err != nil {
		log.Fatalf("Failed to render game state: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Printf("Failed to flush output: %v", err)
	}
}
