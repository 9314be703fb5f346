package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/soberline/soberline/internal/common/clock"
	"github.com/soberline/soberline/internal/common/uuid"
	"github.com/soberline/soberline/internal/handlers/discord"
	"github.com/soberline/soberline/internal/handlers/web"
	"github.com/soberline/soberline/internal/repositories/drink_log"
	"github.com/soberline/soberline/internal/repositories/profile"
	"github.com/soberline/soberline/internal/services/tracker"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	drinkLogRepo, err := drink_log.NewRedis(&drink_log.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create drink log repository: %v", err)
	}

	profileRepo, err := profile.NewRedis(&profile.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}

	// Initialize tracker service
	trackerSvc, err := tracker.New(&tracker.Config{
		DrinkLogRepo:  drinkLogRepo,
		ProfileRepo:   profileRepo,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:          discordToken,
		ApplicationID:  applicationID,
		GuildID:        guildID,
		TrackerService: trackerSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Optionally expose the read-only HTTP API
	var httpServer *http.Server
	if httpAddr := getEnv("HTTP_ADDR", ""); httpAddr != "" {
		webHandler, err := web.New(&web.Config{
			TrackerService: trackerSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create HTTP handler: %v", err)
		}

		httpServer = &http.Server{
			Addr:    httpAddr,
			Handler: webHandler.Router(),
		}

		go func() {
			log.Printf("HTTP API listening on %s", httpAddr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("HTTP server error: %v", err)
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the HTTP server first so pollers stop hitting the service
	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error stopping HTTP server: %v", err)
		}
		shutdownCancel()
	}

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
