package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"mhroulette/bot"
	"mhroulette/cmd"
	"mhroulette/config"
	"mhroulette/database"
)

func main() {
	// Local development reads a .env file; in deployment the variables
	// come from the environment and the file is simply absent.
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			if err := handleMigrationCommand(); err != nil {
				log.Fatal("Migration error:", err)
			}
			return
		case "register":
			if err := handleRegisterCommand(); err != nil {
				log.Fatal("Registration error:", err)
			}
			return
		}
	}

	// Normal server operation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error:", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: mhroulette migrate [up|down|status] [args...]")
	}

	command := os.Args[2]
	switch command {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

func handleRegisterCommand() error {
	cfg := config.Get()
	if cfg.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required to register commands")
	}
	if cfg.DiscordAppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required to register commands")
	}
	return bot.RegisterCommands(cfg.DiscordToken, cfg.DiscordAppID)
}
