// Package main is the entry point for the LaffeyBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/LaffeyBotGo/internal/commands"
	"github.com/PancyStudios/LaffeyBotGo/internal/events"
	"github.com/PancyStudios/LaffeyBotGo/pkg/config"
	"github.com/PancyStudios/LaffeyBotGo/pkg/counting"
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/PancyStudios/LaffeyBotGo/pkg/mqtt"
	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
	"github.com/PancyStudios/LaffeyBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando LaffeyBot Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize JSON stores and the engines on top of them
	storage.InitGlobalStores(cfg.DataDir)
	moderation.Init(storage.GlobalWarnStore, storage.GlobalQuarantineStore)
	counting.Init(storage.GlobalCountingStore)

	// Initialize MQTT
	mqttClientID := "laffeybot"
	if !cfg.IsProd() {
		mqttClientID = "laffeybot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server and mirror bot events to its live feed
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer)
	mqtt.SetBroadcaster(web.GetFeed().Broadcast)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	logger.Success("LaffeyBot Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando LaffeyBot Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
