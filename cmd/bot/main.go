package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	sdklog "go.temporal.io/sdk/log"

	"github.com/hearthbot/hearth/config"
	"github.com/hearthbot/hearth/discord"
	tracker "github.com/hearthbot/hearth/tracker/service"
	"github.com/hearthbot/hearth/tracker/service/execution"
	"go.temporal.io/sdk/client"
)

// The bot process owns the gateway connection: it registers the slash
// commands, posts and reacts on behalf of the tracker, and forwards
// interactions and ✅ reactions into the service.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	clock, err := cfg.DueClock()
	if err != nil {
		logger.Error("parsing due-time configuration", "error", err)
		os.Exit(1)
	}
	reack, err := cfg.Reack()
	if err != nil {
		logger.Error("parsing re-acknowledgement policy", "error", err)
		os.Exit(1)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Error("creating discord session", "error", err)
		os.Exit(1)
	}

	exec, err := execution.New(client.Options{
		HostPort: cfg.TemporalHostPort,
		Logger:   sdklog.NewStructuredLogger(logger),
	})
	if err != nil {
		logger.Error("connecting to temporal", "error", err)
		os.Exit(1)
	}
	defer exec.Close()

	sink := discord.NewSink(session, cfg.DiscordGuildID, cfg.Channels())
	service := tracker.New(tracker.NewMemoryStore(), exec, sink, sink, sink, clock, reack, logger)
	adapter := discord.NewAdapter(session, service, cfg.Channels(), logger)

	if err := adapter.Open(); err != nil {
		logger.Error("opening gateway connection", "error", err)
		os.Exit(1)
	}
	defer adapter.Close()

	if err := discord.RegisterCommands(session, cfg.DiscordAppID); err != nil {
		logger.Error("registering slash commands", "error", err)
		os.Exit(1)
	}
	logger.Info("bot started", "guild_id", cfg.DiscordGuildID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received")
}
