package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	sdklog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	"github.com/hearthbot/hearth/config"
	"github.com/hearthbot/hearth/discord"
	"github.com/hearthbot/hearth/tracker/workflows"
)

// The worker process runs the reminder workflows. Deliveries go through the
// REST API, so its discord session never opens a gateway connection.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Error("creating discord session", "error", err)
		os.Exit(1)
	}

	c, err := client.Dial(client.Options{
		HostPort: cfg.TemporalHostPort,
		Logger:   sdklog.NewStructuredLogger(logger),
	})
	if err != nil {
		logger.Error("connecting to temporal", "error", err)
		os.Exit(1)
	}
	defer c.Close()

	sink := discord.NewSink(session, cfg.DiscordGuildID, cfg.Channels())

	w := worker.New(c, workflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflows.ReminderWorkflow)
	w.RegisterActivity(&workflows.Activities{Notifier: sink})

	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}
