package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/hearthbot/hearth/tracker/service/domain"
	"github.com/hearthbot/hearth/tracker/workflows"
)

//go:generate mockgen -source=service.go -destination=../mocks/mocks.go -package=mocks

// Execution starts reminder schedules on the workflow engine. Schedule IDs
// are derived from the owning record's message ID.
type Execution interface {
	StartReminders(ctx context.Context, scheduleID string, req *workflows.ReminderRequest) error
}

// Notifier posts announcement text to a channel category.
type Notifier interface {
	Send(ctx context.Context, target domain.Category, text string) error
}

// Poster publishes a new item into a channel category and returns its handle.
type Poster interface {
	Post(ctx context.Context, target domain.Category, text string) (ItemRef, error)
}

// Remover deletes a previously posted item.
type Remover interface {
	Delete(ctx context.Context, ref ItemRef) error
}

type Service struct {
	Store     Store
	Execution Execution
	Notifier  Notifier
	Poster    Poster
	Remover   Remover

	Clock domain.DueClock
	Reack domain.ReackPolicy

	// Now is injectable so summaries are testable against a fixed instant.
	Now func() time.Time

	Logger *slog.Logger
}

func New(
	store Store,
	execution Execution,
	notifier Notifier,
	poster Poster,
	remover Remover,
	clock domain.DueClock,
	reack domain.ReackPolicy,
	logger *slog.Logger,
) *Service {
	return &Service{
		Store:     store,
		Execution: execution,
		Notifier:  notifier,
		Poster:    poster,
		Remover:   remover,
		Clock:     clock,
		Reack:     reack,
		Now:       time.Now,
		Logger:    logger,
	}
}
