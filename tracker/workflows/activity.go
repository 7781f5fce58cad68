package workflows

import (
	"context"

	"github.com/hearthbot/hearth/tracker/service/domain"
)

var SendReminder string = "SendReminder"

// Notifier posts announcement text to a channel category. The worker wires in
// the platform-backed implementation; workflow code only sees the activity.
type Notifier interface {
	Send(ctx context.Context, target domain.Category, text string) error
}

type Activities struct {
	Notifier Notifier
}

func (a *Activities) SendReminder(ctx context.Context, target domain.Category, text string) error {
	return a.Notifier.Send(ctx, target, text)
}
