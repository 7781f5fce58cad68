package workflows

import (
	"fmt"
	"time"

	"github.com/hearthbot/hearth/tracker/service/domain"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TaskQueue is shared between the worker and the clients that start
// reminder schedules.
const TaskQueue = "reminder-queue"

// ReminderRequest describes one reminder schedule: where the notifications
// go, what they say, and the due instant the offsets count back from.
type ReminderRequest struct {
	Target      domain.Category
	Description string
	DueAt       time.Time
}

var ao = workflow.ActivityOptions{
	StartToCloseTimeout: 5 * time.Second,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		MaximumInterval:    time.Minute,
		BackoffCoefficient: 2,
		MaximumAttempts:    5,
	},
}

// reminderOffsets are the fixed durations counted back from the due instant,
// in firing order.
var reminderOffsets = []int{3, 1}

// ReminderWorkflow sends one notification per reminder offset that still lies
// in the future at start time. Offsets already elapsed are dropped silently;
// a dropped or failed leg never blocks the next one. Workflow IDs are derived
// from the owning record so a schedule stays addressable per record.
func ReminderWorkflow(ctx workflow.Context, req *ReminderRequest) error {
	logger := workflow.GetLogger(ctx)
	ctx = workflow.WithActivityOptions(ctx, ao)

	// Future-or-not is judged once, against "now" at scheduling time.
	// An instant exactly equal to now counts as already elapsed.
	started := workflow.Now(ctx)

	for _, days := range reminderOffsets {
		fireAt := req.DueAt.AddDate(0, 0, -days)
		if !fireAt.After(started) {
			logger.Info("Reminder is in the past, skipping",
				"DaysBefore", days, "FireAt", fireAt, "Description", req.Description)
			continue
		}

		if delay := fireAt.Sub(workflow.Now(ctx)); delay > 0 {
			if err := workflow.Sleep(ctx, delay); err != nil {
				return err
			}
		}

		text := fmt.Sprintf("⏰ **Reminder:** %s left for %s!", daysLeft(days), req.Description)
		err := workflow.ExecuteActivity(ctx, SendReminder, req.Target, text).Get(ctx, nil)
		if err != nil {
			// A fired reminder is best-effort; the remaining leg still runs.
			logger.Error("Sending reminder", "DaysBefore", days, "Error", err)
		}
	}

	return nil
}

func daysLeft(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
