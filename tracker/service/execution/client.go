package execution

import (
	"context"
	"fmt"

	"github.com/hearthbot/hearth/tracker/workflows"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
)

type Client struct {
	Temporal client.Client
}

// Dependency injection -- primarily for mock testing
var Dial = client.Dial

func New(opts client.Options) (*Client, error) {
	c, err := Dial(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Temporal: %w", err)
	}
	return &Client{Temporal: c}, nil
}

func (c *Client) Close() {
	c.Temporal.Close()
}

// StartReminders launches the reminder schedule for a record. The workflow ID
// is derived from the record, and duplicate IDs are rejected so a record can
// never accumulate two live schedules.
func (c *Client) StartReminders(ctx context.Context, scheduleID string, req *workflows.ReminderRequest) error {
	_, err := c.Temporal.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                    scheduleID,
		TaskQueue:             workflows.TaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}, workflows.ReminderWorkflow, req)

	if err != nil {
		return fmt.Errorf("unable to start reminder schedule %s: %w", scheduleID, err)
	}

	return nil
}

// IsScheduleRunning reports whether a record's reminder schedule is still
// live on the engine.
func (c *Client) IsScheduleRunning(scheduleID string) error {
	response, err := c.Temporal.DescribeWorkflowExecution(context.Background(), scheduleID, "")
	if err != nil {
		return err
	}
	if response.WorkflowExecutionInfo.Status != enums.WORKFLOW_EXECUTION_STATUS_RUNNING {
		return fmt.Errorf("reminder schedule %s is not running", scheduleID)
	}
	return nil
}
