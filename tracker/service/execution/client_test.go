package execution

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hearthbot/hearth/tracker/service/domain"
	"github.com/hearthbot/hearth/tracker/workflows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
)

func TestNew(t *testing.T) {
	Dial = func(options client.Options) (client.Client, error) {
		return &mocks.Client{}, nil
	}

	c, err := New(client.Options{})
	assert.NoError(t, err)
	assert.NotNil(t, c)

	Dial = func(options client.Options) (client.Client, error) {
		return nil, fmt.Errorf("connection error")
	}

	c, err = New(client.Options{})
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestStartReminders(t *testing.T) {
	req := &workflows.ReminderRequest{
		Target:      domain.CategoryAnnouncements,
		Description: "Bill: Electricity (Due Date: 2025-01-31)",
		DueAt:       time.Date(2025, time.January, 31, 23, 45, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		mockError error
		expectErr bool
	}{
		{"Schedule Started", nil, false},
		{"Engine Error", errors.New("task queue unavailable"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := &mocks.Client{}
			mockClient.On("ExecuteWorkflow", mock.Anything, mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
				return opts.ID == "reminders-m1" &&
					opts.TaskQueue == workflows.TaskQueue &&
					opts.WorkflowIDReusePolicy == enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE
			}), mock.Anything, mock.Anything).
				Return(&mocks.WorkflowRun{}, tc.mockError)

			c := &Client{Temporal: mockClient}
			err := c.StartReminders(context.Background(), "reminders-m1", req)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockClient.AssertExpectations(t)
		})
	}
}

func TestIsScheduleRunning(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse *workflowservice.DescribeWorkflowExecutionResponse
		mockError    error
		expectErr    bool
	}{
		{
			name: "Schedule Running",
			mockResponse: &workflowservice.DescribeWorkflowExecutionResponse{
				WorkflowExecutionInfo: &workflow.WorkflowExecutionInfo{
					Status: enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
				},
			},
		},
		{
			name: "Schedule Completed",
			mockResponse: &workflowservice.DescribeWorkflowExecutionResponse{
				WorkflowExecutionInfo: &workflow.WorkflowExecutionInfo{
					Status: enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
				},
			},
			expectErr: true,
		},
		{
			name:      "Describe Error",
			mockError: errors.New("not found"),
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := &mocks.Client{}
			mockClient.On("DescribeWorkflowExecution", mock.Anything, "reminders-m1", "").
				Return(tc.mockResponse, tc.mockError)

			c := &Client{Temporal: mockClient}
			err := c.IsScheduleRunning("reminders-m1")

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
