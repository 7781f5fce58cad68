package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hearthbot/hearth/tracker/service/domain"
)

// ErrInvalidInput marks failures caused by the submitted form rather than by
// a collaborator, so callers can report the cause back to the submitter.
var ErrInvalidInput = errors.New("invalid input")

// ItemRef addresses a posted item on the platform, the handle the deletion
// collaborator needs after a transition.
type ItemRef struct {
	ChannelID string
	MessageID string
}

type CreateBillRequest struct {
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	DueDate string `json:"due_date"`
}

type CreateBillResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	DueDate string `json:"due_date"`
}

func validateCreateBillRequest(req *CreateBillRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("bill name is required")
	}
	if strings.TrimSpace(req.Amount) == "" {
		return fmt.Errorf("amount is required")
	}
	if strings.TrimSpace(req.DueDate) == "" {
		return fmt.Errorf("due date is required")
	}
	return nil
}

type CreateAppointmentRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

type CreateAppointmentResponse struct {
	ID string `json:"id"`
}

func validateCreateAppointmentRequest(req *CreateAppointmentRequest) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("description is required")
	}
	// The time field is display-only; the reminder schedule runs off the
	// configured time-of-day, as the original bot did.
	return nil
}

// AckEvent is an acknowledgement delivered by the platform feed: someone
// marked a posted item as done/paid.
type AckEvent struct {
	ActorIsBot bool
	ActorName  string
	Category   domain.Category
	Item       ItemRef
	Content    string
}

type SummaryResponse struct {
	Text string `json:"text"`
}
