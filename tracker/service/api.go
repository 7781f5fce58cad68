package tracker

import (
	"context"
	"fmt"

	"github.com/hearthbot/hearth/tracker/service/domain"
	"github.com/hearthbot/hearth/tracker/workflows"
)

// CreateBill validates the submitted form, posts the bill into the bills
// channel, records it keyed by the posted message's ID, and starts the
// reminder schedule. Validation failures abort before anything is posted or
// stored; a reminder-scheduling failure after the record exists is returned
// to the submitter but does not remove the record.
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*CreateBillResponse, error) {
	if err := validateCreateBillRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	dueAt, err := s.Clock.Instant(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := domain.ParseAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ref, err := s.Poster.Post(ctx, domain.CategoryBills, billPostText(req.Name, req.Amount, req.DueDate))
	if err != nil {
		return nil, fmt.Errorf("could not post bill: %w", err)
	}

	bill, err := domain.NewBill(ref.MessageID, req.Name, req.Amount, dueAt)
	if err != nil {
		return nil, fmt.Errorf("could not create bill: %w", err)
	}
	s.Store.Insert(bill)

	err = s.Execution.StartReminders(ctx, scheduleID(bill.ID), &workflows.ReminderRequest{
		Target:      domain.CategoryAnnouncements,
		Description: billReminderDescription(req.Name, req.DueDate),
		DueAt:       dueAt,
	})
	if err != nil {
		return nil, fmt.Errorf("could not schedule reminders: %w", err)
	}

	return &CreateBillResponse{
		ID:      bill.ID,
		Name:    bill.Name,
		Amount:  bill.Amount.StringFixed(2),
		DueDate: req.DueDate,
	}, nil
}

// CreateAppointment posts the appointment into its channel, announces it,
// and starts the reminder schedule. No record is retained; the appointment
// exists only as the posted message and its reminders.
func (s *Service) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	if err := validateCreateAppointmentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	dueAt, err := s.Clock.Instant(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ref, err := s.Poster.Post(ctx, domain.CategoryAppointments,
		appointmentPostText(req.Date, req.Time, req.Description))
	if err != nil {
		return nil, fmt.Errorf("could not post appointment: %w", err)
	}

	if err := s.Notifier.Send(ctx, domain.CategoryAnnouncements, appointmentAddedText()); err != nil {
		// The appointment is already posted; the missing announcement is
		// logged and absorbed.
		s.Logger.Error("announcing new appointment", "error", err)
	}

	err = s.Execution.StartReminders(ctx, scheduleID(ref.MessageID), &workflows.ReminderRequest{
		Target:      domain.CategoryAnnouncements,
		Description: req.Description,
		DueAt:       dueAt,
	})
	if err != nil {
		return nil, fmt.Errorf("could not schedule reminders: %w", err)
	}

	return &CreateAppointmentResponse{ID: ref.MessageID}, nil
}

// Acknowledge applies the category-specific transition for a ✅ on a posted
// item. Events from bot actors are ignored for every category. State is
// mutated first; announcing and deleting the source item afterwards is
// best-effort and never rolls the mutation back.
func (s *Service) Acknowledge(ctx context.Context, ev *AckEvent) error {
	if ev.ActorIsBot {
		return nil
	}

	var announcement string

	switch ev.Category {
	case domain.CategoryChores:
		announcement = choreDoneText(ev.Content, ev.ActorName)
	case domain.CategoryShopping:
		announcement = shoppingDoneText(ev.Content)
	case domain.CategoryMaintenance:
		announcement = maintenanceDoneText(ev.Content)
	case domain.CategoryAppointments:
		announcement = appointmentDoneText(domain.AppointmentDetails(ev.Content), ev.ActorName)
	case domain.CategoryBills:
		bill, ok := s.Store.Find(ev.Item.MessageID)
		if !ok {
			// Unknown ID: nothing tracked for this message, silently done.
			return nil
		}
		if bill.Paid {
			switch s.Reack {
			case domain.ReackOnce:
				return nil
			case domain.ReackReject:
				s.Logger.Warn("rejected repeat acknowledgement for paid bill",
					"bill_id", bill.ID, "actor", ev.ActorName)
				return nil
			}
		}
		paid, _ := s.Store.MarkPaid(ev.Item.MessageID)
		announcement = billPaidText(paid.Name)
	default:
		return fmt.Errorf("unknown channel category %q", ev.Category)
	}

	if err := s.Notifier.Send(ctx, domain.CategoryAnnouncements, announcement); err != nil {
		s.Logger.Error("sending completion announcement", "category", ev.Category, "error", err)
	}
	if err := s.Remover.Delete(ctx, ev.Item); err != nil {
		s.Logger.Error("deleting acknowledged item", "category", ev.Category, "error", err)
	}

	return nil
}

// Summary partitions the tracked bills due in the current calendar month and
// year into paid and unpaid groups. Pure read; two calls against unchanged
// state render identical text.
func (s *Service) Summary(ctx context.Context) (*SummaryResponse, error) {
	now := s.Clock.In(s.Now())

	var paid, unpaid []domain.Bill
	for _, bill := range s.Store.All() {
		if !domain.SameMonth(bill.DueAt, now) {
			continue
		}
		if bill.Paid {
			paid = append(paid, bill)
		} else {
			unpaid = append(unpaid, bill)
		}
	}

	return &SummaryResponse{Text: summaryText(now, paid, unpaid)}, nil
}

func scheduleID(messageID string) string {
	return "reminders-" + messageID
}
