package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a tracked record keyed by the ID of the message announcing it.
// The message ID doubles as the correlation token for acknowledgement events.
type Bill struct {
	ID     string
	Name   string
	Amount decimal.Decimal
	DueAt  time.Time
	Paid   bool
}

// Appointment is never stored; it only carries the fields needed to post
// the announcement and start the reminder schedule.
type Appointment struct {
	Date        string
	Time        string
	Description string
}

type Category string

const (
	CategoryChores        Category = "chores"
	CategoryShopping      Category = "shopping"
	CategoryMaintenance   Category = "maintenance"
	CategoryAppointments  Category = "appointments"
	CategoryBills         Category = "bills"
	CategoryAnnouncements Category = "announcements"
)

// ReackPolicy decides what a second ✅ on an already-paid bill does.
type ReackPolicy string

const (
	// ReackReannounce re-emits the paid announcement, matching the
	// original bot's behavior. Paid stays true either way.
	ReackReannounce ReackPolicy = "reannounce"
	// ReackOnce silently ignores the repeat acknowledgement.
	ReackOnce ReackPolicy = "once"
	// ReackReject ignores the repeat and logs it as a rejected event.
	ReackReject ReackPolicy = "reject"
)

func ParseReackPolicy(s string) (ReackPolicy, error) {
	switch ReackPolicy(s) {
	case ReackReannounce, ReackOnce, ReackReject:
		return ReackPolicy(s), nil
	}
	return "", fmt.Errorf("unknown re-acknowledgement policy %q", s)
}

func NewBill(id, name, rawAmount string, dueAt time.Time) (*Bill, error) {
	if id == "" {
		return nil, errors.New("bill ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("bill name cannot be empty")
	}

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	return &Bill{
		ID:     id,
		Name:   name,
		Amount: amount,
		DueAt:  dueAt,
	}, nil
}

// ParseAmount extracts a non-negative decimal from free-text input such as
// "$120.50" or "1,200". Everything except digits, '.' and '-' is stripped
// before parsing; input that still fails to parse is rejected rather than
// stored as a corrupt value.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("no numeric value in %q", raw)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse %q as an amount: %w", raw, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s cannot be negative", amount)
	}

	return amount, nil
}

// DueClock builds due instants from calendar dates. The time-of-day and UTC
// offset are fixed per deployment, not derived from any user timezone.
type DueClock struct {
	hour, minute int
	loc          *time.Location
}

// NewDueClock parses a "HH:MM" time-of-day and a UTC offset in minutes.
// The defaults elsewhere in the repo (23:45, -240) reproduce the original
// bot's hard-coded `T23:45:00-04:00` suffix.
func NewDueClock(timeOfDay string, offsetMinutes int) (DueClock, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return DueClock{}, fmt.Errorf("invalid time of day %q: %w", timeOfDay, err)
	}
	if offsetMinutes < -14*60 || offsetMinutes > 14*60 {
		return DueClock{}, fmt.Errorf("UTC offset %d minutes out of range", offsetMinutes)
	}

	name := fmt.Sprintf("UTC%+03d:%02d", offsetMinutes/60, abs(offsetMinutes%60))
	return DueClock{
		hour:   t.Hour(),
		minute: t.Minute(),
		loc:    time.FixedZone(name, offsetMinutes*60),
	}, nil
}

// Instant combines a "YYYY-MM-DD" date with the clock's time-of-day and zone.
func (c DueClock) Instant(date string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.hour, c.minute, 0, 0, c.loc), nil
}

// In converts an arbitrary instant into the clock's zone, so month/year
// comparisons use the same calendar the due instants were built in.
func (c DueClock) In(t time.Time) time.Time {
	return t.In(c.loc)
}

// SameMonth reports whether two instants fall in the same calendar month of
// the same year. A matching month number in a different year does not count.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AppointmentDetails recovers the description portion of a posted appointment
// message: everything after the two-line header.
func AppointmentDetails(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= 2 {
		return ""
	}
	return strings.Join(lines[2:], "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
