package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{"Plain Number", "120.50", "120.5", false},
		{"Dollar Sign", "$120.50", "120.5", false},
		{"Thousands Separator", "$1,200.00", "1200", false},
		{"Whitespace And Currency Word", " 45 USD ", "45", false},
		{"Zero", "0", "0", false},
		{"No Digits", "free", "", true},
		{"Empty", "", "", true},
		{"Negative", "-5", "", true},
		{"Multiple Dots", "1.2.3", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, amount.Equal(decimal.RequireFromString(tc.expected)),
					"got %s, want %s", amount, tc.expected)
			}
		})
	}
}

func TestNewBill(t *testing.T) {
	due := time.Date(2025, time.January, 31, 23, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        string
		billName  string
		amount    string
		expectErr bool
	}{
		{"Valid", "123456", "Electricity", "$120.50", false},
		{"Empty ID", "", "Electricity", "$120.50", true},
		{"Empty Name", "123456", "  ", "$120.50", true},
		{"Bad Amount", "123456", "Electricity", "soon", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bill, err := NewBill(tc.id, tc.billName, tc.amount, due)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.id, bill.ID)
			assert.False(t, bill.Paid)
			assert.Equal(t, due, bill.DueAt)
		})
	}
}

func TestDueClockInstant(t *testing.T) {
	clock, err := NewDueClock("23:45", -240)
	require.NoError(t, err)

	due, err := clock.Instant("2025-01-31")
	require.NoError(t, err)

	assert.Equal(t, 2025, due.Year())
	assert.Equal(t, time.January, due.Month())
	assert.Equal(t, 31, due.Day())
	assert.Equal(t, 23, due.Hour())
	assert.Equal(t, 45, due.Minute())

	_, offset := due.Zone()
	assert.Equal(t, -4*60*60, offset)

	// Matches the original bot's `${date}T23:45:00-04:00` construction.
	expected := time.Date(2025, time.January, 31, 23, 45, 0, 0, time.FixedZone("UTC-04:00", -4*60*60))
	assert.True(t, due.Equal(expected))
}

func TestDueClockInvalidInput(t *testing.T) {
	_, err := NewDueClock("25:99", -240)
	assert.Error(t, err)

	_, err = NewDueClock("23:45", 15*60)
	assert.Error(t, err)

	clock, err := NewDueClock("23:45", -240)
	require.NoError(t, err)

	_, err = clock.Instant("31-01-2025")
	assert.Error(t, err)

	_, err = clock.Instant("someday")
	assert.Error(t, err)
}

func TestSameMonth(t *testing.T) {
	jan2025 := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		other    time.Time
		expected bool
	}{
		{"Same Month Same Year", time.Date(2025, time.January, 31, 23, 45, 0, 0, time.UTC), true},
		{"Different Month", time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), false},
		{"Same Month Different Year", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SameMonth(jan2025, tc.other))
		})
	}
}

func TestAppointmentDetails(t *testing.T) {
	content := "📅 **New Appointment Created** 📅\n- **Date:** 2025-03-10\n- **Time:** 2:30 PM\n- **Details:** Dentist"

	details := AppointmentDetails(content)
	assert.Equal(t, "- **Time:** 2:30 PM\n- **Details:** Dentist", details)

	assert.Equal(t, "", AppointmentDetails("just one line"))
	assert.Equal(t, "", AppointmentDetails("two\nlines"))
}

func TestParseReackPolicy(t *testing.T) {
	tests := []struct {
		raw       string
		expectErr bool
	}{
		{"reannounce", false},
		{"once", false},
		{"reject", false},
		{"twice", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			policy, err := ParseReackPolicy(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, ReackPolicy(tc.raw), policy)
			}
		})
	}
}
