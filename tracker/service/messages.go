package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/hearthbot/hearth/tracker/service/domain"
)

// Announcement and post texts, kept byte-for-byte compatible with the
// original bot so existing servers see no change.

func billPostText(name, amount, dueDate string) string {
	return fmt.Sprintf("💸 **New Bill Added** 💸\n- **Bill Name:** %s\n- **Amount:** %s\n- **Due Date:** %s",
		name, amount, dueDate)
}

func appointmentPostText(date, timeOfDay, description string) string {
	return fmt.Sprintf("📅 **New Appointment Created** 📅\n- **Date:** %s\n- **Time:** %s\n- **Details:** %s",
		date, timeOfDay, description)
}

func appointmentAddedText() string {
	return "✅ **An appointment has been successfully added to the schedule!** ✅"
}

func billReminderDescription(name, dueDate string) string {
	return fmt.Sprintf("Bill: %s (Due Date: %s)", name, dueDate)
}

func choreDoneText(task, user string) string {
	return fmt.Sprintf("🎉 **A chore has been completed!**\n- **Task:** %s\n- **Completed by:** %s", task, user)
}

func shoppingDoneText(item string) string {
	return fmt.Sprintf("🛒 **The %s from the shopping list has been added to the cart!**", item)
}

func maintenanceDoneText(object string) string {
	return fmt.Sprintf("🛠 **The maintenance for the %s has been completed!**", object)
}

func appointmentDoneText(details, user string) string {
	return fmt.Sprintf("📅 **An appointment has been marked as completed!**\n- **Details:** %s\n- **Marked by:** %s",
		details, user)
}

func billPaidText(name string) string {
	return fmt.Sprintf("💸 **A bill has been marked as paid!**\n- **Bill Name:** %s", name)
}

func summaryText(now time.Time, paid, unpaid []domain.Bill) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 **Bill Summary for %s %d** 📊\n\n", now.Month().String(), now.Year())

	b.WriteString("**Paid Bills:**\n")
	b.WriteString(billLines(paid, "No paid bills."))
	b.WriteString("\n\n**Unpaid Bills:**\n")
	b.WriteString(billLines(unpaid, "No unpaid bills."))

	return b.String()
}

func billLines(bills []domain.Bill, placeholder string) string {
	if len(bills) == 0 {
		return placeholder
	}
	lines := make([]string, 0, len(bills))
	for _, bill := range bills {
		lines = append(lines, fmt.Sprintf("- %s: $%s", bill.Name, bill.Amount.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}
