package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	commandAppointment = "appointment"
	commandAddBill     = "add-bill"
	commandSummary     = "summary"

	billModalID        = "billModal"
	appointmentModalID = "appointmentModal"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        commandAppointment,
		Description: "Create a new appointment",
	},
	{
		Name:        commandAddBill,
		Description: "Add a new bill to the bills channel",
	},
	{
		Name:        commandSummary,
		Description: "Get a summary of paid and unpaid bills this month",
	},
}

// RegisterCommands overwrites the application's slash commands on startup.
func RegisterCommands(session *discordgo.Session, appID string) error {
	if _, err := session.ApplicationCommandBulkOverwrite(appID, "", commands); err != nil {
		return fmt.Errorf("registering application commands: %w", err)
	}
	return nil
}

func billModal() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: billModalID,
			Title:    "Add a New Bill",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "billName",
						Label:       "Bill Name",
						Style:       discordgo.TextInputShort,
						Placeholder: "e.g., Electricity Bill",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "amount",
						Label:       "Amount",
						Style:       discordgo.TextInputShort,
						Placeholder: "e.g., $120",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "dueDate",
						Label:       "Due Date",
						Style:       discordgo.TextInputShort,
						Placeholder: "e.g., 2025-01-31",
						Required:    true,
					},
				}},
			},
		},
	}
}

func appointmentModal() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: appointmentModalID,
			Title:    "New Appointment",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "dateInput",
						Label:       "Date (YYYY-MM-DD)",
						Style:       discordgo.TextInputShort,
						Placeholder: "Enter the date of the appointment",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "timeInput",
						Label:       "Time (HH:MM AM/PM)",
						Style:       discordgo.TextInputShort,
						Placeholder: "Enter the time of the appointment",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "descriptionInput",
						Label:       "Description",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "What's the appointment about?",
						Required:    true,
					},
				}},
			},
		},
	}
}

// modalValues flattens a modal submission into its text-input values keyed by
// custom ID.
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}
