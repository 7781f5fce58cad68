package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	tracker "github.com/hearthbot/hearth/tracker/service"
	"github.com/hearthbot/hearth/tracker/service/domain"
)

// Adapter connects the Discord gateway to the tracker service: slash
// commands and modal submissions become creation requests, ✅ reactions
// become acknowledgement events.
type Adapter struct {
	Session *discordgo.Session
	Service *tracker.Service
	Logger  *slog.Logger

	categories map[string]domain.Category // channel name -> category
}

func NewAdapter(session *discordgo.Session, service *tracker.Service, channels map[domain.Category]string, logger *slog.Logger) *Adapter {
	categories := make(map[string]domain.Category, len(channels))
	for category, name := range channels {
		categories[name] = category
	}

	a := &Adapter{
		Session:    session,
		Service:    service,
		Logger:     logger,
		categories: categories,
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMessageReactions

	session.AddHandler(a.onReady)
	session.AddHandler(a.onMessageCreate)
	session.AddHandler(a.onInteractionCreate)
	session.AddHandler(a.onMessageReactionAdd)

	return a
}

// Open connects the gateway session.
func (a *Adapter) Open() error {
	return a.Session.Open()
}

func (a *Adapter) Close() error {
	return a.Session.Close()
}

func (a *Adapter) onReady(s *discordgo.Session, r *discordgo.Ready) {
	a.Logger.Info("logged in", "user", r.User.Username)
}

// onMessageCreate marks human posts in the chores, shopping and maintenance
// channels with a ✅ reaction so they can be acknowledged later.
func (a *Adapter) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	switch a.categoryOf(m.ChannelID) {
	case domain.CategoryChores, domain.CategoryShopping, domain.CategoryMaintenance:
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, checkmark); err != nil {
			a.Logger.Error("adding reaction", "channel_id", m.ChannelID, "error", err)
		}
	}
}

func (a *Adapter) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		a.handleCommand(s, i)
	case discordgo.InteractionModalSubmit:
		a.handleModalSubmit(s, i)
	}
}

func (a *Adapter) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case commandAddBill:
		a.respond(s, i, billModal())
	case commandAppointment:
		a.respond(s, i, appointmentModal())
	case commandSummary:
		summary, err := a.Service.Summary(context.Background())
		if err != nil {
			a.Logger.Error("building summary", "error", err)
			a.replyEphemeral(s, i, "There was an error building the summary. Please try again later.")
			return
		}
		a.replyEphemeral(s, i, summary.Text)
	}
}

func (a *Adapter) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	values := modalValues(data)

	switch data.CustomID {
	case billModalID:
		_, err := a.Service.CreateBill(context.Background(), &tracker.CreateBillRequest{
			Name:    values["billName"],
			Amount:  values["amount"],
			DueDate: values["dueDate"],
		})
		a.replyEphemeral(s, i, billSubmitReply(err))
	case appointmentModalID:
		_, err := a.Service.CreateAppointment(context.Background(), &tracker.CreateAppointmentRequest{
			Date:        values["dateInput"],
			Time:        values["timeInput"],
			Description: values["descriptionInput"],
		})
		a.replyEphemeral(s, i, appointmentSubmitReply(err))
	}
}

// onMessageReactionAdd turns a ✅ on a tracked channel's message into an
// acknowledgement event.
func (a *Adapter) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.Emoji.Name != checkmark {
		return
	}

	category := a.categoryOf(r.ChannelID)
	if category == "" || category == domain.CategoryAnnouncements {
		return
	}

	actor, err := a.reactingUser(s, r)
	if err != nil {
		a.Logger.Error("resolving reacting user", "user_id", r.UserID, "error", err)
		return
	}

	msg, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		a.Logger.Error("fetching reacted message", "message_id", r.MessageID, "error", err)
		return
	}

	err = a.Service.Acknowledge(context.Background(), &tracker.AckEvent{
		ActorIsBot: actor.Bot,
		ActorName:  actor.Username,
		Category:   category,
		Item:       tracker.ItemRef{ChannelID: r.ChannelID, MessageID: r.MessageID},
		Content:    msg.Content,
	})
	if err != nil {
		a.Logger.Error("handling acknowledgement", "category", category, "error", err)
	}
}

func (a *Adapter) reactingUser(s *discordgo.Session, r *discordgo.MessageReactionAdd) (*discordgo.User, error) {
	if r.Member != nil && r.Member.User != nil {
		return r.Member.User, nil
	}
	return s.User(r.UserID)
}

// categoryOf maps a channel ID to its configured category, or "" when the
// channel is not one the bot watches.
func (a *Adapter) categoryOf(channelID string) domain.Category {
	channel, err := a.Session.State.Channel(channelID)
	if err != nil {
		channel, err = a.Session.Channel(channelID)
		if err != nil {
			a.Logger.Error("resolving channel", "channel_id", channelID, "error", err)
			return ""
		}
	}
	return a.categories[channel.Name]
}

func (a *Adapter) respond(s *discordgo.Session, i *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) {
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		a.Logger.Error("responding to interaction", "error", err)
	}
}

func (a *Adapter) replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	a.respond(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func billSubmitReply(err error) string {
	switch {
	case err == nil:
		return "Your bill has been successfully added and reminders are set!"
	case errors.Is(err, ErrChannelNotFound):
		return "Bills channel or announcements channel not found."
	case errors.Is(err, tracker.ErrInvalidInput):
		return fmt.Sprintf("Your bill could not be added: %v", err)
	default:
		return "There was an error adding your bill. Please try again later."
	}
}

func appointmentSubmitReply(err error) string {
	switch {
	case err == nil:
		return "Your appointment has been successfully added and reminders are set!"
	case errors.Is(err, ErrChannelNotFound):
		return "One of the necessary channels (appointments or announcements) is missing. Please contact an administrator."
	case errors.Is(err, tracker.ErrInvalidInput):
		return fmt.Sprintf("Your appointment could not be added: %v", err)
	default:
		return "There was an error adding your appointment. Please try again later."
	}
}
