package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	tracker "github.com/hearthbot/hearth/tracker/service"
	"github.com/hearthbot/hearth/tracker/service/domain"
)

// ErrChannelNotFound reports that a configured channel name does not exist
// in the guild. Surfaced to the submitting user as a private failure.
var ErrChannelNotFound = errors.New("channel not found")

const checkmark = "✅"

// Sink sends, posts and deletes messages for the tracker. It is the
// platform-backed implementation of the tracker's Notifier, Poster and
// Remover collaborators and of the reminder worker's Notifier.
type Sink struct {
	session  *discordgo.Session
	guildID  string
	channels map[domain.Category]string

	mu       sync.Mutex
	resolved map[string]string // channel name -> channel ID
}

func NewSink(session *discordgo.Session, guildID string, channels map[domain.Category]string) *Sink {
	return &Sink{
		session:  session,
		guildID:  guildID,
		channels: channels,
		resolved: make(map[string]string),
	}
}

func (s *Sink) Send(ctx context.Context, target domain.Category, text string) error {
	channelID, err := s.channelID(target)
	if err != nil {
		return err
	}
	if _, err := s.session.ChannelMessageSend(channelID, text); err != nil {
		return fmt.Errorf("sending to %s: %w", target, err)
	}
	return nil
}

// Post publishes a new item and marks it with a ✅ reaction so members can
// acknowledge it. A failed reaction does not fail the post.
func (s *Sink) Post(ctx context.Context, target domain.Category, text string) (tracker.ItemRef, error) {
	channelID, err := s.channelID(target)
	if err != nil {
		return tracker.ItemRef{}, err
	}

	msg, err := s.session.ChannelMessageSend(channelID, text)
	if err != nil {
		return tracker.ItemRef{}, fmt.Errorf("posting to %s: %w", target, err)
	}

	_ = s.session.MessageReactionAdd(channelID, msg.ID, checkmark)

	return tracker.ItemRef{ChannelID: channelID, MessageID: msg.ID}, nil
}

func (s *Sink) Delete(ctx context.Context, ref tracker.ItemRef) error {
	if err := s.session.ChannelMessageDelete(ref.ChannelID, ref.MessageID); err != nil {
		return fmt.Errorf("deleting message %s: %w", ref.MessageID, err)
	}
	return nil
}

// channelID resolves a category's configured channel name to its ID,
// caching lookups for the life of the process.
func (s *Sink) channelID(target domain.Category) (string, error) {
	name, ok := s.channels[target]
	if !ok {
		return "", fmt.Errorf("%w: no channel configured for category %q", ErrChannelNotFound, target)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.resolved[name]; ok {
		return id, nil
	}

	channels, err := s.session.GuildChannels(s.guildID)
	if err != nil {
		return "", fmt.Errorf("listing guild channels: %w", err)
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText {
			s.resolved[ch.Name] = ch.ID
		}
	}

	id, ok := s.resolved[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrChannelNotFound, name)
	}
	return id, nil
}
