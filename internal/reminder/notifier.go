package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
)

// Notifier delivers one reminder for a calendar event
type Notifier interface {
	Notify(ctx context.Context, event domain.CropEvent) error
}

// LogNotifier writes reminders to the application log
type LogNotifier struct{}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the reminder
func (n *LogNotifier) Notify(ctx context.Context, event domain.CropEvent) error {
	logger.FromContext(ctx).Info(LogMsgReminderDue,
		"event_id", event.ID,
		"user_id", event.UserID,
		"crop", event.CropType,
		"event_type", event.EventType,
		"date", event.Date.Format(time.RFC3339))
	return nil
}

// EmbedSender is the part of a discordgo session used to post reminders
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// CropNames resolves display names for crop types
type CropNames interface {
	DisplayName(name string) string
}

// DiscordNotifier posts reminders as embeds to a single channel
type DiscordNotifier struct {
	session   EmbedSender
	channelID string
	names     CropNames
}

// NewDiscordNotifier creates a notifier posting to channelID
func NewDiscordNotifier(session EmbedSender, channelID string, names CropNames) *DiscordNotifier {
	return &DiscordNotifier{session: session, channelID: channelID, names: names}
}

// NewDiscordSession opens a bot session for token
func NewDiscordSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return session, nil
}

// Notify sends the reminder embed
func (n *DiscordNotifier) Notify(ctx context.Context, event domain.CropEvent) error {
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, n.buildEmbed(event), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send discord reminder: %w", err)
	}
	return nil
}

func (n *DiscordNotifier) buildEmbed(event domain.CropEvent) *discordgo.MessageEmbed {
	crop := event.CropType
	if n.names != nil {
		crop = n.names.DisplayName(event.CropType)
	}
	fields := []*discordgo.MessageEmbedField{
		{Name: "Crop", Value: crop, Inline: true},
		{Name: "Activity", Value: string(event.EventType), Inline: true},
		{Name: "When", Value: event.Date.Format(embedDateLayout), Inline: false},
	}
	if event.Notes != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Notes", Value: event.Notes})
	}

	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: fmt.Sprintf("Upcoming %s for your %s crop.", event.EventType, crop),
		Color:       embedColor,
		Fields:      fields,
		Timestamp:   event.Date.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: embedFooter,
		},
	}
}
