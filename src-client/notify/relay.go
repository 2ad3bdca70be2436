// Package notify forwards admin notifications somewhere a human will see
// them: a Discord channel or a plain writer.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"campusevents/src-client/model"

	"github.com/bwmarrin/discordgo"
)

// Discord rejects messages with more embeds than this.
const MaxEmbedsPerMessage = 10

type Relay interface {
	Relay(ctx context.Context, notifications []model.Notification) error
}

// EmbedSender is the part of *discordgo.Session the Discord relay needs.
type EmbedSender interface {
	ChannelMessageSendEmbeds(channelID string, embeds []*discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordRelay struct {
	sender    EmbedSender
	channelID string
}

func NewDiscordRelay(sender EmbedSender, channelID string) *DiscordRelay {
	return &DiscordRelay{
		sender:    sender,
		channelID: channelID,
	}
}

func (d *DiscordRelay) Relay(ctx context.Context, notifications []model.Notification) error {
	embeds := make([]*discordgo.MessageEmbed, len(notifications))
	for i := range notifications {
		embeds[i] = notifications[i].ToDiscordEmbed()
	}
	if err := d.send(ctx, embeds); err != nil {
		return fmt.Errorf("(*DiscordRelay).Relay: %w", err)
	}
	slog.Debug("notifications relayed to discord", "count", len(notifications), "channel_id", d.channelID)
	return nil
}

// Announce posts one embed per event.
func (d *DiscordRelay) Announce(ctx context.Context, events []model.Event) error {
	embeds := make([]*discordgo.MessageEmbed, len(events))
	for i := range events {
		embeds[i] = events[i].ToDiscordEmbed()
	}
	if err := d.send(ctx, embeds); err != nil {
		return fmt.Errorf("(*DiscordRelay).Announce: %w", err)
	}
	slog.Debug("events announced on discord", "count", len(events), "channel_id", d.channelID)
	return nil
}

func (d *DiscordRelay) send(ctx context.Context, embeds []*discordgo.MessageEmbed) error {
	for _, chunk := range Chunk(embeds, MaxEmbedsPerMessage) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := d.sender.ChannelMessageSendEmbeds(d.channelID, chunk, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("can't send message: %w", err)
		}
	}
	return nil
}

// WriterRelay prints one line per notification.
type WriterRelay struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterRelay(out io.Writer) *WriterRelay {
	return &WriterRelay{out: out}
}

func (w *WriterRelay) Relay(ctx context.Context, notifications []model.Notification) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, n := range notifications {
		if _, err := fmt.Fprintf(w.out, "[%s] %s (%s)\n", n.Type, n.Message, n.Time); err != nil {
			return fmt.Errorf("(*WriterRelay).Relay: %w", err)
		}
	}
	return nil
}

// Chunk splits s into consecutive slices of at most size elements.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for size < len(s) {
		chunks = append(chunks, s[:size:size])
		s = s[size:]
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks
}
