package notify_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"campusevents/src-client/model"
	"campusevents/src-client/notify"

	"github.com/bwmarrin/discordgo"
)

type fakeSender struct {
	channels []string
	batches  [][]*discordgo.MessageEmbed
	err      error
}

func (f *fakeSender) ChannelMessageSendEmbeds(channelID string, embeds []*discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channels = append(f.channels, channelID)
	f.batches = append(f.batches, embeds)
	return &discordgo.Message{}, nil
}

func notifications(n int) []model.Notification {
	out := make([]model.Notification, n)
	for i := range out {
		out[i] = model.Notification{ID: int64(i + 1), Message: "new signup", Type: model.NotificationTypeInfo}
	}
	return out
}

func TestChunk(t *testing.T) {
	tests := []struct {
		n, size int
		want    []int
	}{
		{0, 10, nil},
		{3, 10, []int{3}},
		{10, 10, []int{10}},
		{23, 10, []int{10, 10, 3}},
		{5, 0, nil},
	}
	for _, tt := range tests {
		chunks := notify.Chunk(make([]int, tt.n), tt.size)
		if len(chunks) != len(tt.want) {
			t.Errorf("Chunk(%d, %d) gave %d chunks, want %d", tt.n, tt.size, len(chunks), len(tt.want))
			continue
		}
		for i, chunk := range chunks {
			if len(chunk) != tt.want[i] {
				t.Errorf("Chunk(%d, %d)[%d] has %d items, want %d", tt.n, tt.size, i, len(chunk), tt.want[i])
			}
		}
	}
}

func TestDiscordRelay(t *testing.T) {
	sender := &fakeSender{}
	relay := notify.NewDiscordRelay(sender, "chan-1")
	if err := relay.Relay(context.Background(), notifications(12)); err != nil {
		t.Fatal(err)
	}
	if len(sender.batches) != 2 || len(sender.batches[0]) != 10 || len(sender.batches[1]) != 2 {
		t.Fatalf("unexpected batches: %d", len(sender.batches))
	}
	if sender.channels[0] != "chan-1" {
		t.Errorf("channel = %q", sender.channels[0])
	}
	if got := sender.batches[1][1].Footer.Text; got != "notification #12" {
		t.Errorf("last footer = %q", got)
	}

	failing := notify.NewDiscordRelay(&fakeSender{err: errors.New("rate limited")}, "chan-1")
	if err := failing.Relay(context.Background(), notifications(1)); err == nil {
		t.Error("expected send error")
	}
}

func TestWriterRelay(t *testing.T) {
	var buf bytes.Buffer
	relay := notify.NewWriterRelay(&buf)
	err := relay.Relay(context.Background(), []model.Notification{
		{ID: 1, Message: "3 pending approvals", Time: "5m ago", Type: model.NotificationTypeWarning},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[warning] 3 pending approvals (5m ago)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDiscordAnnounce(t *testing.T) {
	sender := &fakeSender{}
	relay := notify.NewDiscordRelay(sender, "chan-2")
	events := []model.Event{
		{ID: 7, Title: "Go Workshop", Venue: "Hall A"},
	}
	if err := relay.Announce(context.Background(), events); err != nil {
		t.Fatal(err)
	}
	if len(sender.batches) != 1 || len(sender.batches[0]) != 1 {
		t.Fatalf("unexpected batches: %v", sender.batches)
	}
	embed := sender.batches[0][0]
	if embed.Title != "Go Workshop" || embed.Footer.Text != "event #7" {
		t.Errorf("embed = %q / %q", embed.Title, embed.Footer.Text)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := relay.Announce(ctx, events); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
