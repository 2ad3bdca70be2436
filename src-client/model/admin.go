package model

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type AdminStats struct {
	PendingRequests int `json:"pending_requests"`
	NewUsersToday   int `json:"new_users_today"`
	ActiveEvents    int `json:"active_events"`
	NewJudges       int `json:"new_judges"`
}

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeAlert   NotificationType = "alert"
)

type Notification struct {
	ID      int64            `json:"id"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Type    NotificationType `json:"type"`
}

func (n *Notification) ToDiscordEmbed() *discordgo.MessageEmbed {
	color := 0x3b82f6
	switch n.Type {
	case NotificationTypeWarning:
		color = 0xeab308
	case NotificationTypeAlert:
		color = 0xef4444
	}
	return &discordgo.MessageEmbed{
		Title:       n.Message,
		Description: n.Time,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("notification #%d", n.ID),
		},
	}
}

// POST /admin/users/{id}/authorize response
type AuthorizeResult struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
	Role     Role   `json:"role"`
}

// generic {"message": "..."} responses
type MessageResult struct {
	Message string `json:"message"`
}
