// Package domain contains core concepts of the dispatch platform.
// This file defines chat messages and the rules tying channel to fields.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Channel string

const (
	ChannelGlobal  Channel = "global"
	ChannelPrivate Channel = "private"
	ChannelEvent   Channel = "event"
)

// Message is a durable chat record.
// ReadBy grows with every reader: unread checks are set lookups, not cursors.
type Message struct {
	ID                uuid.UUID `json:"_id"`
	Sender            UserID    `json:"sender"`
	Recipient         UserID    `json:"recipient,omitempty"`
	Content           string    `json:"content"`
	Channel           Channel   `json:"chatType"`
	EventID           string    `json:"eventId,omitempty"`
	ChatID            string    `json:"chatId,omitempty"`
	LinkedOpportunity string    `json:"linkedOpportunity,omitempty"`
	Mentions          []UserID  `json:"mentions"`
	ReadBy            []UserID  `json:"readBy"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Validate enforces that the channel decides which optional fields are meaningful.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Content) == "" {
		return fmt.Errorf("message content is required")
	}
	switch m.Channel {
	case ChannelGlobal:
		if m.Recipient != "" || m.EventID != "" {
			return fmt.Errorf("global message cannot carry a recipient or an event")
		}
	case ChannelPrivate:
		if m.Recipient == "" {
			return fmt.Errorf("private message requires a recipient")
		}
		if m.EventID != "" {
			return fmt.Errorf("private message cannot carry an event")
		}
	case ChannelEvent:
		if m.EventID == "" {
			return fmt.Errorf("event message requires an event id")
		}
		if m.Recipient != "" {
			return fmt.Errorf("event message cannot carry a recipient")
		}
	default:
		return fmt.Errorf("unknown channel %q", m.Channel)
	}
	return nil
}

// Scope is the partition key of a message inside its channel.
func (m Message) Scope() string {
	switch m.Channel {
	case ChannelEvent:
		return m.EventID
	case ChannelPrivate:
		return ConversationKey(m.Sender, m.Recipient)
	default:
		return "all"
	}
}

func (m Message) IsReadBy(userID UserID) bool {
	return lo.Contains(m.ReadBy, userID)
}

// ConversationKey is symmetric: both participants map to the same key.
// The first id is length-prefixed so no two pairs share a key.
func ConversationKey(a, b UserID) string {
	if a > b {
		a, b = b, a
	}
	return strconv.Itoa(len(a)) + "." + a.String() + "|" + b.String()
}

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// ExtractMentions returns the distinct names written as @name in content.
func ExtractMentions(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	names := lo.Map(matches, func(m []string, _ int) string { return m[1] })
	return lo.Uniq(names)
}

// ChatPayload is the live chat frame of global and room broadcasts.
type ChatPayload struct {
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
	Time     string `json:"time"`
}

func NewChatPayload(sender UserID, text string, at time.Time) ChatPayload {
	senderID := sender.String()
	if senderID == "" {
		senderID = "unknown"
	}
	return ChatPayload{SenderID: senderID, Text: text, Time: at.Format(time.Kitchen)}
}

// RoomPayload wraps a chat payload with the room it was posted to.
type RoomPayload struct {
	RoomID RoomID      `json:"roomId"`
	Msg    ChatPayload `json:"msg"`
}

const (
	EventGlobalMessage  = "globalMessage"
	EventPrivateMessage = "privateMessage"
	EventEventMessage   = "eventMessage"
)
