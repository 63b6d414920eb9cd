package bus

import (
	"fmt"
	"strings"
	"time"
)

// Event kinds carried on the bus.
const (
	KindSnapshot            = "snapshot"
	KindMessageCreated      = "message.created"
	KindMessageStatus       = "message.status"
	KindConversationUpdated = "conversation.updated"
	KindPresenceChanged     = "presence.changed"
)

// Topic families.
const (
	TopicMessages      = "messages"
	TopicConversations = "conversations"
	TopicPresence      = "presence"
)

// Event represents a change published to one topic.
type Event struct {
	Topic     string
	Kind      string
	Timestamp time.Time
	Payload   any
}

// MessagesTopic is the topic carrying a conversation's message events.
func MessagesTopic(conversationID string) string {
	return TopicMessages + ":" + conversationID
}

// ConversationsTopic is the topic carrying a user's conversation list changes.
func ConversationsTopic(userID string) string {
	return TopicConversations + ":" + userID
}

// PresenceTopic is the topic carrying a user's presence changes.
func PresenceTopic(userID string) string {
	return TopicPresence + ":" + userID
}

// ParseTopic splits a topic into its family and subject id.
func ParseTopic(topic string) (family, id string, err error) {
	family, id, ok := strings.Cut(topic, ":")
	if !ok || id == "" {
		return "", "", fmt.Errorf("malformed topic %q", topic)
	}
	switch family {
	case TopicMessages, TopicConversations, TopicPresence:
		return family, id, nil
	}
	return "", "", fmt.Errorf("unknown topic family %q", family)
}
