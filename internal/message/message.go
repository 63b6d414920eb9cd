// Package message is the append-only, per-conversation ordered message log.
package message

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/parley/internal/status"
	"github.com/matheus3301/parley/internal/store"
)

// Type is the kind of content a message carries.
type Type string

const (
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeFile  Type = "file"
)

var (
	// ErrStoreUnavailable is returned when the backing database cannot be reached.
	ErrStoreUnavailable = store.ErrUnavailable
	// ErrNotFound is returned for an unknown message id.
	ErrNotFound = errors.New("message not found")
	// ErrUnknownConversation is returned when appending to a conversation
	// that does not exist.
	ErrUnknownConversation = errors.New("unknown conversation")
	// ErrInvalidMessage is returned when a message is malformed, such as a
	// text message with an attachment or a file message without one.
	ErrInvalidMessage = errors.New("invalid message")
)

// Attachment describes an uploaded blob referenced by a message.
type Attachment struct {
	URL       string `json:"url"`
	FileName  string `json:"fileName"`
	SizeBytes int64  `json:"fileSizeBytes"`
	MimeType  string `json:"mimeType,omitempty"`
}

// Message is one entry of a conversation's log. Only DeliveryStatus changes
// after Append.
type Message struct {
	ID             string       `json:"id"`
	ConversationID string       `json:"conversationId"`
	Seq            int64        `json:"seq"`
	SenderID       string       `json:"senderId"`
	SenderName     string       `json:"senderName"`
	Content        string       `json:"content"`
	Type           Type         `json:"type"`
	Attachment     *Attachment  `json:"attachment,omitempty"`
	Timestamp      time.Time    `json:"timestamp"`
	DeliveryStatus status.State `json:"deliveryStatus"`
}

// TypeForMIME maps a MIME type to a message type: image/* is an image,
// anything else a file.
func TypeForMIME(mime string) Type {
	if strings.HasPrefix(strings.ToLower(mime), "image/") {
		return TypeImage
	}
	return TypeFile
}

func (m *Message) validate() error {
	if m.SenderID == "" {
		return fmt.Errorf("%w: missing sender", ErrInvalidMessage)
	}
	switch m.Type {
	case TypeText:
		if m.Attachment != nil {
			return fmt.Errorf("%w: text message carries an attachment", ErrInvalidMessage)
		}
	case TypeImage, TypeFile:
		if m.Attachment == nil || m.Attachment.URL == "" {
			return fmt.Errorf("%w: attachment required for %s", ErrInvalidMessage, m.Type)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, m.Type)
	}
	return nil
}

func toRow(m *Message) *store.Message {
	row := &store.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		Content:        m.Content,
		MessageType:    string(m.Type),
		Status:         string(m.DeliveryStatus),
		SentAt:         m.Timestamp.UnixMilli(),
	}
	if a := m.Attachment; a != nil {
		row.AttachmentURL = a.URL
		row.AttachmentName = a.FileName
		row.AttachmentSize = a.SizeBytes
		row.AttachmentMime = a.MimeType
	}
	return row
}

func fromRow(row *store.Message) Message {
	m := Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		Seq:            row.Seq,
		SenderID:       row.SenderID,
		SenderName:     row.SenderName,
		Content:        row.Content,
		Type:           Type(row.MessageType),
		Timestamp:      time.UnixMilli(row.SentAt).UTC(),
		DeliveryStatus: status.State(row.Status),
	}
	if m.Type != TypeText {
		m.Attachment = &Attachment{
			URL:       row.AttachmentURL,
			FileName:  row.AttachmentName,
			SizeBytes: row.AttachmentSize,
			MimeType:  row.AttachmentMime,
		}
	}
	return m
}

func fromRows(rows []store.Message) []Message {
	out := make([]Message, len(rows))
	for i := range rows {
		out[i] = fromRow(&rows[i])
	}
	return out
}
