package api

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	parleyv1 "github.com/matheus3301/parley/gen/parley/v1"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/presence"
)

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func messageToWire(m message.Message) *parleyv1.Message {
	out := &parleyv1.Message{
		Id:             m.ID,
		ConversationId: m.ConversationID,
		Seq:            m.Seq,
		SenderId:       m.SenderID,
		SenderName:     m.SenderName,
		Content:        m.Content,
		Type:           string(m.Type),
		Timestamp:      timestamp(m.Timestamp),
		DeliveryStatus: string(m.DeliveryStatus),
	}
	if a := m.Attachment; a != nil {
		out.Attachment = &parleyv1.Attachment{
			Url:       a.URL,
			FileName:  a.FileName,
			SizeBytes: a.SizeBytes,
			MimeType:  a.MimeType,
		}
	}
	return out
}

func messagesToWire(msgs []message.Message) []*parleyv1.Message {
	out := make([]*parleyv1.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageToWire(m))
	}
	return out
}

func conversationToWire(c directory.Conversation) *parleyv1.Conversation {
	participants := make([]*parleyv1.Participant, 0, len(c.Participants))
	for _, id := range c.Participants {
		participants = append(participants, &parleyv1.Participant{
			UserId:      id,
			Name:        c.ParticipantNames[id],
			UnreadCount: int32(c.UnreadCount[id]),
		})
	}
	return &parleyv1.Conversation{
		Id:                c.ID,
		Participants:      participants,
		LastMessage:       c.LastMessage,
		LastMessageTime:   timestamp(c.LastMessageTime),
		LastMessageSender: c.LastMessageSender,
		CreatedAt:         timestamp(c.CreatedAt),
	}
}

// presenceToWire keeps the epoch lastSeen of never-seen users.
func presenceToWire(r presence.Record) *parleyv1.Presence {
	return &parleyv1.Presence{UserId: r.UserID, IsOnline: r.IsOnline, LastSeen: timestamppb.New(r.LastSeen)}
}
