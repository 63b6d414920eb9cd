package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/outbox"
	"github.com/matheus3301/parley/internal/store"
)

// File is an attachment handed to SendFile.
type File struct {
	Name     string
	MimeType string
	Data     []byte
	Caption  string
}

// SendText appends a text message from senderID. The text is trimmed and
// must not be empty.
func (s *Service) SendText(ctx context.Context, conversationID, senderID, senderName, text string) (message.Message, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return message.Message{}, ErrEmptyMessage
	}
	return s.send(ctx, conversationID, senderID, senderName, message.Message{
		Content: body,
		Type:    message.TypeText,
	})
}

// SendFile uploads f through the attachment gateway and appends a message
// referencing it. The upload is bounded by timeout, or the configured
// default when timeout is zero. If the append fails after a successful
// upload the blob is left orphaned and logged.
func (s *Service) SendFile(ctx context.Context, conversationID, senderID, senderName string, f File, timeout time.Duration) (message.Message, error) {
	size := int64(len(f.Data))
	if size == 0 {
		return message.Message{}, ErrEmptyFile
	}
	if size > s.cfg.MaxFileBytes {
		return message.Message{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, size, s.cfg.MaxFileBytes)
	}
	if err := s.authorize(ctx, conversationID, senderID); err != nil {
		return message.Message{}, err
	}
	if s.attachments == nil {
		return message.Message{}, errors.New("attachments are not configured")
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "attachment"
	}
	mime := strings.TrimSpace(f.MimeType)
	if mime == "" {
		mime = http.DetectContentType(f.Data)
	}
	if timeout <= 0 {
		timeout = s.cfg.UploadTimeout
	}

	uploadCtx, cancel := context.WithTimeout(ctx, timeout)
	url, err := s.attachments.Upload(uploadCtx, f.Data, name, mime)
	timedOut := errors.Is(uploadCtx.Err(), context.DeadlineExceeded)
	cancel()
	if err != nil {
		if timedOut || errors.Is(err, context.DeadlineExceeded) {
			return message.Message{}, fmt.Errorf("%w after %s: %w", ErrUploadTimeout, timeout, err)
		}
		return message.Message{}, fmt.Errorf("upload %s: %w", name, err)
	}

	caption := strings.TrimSpace(f.Caption)
	if caption == "" {
		caption = name
	}
	m, err := s.send(ctx, conversationID, senderID, senderName, message.Message{
		Content: caption,
		Type:    message.TypeForMIME(mime),
		Attachment: &message.Attachment{
			URL:       url,
			FileName:  name,
			SizeBytes: size,
			MimeType:  mime,
		},
	})
	if err != nil {
		s.logger.Warn("attachment orphaned after failed append",
			zap.String("conversation_id", conversationID), zap.String("url", url), zap.Error(err))
		return message.Message{}, err
	}
	return m, nil
}

// send appends m and updates the conversation summary in one transaction,
// then publishes the new message and the updated conversation.
func (s *Service) send(ctx context.Context, conversationID, senderID, senderName string, m message.Message) (message.Message, error) {
	unlock := s.lockConversation(conversationID)
	defer unlock()

	m.SenderID = senderID
	m.SenderName = senderName

	var (
		sent message.Message
		conv directory.Conversation
	)
	err := s.db.InTx(ctx, func(tx *store.Tx) error {
		var err error
		conv, err = s.directory.GetTx(ctx, tx, conversationID)
		if err != nil {
			return err
		}
		if !conv.HasParticipant(senderID) {
			return fmt.Errorf("%w: %s in %s", ErrNotParticipant, senderID, conversationID)
		}
		if sent, err = s.messages.AppendTx(ctx, tx, conversationID, m); err != nil {
			return err
		}
		if err := s.directory.RecordNewMessageTx(ctx, tx, conversationID, senderID, sent.Content, sent.Timestamp); err != nil {
			return err
		}
		if err := outbox.Enqueue(ctx, tx, outbox.KindMessageCreated, conversationID, sent); err != nil {
			return err
		}
		conv, err = s.directory.GetTx(ctx, tx, conversationID)
		return err
	})
	if err != nil {
		return message.Message{}, err
	}

	s.metrics.MessageSent(string(sent.Type))
	s.logger.Debug("message sent",
		zap.String("conversation_id", conversationID),
		zap.String("message_id", sent.ID),
		zap.String("type", string(sent.Type)))

	s.publish(bus.MessagesTopic(conversationID), bus.KindMessageCreated, sent.Timestamp, sent)
	s.publishConversation(conv, conv.Participants...)
	return sent, nil
}
