// Package api exposes the messaging core over gRPC.
package api

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	parleyv1 "github.com/matheus3301/parley/gen/parley/v1"
	"github.com/matheus3301/parley/internal/chat"
	"github.com/matheus3301/parley/internal/identity"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/metrics"
)

const defaultPageSize = 50

// MessagingService implements the parley.v1.Messaging gRPC service on top of
// the chat façade. Every call acts on behalf of the identity attached by the
// auth interceptors.
type MessagingService struct {
	parleyv1.UnimplementedMessagingServer

	chat    *chat.Service
	metrics *metrics.Metrics
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[string]int // open Session streams per user
}

// NewMessagingService creates the gRPC service.
func NewMessagingService(svc *chat.Service, m *metrics.Metrics, logger *zap.Logger) *MessagingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessagingService{chat: svc, metrics: m, logger: logger, sessions: map[string]int{}}
}

var _ parleyv1.MessagingServer = (*MessagingService)(nil)

func caller(ctx context.Context) (identity.Identity, error) {
	id, ok := identity.FromContext(ctx)
	if !ok || id.UserID == "" {
		return identity.Identity{}, grpcstatus.Error(codes.Unauthenticated, "no caller identity")
	}
	return id, nil
}

func (s *MessagingService) CreateOrGetConversation(ctx context.Context, req *parleyv1.CreateOrGetConversationRequest) (*parleyv1.CreateOrGetConversationResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	if me.Name != "" {
		names[me.UserID] = me.Name
	}
	if req.PeerName != "" {
		names[req.PeerId] = req.PeerName
	}
	id, created, err := s.chat.CreateOrGetConversation(ctx, me.UserID, req.PeerId, names)
	if err != nil {
		return nil, toStatus(err)
	}
	conv, err := s.chat.Conversation(ctx, me.UserID, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &parleyv1.CreateOrGetConversationResponse{
		Conversation: conversationToWire(conv),
		Created:      created,
	}, nil
}

func (s *MessagingService) SendText(ctx context.Context, req *parleyv1.SendTextRequest) (*parleyv1.SendMessageResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.chat.SendText(ctx, req.ConversationId, me.UserID, me.Name, req.Text)
	if err != nil {
		return nil, toStatus(err)
	}
	return &parleyv1.SendMessageResponse{Message: messageToWire(m)}, nil
}

func (s *MessagingService) SendFile(ctx context.Context, req *parleyv1.SendFileRequest) (*parleyv1.SendMessageResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	f := chat.File{
		Name:     req.FileName,
		MimeType: req.MimeType,
		Data:     req.Data,
		Caption:  req.Caption,
	}
	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	m, err := s.chat.SendFile(ctx, req.ConversationId, me.UserID, me.Name, f, timeout)
	if err != nil {
		return nil, toStatus(err)
	}
	return &parleyv1.SendMessageResponse{Message: messageToWire(m)}, nil
}

func (s *MessagingService) MarkConversationRead(ctx context.Context, req *parleyv1.MarkConversationReadRequest) (*parleyv1.MarkConversationReadResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.chat.MarkConversationRead(ctx, req.ConversationId, me.UserID); err != nil {
		return nil, toStatus(err)
	}
	conv, err := s.chat.Conversation(ctx, me.UserID, req.ConversationId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &parleyv1.MarkConversationReadResponse{Conversation: conversationToWire(conv)}, nil
}

func (s *MessagingService) AckDelivered(ctx context.Context, req *parleyv1.AckDeliveredRequest) (*parleyv1.AckDeliveredResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.MessageId == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "message id is required")
	}
	if err := s.chat.MarkDelivered(ctx, req.MessageId, me.UserID); err != nil {
		return nil, toStatus(err)
	}
	return &parleyv1.AckDeliveredResponse{}, nil
}

func (s *MessagingService) Search(ctx context.Context, req *parleyv1.SearchRequest) (*parleyv1.SearchResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	msgs, err := s.chat.Search(ctx, me.UserID, req.ConversationId, req.Term)
	if err != nil {
		return nil, toStatus(err)
	}
	return &parleyv1.SearchResponse{Messages: messagesToWire(msgs)}, nil
}

func (s *MessagingService) ListMessages(ctx context.Context, req *parleyv1.ListMessagesRequest) (*parleyv1.ListMessagesResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	limit := defaultPageSize
	if req.Limit > 0 {
		limit = int(req.Limit)
	}
	var msgs []message.Message
	if req.BeforeSeq > 0 {
		msgs, err = s.chat.History(ctx, me.UserID, req.ConversationId, req.BeforeSeq, limit)
	} else {
		msgs, err = s.chat.Recent(ctx, me.UserID, req.ConversationId, limit)
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &parleyv1.ListMessagesResponse{
		Messages: messagesToWire(msgs),
		HasMore:  len(msgs) == limit,
	}, nil
}

func (s *MessagingService) ListConversations(ctx context.Context, _ *parleyv1.ListConversationsRequest) (*parleyv1.ListConversationsResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	convs := s.chat.ListConversations(ctx, me.UserID)
	out := make([]*parleyv1.Conversation, 0, len(convs))
	for _, c := range convs {
		out = append(out, conversationToWire(c))
	}
	return &parleyv1.ListConversationsResponse{Conversations: out}, nil
}

func (s *MessagingService) GetPresence(ctx context.Context, req *parleyv1.GetPresenceRequest) (*parleyv1.GetPresenceResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	if req.UserId == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "user id is required")
	}
	return &parleyv1.GetPresenceResponse{Presence: presenceToWire(s.chat.Presence(ctx, req.UserId))}, nil
}

func (s *MessagingService) SetPresence(ctx context.Context, req *parleyv1.SetPresenceRequest) (*parleyv1.SetPresenceResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := s.chat.SetPresence(ctx, me.UserID, req.Online)
	if err != nil {
		s.logger.Warn("presence update failed", zap.String("user_id", me.UserID), zap.Bool("online", req.Online), zap.Error(err))
		rec = s.chat.Presence(ctx, me.UserID)
	}
	return &parleyv1.SetPresenceResponse{Presence: presenceToWire(rec)}, nil
}

func (s *MessagingService) ListOnline(ctx context.Context, _ *parleyv1.ListOnlineRequest) (*parleyv1.ListOnlineResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	recs, err := s.chat.OnlineUsers(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*parleyv1.Presence, 0, len(recs))
	for _, r := range recs {
		out = append(out, presenceToWire(r))
	}
	return &parleyv1.ListOnlineResponse{Users: out}, nil
}
