package api

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/parley/internal/attachment"
	"github.com/matheus3301/parley/internal/chat"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/identity"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/status"
	"github.com/matheus3301/parley/internal/store"
)

var codeTable = []struct {
	err  error
	code codes.Code
}{
	{identity.ErrUnauthenticated, codes.Unauthenticated},
	{chat.ErrEmptyMessage, codes.InvalidArgument},
	{chat.ErrEmptyFile, codes.InvalidArgument},
	{chat.ErrFileTooLarge, codes.InvalidArgument},
	{chat.ErrInvalidTopic, codes.InvalidArgument},
	{directory.ErrInvalidParticipants, codes.InvalidArgument},
	{message.ErrInvalidMessage, codes.InvalidArgument},
	{attachment.ErrUploadRejected, codes.InvalidArgument},
	{chat.ErrUploadTimeout, codes.DeadlineExceeded},
	{attachment.ErrUploadFailed, codes.Unavailable},
	{store.ErrUnavailable, codes.Unavailable},
	{status.ErrInvalidTransition, codes.FailedPrecondition},
	{chat.ErrNotParticipant, codes.PermissionDenied},
	{chat.ErrForbidden, codes.PermissionDenied},
	{directory.ErrNotFound, codes.NotFound},
	{message.ErrNotFound, codes.NotFound},
	{message.ErrUnknownConversation, codes.NotFound},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
	{context.Canceled, codes.Canceled},
}

// toStatus converts a domain error into a gRPC status error. Errors that are
// already statuses pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := grpcstatus.FromError(err); ok {
		return err
	}
	for _, e := range codeTable {
		if errors.Is(err, e.err) {
			return grpcstatus.Error(e.code, err.Error())
		}
	}
	return grpcstatus.Errorf(codes.Internal, "internal: %v", err)
}
