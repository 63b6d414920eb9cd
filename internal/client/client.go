// Package client dials a parley daemon and exposes the typed Messaging stub.
package client

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	parleyv1 "github.com/matheus3301/parley/gen/parley/v1"
	"github.com/matheus3301/parley/internal/config"
)

// Client wraps the gRPC connection to the daemon.
type Client struct {
	conn      *grpc.ClientConn
	Messaging parleyv1.MessagingClient
}

// New dials addr and authenticates every call with token. An absolute path
// or a unix:// URL selects the daemon's Unix domain socket; anything else is
// treated as host:port. Messages are sized for the default file limit;
// WithMessageLimit matches a daemon configured otherwise.
func New(addr, token string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(bearer(token)),
		WithMessageLimit(config.MessageLimit(config.DefaultMaxFileBytes)),
	}, opts...)

	conn, err := grpc.NewClient(Target(addr), opts...)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	return &Client{conn: conn, Messaging: parleyv1.NewMessagingClient(conn)}, nil
}

// WithMessageLimit sets the largest message the client sends or accepts.
func WithMessageLimit(n int) grpc.DialOption {
	return grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(n), grpc.MaxCallRecvMsgSize(n))
}

// Target turns a socket path or address into a gRPC target string.
func Target(addr string) string {
	switch {
	case strings.HasPrefix(addr, "unix://"), strings.HasPrefix(addr, "unix:"):
		return addr
	case strings.HasPrefix(addr, "/"):
		return "unix://" + addr
	default:
		return "passthrough:///" + addr
	}
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// bearer sends "authorization: Bearer <token>" with every call. The daemon
// listens on a local socket or a trusted network, so transport security is
// not required.
type bearer string

func (b bearer) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	if b == "" {
		return nil, nil
	}
	return map[string]string{"authorization": "Bearer " + string(b)}, nil
}

func (bearer) RequireTransportSecurity() bool {
	return false
}
