package client

import (
	"context"
	"testing"
)

func TestTarget(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"/run/parley/parleyd.sock", "unix:///run/parley/parleyd.sock"},
		{"unix:///tmp/p.sock", "unix:///tmp/p.sock"},
		{"unix:p.sock", "unix:p.sock"},
		{"localhost:7420", "passthrough:///localhost:7420"},
	}
	for _, tt := range tests {
		if got := Target(tt.addr); got != tt.want {
			t.Errorf("Target(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestBearerMetadata(t *testing.T) {
	md, err := bearer("abc").GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if md["authorization"] != "Bearer abc" {
		t.Errorf("authorization = %q", md["authorization"])
	}

	md, err = bearer("").GetRequestMetadata(context.Background())
	if err != nil || md != nil {
		t.Errorf("empty token: md=%v err=%v", md, err)
	}
	if bearer("x").RequireTransportSecurity() {
		t.Error("bearer should not require transport security")
	}
}

func TestNewDoesNotDial(t *testing.T) {
	c, err := New("/nonexistent/parleyd.sock", "token")
	if err != nil {
		t.Fatal(err)
	}
	if c.Messaging == nil {
		t.Error("Messaging stub is nil")
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
