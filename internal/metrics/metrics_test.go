package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()
	m.MessageSent("text")
	m.MessageSent("text")
	m.HandlerFailed("messages")
	m.SubscriptionsChanged(2)
	m.SubscriptionsChanged(-1)
	m.Exported(3)

	if got := testutil.ToFloat64(m.messagesSent.WithLabelValues("text")); got != 2 {
		t.Errorf("messages sent = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.handlerErrors.WithLabelValues("messages")); got != 1 {
		t.Errorf("handler errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.subscriptions); got != 1 {
		t.Errorf("subscriptions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.outboxExported); got != 3 {
		t.Errorf("exported = %v, want 3", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.MessageSent("text")
	m.Delivered("presence")
	m.SessionOpened()
	m.RPC("/x", "OK")
	m.RelayDropped()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Errorf("nil handler status = %d", rec.Code)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.RPC("/parley.v1.Messaging/SendText", "OK")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `parley_rpc_requests_total{code="OK",method="/parley.v1.Messaging/SendText"} 1`) {
		t.Errorf("metrics output missing rpc counter:\n%s", body)
	}
}
