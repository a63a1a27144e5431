package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thank243/acmednsCli/client"
)

type fakeNotifier struct {
	calls []string
}

func (f *fakeNotifier) Webhook(title string, content string) error {
	f.calls = append(f.calls, title+": "+content)
	return nil
}

func newTestNode(t *testing.T, handler http.HandlerFunc) (*node, *fakeNotifier) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli, err := client.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	fn := new(fakeNotifier)
	return &node{name: "endpoint1", client: cli, notifier: fn}, fn
}

func TestNodeCheckHealthy(t *testing.T) {
	n, fn := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	})

	n.check()
	if n.down {
		t.Error("node should be up after 200 health")
	}
	if len(fn.calls) != 0 {
		t.Errorf("no notification expected, got %v", fn.calls)
	}
}

func TestNodeCheckTransitions(t *testing.T) {
	healthy := false
	n, fn := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	})

	// down: notify once, not again on repeat failures
	n.check()
	n.check()
	if !n.down {
		t.Error("node should be down after 503 health")
	}
	if len(fn.calls) != 1 {
		t.Errorf("expected a single down notification, got %v", fn.calls)
	}

	// recovered: one more notification
	healthy = true
	n.check()
	if n.down {
		t.Error("node should be up again")
	}
	if len(fn.calls) != 2 {
		t.Errorf("expected a recovery notification, got %v", fn.calls)
	}
}
