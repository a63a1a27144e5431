package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thank243/acmednsCli/common/notify/pushplus"
)

func TestPushPlusWebhook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"msg":"ok"}`))
	}))
	defer srv.Close()

	pp := &pushplus.PushPlus{Token: "token", ApiHost: srv.URL}
	if err := pp.Webhook("endpoint1", "This is test message"); err != nil {
		t.Error(err)
	}
}

func TestPushPlusWebhookFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":500,"msg":"invalid token"}`))
	}))
	defer srv.Close()

	pp := &pushplus.PushPlus{Token: "token", ApiHost: srv.URL}
	if err := pp.Webhook("endpoint1", "This is test message"); err == nil {
		t.Error("expected error on non-200 code")
	}
}
