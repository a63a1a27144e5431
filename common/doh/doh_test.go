package doh

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "_acme-challenge.example.org" {
			t.Errorf("unexpected name: %s", r.URL.Query().Get("name"))
		}
		if r.URL.Query().Get("type") != "5" {
			t.Errorf("unexpected type: %s", r.URL.Query().Get("type"))
		}
		w.Write([]byte(`{"Answer":[{"name":"_acme-challenge.example.org.","type":5,"data":"8e57.auth.acme-dns.io."}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	records := c.Lookup("_acme-challenge.example.org", "CNAME")
	if len(records) != 1 || records[0] != "8e57.auth.acme-dns.io." {
		t.Errorf("unexpected answer: %v", records)
	}
}

func TestLookupNoAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Status":3}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if records := c.Lookup("nxdomain.example.org", "TXT"); records != nil {
		t.Errorf("expected no answer, got %v", records)
	}
}
