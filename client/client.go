// Package client talks to a joohoi/acme-dns compatible HTTP API: register an
// account, publish a TXT value for DNS-01 challenges, probe health.
//
// Typical flow:
//  1. Register once and store the returned Credentials.
//  2. Create a _acme-challenge.<yourdomain> CNAME pointing at Fulldomain.
//  3. On each DNS-01 challenge, call UpdateTXT with the new token.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client holds no per-call state, so one instance can serve concurrent calls
// for the process lifetime.
type Client struct {
	http *resty.Client
}

// New parses baseURL as an absolute URL and builds a client on transport
// defaults. Retry policy, if wanted, is the caller's business.
func New(baseURL string) (*Client, error) {
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base URL: %q has no host", baseURL)
	}

	// Responses are drained by hand: register/update must propagate a body
	// read failure, health must not.
	cli := resty.New().
		SetBaseURL(strings.TrimRight(u.String(), "/")).
		SetDoNotParseResponse(true)

	return &Client{http: cli}, nil
}

// Register creates a new account. A nil allowFrom leaves the allow-list to
// the server default policy. Success is strictly 201; anything else fails
// with a StatusError carrying the raw response text.
func (c *Client) Register(allowFrom []string) (*Credentials, error) {
	body := new(registerRequest)
	if allowFrom != nil {
		body.AllowFrom = &allowFrom
	}

	resp, err := c.http.R().SetBody(body).Post("/register")
	if err != nil {
		return nil, err
	}

	text, err := drain(resp)
	if err != nil {
		return nil, fmt.Errorf("read register response: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Body: text}
	}

	creds := new(Credentials)
	if err := json.Unmarshal([]byte(text), creds); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}
	if err := creds.validate(); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}
	return creds, nil
}

// UpdateTXT publishes txt as the TXT value behind the credentials' subdomain.
// This is the call an ACME client makes every time the CA asks for proof via
// DNS-01. Success is strictly 200.
func (c *Client) UpdateTXT(creds *Credentials, txt string) error {
	resp, err := c.http.R().
		SetHeader("X-Api-User", creds.Username).
		SetHeader("X-Api-Key", creds.Password).
		SetBody(&updateRequest{Subdomain: creds.Subdomain, TXT: txt}).
		Post("/update")
	if err != nil {
		return err
	}

	text, err := drain(resp)
	if err != nil {
		return fmt.Errorf("read update response: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode(), Body: text}
	}
	return nil
}

// Health probes GET /health. The failure body is read best effort: an
// unreadable body degrades to "" rather than masking the status error.
func (c *Client) Health() error {
	resp, err := c.http.R().Get("/health")
	if err != nil {
		return err
	}

	text, _ := drain(resp)
	if resp.StatusCode() != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode(), Body: text}
	}
	return nil
}

func drain(resp *resty.Response) (string, error) {
	raw := resp.RawBody()
	defer raw.Close()

	b, err := io.ReadAll(raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
