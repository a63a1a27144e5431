package client

import "fmt"

// Credentials is the account record issued by POST /register. It is everything
// a caller needs to publish TXT values for the bound subdomain, and the JSON
// shape doubles as the persistence format.
type Credentials struct {
	Username   string   `json:"username"`
	Password   string   `json:"password"`
	Subdomain  string   `json:"subdomain"`
	Fulldomain string   `json:"fulldomain"`
	AllowFrom  []string `json:"allowfrom"`
}

// validate checks the four required fields, since encoding/json tolerates
// absent keys.
func (c *Credentials) validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"username", c.Username},
		{"password", c.Password},
		{"subdomain", c.Subdomain},
		{"fulldomain", c.Fulldomain},
	} {
		if f.value == "" {
			return fmt.Errorf("missing field %q", f.name)
		}
	}
	return nil
}

type registerRequest struct {
	// A nil pointer produces no allowfrom key at all, which tells the server
	// to apply its default policy. An explicit empty list is still sent.
	AllowFrom *[]string `json:"allowfrom,omitempty"`
}

type updateRequest struct {
	Subdomain string `json:"subdomain"`
	TXT       string `json:"txt"`
}
