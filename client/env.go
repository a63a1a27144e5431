package client

import (
	"os"
	"strings"
)

const (
	envAPIBase    = "ACME_DNS_API_BASE"
	envUsername   = "ACME_DNS_USERNAME"
	envPassword   = "ACME_DNS_PASSWORD"
	envSubdomain  = "ACME_DNS_SUBDOMAIN"
	envFulldomain = "ACME_DNS_FULLDOMAIN"
	envAllowFrom  = "ACME_DNS_ALLOWFROM"
)

// FromEnv builds a client from ACME_DNS_API_BASE.
func FromEnv() (*Client, error) {
	base, ok := os.LookupEnv(envAPIBase)
	if !ok {
		return nil, &MissingEnvError{Name: envAPIBase}
	}
	return New(base)
}

// CredentialsFromEnv rebuilds a stored account from the ACME_DNS_* variables.
// The required variables are checked in a fixed order so the reported missing
// variable is deterministic.
func CredentialsFromEnv() (*Credentials, error) {
	creds := new(Credentials)
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{envUsername, &creds.Username},
		{envPassword, &creds.Password},
		{envSubdomain, &creds.Subdomain},
		{envFulldomain, &creds.Fulldomain},
	} {
		val, ok := os.LookupEnv(v.name)
		if !ok {
			return nil, &MissingEnvError{Name: v.name}
		}
		*v.dst = val
	}

	if raw, ok := os.LookupEnv(envAllowFrom); ok {
		creds.AllowFrom = splitAllowFrom(raw)
	}
	return creds, nil
}

// splitAllowFrom splits a comma separated CIDR list, trimming whitespace and
// dropping empty pieces. CIDR syntax is not validated, the server does that.
func splitAllowFrom(raw string) []string {
	var list []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
