package cname

// Provider creates or updates the _acme-challenge delegation record at a DNS
// hosting provider.
type Provider interface {
	EnsureCNAME(domain string, target string) error
}
