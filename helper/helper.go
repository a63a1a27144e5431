package helper

import (
	"net"
	"strings"

	log "github.com/sirupsen/logrus"
)

// LookupCNAME resolves the CNAME target of domain through the system
// resolver, with the trailing dot trimmed. Returns "" when nothing resolves.
func LookupCNAME(domain string) string {
	cname, err := net.LookupCNAME(domain)
	if err != nil {
		log.Error(err)
		return ""
	}

	return strings.TrimSuffix(cname, ".")
}
