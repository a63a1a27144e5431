package cloudflare

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudflare/cloudflare-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Cloudflare Implementation
type Cloudflare struct {
	client *cloudflare.API
}

func New(c map[string]string) (*Cloudflare, error) {
	cf := new(Cloudflare)

	client, err := cloudflare.New(c[strings.ToLower("CLOUDFLARE_API_KEY")], c[strings.ToLower("CLOUDFLARE_EMAIL")])
	if err != nil {
		return nil, err
	}
	cf.client = client

	return cf, nil
}

// EnsureCNAME points domain at target, creating or updating the record.
func (cf *Cloudflare) EnsureCNAME(domain string, target string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if target == "" {
		return errors.New("CNAME target is nil")
	}

	zoneID, records, err := cf.getRecords(ctx, domain)
	if err != nil {
		return err
	}

	if len(records) > 0 {
		for i := range records {
			if records[i].Content == target {
				log.Printf("[%s] record already points at %s", domain, target)
				return nil
			}
			_, err = cf.client.UpdateDNSRecord(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.UpdateDNSRecordParams{
				Type:    "CNAME",
				ID:      records[i].ID,
				Content: target,
			})
			if err != nil {
				return fmt.Errorf("[%s] update record failure, Error: %s", domain, err)
			}
			log.Printf("[%s] update record success, target: %s", domain, target)
		}
	} else {
		_, err := cf.client.CreateDNSRecord(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.CreateDNSRecordParams{
			Type:    "CNAME",
			Name:    domain,
			Content: target,
		})
		if err != nil {
			return fmt.Errorf("[%s] create record failure, Error: %s", domain, err)
		}
		log.Printf("[%s] create record success, target: %s", domain, target)
	}
	return nil
}

func (cf *Cloudflare) getRecords(ctx context.Context, domain string) (string, []cloudflare.DNSRecord, error) {
	zones, err := cf.client.ListZones(ctx)
	if err != nil {
		return "", nil, err
	}

	// Get zone
	zoneID := ""
	for i := range zones {
		if strings.Contains(domain, zones[i].Name) {
			zoneID = zones[i].ID
		}
	}
	if zoneID == "" {
		return "", nil, errors.New("cannot find a valid zone")
	}

	records, _, err := cf.client.ListDNSRecords(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.ListDNSRecordsParams{
		Type: "CNAME",
		Name: domain,
	})
	if err != nil {
		return "", nil, err
	}
	return zoneID, records, nil
}
