package route53

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53"
	log "github.com/sirupsen/logrus"
)

// Route53 Implementation
type Route53 struct {
	client *route53.Route53
}

func New(c map[string]string) (*Route53, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			c[strings.ToLower("AWS_ACCESS_KEY_ID")],
			c[strings.ToLower("AWS_SECRET_ACCESS_KEY")],
			"",
		),
	})
	if err != nil {
		return nil, err
	}

	return &Route53{client: route53.New(sess)}, nil
}

// EnsureCNAME upserts the record, Route 53 has no separate create/update.
func (r *Route53) EnsureCNAME(domain string, target string) error {
	if target == "" {
		return errors.New("CNAME target is nil")
	}

	zoneID, err := r.getZone(domain)
	if err != nil {
		return err
	}

	_, err = r.client.ChangeResourceRecordSets(&route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &route53.ChangeBatch{
			Changes: []*route53.Change{{
				Action: aws.String(route53.ChangeActionUpsert),
				ResourceRecordSet: &route53.ResourceRecordSet{
					Name:            aws.String(domain),
					Type:            aws.String(route53.RRTypeCname),
					TTL:             aws.Int64(300),
					ResourceRecords: []*route53.ResourceRecord{{Value: aws.String(target)}},
				},
			}},
		},
	})
	if err != nil {
		return err
	}

	log.Printf("[%s] upsert record success, target: %s", domain, target)
	return nil
}

func (r *Route53) getZone(domain string) (string, error) {
	zones, err := r.client.ListHostedZones(&route53.ListHostedZonesInput{})
	if err != nil {
		return "", err
	}

	zoneID := ""
	for i := range zones.HostedZones {
		name := strings.TrimSuffix(aws.StringValue(zones.HostedZones[i].Name), ".")
		if strings.Contains(domain, name) {
			zoneID = aws.StringValue(zones.HostedZones[i].Id)
		}
	}
	if zoneID == "" {
		return "", errors.New("cannot find a valid zone")
	}
	return zoneID, nil
}
