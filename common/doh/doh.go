package doh

import (
	"io"
	"net/http"
	"time"

	"github.com/bitly/go-simplejson"
	log "github.com/sirupsen/logrus"
)

// RFC 4034 type codes for the dns-json "type" query parameter.
var recordType = map[string]string{
	"A":     "1",
	"CNAME": "5",
	"TXT":   "16",
}

type Client struct {
	nameserver string
}

func New(server string) *Client {
	return &Client{nameserver: server}
}

// Lookup queries the DoH nameserver for name and returns the answer data
// fields. Failures are logged and yield an empty result.
func (d *Client) Lookup(name string, rtype string) []string {
	client := http.Client{
		Timeout: time.Second * 20,
	}

	req, err := http.NewRequest("GET", d.nameserver, nil)
	if err != nil {
		log.Error(err)
		return nil
	}

	req.Header.Add("accept", "application/dns-json")

	q := req.URL.Query()
	q.Add("name", name)
	q.Add("type", recordType[rtype])
	req.URL.RawQuery = q.Encode()

	res, err := client.Do(req)
	if err != nil {
		log.Error(err)
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	res.Body.Close()

	json, err := simplejson.NewJson(body)
	if err != nil {
		return nil
	}
	answers := json.Get("Answer").MustArray()
	if len(answers) == 0 {
		return nil
	}

	var records []string
	for i := range answers {
		ans := answers[i].(map[string]any)
		if v, ok := ans["data"]; ok {
			records = append(records, v.(string))
		}
	}
	return records
}
