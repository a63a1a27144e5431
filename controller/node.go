package controller

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/thank243/acmednsCli/client"
	"github.com/thank243/acmednsCli/common/notify"
)

type node struct {
	name     string
	client   *client.Client
	notifier notify.Notify

	// down is only touched from check, one goroutine per node per task run.
	down bool
}

func (n *node) check() {
	if err := n.client.Health(); err != nil {
		log.Errorf("[%s] health check failure: %v", n.name, err)
		if !n.down {
			n.down = true
			n.webhook(fmt.Sprintf("health check failure: %v", err))
		}
		return
	}

	log.Debugf("[%s] health check ok", n.name)
	if n.down {
		n.down = false
		n.webhook("endpoint recovered")
	}
}

func (n *node) webhook(content string) {
	if n.notifier == nil {
		return
	}
	if err := n.notifier.Webhook(n.name, content); err != nil {
		log.Error(err)
	}
}
