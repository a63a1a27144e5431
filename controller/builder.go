package controller

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/thank243/acmednsCli/client"
	"github.com/thank243/acmednsCli/common/notify"
	"github.com/thank243/acmednsCli/common/notify/pushplus"
	"github.com/thank243/acmednsCli/common/notify/telegram"
)

func (s *Server) buildNodes() []*node {
	// init notifier
	var notifier notify.Notify
	if s.conf.Notify != nil {
		switch s.conf.Notify.Provider {
		case "pushplus":
			notifier = &pushplus.PushPlus{Token: s.conf.Notify.Config["pushplus_token"]}
		case "telegram":
			chatID, err := strconv.ParseInt(s.conf.Notify.Config["telegram_chatid"], 10, 64)
			if err != nil {
				log.Panicln(err)
			}
			notifier = &telegram.Telegram{
				ChatID: chatID,
				Token:  s.conf.Notify.Config["telegram_token"],
			}
		}
	}

	var nodes []*node
	for i := range s.conf.Endpoints {
		e := s.conf.Endpoints[i]

		cli, err := client.New(e.APIBase)
		if err != nil {
			log.Panicln(err)
		}

		name := e.Name
		if name == "" {
			name = e.APIBase
		}

		nodes = append(nodes, &node{
			name:     name,
			client:   cli,
			notifier: notifier,
		})
	}

	return nodes
}
