package controller

import (
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/robfig/cron/v3"

	"github.com/thank243/acmednsCli/config"
)

type Server struct {
	sync.RWMutex
	running     bool
	conf        *config.Config
	interval    int
	nodes       []*node
	cron        *cron.Cron
	cronRunning atomic.Bool
	wg          sync.WaitGroup
	pool        *ants.Pool
}
