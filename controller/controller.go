package controller

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/thank243/acmednsCli/config"
)

func New(c *config.Config) *Server {
	s := &Server{
		conf:     c,
		cron:     cron.New(),
		interval: c.Interval,
	}
	if s.interval <= 0 {
		s.interval = 300
	}

	// init log level
	if l, err := log.ParseLevel(c.LogLevel); err != nil {
		log.Panic(err)
	} else {
		log.SetLevel(l)
		fmt.Printf("Log level: %s  (Concurrent: %d)\n", c.LogLevel, c.Concurrent)
	}

	concurrent := c.Concurrent
	if concurrent <= 0 {
		concurrent = 1
	}
	pool, err := ants.NewPool(concurrent)
	if err != nil {
		log.Panic(err)
	}
	s.pool = pool

	s.nodes = s.buildNodes()

	return s
}

func (s *Server) Start() {
	// On init start, do once check
	defer s.task()

	s.Lock()
	s.running = true
	s.Unlock()

	// cron check
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", s.interval), s.task); err != nil {
		log.Panic(err)
	}

	s.cron.Start()
	log.Warnln(config.AppName, "Started")
}

func (s *Server) task() {
	// The cron goroutine can still fire while a config reload closes this
	// server; a closed server checks nothing.
	s.RLock()
	running := s.running
	s.RUnlock()
	if !running || s.cronRunning.Load() {
		return
	}

	s.cronRunning.Store(true)
	defer s.cronRunning.Store(false)

	for i := range s.nodes {
		n := s.nodes[i]
		s.wg.Add(1)
		if err := s.pool.Submit(func() {
			defer s.wg.Done()
			n.check()
		}); err != nil {
			s.wg.Done()
			log.Error(err)
		}
	}
	s.wg.Wait()
}

func (s *Server) Close() {
	s.cron.Stop()
	s.pool.Release()

	s.Lock()
	s.running = false
	s.Unlock()

	log.Warnln(config.AppName, "Closed")
}
