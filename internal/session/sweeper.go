package session

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/ridloal/agri-storefront/internal/platform/logger"
)

// Sweeper runs Registry.Sweep on a cron schedule (seconds field included).
type Sweeper struct {
	registry  *Registry
	scheduler *cron.Cron
	spec      string
}

func NewSweeper(registry *Registry, spec string) (*Sweeper, error) {
	s := &Sweeper{
		registry:  registry,
		scheduler: cron.New(cron.WithSeconds()),
		spec:      spec,
	}
	if _, err := s.scheduler.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("invalid session sweep spec %q: %w", spec, err)
	}
	return s, nil
}

// Run performs one sweep immediately.
func (s *Sweeper) Run() {
	if removed := s.registry.Sweep(); removed > 0 {
		logger.Info("Session sweeper: discarded %d idle carts, %d active", removed, s.registry.Len())
	}
}

func (s *Sweeper) Start() {
	s.scheduler.Start()
	logger.Info("Session sweeper scheduled with spec '%s'", s.spec)
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.scheduler.Stop().Done()
}
