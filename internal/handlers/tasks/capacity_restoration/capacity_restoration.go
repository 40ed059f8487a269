package capacity_restoration

import (
	"context"
	"time"

	"yardbook/pkg/logger"
)

type Service interface {
	Run(ctx context.Context) (restored int64, sent int, err error)
}

type CapacityRestoration struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCapacityRestoration(log logger.Logger, service Service, interval time.Duration) *CapacityRestoration {
	return &CapacityRestoration{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CapacityRestoration) TTL() time.Duration {
	return c.interval
}

func (c *CapacityRestoration) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	restored, sent, err := c.service.Run(ctxWithTimeout)

	if restored > 0 || sent > 0 {
		c.log.With(
			logger.NewField("restored_rules", restored),
			logger.NewField("notices_sent", sent),
		).Info("capacity restoration")
	}

	return err
}

func (c *CapacityRestoration) Info() string {
	return "capacity restoration"
}
