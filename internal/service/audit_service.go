package service

import (
	"context"

	"dungeon-master-be/internal/pkg/logger"
	"dungeon-master-be/pkg/events"
	pktNats "dungeon-master-be/pkg/nats"
)

type IAuditService interface {
	Start() error
}

// auditService drains domain events off the NATS bus into the activity
// log. The durable consumer means events published while the service is
// down are replayed on restart.
type auditService struct {
	sub    *pktNats.Subscriber
	logger logger.ILogger
}

func NewAuditService(sub *pktNats.Subscriber, log logger.ILogger) IAuditService {
	return &auditService{
		sub:    sub,
		logger: log,
	}
}

func (s *auditService) Start() error {
	return s.sub.Subscribe("events.>", "activity-audit", func(ctx context.Context, event events.Event) error {
		s.logger.Info("AuditService", "Domain event", map[string]interface{}{
			"subject": event.EventType(),
			"payload": event.Payload(),
		})
		return nil
	})
}
