package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/models"
)

// TickRunner triggers one simulator pass.
type TickRunner interface {
	Tick(ctx context.Context, req models.TickRequest) (*models.TickResult, error)
}

// TickWorker drives the traffic simulator on a fixed interval.
type TickWorker struct {
	traffic  TickRunner
	interval time.Duration
	log      *logrus.Logger
}

// NewTickWorker creates a TickWorker. An interval at or below zero disables
// scheduled ticks; manual ticks through the API still work.
func NewTickWorker(traffic TickRunner, interval time.Duration, log *logrus.Logger) *TickWorker {
	return &TickWorker{traffic: traffic, interval: interval, log: log}
}

// Run fires ticks until the context is cancelled. It should be run as a
// goroutine.
func (w *TickWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.log.Info("scheduled traffic ticks disabled")
		return
	}

	w.log.WithField("interval", w.interval).Info("traffic ticker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.traffic.Tick(ctx, models.TickRequest{}); err != nil {
				w.log.WithError(err).Warn("scheduled traffic tick failed")
			}
		}
	}
}
