package cron

import (
	"context"
	"fmt"
	"time"

	"productivity-service/internal/domain/service"
	"productivity-service/internal/logging"

	"github.com/robfig/cron/v3"
)

// ReminderDispatcher periodically publishes reminders whose trigger time has passed
type ReminderDispatcher struct {
	reminderService service.ReminderService
	logger          logging.Logger
	cron            *cron.Cron
	interval        time.Duration
	batchSize       int
}

// NewReminderDispatcher creates a new reminder dispatcher
func NewReminderDispatcher(reminderService service.ReminderService, logger logging.Logger, interval time.Duration, batchSize int) *ReminderDispatcher {
	return &ReminderDispatcher{
		reminderService: reminderService,
		logger:          logger.With("component", "reminder_dispatcher"),
		cron:            cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		interval:        interval,
		batchSize:       batchSize,
	}
}

// Start starts the dispatcher
func (d *ReminderDispatcher) Start() error {
	if d.interval <= 0 {
		return fmt.Errorf("invalid dispatch interval: %s", d.interval)
	}
	cronExpr := fmt.Sprintf("@every %s", d.interval.String())

	if _, err := d.cron.AddFunc(cronExpr, d.dispatch); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	d.cron.Start()
	d.logger.Info(context.Background(), "reminder dispatcher started", "interval", d.interval.String())

	return nil
}

// Stop stops the dispatcher and waits for a running dispatch to finish
func (d *ReminderDispatcher) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
	d.logger.Info(context.Background(), "reminder dispatcher stopped")
}

// dispatch drains due reminders batch by batch until a batch comes back short
func (d *ReminderDispatcher) dispatch() {
	ctx, cancel := context.WithTimeout(context.Background(), d.interval)
	defer cancel()

	total := 0
	for ctx.Err() == nil {
		sent, err := d.reminderService.DispatchDueReminders(ctx, d.batchSize)
		total += sent
		if err != nil {
			d.logger.Error(ctx, "reminder dispatch failed", "error", err, "sent", sent)
			break
		}
		if sent < d.batchSize {
			break
		}
	}

	if total > 0 {
		d.logger.Info(ctx, "reminders dispatched", "count", total)
	}
}
