// Package notification delivers budget and inactivity alerts via Resend and
// runs the periodic sweep worker.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/usecase/notification"
	"github.com/spendwise/backend/internal/domain/entity"
)

// Worker periodically runs the overspend and inactivity sweeps and dispatches
// the resulting alerts.
type Worker struct {
	overspend  *notification.CheckOverspendingUseCase
	inactivity *notification.CheckInactivityUseCase
	userRepo   adapter.UserRepository
	store      adapter.NotificationRepository
	sender     adapter.NotificationSender
	interval   time.Duration
	now        func() time.Time
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	SweepInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		SweepInterval: time.Hour,
	}
}

// NewWorker creates a new notification worker.
func NewWorker(
	overspend *notification.CheckOverspendingUseCase,
	inactivity *notification.CheckInactivityUseCase,
	userRepo adapter.UserRepository,
	store adapter.NotificationRepository,
	sender adapter.NotificationSender,
	config WorkerConfig,
) *Worker {
	return &Worker{
		overspend:  overspend,
		inactivity: inactivity,
		userRepo:   userRepo,
		store:      store,
		sender:     sender,
		interval:   config.SweepInterval,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the worker's clock. Test hook.
func (w *Worker) WithClock(now func() time.Time) *Worker {
	w.now = now
	return w
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started", "sweep_interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Sweep immediately on start, then on ticker
	w.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs both checks once and dispatches whatever they produce.
func (w *Worker) Sweep(ctx context.Context) {
	if alerts, err := w.overspend.Execute(ctx); err != nil {
		slog.Error("Overspend sweep failed", "error", err)
	} else {
		w.dispatch(ctx, alerts)
	}

	if alerts, err := w.inactivity.Execute(ctx); err != nil {
		slog.Error("Inactivity sweep failed", "error", err)
	} else {
		w.dispatch(ctx, alerts)
	}
}

// dispatch sends each alert at most once per dedup window, honoring the
// user's notification preference.
func (w *Worker) dispatch(ctx context.Context, alerts []*entity.Notification) {
	for _, alert := range alerts {
		select {
		case <-ctx.Done():
			return
		default:
		}

		logger := slog.With("user_id", alert.UserID, "type", alert.Type, "category", alert.Category)

		user, err := w.userRepo.FindByID(ctx, alert.UserID)
		if err != nil {
			logger.Error("Failed to load user for notification", "error", err)
			continue
		}
		if !user.EmailNotifications {
			continue
		}

		exists, err := w.store.ExistsSince(ctx, alert.UserID, alert.Type, alert.Category, w.dedupCutoff(alert))
		if err != nil {
			logger.Error("Failed to check notification dedup", "error", err)
			continue
		}
		if exists {
			continue
		}

		if err := w.sender.Send(ctx, user, alert); err != nil {
			logger.Error("Failed to send notification", "error", err)
			continue
		}

		if err := w.store.Create(ctx, alert); err != nil {
			logger.Error("Failed to record notification", "error", err)
			continue
		}

		logger.Info("Notification sent")
	}
}

// dedupCutoff returns the start of the window within which a duplicate alert
// is suppressed. Overspend alerts fire at most once per calendar month per
// category; inactivity alerts at most once per inactivity window.
func (w *Worker) dedupCutoff(alert *entity.Notification) time.Time {
	ref := w.now()
	switch alert.Type {
	case entity.NotificationTypeOverspend:
		return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	case entity.NotificationTypeInactivity:
		return ref.AddDate(0, 0, -notification.InactivityDays)
	default:
		return ref
	}
}
