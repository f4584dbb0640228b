package cron

import (
	"context"
	"fmt"

	"github.com/gorravana/boutique-backend/pkg/logger"
)

type notificationPruner interface {
	Cleanup(ctx context.Context) (int64, error)
}

// NewNotificationCleanupJob prunes read admin notifications past the service's
// retention window.
func NewNotificationCleanupJob(logg *logger.Logger, pruner notificationPruner) (Job, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if pruner == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	return &notificationCleanupJob{logg: logg, pruner: pruner}, nil
}

type notificationCleanupJob struct {
	logg   *logger.Logger
	pruner notificationPruner
}

func (j *notificationCleanupJob) Name() string { return "notification-cleanup" }

func (j *notificationCleanupJob) Run(ctx context.Context) error {
	deleted, err := j.pruner.Cleanup(ctx)
	if err != nil {
		return fmt.Errorf("notification cleanup: %w", err)
	}
	j.logg.Info(j.logg.WithField(ctx, "rows_deleted", deleted), "notification cleanup complete")
	return nil
}
