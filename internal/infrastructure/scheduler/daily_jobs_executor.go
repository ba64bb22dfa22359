package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appbilling "github.com/condo/backend/internal/application/billing"
	appfrontdesk "github.com/condo/backend/internal/application/frontdesk"
)

// OverdueSweeper flags sent boletos whose due date has passed
type OverdueSweeper interface {
	MarkOverdueSweep(ctx context.Context, condominiumID uuid.UUID) (*appbilling.OverdueSweepResult, error)
}

// PendingPickupLister lists packages that have been waiting at the front desk
type PendingPickupLister interface {
	ListPendingPickup(ctx context.Context, condominiumID uuid.UUID, olderThanDays int) ([]*appfrontdesk.EncomendaResponse, error)
}

// DailyJobExecutor dispatches scheduled maintenance jobs to the owning services
type DailyJobExecutor struct {
	sweeper             OverdueSweeper
	pickups             PendingPickupLister
	packageReminderDays int
	logger              *zap.Logger

	// onPackageReminder is invoked for each package past the reminder threshold.
	// Wire a notification sender here; the default only logs.
	onPackageReminder func(ctx context.Context, condominiumID uuid.UUID, pkg *appfrontdesk.EncomendaResponse) error
}

// NewDailyJobExecutor creates a new daily job executor
func NewDailyJobExecutor(
	sweeper OverdueSweeper,
	pickups PendingPickupLister,
	packageReminderDays int,
	logger *zap.Logger,
) *DailyJobExecutor {
	if packageReminderDays <= 0 {
		packageReminderDays = 3
	}
	return &DailyJobExecutor{
		sweeper:             sweeper,
		pickups:             pickups,
		packageReminderDays: packageReminderDays,
		logger:              logger,
	}
}

// SetOnPackageReminderCallback sets the callback for package reminders
func (e *DailyJobExecutor) SetOnPackageReminderCallback(cb func(ctx context.Context, condominiumID uuid.UUID, pkg *appfrontdesk.EncomendaResponse) error) {
	e.onPackageReminder = cb
}

// Execute runs a single maintenance job
func (e *DailyJobExecutor) Execute(ctx context.Context, job *Job) error {
	if job.CondominiumID == nil {
		return fmt.Errorf("%w: job %s has no condominium", ErrInvalidConfig, job.ID)
	}

	switch job.JobType {
	case JobTypeOverdueSweep:
		return e.runOverdueSweep(ctx, *job.CondominiumID)
	case JobTypePackageReminder:
		return e.runPackageReminder(ctx, *job.CondominiumID)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidJobType, job.JobType)
	}
}

// runOverdueSweep flags every boleto past its due date for the condominium
func (e *DailyJobExecutor) runOverdueSweep(ctx context.Context, condominiumID uuid.UUID) error {
	result, err := e.sweeper.MarkOverdueSweep(ctx, condominiumID)
	if err != nil {
		return fmt.Errorf("overdue sweep failed: %w", err)
	}

	e.logger.Info("Overdue sweep completed",
		zap.String("condominium_id", condominiumID.String()),
		zap.Int("checked", result.Checked),
		zap.Int("marked", result.Marked),
	)
	return nil
}

// runPackageReminder finds packages waiting past the reminder threshold
func (e *DailyJobExecutor) runPackageReminder(ctx context.Context, condominiumID uuid.UUID) error {
	pending, err := e.pickups.ListPendingPickup(ctx, condominiumID, e.packageReminderDays)
	if err != nil {
		return fmt.Errorf("package reminder lookup failed: %w", err)
	}

	for _, pkg := range pending {
		if e.onPackageReminder != nil {
			if err := e.onPackageReminder(ctx, condominiumID, pkg); err != nil {
				e.logger.Warn("Package reminder callback failed",
					zap.String("condominium_id", condominiumID.String()),
					zap.String("package_id", pkg.ID),
					zap.Error(err),
				)
			}
			continue
		}
		e.logger.Info("Package awaiting pickup",
			zap.String("condominium_id", condominiumID.String()),
			zap.String("package_id", pkg.ID),
			zap.String("unit_id", pkg.UnitID),
			zap.Int("days_held", pkg.DaysHeld),
		)
	}

	e.logger.Info("Package reminder run completed",
		zap.String("condominium_id", condominiumID.String()),
		zap.Int("pending_count", len(pending)),
	)
	return nil
}

// Ensure DailyJobExecutor implements JobExecutor
var _ JobExecutor = (*DailyJobExecutor)(nil)
