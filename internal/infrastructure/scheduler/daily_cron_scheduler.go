package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// cronTickerInterval is the interval at which the cron scheduler checks for execution
const cronTickerInterval = 1 * time.Minute

// CondominiumProvider lists the condominiums the daily jobs run for
type CondominiumProvider interface {
	GetActiveCondominiumIDs(ctx context.Context) ([]uuid.UUID, error)
}

// DailyCronSchedulerConfig holds configuration for the cron-based daily scheduler
type DailyCronSchedulerConfig struct {
	// Enabled indicates if the cron scheduler is enabled
	Enabled bool
	// CronHour is the hour (0-23) to run the daily jobs
	CronHour int
	// CronMinute is the minute (0-59) to run the daily jobs
	CronMinute int
	// DailyCronSchedule is the cron expression (parsed to extract hour/minute)
	DailyCronSchedule string
	// JobTimeout is the maximum time a single job can run
	JobTimeout time.Duration
	// MaxConcurrentJobs is the maximum number of concurrent jobs
	MaxConcurrentJobs int
	// RetryAttempts is the number of retry attempts for failed jobs
	RetryAttempts int
	// RetryDelay is the delay between retries
	RetryDelay time.Duration
}

// DefaultDailyCronSchedulerConfig returns default cron scheduler configuration
// Defaults to running at 00:10 daily, just after boletos roll over the due date
func DefaultDailyCronSchedulerConfig() DailyCronSchedulerConfig {
	return DailyCronSchedulerConfig{
		Enabled:           true,
		CronHour:          0,
		CronMinute:        10,
		DailyCronSchedule: "10 0 * * *",
		JobTimeout:        30 * time.Minute,
		MaxConcurrentJobs: 3,
		RetryAttempts:     3,
		RetryDelay:        5 * time.Minute,
	}
}

// ParseCronSchedule parses a cron expression "minute hour * * *" to extract hour and minute
// Returns defaults (00:10) if parsing fails or expression is empty
func ParseCronSchedule(cronExpr string) (hour, minute int, err error) {
	// Default values
	hour = 0
	minute = 10

	if cronExpr == "" {
		return hour, minute, nil
	}

	// Use strings.Fields for simple whitespace splitting
	parts := strings.Fields(cronExpr)

	if len(parts) < 2 {
		return hour, minute, nil
	}

	// Parse minute
	if parts[0] != "*" {
		if val, parseErr := parseIntOrDefault(parts[0], 10); parseErr == nil {
			minute = val
		}
	}

	// Parse hour
	if parts[1] != "*" {
		if val, parseErr := parseIntOrDefault(parts[1], 0); parseErr == nil {
			hour = val
		}
	}

	// Validate ranges
	if minute < 0 || minute > 59 {
		return 0, 10, fmt.Errorf("minute must be 0-59, got %d", minute)
	}
	if hour < 0 || hour > 23 {
		return 0, 10, fmt.Errorf("hour must be 0-23, got %d", hour)
	}

	return hour, minute, nil
}

// parseIntOrDefault parses an int string or returns default
func parseIntOrDefault(s string, defaultVal int) (int, error) {
	if s == "" || s == "*" {
		return defaultVal, nil
	}
	var val int
	for _, c := range s {
		if c < '0' || c > '9' {
			return defaultVal, ErrInvalidConfig
		}
		val = val*10 + int(c-'0')
	}
	return val, nil
}

// SchedulerJobRecord represents a record of a scheduled job execution
type SchedulerJobRecord struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CondominiumID *uuid.UUID `gorm:"column:condominium_id;type:uuid"`
	JobType       string     `gorm:"column:job_type;size:50;not null"`
	Status        string     `gorm:"column:last_run_status;size:20"`
	Error         string     `gorm:"column:last_error;type:text"`
	StartedAt     *time.Time `gorm:"column:last_run_at"`
	CompletedAt   *time.Time `gorm:"column:completed_at"`
	NextRunAt     *time.Time `gorm:"column:next_run_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (SchedulerJobRecord) TableName() string {
	return "scheduler_jobs"
}

// SchedulerJobRepository handles persistence of scheduler job records
type SchedulerJobRepository struct {
	db *gorm.DB
}

// NewSchedulerJobRepository creates a new SchedulerJobRepository
func NewSchedulerJobRepository(db *gorm.DB) *SchedulerJobRepository {
	return &SchedulerJobRepository{db: db}
}

// RecordJobStart records the start of a job execution
func (r *SchedulerJobRepository) RecordJobStart(ctx context.Context, condominiumID *uuid.UUID, jobType string) (uuid.UUID, error) {
	now := time.Now()
	record := &SchedulerJobRecord{
		ID:            uuid.New(),
		CondominiumID: condominiumID,
		JobType:       jobType,
		Status:        string(JobStatusRunning),
		StartedAt:     &now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

// RecordJobComplete records the completion of a job
func (r *SchedulerJobRepository) RecordJobComplete(ctx context.Context, jobID uuid.UUID, success bool, errMsg string) error {
	now := time.Now()
	status := string(JobStatusSuccess)
	if !success {
		status = string(JobStatusFailed)
	}
	return r.db.WithContext(ctx).
		Model(&SchedulerJobRecord{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"last_run_status": status,
			"last_error":      errMsg,
			"completed_at":    now,
			"updated_at":      now,
		}).Error
}

// GetLastJobStatus gets the last job status for a job type
func (r *SchedulerJobRepository) GetLastJobStatus(ctx context.Context, condominiumID *uuid.UUID, jobType string) (*SchedulerJobRecord, error) {
	var record SchedulerJobRecord
	query := r.db.WithContext(ctx).Where("job_type = ?", jobType)
	if condominiumID != nil {
		query = query.Where("condominium_id = ?", *condominiumID)
	} else {
		query = query.Where("condominium_id IS NULL")
	}
	if err := query.Order("last_run_at DESC").First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// DailyCronScheduler implements cron-based scheduling for the daily maintenance jobs
type DailyCronScheduler struct {
	config    DailyCronSchedulerConfig
	executor  JobExecutor
	condos    CondominiumProvider
	jobRepo   *SchedulerJobRepository
	logger    *zap.Logger
	scheduler *Scheduler

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	// Last execution tracking
	lastRunAt *time.Time
	nextRunAt *time.Time
}

// NewDailyCronScheduler creates a new cron-based daily scheduler
func NewDailyCronScheduler(
	config DailyCronSchedulerConfig,
	executor JobExecutor,
	condos CondominiumProvider,
	jobRepo *SchedulerJobRepository,
	logger *zap.Logger,
) *DailyCronScheduler {
	schedulerConfig := SchedulerConfig{
		Enabled:           config.Enabled,
		MaxConcurrentJobs: config.MaxConcurrentJobs,
		JobTimeout:        config.JobTimeout,
		RetryAttempts:     config.RetryAttempts,
		RetryDelay:        config.RetryDelay,
	}
	scheduler := NewScheduler(schedulerConfig, executor, logger)

	return &DailyCronScheduler{
		config:    config,
		executor:  executor,
		condos:    condos,
		jobRepo:   jobRepo,
		logger:    logger,
		scheduler: scheduler,
	}
}

// Start starts the cron scheduler
func (s *DailyCronScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	// Start the underlying job scheduler
	if err := s.scheduler.Start(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Calculate next run time
	s.calculateNextRunTime()

	// Start the cron ticker
	s.wg.Add(1)
	go s.cronLoop(ctx)

	s.logger.Info("Daily cron scheduler started",
		zap.Int("cron_hour", s.config.CronHour),
		zap.Int("cron_minute", s.config.CronMinute),
		zap.Timep("next_run_at", s.nextRunAt),
	)

	return nil
}

// Stop stops the cron scheduler
func (s *DailyCronScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	// Cancel the cron loop
	if s.cancel != nil {
		s.cancel()
	}

	// Wait for cron loop to finish
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// Now stop the underlying scheduler
		if err := s.scheduler.Stop(ctx); err != nil {
			s.logger.Warn("Error stopping underlying scheduler", zap.Error(err))
		}
		s.logger.Info("Daily cron scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Daily cron scheduler stop timed out")
		return ctx.Err()
	}
}

// cronLoop runs the main cron loop
func (s *DailyCronScheduler) cronLoop(ctx context.Context) {
	defer s.wg.Done()

	// Use a ticker that checks every minute for cron execution
	ticker := time.NewTicker(cronTickerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if s.shouldRun(now) {
				s.runDailyJobs(ctx)
				s.calculateNextRunTime()
			}
		}
	}
}

// shouldRun checks if the cron should run at the given time
func (s *DailyCronScheduler) shouldRun(now time.Time) bool {
	return now.Hour() == s.config.CronHour && now.Minute() == s.config.CronMinute
}

// calculateNextRunTime calculates the next run time
func (s *DailyCronScheduler) calculateNextRunTime() {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.config.CronHour, s.config.CronMinute, 0, 0, now.Location())

	// If we've already passed today's run time, schedule for tomorrow
	if now.After(next) {
		next = next.AddDate(0, 0, 1)
	}

	s.mu.Lock()
	s.nextRunAt = &next
	s.mu.Unlock()
}

// runDailyJobs schedules the daily jobs for all active condominiums
func (s *DailyCronScheduler) runDailyJobs(ctx context.Context) {
	s.logger.Info("Starting daily maintenance run")

	now := time.Now()
	s.mu.Lock()
	s.lastRunAt = &now
	s.mu.Unlock()

	condoIDs, err := s.condos.GetActiveCondominiumIDs(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch active condominiums for daily run", zap.Error(err))
		return
	}

	s.logger.Info("Scheduling daily jobs for condominiums", zap.Int("condominium_count", len(condoIDs)))

	referenceDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, condoID := range condoIDs {
		condoID := condoID
		for _, jobType := range AllDailyJobTypes() {
			// Record job start
			var jobID uuid.UUID
			if s.jobRepo != nil {
				var recordErr error
				jobID, recordErr = s.jobRepo.RecordJobStart(ctx, &condoID, string(jobType))
				if recordErr != nil {
					s.logger.Warn("Failed to record job start",
						zap.String("condominium_id", condoID.String()),
						zap.String("job_type", string(jobType)),
						zap.Error(recordErr),
					)
				}
			}

			// Create and submit job
			job := NewJob(&condoID, jobType, referenceDate, s.config.RetryAttempts)
			if err := s.scheduler.SubmitJob(job); err != nil {
				s.logger.Error("Failed to submit daily job",
					zap.String("condominium_id", condoID.String()),
					zap.String("job_type", string(jobType)),
					zap.Error(err),
				)
				// Record failure
				if s.jobRepo != nil && jobID != uuid.Nil {
					_ = s.jobRepo.RecordJobComplete(ctx, jobID, false, err.Error())
				}
				continue
			}

			s.logger.Debug("Scheduled daily job",
				zap.String("condominium_id", condoID.String()),
				zap.String("job_type", string(jobType)),
			)
		}
	}

	s.logger.Info("Daily maintenance jobs scheduled",
		zap.Int("condominium_count", len(condoIDs)),
		zap.Int("job_types", len(AllDailyJobTypes())),
	)
}

// TriggerManualRun triggers a manual run of the daily jobs
// Note: Uses background context to avoid premature cancellation when HTTP request completes
func (s *DailyCronScheduler) TriggerManualRun(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	// Use background context to prevent premature cancellation when HTTP request completes
	go s.runDailyJobs(context.Background())
	return nil
}

// TriggerCondominiumRun triggers the daily jobs for a specific condominium
func (s *DailyCronScheduler) TriggerCondominiumRun(ctx context.Context, condominiumID uuid.UUID, referenceDate time.Time) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	for _, jobType := range AllDailyJobTypes() {
		job := NewJob(&condominiumID, jobType, referenceDate, s.config.RetryAttempts)
		if err := s.scheduler.SubmitJob(job); err != nil {
			return err
		}
	}
	return nil
}

// GetStatus returns the current status of the cron scheduler
func (s *DailyCronScheduler) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":       s.config.Enabled,
		"is_running":    s.isRunning,
		"cron_hour":     s.config.CronHour,
		"cron_minute":   s.config.CronMinute,
		"cron_schedule": "Daily",
		"last_run_at":   s.lastRunAt,
		"next_run_at":   s.nextRunAt,
		"job_types":     AllDailyJobTypes(),
	}
}

// GetNextRunAt returns when the next scheduled run will occur
func (s *DailyCronScheduler) GetNextRunAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRunAt
}

// GetLastRunAt returns when the last run occurred
func (s *DailyCronScheduler) GetLastRunAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRunAt
}
