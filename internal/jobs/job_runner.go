package jobs

import (
	"campushub-backend/internal/config"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
	"campushub-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	tickets       repository.TicketRepository
	clubs         repository.ClubRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	email         service.EmailService
	config        *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	tickets repository.TicketRepository,
	clubs repository.ClubRepository,
	users repository.UserRepository,
	notifications repository.NotificationRepository,
	email service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		tickets:       tickets,
		clubs:         clubs,
		users:         users,
		notifications: notifications,
		email:         email,
		config:        cfg,
	}
}

// Config exposes the runner's configuration for the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every scheduled job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.SendPendingReviewDigest()
	jr.PurgeReadNotifications()
}
