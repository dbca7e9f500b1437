package jobs

import (
	"time"

	"ogrelist/config"
	"ogrelist/internal/repositories"
	"ogrelist/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// RegisterAllJobs registers all background jobs with the scheduler service.
func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	services services.Service,
	repos repositories.Repository,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")

	if !config.SchedulerEnabled {
		log.Info("Scheduler disabled, skipping job registration")
		return nil
	}

	reminderJob := NewReminderJob(
		repos,
		services.Mailer,
		SystemClock{},
		time.Duration(config.ReminderIntervalMinutes)*time.Minute,
	)
	if err := schedulerService.AddJob(reminderJob); err != nil {
		return log.Err("failed to register reminder job", err)
	}
	log.Info(
		"Registered reminder job",
		"intervalMinutes", config.ReminderIntervalMinutes,
	)

	return nil
}
