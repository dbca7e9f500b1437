package services

import (
	"ogrelist/config"
)

type Service struct {
	Scheduler *SchedulerService
	Mailer    *MailerService
}

func New(config config.Config) Service {
	return Service{
		Scheduler: NewSchedulerService(),
		Mailer:    NewMailerService(config),
	}
}
