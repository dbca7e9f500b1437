package app

import (
	"context"

	"ogrelist/config"
	"ogrelist/internal/controllers"
	"ogrelist/internal/database"
	"ogrelist/internal/handlers/middleware"
	"ogrelist/internal/jobs"
	"ogrelist/internal/repositories"
	"ogrelist/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	Services services.Service

	Repo repositories.Repository

	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	svc := services.New(config)
	ctrls := controllers.New(repos, config)
	mw := middleware.New(db, config, repos)

	if err := jobs.RegisterAllJobs(svc.Scheduler, config, svc, repos); err != nil {
		return &App{}, log.Err("failed to register jobs", err)
	}

	if config.SchedulerEnabled {
		if err := svc.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  mw,
		Services:    svc,
		Repo:        repos,
		Controllers: ctrls,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Scheduler,
		a.Services.Mailer,
		a.Repo.User,
		a.Repo.House,
		a.Repo.Room,
		a.Repo.Appliance,
		a.Repo.Part,
		a.Repo.Ownership,
		a.Controllers.Auth,
		a.Controllers.User,
		a.Controllers.House,
		a.Controllers.Room,
		a.Controllers.Appliance,
		a.Controllers.Part,
		a.Controllers.Dashboard,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
