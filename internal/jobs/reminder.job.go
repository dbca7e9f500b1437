package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"
	"ogrelist/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// ReminderJob performs one due-reminder sweep per tick: houses, then rooms,
// then appliances, then parts. Each due row is resolved up its parent chain
// to the owning user, notified, and its reminder cleared. Per-row failures
// leave the reminder set so the row is retried on the next tick; a failing
// pass never aborts the remaining passes. Notify-then-clear is deliberately
// not transactional: delivery is at-least-once, with a duplicate window if
// the process dies between send and clear.
type ReminderJob struct {
	userRepo      repositories.UserRepository
	houseRepo     repositories.HouseRepository
	roomRepo      repositories.RoomRepository
	applianceRepo repositories.ApplianceRepository
	partRepo      repositories.PartRepository
	notifier      services.Notifier
	clock         Clock
	interval      time.Duration
	sweeping      sync.Mutex
	log           logger.Logger
}

func NewReminderJob(
	repos repositories.Repository,
	notifier services.Notifier,
	clock Clock,
	interval time.Duration,
) *ReminderJob {
	log := logger.New("reminderJob")
	log.Info("Creating new reminder job", "interval", interval)

	return &ReminderJob{
		userRepo:      repos.User,
		houseRepo:     repos.House,
		roomRepo:      repos.Room,
		applianceRepo: repos.Appliance,
		partRepo:      repos.Part,
		notifier:      notifier,
		clock:         clock,
		interval:      interval,
		log:           log,
	}
}

func (j *ReminderJob) Name() string {
	return "ReminderSweep"
}

func (j *ReminderJob) Interval() time.Duration {
	return j.interval
}

// Execute runs one sweep cycle. A tick that arrives while the previous sweep
// is still in flight is skipped rather than stacked.
func (j *ReminderJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	if !j.sweeping.TryLock() {
		log.Warn("Sweep already in progress, skipping tick")
		return nil
	}
	defer j.sweeping.Unlock()

	now := j.clock.Now()
	log.Info("Running reminder check", "now", now)

	j.sweepHouses(ctx, now)
	j.sweepRooms(ctx, now)
	j.sweepAppliances(ctx, now)
	j.sweepParts(ctx, now)

	return nil
}

func (j *ReminderJob) sweepHouses(ctx context.Context, now time.Time) {
	log := j.log.Function("sweepHouses")

	houses, err := j.houseRepo.FindAllWithPastReminderDate(ctx, now)
	if err != nil {
		log.Er("failed to fetch due house reminders", err)
		return
	}

	for _, house := range houses {
		user, err := j.userRepo.GetByID(ctx, house.UserID)
		if err != nil {
			j.logChainFailure(log, err, "house", house.ID)
			continue
		}

		item := fmt.Sprintf("Reminder for house: %s", house.Name)
		if err := j.notifier.Send(ctx, user.Email, "House Reminder", item); err != nil {
			log.Er("failed to notify house reminder", err, "houseID", house.ID)
			continue
		}

		if err := j.houseRepo.ClearReminder(ctx, house.ID); err != nil {
			log.Er("failed to clear house reminder", err, "houseID", house.ID)
		}
	}
}

func (j *ReminderJob) sweepRooms(ctx context.Context, now time.Time) {
	log := j.log.Function("sweepRooms")

	rooms, err := j.roomRepo.FindAllWithPastReminderDate(ctx, now)
	if err != nil {
		log.Er("failed to fetch due room reminders", err)
		return
	}

	for _, room := range rooms {
		user, err := j.userForHouse(ctx, room.HouseID)
		if err != nil {
			j.logChainFailure(log, err, "room", room.ID)
			continue
		}

		item := fmt.Sprintf("Reminder for room: %s", room.Name)
		if err := j.notifier.Send(ctx, user.Email, "Room Reminder", item); err != nil {
			log.Er("failed to notify room reminder", err, "roomID", room.ID)
			continue
		}

		if err := j.roomRepo.ClearReminder(ctx, room.ID); err != nil {
			log.Er("failed to clear room reminder", err, "roomID", room.ID)
		}
	}
}

func (j *ReminderJob) sweepAppliances(ctx context.Context, now time.Time) {
	log := j.log.Function("sweepAppliances")

	appliances, err := j.applianceRepo.FindAllWithPastReminderDate(ctx, now)
	if err != nil {
		log.Er("failed to fetch due appliance reminders", err)
		return
	}

	for _, appliance := range appliances {
		user, err := j.userForRoom(ctx, appliance.RoomID)
		if err != nil {
			j.logChainFailure(log, err, "appliance", appliance.ID)
			continue
		}

		item := fmt.Sprintf("Reminder for appliance: %s", appliance.Name)
		if err := j.notifier.Send(ctx, user.Email, "Appliance Reminder", item); err != nil {
			log.Er("failed to notify appliance reminder", err, "applianceID", appliance.ID)
			continue
		}

		if err := j.applianceRepo.ClearReminder(ctx, appliance.ID); err != nil {
			log.Er("failed to clear appliance reminder", err, "applianceID", appliance.ID)
		}
	}
}

func (j *ReminderJob) sweepParts(ctx context.Context, now time.Time) {
	log := j.log.Function("sweepParts")

	parts, err := j.partRepo.FindAllWithPastReminderDate(ctx, now)
	if err != nil {
		log.Er("failed to fetch due part reminders", err)
		return
	}

	for _, part := range parts {
		user, err := j.userForAppliance(ctx, part.ApplianceID)
		if err != nil {
			j.logChainFailure(log, err, "part", part.ID)
			continue
		}

		item := fmt.Sprintf("Reminder for part: %s", part.Name)
		if err := j.notifier.Send(ctx, user.Email, "Part Reminder", item); err != nil {
			log.Er("failed to notify part reminder", err, "partID", part.ID)
			continue
		}

		if err := j.partRepo.ClearReminder(ctx, part.ID); err != nil {
			log.Er("failed to clear part reminder", err, "partID", part.ID)
		}
	}
}

// The sweep walks parent chains with plain repo lookups rather than the
// shared OwnershipResolver: it needs the user row for the email address, not
// just the owner id.

func (j *ReminderJob) userForHouse(ctx context.Context, houseID int) (*User, error) {
	house, err := j.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return nil, err
	}

	return j.userRepo.GetByID(ctx, house.UserID)
}

func (j *ReminderJob) userForRoom(ctx context.Context, roomID int) (*User, error) {
	room, err := j.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return j.userForHouse(ctx, room.HouseID)
}

func (j *ReminderJob) userForAppliance(ctx context.Context, applianceID int) (*User, error) {
	appliance, err := j.applianceRepo.GetByID(ctx, applianceID)
	if err != nil {
		return nil, err
	}

	return j.userForRoom(ctx, appliance.RoomID)
}

// logChainFailure keeps orphaned rows quiet: a deleted parent is expected
// between sweeps and only worth a debug line, anything else is a real error.
func (j *ReminderJob) logChainFailure(log logger.Logger, err error, kind string, id int) {
	if errors.Is(err, repositories.ErrNotFound) {
		log.Debug("skipping due reminder with broken parent chain", "kind", kind, "id", id)
		return
	}

	log.Er("failed to resolve reminder owner", err, "kind", kind, "id", id)
}
