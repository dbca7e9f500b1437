package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ogrelist/internal/database"
	. "ogrelist/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const (
	USER_HOUSES_CACHE_PREFIX = "user_houses"
	USER_HOUSES_CACHE_EXPIRY = 24 * time.Hour
)

type HouseRepository interface {
	Create(ctx context.Context, house *House) error
	GetByID(ctx context.Context, id int) (*House, error)
	GetByUserID(ctx context.Context, userID int) ([]*House, error)
	Update(ctx context.Context, house *House) error
	Delete(ctx context.Context, id int) error
	FindAllWithPastReminderDate(ctx context.Context, now time.Time) ([]*House, error)
	ClearReminder(ctx context.Context, id int) error
}

type houseRepository struct {
	db  database.DB
	log logger.Logger
}

func NewHouseRepository(db database.DB) HouseRepository {
	return &houseRepository{
		db:  db,
		log: logger.New("houseRepository"),
	}
}

func (r *houseRepository) Create(ctx context.Context, house *House) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(house).Error; err != nil {
		return log.Err("failed to create house", err, "name", house.Name, "userID", house.UserID)
	}

	r.clearUserHousesCache(ctx, house.UserID)

	log.Info("House created", "houseID", house.ID, "userID", house.UserID)
	return nil
}

func (r *houseRepository) GetByID(ctx context.Context, id int) (*House, error) {
	log := r.log.Function("GetByID")

	var house House
	if err := r.db.SQLWithContext(ctx).First(&house, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get house by id", err, "id", id)
	}

	return &house, nil
}

func (r *houseRepository) GetByUserID(ctx context.Context, userID int) ([]*House, error) {
	log := r.log.Function("GetByUserID")

	var cached []*House
	found, err := database.NewCacheBuilder(r.db.Cache.User, fmt.Sprintf("%d", userID)).
		WithContext(ctx).
		WithHash(USER_HOUSES_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get user houses from cache", "userID", userID, "error", err)
	}

	if found {
		return cached, nil
	}

	var houses []*House
	if err := r.db.SQLWithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&houses).Error; err != nil {
		return nil, log.Err("failed to get houses by user id", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.db.Cache.User, fmt.Sprintf("%d", userID)).
		WithContext(ctx).
		WithHash(USER_HOUSES_CACHE_PREFIX).
		WithStruct(houses).
		WithTTL(USER_HOUSES_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set user houses in cache", "userID", userID, "error", err)
	}

	return houses, nil
}

func (r *houseRepository) Update(ctx context.Context, house *House) error {
	log := r.log.Function("Update")

	result := r.db.SQLWithContext(ctx).Model(&House{}).Where("id = ?", house.ID).
		Updates(map[string]any{
			"name":          house.Name,
			"year_built":    house.YearBuilt,
			"address":       house.Address,
			"reminder_date": house.ReminderDate,
			"website_link":  house.WebsiteLink,
		})
	if result.Error != nil {
		return log.Err("failed to update house", result.Error, "houseID", house.ID)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.clearUserHousesCache(ctx, house.UserID)

	return nil
}

func (r *houseRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	house, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result := r.db.SQLWithContext(ctx).Delete(&House{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete house", result.Error, "houseID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.clearUserHousesCache(ctx, house.UserID)

	log.Info("House deleted", "houseID", id)
	return nil
}

func (r *houseRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*House, error) {
	log := r.log.Function("FindAllWithPastReminderDate")

	var houses []*House
	if err := r.db.SQLWithContext(ctx).
		Where("reminder_date IS NOT NULL AND reminder_date <= ?", now).
		Order("id ASC").
		Find(&houses).Error; err != nil {
		return nil, log.Err("failed to find houses with past reminder date", err)
	}

	return houses, nil
}

func (r *houseRepository) ClearReminder(ctx context.Context, id int) error {
	log := r.log.Function("ClearReminder")

	result := r.db.SQLWithContext(ctx).Model(&House{}).Where("id = ?", id).
		Update("reminder_date", nil)
	if result.Error != nil {
		return log.Err("failed to clear house reminder", result.Error, "houseID", id)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *houseRepository) clearUserHousesCache(ctx context.Context, userID int) {
	log := r.log.Function("clearUserHousesCache")

	err := database.NewCacheBuilder(r.db.Cache.User, fmt.Sprintf("%d", userID)).
		WithContext(ctx).
		WithHash(USER_HOUSES_CACHE_PREFIX).
		Delete()
	if err != nil {
		log.Warn("failed to clear user houses cache", "userID", userID, "error", err)
	}
}
