package houseController

import (
	"context"
	"testing"
	"time"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) Create(ctx context.Context, house *House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockHouseRepository) GetByID(ctx context.Context, id int) (*House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*House), args.Error(1)
}

func (m *MockHouseRepository) GetByUserID(ctx context.Context, userID int) ([]*House, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*House), args.Error(1)
}

func (m *MockHouseRepository) Update(ctx context.Context, house *House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockHouseRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHouseRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*House, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*House), args.Error(1)
}

func (m *MockHouseRepository) ClearReminder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestController(houseRepo repositories.HouseRepository) HouseControllerInterface {
	return New(repositories.Repository{House: houseRepo})
}

func TestHouseController_CreateSetsOwner(t *testing.T) {
	repo := &MockHouseRepository{}
	controller := newTestController(repo)
	user := &User{BaseModel: BaseModel{ID: 7}}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(h *House) bool {
		return h.UserID == 7 && h.Name == "The Swamp"
	})).Return(nil)

	house, err := controller.Create(context.Background(), user, CreateHouseRequest{
		Name: "The Swamp",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, house.UserID)

	repo.AssertExpectations(t)
}

func TestHouseController_GetByID_OtherUsersHouse(t *testing.T) {
	repo := &MockHouseRepository{}
	controller := newTestController(repo)
	user := &User{BaseModel: BaseModel{ID: 7}}

	repo.On("GetByID", mock.Anything, 1).
		Return(&House{BaseModel: BaseModel{ID: 1}, UserID: 99}, nil)

	_, err := controller.GetByID(context.Background(), user, 1)
	assert.ErrorIs(t, err, repositories.ErrForbidden)
}

func TestHouseController_GetByID_NotFound(t *testing.T) {
	repo := &MockHouseRepository{}
	controller := newTestController(repo)
	user := &User{BaseModel: BaseModel{ID: 7}}

	repo.On("GetByID", mock.Anything, 1).Return(nil, repositories.ErrNotFound)

	_, err := controller.GetByID(context.Background(), user, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestHouseController_UpdateReplacesOptionalFields(t *testing.T) {
	repo := &MockHouseRepository{}
	controller := newTestController(repo)
	user := &User{BaseModel: BaseModel{ID: 7}}

	yearBuilt := 2001
	existing := &House{
		BaseModel: BaseModel{ID: 1},
		Name:      "Old Name",
		UserID:    7,
		YearBuilt: &yearBuilt,
	}

	repo.On("GetByID", mock.Anything, 1).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(h *House) bool {
		// PUT semantics: omitted optional fields become null
		return h.Name == "New Name" && h.YearBuilt == nil
	})).Return(nil)

	house, err := controller.Update(context.Background(), user, 1, UpdateHouseRequest{
		Name: "New Name",
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", house.Name)
	assert.Nil(t, house.YearBuilt)

	repo.AssertExpectations(t)
}

func TestHouseController_DeleteChecksOwnership(t *testing.T) {
	repo := &MockHouseRepository{}
	controller := newTestController(repo)
	user := &User{BaseModel: BaseModel{ID: 7}}

	repo.On("GetByID", mock.Anything, 1).
		Return(&House{BaseModel: BaseModel{ID: 1}, UserID: 99}, nil)

	err := controller.Delete(context.Background(), user, 1)
	assert.ErrorIs(t, err, repositories.ErrForbidden)

	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
