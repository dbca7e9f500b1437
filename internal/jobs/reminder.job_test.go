package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

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

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int) (*Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *MockRoomRepository) GetByHouseID(ctx context.Context, houseID int) ([]*Room, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*Room, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Room), args.Error(1)
}

func (m *MockRoomRepository) ClearReminder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockApplianceRepository struct {
	mock.Mock
}

func (m *MockApplianceRepository) Create(ctx context.Context, appliance *Appliance) error {
	args := m.Called(ctx, appliance)
	return args.Error(0)
}

func (m *MockApplianceRepository) GetByID(ctx context.Context, id int) (*Appliance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Appliance), args.Error(1)
}

func (m *MockApplianceRepository) GetByRoomID(
	ctx context.Context,
	roomID int,
) ([]*Appliance, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Appliance), args.Error(1)
}

func (m *MockApplianceRepository) Update(ctx context.Context, appliance *Appliance) error {
	args := m.Called(ctx, appliance)
	return args.Error(0)
}

func (m *MockApplianceRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplianceRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*Appliance, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Appliance), args.Error(1)
}

func (m *MockApplianceRepository) ClearReminder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPartRepository struct {
	mock.Mock
}

func (m *MockPartRepository) Create(ctx context.Context, part *Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}

func (m *MockPartRepository) GetByID(ctx context.Context, id int) (*Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Part), args.Error(1)
}

func (m *MockPartRepository) GetByApplianceID(
	ctx context.Context,
	applianceID int,
) ([]*Part, error) {
	args := m.Called(ctx, applianceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Part), args.Error(1)
}

func (m *MockPartRepository) Update(ctx context.Context, part *Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}

func (m *MockPartRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartRepository) FindAllWithPastReminderDate(
	ctx context.Context,
	now time.Time,
) ([]*Part, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Part), args.Error(1)
}

func (m *MockPartRepository) ClearReminder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, item string) error {
	args := m.Called(ctx, to, subject, item)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type sweepMocks struct {
	users      *MockUserRepository
	houses     *MockHouseRepository
	rooms      *MockRoomRepository
	appliances *MockApplianceRepository
	parts      *MockPartRepository
	notifier   *MockNotifier
}

func newSweepMocks() sweepMocks {
	return sweepMocks{
		users:      &MockUserRepository{},
		houses:     &MockHouseRepository{},
		rooms:      &MockRoomRepository{},
		appliances: &MockApplianceRepository{},
		parts:      &MockPartRepository{},
		notifier:   &MockNotifier{},
	}
}

func (s sweepMocks) newJob(clock Clock) *ReminderJob {
	repos := repositories.Repository{
		User:      s.users,
		House:     s.houses,
		Room:      s.rooms,
		Appliance: s.appliances,
		Part:      s.parts,
	}
	return NewReminderJob(repos, s.notifier, clock, 5*time.Minute)
}

func (s sweepMocks) expectNoDueRooms(now time.Time) {
	s.rooms.On("FindAllWithPastReminderDate", mock.Anything, now).Return([]*Room{}, nil)
}

func (s sweepMocks) expectNoDueAppliances(now time.Time) {
	s.appliances.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*Appliance{}, nil)
}

func (s sweepMocks) expectNoDueParts(now time.Time) {
	s.parts.On("FindAllWithPastReminderDate", mock.Anything, now).Return([]*Part{}, nil)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestReminderJob_Name(t *testing.T) {
	job := &ReminderJob{}
	assert.Equal(t, "ReminderSweep", job.Name())
}

func TestReminderJob_Interval(t *testing.T) {
	mocks := newSweepMocks()
	job := mocks.newJob(SystemClock{})
	assert.Equal(t, 5*time.Minute, job.Interval())
}

func TestReminderJob_DueHouseNotifiedAndCleared(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mocks := newSweepMocks()

	house := &House{
		BaseModel:    BaseModel{ID: 1},
		Name:         "The Swamp",
		UserID:       7,
		ReminderDate: timePtr(now.Add(-time.Hour)),
	}
	user := &User{BaseModel: BaseModel{ID: 7}, Username: "shrek", Email: "a@b.com"}

	mocks.houses.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*House{house}, nil)
	mocks.users.On("GetByID", mock.Anything, 7).Return(user, nil)
	mocks.notifier.On("Send", mock.Anything, "a@b.com", "House Reminder", "Reminder for house: The Swamp").
		Return(nil)
	mocks.houses.On("ClearReminder", mock.Anything, 1).Return(nil)

	mocks.expectNoDueRooms(now)
	mocks.expectNoDueAppliances(now)
	mocks.expectNoDueParts(now)

	job := mocks.newJob(fixedClock{now: now})
	err := job.Execute(context.Background())
	assert.NoError(t, err)

	mocks.houses.AssertExpectations(t)
	mocks.notifier.AssertExpectations(t)
	mocks.notifier.AssertNumberOfCalls(t, "Send", 1)
}

func TestReminderJob_SweepOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mocks := newSweepMocks()

	user := &User{BaseModel: BaseModel{ID: 7}, Email: "a@b.com"}
	house := &House{BaseModel: BaseModel{ID: 1}, Name: "H", UserID: 7}
	room := &Room{BaseModel: BaseModel{ID: 2}, Name: "R", HouseID: 1}
	appliance := &Appliance{BaseModel: BaseModel{ID: 3}, Name: "A", RoomID: 2}
	part := &Part{BaseModel: BaseModel{ID: 4}, Name: "P", ApplianceID: 3}

	mocks.houses.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*House{house}, nil)
	mocks.rooms.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*Room{room}, nil)
	mocks.appliances.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*Appliance{appliance}, nil)
	mocks.parts.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*Part{part}, nil)

	mocks.users.On("GetByID", mock.Anything, 7).Return(user, nil)
	mocks.houses.On("GetByID", mock.Anything, 1).Return(house, nil)
	mocks.rooms.On("GetByID", mock.Anything, 2).Return(room, nil)
	mocks.appliances.On("GetByID", mock.Anything, 3).Return(appliance, nil)

	mocks.notifier.On("Send", mock.Anything, "a@b.com", mock.Anything, mock.Anything).
		Return(nil)
	mocks.houses.On("ClearReminder", mock.Anything, 1).Return(nil)
	mocks.rooms.On("ClearReminder", mock.Anything, 2).Return(nil)
	mocks.appliances.On("ClearReminder", mock.Anything, 3).Return(nil)
	mocks.parts.On("ClearReminder", mock.Anything, 4).Return(nil)

	job := mocks.newJob(fixedClock{now: now})
	err := job.Execute(context.Background())
	assert.NoError(t, err)

	var subjects []string
	for _, call := range mocks.notifier.Calls {
		subjects = append(subjects, call.Arguments.String(2))
	}
	assert.Equal(
		t,
		[]string{"House Reminder", "Room Reminder", "Appliance Reminder", "Part Reminder"},
		subjects,
	)
}

func TestReminderJob_NotifyFailureLeavesReminderSet(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mocks := newSweepMocks()

	house := &House{BaseModel: BaseModel{ID: 1}, Name: "H", UserID: 7}
	user := &User{BaseModel: BaseModel{ID: 7}, Email: "a@b.com"}

	mocks.houses.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*House{house}, nil)
	mocks.users.On("GetByID", mock.Anything, 7).Return(user, nil)
	mocks.notifier.On("Send", mock.Anything, "a@b.com", "House Reminder", mock.Anything).
		Return(errors.New("smtp down"))

	mocks.expectNoDueRooms(now)
	mocks.expectNoDueAppliances(now)
	mocks.expectNoDueParts(now)

	job := mocks.newJob(fixedClock{now: now})
	err := job.Execute(context.Background())
	assert.NoError(t, err)

	mocks.houses.AssertNotCalled(t, "ClearReminder", mock.Anything, mock.Anything)
}

func TestReminderJob_OrphanedPartSkipped(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mocks := newSweepMocks()

	// Part 9 points at an appliance deleted between sweeps
	part := &Part{BaseModel: BaseModel{ID: 9}, Name: "Orphan", ApplianceID: 99}

	mocks.houses.On("FindAllWithPastReminderDate", mock.Anything, now).Return([]*House{}, nil)
	mocks.expectNoDueRooms(now)
	mocks.expectNoDueAppliances(now)
	mocks.parts.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*Part{part}, nil)
	mocks.appliances.On("GetByID", mock.Anything, 99).Return(nil, repositories.ErrNotFound)

	job := mocks.newJob(fixedClock{now: now})
	err := job.Execute(context.Background())
	assert.NoError(t, err)

	mocks.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.parts.AssertNotCalled(t, "ClearReminder", mock.Anything, mock.Anything)
}

func TestReminderJob_FailedPassDoesNotBlockOtherPasses(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mocks := newSweepMocks()

	house := &House{BaseModel: BaseModel{ID: 1}, Name: "H", UserID: 7}
	room := &Room{BaseModel: BaseModel{ID: 2}, Name: "R", HouseID: 1}
	user := &User{BaseModel: BaseModel{ID: 7}, Email: "a@b.com"}

	mocks.houses.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return(nil, errors.New("db timeout"))
	mocks.rooms.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*Room{room}, nil)
	mocks.expectNoDueAppliances(now)
	mocks.expectNoDueParts(now)

	mocks.houses.On("GetByID", mock.Anything, 1).Return(house, nil)
	mocks.users.On("GetByID", mock.Anything, 7).Return(user, nil)
	mocks.notifier.On("Send", mock.Anything, "a@b.com", "Room Reminder", "Reminder for room: R").
		Return(nil)
	mocks.rooms.On("ClearReminder", mock.Anything, 2).Return(nil)

	job := mocks.newJob(fixedClock{now: now})
	err := job.Execute(context.Background())
	assert.NoError(t, err)

	mocks.notifier.AssertExpectations(t)
	mocks.rooms.AssertExpectations(t)
}

func TestReminderJob_PerRowErrorIsolation(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mocks := newSweepMocks()

	broken := &House{BaseModel: BaseModel{ID: 1}, Name: "Broken", UserID: 70}
	healthy := &House{BaseModel: BaseModel{ID: 2}, Name: "Healthy", UserID: 7}
	user := &User{BaseModel: BaseModel{ID: 7}, Email: "a@b.com"}

	mocks.houses.On("FindAllWithPastReminderDate", mock.Anything, now).
		Return([]*House{broken, healthy}, nil)
	mocks.users.On("GetByID", mock.Anything, 70).Return(nil, repositories.ErrNotFound)
	mocks.users.On("GetByID", mock.Anything, 7).Return(user, nil)
	mocks.notifier.On("Send", mock.Anything, "a@b.com", "House Reminder", "Reminder for house: Healthy").
		Return(nil)
	mocks.houses.On("ClearReminder", mock.Anything, 2).Return(nil)

	mocks.expectNoDueRooms(now)
	mocks.expectNoDueAppliances(now)
	mocks.expectNoDueParts(now)

	job := mocks.newJob(fixedClock{now: now})
	err := job.Execute(context.Background())
	assert.NoError(t, err)

	mocks.notifier.AssertNumberOfCalls(t, "Send", 1)
	mocks.houses.AssertCalled(t, "ClearReminder", mock.Anything, 2)
	mocks.houses.AssertNotCalled(t, "ClearReminder", mock.Anything, 1)
}

func TestReminderJob_OverlappingTickSkipped(t *testing.T) {
	mocks := newSweepMocks()
	job := mocks.newJob(SystemClock{})

	// Simulate a sweep still in flight
	job.sweeping.Lock()
	defer job.sweeping.Unlock()

	err := job.Execute(context.Background())
	assert.NoError(t, err)

	mocks.houses.AssertNotCalled(t, "FindAllWithPastReminderDate", mock.Anything, mock.Anything)
	mocks.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderJob_UsesInjectedClock(t *testing.T) {
	now := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	mocks := newSweepMocks()

	mocks.houses.On("FindAllWithPastReminderDate", mock.Anything, now).Return([]*House{}, nil)
	mocks.expectNoDueRooms(now)
	mocks.expectNoDueAppliances(now)
	mocks.expectNoDueParts(now)

	job := mocks.newJob(fixedClock{now: now})
	err := job.Execute(context.Background())
	assert.NoError(t, err)

	mocks.houses.AssertExpectations(t)
	mocks.rooms.AssertExpectations(t)
	mocks.appliances.AssertExpectations(t)
	mocks.parts.AssertExpectations(t)
}
