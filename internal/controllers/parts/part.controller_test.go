package partController

import (
	"context"
	"testing"
	"time"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

type MockOwnershipResolver struct {
	mock.Mock
}

func (m *MockOwnershipResolver) HouseOwner(ctx context.Context, houseID int) (int, error) {
	args := m.Called(ctx, houseID)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipResolver) RoomOwner(ctx context.Context, roomID int) (int, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipResolver) ApplianceOwner(ctx context.Context, applianceID int) (int, error) {
	args := m.Called(ctx, applianceID)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipResolver) PartOwner(ctx context.Context, partID int) (int, error) {
	args := m.Called(ctx, partID)
	return args.Int(0), args.Error(1)
}

func TestPartController_CreateRequiresApplianceOwnership(t *testing.T) {
	repo := &MockPartRepository{}
	ownership := &MockOwnershipResolver{}
	controller := New(repositories.Repository{Part: repo, Ownership: ownership})
	user := &User{BaseModel: BaseModel{ID: 7}}

	ownership.On("ApplianceOwner", mock.Anything, 3).Return(99, nil)

	_, err := controller.Create(context.Background(), user, CreatePartRequest{
		Name:        "Burner grate",
		ApplianceID: 3,
	})
	assert.ErrorIs(t, err, repositories.ErrForbidden)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPartController_CreateForOwnedAppliance(t *testing.T) {
	repo := &MockPartRepository{}
	ownership := &MockOwnershipResolver{}
	controller := New(repositories.Repository{Part: repo, Ownership: ownership})
	user := &User{BaseModel: BaseModel{ID: 7}}

	ownership.On("ApplianceOwner", mock.Anything, 3).Return(7, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Part) bool {
		return p.Name == "Burner grate" && p.ApplianceID == 3
	})).Return(nil)

	part, err := controller.Create(context.Background(), user, CreatePartRequest{
		Name:        "Burner grate",
		ApplianceID: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, part.ApplianceID)

	repo.AssertExpectations(t)
}

func TestPartController_GetByID_BrokenChain(t *testing.T) {
	repo := &MockPartRepository{}
	ownership := &MockOwnershipResolver{}
	controller := New(repositories.Repository{Part: repo, Ownership: ownership})
	user := &User{BaseModel: BaseModel{ID: 7}}

	ownership.On("PartOwner", mock.Anything, 4).Return(0, repositories.ErrNotFound)

	_, err := controller.GetByID(context.Background(), user, 4)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPartController_DeleteOwnPart(t *testing.T) {
	repo := &MockPartRepository{}
	ownership := &MockOwnershipResolver{}
	controller := New(repositories.Repository{Part: repo, Ownership: ownership})
	user := &User{BaseModel: BaseModel{ID: 7}}

	ownership.On("PartOwner", mock.Anything, 4).Return(7, nil)
	repo.On("Delete", mock.Anything, 4).Return(nil)

	err := controller.Delete(context.Background(), user, 4)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}
