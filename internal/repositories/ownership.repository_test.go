package repositories

import (
	"context"
	"testing"

	. "ogrelist/internal/models"

	"github.com/stretchr/testify/assert"
)

// Stubs embed the repository interface so only GetByID needs implementing;
// the resolver never touches the other methods.

type stubHouseRepo struct {
	HouseRepository
	houses map[int]*House
}

func (s *stubHouseRepo) GetByID(ctx context.Context, id int) (*House, error) {
	if house, ok := s.houses[id]; ok {
		return house, nil
	}
	return nil, ErrNotFound
}

type stubRoomRepo struct {
	RoomRepository
	rooms map[int]*Room
}

func (s *stubRoomRepo) GetByID(ctx context.Context, id int) (*Room, error) {
	if room, ok := s.rooms[id]; ok {
		return room, nil
	}
	return nil, ErrNotFound
}

type stubApplianceRepo struct {
	ApplianceRepository
	appliances map[int]*Appliance
}

func (s *stubApplianceRepo) GetByID(ctx context.Context, id int) (*Appliance, error) {
	if appliance, ok := s.appliances[id]; ok {
		return appliance, nil
	}
	return nil, ErrNotFound
}

type stubPartRepo struct {
	PartRepository
	parts map[int]*Part
}

func (s *stubPartRepo) GetByID(ctx context.Context, id int) (*Part, error) {
	if part, ok := s.parts[id]; ok {
		return part, nil
	}
	return nil, ErrNotFound
}

func newTestResolver() OwnershipResolver {
	houses := &stubHouseRepo{houses: map[int]*House{
		1: {BaseModel: BaseModel{ID: 1}, UserID: 7},
	}}
	rooms := &stubRoomRepo{rooms: map[int]*Room{
		2: {BaseModel: BaseModel{ID: 2}, HouseID: 1},
		20: {BaseModel: BaseModel{ID: 20}, HouseID: 999}, // parent house missing
	}}
	appliances := &stubApplianceRepo{appliances: map[int]*Appliance{
		3: {BaseModel: BaseModel{ID: 3}, RoomID: 2},
	}}
	parts := &stubPartRepo{parts: map[int]*Part{
		4: {BaseModel: BaseModel{ID: 4}, ApplianceID: 3},
	}}

	return NewOwnershipResolver(houses, rooms, appliances, parts)
}

func TestOwnershipResolver_WalksFullChain(t *testing.T) {
	resolver := newTestResolver()
	ctx := context.Background()

	owner, err := resolver.HouseOwner(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 7, owner)

	owner, err = resolver.RoomOwner(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, 7, owner)

	owner, err = resolver.ApplianceOwner(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, 7, owner)

	owner, err = resolver.PartOwner(ctx, 4)
	assert.NoError(t, err)
	assert.Equal(t, 7, owner)
}

func TestOwnershipResolver_MissingEntity(t *testing.T) {
	resolver := newTestResolver()
	ctx := context.Background()

	_, err := resolver.HouseOwner(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = resolver.PartOwner(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnershipResolver_BrokenChain(t *testing.T) {
	resolver := newTestResolver()

	// Room 20 exists but its parent house does not
	_, err := resolver.RoomOwner(context.Background(), 20)
	assert.ErrorIs(t, err, ErrNotFound)
}
