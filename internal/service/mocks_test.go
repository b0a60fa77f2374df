package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slots-pg/dashboard-api/internal/domain"
)

type mockSlotRepository struct {
	mock.Mock
}

func (m *mockSlotRepository) FindAllActive(ctx context.Context) ([]domain.Slot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *mockSlotRepository) FindByID(ctx context.Context, id uint) (domain.Slot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Slot), args.Error(1)
}

func (m *mockSlotRepository) Create(ctx context.Context, slot domain.Slot) (domain.Slot, error) {
	args := m.Called(ctx, slot)
	return args.Get(0).(domain.Slot), args.Error(1)
}

func (m *mockSlotRepository) Update(ctx context.Context, id uint, patch domain.SlotPatch) (domain.Slot, bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Slot), args.Bool(1), args.Error(2)
}

func (m *mockSlotRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(event domain.SlotEvent) {
	m.Called(event)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}
