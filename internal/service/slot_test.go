package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slots-pg/dashboard-api/internal/domain"
	"github.com/slots-pg/dashboard-api/internal/repository"
	"github.com/slots-pg/dashboard-api/internal/repository/dao"
)

func catalog() []domain.Slot {
	return []domain.Slot{
		{ID: 1, Nome: "Fortune Tiger", Categoria: "Fortune", Porcentagem: 90, Jogadores: 998, Ativo: true},
		{ID: 2, Nome: "Mahjong Ways 2", Categoria: "Mahjong", Porcentagem: 92, Jogadores: 1278, Ativo: true},
		{ID: 4, Nome: "Old Reels", Categoria: "Retro", Porcentagem: 75, Jogadores: 10, Ativo: true},
		{ID: 6, Nome: "Cold Tiger", Categoria: "fortune", Porcentagem: 60, Jogadores: 0, Ativo: true},
	}
}

func boolPtr(v bool) *bool { return &v }

func TestSlotService_ListSlots(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.SlotFilter
		want   []uint
	}{
		{name: "no filter", filter: domain.SlotFilter{}, want: []uint{1, 2, 4, 6}},
		{name: "search is case insensitive", filter: domain.SlotFilter{Search: "TIGER"}, want: []uint{1, 6}},
		{name: "category is case insensitive", filter: domain.SlotFilter{Categoria: "FORTUNE"}, want: []uint{1, 6}},
		{name: "todos matches every category", filter: domain.SlotFilter{Categoria: "todos"}, want: []uint{1, 2, 4, 6}},
		{name: "status", filter: domain.SlotFilter{Status: domain.StatusCold}, want: []uint{6}},
		{name: "filters combine", filter: domain.SlotFilter{Search: "tiger", Status: domain.StatusHot}, want: []uint{1}},
		{name: "no match is empty", filter: domain.SlotFilter{Search: "zzz"}, want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSlotRepository{}
			repo.On("FindAllActive", mock.Anything).Return(catalog(), nil)
			svc := NewSlotService(repo, nil)

			slots, err := svc.ListSlots(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]uint, 0, len(slots))
			for _, s := range slots {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSlotService_ListSlotsError(t *testing.T) {
	repo := &mockSlotRepository{}
	boom := errors.New("boom")
	repo.On("FindAllActive", mock.Anything).Return([]domain.Slot(nil), boom)

	_, err := NewSlotService(repo, nil).ListSlots(context.Background(), domain.SlotFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestSlotService_CreateSlotPublishes(t *testing.T) {
	ctx := context.Background()
	repo := &mockSlotRepository{}
	pub := &mockPublisher{}

	in := domain.Slot{Nome: "Test", Categoria: "Fortune", Imagem: "http://x", Porcentagem: 80, Jogadores: 10}
	created := in
	created.ID = 9
	created.Ativo = true

	repo.On("Create", ctx, in).Return(created, nil)
	pub.On("Publish", mock.MatchedBy(func(e domain.SlotEvent) bool {
		return e.Type == domain.SlotCreated && e.Slot == created
	})).Once()

	got, err := NewSlotService(repo, pub).CreateSlot(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	pub.AssertExpectations(t)
}

func TestSlotService_UpdateSlotRejectsReactivation(t *testing.T) {
	ctx := context.Background()
	repo := &mockSlotRepository{}
	pub := &mockPublisher{}
	patch := domain.SlotPatch{Ativo: boolPtr(true)}

	repo.On("Update", ctx, uint(3), patch).Return(domain.Slot{}, false, fmt.Errorf("r.dao.Update -> %w", ErrSlotReactivation))

	_, err := NewSlotService(repo, pub).UpdateSlot(ctx, 3, patch)
	assert.ErrorIs(t, err, ErrSlotReactivation)
	pub.AssertNotCalled(t, "Publish", mock.Anything)
}

// deleteBeforeUpdate soft-deletes the slot right before every update reaches the store.
type deleteBeforeUpdate struct {
	*repository.SlotRepository
}

func (r deleteBeforeUpdate) Update(ctx context.Context, id uint, patch domain.SlotPatch) (domain.Slot, bool, error) {
	if err := r.SlotRepository.Delete(ctx, id); err != nil {
		return domain.Slot{}, false, err
	}

	return r.SlotRepository.Update(ctx, id, patch)
}

func TestSlotService_DeleteBetweenRequestsIsNotUndone(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSlotRepository(dao.NewMemorySlotDAO())
	svc := NewSlotService(deleteBeforeUpdate{repo}, nil)

	_, err := svc.UpdateSlot(ctx, 1, domain.SlotPatch{Ativo: boolPtr(true)})
	assert.ErrorIs(t, err, ErrSlotReactivation)

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found.Ativo)
}

func TestSlotService_UpdateSlotPublishesUpdated(t *testing.T) {
	ctx := context.Background()
	repo := &mockSlotRepository{}
	pub := &mockPublisher{}
	patch := domain.SlotPatch{Ativo: boolPtr(true)}

	repo.On("Update", ctx, uint(1), patch).Return(domain.Slot{ID: 1, Ativo: true}, false, nil)
	pub.On("Publish", mock.MatchedBy(func(e domain.SlotEvent) bool { return e.Type == domain.SlotUpdated })).Once()

	got, err := NewSlotService(repo, pub).UpdateSlot(ctx, 1, patch)
	require.NoError(t, err)
	assert.True(t, got.Ativo)
	pub.AssertExpectations(t)
}

func TestSlotService_UpdateSlotDeactivationPublishesDeleted(t *testing.T) {
	ctx := context.Background()
	repo := &mockSlotRepository{}
	pub := &mockPublisher{}
	patch := domain.SlotPatch{Ativo: boolPtr(false)}

	repo.On("Update", ctx, uint(1), patch).Return(domain.Slot{ID: 1, Ativo: false}, true, nil)
	pub.On("Publish", mock.MatchedBy(func(e domain.SlotEvent) bool {
		return e.Type == domain.SlotDeleted && e.Slot.ID == 1
	})).Once()

	_, err := NewSlotService(repo, pub).UpdateSlot(ctx, 1, patch)
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestSlotService_UpdateSlotNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mockSlotRepository{}
	patch := domain.SlotPatch{Jogadores: new(int)}

	repo.On("Update", ctx, uint(9999), patch).Return(domain.Slot{}, false, fmt.Errorf("r.dao.Update -> %w", ErrSlotNotFound))

	_, err := NewSlotService(repo, nil).UpdateSlot(ctx, 9999, patch)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSlotService_UpdatePlayers(t *testing.T) {
	ctx := context.Background()
	repo := &mockSlotRepository{}
	pub := &mockPublisher{}

	repo.On("Update", ctx, uint(1), mock.MatchedBy(func(p domain.SlotPatch) bool {
		return p.Jogadores != nil && *p.Jogadores == 500 &&
			p.Nome == nil && p.Categoria == nil && p.Imagem == nil && p.Porcentagem == nil && p.Ativo == nil
	})).Return(domain.Slot{ID: 1, Jogadores: 500, Ativo: true}, false, nil)
	pub.On("Publish", mock.MatchedBy(func(e domain.SlotEvent) bool { return e.Type == domain.SlotUpdated })).Once()

	got, err := NewSlotService(repo, pub).UpdatePlayers(ctx, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, got.Jogadores)
	pub.AssertExpectations(t)
}

func TestSlotService_DeleteSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes the soft-deleted record", func(t *testing.T) {
		repo := &mockSlotRepository{}
		pub := &mockPublisher{}
		repo.On("Delete", ctx, uint(2)).Return(nil)
		repo.On("FindByID", ctx, uint(2)).Return(domain.Slot{ID: 2, Ativo: false}, nil)
		pub.On("Publish", mock.MatchedBy(func(e domain.SlotEvent) bool {
			return e.Type == domain.SlotDeleted && e.Slot.ID == 2 && !e.Slot.Ativo
		})).Once()

		require.NoError(t, NewSlotService(repo, pub).DeleteSlot(ctx, 2))
		pub.AssertExpectations(t)
	})

	t.Run("reload failure after delete still succeeds", func(t *testing.T) {
		repo := &mockSlotRepository{}
		pub := &mockPublisher{}
		repo.On("Delete", ctx, uint(2)).Return(nil)
		repo.On("FindByID", ctx, uint(2)).Return(domain.Slot{}, errors.New("connection reset"))

		require.NoError(t, NewSlotService(repo, pub).DeleteSlot(ctx, 2))
		pub.AssertNotCalled(t, "Publish", mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockSlotRepository{}
		repo.On("Delete", ctx, uint(9999)).Return(ErrSlotNotFound)

		err := NewSlotService(repo, nil).DeleteSlot(ctx, 9999)
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestSlotService_Categories(t *testing.T) {
	repo := &mockSlotRepository{}
	repo.On("FindAllActive", mock.Anything).Return(catalog(), nil)

	got, err := NewSlotService(repo, nil).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fortune", "Mahjong", "Temático", "Clássico", "Jackpot", "Retro"}, got)
}

func TestSlotService_Stats(t *testing.T) {
	repo := &mockSlotRepository{}
	repo.On("FindAllActive", mock.Anything).Return(catalog(), nil)

	got, err := NewSlotService(repo, nil).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStats{
		TotalSlots:   4,
		TotalPlayers: 2286,
		AverageRTP:   79.3,
		HotSlots:     2,
	}, got)
}

func TestSlotService_StatsEmpty(t *testing.T) {
	repo := &mockSlotRepository{}
	repo.On("FindAllActive", mock.Anything).Return([]domain.Slot{}, nil)

	got, err := NewSlotService(repo, nil).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStats{}, got)
}
