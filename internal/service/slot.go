package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/slots-pg/dashboard-api/internal/domain"
	"github.com/slots-pg/dashboard-api/internal/repository"
)

var (
	ErrSlotNotFound     = repository.ErrSlotNotFound
	ErrInvalidSlot      = repository.ErrInvalidSlot
	ErrSlotReactivation = repository.ErrSlotReactivation
)

type SlotRepository interface {
	FindAllActive(ctx context.Context) ([]domain.Slot, error)
	FindByID(ctx context.Context, id uint) (domain.Slot, error)
	Create(ctx context.Context, slot domain.Slot) (domain.Slot, error)
	Update(ctx context.Context, id uint, patch domain.SlotPatch) (domain.Slot, bool, error)
	Delete(ctx context.Context, id uint) error
}

// SlotPublisher receives every successful slot mutation. Publish must not block.
type SlotPublisher interface {
	Publish(event domain.SlotEvent)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.SlotEvent) {}

type SlotService struct {
	repo SlotRepository
	pub  SlotPublisher
}

func NewSlotService(repo SlotRepository, pub SlotPublisher) *SlotService {
	if pub == nil {
		pub = nopPublisher{}
	}

	return &SlotService{
		repo: repo,
		pub:  pub,
	}
}

func (s *SlotService) ListSlots(ctx context.Context, filter domain.SlotFilter) ([]domain.Slot, error) {
	slots, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllActive -> %w", err)
	}

	matched := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if filter.Match(slot) {
			matched = append(matched, slot)
		}
	}

	return matched, nil
}

func (s *SlotService) GetSlot(ctx context.Context, id uint) (domain.Slot, error) {
	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return slot, nil
}

func (s *SlotService) CreateSlot(ctx context.Context, slot domain.Slot) (domain.Slot, error) {
	created, err := s.repo.Create(ctx, slot)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	s.pub.Publish(domain.NewSlotEvent(domain.SlotCreated, created))

	return created, nil
}

// UpdateSlot applies patch. Setting ativo on a soft-deleted slot fails with ErrSlotReactivation;
// clearing it is announced as a deletion.
func (s *SlotService) UpdateSlot(ctx context.Context, id uint, patch domain.SlotPatch) (domain.Slot, error) {
	updated, deactivated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	eventType := domain.SlotUpdated
	if deactivated {
		eventType = domain.SlotDeleted
	}
	s.pub.Publish(domain.NewSlotEvent(eventType, updated))

	return updated, nil
}

func (s *SlotService) UpdatePlayers(ctx context.Context, id uint, jogadores int) (domain.Slot, error) {
	updated, _, err := s.repo.Update(ctx, id, domain.SlotPatch{Jogadores: &jogadores})
	if err != nil {
		return domain.Slot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	s.pub.Publish(domain.NewSlotEvent(domain.SlotUpdated, updated))

	return updated, nil
}

func (s *SlotService) DeleteSlot(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	deleted, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Warn("slot deleted but not reloaded, event skipped", zap.Uint("slot_id", id), zap.Error(err))
		return nil
	}
	s.pub.Publish(domain.NewSlotEvent(domain.SlotDeleted, deleted))

	return nil
}

// Categories lists the known categories first, then any other category found among active slots.
func (s *SlotService) Categories(ctx context.Context) ([]string, error) {
	slots, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllActive -> %w", err)
	}

	seen := make(map[string]struct{}, len(domain.KnownCategories))
	categories := make([]string, 0, len(domain.KnownCategories))
	for _, c := range domain.KnownCategories {
		seen[strings.ToLower(c)] = struct{}{}
		categories = append(categories, c)
	}
	for _, slot := range slots {
		key := strings.ToLower(slot.Categoria)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, slot.Categoria)
	}

	return categories, nil
}

func (s *SlotService) Stats(ctx context.Context) (domain.SlotStats, error) {
	slots, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return domain.SlotStats{}, fmt.Errorf("s.repo.FindAllActive -> %w", err)
	}

	stats := domain.SlotStats{TotalSlots: len(slots)}
	rtpSum := 0
	for _, slot := range slots {
		stats.TotalPlayers += slot.Jogadores
		rtpSum += slot.Porcentagem
		if slot.Status() == domain.StatusHot {
			stats.HotSlots++
		}
	}
	if len(slots) > 0 {
		stats.AverageRTP = math.Round(float64(rtpSum)/float64(len(slots))*10) / 10
	}

	return stats, nil
}
