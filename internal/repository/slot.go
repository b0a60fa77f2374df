package repository

import (
	"context"
	"fmt"

	"github.com/slots-pg/dashboard-api/internal/domain"
	"github.com/slots-pg/dashboard-api/internal/repository/dao"
)

var (
	ErrSlotNotFound     = dao.ErrSlotNotFound
	ErrInvalidSlot      = dao.ErrInvalidSlot
	ErrSlotReactivation = dao.ErrSlotReactivation
)

type SlotDAO interface {
	Insert(ctx context.Context, slot dao.Slot) (dao.Slot, error)
	FindByID(ctx context.Context, id uint) (dao.Slot, error)
	FindAllActive(ctx context.Context) ([]dao.Slot, error)
	Update(ctx context.Context, id uint, patch dao.SlotPatch) (dao.Slot, bool, error)
	SoftDelete(ctx context.Context, id uint) error
}

type SlotRepository struct {
	dao SlotDAO
}

func NewSlotRepository(dao SlotDAO) *SlotRepository {
	return &SlotRepository{
		dao: dao,
	}
}

func (r *SlotRepository) FindAllActive(ctx context.Context) ([]domain.Slot, error) {
	found, err := r.dao.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllActive -> %w", err)
	}

	slots := make([]domain.Slot, len(found))
	for i, s := range found {
		slots[i] = r.daoToDomain(s)
	}

	return slots, nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uint) (domain.Slot, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SlotRepository) Create(ctx context.Context, slot domain.Slot) (domain.Slot, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(slot))
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// Update reports whether the update deactivated the slot.
func (r *SlotRepository) Update(ctx context.Context, id uint, patch domain.SlotPatch) (domain.Slot, bool, error) {
	updated, deactivated, err := r.dao.Update(ctx, id, dao.SlotPatch{
		Nome:        patch.Nome,
		Categoria:   patch.Categoria,
		Imagem:      patch.Imagem,
		Porcentagem: patch.Porcentagem,
		Jogadores:   patch.Jogadores,
		Ativo:       patch.Ativo,
	})
	if err != nil {
		return domain.Slot{}, false, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), deactivated, nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.SoftDelete -> %w", err)
	}

	return nil
}

func (r *SlotRepository) domainToDao(s domain.Slot) dao.Slot {
	return dao.Slot{
		ID:          s.ID,
		Nome:        s.Nome,
		Categoria:   s.Categoria,
		Imagem:      s.Imagem,
		Porcentagem: s.Porcentagem,
		Jogadores:   s.Jogadores,
		Ativo:       s.Ativo,
	}
}

func (r *SlotRepository) daoToDomain(s dao.Slot) domain.Slot {
	return domain.Slot{
		ID:          s.ID,
		Nome:        s.Nome,
		Categoria:   s.Categoria,
		Imagem:      s.Imagem,
		Porcentagem: s.Porcentagem,
		Jogadores:   s.Jogadores,
		Ativo:       s.Ativo,
	}
}
