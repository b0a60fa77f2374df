package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrInvalidSlot  = errors.New("slot violates a storage constraint")
	// ErrSlotReactivation is returned when a patch sets ativo on a soft-deleted slot.
	ErrSlotReactivation = errors.New("a deleted slot cannot be reactivated")
)

// reseedLockKey identifies the advisory lock serializing catalog re-seeds.
const reseedLockKey = 7_301_001

type Slot struct {
	ID          uint   `gorm:"primaryKey"`
	Nome        string `gorm:"not null"`
	Categoria   string `gorm:"not null;index"`
	Imagem      string `gorm:"not null"`
	Porcentagem int    `gorm:"not null"`
	Jogadores   int    `gorm:"not null;check:jogadores >= 0"`
	Ativo       bool   `gorm:"not null;default:true;index"`
}

// SlotPatch carries the columns of a partial update. Nil fields are not written.
type SlotPatch struct {
	Nome        *string
	Categoria   *string
	Imagem      *string
	Porcentagem *int
	Jogadores   *int
	Ativo       *bool
}

func (p SlotPatch) apply(s *Slot) {
	if p.Nome != nil {
		s.Nome = *p.Nome
	}
	if p.Categoria != nil {
		s.Categoria = *p.Categoria
	}
	if p.Imagem != nil {
		s.Imagem = *p.Imagem
	}
	if p.Porcentagem != nil {
		s.Porcentagem = *p.Porcentagem
	}
	if p.Jogadores != nil {
		s.Jogadores = *p.Jogadores
	}
	if p.Ativo != nil {
		s.Ativo = *p.Ativo
	}
}

func (p SlotPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Nome != nil {
		cols["nome"] = *p.Nome
	}
	if p.Categoria != nil {
		cols["categoria"] = *p.Categoria
	}
	if p.Imagem != nil {
		cols["imagem"] = *p.Imagem
	}
	if p.Porcentagem != nil {
		cols["porcentagem"] = *p.Porcentagem
	}
	if p.Jogadores != nil {
		cols["jogadores"] = *p.Jogadores
	}
	if p.Ativo != nil {
		cols["ativo"] = *p.Ativo
	}

	return cols
}

// check rejects patches that would reactivate s and reports whether applying p deactivates it.
func (p SlotPatch) check(s Slot) (deactivates bool, err error) {
	if p.Ativo == nil {
		return false, nil
	}
	if *p.Ativo && !s.Ativo {
		return false, ErrSlotReactivation
	}

	return s.Ativo && !*p.Ativo, nil
}

// SlotDAO stores slots in PostgreSQL.
type SlotDAO struct {
	db *gorm.DB
}

func NewSlotDAO(db *gorm.DB) *SlotDAO {
	return &SlotDAO{
		db: db,
	}
}

func (d *SlotDAO) Insert(ctx context.Context, slot Slot) (Slot, error) {
	slot.ID = 0
	slot.Ativo = true

	result := d.db.WithContext(ctx).Create(&slot)
	if result.Error != nil {
		return Slot{}, classifySlotErr(result.Error)
	}

	return slot, nil
}

func (d *SlotDAO) FindByID(ctx context.Context, id uint) (Slot, error) {
	var slot Slot

	result := d.db.WithContext(ctx).First(&slot, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Slot{}, ErrSlotNotFound
		}

		return Slot{}, result.Error
	}

	return slot, nil
}

// FindAllActive returns the active slots ordered by id. When none is active the sample catalog is
// inserted again, with fresh ids, inside the same transaction. Concurrent re-seeds are serialized by
// a transaction-scoped advisory lock.
func (d *SlotDAO) FindAllActive(ctx context.Context) ([]Slot, error) {
	var slots []Slot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findActive(tx, &slots); err != nil {
			return err
		}
		if len(slots) > 0 {
			return nil
		}

		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", reseedLockKey).Error; err != nil {
			return err
		}
		// Another transaction may have re-seeded while we waited for the lock.
		if err := findActive(tx, &slots); err != nil {
			return err
		}
		if len(slots) > 0 {
			return nil
		}

		seeds := sampleSlotsActive()
		if err := tx.Create(&seeds).Error; err != nil {
			return err
		}
		zap.L().Info("no active slots left, sample catalog re-seeded", zap.Int("count", len(seeds)))
		slots = seeds

		return nil
	})
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func findActive(tx *gorm.DB, slots *[]Slot) error {
	return tx.Where("ativo = ?", true).Order("id").Find(slots).Error
}

// Update merges patch into the slot under a row lock. The returned flag is true when this update
// moved the slot from active to inactive.
func (d *SlotDAO) Update(ctx context.Context, id uint, patch SlotPatch) (Slot, bool, error) {
	var (
		slot        Slot
		deactivated bool
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}

			return err
		}

		var err error
		if deactivated, err = patch.check(slot); err != nil {
			return err
		}

		cols := patch.columns()
		if len(cols) == 0 {
			return nil
		}
		if err := tx.Model(&Slot{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return classifySlotErr(err)
		}

		return tx.First(&slot, id).Error
	})
	if err != nil {
		return Slot{}, false, err
	}

	return slot, deactivated, nil
}

func (d *SlotDAO) SoftDelete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&Slot{}).Where("id = ?", id).Update("ativo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func classifySlotErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation, pgerrcode.NumericValueOutOfRange, pgerrcode.NotNullViolation:
			return errors.Join(ErrInvalidSlot, err)
		}
	}

	return err
}
