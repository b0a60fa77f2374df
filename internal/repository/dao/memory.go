package dao

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemorySlotDAO keeps slots in process memory. Records are never removed, so the id order slice
// doubles as insertion order.
type MemorySlotDAO struct {
	mu     sync.Mutex
	slots  map[uint]Slot
	order  []uint
	nextID uint
}

// NewMemorySlotDAO returns a store already holding the sample catalog under ids 1..8.
func NewMemorySlotDAO() *MemorySlotDAO {
	d := &MemorySlotDAO{
		slots:  make(map[uint]Slot),
		nextID: 1,
	}
	d.seedLocked()

	return d
}

func (d *MemorySlotDAO) insertLocked(slot Slot) Slot {
	slot.ID = d.nextID
	slot.Ativo = true
	d.nextID++

	d.slots[slot.ID] = slot
	d.order = append(d.order, slot.ID)

	return slot
}

func (d *MemorySlotDAO) seedLocked() []Slot {
	seeds := SampleSlots()
	for i := range seeds {
		seeds[i] = d.insertLocked(seeds[i])
	}

	return seeds
}

func (d *MemorySlotDAO) Insert(_ context.Context, slot Slot) (Slot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.insertLocked(slot), nil
}

func (d *MemorySlotDAO) FindByID(_ context.Context, id uint) (Slot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	slot, ok := d.slots[id]
	if !ok {
		return Slot{}, ErrSlotNotFound
	}

	return slot, nil
}

// FindAllActive returns active slots in insertion order, appending a fresh copy of the sample
// catalog first when none is active.
func (d *MemorySlotDAO) FindAllActive(_ context.Context) ([]Slot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	active := make([]Slot, 0, len(d.order))
	for _, id := range d.order {
		if slot := d.slots[id]; slot.Ativo {
			active = append(active, slot)
		}
	}
	if len(active) > 0 {
		return active, nil
	}

	seeds := d.seedLocked()
	zap.L().Info("no active slots left, sample catalog re-seeded", zap.Int("count", len(seeds)))

	return seeds, nil
}

func (d *MemorySlotDAO) Update(_ context.Context, id uint, patch SlotPatch) (Slot, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	slot, ok := d.slots[id]
	if !ok {
		return Slot{}, false, ErrSlotNotFound
	}
	deactivated, err := patch.check(slot)
	if err != nil {
		return Slot{}, false, err
	}
	patch.apply(&slot)
	slot.ID = id
	d.slots[id] = slot

	return slot, deactivated, nil
}

func (d *MemorySlotDAO) SoftDelete(_ context.Context, id uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	slot, ok := d.slots[id]
	if !ok {
		return ErrSlotNotFound
	}
	slot.Ativo = false
	d.slots[id] = slot

	return nil
}

type MemoryUserDAO struct {
	mu     sync.Mutex
	users  []User
	nextID uint
}

func NewMemoryUserDAO() *MemoryUserDAO {
	return &MemoryUserDAO{
		nextID: 1,
	}
}

func (d *MemoryUserDAO) Insert(_ context.Context, user User) (User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user.ID = d.nextID
	d.nextID++
	d.users = append(d.users, user)

	return user, nil
}

func (d *MemoryUserDAO) FindByID(_ context.Context, id uint) (User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.ID == id {
			return u, nil
		}
	}

	return User{}, ErrUserNotFound
}

func (d *MemoryUserDAO) FindByUsername(_ context.Context, username string) (User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Username == username {
			return u, nil
		}
	}

	return User{}, ErrUserNotFound
}
