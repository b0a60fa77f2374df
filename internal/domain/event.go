package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	SlotCreated = "created"
	SlotUpdated = "updated"
	SlotDeleted = "deleted"
)

type SlotEvent struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
	Slot Slot      `json:"slot"`
	At   time.Time `json:"at"`
}

func NewSlotEvent(eventType string, slot Slot) SlotEvent {
	return SlotEvent{
		ID:   uuid.New(),
		Type: eventType,
		Slot: slot,
		At:   time.Now().UTC(),
	}
}
