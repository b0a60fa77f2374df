package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot_Status(t *testing.T) {
	tests := []struct {
		porcentagem int
		want        string
	}{
		{porcentagem: 98, want: StatusHot},
		{porcentagem: 86, want: StatusHot},
		{porcentagem: 85, want: StatusActive},
		{porcentagem: 71, want: StatusActive},
		{porcentagem: 70, want: StatusCold},
		{porcentagem: 50, want: StatusCold},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slot{Porcentagem: tt.porcentagem}.Status(), tt.porcentagem)
	}
}

func TestSlotFilter_Match(t *testing.T) {
	slot := Slot{Nome: "Fortune Tiger", Categoria: "Fortune", Porcentagem: 90}

	assert.True(t, SlotFilter{}.Match(slot))
	assert.True(t, SlotFilter{Search: "tIgEr"}.Match(slot))
	assert.False(t, SlotFilter{Search: "rabbit"}.Match(slot))
	assert.True(t, SlotFilter{Categoria: "fortune"}.Match(slot))
	assert.True(t, SlotFilter{Categoria: "Todos"}.Match(slot))
	assert.False(t, SlotFilter{Categoria: "Mahjong"}.Match(slot))
	assert.True(t, SlotFilter{Status: "HOT"}.Match(slot))
	assert.False(t, SlotFilter{Status: StatusCold}.Match(slot))
	assert.False(t, SlotFilter{Search: "tiger", Categoria: "Mahjong"}.Match(slot))
}
