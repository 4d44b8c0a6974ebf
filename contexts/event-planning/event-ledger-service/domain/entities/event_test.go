package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusGuards(t *testing.T) {
	tests := []struct {
		name       string
		status     EventStatus
		canEdit    bool
		canCancel  bool
		canDelete  bool
		canConfirm bool
	}{
		{name: "draft", status: EventStatusDraft, canEdit: true, canCancel: false, canDelete: true, canConfirm: true},
		{name: "confirmed", status: EventStatusConfirmed, canEdit: true, canCancel: true, canDelete: false, canConfirm: false},
		{name: "completed", status: EventStatusCompleted, canEdit: false, canCancel: false, canDelete: true, canConfirm: false},
		{name: "cancelled", status: EventStatusCancelled, canEdit: false, canCancel: false, canDelete: true, canConfirm: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := CustomerEvent{Status: tt.status}
			assert.Equal(t, tt.canEdit, event.CanEdit(), "CanEdit")
			assert.Equal(t, tt.canCancel, event.CanCancel(), "CanCancel")
			assert.Equal(t, tt.canDelete, event.CanDelete(), "CanDelete")
			assert.Equal(t, tt.canConfirm, event.CanConfirm(), "CanConfirm")
		})
	}
}

func TestTerminalStatus(t *testing.T) {
	assert.False(t, IsTerminalStatus(EventStatusDraft))
	assert.False(t, IsTerminalStatus(EventStatusConfirmed))
	assert.True(t, IsTerminalStatus(EventStatusCompleted))
	assert.True(t, IsTerminalStatus(EventStatusCancelled))
}

func TestCoerceGuestCount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "nil", input: nil, want: 0},
		{name: "int", input: 75, want: 75},
		{name: "negative int", input: -5, want: 0},
		{name: "json number", input: float64(120), want: 120},
		{name: "numeric string", input: "42", want: 42},
		{name: "padded string", input: " 42 ", want: 42},
		{name: "word string", input: "a lot", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "negative string", input: "-3", want: 0},
		{name: "bool", input: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceGuestCount(tt.input))
		})
	}
}

func TestValidateBasics(t *testing.T) {
	valid := CustomerEvent{CustomerID: "cust-1", Title: "Garden Wedding", GuestCount: 50, TotalCost: 1200}
	assert.True(t, valid.ValidateBasics())

	missingTitle := valid
	missingTitle.Title = "   "
	assert.False(t, missingTitle.ValidateBasics())

	missingCustomer := valid
	missingCustomer.CustomerID = ""
	assert.False(t, missingCustomer.ValidateBasics())

	negativeCost := valid
	negativeCost.TotalCost = -1
	assert.False(t, negativeCost.ValidateBasics())
}
