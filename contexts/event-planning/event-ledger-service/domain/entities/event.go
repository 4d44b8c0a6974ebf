package entities

import (
	"strconv"
	"strings"
	"time"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// VendorAssignment is the vendor booked for a confirmed event.
type VendorAssignment struct {
	VendorID   string
	VendorName string
	Contact    string
}

// CustomerEvent is one booking in a customer's ledger.
type CustomerEvent struct {
	EventID     string
	CustomerID  string
	EventTypeID string
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	GuestCount  int
	TotalCost   float64
	Vendor      *VendorAssignment
	Status      EventStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StateHistory is one audited status transition of a customer event.
type StateHistory struct {
	HistoryID    string
	EventID      string
	FromStatus   EventStatus
	ToStatus     EventStatus
	ChangedBy    string
	ChangeReason string
	CreatedAt    time.Time
}

// Edits are allowed while the event is still live. Completed and cancelled
// events are finalized and must never change.
func (e CustomerEvent) CanEdit() bool {
	return e.Status == EventStatusDraft || e.Status == EventStatusConfirmed
}

// Cancel is only defined from confirmed; a draft is removed via delete.
func (e CustomerEvent) CanCancel() bool {
	return e.Status == EventStatusConfirmed
}

// A confirmed booking must be cancelled before it can be deleted.
func (e CustomerEvent) CanDelete() bool {
	return e.Status != EventStatusConfirmed
}

func (e CustomerEvent) CanConfirm() bool {
	return e.Status == EventStatusDraft
}

func IsTerminalStatus(status EventStatus) bool {
	return status == EventStatusCompleted || status == EventStatusCancelled
}

func IsValidStatus(status EventStatus) bool {
	switch status {
	case EventStatusDraft, EventStatusConfirmed, EventStatusCompleted, EventStatusCancelled:
		return true
	default:
		return false
	}
}

func (e CustomerEvent) ValidateBasics() bool {
	return strings.TrimSpace(e.Title) != "" &&
		strings.TrimSpace(e.CustomerID) != "" &&
		e.GuestCount >= 0 &&
		e.TotalCost >= 0
}

// CoerceGuestCount clamps arbitrary form input to a non-negative count.
// Non-numeric and negative values become 0 so partial form state never
// fails event creation.
func CoerceGuestCount(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return clampGuestCount(v)
	case int64:
		return clampGuestCount(int(v))
	case float64:
		return clampGuestCount(int(v))
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return clampGuestCount(parsed)
	default:
		return 0
	}
}

func clampGuestCount(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
