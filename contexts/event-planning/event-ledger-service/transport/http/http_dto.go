package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateEventRequest carries the booking form as submitted. GuestCount is
// typed loosely because browser clients send it as a string; the handler
// coerces it, clamping anything non-numeric to zero.
type CreateEventRequest struct {
	EventTypeID string  `json:"event_type_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	GuestCount  any     `json:"guest_count"`
	TotalCost   float64 `json:"total_cost"`
}

type UpdateEventRequest struct {
	EventTypeID *string  `json:"event_type_id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Location    *string  `json:"location"`
	GuestCount  any      `json:"guest_count"`
	TotalCost   *float64 `json:"total_cost"`
}

type VendorAssignmentDTO struct {
	VendorID   string `json:"vendor_id"`
	VendorName string `json:"vendor_name"`
	Contact    string `json:"contact,omitempty"`
}

type ConfirmEventRequest struct {
	Vendor    *VendorAssignmentDTO `json:"vendor"`
	TotalCost *float64             `json:"total_cost"`
	Reason    string               `json:"reason"`
}

type CancelEventRequest struct {
	Reason string `json:"reason"`
}

type CustomerEventDTO struct {
	EventID     string               `json:"event_id"`
	CustomerID  string               `json:"customer_id"`
	EventTypeID string               `json:"event_type_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Location    string               `json:"location"`
	GuestCount  int                  `json:"guest_count"`
	TotalCost   float64              `json:"total_cost"`
	Vendor      *VendorAssignmentDTO `json:"vendor,omitempty"`
	Status      string               `json:"status"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

type CreateEventResponse struct {
	Event    CustomerEventDTO `json:"event"`
	Replayed bool             `json:"replayed"`
}

type GetEventResponse struct {
	Event CustomerEventDTO `json:"event"`
}

type ListEventsResponse struct {
	Items []CustomerEventDTO `json:"items"`
}

type StateHistoryDTO struct {
	HistoryID    string `json:"history_id"`
	EventID      string `json:"event_id"`
	FromStatus   string `json:"from_status"`
	ToStatus     string `json:"to_status"`
	ChangedBy    string `json:"changed_by"`
	ChangeReason string `json:"change_reason,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type ListHistoryResponse struct {
	Items []StateHistoryDTO `json:"items"`
}
