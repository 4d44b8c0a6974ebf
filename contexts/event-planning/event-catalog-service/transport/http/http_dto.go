package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type EventTypeDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AccentStyle string `json:"accent_style"`
	Popular     bool   `json:"popular"`
}

type SeedRequest struct {
	Items []EventTypeDTO `json:"items"`
}

type SeedResponse struct {
	Items []EventTypeDTO `json:"items"`
}

type ListEventTypesResponse struct {
	Items []EventTypeDTO `json:"items"`
}

type GetEventTypeResponse struct {
	EventType EventTypeDTO `json:"event_type"`
}
