package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"planora/contexts/event-planning/event-ledger-service/application/commands"
	"planora/contexts/event-planning/event-ledger-service/application/queries"
	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	httptransport "planora/contexts/event-planning/event-ledger-service/transport/http"
)

type Handler struct {
	CreateEvent  commands.CreateEventUseCase
	UpdateEvent  commands.UpdateEventUseCase
	ConfirmEvent commands.ConfirmEventUseCase
	CancelEvent  commands.CancelEventUseCase
	DeleteEvent  commands.DeleteEventUseCase
	GetEvent     queries.GetEventUseCase
	ListEvents   queries.ListEventsUseCase
	ListHistory  queries.ListHistoryUseCase
	Logger       *slog.Logger
}

func (h Handler) CreateEventHandler(
	ctx context.Context,
	customerID string,
	idempotencyKey string,
	req httptransport.CreateEventRequest,
) (httptransport.CreateEventResponse, error) {
	result, err := h.CreateEvent.Execute(ctx, commands.CreateEventCommand{
		CustomerID:     customerID,
		IdempotencyKey: idempotencyKey,
		EventTypeID:    req.EventTypeID,
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		Location:       req.Location,
		GuestCount:     entities.CoerceGuestCount(req.GuestCount),
		TotalCost:      req.TotalCost,
	})
	if err != nil {
		return httptransport.CreateEventResponse{}, err
	}
	return httptransport.CreateEventResponse{
		Event:    mapEvent(result.Event),
		Replayed: result.Replayed,
	}, nil
}

func (h Handler) ListEventsHandler(ctx context.Context, customerID string) (httptransport.ListEventsResponse, error) {
	items, err := h.ListEvents.Execute(ctx, customerID)
	if err != nil {
		return httptransport.ListEventsResponse{}, err
	}
	result := make([]httptransport.CustomerEventDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapEvent(item))
	}
	return httptransport.ListEventsResponse{Items: result}, nil
}

func (h Handler) GetEventHandler(ctx context.Context, customerID string, eventID string) (httptransport.GetEventResponse, error) {
	item, err := h.GetEvent.Execute(ctx, customerID, eventID)
	if err != nil {
		return httptransport.GetEventResponse{}, err
	}
	return httptransport.GetEventResponse{Event: mapEvent(item)}, nil
}

func (h Handler) UpdateEventHandler(
	ctx context.Context,
	customerID string,
	eventID string,
	req httptransport.UpdateEventRequest,
) (httptransport.GetEventResponse, error) {
	cmd := commands.UpdateEventCommand{
		CustomerID:  customerID,
		EventID:     eventID,
		EventTypeID: req.EventTypeID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		TotalCost:   req.TotalCost,
	}
	if req.GuestCount != nil {
		count := entities.CoerceGuestCount(req.GuestCount)
		cmd.GuestCount = &count
	}
	item, err := h.UpdateEvent.Execute(ctx, cmd)
	if err != nil {
		return httptransport.GetEventResponse{}, err
	}
	return httptransport.GetEventResponse{Event: mapEvent(item)}, nil
}

func (h Handler) ConfirmEventHandler(
	ctx context.Context,
	customerID string,
	eventID string,
	req httptransport.ConfirmEventRequest,
) (httptransport.GetEventResponse, error) {
	cmd := commands.ConfirmEventCommand{
		CustomerID: customerID,
		EventID:    eventID,
		ActorID:    customerID,
		TotalCost:  req.TotalCost,
		Reason:     req.Reason,
	}
	if req.Vendor != nil {
		cmd.Vendor = &entities.VendorAssignment{
			VendorID:   req.Vendor.VendorID,
			VendorName: req.Vendor.VendorName,
			Contact:    req.Vendor.Contact,
		}
	}
	item, err := h.ConfirmEvent.Execute(ctx, cmd)
	if err != nil {
		return httptransport.GetEventResponse{}, err
	}
	return httptransport.GetEventResponse{Event: mapEvent(item)}, nil
}

func (h Handler) CancelEventHandler(
	ctx context.Context,
	customerID string,
	eventID string,
	req httptransport.CancelEventRequest,
) (httptransport.GetEventResponse, error) {
	item, err := h.CancelEvent.Execute(ctx, commands.CancelEventCommand{
		CustomerID: customerID,
		EventID:    eventID,
		Reason:     req.Reason,
	})
	if err != nil {
		return httptransport.GetEventResponse{}, err
	}
	return httptransport.GetEventResponse{Event: mapEvent(item)}, nil
}

func (h Handler) DeleteEventHandler(ctx context.Context, customerID string, eventID string) error {
	return h.DeleteEvent.Execute(ctx, commands.DeleteEventCommand{
		CustomerID: customerID,
		EventID:    eventID,
	})
}

func (h Handler) ListHistoryHandler(ctx context.Context, customerID string, eventID string) (httptransport.ListHistoryResponse, error) {
	items, err := h.ListHistory.Execute(ctx, customerID, eventID)
	if err != nil {
		return httptransport.ListHistoryResponse{}, err
	}
	result := make([]httptransport.StateHistoryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.StateHistoryDTO{
			HistoryID:    item.HistoryID,
			EventID:      item.EventID,
			FromStatus:   string(item.FromStatus),
			ToStatus:     string(item.ToStatus),
			ChangedBy:    item.ChangedBy,
			ChangeReason: item.ChangeReason,
			CreatedAt:    item.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.ListHistoryResponse{Items: result}, nil
}

func mapEvent(item entities.CustomerEvent) httptransport.CustomerEventDTO {
	result := httptransport.CustomerEventDTO{
		EventID:     item.EventID,
		CustomerID:  item.CustomerID,
		EventTypeID: item.EventTypeID,
		Title:       item.Title,
		Description: item.Description,
		Date:        item.Date,
		Time:        item.Time,
		Location:    item.Location,
		GuestCount:  item.GuestCount,
		TotalCost:   item.TotalCost,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
	if item.Vendor != nil {
		result.Vendor = &httptransport.VendorAssignmentDTO{
			VendorID:   item.Vendor.VendorID,
			VendorName: item.Vendor.VendorName,
			Contact:    item.Vendor.Contact,
		}
	}
	return result
}
