package httpadapter

import (
	"context"
	"log/slog"

	"planora/contexts/event-planning/event-catalog-service/application"
	"planora/contexts/event-planning/event-catalog-service/ports"
	httptransport "planora/contexts/event-planning/event-catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SeedHandler(ctx context.Context, req httptransport.SeedRequest) (httptransport.SeedResponse, error) {
	items := make([]ports.EventTypeRecord, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.EventTypeRecord{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			AccentStyle: item.AccentStyle,
			Popular:     item.Popular,
		})
	}
	seeded, err := h.Service.Seed(ctx, items)
	if err != nil {
		return httptransport.SeedResponse{}, err
	}
	return httptransport.SeedResponse{Items: mapEventTypes(seeded)}, nil
}

func (h Handler) ListEventTypesHandler(ctx context.Context) (httptransport.ListEventTypesResponse, error) {
	items, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ListEventTypesResponse{}, err
	}
	return httptransport.ListEventTypesResponse{Items: mapEventTypes(items)}, nil
}

func (h Handler) GetEventTypeHandler(ctx context.Context, id string) (httptransport.GetEventTypeResponse, error) {
	item, err := h.Service.Get(ctx, id)
	if err != nil {
		return httptransport.GetEventTypeResponse{}, err
	}
	return httptransport.GetEventTypeResponse{EventType: mapEventType(item)}, nil
}

func mapEventTypes(items []ports.EventTypeRecord) []httptransport.EventTypeDTO {
	result := make([]httptransport.EventTypeDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapEventType(item))
	}
	return result
}

func mapEventType(item ports.EventTypeRecord) httptransport.EventTypeDTO {
	return httptransport.EventTypeDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		AccentStyle: item.AccentStyle,
		Popular:     item.Popular,
	}
}
