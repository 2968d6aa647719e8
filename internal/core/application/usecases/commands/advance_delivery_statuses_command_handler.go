package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// AdvanceDeliveryStatusesCommandHandler progresses every undelivered order
// record one delivery status step. All updates occur within a single
// transaction so a batch either advances completely or not at all.
type AdvanceDeliveryStatusesCommandHandler struct {
	uowFactory HistoryUoWFactory
	observer   order.StatusObserver
}

// NewAdvanceDeliveryStatusesCommandHandler creates a handler for delivery
// status progression. A nil observer disables status notifications.
func NewAdvanceDeliveryStatusesCommandHandler(
	uowFactory HistoryUoWFactory,
	observer order.StatusObserver,
) AdvanceDeliveryStatusesCommandHandler {
	return AdvanceDeliveryStatusesCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the advance delivery statuses command.
// Retrieves all records not yet delivered and advances each one step along
// the delivery progression. Records already at a step with no successor are
// left unchanged.
func (h *AdvanceDeliveryStatusesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryStatusesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	historyRepo := uow.OrderHistoryRepository()

	records, err := historyRepo.GetAllUndelivered(ctx)
	if err != nil {
		return err
	}

	var advanced []order.Record
	for i := range records {
		if !records[i].AdvanceStatus() {
			continue
		}

		if err = historyRepo.Update(ctx, records[i]); err != nil {
			return err
		}
		advanced = append(advanced, records[i])
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notify only after the batch is durable.
	if h.observer != nil {
		for _, record := range advanced {
			h.observer.OrderStatusChanged(record.ID, record.Status)
		}
	}

	return nil
}
