package historyrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// GormOrderHistoryRepository implements OrderHistoryRepository using GORM.
type GormOrderHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderHistoryRepository creates a new GORM order history repository.
func NewGormOrderHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderHistoryRepository {
	return &GormOrderHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order record to the database.
func (r *GormOrderHistoryRepository) Add(ctx context.Context, record order.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID.String(), record)
	return nil
}

// Update saves an existing order record to the database.
func (r *GormOrderHistoryRepository) Update(ctx context.Context, record order.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID.String(), record)
	return nil
}

// Get retrieves an order record by its permanent order number.
func (r *GormOrderHistoryRepository) Get(ctx context.Context, id kernel.UUID) (order.Record, error) {
	if err := id.Validate(); err != nil {
		return order.Record{}, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Record{}, errs.NewObjectNotFoundError("order record", id.String())
		}
		return order.Record{}, err
	}

	return toDomain(dto)
}

// GetAllUndelivered retrieves all order records not yet delivered, oldest
// first so the progression job advances long-waiting orders before fresh ones.
func (r *GormOrderHistoryRepository) GetAllUndelivered(ctx context.Context) ([]order.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Order("placed_at").
		Find(&dtos, "status != ?", order.StatusDelivered).Error
	if err != nil {
		return nil, err
	}

	records := make([]order.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}
