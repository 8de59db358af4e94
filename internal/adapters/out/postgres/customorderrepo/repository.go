package customorderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomOrderRepository implements CustomOrderRepository using GORM.
type GormCustomOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomOrderRepository creates a new GORM custom order repository.
func NewGormCustomOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomOrderRepository {
	return &GormCustomOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new proposal to the database.
func (r *GormCustomOrderRepository) Add(ctx context.Context, aggregate *customorder.CustomOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a proposal's resolution, guarded by the version the aggregate
// was loaded with. A lost race surfaces as ConcurrencyConflictError.
func (r *GormCustomOrderRepository) Update(ctx context.Context, aggregate *customorder.CustomOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&CustomOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&CustomOrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("customOrderId", aggregate.ID())
		}
		return errs.NewConcurrencyConflictError("customOrderId", aggregate.ID(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a proposal by ID.
func (r *GormCustomOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customOrderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
